// Code generated by ent, DO NOT EDIT.

package pipelinerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/foremanhq/foreman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldProjectID, v))
}

// Request applies equality check predicate on the "request" field. It's identical to RequestEQ.
func Request(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldRequest, v))
}

// GraphJSON applies equality check predicate on the "graph_json" field. It's identical to GraphJSONEQ.
func GraphJSON(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldGraphJSON, v))
}

// DecisionCount applies equality check predicate on the "decision_count" field. It's identical to DecisionCountEQ.
func DecisionCount(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldDecisionCount, v))
}

// RunningCost applies equality check predicate on the "running_cost" field. It's identical to RunningCostEQ.
func RunningCost(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldRunningCost, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCurrentStep, v))
}

// StepsJSON applies equality check predicate on the "steps_json" field. It's identical to StepsJSONEQ.
func StepsJSON(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStepsJSON, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldLastHeartbeat, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldProjectID, v))
}

// RequestEQ applies the EQ predicate on the "request" field.
func RequestEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldRequest, v))
}

// RequestNEQ applies the NEQ predicate on the "request" field.
func RequestNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldRequest, v))
}

// RequestIn applies the In predicate on the "request" field.
func RequestIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldRequest, vs...))
}

// RequestNotIn applies the NotIn predicate on the "request" field.
func RequestNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldRequest, vs...))
}

// RequestGT applies the GT predicate on the "request" field.
func RequestGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldRequest, v))
}

// RequestGTE applies the GTE predicate on the "request" field.
func RequestGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldRequest, v))
}

// RequestLT applies the LT predicate on the "request" field.
func RequestLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldRequest, v))
}

// RequestLTE applies the LTE predicate on the "request" field.
func RequestLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldRequest, v))
}

// RequestContains applies the Contains predicate on the "request" field.
func RequestContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldRequest, v))
}

// RequestHasPrefix applies the HasPrefix predicate on the "request" field.
func RequestHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldRequest, v))
}

// RequestHasSuffix applies the HasSuffix predicate on the "request" field.
func RequestHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldRequest, v))
}

// RequestEqualFold applies the EqualFold predicate on the "request" field.
func RequestEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldRequest, v))
}

// RequestContainsFold applies the ContainsFold predicate on the "request" field.
func RequestContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldRequest, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStatus, vs...))
}

// GraphJSONEQ applies the EQ predicate on the "graph_json" field.
func GraphJSONEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldGraphJSON, v))
}

// GraphJSONNEQ applies the NEQ predicate on the "graph_json" field.
func GraphJSONNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldGraphJSON, v))
}

// GraphJSONIn applies the In predicate on the "graph_json" field.
func GraphJSONIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldGraphJSON, vs...))
}

// GraphJSONNotIn applies the NotIn predicate on the "graph_json" field.
func GraphJSONNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldGraphJSON, vs...))
}

// GraphJSONGT applies the GT predicate on the "graph_json" field.
func GraphJSONGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldGraphJSON, v))
}

// GraphJSONGTE applies the GTE predicate on the "graph_json" field.
func GraphJSONGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldGraphJSON, v))
}

// GraphJSONLT applies the LT predicate on the "graph_json" field.
func GraphJSONLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldGraphJSON, v))
}

// GraphJSONLTE applies the LTE predicate on the "graph_json" field.
func GraphJSONLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldGraphJSON, v))
}

// GraphJSONContains applies the Contains predicate on the "graph_json" field.
func GraphJSONContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldGraphJSON, v))
}

// GraphJSONHasPrefix applies the HasPrefix predicate on the "graph_json" field.
func GraphJSONHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldGraphJSON, v))
}

// GraphJSONHasSuffix applies the HasSuffix predicate on the "graph_json" field.
func GraphJSONHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldGraphJSON, v))
}

// GraphJSONEqualFold applies the EqualFold predicate on the "graph_json" field.
func GraphJSONEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldGraphJSON, v))
}

// GraphJSONContainsFold applies the ContainsFold predicate on the "graph_json" field.
func GraphJSONContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldGraphJSON, v))
}

// DecisionCountEQ applies the EQ predicate on the "decision_count" field.
func DecisionCountEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldDecisionCount, v))
}

// DecisionCountNEQ applies the NEQ predicate on the "decision_count" field.
func DecisionCountNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldDecisionCount, v))
}

// DecisionCountIn applies the In predicate on the "decision_count" field.
func DecisionCountIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldDecisionCount, vs...))
}

// DecisionCountNotIn applies the NotIn predicate on the "decision_count" field.
func DecisionCountNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldDecisionCount, vs...))
}

// DecisionCountGT applies the GT predicate on the "decision_count" field.
func DecisionCountGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldDecisionCount, v))
}

// DecisionCountGTE applies the GTE predicate on the "decision_count" field.
func DecisionCountGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldDecisionCount, v))
}

// DecisionCountLT applies the LT predicate on the "decision_count" field.
func DecisionCountLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldDecisionCount, v))
}

// DecisionCountLTE applies the LTE predicate on the "decision_count" field.
func DecisionCountLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldDecisionCount, v))
}

// RunningCostEQ applies the EQ predicate on the "running_cost" field.
func RunningCostEQ(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldRunningCost, v))
}

// RunningCostNEQ applies the NEQ predicate on the "running_cost" field.
func RunningCostNEQ(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldRunningCost, v))
}

// RunningCostIn applies the In predicate on the "running_cost" field.
func RunningCostIn(vs ...float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldRunningCost, vs...))
}

// RunningCostNotIn applies the NotIn predicate on the "running_cost" field.
func RunningCostNotIn(vs ...float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldRunningCost, vs...))
}

// RunningCostGT applies the GT predicate on the "running_cost" field.
func RunningCostGT(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldRunningCost, v))
}

// RunningCostGTE applies the GTE predicate on the "running_cost" field.
func RunningCostGTE(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldRunningCost, v))
}

// RunningCostLT applies the LT predicate on the "running_cost" field.
func RunningCostLT(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldRunningCost, v))
}

// RunningCostLTE applies the LTE predicate on the "running_cost" field.
func RunningCostLTE(v float64) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldRunningCost, v))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCurrentStep))
}

// StepsJSONEQ applies the EQ predicate on the "steps_json" field.
func StepsJSONEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldStepsJSON, v))
}

// StepsJSONNEQ applies the NEQ predicate on the "steps_json" field.
func StepsJSONNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldStepsJSON, v))
}

// StepsJSONIn applies the In predicate on the "steps_json" field.
func StepsJSONIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldStepsJSON, vs...))
}

// StepsJSONNotIn applies the NotIn predicate on the "steps_json" field.
func StepsJSONNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldStepsJSON, vs...))
}

// StepsJSONGT applies the GT predicate on the "steps_json" field.
func StepsJSONGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldStepsJSON, v))
}

// StepsJSONGTE applies the GTE predicate on the "steps_json" field.
func StepsJSONGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldStepsJSON, v))
}

// StepsJSONLT applies the LT predicate on the "steps_json" field.
func StepsJSONLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldStepsJSON, v))
}

// StepsJSONLTE applies the LTE predicate on the "steps_json" field.
func StepsJSONLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldStepsJSON, v))
}

// StepsJSONContains applies the Contains predicate on the "steps_json" field.
func StepsJSONContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldStepsJSON, v))
}

// StepsJSONHasPrefix applies the HasPrefix predicate on the "steps_json" field.
func StepsJSONHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldStepsJSON, v))
}

// StepsJSONHasSuffix applies the HasSuffix predicate on the "steps_json" field.
func StepsJSONHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldStepsJSON, v))
}

// StepsJSONIsNil applies the IsNil predicate on the "steps_json" field.
func StepsJSONIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldStepsJSON))
}

// StepsJSONNotNil applies the NotNil predicate on the "steps_json" field.
func StepsJSONNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldStepsJSON))
}

// StepsJSONEqualFold applies the EqualFold predicate on the "steps_json" field.
func StepsJSONEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldStepsJSON, v))
}

// StepsJSONContainsFold applies the ContainsFold predicate on the "steps_json" field.
func StepsJSONContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldStepsJSON, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldLastHeartbeat))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PipelineRun {
	return predicate.PipelineRun(sql.FieldNotNull(FieldCompletedAt))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTaskNotes applies the HasEdge predicate on the "task_notes" edge.
func HasTaskNotes() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TaskNotesTable, TaskNotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskNotesWith applies the HasEdge predicate on the "task_notes" edge with a given conditions (other predicates).
func HasTaskNotesWith(preds ...predicate.TaskNote) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newTaskNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentRuns applies the HasEdge predicate on the "agent_runs" edge.
func HasAgentRuns() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentRunsTable, AgentRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentRunsWith applies the HasEdge predicate on the "agent_runs" edge with a given conditions (other predicates).
func HasAgentRunsWith(preds ...predicate.AgentRun) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newAgentRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentMessages applies the HasEdge predicate on the "agent_messages" edge.
func HasAgentMessages() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentMessagesTable, AgentMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentMessagesWith applies the HasEdge predicate on the "agent_messages" edge with a given conditions (other predicates).
func HasAgentMessagesWith(preds ...predicate.AgentMessage) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newAgentMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEventLogs applies the HasEdge predicate on the "event_logs" edge.
func HasEventLogs() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventLogsTable, EventLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventLogsWith applies the HasEdge predicate on the "event_logs" edge with a given conditions (other predicates).
func HasEventLogsWith(preds ...predicate.EventLog) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newEventLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPmDecisions applies the HasEdge predicate on the "pm_decisions" edge.
func HasPmDecisions() predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PmDecisionsTable, PmDecisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPmDecisionsWith applies the HasEdge predicate on the "pm_decisions" edge with a given conditions (other predicates).
func HasPmDecisionsWith(preds ...predicate.PMDecisionLog) predicate.PipelineRun {
	return predicate.PipelineRun(func(s *sql.Selector) {
		step := newPmDecisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRun) predicate.PipelineRun {
	return predicate.PipelineRun(sql.NotPredicates(p))
}
