// Code generated by ent, DO NOT EDIT.

package pmdecisionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/foremanhq/foreman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldRunID, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldRound, v))
}

// TriggerKind applies equality check predicate on the "trigger_kind" field. It's identical to TriggerKindEQ.
func TriggerKind(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldTriggerKind, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldReasoning, v))
}

// ActionsJSON applies equality check predicate on the "actions_json" field. It's identical to ActionsJSONEQ.
func ActionsJSON(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldActionsJSON, v))
}

// RawResponse applies equality check predicate on the "raw_response" field. It's identical to RawResponseEQ.
func RawResponse(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldRawResponse, v))
}

// ParseFailed applies equality check predicate on the "parse_failed" field. It's identical to ParseFailedEQ.
func ParseFailed(v bool) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldParseFailed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContainsFold(FieldRunID, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldRound, v))
}

// TriggerKindEQ applies the EQ predicate on the "trigger_kind" field.
func TriggerKindEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldTriggerKind, v))
}

// TriggerKindNEQ applies the NEQ predicate on the "trigger_kind" field.
func TriggerKindNEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldTriggerKind, v))
}

// TriggerKindIn applies the In predicate on the "trigger_kind" field.
func TriggerKindIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldTriggerKind, vs...))
}

// TriggerKindNotIn applies the NotIn predicate on the "trigger_kind" field.
func TriggerKindNotIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldTriggerKind, vs...))
}

// TriggerKindGT applies the GT predicate on the "trigger_kind" field.
func TriggerKindGT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldTriggerKind, v))
}

// TriggerKindGTE applies the GTE predicate on the "trigger_kind" field.
func TriggerKindGTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldTriggerKind, v))
}

// TriggerKindLT applies the LT predicate on the "trigger_kind" field.
func TriggerKindLT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldTriggerKind, v))
}

// TriggerKindLTE applies the LTE predicate on the "trigger_kind" field.
func TriggerKindLTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldTriggerKind, v))
}

// TriggerKindContains applies the Contains predicate on the "trigger_kind" field.
func TriggerKindContains(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContains(FieldTriggerKind, v))
}

// TriggerKindHasPrefix applies the HasPrefix predicate on the "trigger_kind" field.
func TriggerKindHasPrefix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasPrefix(FieldTriggerKind, v))
}

// TriggerKindHasSuffix applies the HasSuffix predicate on the "trigger_kind" field.
func TriggerKindHasSuffix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasSuffix(FieldTriggerKind, v))
}

// TriggerKindEqualFold applies the EqualFold predicate on the "trigger_kind" field.
func TriggerKindEqualFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEqualFold(FieldTriggerKind, v))
}

// TriggerKindContainsFold applies the ContainsFold predicate on the "trigger_kind" field.
func TriggerKindContainsFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContainsFold(FieldTriggerKind, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContainsFold(FieldReasoning, v))
}

// ActionsJSONEQ applies the EQ predicate on the "actions_json" field.
func ActionsJSONEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldActionsJSON, v))
}

// ActionsJSONNEQ applies the NEQ predicate on the "actions_json" field.
func ActionsJSONNEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldActionsJSON, v))
}

// ActionsJSONIn applies the In predicate on the "actions_json" field.
func ActionsJSONIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldActionsJSON, vs...))
}

// ActionsJSONNotIn applies the NotIn predicate on the "actions_json" field.
func ActionsJSONNotIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldActionsJSON, vs...))
}

// ActionsJSONGT applies the GT predicate on the "actions_json" field.
func ActionsJSONGT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldActionsJSON, v))
}

// ActionsJSONGTE applies the GTE predicate on the "actions_json" field.
func ActionsJSONGTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldActionsJSON, v))
}

// ActionsJSONLT applies the LT predicate on the "actions_json" field.
func ActionsJSONLT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldActionsJSON, v))
}

// ActionsJSONLTE applies the LTE predicate on the "actions_json" field.
func ActionsJSONLTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldActionsJSON, v))
}

// ActionsJSONContains applies the Contains predicate on the "actions_json" field.
func ActionsJSONContains(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContains(FieldActionsJSON, v))
}

// ActionsJSONHasPrefix applies the HasPrefix predicate on the "actions_json" field.
func ActionsJSONHasPrefix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasPrefix(FieldActionsJSON, v))
}

// ActionsJSONHasSuffix applies the HasSuffix predicate on the "actions_json" field.
func ActionsJSONHasSuffix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasSuffix(FieldActionsJSON, v))
}

// ActionsJSONIsNil applies the IsNil predicate on the "actions_json" field.
func ActionsJSONIsNil() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIsNull(FieldActionsJSON))
}

// ActionsJSONNotNil applies the NotNil predicate on the "actions_json" field.
func ActionsJSONNotNil() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotNull(FieldActionsJSON))
}

// ActionsJSONEqualFold applies the EqualFold predicate on the "actions_json" field.
func ActionsJSONEqualFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEqualFold(FieldActionsJSON, v))
}

// ActionsJSONContainsFold applies the ContainsFold predicate on the "actions_json" field.
func ActionsJSONContainsFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContainsFold(FieldActionsJSON, v))
}

// RawResponseEQ applies the EQ predicate on the "raw_response" field.
func RawResponseEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldRawResponse, v))
}

// RawResponseNEQ applies the NEQ predicate on the "raw_response" field.
func RawResponseNEQ(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldRawResponse, v))
}

// RawResponseIn applies the In predicate on the "raw_response" field.
func RawResponseIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldRawResponse, vs...))
}

// RawResponseNotIn applies the NotIn predicate on the "raw_response" field.
func RawResponseNotIn(vs ...string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldRawResponse, vs...))
}

// RawResponseGT applies the GT predicate on the "raw_response" field.
func RawResponseGT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldRawResponse, v))
}

// RawResponseGTE applies the GTE predicate on the "raw_response" field.
func RawResponseGTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldRawResponse, v))
}

// RawResponseLT applies the LT predicate on the "raw_response" field.
func RawResponseLT(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldRawResponse, v))
}

// RawResponseLTE applies the LTE predicate on the "raw_response" field.
func RawResponseLTE(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldRawResponse, v))
}

// RawResponseContains applies the Contains predicate on the "raw_response" field.
func RawResponseContains(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContains(FieldRawResponse, v))
}

// RawResponseHasPrefix applies the HasPrefix predicate on the "raw_response" field.
func RawResponseHasPrefix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasPrefix(FieldRawResponse, v))
}

// RawResponseHasSuffix applies the HasSuffix predicate on the "raw_response" field.
func RawResponseHasSuffix(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldHasSuffix(FieldRawResponse, v))
}

// RawResponseIsNil applies the IsNil predicate on the "raw_response" field.
func RawResponseIsNil() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIsNull(FieldRawResponse))
}

// RawResponseNotNil applies the NotNil predicate on the "raw_response" field.
func RawResponseNotNil() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotNull(FieldRawResponse))
}

// RawResponseEqualFold applies the EqualFold predicate on the "raw_response" field.
func RawResponseEqualFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEqualFold(FieldRawResponse, v))
}

// RawResponseContainsFold applies the ContainsFold predicate on the "raw_response" field.
func RawResponseContainsFold(v string) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldContainsFold(FieldRawResponse, v))
}

// ParseFailedEQ applies the EQ predicate on the "parse_failed" field.
func ParseFailedEQ(v bool) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldParseFailed, v))
}

// ParseFailedNEQ applies the NEQ predicate on the "parse_failed" field.
func ParseFailedNEQ(v bool) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldParseFailed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.PMDecisionLog {
	return predicate.PMDecisionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PipelineRun) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PMDecisionLog) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PMDecisionLog) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PMDecisionLog) predicate.PMDecisionLog {
	return predicate.PMDecisionLog(sql.NotPredicates(p))
}
