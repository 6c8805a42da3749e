// Code generated by ent, DO NOT EDIT.

package agentmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/foremanhq/foreman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldRunID, v))
}

// FromAgent applies equality check predicate on the "from_agent" field. It's identical to FromAgentEQ.
func FromAgent(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldFromAgent, v))
}

// ToAgent applies equality check predicate on the "to_agent" field. It's identical to ToAgentEQ.
func ToAgent(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldToAgent, v))
}

// GraphTaskID applies equality check predicate on the "graph_task_id" field. It's identical to GraphTaskIDEQ.
func GraphTaskID(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldGraphTaskID, v))
}

// MessageType applies equality check predicate on the "message_type" field. It's identical to MessageTypeEQ.
func MessageType(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldMessageType, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldRunID, v))
}

// FromAgentEQ applies the EQ predicate on the "from_agent" field.
func FromAgentEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldFromAgent, v))
}

// FromAgentNEQ applies the NEQ predicate on the "from_agent" field.
func FromAgentNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldFromAgent, v))
}

// FromAgentIn applies the In predicate on the "from_agent" field.
func FromAgentIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldFromAgent, vs...))
}

// FromAgentNotIn applies the NotIn predicate on the "from_agent" field.
func FromAgentNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldFromAgent, vs...))
}

// FromAgentGT applies the GT predicate on the "from_agent" field.
func FromAgentGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldFromAgent, v))
}

// FromAgentGTE applies the GTE predicate on the "from_agent" field.
func FromAgentGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldFromAgent, v))
}

// FromAgentLT applies the LT predicate on the "from_agent" field.
func FromAgentLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldFromAgent, v))
}

// FromAgentLTE applies the LTE predicate on the "from_agent" field.
func FromAgentLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldFromAgent, v))
}

// FromAgentContains applies the Contains predicate on the "from_agent" field.
func FromAgentContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldFromAgent, v))
}

// FromAgentHasPrefix applies the HasPrefix predicate on the "from_agent" field.
func FromAgentHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldFromAgent, v))
}

// FromAgentHasSuffix applies the HasSuffix predicate on the "from_agent" field.
func FromAgentHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldFromAgent, v))
}

// FromAgentEqualFold applies the EqualFold predicate on the "from_agent" field.
func FromAgentEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldFromAgent, v))
}

// FromAgentContainsFold applies the ContainsFold predicate on the "from_agent" field.
func FromAgentContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldFromAgent, v))
}

// ToAgentEQ applies the EQ predicate on the "to_agent" field.
func ToAgentEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldToAgent, v))
}

// ToAgentNEQ applies the NEQ predicate on the "to_agent" field.
func ToAgentNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldToAgent, v))
}

// ToAgentIn applies the In predicate on the "to_agent" field.
func ToAgentIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldToAgent, vs...))
}

// ToAgentNotIn applies the NotIn predicate on the "to_agent" field.
func ToAgentNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldToAgent, vs...))
}

// ToAgentGT applies the GT predicate on the "to_agent" field.
func ToAgentGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldToAgent, v))
}

// ToAgentGTE applies the GTE predicate on the "to_agent" field.
func ToAgentGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldToAgent, v))
}

// ToAgentLT applies the LT predicate on the "to_agent" field.
func ToAgentLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldToAgent, v))
}

// ToAgentLTE applies the LTE predicate on the "to_agent" field.
func ToAgentLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldToAgent, v))
}

// ToAgentContains applies the Contains predicate on the "to_agent" field.
func ToAgentContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldToAgent, v))
}

// ToAgentHasPrefix applies the HasPrefix predicate on the "to_agent" field.
func ToAgentHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldToAgent, v))
}

// ToAgentHasSuffix applies the HasSuffix predicate on the "to_agent" field.
func ToAgentHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldToAgent, v))
}

// ToAgentEqualFold applies the EqualFold predicate on the "to_agent" field.
func ToAgentEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldToAgent, v))
}

// ToAgentContainsFold applies the ContainsFold predicate on the "to_agent" field.
func ToAgentContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldToAgent, v))
}

// GraphTaskIDEQ applies the EQ predicate on the "graph_task_id" field.
func GraphTaskIDEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldGraphTaskID, v))
}

// GraphTaskIDNEQ applies the NEQ predicate on the "graph_task_id" field.
func GraphTaskIDNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldGraphTaskID, v))
}

// GraphTaskIDIn applies the In predicate on the "graph_task_id" field.
func GraphTaskIDIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldGraphTaskID, vs...))
}

// GraphTaskIDNotIn applies the NotIn predicate on the "graph_task_id" field.
func GraphTaskIDNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldGraphTaskID, vs...))
}

// GraphTaskIDGT applies the GT predicate on the "graph_task_id" field.
func GraphTaskIDGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldGraphTaskID, v))
}

// GraphTaskIDGTE applies the GTE predicate on the "graph_task_id" field.
func GraphTaskIDGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldGraphTaskID, v))
}

// GraphTaskIDLT applies the LT predicate on the "graph_task_id" field.
func GraphTaskIDLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldGraphTaskID, v))
}

// GraphTaskIDLTE applies the LTE predicate on the "graph_task_id" field.
func GraphTaskIDLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldGraphTaskID, v))
}

// GraphTaskIDContains applies the Contains predicate on the "graph_task_id" field.
func GraphTaskIDContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldGraphTaskID, v))
}

// GraphTaskIDHasPrefix applies the HasPrefix predicate on the "graph_task_id" field.
func GraphTaskIDHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldGraphTaskID, v))
}

// GraphTaskIDHasSuffix applies the HasSuffix predicate on the "graph_task_id" field.
func GraphTaskIDHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldGraphTaskID, v))
}

// GraphTaskIDIsNil applies the IsNil predicate on the "graph_task_id" field.
func GraphTaskIDIsNil() predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIsNull(FieldGraphTaskID))
}

// GraphTaskIDNotNil applies the NotNil predicate on the "graph_task_id" field.
func GraphTaskIDNotNil() predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotNull(FieldGraphTaskID))
}

// GraphTaskIDEqualFold applies the EqualFold predicate on the "graph_task_id" field.
func GraphTaskIDEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldGraphTaskID, v))
}

// GraphTaskIDContainsFold applies the ContainsFold predicate on the "graph_task_id" field.
func GraphTaskIDContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldGraphTaskID, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// MessageTypeGT applies the GT predicate on the "message_type" field.
func MessageTypeGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldMessageType, v))
}

// MessageTypeGTE applies the GTE predicate on the "message_type" field.
func MessageTypeGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldMessageType, v))
}

// MessageTypeLT applies the LT predicate on the "message_type" field.
func MessageTypeLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldMessageType, v))
}

// MessageTypeLTE applies the LTE predicate on the "message_type" field.
func MessageTypeLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldMessageType, v))
}

// MessageTypeContains applies the Contains predicate on the "message_type" field.
func MessageTypeContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldMessageType, v))
}

// MessageTypeHasPrefix applies the HasPrefix predicate on the "message_type" field.
func MessageTypeHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldMessageType, v))
}

// MessageTypeHasSuffix applies the HasSuffix predicate on the "message_type" field.
func MessageTypeHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldMessageType, v))
}

// MessageTypeIsNil applies the IsNil predicate on the "message_type" field.
func MessageTypeIsNil() predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIsNull(FieldMessageType))
}

// MessageTypeNotNil applies the NotNil predicate on the "message_type" field.
func MessageTypeNotNil() predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotNull(FieldMessageType))
}

// MessageTypeEqualFold applies the EqualFold predicate on the "message_type" field.
func MessageTypeEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldMessageType, v))
}

// MessageTypeContainsFold applies the ContainsFold predicate on the "message_type" field.
func MessageTypeContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldMessageType, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldContainsFold(FieldMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentMessage {
	return predicate.AgentMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.AgentMessage {
	return predicate.AgentMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PipelineRun) predicate.AgentMessage {
	return predicate.AgentMessage(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentMessage) predicate.AgentMessage {
	return predicate.AgentMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentMessage) predicate.AgentMessage {
	return predicate.AgentMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentMessage) predicate.AgentMessage {
	return predicate.AgentMessage(sql.NotPredicates(p))
}
