// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/agentrun"
	"github.com/foremanhq/foreman/ent/eventlog"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
	"github.com/foremanhq/foreman/ent/predicate"
	"github.com/foremanhq/foreman/ent/project"
	"github.com/foremanhq/foreman/ent/task"
	"github.com/foremanhq/foreman/ent/tasknote"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentMessage  = "AgentMessage"
	TypeAgentRun      = "AgentRun"
	TypeEventLog      = "EventLog"
	TypePMDecisionLog = "PMDecisionLog"
	TypePipelineRun   = "PipelineRun"
	TypeProject       = "Project"
	TypeTask          = "Task"
	TypeTaskNote      = "TaskNote"
)

// AgentMessageMutation represents an operation that mutates the AgentMessage nodes in the graph.
type AgentMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	from_agent    *string
	to_agent      *string
	graph_task_id *string
	message_type  *string
	message       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*AgentMessage, error)
	predicates    []predicate.AgentMessage
}

var _ ent.Mutation = (*AgentMessageMutation)(nil)

// agentmessageOption allows management of the mutation configuration using functional options.
type agentmessageOption func(*AgentMessageMutation)

// newAgentMessageMutation creates new mutation for the AgentMessage entity.
func newAgentMessageMutation(c config, op Op, opts ...agentmessageOption) *AgentMessageMutation {
	m := &AgentMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentMessageID sets the ID field of the mutation.
func withAgentMessageID(id string) agentmessageOption {
	return func(m *AgentMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentMessage
		)
		m.oldValue = func(ctx context.Context) (*AgentMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentMessage sets the old AgentMessage of the mutation.
func withAgentMessage(node *AgentMessage) agentmessageOption {
	return func(m *AgentMessageMutation) {
		m.oldValue = func(context.Context) (*AgentMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentMessage entities.
func (m *AgentMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentMessageMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentMessageMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentMessageMutation) ResetRunID() {
	m.run = nil
}

// SetFromAgent sets the "from_agent" field.
func (m *AgentMessageMutation) SetFromAgent(s string) {
	m.from_agent = &s
}

// FromAgent returns the value of the "from_agent" field in the mutation.
func (m *AgentMessageMutation) FromAgent() (r string, exists bool) {
	v := m.from_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAgent returns the old "from_agent" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldFromAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAgent: %w", err)
	}
	return oldValue.FromAgent, nil
}

// ResetFromAgent resets all changes to the "from_agent" field.
func (m *AgentMessageMutation) ResetFromAgent() {
	m.from_agent = nil
}

// SetToAgent sets the "to_agent" field.
func (m *AgentMessageMutation) SetToAgent(s string) {
	m.to_agent = &s
}

// ToAgent returns the value of the "to_agent" field in the mutation.
func (m *AgentMessageMutation) ToAgent() (r string, exists bool) {
	v := m.to_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldToAgent returns the old "to_agent" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldToAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToAgent: %w", err)
	}
	return oldValue.ToAgent, nil
}

// ResetToAgent resets all changes to the "to_agent" field.
func (m *AgentMessageMutation) ResetToAgent() {
	m.to_agent = nil
}

// SetGraphTaskID sets the "graph_task_id" field.
func (m *AgentMessageMutation) SetGraphTaskID(s string) {
	m.graph_task_id = &s
}

// GraphTaskID returns the value of the "graph_task_id" field in the mutation.
func (m *AgentMessageMutation) GraphTaskID() (r string, exists bool) {
	v := m.graph_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphTaskID returns the old "graph_task_id" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldGraphTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphTaskID: %w", err)
	}
	return oldValue.GraphTaskID, nil
}

// ClearGraphTaskID clears the value of the "graph_task_id" field.
func (m *AgentMessageMutation) ClearGraphTaskID() {
	m.graph_task_id = nil
	m.clearedFields[agentmessage.FieldGraphTaskID] = struct{}{}
}

// GraphTaskIDCleared returns if the "graph_task_id" field was cleared in this mutation.
func (m *AgentMessageMutation) GraphTaskIDCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldGraphTaskID]
	return ok
}

// ResetGraphTaskID resets all changes to the "graph_task_id" field.
func (m *AgentMessageMutation) ResetGraphTaskID() {
	m.graph_task_id = nil
	delete(m.clearedFields, agentmessage.FieldGraphTaskID)
}

// SetMessageType sets the "message_type" field.
func (m *AgentMessageMutation) SetMessageType(s string) {
	m.message_type = &s
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *AgentMessageMutation) MessageType() (r string, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldMessageType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ClearMessageType clears the value of the "message_type" field.
func (m *AgentMessageMutation) ClearMessageType() {
	m.message_type = nil
	m.clearedFields[agentmessage.FieldMessageType] = struct{}{}
}

// MessageTypeCleared returns if the "message_type" field was cleared in this mutation.
func (m *AgentMessageMutation) MessageTypeCleared() bool {
	_, ok := m.clearedFields[agentmessage.FieldMessageType]
	return ok
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *AgentMessageMutation) ResetMessageType() {
	m.message_type = nil
	delete(m.clearedFields, agentmessage.FieldMessageType)
}

// SetMessage sets the "message" field.
func (m *AgentMessageMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AgentMessageMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AgentMessageMutation) ResetMessage() {
	m.message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentMessage entity.
// If the AgentMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *AgentMessageMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentmessage.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *AgentMessageMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentMessageMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentMessageMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the AgentMessageMutation builder.
func (m *AgentMessageMutation) Where(ps ...predicate.AgentMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentMessage).
func (m *AgentMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMessageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run != nil {
		fields = append(fields, agentmessage.FieldRunID)
	}
	if m.from_agent != nil {
		fields = append(fields, agentmessage.FieldFromAgent)
	}
	if m.to_agent != nil {
		fields = append(fields, agentmessage.FieldToAgent)
	}
	if m.graph_task_id != nil {
		fields = append(fields, agentmessage.FieldGraphTaskID)
	}
	if m.message_type != nil {
		fields = append(fields, agentmessage.FieldMessageType)
	}
	if m.message != nil {
		fields = append(fields, agentmessage.FieldMessage)
	}
	if m.created_at != nil {
		fields = append(fields, agentmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentmessage.FieldRunID:
		return m.RunID()
	case agentmessage.FieldFromAgent:
		return m.FromAgent()
	case agentmessage.FieldToAgent:
		return m.ToAgent()
	case agentmessage.FieldGraphTaskID:
		return m.GraphTaskID()
	case agentmessage.FieldMessageType:
		return m.MessageType()
	case agentmessage.FieldMessage:
		return m.Message()
	case agentmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentmessage.FieldRunID:
		return m.OldRunID(ctx)
	case agentmessage.FieldFromAgent:
		return m.OldFromAgent(ctx)
	case agentmessage.FieldToAgent:
		return m.OldToAgent(ctx)
	case agentmessage.FieldGraphTaskID:
		return m.OldGraphTaskID(ctx)
	case agentmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case agentmessage.FieldMessage:
		return m.OldMessage(ctx)
	case agentmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentmessage.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentmessage.FieldFromAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAgent(v)
		return nil
	case agentmessage.FieldToAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToAgent(v)
		return nil
	case agentmessage.FieldGraphTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphTaskID(v)
		return nil
	case agentmessage.FieldMessageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case agentmessage.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case agentmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentmessage.FieldGraphTaskID) {
		fields = append(fields, agentmessage.FieldGraphTaskID)
	}
	if m.FieldCleared(agentmessage.FieldMessageType) {
		fields = append(fields, agentmessage.FieldMessageType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMessageMutation) ClearField(name string) error {
	switch name {
	case agentmessage.FieldGraphTaskID:
		m.ClearGraphTaskID()
		return nil
	case agentmessage.FieldMessageType:
		m.ClearMessageType()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMessageMutation) ResetField(name string) error {
	switch name {
	case agentmessage.FieldRunID:
		m.ResetRunID()
		return nil
	case agentmessage.FieldFromAgent:
		m.ResetFromAgent()
		return nil
	case agentmessage.FieldToAgent:
		m.ResetToAgent()
		return nil
	case agentmessage.FieldGraphTaskID:
		m.ResetGraphTaskID()
		return nil
	case agentmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case agentmessage.FieldMessage:
		m.ResetMessage()
		return nil
	case agentmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, agentmessage.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentmessage.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, agentmessage.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case agentmessage.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMessageMutation) ClearEdge(name string) error {
	switch name {
	case agentmessage.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMessageMutation) ResetEdge(name string) error {
	switch name {
	case agentmessage.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown AgentMessage edge %s", name)
}

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	graph_task_id    *string
	agent            *string
	role             *string
	provider         *string
	model            *string
	attempt          *int
	addattempt       *int
	success          *bool
	input            *string
	output           *string
	error_message    *string
	error_kind       *string
	duration_ms      *int
	addduration_ms   *int
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_usd         *float64
	addcost_usd      *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	run              *string
	clearedrun       bool
	done             bool
	oldValue         func(context.Context) (*AgentRun, error)
	predicates       []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AgentRunMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AgentRunMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AgentRunMutation) ResetRunID() {
	m.run = nil
}

// SetGraphTaskID sets the "graph_task_id" field.
func (m *AgentRunMutation) SetGraphTaskID(s string) {
	m.graph_task_id = &s
}

// GraphTaskID returns the value of the "graph_task_id" field in the mutation.
func (m *AgentRunMutation) GraphTaskID() (r string, exists bool) {
	v := m.graph_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphTaskID returns the old "graph_task_id" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldGraphTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphTaskID: %w", err)
	}
	return oldValue.GraphTaskID, nil
}

// ResetGraphTaskID resets all changes to the "graph_task_id" field.
func (m *AgentRunMutation) ResetGraphTaskID() {
	m.graph_task_id = nil
}

// SetAgent sets the "agent" field.
func (m *AgentRunMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *AgentRunMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *AgentRunMutation) ResetAgent() {
	m.agent = nil
}

// SetRole sets the "role" field.
func (m *AgentRunMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentRunMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *AgentRunMutation) ClearRole() {
	m.role = nil
	m.clearedFields[agentrun.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *AgentRunMutation) RoleCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *AgentRunMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, agentrun.FieldRole)
}

// SetProvider sets the "provider" field.
func (m *AgentRunMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AgentRunMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AgentRunMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *AgentRunMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentRunMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AgentRunMutation) ResetModel() {
	m.model = nil
}

// SetAttempt sets the "attempt" field.
func (m *AgentRunMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *AgentRunMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *AgentRunMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *AgentRunMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *AgentRunMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetSuccess sets the "success" field.
func (m *AgentRunMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AgentRunMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AgentRunMutation) ResetSuccess() {
	m.success = nil
}

// SetInput sets the "input" field.
func (m *AgentRunMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *AgentRunMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *AgentRunMutation) ClearInput() {
	m.input = nil
	m.clearedFields[agentrun.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *AgentRunMutation) InputCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *AgentRunMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, agentrun.FieldInput)
}

// SetOutput sets the "output" field.
func (m *AgentRunMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *AgentRunMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *AgentRunMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[agentrun.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *AgentRunMutation) OutputCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *AgentRunMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, agentrun.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentrun.FieldErrorMessage)
}

// SetErrorKind sets the "error_kind" field.
func (m *AgentRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *AgentRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *AgentRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[agentrun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *AgentRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, agentrun.FieldErrorKind)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentRunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentRunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentRunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentRunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentRunMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentRunMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentRunMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentRunMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentRunMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentRunMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentRunMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentRunMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentRunMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentRunMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *AgentRunMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AgentRunMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AgentRunMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AgentRunMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AgentRunMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *AgentRunMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[agentrun.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *AgentRunMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *AgentRunMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *AgentRunMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.run != nil {
		fields = append(fields, agentrun.FieldRunID)
	}
	if m.graph_task_id != nil {
		fields = append(fields, agentrun.FieldGraphTaskID)
	}
	if m.agent != nil {
		fields = append(fields, agentrun.FieldAgent)
	}
	if m.role != nil {
		fields = append(fields, agentrun.FieldRole)
	}
	if m.provider != nil {
		fields = append(fields, agentrun.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, agentrun.FieldModel)
	}
	if m.attempt != nil {
		fields = append(fields, agentrun.FieldAttempt)
	}
	if m.success != nil {
		fields = append(fields, agentrun.FieldSuccess)
	}
	if m.input != nil {
		fields = append(fields, agentrun.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, agentrun.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.error_kind != nil {
		fields = append(fields, agentrun.FieldErrorKind)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentrun.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentrun.FieldOutputTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, agentrun.FieldCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, agentrun.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldRunID:
		return m.RunID()
	case agentrun.FieldGraphTaskID:
		return m.GraphTaskID()
	case agentrun.FieldAgent:
		return m.Agent()
	case agentrun.FieldRole:
		return m.Role()
	case agentrun.FieldProvider:
		return m.Provider()
	case agentrun.FieldModel:
		return m.Model()
	case agentrun.FieldAttempt:
		return m.Attempt()
	case agentrun.FieldSuccess:
		return m.Success()
	case agentrun.FieldInput:
		return m.Input()
	case agentrun.FieldOutput:
		return m.Output()
	case agentrun.FieldErrorMessage:
		return m.ErrorMessage()
	case agentrun.FieldErrorKind:
		return m.ErrorKind()
	case agentrun.FieldDurationMs:
		return m.DurationMs()
	case agentrun.FieldInputTokens:
		return m.InputTokens()
	case agentrun.FieldOutputTokens:
		return m.OutputTokens()
	case agentrun.FieldCostUsd:
		return m.CostUsd()
	case agentrun.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldRunID:
		return m.OldRunID(ctx)
	case agentrun.FieldGraphTaskID:
		return m.OldGraphTaskID(ctx)
	case agentrun.FieldAgent:
		return m.OldAgent(ctx)
	case agentrun.FieldRole:
		return m.OldRole(ctx)
	case agentrun.FieldProvider:
		return m.OldProvider(ctx)
	case agentrun.FieldModel:
		return m.OldModel(ctx)
	case agentrun.FieldAttempt:
		return m.OldAttempt(ctx)
	case agentrun.FieldSuccess:
		return m.OldSuccess(ctx)
	case agentrun.FieldInput:
		return m.OldInput(ctx)
	case agentrun.FieldOutput:
		return m.OldOutput(ctx)
	case agentrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentrun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case agentrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentrun.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentrun.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentrun.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case agentrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case agentrun.FieldGraphTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphTaskID(v)
		return nil
	case agentrun.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case agentrun.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agentrun.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case agentrun.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentrun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case agentrun.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case agentrun.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case agentrun.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case agentrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentrun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case agentrun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentrun.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentrun.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentrun.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case agentrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, agentrun.FieldAttempt)
	}
	if m.addduration_ms != nil {
		fields = append(fields, agentrun.FieldDurationMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, agentrun.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentrun.FieldOutputTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, agentrun.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldAttempt:
		return m.AddedAttempt()
	case agentrun.FieldDurationMs:
		return m.AddedDurationMs()
	case agentrun.FieldInputTokens:
		return m.AddedInputTokens()
	case agentrun.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agentrun.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case agentrun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case agentrun.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentrun.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agentrun.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldRole) {
		fields = append(fields, agentrun.FieldRole)
	}
	if m.FieldCleared(agentrun.FieldInput) {
		fields = append(fields, agentrun.FieldInput)
	}
	if m.FieldCleared(agentrun.FieldOutput) {
		fields = append(fields, agentrun.FieldOutput)
	}
	if m.FieldCleared(agentrun.FieldErrorMessage) {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.FieldCleared(agentrun.FieldErrorKind) {
		fields = append(fields, agentrun.FieldErrorKind)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldRole:
		m.ClearRole()
		return nil
	case agentrun.FieldInput:
		m.ClearInput()
		return nil
	case agentrun.FieldOutput:
		m.ClearOutput()
		return nil
	case agentrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentrun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldRunID:
		m.ResetRunID()
		return nil
	case agentrun.FieldGraphTaskID:
		m.ResetGraphTaskID()
		return nil
	case agentrun.FieldAgent:
		m.ResetAgent()
		return nil
	case agentrun.FieldRole:
		m.ResetRole()
		return nil
	case agentrun.FieldProvider:
		m.ResetProvider()
		return nil
	case agentrun.FieldModel:
		m.ResetModel()
		return nil
	case agentrun.FieldAttempt:
		m.ResetAttempt()
		return nil
	case agentrun.FieldSuccess:
		m.ResetSuccess()
		return nil
	case agentrun.FieldInput:
		m.ResetInput()
		return nil
	case agentrun.FieldOutput:
		m.ResetOutput()
		return nil
	case agentrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentrun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case agentrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentrun.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentrun.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentrun.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case agentrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, agentrun.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, agentrun.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	case agentrun.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// EventLogMutation represents an operation that mutates the EventLog nodes in the graph.
type EventLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_id    *string
	event_type    *string
	agent         *string
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*EventLog, error)
	predicates    []predicate.EventLog
}

var _ ent.Mutation = (*EventLogMutation)(nil)

// eventlogOption allows management of the mutation configuration using functional options.
type eventlogOption func(*EventLogMutation)

// newEventLogMutation creates new mutation for the EventLog entity.
func newEventLogMutation(c config, op Op, opts ...eventlogOption) *EventLogMutation {
	m := &EventLogMutation{
		config:        c,
		op:            op,
		typ:           TypeEventLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventLogID sets the ID field of the mutation.
func withEventLogID(id string) eventlogOption {
	return func(m *EventLogMutation) {
		var (
			err   error
			once  sync.Once
			value *EventLog
		)
		m.oldValue = func(ctx context.Context) (*EventLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventLog sets the old EventLog of the mutation.
func withEventLog(node *EventLog) eventlogOption {
	return func(m *EventLogMutation) {
		m.oldValue = func(context.Context) (*EventLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventLog entities.
func (m *EventLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *EventLogMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *EventLogMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the EventLog entity.
// If the EventLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventLogMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *EventLogMutation) ResetRunID() {
	m.run = nil
}

// SetProjectID sets the "project_id" field.
func (m *EventLogMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventLogMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the EventLog entity.
// If the EventLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventLogMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventLogMutation) ResetProjectID() {
	m.project_id = nil
}

// SetEventType sets the "event_type" field.
func (m *EventLogMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventLogMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EventLog entity.
// If the EventLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventLogMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventLogMutation) ResetEventType() {
	m.event_type = nil
}

// SetAgent sets the "agent" field.
func (m *EventLogMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *EventLogMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the EventLog entity.
// If the EventLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventLogMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *EventLogMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[eventlog.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *EventLogMutation) AgentCleared() bool {
	_, ok := m.clearedFields[eventlog.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *EventLogMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, eventlog.FieldAgent)
}

// SetContent sets the "content" field.
func (m *EventLogMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EventLogMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the EventLog entity.
// If the EventLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventLogMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *EventLogMutation) ClearContent() {
	m.content = nil
	m.clearedFields[eventlog.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *EventLogMutation) ContentCleared() bool {
	_, ok := m.clearedFields[eventlog.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *EventLogMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, eventlog.FieldContent)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventLog entity.
// If the EventLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *EventLogMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[eventlog.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *EventLogMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *EventLogMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *EventLogMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the EventLogMutation builder.
func (m *EventLogMutation) Where(ps ...predicate.EventLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventLog).
func (m *EventLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, eventlog.FieldRunID)
	}
	if m.project_id != nil {
		fields = append(fields, eventlog.FieldProjectID)
	}
	if m.event_type != nil {
		fields = append(fields, eventlog.FieldEventType)
	}
	if m.agent != nil {
		fields = append(fields, eventlog.FieldAgent)
	}
	if m.content != nil {
		fields = append(fields, eventlog.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, eventlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventlog.FieldRunID:
		return m.RunID()
	case eventlog.FieldProjectID:
		return m.ProjectID()
	case eventlog.FieldEventType:
		return m.EventType()
	case eventlog.FieldAgent:
		return m.Agent()
	case eventlog.FieldContent:
		return m.Content()
	case eventlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventlog.FieldRunID:
		return m.OldRunID(ctx)
	case eventlog.FieldProjectID:
		return m.OldProjectID(ctx)
	case eventlog.FieldEventType:
		return m.OldEventType(ctx)
	case eventlog.FieldAgent:
		return m.OldAgent(ctx)
	case eventlog.FieldContent:
		return m.OldContent(ctx)
	case eventlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventlog.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case eventlog.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case eventlog.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case eventlog.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case eventlog.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case eventlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventlog.FieldAgent) {
		fields = append(fields, eventlog.FieldAgent)
	}
	if m.FieldCleared(eventlog.FieldContent) {
		fields = append(fields, eventlog.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventLogMutation) ClearField(name string) error {
	switch name {
	case eventlog.FieldAgent:
		m.ClearAgent()
		return nil
	case eventlog.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown EventLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventLogMutation) ResetField(name string) error {
	switch name {
	case eventlog.FieldRunID:
		m.ResetRunID()
		return nil
	case eventlog.FieldProjectID:
		m.ResetProjectID()
		return nil
	case eventlog.FieldEventType:
		m.ResetEventType()
		return nil
	case eventlog.FieldAgent:
		m.ResetAgent()
		return nil
	case eventlog.FieldContent:
		m.ResetContent()
		return nil
	case eventlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, eventlog.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventlog.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, eventlog.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventLogMutation) EdgeCleared(name string) bool {
	switch name {
	case eventlog.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventLogMutation) ClearEdge(name string) error {
	switch name {
	case eventlog.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown EventLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventLogMutation) ResetEdge(name string) error {
	switch name {
	case eventlog.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown EventLog edge %s", name)
}

// PMDecisionLogMutation represents an operation that mutates the PMDecisionLog nodes in the graph.
type PMDecisionLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	round         *int
	addround      *int
	trigger_kind  *string
	reasoning     *string
	actions_json  *string
	raw_response  *string
	parse_failed  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*PMDecisionLog, error)
	predicates    []predicate.PMDecisionLog
}

var _ ent.Mutation = (*PMDecisionLogMutation)(nil)

// pmdecisionlogOption allows management of the mutation configuration using functional options.
type pmdecisionlogOption func(*PMDecisionLogMutation)

// newPMDecisionLogMutation creates new mutation for the PMDecisionLog entity.
func newPMDecisionLogMutation(c config, op Op, opts ...pmdecisionlogOption) *PMDecisionLogMutation {
	m := &PMDecisionLogMutation{
		config:        c,
		op:            op,
		typ:           TypePMDecisionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPMDecisionLogID sets the ID field of the mutation.
func withPMDecisionLogID(id string) pmdecisionlogOption {
	return func(m *PMDecisionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *PMDecisionLog
		)
		m.oldValue = func(ctx context.Context) (*PMDecisionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PMDecisionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPMDecisionLog sets the old PMDecisionLog of the mutation.
func withPMDecisionLog(node *PMDecisionLog) pmdecisionlogOption {
	return func(m *PMDecisionLogMutation) {
		m.oldValue = func(context.Context) (*PMDecisionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PMDecisionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PMDecisionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PMDecisionLog entities.
func (m *PMDecisionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PMDecisionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PMDecisionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PMDecisionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *PMDecisionLogMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *PMDecisionLogMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *PMDecisionLogMutation) ResetRunID() {
	m.run = nil
}

// SetRound sets the "round" field.
func (m *PMDecisionLogMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *PMDecisionLogMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *PMDecisionLogMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *PMDecisionLogMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *PMDecisionLogMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetTriggerKind sets the "trigger_kind" field.
func (m *PMDecisionLogMutation) SetTriggerKind(s string) {
	m.trigger_kind = &s
}

// TriggerKind returns the value of the "trigger_kind" field in the mutation.
func (m *PMDecisionLogMutation) TriggerKind() (r string, exists bool) {
	v := m.trigger_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerKind returns the old "trigger_kind" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldTriggerKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerKind: %w", err)
	}
	return oldValue.TriggerKind, nil
}

// ResetTriggerKind resets all changes to the "trigger_kind" field.
func (m *PMDecisionLogMutation) ResetTriggerKind() {
	m.trigger_kind = nil
}

// SetReasoning sets the "reasoning" field.
func (m *PMDecisionLogMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *PMDecisionLogMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *PMDecisionLogMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[pmdecisionlog.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *PMDecisionLogMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[pmdecisionlog.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *PMDecisionLogMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, pmdecisionlog.FieldReasoning)
}

// SetActionsJSON sets the "actions_json" field.
func (m *PMDecisionLogMutation) SetActionsJSON(s string) {
	m.actions_json = &s
}

// ActionsJSON returns the value of the "actions_json" field in the mutation.
func (m *PMDecisionLogMutation) ActionsJSON() (r string, exists bool) {
	v := m.actions_json
	if v == nil {
		return
	}
	return *v, true
}

// OldActionsJSON returns the old "actions_json" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldActionsJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionsJSON: %w", err)
	}
	return oldValue.ActionsJSON, nil
}

// ClearActionsJSON clears the value of the "actions_json" field.
func (m *PMDecisionLogMutation) ClearActionsJSON() {
	m.actions_json = nil
	m.clearedFields[pmdecisionlog.FieldActionsJSON] = struct{}{}
}

// ActionsJSONCleared returns if the "actions_json" field was cleared in this mutation.
func (m *PMDecisionLogMutation) ActionsJSONCleared() bool {
	_, ok := m.clearedFields[pmdecisionlog.FieldActionsJSON]
	return ok
}

// ResetActionsJSON resets all changes to the "actions_json" field.
func (m *PMDecisionLogMutation) ResetActionsJSON() {
	m.actions_json = nil
	delete(m.clearedFields, pmdecisionlog.FieldActionsJSON)
}

// SetRawResponse sets the "raw_response" field.
func (m *PMDecisionLogMutation) SetRawResponse(s string) {
	m.raw_response = &s
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *PMDecisionLogMutation) RawResponse() (r string, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldRawResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *PMDecisionLogMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[pmdecisionlog.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *PMDecisionLogMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[pmdecisionlog.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *PMDecisionLogMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, pmdecisionlog.FieldRawResponse)
}

// SetParseFailed sets the "parse_failed" field.
func (m *PMDecisionLogMutation) SetParseFailed(b bool) {
	m.parse_failed = &b
}

// ParseFailed returns the value of the "parse_failed" field in the mutation.
func (m *PMDecisionLogMutation) ParseFailed() (r bool, exists bool) {
	v := m.parse_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldParseFailed returns the old "parse_failed" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldParseFailed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParseFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParseFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParseFailed: %w", err)
	}
	return oldValue.ParseFailed, nil
}

// ResetParseFailed resets all changes to the "parse_failed" field.
func (m *PMDecisionLogMutation) ResetParseFailed() {
	m.parse_failed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PMDecisionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PMDecisionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PMDecisionLog entity.
// If the PMDecisionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMDecisionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PMDecisionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *PMDecisionLogMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[pmdecisionlog.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *PMDecisionLogMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *PMDecisionLogMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *PMDecisionLogMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the PMDecisionLogMutation builder.
func (m *PMDecisionLogMutation) Where(ps ...predicate.PMDecisionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PMDecisionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PMDecisionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PMDecisionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PMDecisionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PMDecisionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PMDecisionLog).
func (m *PMDecisionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PMDecisionLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.run != nil {
		fields = append(fields, pmdecisionlog.FieldRunID)
	}
	if m.round != nil {
		fields = append(fields, pmdecisionlog.FieldRound)
	}
	if m.trigger_kind != nil {
		fields = append(fields, pmdecisionlog.FieldTriggerKind)
	}
	if m.reasoning != nil {
		fields = append(fields, pmdecisionlog.FieldReasoning)
	}
	if m.actions_json != nil {
		fields = append(fields, pmdecisionlog.FieldActionsJSON)
	}
	if m.raw_response != nil {
		fields = append(fields, pmdecisionlog.FieldRawResponse)
	}
	if m.parse_failed != nil {
		fields = append(fields, pmdecisionlog.FieldParseFailed)
	}
	if m.created_at != nil {
		fields = append(fields, pmdecisionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PMDecisionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pmdecisionlog.FieldRunID:
		return m.RunID()
	case pmdecisionlog.FieldRound:
		return m.Round()
	case pmdecisionlog.FieldTriggerKind:
		return m.TriggerKind()
	case pmdecisionlog.FieldReasoning:
		return m.Reasoning()
	case pmdecisionlog.FieldActionsJSON:
		return m.ActionsJSON()
	case pmdecisionlog.FieldRawResponse:
		return m.RawResponse()
	case pmdecisionlog.FieldParseFailed:
		return m.ParseFailed()
	case pmdecisionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PMDecisionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pmdecisionlog.FieldRunID:
		return m.OldRunID(ctx)
	case pmdecisionlog.FieldRound:
		return m.OldRound(ctx)
	case pmdecisionlog.FieldTriggerKind:
		return m.OldTriggerKind(ctx)
	case pmdecisionlog.FieldReasoning:
		return m.OldReasoning(ctx)
	case pmdecisionlog.FieldActionsJSON:
		return m.OldActionsJSON(ctx)
	case pmdecisionlog.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case pmdecisionlog.FieldParseFailed:
		return m.OldParseFailed(ctx)
	case pmdecisionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PMDecisionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PMDecisionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pmdecisionlog.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case pmdecisionlog.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case pmdecisionlog.FieldTriggerKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerKind(v)
		return nil
	case pmdecisionlog.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case pmdecisionlog.FieldActionsJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionsJSON(v)
		return nil
	case pmdecisionlog.FieldRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case pmdecisionlog.FieldParseFailed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParseFailed(v)
		return nil
	case pmdecisionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PMDecisionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PMDecisionLogMutation) AddedFields() []string {
	var fields []string
	if m.addround != nil {
		fields = append(fields, pmdecisionlog.FieldRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PMDecisionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pmdecisionlog.FieldRound:
		return m.AddedRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PMDecisionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pmdecisionlog.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	}
	return fmt.Errorf("unknown PMDecisionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PMDecisionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pmdecisionlog.FieldReasoning) {
		fields = append(fields, pmdecisionlog.FieldReasoning)
	}
	if m.FieldCleared(pmdecisionlog.FieldActionsJSON) {
		fields = append(fields, pmdecisionlog.FieldActionsJSON)
	}
	if m.FieldCleared(pmdecisionlog.FieldRawResponse) {
		fields = append(fields, pmdecisionlog.FieldRawResponse)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PMDecisionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PMDecisionLogMutation) ClearField(name string) error {
	switch name {
	case pmdecisionlog.FieldReasoning:
		m.ClearReasoning()
		return nil
	case pmdecisionlog.FieldActionsJSON:
		m.ClearActionsJSON()
		return nil
	case pmdecisionlog.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	}
	return fmt.Errorf("unknown PMDecisionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PMDecisionLogMutation) ResetField(name string) error {
	switch name {
	case pmdecisionlog.FieldRunID:
		m.ResetRunID()
		return nil
	case pmdecisionlog.FieldRound:
		m.ResetRound()
		return nil
	case pmdecisionlog.FieldTriggerKind:
		m.ResetTriggerKind()
		return nil
	case pmdecisionlog.FieldReasoning:
		m.ResetReasoning()
		return nil
	case pmdecisionlog.FieldActionsJSON:
		m.ResetActionsJSON()
		return nil
	case pmdecisionlog.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case pmdecisionlog.FieldParseFailed:
		m.ResetParseFailed()
		return nil
	case pmdecisionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PMDecisionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PMDecisionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, pmdecisionlog.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PMDecisionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pmdecisionlog.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PMDecisionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PMDecisionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PMDecisionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, pmdecisionlog.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PMDecisionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case pmdecisionlog.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PMDecisionLogMutation) ClearEdge(name string) error {
	switch name {
	case pmdecisionlog.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown PMDecisionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PMDecisionLogMutation) ResetEdge(name string) error {
	switch name {
	case pmdecisionlog.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown PMDecisionLog edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	project_id            *string
	request               *string
	status                *pipelinerun.Status
	graph_json            *string
	decision_count        *int
	adddecision_count     *int
	running_cost          *float64
	addrunning_cost       *float64
	current_step          *int
	addcurrent_step       *int
	steps_json            *string
	error_message         *string
	last_heartbeat        *time.Time
	created_at            *time.Time
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	tasks                 map[string]struct{}
	removedtasks          map[string]struct{}
	clearedtasks          bool
	task_notes            map[string]struct{}
	removedtask_notes     map[string]struct{}
	clearedtask_notes     bool
	agent_runs            map[string]struct{}
	removedagent_runs     map[string]struct{}
	clearedagent_runs     bool
	agent_messages        map[string]struct{}
	removedagent_messages map[string]struct{}
	clearedagent_messages bool
	event_logs            map[string]struct{}
	removedevent_logs     map[string]struct{}
	clearedevent_logs     bool
	pm_decisions          map[string]struct{}
	removedpm_decisions   map[string]struct{}
	clearedpm_decisions   bool
	done                  bool
	oldValue              func(context.Context) (*PipelineRun, error)
	predicates            []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *PipelineRunMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *PipelineRunMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *PipelineRunMutation) ResetProjectID() {
	m.project_id = nil
}

// SetRequest sets the "request" field.
func (m *PipelineRunMutation) SetRequest(s string) {
	m.request = &s
}

// Request returns the value of the "request" field in the mutation.
func (m *PipelineRunMutation) Request() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ResetRequest resets all changes to the "request" field.
func (m *PipelineRunMutation) ResetRequest() {
	m.request = nil
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetGraphJSON sets the "graph_json" field.
func (m *PipelineRunMutation) SetGraphJSON(s string) {
	m.graph_json = &s
}

// GraphJSON returns the value of the "graph_json" field in the mutation.
func (m *PipelineRunMutation) GraphJSON() (r string, exists bool) {
	v := m.graph_json
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphJSON returns the old "graph_json" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldGraphJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphJSON: %w", err)
	}
	return oldValue.GraphJSON, nil
}

// ResetGraphJSON resets all changes to the "graph_json" field.
func (m *PipelineRunMutation) ResetGraphJSON() {
	m.graph_json = nil
}

// SetDecisionCount sets the "decision_count" field.
func (m *PipelineRunMutation) SetDecisionCount(i int) {
	m.decision_count = &i
	m.adddecision_count = nil
}

// DecisionCount returns the value of the "decision_count" field in the mutation.
func (m *PipelineRunMutation) DecisionCount() (r int, exists bool) {
	v := m.decision_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionCount returns the old "decision_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDecisionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionCount: %w", err)
	}
	return oldValue.DecisionCount, nil
}

// AddDecisionCount adds i to the "decision_count" field.
func (m *PipelineRunMutation) AddDecisionCount(i int) {
	if m.adddecision_count != nil {
		*m.adddecision_count += i
	} else {
		m.adddecision_count = &i
	}
}

// AddedDecisionCount returns the value that was added to the "decision_count" field in this mutation.
func (m *PipelineRunMutation) AddedDecisionCount() (r int, exists bool) {
	v := m.adddecision_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDecisionCount resets all changes to the "decision_count" field.
func (m *PipelineRunMutation) ResetDecisionCount() {
	m.decision_count = nil
	m.adddecision_count = nil
}

// SetRunningCost sets the "running_cost" field.
func (m *PipelineRunMutation) SetRunningCost(f float64) {
	m.running_cost = &f
	m.addrunning_cost = nil
}

// RunningCost returns the value of the "running_cost" field in the mutation.
func (m *PipelineRunMutation) RunningCost() (r float64, exists bool) {
	v := m.running_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldRunningCost returns the old "running_cost" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldRunningCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunningCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunningCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunningCost: %w", err)
	}
	return oldValue.RunningCost, nil
}

// AddRunningCost adds f to the "running_cost" field.
func (m *PipelineRunMutation) AddRunningCost(f float64) {
	if m.addrunning_cost != nil {
		*m.addrunning_cost += f
	} else {
		m.addrunning_cost = &f
	}
}

// AddedRunningCost returns the value that was added to the "running_cost" field in this mutation.
func (m *PipelineRunMutation) AddedRunningCost() (r float64, exists bool) {
	v := m.addrunning_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunningCost resets all changes to the "running_cost" field.
func (m *PipelineRunMutation) ResetRunningCost() {
	m.running_cost = nil
	m.addrunning_cost = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *PipelineRunMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *PipelineRunMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCurrentStep(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *PipelineRunMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *PipelineRunMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *PipelineRunMutation) ClearCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
	m.clearedFields[pipelinerun.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *PipelineRunMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *PipelineRunMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
	delete(m.clearedFields, pipelinerun.FieldCurrentStep)
}

// SetStepsJSON sets the "steps_json" field.
func (m *PipelineRunMutation) SetStepsJSON(s string) {
	m.steps_json = &s
}

// StepsJSON returns the value of the "steps_json" field in the mutation.
func (m *PipelineRunMutation) StepsJSON() (r string, exists bool) {
	v := m.steps_json
	if v == nil {
		return
	}
	return *v, true
}

// OldStepsJSON returns the old "steps_json" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStepsJSON(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepsJSON: %w", err)
	}
	return oldValue.StepsJSON, nil
}

// ClearStepsJSON clears the value of the "steps_json" field.
func (m *PipelineRunMutation) ClearStepsJSON() {
	m.steps_json = nil
	m.clearedFields[pipelinerun.FieldStepsJSON] = struct{}{}
}

// StepsJSONCleared returns if the "steps_json" field was cleared in this mutation.
func (m *PipelineRunMutation) StepsJSONCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldStepsJSON]
	return ok
}

// ResetStepsJSON resets all changes to the "steps_json" field.
func (m *PipelineRunMutation) ResetStepsJSON() {
	m.steps_json = nil
	delete(m.clearedFields, pipelinerun.FieldStepsJSON)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinerun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinerun.FieldErrorMessage)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *PipelineRunMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *PipelineRunMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *PipelineRunMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[pipelinerun.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *PipelineRunMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *PipelineRunMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, pipelinerun.FieldLastHeartbeat)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PipelineRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PipelineRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PipelineRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[pipelinerun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PipelineRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PipelineRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, pipelinerun.FieldCompletedAt)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *PipelineRunMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *PipelineRunMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *PipelineRunMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *PipelineRunMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *PipelineRunMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *PipelineRunMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *PipelineRunMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddTaskNoteIDs adds the "task_notes" edge to the TaskNote entity by ids.
func (m *PipelineRunMutation) AddTaskNoteIDs(ids ...string) {
	if m.task_notes == nil {
		m.task_notes = make(map[string]struct{})
	}
	for i := range ids {
		m.task_notes[ids[i]] = struct{}{}
	}
}

// ClearTaskNotes clears the "task_notes" edge to the TaskNote entity.
func (m *PipelineRunMutation) ClearTaskNotes() {
	m.clearedtask_notes = true
}

// TaskNotesCleared reports if the "task_notes" edge to the TaskNote entity was cleared.
func (m *PipelineRunMutation) TaskNotesCleared() bool {
	return m.clearedtask_notes
}

// RemoveTaskNoteIDs removes the "task_notes" edge to the TaskNote entity by IDs.
func (m *PipelineRunMutation) RemoveTaskNoteIDs(ids ...string) {
	if m.removedtask_notes == nil {
		m.removedtask_notes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.task_notes, ids[i])
		m.removedtask_notes[ids[i]] = struct{}{}
	}
}

// RemovedTaskNotes returns the removed IDs of the "task_notes" edge to the TaskNote entity.
func (m *PipelineRunMutation) RemovedTaskNotesIDs() (ids []string) {
	for id := range m.removedtask_notes {
		ids = append(ids, id)
	}
	return
}

// TaskNotesIDs returns the "task_notes" edge IDs in the mutation.
func (m *PipelineRunMutation) TaskNotesIDs() (ids []string) {
	for id := range m.task_notes {
		ids = append(ids, id)
	}
	return
}

// ResetTaskNotes resets all changes to the "task_notes" edge.
func (m *PipelineRunMutation) ResetTaskNotes() {
	m.task_notes = nil
	m.clearedtask_notes = false
	m.removedtask_notes = nil
}

// AddAgentRunIDs adds the "agent_runs" edge to the AgentRun entity by ids.
func (m *PipelineRunMutation) AddAgentRunIDs(ids ...string) {
	if m.agent_runs == nil {
		m.agent_runs = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_runs[ids[i]] = struct{}{}
	}
}

// ClearAgentRuns clears the "agent_runs" edge to the AgentRun entity.
func (m *PipelineRunMutation) ClearAgentRuns() {
	m.clearedagent_runs = true
}

// AgentRunsCleared reports if the "agent_runs" edge to the AgentRun entity was cleared.
func (m *PipelineRunMutation) AgentRunsCleared() bool {
	return m.clearedagent_runs
}

// RemoveAgentRunIDs removes the "agent_runs" edge to the AgentRun entity by IDs.
func (m *PipelineRunMutation) RemoveAgentRunIDs(ids ...string) {
	if m.removedagent_runs == nil {
		m.removedagent_runs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_runs, ids[i])
		m.removedagent_runs[ids[i]] = struct{}{}
	}
}

// RemovedAgentRuns returns the removed IDs of the "agent_runs" edge to the AgentRun entity.
func (m *PipelineRunMutation) RemovedAgentRunsIDs() (ids []string) {
	for id := range m.removedagent_runs {
		ids = append(ids, id)
	}
	return
}

// AgentRunsIDs returns the "agent_runs" edge IDs in the mutation.
func (m *PipelineRunMutation) AgentRunsIDs() (ids []string) {
	for id := range m.agent_runs {
		ids = append(ids, id)
	}
	return
}

// ResetAgentRuns resets all changes to the "agent_runs" edge.
func (m *PipelineRunMutation) ResetAgentRuns() {
	m.agent_runs = nil
	m.clearedagent_runs = false
	m.removedagent_runs = nil
}

// AddAgentMessageIDs adds the "agent_messages" edge to the AgentMessage entity by ids.
func (m *PipelineRunMutation) AddAgentMessageIDs(ids ...string) {
	if m.agent_messages == nil {
		m.agent_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_messages[ids[i]] = struct{}{}
	}
}

// ClearAgentMessages clears the "agent_messages" edge to the AgentMessage entity.
func (m *PipelineRunMutation) ClearAgentMessages() {
	m.clearedagent_messages = true
}

// AgentMessagesCleared reports if the "agent_messages" edge to the AgentMessage entity was cleared.
func (m *PipelineRunMutation) AgentMessagesCleared() bool {
	return m.clearedagent_messages
}

// RemoveAgentMessageIDs removes the "agent_messages" edge to the AgentMessage entity by IDs.
func (m *PipelineRunMutation) RemoveAgentMessageIDs(ids ...string) {
	if m.removedagent_messages == nil {
		m.removedagent_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_messages, ids[i])
		m.removedagent_messages[ids[i]] = struct{}{}
	}
}

// RemovedAgentMessages returns the removed IDs of the "agent_messages" edge to the AgentMessage entity.
func (m *PipelineRunMutation) RemovedAgentMessagesIDs() (ids []string) {
	for id := range m.removedagent_messages {
		ids = append(ids, id)
	}
	return
}

// AgentMessagesIDs returns the "agent_messages" edge IDs in the mutation.
func (m *PipelineRunMutation) AgentMessagesIDs() (ids []string) {
	for id := range m.agent_messages {
		ids = append(ids, id)
	}
	return
}

// ResetAgentMessages resets all changes to the "agent_messages" edge.
func (m *PipelineRunMutation) ResetAgentMessages() {
	m.agent_messages = nil
	m.clearedagent_messages = false
	m.removedagent_messages = nil
}

// AddEventLogIDs adds the "event_logs" edge to the EventLog entity by ids.
func (m *PipelineRunMutation) AddEventLogIDs(ids ...string) {
	if m.event_logs == nil {
		m.event_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.event_logs[ids[i]] = struct{}{}
	}
}

// ClearEventLogs clears the "event_logs" edge to the EventLog entity.
func (m *PipelineRunMutation) ClearEventLogs() {
	m.clearedevent_logs = true
}

// EventLogsCleared reports if the "event_logs" edge to the EventLog entity was cleared.
func (m *PipelineRunMutation) EventLogsCleared() bool {
	return m.clearedevent_logs
}

// RemoveEventLogIDs removes the "event_logs" edge to the EventLog entity by IDs.
func (m *PipelineRunMutation) RemoveEventLogIDs(ids ...string) {
	if m.removedevent_logs == nil {
		m.removedevent_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.event_logs, ids[i])
		m.removedevent_logs[ids[i]] = struct{}{}
	}
}

// RemovedEventLogs returns the removed IDs of the "event_logs" edge to the EventLog entity.
func (m *PipelineRunMutation) RemovedEventLogsIDs() (ids []string) {
	for id := range m.removedevent_logs {
		ids = append(ids, id)
	}
	return
}

// EventLogsIDs returns the "event_logs" edge IDs in the mutation.
func (m *PipelineRunMutation) EventLogsIDs() (ids []string) {
	for id := range m.event_logs {
		ids = append(ids, id)
	}
	return
}

// ResetEventLogs resets all changes to the "event_logs" edge.
func (m *PipelineRunMutation) ResetEventLogs() {
	m.event_logs = nil
	m.clearedevent_logs = false
	m.removedevent_logs = nil
}

// AddPmDecisionIDs adds the "pm_decisions" edge to the PMDecisionLog entity by ids.
func (m *PipelineRunMutation) AddPmDecisionIDs(ids ...string) {
	if m.pm_decisions == nil {
		m.pm_decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.pm_decisions[ids[i]] = struct{}{}
	}
}

// ClearPmDecisions clears the "pm_decisions" edge to the PMDecisionLog entity.
func (m *PipelineRunMutation) ClearPmDecisions() {
	m.clearedpm_decisions = true
}

// PmDecisionsCleared reports if the "pm_decisions" edge to the PMDecisionLog entity was cleared.
func (m *PipelineRunMutation) PmDecisionsCleared() bool {
	return m.clearedpm_decisions
}

// RemovePmDecisionIDs removes the "pm_decisions" edge to the PMDecisionLog entity by IDs.
func (m *PipelineRunMutation) RemovePmDecisionIDs(ids ...string) {
	if m.removedpm_decisions == nil {
		m.removedpm_decisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pm_decisions, ids[i])
		m.removedpm_decisions[ids[i]] = struct{}{}
	}
}

// RemovedPmDecisions returns the removed IDs of the "pm_decisions" edge to the PMDecisionLog entity.
func (m *PipelineRunMutation) RemovedPmDecisionsIDs() (ids []string) {
	for id := range m.removedpm_decisions {
		ids = append(ids, id)
	}
	return
}

// PmDecisionsIDs returns the "pm_decisions" edge IDs in the mutation.
func (m *PipelineRunMutation) PmDecisionsIDs() (ids []string) {
	for id := range m.pm_decisions {
		ids = append(ids, id)
	}
	return
}

// ResetPmDecisions resets all changes to the "pm_decisions" edge.
func (m *PipelineRunMutation) ResetPmDecisions() {
	m.pm_decisions = nil
	m.clearedpm_decisions = false
	m.removedpm_decisions = nil
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.project_id != nil {
		fields = append(fields, pipelinerun.FieldProjectID)
	}
	if m.request != nil {
		fields = append(fields, pipelinerun.FieldRequest)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.graph_json != nil {
		fields = append(fields, pipelinerun.FieldGraphJSON)
	}
	if m.decision_count != nil {
		fields = append(fields, pipelinerun.FieldDecisionCount)
	}
	if m.running_cost != nil {
		fields = append(fields, pipelinerun.FieldRunningCost)
	}
	if m.current_step != nil {
		fields = append(fields, pipelinerun.FieldCurrentStep)
	}
	if m.steps_json != nil {
		fields = append(fields, pipelinerun.FieldStepsJSON)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, pipelinerun.FieldLastHeartbeat)
	}
	if m.created_at != nil {
		fields = append(fields, pipelinerun.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldProjectID:
		return m.ProjectID()
	case pipelinerun.FieldRequest:
		return m.Request()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldGraphJSON:
		return m.GraphJSON()
	case pipelinerun.FieldDecisionCount:
		return m.DecisionCount()
	case pipelinerun.FieldRunningCost:
		return m.RunningCost()
	case pipelinerun.FieldCurrentStep:
		return m.CurrentStep()
	case pipelinerun.FieldStepsJSON:
		return m.StepsJSON()
	case pipelinerun.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinerun.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case pipelinerun.FieldCreatedAt:
		return m.CreatedAt()
	case pipelinerun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldProjectID:
		return m.OldProjectID(ctx)
	case pipelinerun.FieldRequest:
		return m.OldRequest(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldGraphJSON:
		return m.OldGraphJSON(ctx)
	case pipelinerun.FieldDecisionCount:
		return m.OldDecisionCount(ctx)
	case pipelinerun.FieldRunningCost:
		return m.OldRunningCost(ctx)
	case pipelinerun.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case pipelinerun.FieldStepsJSON:
		return m.OldStepsJSON(ctx)
	case pipelinerun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinerun.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case pipelinerun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipelinerun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case pipelinerun.FieldRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldGraphJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphJSON(v)
		return nil
	case pipelinerun.FieldDecisionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionCount(v)
		return nil
	case pipelinerun.FieldRunningCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunningCost(v)
		return nil
	case pipelinerun.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case pipelinerun.FieldStepsJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepsJSON(v)
		return nil
	case pipelinerun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinerun.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case pipelinerun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipelinerun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.adddecision_count != nil {
		fields = append(fields, pipelinerun.FieldDecisionCount)
	}
	if m.addrunning_cost != nil {
		fields = append(fields, pipelinerun.FieldRunningCost)
	}
	if m.addcurrent_step != nil {
		fields = append(fields, pipelinerun.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldDecisionCount:
		return m.AddedDecisionCount()
	case pipelinerun.FieldRunningCost:
		return m.AddedRunningCost()
	case pipelinerun.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldDecisionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDecisionCount(v)
		return nil
	case pipelinerun.FieldRunningCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunningCost(v)
		return nil
	case pipelinerun.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldCurrentStep) {
		fields = append(fields, pipelinerun.FieldCurrentStep)
	}
	if m.FieldCleared(pipelinerun.FieldStepsJSON) {
		fields = append(fields, pipelinerun.FieldStepsJSON)
	}
	if m.FieldCleared(pipelinerun.FieldErrorMessage) {
		fields = append(fields, pipelinerun.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinerun.FieldLastHeartbeat) {
		fields = append(fields, pipelinerun.FieldLastHeartbeat)
	}
	if m.FieldCleared(pipelinerun.FieldCompletedAt) {
		fields = append(fields, pipelinerun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case pipelinerun.FieldStepsJSON:
		m.ClearStepsJSON()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinerun.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldProjectID:
		m.ResetProjectID()
		return nil
	case pipelinerun.FieldRequest:
		m.ResetRequest()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldGraphJSON:
		m.ResetGraphJSON()
		return nil
	case pipelinerun.FieldDecisionCount:
		m.ResetDecisionCount()
		return nil
	case pipelinerun.FieldRunningCost:
		m.ResetRunningCost()
		return nil
	case pipelinerun.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case pipelinerun.FieldStepsJSON:
		m.ResetStepsJSON()
		return nil
	case pipelinerun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinerun.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case pipelinerun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipelinerun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.tasks != nil {
		edges = append(edges, pipelinerun.EdgeTasks)
	}
	if m.task_notes != nil {
		edges = append(edges, pipelinerun.EdgeTaskNotes)
	}
	if m.agent_runs != nil {
		edges = append(edges, pipelinerun.EdgeAgentRuns)
	}
	if m.agent_messages != nil {
		edges = append(edges, pipelinerun.EdgeAgentMessages)
	}
	if m.event_logs != nil {
		edges = append(edges, pipelinerun.EdgeEventLogs)
	}
	if m.pm_decisions != nil {
		edges = append(edges, pipelinerun.EdgePmDecisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeTaskNotes:
		ids := make([]ent.Value, 0, len(m.task_notes))
		for id := range m.task_notes {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeAgentRuns:
		ids := make([]ent.Value, 0, len(m.agent_runs))
		for id := range m.agent_runs {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeAgentMessages:
		ids := make([]ent.Value, 0, len(m.agent_messages))
		for id := range m.agent_messages {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeEventLogs:
		ids := make([]ent.Value, 0, len(m.event_logs))
		for id := range m.event_logs {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgePmDecisions:
		ids := make([]ent.Value, 0, len(m.pm_decisions))
		for id := range m.pm_decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedtasks != nil {
		edges = append(edges, pipelinerun.EdgeTasks)
	}
	if m.removedtask_notes != nil {
		edges = append(edges, pipelinerun.EdgeTaskNotes)
	}
	if m.removedagent_runs != nil {
		edges = append(edges, pipelinerun.EdgeAgentRuns)
	}
	if m.removedagent_messages != nil {
		edges = append(edges, pipelinerun.EdgeAgentMessages)
	}
	if m.removedevent_logs != nil {
		edges = append(edges, pipelinerun.EdgeEventLogs)
	}
	if m.removedpm_decisions != nil {
		edges = append(edges, pipelinerun.EdgePmDecisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinerun.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeTaskNotes:
		ids := make([]ent.Value, 0, len(m.removedtask_notes))
		for id := range m.removedtask_notes {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeAgentRuns:
		ids := make([]ent.Value, 0, len(m.removedagent_runs))
		for id := range m.removedagent_runs {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeAgentMessages:
		ids := make([]ent.Value, 0, len(m.removedagent_messages))
		for id := range m.removedagent_messages {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgeEventLogs:
		ids := make([]ent.Value, 0, len(m.removedevent_logs))
		for id := range m.removedevent_logs {
			ids = append(ids, id)
		}
		return ids
	case pipelinerun.EdgePmDecisions:
		ids := make([]ent.Value, 0, len(m.removedpm_decisions))
		for id := range m.removedpm_decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedtasks {
		edges = append(edges, pipelinerun.EdgeTasks)
	}
	if m.clearedtask_notes {
		edges = append(edges, pipelinerun.EdgeTaskNotes)
	}
	if m.clearedagent_runs {
		edges = append(edges, pipelinerun.EdgeAgentRuns)
	}
	if m.clearedagent_messages {
		edges = append(edges, pipelinerun.EdgeAgentMessages)
	}
	if m.clearedevent_logs {
		edges = append(edges, pipelinerun.EdgeEventLogs)
	}
	if m.clearedpm_decisions {
		edges = append(edges, pipelinerun.EdgePmDecisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinerun.EdgeTasks:
		return m.clearedtasks
	case pipelinerun.EdgeTaskNotes:
		return m.clearedtask_notes
	case pipelinerun.EdgeAgentRuns:
		return m.clearedagent_runs
	case pipelinerun.EdgeAgentMessages:
		return m.clearedagent_messages
	case pipelinerun.EdgeEventLogs:
		return m.clearedevent_logs
	case pipelinerun.EdgePmDecisions:
		return m.clearedpm_decisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	switch name {
	case pipelinerun.EdgeTasks:
		m.ResetTasks()
		return nil
	case pipelinerun.EdgeTaskNotes:
		m.ResetTaskNotes()
		return nil
	case pipelinerun.EdgeAgentRuns:
		m.ResetAgentRuns()
		return nil
	case pipelinerun.EdgeAgentMessages:
		m.ResetAgentMessages()
		return nil
	case pipelinerun.EdgeEventLogs:
		m.ResetEventLogs()
		return nil
	case pipelinerun.EdgePmDecisions:
		m.ResetPmDecisions()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	workspace_dir *string
	settings      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Project, error)
	predicates    []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (m *ProjectMutation) SetWorkspaceDir(s string) {
	m.workspace_dir = &s
}

// WorkspaceDir returns the value of the "workspace_dir" field in the mutation.
func (m *ProjectMutation) WorkspaceDir() (r string, exists bool) {
	v := m.workspace_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceDir returns the old "workspace_dir" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWorkspaceDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceDir: %w", err)
	}
	return oldValue.WorkspaceDir, nil
}

// ClearWorkspaceDir clears the value of the "workspace_dir" field.
func (m *ProjectMutation) ClearWorkspaceDir() {
	m.workspace_dir = nil
	m.clearedFields[project.FieldWorkspaceDir] = struct{}{}
}

// WorkspaceDirCleared returns if the "workspace_dir" field was cleared in this mutation.
func (m *ProjectMutation) WorkspaceDirCleared() bool {
	_, ok := m.clearedFields[project.FieldWorkspaceDir]
	return ok
}

// ResetWorkspaceDir resets all changes to the "workspace_dir" field.
func (m *ProjectMutation) ResetWorkspaceDir() {
	m.workspace_dir = nil
	delete(m.clearedFields, project.FieldWorkspaceDir)
}

// SetSettings sets the "settings" field.
func (m *ProjectMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *ProjectMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *ProjectMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[project.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *ProjectMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[project.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *ProjectMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, project.FieldSettings)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.workspace_dir != nil {
		fields = append(fields, project.FieldWorkspaceDir)
	}
	if m.settings != nil {
		fields = append(fields, project.FieldSettings)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldWorkspaceDir:
		return m.WorkspaceDir()
	case project.FieldSettings:
		return m.Settings()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldWorkspaceDir:
		return m.OldWorkspaceDir(ctx)
	case project.FieldSettings:
		return m.OldSettings(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldWorkspaceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceDir(v)
		return nil
	case project.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldWorkspaceDir) {
		fields = append(fields, project.FieldWorkspaceDir)
	}
	if m.FieldCleared(project.FieldSettings) {
		fields = append(fields, project.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldWorkspaceDir:
		m.ClearWorkspaceDir()
		return nil
	case project.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldWorkspaceDir:
		m.ResetWorkspaceDir()
		return nil
	case project.FieldSettings:
		m.ResetSettings()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Project edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                Op
	typ               string
	id                *string
	graph_task_id     *string
	title             *string
	description       *string
	agent             *string
	role              *string
	status            *task.Status
	attempts          *int
	addattempts       *int
	depends_on        *[]string
	appenddepends_on  []string
	output            *string
	error_message     *string
	cost_usd          *float64
	addcost_usd       *float64
	decision_round    *int
	adddecision_round *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	run               *string
	clearedrun        bool
	done              bool
	oldValue          func(context.Context) (*Task, error)
	predicates        []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *TaskMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TaskMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TaskMutation) ResetRunID() {
	m.run = nil
}

// SetGraphTaskID sets the "graph_task_id" field.
func (m *TaskMutation) SetGraphTaskID(s string) {
	m.graph_task_id = &s
}

// GraphTaskID returns the value of the "graph_task_id" field in the mutation.
func (m *TaskMutation) GraphTaskID() (r string, exists bool) {
	v := m.graph_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphTaskID returns the old "graph_task_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldGraphTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphTaskID: %w", err)
	}
	return oldValue.GraphTaskID, nil
}

// ResetGraphTaskID resets all changes to the "graph_task_id" field.
func (m *TaskMutation) ResetGraphTaskID() {
	m.graph_task_id = nil
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetAgent sets the "agent" field.
func (m *TaskMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *TaskMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *TaskMutation) ResetAgent() {
	m.agent = nil
}

// SetRole sets the "role" field.
func (m *TaskMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *TaskMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *TaskMutation) ClearRole() {
	m.role = nil
	m.clearedFields[task.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *TaskMutation) RoleCleared() bool {
	_, ok := m.clearedFields[task.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *TaskMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, task.FieldRole)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetDependsOn sets the "depends_on" field.
func (m *TaskMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *TaskMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *TaskMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *TaskMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *TaskMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[task.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *TaskMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[task.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *TaskMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, task.FieldDependsOn)
}

// SetOutput sets the "output" field.
func (m *TaskMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TaskMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[task.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TaskMutation) OutputCleared() bool {
	_, ok := m.clearedFields[task.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, task.FieldOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCostUsd sets the "cost_usd" field.
func (m *TaskMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *TaskMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *TaskMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *TaskMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *TaskMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetDecisionRound sets the "decision_round" field.
func (m *TaskMutation) SetDecisionRound(i int) {
	m.decision_round = &i
	m.adddecision_round = nil
}

// DecisionRound returns the value of the "decision_round" field in the mutation.
func (m *TaskMutation) DecisionRound() (r int, exists bool) {
	v := m.decision_round
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionRound returns the old "decision_round" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDecisionRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionRound: %w", err)
	}
	return oldValue.DecisionRound, nil
}

// AddDecisionRound adds i to the "decision_round" field.
func (m *TaskMutation) AddDecisionRound(i int) {
	if m.adddecision_round != nil {
		*m.adddecision_round += i
	} else {
		m.adddecision_round = &i
	}
}

// AddedDecisionRound returns the value that was added to the "decision_round" field in this mutation.
func (m *TaskMutation) AddedDecisionRound() (r int, exists bool) {
	v := m.adddecision_round
	if v == nil {
		return
	}
	return *v, true
}

// ResetDecisionRound resets all changes to the "decision_round" field.
func (m *TaskMutation) ResetDecisionRound() {
	m.decision_round = nil
	m.adddecision_round = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *TaskMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[task.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *TaskMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TaskMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.run != nil {
		fields = append(fields, task.FieldRunID)
	}
	if m.graph_task_id != nil {
		fields = append(fields, task.FieldGraphTaskID)
	}
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.agent != nil {
		fields = append(fields, task.FieldAgent)
	}
	if m.role != nil {
		fields = append(fields, task.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.depends_on != nil {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.output != nil {
		fields = append(fields, task.FieldOutput)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.cost_usd != nil {
		fields = append(fields, task.FieldCostUsd)
	}
	if m.decision_round != nil {
		fields = append(fields, task.FieldDecisionRound)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldRunID:
		return m.RunID()
	case task.FieldGraphTaskID:
		return m.GraphTaskID()
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldAgent:
		return m.Agent()
	case task.FieldRole:
		return m.Role()
	case task.FieldStatus:
		return m.Status()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldDependsOn:
		return m.DependsOn()
	case task.FieldOutput:
		return m.Output()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCostUsd:
		return m.CostUsd()
	case task.FieldDecisionRound:
		return m.DecisionRound()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldRunID:
		return m.OldRunID(ctx)
	case task.FieldGraphTaskID:
		return m.OldGraphTaskID(ctx)
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldAgent:
		return m.OldAgent(ctx)
	case task.FieldRole:
		return m.OldRole(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case task.FieldOutput:
		return m.OldOutput(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case task.FieldDecisionRound:
		return m.OldDecisionRound(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case task.FieldGraphTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphTaskID(v)
		return nil
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case task.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case task.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case task.FieldDecisionRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionRound(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.addcost_usd != nil {
		fields = append(fields, task.FieldCostUsd)
	}
	if m.adddecision_round != nil {
		fields = append(fields, task.FieldDecisionRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAttempts:
		return m.AddedAttempts()
	case task.FieldCostUsd:
		return m.AddedCostUsd()
	case task.FieldDecisionRound:
		return m.AddedDecisionRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case task.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case task.FieldDecisionRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDecisionRound(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldRole) {
		fields = append(fields, task.FieldRole)
	}
	if m.FieldCleared(task.FieldDependsOn) {
		fields = append(fields, task.FieldDependsOn)
	}
	if m.FieldCleared(task.FieldOutput) {
		fields = append(fields, task.FieldOutput)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldRole:
		m.ClearRole()
		return nil
	case task.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case task.FieldOutput:
		m.ClearOutput()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldRunID:
		m.ResetRunID()
		return nil
	case task.FieldGraphTaskID:
		m.ResetGraphTaskID()
		return nil
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldAgent:
		m.ResetAgent()
		return nil
	case task.FieldRole:
		m.ResetRole()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case task.FieldOutput:
		m.ResetOutput()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case task.FieldDecisionRound:
		m.ResetDecisionRound()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, task.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, task.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskNoteMutation represents an operation that mutates the TaskNote nodes in the graph.
type TaskNoteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	graph_task_id *string
	author        *string
	note          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	run           *string
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*TaskNote, error)
	predicates    []predicate.TaskNote
}

var _ ent.Mutation = (*TaskNoteMutation)(nil)

// tasknoteOption allows management of the mutation configuration using functional options.
type tasknoteOption func(*TaskNoteMutation)

// newTaskNoteMutation creates new mutation for the TaskNote entity.
func newTaskNoteMutation(c config, op Op, opts ...tasknoteOption) *TaskNoteMutation {
	m := &TaskNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskNoteID sets the ID field of the mutation.
func withTaskNoteID(id string) tasknoteOption {
	return func(m *TaskNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskNote
		)
		m.oldValue = func(ctx context.Context) (*TaskNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskNote sets the old TaskNote of the mutation.
func withTaskNote(node *TaskNote) tasknoteOption {
	return func(m *TaskNoteMutation) {
		m.oldValue = func(context.Context) (*TaskNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskNote entities.
func (m *TaskNoteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskNoteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskNoteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *TaskNoteMutation) SetRunID(s string) {
	m.run = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *TaskNoteMutation) RunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *TaskNoteMutation) ResetRunID() {
	m.run = nil
}

// SetGraphTaskID sets the "graph_task_id" field.
func (m *TaskNoteMutation) SetGraphTaskID(s string) {
	m.graph_task_id = &s
}

// GraphTaskID returns the value of the "graph_task_id" field in the mutation.
func (m *TaskNoteMutation) GraphTaskID() (r string, exists bool) {
	v := m.graph_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphTaskID returns the old "graph_task_id" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldGraphTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphTaskID: %w", err)
	}
	return oldValue.GraphTaskID, nil
}

// ResetGraphTaskID resets all changes to the "graph_task_id" field.
func (m *TaskNoteMutation) ResetGraphTaskID() {
	m.graph_task_id = nil
}

// SetAuthor sets the "author" field.
func (m *TaskNoteMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *TaskNoteMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *TaskNoteMutation) ResetAuthor() {
	m.author = nil
}

// SetNote sets the "note" field.
func (m *TaskNoteMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *TaskNoteMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *TaskNoteMutation) ResetNote() {
	m.note = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskNote entity.
// If the TaskNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRun clears the "run" edge to the PipelineRun entity.
func (m *TaskNoteMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[tasknote.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the PipelineRun entity was cleared.
func (m *TaskNoteMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TaskNoteMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TaskNoteMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the TaskNoteMutation builder.
func (m *TaskNoteMutation) Where(ps ...predicate.TaskNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskNote).
func (m *TaskNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskNoteMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.run != nil {
		fields = append(fields, tasknote.FieldRunID)
	}
	if m.graph_task_id != nil {
		fields = append(fields, tasknote.FieldGraphTaskID)
	}
	if m.author != nil {
		fields = append(fields, tasknote.FieldAuthor)
	}
	if m.note != nil {
		fields = append(fields, tasknote.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, tasknote.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tasknote.FieldRunID:
		return m.RunID()
	case tasknote.FieldGraphTaskID:
		return m.GraphTaskID()
	case tasknote.FieldAuthor:
		return m.Author()
	case tasknote.FieldNote:
		return m.Note()
	case tasknote.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tasknote.FieldRunID:
		return m.OldRunID(ctx)
	case tasknote.FieldGraphTaskID:
		return m.OldGraphTaskID(ctx)
	case tasknote.FieldAuthor:
		return m.OldAuthor(ctx)
	case tasknote.FieldNote:
		return m.OldNote(ctx)
	case tasknote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tasknote.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case tasknote.FieldGraphTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphTaskID(v)
		return nil
	case tasknote.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case tasknote.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case tasknote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskNoteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskNoteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskNoteMutation) ResetField(name string) error {
	switch name {
	case tasknote.FieldRunID:
		m.ResetRunID()
		return nil
	case tasknote.FieldGraphTaskID:
		m.ResetGraphTaskID()
		return nil
	case tasknote.FieldAuthor:
		m.ResetAuthor()
		return nil
	case tasknote.FieldNote:
		m.ResetNote()
		return nil
	case tasknote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, tasknote.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tasknote.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, tasknote.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case tasknote.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskNoteMutation) ClearEdge(name string) error {
	switch name {
	case tasknote.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown TaskNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskNoteMutation) ResetEdge(name string) error {
	switch name {
	case tasknote.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown TaskNote edge %s", name)
}
