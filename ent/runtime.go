// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/foremanhq/foreman/ent/agentmessage"
	"github.com/foremanhq/foreman/ent/agentrun"
	"github.com/foremanhq/foreman/ent/eventlog"
	"github.com/foremanhq/foreman/ent/pipelinerun"
	"github.com/foremanhq/foreman/ent/pmdecisionlog"
	"github.com/foremanhq/foreman/ent/project"
	"github.com/foremanhq/foreman/ent/schema"
	"github.com/foremanhq/foreman/ent/task"
	"github.com/foremanhq/foreman/ent/tasknote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentmessageFields := schema.AgentMessage{}.Fields()
	_ = agentmessageFields
	// agentmessageDescCreatedAt is the schema descriptor for created_at field.
	agentmessageDescCreatedAt := agentmessageFields[7].Descriptor()
	// agentmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentmessage.DefaultCreatedAt = agentmessageDescCreatedAt.Default.(func() time.Time)
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescSuccess is the schema descriptor for success field.
	agentrunDescSuccess := agentrunFields[8].Descriptor()
	// agentrun.DefaultSuccess holds the default value on creation for the success field.
	agentrun.DefaultSuccess = agentrunDescSuccess.Default.(bool)
	// agentrunDescDurationMs is the schema descriptor for duration_ms field.
	agentrunDescDurationMs := agentrunFields[13].Descriptor()
	// agentrun.DefaultDurationMs holds the default value on creation for the duration_ms field.
	agentrun.DefaultDurationMs = agentrunDescDurationMs.Default.(int)
	// agentrunDescInputTokens is the schema descriptor for input_tokens field.
	agentrunDescInputTokens := agentrunFields[14].Descriptor()
	// agentrun.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agentrun.DefaultInputTokens = agentrunDescInputTokens.Default.(int)
	// agentrunDescOutputTokens is the schema descriptor for output_tokens field.
	agentrunDescOutputTokens := agentrunFields[15].Descriptor()
	// agentrun.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agentrun.DefaultOutputTokens = agentrunDescOutputTokens.Default.(int)
	// agentrunDescCostUsd is the schema descriptor for cost_usd field.
	agentrunDescCostUsd := agentrunFields[16].Descriptor()
	// agentrun.DefaultCostUsd holds the default value on creation for the cost_usd field.
	agentrun.DefaultCostUsd = agentrunDescCostUsd.Default.(float64)
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[17].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	eventlogFields := schema.EventLog{}.Fields()
	_ = eventlogFields
	// eventlogDescCreatedAt is the schema descriptor for created_at field.
	eventlogDescCreatedAt := eventlogFields[6].Descriptor()
	// eventlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	eventlog.DefaultCreatedAt = eventlogDescCreatedAt.Default.(func() time.Time)
	pmdecisionlogFields := schema.PMDecisionLog{}.Fields()
	_ = pmdecisionlogFields
	// pmdecisionlogDescParseFailed is the schema descriptor for parse_failed field.
	pmdecisionlogDescParseFailed := pmdecisionlogFields[7].Descriptor()
	// pmdecisionlog.DefaultParseFailed holds the default value on creation for the parse_failed field.
	pmdecisionlog.DefaultParseFailed = pmdecisionlogDescParseFailed.Default.(bool)
	// pmdecisionlogDescCreatedAt is the schema descriptor for created_at field.
	pmdecisionlogDescCreatedAt := pmdecisionlogFields[8].Descriptor()
	// pmdecisionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	pmdecisionlog.DefaultCreatedAt = pmdecisionlogDescCreatedAt.Default.(func() time.Time)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescDecisionCount is the schema descriptor for decision_count field.
	pipelinerunDescDecisionCount := pipelinerunFields[5].Descriptor()
	// pipelinerun.DefaultDecisionCount holds the default value on creation for the decision_count field.
	pipelinerun.DefaultDecisionCount = pipelinerunDescDecisionCount.Default.(int)
	// pipelinerunDescRunningCost is the schema descriptor for running_cost field.
	pipelinerunDescRunningCost := pipelinerunFields[6].Descriptor()
	// pipelinerun.DefaultRunningCost holds the default value on creation for the running_cost field.
	pipelinerun.DefaultRunningCost = pipelinerunDescRunningCost.Default.(float64)
	// pipelinerunDescCreatedAt is the schema descriptor for created_at field.
	pipelinerunDescCreatedAt := pipelinerunFields[11].Descriptor()
	// pipelinerun.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinerun.DefaultCreatedAt = pipelinerunDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAttempts is the schema descriptor for attempts field.
	taskDescAttempts := taskFields[8].Descriptor()
	// task.DefaultAttempts holds the default value on creation for the attempts field.
	task.DefaultAttempts = taskDescAttempts.Default.(int)
	// taskDescCostUsd is the schema descriptor for cost_usd field.
	taskDescCostUsd := taskFields[12].Descriptor()
	// task.DefaultCostUsd holds the default value on creation for the cost_usd field.
	task.DefaultCostUsd = taskDescCostUsd.Default.(float64)
	// taskDescDecisionRound is the schema descriptor for decision_round field.
	taskDescDecisionRound := taskFields[13].Descriptor()
	// task.DefaultDecisionRound holds the default value on creation for the decision_round field.
	task.DefaultDecisionRound = taskDescDecisionRound.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[15].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	tasknoteFields := schema.TaskNote{}.Fields()
	_ = tasknoteFields
	// tasknoteDescCreatedAt is the schema descriptor for created_at field.
	tasknoteDescCreatedAt := tasknoteFields[5].Descriptor()
	// tasknote.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasknote.DefaultCreatedAt = tasknoteDescCreatedAt.Default.(func() time.Time)
}
