package models

// TriggerKind identifies why a PM decision is being requested.
type TriggerKind string

// Trigger kinds, in rough priority order (completions beat user messages,
// user messages beat idle).
const (
	TriggerInitial         TriggerKind = "initial"
	TriggerTaskCompleted   TriggerKind = "task_completed"
	TriggerTaskFailed      TriggerKind = "task_failed"
	TriggerUserMessage     TriggerKind = "user_message"
	TriggerAgentQuestion   TriggerKind = "agent_question"
	TriggerAgentMessage    TriggerKind = "agent_message_to_pm"
	TriggerAllIdle         TriggerKind = "all_idle"
	TriggerBudgetWarning   TriggerKind = "budget_warning"
	TriggerPipelineResumed TriggerKind = "pipeline_resumed"
)

// Trigger is the event that arms one PM decision cycle. Fields are a union;
// which ones are set depends on Kind.
type Trigger struct {
	Kind TriggerKind

	// initial
	ReadyTaskIDs []string

	// task_completed / task_failed
	TaskID        string
	OutputSummary string
	Error         string
	Attempts      int

	// user_message
	Messages []string

	// agent_question / agent_message_to_pm
	Agent       string
	Question    string
	MessageType string
	Content     string

	// budget_warning
	SpentUSD     float64
	RemainingUSD float64

	// pipeline_resumed
	InterruptedIDs []string
	FailedIDs      []string
}
