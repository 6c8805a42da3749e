// Package models contains pure data structures shared across packages.
// No I/O, no behavior beyond validation and simple derivations.
package models

// TaskStatus is the lifecycle status of a task node.
type TaskStatus string

// Task statuses. Terminal statuses are done, failed, skipped, cancelled.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusReady     TaskStatus = "ready"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusBlocked   TaskStatus = "blocked"
	TaskStatusDone      TaskStatus = "done"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusSkipped   TaskStatus = "skipped"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// IsTerminal reports whether the status ends a task's lifecycle.
// Failed tasks are terminal for completion purposes but may be retried,
// which resets them to ready.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusDone, TaskStatusFailed, TaskStatusSkipped, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// SatisfiesDependents reports whether a dependency in this status unblocks
// downstream tasks. Failed does not: dependents stay pending until the PM
// retries, skips, or removes the failed task.
func (s TaskStatus) SatisfiesDependents() bool {
	switch s {
	case TaskStatusDone, TaskStatusSkipped, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// TaskNode is one unit of work in the task graph. Values are treated as
// immutable — graph transitions copy the node and write the copy.
type TaskNode struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	DependsOn          []string `json:"depends_on,omitempty"`

	// Optional hints from the PM or the plan.
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	Skills   []string `json:"skills,omitempty"`

	Agent string `json:"agent"`
	Role  string `json:"role,omitempty"`

	Status   TaskStatus `json:"status"`
	Attempts int        `json:"attempts"`

	Output  string  `json:"output,omitempty"`
	Error   string  `json:"error,omitempty"`
	CostUSD float64 `json:"cost_usd"`

	// BlockingQuestion is set while the task waits on a PM or user answer.
	BlockingQuestion string `json:"blocking_question,omitempty"`

	// DecisionRound records which PM decision added this node (0 = plan).
	DecisionRound int `json:"decision_round"`
}

// TaskSpec describes a task to be inserted by an add_tasks action.
// ID may be empty; the graph assigns the next t<N> identifier.
type TaskSpec struct {
	ID                 string   `json:"id,omitempty"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	DependsOn          []string `json:"depends_on,omitempty"`
	Agent              string   `json:"agent"`
	Role               string   `json:"role,omitempty"`
	Provider           string   `json:"provider,omitempty"`
	Model              string   `json:"model,omitempty"`
	Skills             []string `json:"skills,omitempty"`
}

// RunStatus is the persisted lifecycle status of a pipeline run.
type RunStatus string

// Pipeline run statuses.
const (
	RunStatusRunning      RunStatus = "running"
	RunStatusAwaitingPlan RunStatus = "awaiting_plan"
	RunStatusCompleted    RunStatus = "completed"
	RunStatusFailed       RunStatus = "failed"
	RunStatusAborted      RunStatus = "aborted"
)

// IsTerminal reports whether the run has finished.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusAborted:
		return true
	default:
		return false
	}
}

// StepSummary is one completed step recorded on the run record.
type StepSummary struct {
	TaskID string     `json:"task_id"`
	Agent  string     `json:"agent"`
	Role   string     `json:"role,omitempty"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
	Output string     `json:"output,omitempty"`
}
