package models

import "fmt"

// ActionType identifies a PM decision action.
type ActionType string

// PM action types, applied in the order the PM lists them.
const (
	ActionExecute     ActionType = "execute"
	ActionAddTasks    ActionType = "add_tasks"
	ActionRemoveTasks ActionType = "remove_tasks"
	ActionReassign    ActionType = "reassign"
	ActionRetry       ActionType = "retry"
	ActionAskUser     ActionType = "ask_user"
	ActionAnswerAgent ActionType = "answer_agent"
	ActionComplete    ActionType = "complete"
	ActionSkip        ActionType = "skip"
)

// RetryChanges carries optional overrides applied when retrying a failed task.
type RetryChanges struct {
	Description string `json:"description,omitempty"`
	Agent       string `json:"agent,omitempty"`
	Role        string `json:"role,omitempty"`
}

// PMAction is one typed action within a PM decision. Fields are a union;
// which ones are meaningful depends on Type.
type PMAction struct {
	Type ActionType `json:"action"`

	TaskIDs []string   `json:"task_ids,omitempty"` // execute, remove_tasks, skip
	Tasks   []TaskSpec `json:"tasks,omitempty"`    // add_tasks
	TaskID  string     `json:"task_id,omitempty"`  // reassign, retry, answer_agent

	Agent  string `json:"agent,omitempty"`  // reassign
	Role   string `json:"role,omitempty"`   // reassign
	Reason string `json:"reason,omitempty"` // remove_tasks, reassign, skip

	Changes *RetryChanges `json:"changes,omitempty"` // retry

	Question        string   `json:"question,omitempty"`          // ask_user
	Context         string   `json:"context,omitempty"`           // ask_user
	BlockingTaskIDs []string `json:"blocking_task_ids,omitempty"` // ask_user

	Answer  string `json:"answer,omitempty"`  // answer_agent
	Summary string `json:"summary,omitempty"` // complete
}

// Validate checks that the action carries the fields its type requires.
func (a PMAction) Validate() error {
	switch a.Type {
	case ActionExecute, ActionRemoveTasks, ActionSkip:
		if len(a.TaskIDs) == 0 {
			return fmt.Errorf("action %q requires task_ids", a.Type)
		}
	case ActionAddTasks:
		if len(a.Tasks) == 0 {
			return fmt.Errorf("action add_tasks requires tasks")
		}
	case ActionReassign:
		if a.TaskID == "" || a.Agent == "" {
			return fmt.Errorf("action reassign requires task_id and agent")
		}
	case ActionRetry:
		if a.TaskID == "" {
			return fmt.Errorf("action retry requires task_id")
		}
	case ActionAskUser:
		if a.Question == "" {
			return fmt.Errorf("action ask_user requires question")
		}
	case ActionAnswerAgent:
		if a.TaskID == "" {
			return fmt.Errorf("action answer_agent requires task_id")
		}
	case ActionComplete:
		// summary may be empty
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}

// PMDecision is the structured output of one PM invocation.
type PMDecision struct {
	Reasoning string     `json:"reasoning,omitempty"`
	Actions   []PMAction `json:"actions"`
}

// HasComplete reports whether any action terminates the loop.
func (d *PMDecision) HasComplete() bool {
	for _, a := range d.Actions {
		if a.Type == ActionComplete {
			return true
		}
	}
	return false
}
