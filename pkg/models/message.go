package models

import "fmt"

// AgentMessageType is the kind of a structured inter-agent message.
type AgentMessageType string

// Inter-agent message kinds accepted by the router.
const (
	MessageTypeQuestion   AgentMessageType = "question"
	MessageTypeFlag       AgentMessageType = "flag"
	MessageTypeSuggestion AgentMessageType = "suggestion"
	MessageTypeHandoff    AgentMessageType = "handoff"
	MessageTypeResponse   AgentMessageType = "response"
	MessageTypeChallenge  AgentMessageType = "challenge"
	MessageTypeCounter    AgentMessageType = "counter"
	MessageTypeConcede    AgentMessageType = "concede"
	MessageTypeEscalate   AgentMessageType = "escalate"
	MessageTypeModerate   AgentMessageType = "moderate"
)

var validMessageTypes = map[AgentMessageType]struct{}{
	MessageTypeQuestion:   {},
	MessageTypeFlag:       {},
	MessageTypeSuggestion: {},
	MessageTypeHandoff:    {},
	MessageTypeResponse:   {},
	MessageTypeChallenge:  {},
	MessageTypeCounter:    {},
	MessageTypeConcede:    {},
	MessageTypeEscalate:   {},
	MessageTypeModerate:   {},
}

// AgentMessage is one structured message extracted from agent output.
type AgentMessage struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Type    AgentMessageType `json:"type"`
	Message string           `json:"message"`
	TaskID  string           `json:"task_id,omitempty"`
}

// Validate checks the required envelope fields.
func (m AgentMessage) Validate() error {
	if m.To == "" {
		return fmt.Errorf("agent message missing 'to' field")
	}
	if m.Message == "" {
		return fmt.Errorf("agent message missing 'message' field")
	}
	if _, ok := validMessageTypes[m.Type]; !ok {
		return fmt.Errorf("invalid agent message type %q", m.Type)
	}
	return nil
}
