// Package config provides configuration management for the Foreman worker:
// agent definitions, provider settings, skill libraries, and loop tuning.
package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/foremanhq/foreman/pkg/models"
)

// RoleConfig defines one role an agent can play on a task. Provider and
// Model override the agent-level preference when set.
type RoleConfig struct {
	SystemPrompt string `yaml:"system_prompt,omitempty"`
	Provider     string `yaml:"provider,omitempty"`
	Model        string `yaml:"model,omitempty"`

	// ReceivesPlanContext injects the current plan into the role's prompt.
	ReceivesPlanContext bool `yaml:"receives_plan_context,omitempty"`

	// ProducesPassFail marks roles whose output is a verdict, not an artifact.
	ProducesPassFail bool `yaml:"produces_pass_fail,omitempty"`

	// EvaluatesOutput marks roles that review another task's output.
	EvaluatesOutput bool `yaml:"evaluates_output,omitempty"`
}

// AgentConfig defines agent metadata: identity, capability requirements,
// execution preferences, and the roles the agent can play.
type AgentConfig struct {
	// DisplayName is the human-facing name; defaults to the map key.
	DisplayName string `yaml:"display_name,omitempty"`

	// Type determines the agent's event-stream label and default behavior.
	Type string `yaml:"type,omitempty"`

	// Human-readable description, shown to the PM in the agent catalogue.
	Description string `yaml:"description,omitempty"`

	// Capabilities lists capability tags the executing provider must
	// satisfy (file-access, shell-access).
	Capabilities []string `yaml:"capabilities,omitempty"`

	// Provider and Model are agent-level preferences, overridable per
	// role, per task hint, and per project.
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`

	// EventType labels this agent's entries in the event log. Defaults
	// to Type when empty.
	EventType string `yaml:"event_type,omitempty"`

	SystemPrompt string   `yaml:"system_prompt,omitempty"`
	Skills       []string `yaml:"skills,omitempty"`

	Roles map[string]RoleConfig `yaml:"roles,omitempty"`
}

// Role returns the named role configuration.
func (a *AgentConfig) Role(name string) (RoleConfig, error) {
	role, ok := a.Roles[name]
	if !ok {
		return RoleConfig{}, fmt.Errorf("%w: %s", ErrRoleNotFound, name)
	}
	return role, nil
}

// RoleNames returns the agent's role names, sorted.
func (a *AgentConfig) RoleNames() []string {
	names := make([]string, 0, len(a.Roles))
	for name := range a.Roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition converts the configuration to the runtime agent model.
func (a *AgentConfig) Definition(name string) models.AgentDefinition {
	display := a.DisplayName
	if display == "" {
		display = name
	}
	return models.AgentDefinition{
		Name:                 display,
		Type:                 a.Type,
		Description:          a.Description,
		Roles:                a.RoleNames(),
		RequiredCapabilities: append([]string(nil), a.Capabilities...),
		Provider:             a.Provider,
		Model:                a.Model,
		SystemPrompt:         a.SystemPrompt,
		Skills:               append([]string(nil), a.Skills...),
	}
}

// AgentRegistry stores agent configurations in memory with thread-safe access
type AgentRegistry struct {
	agents map[string]*AgentConfig
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	copied := make(map[string]*AgentConfig, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{agents: copied}
}

// Get retrieves an agent configuration by name (thread-safe)
func (r *AgentRegistry) Get(name string) (*AgentConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent configurations (thread-safe, returns copy)
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentConfig, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Names returns all agent names, sorted.
func (r *AgentRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the catalogue shown to the PM, sorted by name.
func (r *AgentRegistry) Definitions() []models.AgentDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]models.AgentDefinition, 0, len(r.agents))
	for name, agent := range r.agents {
		defs = append(defs, agent.Definition(name))
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Len returns the number of registered agents
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
