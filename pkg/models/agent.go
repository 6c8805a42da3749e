package models

// Capability tags an agent may declare as required.
const (
	CapabilityFileAccess  = "file-access"
	CapabilityShellAccess = "shell-access"
)

// AgentDefinition describes one configured agent: its identity, the roles
// it can play, and its execution preferences.
type AgentDefinition struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Roles []string `yaml:"roles,omitempty" json:"roles,omitempty"`

	// RequiredCapabilities lists capability tags the executing provider
	// must satisfy, e.g. file-access or shell-access.
	RequiredCapabilities []string `yaml:"required_capabilities,omitempty" json:"required_capabilities,omitempty"`

	// Provider and Model are preferences, overridable per task and per
	// project.
	Provider string `yaml:"provider,omitempty" json:"provider,omitempty"`
	Model    string `yaml:"model,omitempty" json:"model,omitempty"`

	SystemPrompt string   `yaml:"system_prompt,omitempty" json:"system_prompt,omitempty"`
	Skills       []string `yaml:"skills,omitempty" json:"skills,omitempty"`
}

// RequiresFullCapabilities reports whether the agent declares any
// full-capability tag, which constrains provider fallback.
func (a AgentDefinition) RequiresFullCapabilities() bool {
	for _, c := range a.RequiredCapabilities {
		if c == CapabilityFileAccess || c == CapabilityShellAccess {
			return true
		}
	}
	return false
}
