package config

import "fmt"

// Defaults holds system-wide execution defaults, the tail of the
// provider/model resolution chain.
type Defaults struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	// Workspace is the root directory under which per-project working
	// directories are created when a task does not name one.
	Workspace string `yaml:"workspace,omitempty"`
}

// ProviderModelOverride pins a provider and/or model for one agent or
// agent:role within a project.
type ProviderModelOverride struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// ProjectSettings carries per-project execution overrides. Override keys
// are either an agent name or "agent:role"; the more specific key wins.
type ProjectSettings struct {
	Overrides map[string]ProviderModelOverride `yaml:"overrides,omitempty"`
}

// Override resolves the strongest override for agent/role, role-specific
// first. The second return reports whether any override matched.
func (p ProjectSettings) Override(agent, role string) (ProviderModelOverride, bool) {
	if role != "" {
		if o, ok := p.Overrides[agent+":"+role]; ok {
			return o, true
		}
	}
	o, ok := p.Overrides[agent]
	return o, ok
}

// WorkerConfig holds the worker's own HTTP surface settings.
type WorkerConfig struct {
	// ListenAddr is where the status API binds. Empty disables it.
	ListenAddr string `yaml:"listen_addr,omitempty"`
}

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and loop tuning. This is the primary object
// returned by Initialize() and used throughout the worker.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Loop tuning (parallelism, budget, timeouts)
	Loop *LoopConfig

	// System-wide execution defaults
	Defaults *Defaults

	// Worker HTTP surface
	Worker *WorkerConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Per-project overrides keyed by project id
	Projects map[string]ProjectSettings

	// Component registries
	AgentRegistry    *AgentRegistry
	ProviderRegistry *ProviderRegistry
	Skills           *SkillLibrary
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents    int
	Providers int
	Skills    int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	if c.Skills != nil {
		s.Skills = c.Skills.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetProvider retrieves a provider configuration by name.
// This is a convenience method that wraps ProviderRegistry.Get().
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}

// ProjectSettingsFor returns the overrides for a project id, empty when
// none are configured.
func (c *Config) ProjectSettingsFor(projectID string) ProjectSettings {
	return c.Projects[projectID]
}

// ResolveRole fetches an agent and one of its roles in a single call.
func (c *Config) ResolveRole(agent, role string) (*AgentConfig, RoleConfig, error) {
	a, err := c.AgentRegistry.Get(agent)
	if err != nil {
		return nil, RoleConfig{}, err
	}
	r, err := a.Role(role)
	if err != nil {
		return nil, RoleConfig{}, fmt.Errorf("agent %s: %w", agent, err)
	}
	return a, r, nil
}
