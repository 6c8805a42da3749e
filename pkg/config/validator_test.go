package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/provider"
)

// validTestConfig builds a minimal Config that passes validation; tests
// mutate one aspect at a time.
func validTestConfig() *Config {
	return &Config{
		Loop: DefaultLoopConfig(),
		Defaults: &Defaults{
			Provider: "cli",
			Model:    "sonnet",
		},
		Worker: &WorkerConfig{},
		AgentRegistry: NewAgentRegistry(map[string]*AgentConfig{
			"engineer": {
				Type:         "coder",
				Capabilities: []string{"file-access"},
				Roles: map[string]RoleConfig{
					"implement": {SystemPrompt: "implement"},
				},
			},
		}),
		ProviderRegistry: NewProviderRegistry(map[string]*ProviderConfig{
			"cli": {
				Type: ProviderTypeClaudeCLI,
				ClaudeCLI: &provider.ClaudeCLIConfig{
					Models: []provider.ModelInfo{{ID: "sonnet", Tier: 2}},
				},
			},
		}),
		Skills: &SkillLibrary{skills: map[string]Skill{}},
	}
}

func TestValidateAllValid(t *testing.T) {
	require.NoError(t, NewValidator(validTestConfig()).ValidateAll())
}

func TestValidateProviders(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name: "missing type",
			mutate: func(cfg *Config) {
				cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"p": {},
				})
			},
			wantErr: "field 'type'",
		},
		{
			name: "unknown type",
			mutate: func(cfg *Config) {
				cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"p": {Type: "telepathy"},
				})
			},
			wantErr: "telepathy",
		},
		{
			name: "missing adapter section",
			mutate: func(cfg *Config) {
				cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"p": {Type: ProviderTypeAnthropic},
				})
			},
			wantErr: "field 'anthropic'",
		},
		{
			name: "pool without accounts",
			mutate: func(cfg *Config) {
				cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"p": {
						Type:       ProviderTypeOpenAIPool,
						OpenAIPool: &provider.OpenAIPoolConfig{Models: []provider.ModelInfo{{ID: "gpt-5"}}},
					},
				})
			},
			wantErr: "at least one account",
		},
		{
			name: "model server without addr",
			mutate: func(cfg *Config) {
				cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"p": {
						Type:        ProviderTypeModelServer,
						ModelServer: &provider.GRPCConfig{Models: []provider.ModelInfo{{ID: "local"}}},
					},
				})
			},
			wantErr: "field 'model_server.addr'",
		},
		{
			name: "no models",
			mutate: func(cfg *Config) {
				cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
					"p": {Type: ProviderTypeClaudeCLI, ClaudeCLI: &provider.ClaudeCLIConfig{}},
				})
			},
			wantErr: "at least one model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			// Drop cross-references so only the provider under test matters.
			cfg.AgentRegistry = NewAgentRegistry(nil)
			cfg.Defaults.Provider = "p"
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAgents(t *testing.T) {
	tests := []struct {
		name    string
		agent   *AgentConfig
		wantErr string
	}{
		{
			name:    "unknown capability",
			agent:   &AgentConfig{Capabilities: []string{"time-travel"}},
			wantErr: "time-travel",
		},
		{
			name:    "unknown provider",
			agent:   &AgentConfig{Provider: "ghost"},
			wantErr: "provider 'ghost' not found",
		},
		{
			name: "unknown role provider",
			agent: &AgentConfig{
				Roles: map[string]RoleConfig{"review": {Provider: "ghost"}},
			},
			wantErr: "provider 'ghost' not found",
		},
		{
			name:    "unknown skill",
			agent:   &AgentConfig{Skills: []string{"alchemy"}},
			wantErr: "skill 'alchemy' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.AgentRegistry = NewAgentRegistry(map[string]*AgentConfig{"bad": tt.agent})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLoop(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(loop *LoopConfig)
		wantErr string
	}{
		{
			name:    "zero parallelism",
			mutate:  func(l *LoopConfig) { l.MaxParallelTasks = 0 },
			wantErr: "max_parallel_tasks",
		},
		{
			name:    "zero decision cap",
			mutate:  func(l *LoopConfig) { l.MaxDecisions = 0 },
			wantErr: "max_decisions",
		},
		{
			name:    "negative budget",
			mutate:  func(l *LoopConfig) { l.BudgetUSD = -1 },
			wantErr: "budget_usd",
		},
		{
			name:    "warning fraction above one",
			mutate:  func(l *LoopConfig) { l.BudgetWarningFraction = 1.5 },
			wantErr: "budget_warning_fraction",
		},
		{
			name:    "stale threshold below check interval",
			mutate:  func(l *LoopConfig) { l.StaleThreshold = l.HealthCheckInterval / 2 },
			wantErr: "stale_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Loop)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateDefaultsProviderRef(t *testing.T) {
	cfg := validTestConfig()
	cfg.Defaults.Provider = "nope"

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider 'nope' not found")
}
