package config

import (
	"sync"

	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/provider"
)

// BuiltinConfig holds the built-in configuration data: default agents,
// provider settings, and system-wide defaults. User YAML overrides any
// entry with the same name.
type BuiltinConfig struct {
	Agents          map[string]AgentConfig
	Providers       map[string]ProviderConfig
	DefaultProvider string
	DefaultModel    string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Agents:          initBuiltinAgents(),
		Providers:       initBuiltinProviders(),
		DefaultProvider: "claude-cli",
		DefaultModel:    "sonnet",
	}
}

func initBuiltinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"project-manager": {
			Type:        "pm",
			Description: "Plans the task graph and decides what runs next",
			Model:       "opus",
		},
		"engineer": {
			Type:         "coder",
			Description:  "Implements and fixes code in the project workspace",
			Capabilities: []string{models.CapabilityFileAccess, models.CapabilityShellAccess},
			Roles: map[string]RoleConfig{
				"implement": {
					SystemPrompt:        "You are a senior software engineer. Implement the task to satisfy its acceptance criteria. Make focused changes and verify them.",
					ReceivesPlanContext: true,
				},
				"fix": {
					SystemPrompt: "You are a senior software engineer. Diagnose the reported failure and fix it with the smallest safe change.",
				},
			},
		},
		"reviewer": {
			Type:         "reviewer",
			Description:  "Reviews completed work against acceptance criteria",
			Capabilities: []string{models.CapabilityFileAccess},
			Roles: map[string]RoleConfig{
				"review": {
					SystemPrompt:    "You are a meticulous code reviewer. Evaluate the referenced work against its acceptance criteria and report concrete findings.",
					EvaluatesOutput: true,
				},
				"qa": {
					SystemPrompt:     "You are a QA engineer. Verify the referenced work and answer with a PASS or FAIL verdict followed by your evidence.",
					ProducesPassFail: true,
					EvaluatesOutput:  true,
				},
			},
		},
		"researcher": {
			Type:        "researcher",
			Description: "Answers questions and gathers context without touching files",
		},
	}
}

func initBuiltinProviders() map[string]ProviderConfig {
	return map[string]ProviderConfig{
		"claude-cli": {
			Type: ProviderTypeClaudeCLI,
			ClaudeCLI: &provider.ClaudeCLIConfig{
				Models: []provider.ModelInfo{
					{ID: "sonnet", Tier: 2},
					{ID: "opus", Tier: 3},
					{ID: "haiku", Tier: 1},
				},
			},
		},
	}
}
