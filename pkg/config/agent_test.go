package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/provider"
)

func TestAgentRegistry(t *testing.T) {
	reg := NewAgentRegistry(map[string]*AgentConfig{
		"zeta": {Type: "coder"},
		"alpha": {
			DisplayName: "Alpha Agent",
			Type:        "researcher",
			Description: "Finds things out",
			Roles: map[string]RoleConfig{
				"dig":       {SystemPrompt: "dig"},
				"summarize": {SystemPrompt: "summarize"},
			},
		},
	})

	agent, err := reg.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "researcher", agent.Type)

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	_, err = agent.Role("dig")
	require.NoError(t, err)
	_, err = agent.Role("fly")
	assert.ErrorIs(t, err, ErrRoleNotFound)

	assert.Equal(t, []string{"alpha", "zeta"}, reg.Names())

	defs := reg.Definitions()
	require.Len(t, defs, 2)
	// Display name overrides the map key; roles come out sorted.
	assert.Equal(t, "Alpha Agent", defs[0].Name)
	assert.Equal(t, []string{"dig", "summarize"}, defs[0].Roles)
	assert.Equal(t, "zeta", defs[1].Name)
}

func TestProviderConfigModels(t *testing.T) {
	enabled := false
	tests := []struct {
		name       string
		cfg        ProviderConfig
		wantModels int
		wantOn     bool
	}{
		{
			name: "cli models",
			cfg: ProviderConfig{
				Type:      ProviderTypeClaudeCLI,
				ClaudeCLI: &provider.ClaudeCLIConfig{Models: []provider.ModelInfo{{ID: "sonnet"}}},
			},
			wantModels: 1,
			wantOn:     true,
		},
		{
			name: "section mismatch yields none",
			cfg: ProviderConfig{
				Type:      ProviderTypeAnthropic,
				ClaudeCLI: &provider.ClaudeCLIConfig{Models: []provider.ModelInfo{{ID: "sonnet"}}},
			},
			wantModels: 0,
			wantOn:     true,
		},
		{
			name: "explicitly disabled",
			cfg: ProviderConfig{
				Type:    ProviderTypeModelServer,
				Enabled: &enabled,
				ModelServer: &provider.GRPCConfig{
					Addr:   "localhost:50051",
					Models: []provider.ModelInfo{{ID: "local"}},
				},
			},
			wantModels: 1,
			wantOn:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cfg.Models(), tt.wantModels)
			assert.Equal(t, tt.wantOn, tt.cfg.IsEnabled())
		})
	}
}
