package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfigDir writes a minimal valid foreman.yaml + providers.yaml
// into a temp directory.
func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeConfigFile(t, dir, "foreman.yaml", `
loop:
  max_parallel_tasks: 2
agents:
  tester:
    type: coder
    description: Runs the test suite
    capabilities: [file-access]
    roles:
      verify:
        system_prompt: Run the tests and report results.
        produces_pass_fail: true
defaults:
  provider: claude-cli
projects:
  proj-1:
    overrides:
      "engineer:implement":
        model: opus
`)
	writeConfigFile(t, dir, "providers.yaml", `
providers:
  anthropic:
    type: anthropic-api
    anthropic:
      api_key: "{{.TEST_ANTHROPIC_KEY}}"
      models:
        - id: claude-sonnet-4-5
          input_per_1m: 3.0
          output_per_1m: 15.0
          tier: 2
`)
	return dir
}

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("TEST_ANTHROPIC_KEY", "sk-test-123")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.NotNil(t, cfg.AgentRegistry)
	assert.NotNil(t, cfg.ProviderRegistry)
	assert.NotNil(t, cfg.Skills)
	assert.NotNil(t, cfg.Defaults)

	// Built-in agents survive the merge alongside user agents.
	_, err = cfg.GetAgent("project-manager")
	assert.NoError(t, err)
	_, err = cfg.GetAgent("engineer")
	assert.NoError(t, err)
	tester, err := cfg.GetAgent("tester")
	require.NoError(t, err)
	role, err := tester.Role("verify")
	require.NoError(t, err)
	assert.True(t, role.ProducesPassFail)

	// User loop values override defaults, unset ones keep built-ins.
	assert.Equal(t, 2, cfg.Loop.MaxParallelTasks)
	assert.Equal(t, 35*time.Minute, cfg.Loop.TaskExecutionTimeout)
	assert.Equal(t, 0.8, cfg.Loop.BudgetWarningFraction)

	// Retention falls back to built-in defaults when absent from YAML.
	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 90, cfg.Retention.RunRetentionDays)
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)

	// Env expansion applied to provider credentials.
	anthropic, err := cfg.GetProvider("anthropic")
	require.NoError(t, err)
	require.NotNil(t, anthropic.Anthropic)
	assert.Equal(t, "sk-test-123", anthropic.Anthropic.APIKey)

	// Built-in provider survives alongside user providers.
	_, err = cfg.GetProvider("claude-cli")
	assert.NoError(t, err)

	// Project overrides resolve role-specific keys first.
	settings := cfg.ProjectSettingsFor("proj-1")
	o, ok := settings.Override("engineer", "implement")
	require.True(t, ok)
	assert.Equal(t, "opus", o.Model)
	_, ok = settings.Override("engineer", "fix")
	assert.False(t, ok)

	stats := cfg.Stats()
	assert.Greater(t, stats.Agents, 1)
	assert.Greater(t, stats.Providers, 1)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "foreman.yaml", "agents: [not: a: map")
	writeConfigFile(t, dir, "providers.yaml", "providers: {}")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeUserAgentOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "foreman.yaml", `
agents:
  engineer:
    type: coder
    description: Custom engineer
`)
	writeConfigFile(t, dir, "providers.yaml", "providers: {}")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	engineer, err := cfg.GetAgent("engineer")
	require.NoError(t, err)
	assert.Equal(t, "Custom engineer", engineer.Description)
	// Whole-entry override: the built-in roles are replaced, not merged.
	assert.Empty(t, engineer.Roles)
}

func TestInitializeSkillsDirRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	skillsDir := filepath.Join(dir, "skills")
	require.NoError(t, os.MkdirAll(skillsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(skillsDir, "deploy.md"), []byte(`---
name: deploy
description: Deployment checklist
---
# Deploy
Steps.
`), 0o644))

	writeConfigFile(t, dir, "foreman.yaml", `
skills:
  dir: skills
`)
	writeConfigFile(t, dir, "providers.yaml", "providers: {}")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	skill, err := cfg.Skills.Get("deploy")
	require.NoError(t, err)
	assert.Equal(t, "Deployment checklist", skill.Description)
	assert.Contains(t, skill.Body, "# Deploy")
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "foreman.yaml", `
agents:
  broken:
    provider: no-such-provider
`)
	writeConfigFile(t, dir, "providers.yaml", "providers: {}")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "agent", verr.Component)
	assert.Equal(t, "broken", verr.ID)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("FOREMAN_TEST_VAR", "expanded-value")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "expands set variable",
			input:    "key: {{.FOREMAN_TEST_VAR}}",
			expected: "key: expanded-value",
		},
		{
			name:     "missing variable expands to empty",
			input:    "key: {{.FOREMAN_TEST_UNSET_VAR}}",
			expected: "key: ",
		},
		{
			name:     "dollar signs pass through",
			input:    `pattern: "^secret.*$"`,
			expected: `pattern: "^secret.*$"`,
		},
		{
			name:     "malformed template passes through",
			input:    "key: {{.FOREMAN",
			expected: "key: {{.FOREMAN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
