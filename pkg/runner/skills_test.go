package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/models"
)

func TestGuardWorkingDir(t *testing.T) {
	root := t.TempDir()
	install := filepath.Join(root, "opt", "foreman")
	require.NoError(t, os.MkdirAll(install, 0o755))

	tests := []struct {
		name    string
		wd      string
		wantErr bool
	}{
		{name: "sibling directory ok", wd: filepath.Join(root, "projects", "app")},
		{name: "directory inside install root ok", wd: filepath.Join(install, "workspace")},
		{name: "equal to install root rejected", wd: install, wantErr: true},
		{name: "parent of install root rejected", wd: filepath.Join(root, "opt"), wantErr: true},
		{name: "ancestor of install root rejected", wd: root, wantErr: true},
		{name: "empty working dir rejected", wd: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guardWorkingDir(tt.wd, install)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func loadTestSkills(t *testing.T) *config.SkillLibrary {
	t.Helper()
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("deploy.md", "---\nname: deploy\ndescription: Deployment checklist\n---\nShip it carefully.")
	write("review.md", "---\nname: review\ndescription: Review checklist\n---\nRead the diff twice.")

	lib, err := config.LoadSkills(dir)
	require.NoError(t, err)
	return lib
}

func TestInjectSkills(t *testing.T) {
	cfg := testConfig(t, "alpha")
	cfg.Skills = loadTestSkills(t)
	r := New(cfg, nil, nil, "")

	wd := t.TempDir()

	// Stale content from a previous run gets cleared.
	stale := filepath.Join(wd, ".claude", "skills", "old-skill")
	require.NoError(t, os.MkdirAll(stale, 0o755))

	task := models.TaskNode{
		ID:     "t1",
		Agent:  "engineer",
		Skills: []string{"deploy", "no-such-skill"},
	}
	agentCfg := &config.AgentConfig{Skills: []string{"review", "deploy"}}

	skills, err := r.injectSkills(wd, task, agentCfg)
	require.NoError(t, err)

	// Unknown hints skipped, duplicates collapsed.
	require.Len(t, skills, 2)
	assert.Equal(t, "deploy", skills[0].Name)
	assert.Equal(t, "review", skills[1].Name)

	data, err := os.ReadFile(filepath.Join(wd, ".claude", "skills", "deploy", "SKILL.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: deploy")
	assert.Contains(t, string(data), "Ship it carefully.")

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
}

func TestInjectSkillsEmptySelection(t *testing.T) {
	cfg := testConfig(t, "alpha")
	r := New(cfg, nil, nil, "")
	wd := t.TempDir()

	skills, err := r.injectSkills(wd, models.TaskNode{ID: "t1"}, &config.AgentConfig{})
	require.NoError(t, err)
	assert.Empty(t, skills)

	_, err = os.Stat(filepath.Join(wd, ".claude", "skills"))
	assert.True(t, os.IsNotExist(err))
}

func TestPrependSkills(t *testing.T) {
	prompt := "## Task t1: Build\n"
	skills := []config.Skill{{Name: "deploy", Description: "Deployment checklist"}}

	out := prependSkills(prompt, skills)
	assert.Contains(t, out, "## Active Skills")
	assert.Contains(t, out, "- deploy: Deployment checklist")
	assert.Contains(t, out, prompt)

	assert.Equal(t, prompt, prependSkills(prompt, nil))
}

func TestBuildPrompt(t *testing.T) {
	r := &Runner{}
	req := Request{
		Task: models.TaskNode{
			ID:                 "t2",
			Title:              "Add caching",
			Description:        "Cache the hot path.",
			AcceptanceCriteria: []string{"cache hit ratio measured", "tests pass"},
		},
		ExtraContext: "t1 output: profiling data",
		PlanContext:  "Overall plan text",
	}

	out := r.buildPrompt(req, config.RoleConfig{ReceivesPlanContext: true, ProducesPassFail: true})
	assert.Contains(t, out, "## Task t2: Add caching")
	assert.Contains(t, out, "Cache the hot path.")
	assert.Contains(t, out, "- cache hit ratio measured")
	assert.Contains(t, out, "## Context\nt1 output: profiling data")
	assert.Contains(t, out, "## Plan\nOverall plan text")
	assert.Contains(t, out, "PASS or FAIL")

	// Plan context withheld from roles that do not receive it.
	out = r.buildPrompt(req, config.RoleConfig{})
	assert.NotContains(t, out, "## Plan")
}

func TestInjectSkillsOrderIsDeterministic(t *testing.T) {
	cfg := testConfig(t, "alpha")
	cfg.Skills = loadTestSkills(t)
	r := New(cfg, nil, nil, "")

	task := models.TaskNode{ID: "t1", Skills: []string{"review"}}
	agentCfg := &config.AgentConfig{Skills: []string{"deploy"}}

	skills, err := r.injectSkills(t.TempDir(), task, agentCfg)
	require.NoError(t, err)
	// Task hints come first, then agent-declared skills.
	require.Len(t, skills, 2)
	assert.Equal(t, "review", skills[0].Name)
	assert.Equal(t, "deploy", skills[1].Name)
}
