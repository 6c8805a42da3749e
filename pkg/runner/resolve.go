package runner

import (
	"fmt"
	"strings"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/models"
)

// resolve walks the provider/model resolution chain, strongest first:
// project override, task hint, role metadata, agent metadata, defaults.
// Provider and model resolve independently.
func (r *Runner) resolve(projectID string, task models.TaskNode, agentCfg *config.AgentConfig, roleCfg config.RoleConfig) (providerName, model string) {
	override, _ := r.cfg.ProjectSettingsFor(projectID).Override(task.Agent, task.Role)

	providerName = firstNonEmpty(
		override.Provider,
		task.Provider,
		roleCfg.Provider,
		agentCfg.Provider,
		r.cfg.Defaults.Provider,
	)
	model = firstNonEmpty(
		override.Model,
		task.Model,
		roleCfg.Model,
		agentCfg.Model,
		r.cfg.Defaults.Model,
	)
	return providerName, model
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// buildPrompt composes the task prompt shown to the executing agent.
func (r *Runner) buildPrompt(req Request, roleCfg config.RoleConfig) string {
	task := req.Task
	var b strings.Builder

	fmt.Fprintf(&b, "## Task %s: %s\n", task.ID, task.Title)
	if task.Description != "" {
		b.WriteString("\n" + task.Description + "\n")
	}

	if len(task.AcceptanceCriteria) > 0 {
		b.WriteString("\n## Acceptance Criteria\n")
		for _, c := range task.AcceptanceCriteria {
			b.WriteString("- " + c + "\n")
		}
	}

	if req.ExtraContext != "" {
		b.WriteString("\n## Context\n" + req.ExtraContext + "\n")
	}

	if roleCfg.ReceivesPlanContext && req.PlanContext != "" {
		b.WriteString("\n## Plan\n" + req.PlanContext + "\n")
	}

	if roleCfg.ProducesPassFail {
		b.WriteString("\nAnswer with a PASS or FAIL verdict on the first line, followed by your evidence.\n")
	}

	return b.String()
}
