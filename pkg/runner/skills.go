package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/models"
)

// skillsSubdir is where injected skills land inside a working directory.
var skillsSubdir = filepath.Join(".claude", "skills")

// guardWorkingDir rejects working directories that equal or contain the
// orchestrator's own installation root. An agent with shell access inside
// such a directory could rewrite the orchestrator underneath itself.
func guardWorkingDir(workingDir, installRoot string) error {
	if workingDir == "" {
		return fmt.Errorf("file-access execution requires a working directory")
	}
	if installRoot == "" {
		return nil
	}

	absWD, err := filepath.Abs(workingDir)
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	absRoot, err := filepath.Abs(installRoot)
	if err != nil {
		return fmt.Errorf("resolve install root: %w", err)
	}

	rel, err := filepath.Rel(absWD, absRoot)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("unsafe working directory %s: contains installation root %s", absWD, absRoot)
	}
	return nil
}

// injectSkills copies the task's and agent's selected skills into
// <workingDir>/.claude/skills/<name>/SKILL.md, clearing previous contents
// first. Returns the injected skills for the prompt preamble. Unknown
// task-hinted skills are skipped with a warning; agent-declared skills
// were validated at config load.
func (r *Runner) injectSkills(workingDir string, task models.TaskNode, agentCfg *config.AgentConfig) ([]config.Skill, error) {
	names := append(append([]string(nil), task.Skills...), agentCfg.Skills...)

	var (
		skills []config.Skill
		seen   = map[string]bool{}
	)
	for _, name := range names {
		key := config.NormalizeSkillName(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skill, err := r.cfg.Skills.Get(name)
		if err != nil {
			r.logger.Warn("Skipping unknown skill", "task_id", task.ID, "skill", name)
			continue
		}
		skills = append(skills, skill)
	}

	dir := filepath.Join(workingDir, skillsSubdir)
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("clear skills dir: %w", err)
	}
	if len(skills) == 0 {
		return nil, nil
	}
	for _, skill := range skills {
		skillDir := filepath.Join(dir, config.NormalizeSkillName(skill.Name))
		if err := os.MkdirAll(skillDir, 0o755); err != nil {
			return nil, fmt.Errorf("create skill dir: %w", err)
		}
		content := fmt.Sprintf("---\nname: %s\ndescription: %s\n---\n\n%s\n",
			skill.Name, skill.Description, skill.Body)
		if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write skill %s: %w", skill.Name, err)
		}
	}
	return skills, nil
}

// prependSkills adds the active-skills list ahead of the task prompt.
func prependSkills(prompt string, skills []config.Skill) string {
	if len(skills) == 0 {
		return prompt
	}
	var b strings.Builder
	b.WriteString("## Active Skills\n")
	b.WriteString("The following skills are available under .claude/skills/; consult them before starting:\n")
	for _, s := range skills {
		fmt.Fprintf(&b, "- %s: %s\n", s.Name, s.Description)
	}
	b.WriteString("\n")
	return b.String() + prompt
}
