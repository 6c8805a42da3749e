package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skill is one reusable playbook: a Markdown body with YAML front matter
// declaring its name and description. Skills named by a task hint or an
// agent definition are injected into the working directory before the
// agent runs.
type Skill struct {
	Name        string
	Description string
	Body        string
	SourcePath  string
}

// SkillLibrary stores the loaded skill collection keyed by normalized name.
type SkillLibrary struct {
	skills map[string]Skill
	root   string
}

// Root returns the directory the library was loaded from (empty for none).
func (l *SkillLibrary) Root() string { return l.root }

// Get retrieves a skill by name (normalized lookup).
func (l *SkillLibrary) Get(name string) (Skill, error) {
	skill, ok := l.skills[NormalizeSkillName(name)]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %s", ErrSkillNotFound, name)
	}
	return skill, nil
}

// List returns all skills sorted by name.
func (l *SkillLibrary) List() []Skill {
	out := make([]Skill, 0, len(l.skills))
	for _, s := range l.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of loaded skills
func (l *SkillLibrary) Len() int { return len(l.skills) }

// LoadSkills loads skill Markdown files from dir. A missing or empty dir
// yields an empty library; skills are optional.
//
// Layout: either flat <dir>/<name>.md files or <dir>/<name>/SKILL.md
// subdirectories. Each file carries `---` delimited YAML front matter with
// required name and description fields.
func LoadSkills(dir string) (*SkillLibrary, error) {
	lib := &SkillLibrary{skills: make(map[string]Skill)}

	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return lib, nil
	}
	info, err := os.Stat(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lib, nil
		}
		return nil, fmt.Errorf("stat skills dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: skills dir %s is not a directory", ErrInvalidValue, trimmed)
	}
	lib.root = trimmed

	paths, err := discoverSkillFiles(trimmed)
	if err != nil {
		return nil, fmt.Errorf("discover skills: %w", err)
	}

	for _, path := range paths {
		skill, err := parseSkillFile(path)
		if err != nil {
			return nil, err
		}
		if skill.Name == "" {
			return nil, NewValidationError("skill", path, "name", ErrMissingRequiredField)
		}
		if skill.Description == "" {
			return nil, NewValidationError("skill", path, "description", ErrMissingRequiredField)
		}
		key := NormalizeSkillName(skill.Name)
		if _, exists := lib.skills[key]; exists {
			return nil, fmt.Errorf("duplicate skill name %q in %s", key, path)
		}
		lib.skills[key] = skill
	}

	return lib, nil
}

func discoverSkillFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			path := filepath.Join(root, name, "SKILL.md")
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				paths = append(paths, path)
			}
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), ".md") {
			paths = append(paths, filepath.Join(root, name))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

type skillFrontMatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func parseSkillFile(path string) (Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, fmt.Errorf("read skill %s: %w", path, err)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")

	metaText, bodyText, hasFrontMatter := splitFrontMatter(content)
	var meta skillFrontMatter
	if hasFrontMatter {
		if err := yaml.Unmarshal([]byte(metaText), &meta); err != nil {
			return Skill{}, fmt.Errorf("parse skill front matter %s: %w", path, err)
		}
	}

	return Skill{
		Name:        strings.TrimSpace(meta.Name),
		Description: strings.TrimSpace(meta.Description),
		Body:        strings.TrimSpace(bodyText),
		SourcePath:  path,
	}, nil
}

// splitFrontMatter separates a leading `---` delimited YAML block from the
// Markdown body. Content without front matter is returned whole as body.
func splitFrontMatter(content string) (meta, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", content, false
}

// NormalizeSkillName normalizes a skill name for lookups.
func NormalizeSkillName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.ReplaceAll(name, " ", "-")
}
