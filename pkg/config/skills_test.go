package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSkills(t *testing.T) {
	dir := t.TempDir()
	writeSkill(t, filepath.Join(dir, "release.md"), `---
name: release
description: Release checklist
---
# Release
Tag, build, publish.
`)
	writeSkill(t, filepath.Join(dir, "db-migration", "SKILL.md"), `---
name: DB Migration
description: Safe schema changes
---
Always write both up and down migrations.
`)

	lib, err := LoadSkills(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, dir, lib.Root())

	release, err := lib.Get("release")
	require.NoError(t, err)
	assert.Equal(t, "Release checklist", release.Description)
	assert.Contains(t, release.Body, "Tag, build, publish.")

	// Lookup is case- and space-insensitive via normalization.
	migration, err := lib.Get("db migration")
	require.NoError(t, err)
	assert.Equal(t, "DB Migration", migration.Name)

	list := lib.List()
	require.Len(t, list, 2)
	assert.Equal(t, "DB Migration", list[0].Name)
	assert.Equal(t, "release", list[1].Name)
}

func TestLoadSkillsMissingDir(t *testing.T) {
	lib, err := LoadSkills(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, 0, lib.Len())

	lib, err = LoadSkills("")
	require.NoError(t, err)
	assert.Equal(t, 0, lib.Len())
}

func TestLoadSkillsMissingFrontMatter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no name",
			content: "---\ndescription: something\n---\nbody",
			wantErr: "name",
		},
		{
			name:    "no description",
			content: "---\nname: something\n---\nbody",
			wantErr: "description",
		},
		{
			name:    "no front matter at all",
			content: "# Just Markdown\nbody",
			wantErr: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeSkill(t, filepath.Join(dir, "bad.md"), tt.content)

			_, err := LoadSkills(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSkillsDuplicateName(t *testing.T) {
	dir := t.TempDir()
	skill := "---\nname: Deploy\ndescription: d\n---\nbody"
	writeSkill(t, filepath.Join(dir, "a.md"), skill)
	writeSkill(t, filepath.Join(dir, "b.md"), skill)

	_, err := LoadSkills(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate skill name")
}

func TestNormalizeSkillName(t *testing.T) {
	assert.Equal(t, "db-migration", NormalizeSkillName("  DB Migration "))
	assert.Equal(t, "release", NormalizeSkillName("Release"))
}
