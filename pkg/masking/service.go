// Package masking scrubs credentials from agent output before it is
// persisted or fed back into decision prompts. Agents run shell commands
// inside project workspaces, so tokens and passwords routinely surface in
// their transcripts.
package masking

import (
	"log/slog"
	"sort"
)

// Service applies data masking to agent output. Created once at worker
// startup. Thread-safe and stateless aside from compiled patterns.
type Service struct {
	patterns    map[string]*CompiledPattern
	orderedKeys []string // deterministic application order
	codeMaskers []Masker
}

// NewService creates a masking service with compiled patterns and
// registered maskers. All patterns are compiled eagerly at creation time.
// Invalid patterns are logged and skipped.
func NewService() *Service {
	s := &Service{
		patterns: compilePatterns(),
	}
	for name := range s.patterns {
		s.orderedKeys = append(s.orderedKeys, name)
	}
	sort.Strings(s.orderedKeys)

	s.codeMaskers = []Masker{&DotenvMasker{}}

	slog.Info("Masking service initialized",
		"patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers))

	return s
}

// MaskOutput scrubs credentials from a piece of agent output. Code-based
// maskers run first (structural awareness, more precise), then the regex
// patterns as a general sweep. On any failure the content passes through
// unchanged; masking never loses task output.
func (s *Service) MaskOutput(content string) string {
	if content == "" {
		return content
	}

	masked := content
	for _, m := range s.codeMaskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, name := range s.orderedKeys {
		p := s.patterns[name]
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
