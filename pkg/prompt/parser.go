package prompt

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/foremanhq/foreman/pkg/models"
)

// decisionEnvelope matches the contractual [PM_DECISION] ... [/PM_DECISION]
// block.
var decisionEnvelope = regexp.MustCompile(`(?s)\[PM_DECISION\]\s*(.*?)\s*\[/PM_DECISION\]`)

// codeFence strips Markdown code fences around loose JSON.
var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ParseDecision extracts a PM decision from raw model output. The strict
// envelope is tried first; failing that, a looser heuristic strips code
// fences, takes the first balanced JSON value, and repairs malformed JSON.
// Invalid actions inside an otherwise parseable decision are dropped with
// a warning. Returns an error only when no decision can be recovered at
// all; the loop then falls back to auto-launching ready tasks.
func ParseDecision(output string) (*models.PMDecision, error) {
	if m := decisionEnvelope.FindStringSubmatch(output); m != nil {
		if d, err := decodeDecision(m[1]); err == nil {
			return d, nil
		} else {
			slog.Warn("strict decision envelope failed to decode, trying loose extraction", "error", err)
		}
	}

	candidate := output
	if m := codeFence.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}
	balanced := firstBalancedJSON(candidate)
	if balanced == "" {
		return nil, fmt.Errorf("no decision JSON found in PM output")
	}

	d, err := decodeDecision(balanced)
	if err == nil {
		return d, nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(balanced)
	if repairErr != nil {
		return nil, fmt.Errorf("failed to parse PM decision: %w", err)
	}
	d, err = decodeDecision(repaired)
	if err != nil {
		return nil, fmt.Errorf("failed to parse repaired PM decision: %w", err)
	}
	return d, nil
}

// decodeDecision unmarshals a decision object (or a bare action array) and
// filters out invalid actions.
func decodeDecision(raw string) (*models.PMDecision, error) {
	raw = strings.TrimSpace(raw)

	var d models.PMDecision
	if strings.HasPrefix(raw, "[") {
		// Bare action array without the wrapping object.
		if err := json.Unmarshal([]byte(raw), &d.Actions); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, err
	}

	valid := d.Actions[:0]
	for _, a := range d.Actions {
		if err := a.Validate(); err != nil {
			slog.Warn("dropping invalid PM action", "error", err)
			continue
		}
		valid = append(valid, a)
	}
	d.Actions = valid
	if len(d.Actions) == 0 {
		return nil, fmt.Errorf("decision contains no valid actions")
	}
	return &d, nil
}

// firstBalancedJSON returns the first balanced {...} or [...] in s,
// ignoring brackets inside JSON strings.
func firstBalancedJSON(s string) string {
	start := -1
	var open, closing rune
	for i, r := range s {
		if r == '{' || r == '[' {
			start = i
			open = r
			if r == '{' {
				closing = '}'
			} else {
				closing = ']'
			}
			break
		}
	}
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := rune(s[i])
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	// Unterminated: return the tail and let the repair pass close it.
	return s[start:]
}

// RenderDecision re-encodes a decision into the canonical envelope, used
// for logging and round-trip tests.
func RenderDecision(d *models.PMDecision) (string, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[PM_DECISION]\n%s\n[/PM_DECISION]", raw), nil
}
