package masking

import (
	"regexp"
	"strings"
)

// DotenvMasker masks values in dumped dotenv-style content (KEY=VALUE
// lines). Regex patterns handle the common credential names; this masker
// catches the long tail, where any variable whose name looks secret-bearing
// gets its value hidden regardless of the value's shape.
type DotenvMasker struct{}

// envLineRe matches a shell-style assignment: optional "export", an
// uppercase-ish identifier, "=", and the rest of the line as the value.
var envLineRe = regexp.MustCompile(`^(\s*(?:export\s+)?)([A-Za-z_][A-Za-z0-9_]*)=(.+)$`)

// secretKeyFragments are the name fragments that mark a variable as
// secret-bearing. Matching is case-insensitive on the variable name.
var secretKeyFragments = []string{
	"SECRET", "TOKEN", "PASSWORD", "PASSWD", "APIKEY", "API_KEY",
	"PRIVATE_KEY", "CREDENTIAL", "AUTH",
}

func (m *DotenvMasker) Name() string {
	return "dotenv"
}

// AppliesTo is a cheap pre-check: the content must contain at least one
// assignment with a secret-looking variable name.
func (m *DotenvMasker) AppliesTo(data string) bool {
	if !strings.Contains(data, "=") {
		return false
	}
	upper := strings.ToUpper(data)
	for _, frag := range secretKeyFragments {
		if strings.Contains(upper, frag) {
			return true
		}
	}
	return false
}

// Mask rewrites secret-bearing assignments line by line, leaving all other
// content untouched.
func (m *DotenvMasker) Mask(data string) string {
	lines := strings.Split(data, "\n")
	changed := false
	for i, line := range lines {
		match := envLineRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if !isSecretKey(match[2]) {
			continue
		}
		lines[i] = match[1] + match[2] + "=__MASKED_ENV_VALUE__"
		changed = true
	}
	if !changed {
		return data
	}
	return strings.Join(lines, "\n")
}

func isSecretKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, frag := range secretKeyFragments {
		if strings.Contains(upper, frag) {
			return true
		}
	}
	return false
}
