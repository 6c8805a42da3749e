package provider

import "regexp"

// classification is one ordered pattern-table entry.
type classification struct {
	pattern *regexp.Regexp
	kind    ErrorKind
}

// Permanent patterns are checked before transient ones: an authentication
// failure that mentions a timeout must still short-circuit retries.
var permanentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b401\b`),
	regexp.MustCompile(`(?i)\b403\b`),
	regexp.MustCompile(`(?i)PERMISSION_DENIED`),
	regexp.MustCompile(`(?i)unauthorized`),
	regexp.MustCompile(`(?i)forbidden`),
	regexp.MustCompile(`(?i)api key`),
	regexp.MustCompile(`(?i)invalid model`),
	regexp.MustCompile(`(?i)content policy`),
	regexp.MustCompile(`(?i)\bsafety\b`),
	regexp.MustCompile(`(?i)invalid[_ ]argument`),
	regexp.MustCompile(`(?i)INVALID_REQUEST`),
}

var transientPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b429\b`),
	regexp.MustCompile(`(?i)RESOURCE_EXHAUSTED`),
	regexp.MustCompile(`(?i)rate.?limit`),
	regexp.MustCompile(`(?i)quota`),
	regexp.MustCompile(`(?i)overloaded`),
	regexp.MustCompile(`(?i)capacity`),
	regexp.MustCompile(`(?i)ECONNREFUSED`),
	regexp.MustCompile(`(?i)ETIMEDOUT`),
	regexp.MustCompile(`(?i)ENOTFOUND`),
	regexp.MustCompile(`(?i)fetch failed`),
	regexp.MustCompile(`(?i)connection (refused|reset)`),
	regexp.MustCompile(`(?i)timed? ?out`),
	regexp.MustCompile(`(?i)\b502\b`),
	regexp.MustCompile(`(?i)\b503\b`),
	regexp.MustCompile(`(?i)SIGKILL`),
	regexp.MustCompile(`(?i)SIGTERM`),
}

// ClassifyError maps an error string to an ErrorKind by matching the
// permanent table first, then the transient table. Anything unmatched is
// ErrorKindUnknown — retried like transient but never switching providers.
func ClassifyError(errText string) ErrorKind {
	if errText == "" {
		return ErrorKindNone
	}
	for _, p := range permanentPatterns {
		if p.MatchString(errText) {
			return ErrorKindPermanent
		}
	}
	for _, p := range transientPatterns {
		if p.MatchString(errText) {
			return ErrorKindTransient
		}
	}
	return ErrorKindUnknown
}

// Retryable reports whether an error kind permits another attempt.
func (k ErrorKind) Retryable() bool {
	return k == ErrorKindTransient || k == ErrorKindUnknown
}

// AllowsProviderSwitch reports whether the kind justifies cross-provider
// fallback. Only confidently-transient errors do.
func (k ErrorKind) AllowsProviderSwitch() bool {
	return k == ErrorKindTransient
}
