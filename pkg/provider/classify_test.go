package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name    string
		errText string
		want    ErrorKind
	}{
		{"empty", "", ErrorKindUnknown},
		{"http 401", "request failed with status 401", ErrorKindPermanent},
		{"permission denied", "PERMISSION_DENIED: missing scope", ErrorKindPermanent},
		{"bad api key", "invalid api key provided", ErrorKindPermanent},
		{"unknown model", "invalid model: gpt-99", ErrorKindPermanent},
		{"content policy", "blocked by content policy", ErrorKindPermanent},
		{"http 429", "request failed with status 429", ErrorKindTransient},
		{"resource exhausted", "RESOURCE_EXHAUSTED: quota exceeded", ErrorKindTransient},
		{"rate limit wording", "you are being rate-limited", ErrorKindTransient},
		{"overloaded", "upstream overloaded, try later", ErrorKindTransient},
		{"connection refused", "dial tcp: connection refused", ErrorKindTransient},
		{"timeout", "request timed out after 30s", ErrorKindTransient},
		{"bad gateway", "unexpected status 502 from upstream", ErrorKindTransient},
		{"sigkill", "process exited with SIGKILL", ErrorKindTransient},
		{"unclassified", "something inexplicable happened", ErrorKindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.errText))
		})
	}
}

// A message matching both tables resolves to permanent: auth failures often
// mention retry wording and must not be retried.
func TestClassifyErrorPermanentWins(t *testing.T) {
	assert.Equal(t, ErrorKindPermanent, ClassifyError("403 forbidden: rate limit policy"))
	assert.Equal(t, ErrorKindPermanent, ClassifyError("unauthorized, please retry with a valid token"))
}

func TestErrorKindRetryable(t *testing.T) {
	assert.True(t, ErrorKindTransient.Retryable())
	assert.True(t, ErrorKindUnknown.Retryable())
	assert.False(t, ErrorKindPermanent.Retryable())
	assert.False(t, ErrorKindNone.Retryable())
}

func TestErrorKindAllowsProviderSwitch(t *testing.T) {
	assert.True(t, ErrorKindTransient.AllowsProviderSwitch())
	assert.False(t, ErrorKindUnknown.AllowsProviderSwitch())
	assert.False(t, ErrorKindPermanent.AllowsProviderSwitch())
}
