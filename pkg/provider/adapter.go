// Package provider implements the uniform execution contract over the
// heterogeneous model backends: subprocess CLIs emitting line-delimited
// JSON, HTTP SDK backends, and a gRPC model-server client. Adapters are
// registered in a process-wide registry and looked up by id or model name.
package provider

import (
	"context"
	"time"

	"github.com/foremanhq/foreman/pkg/models"
)

// ErrorKind classifies an execution failure for retry decisions.
type ErrorKind string

// Error kinds. Unknown errors retry like transient ones but never trigger
// a provider switch.
const (
	ErrorKindNone      ErrorKind = ""
	ErrorKindTransient ErrorKind = "transient"
	ErrorKindPermanent ErrorKind = "permanent"
	ErrorKindUnknown   ErrorKind = "unknown"
)

// StreamEventType identifies a streaming event emitted during execution.
type StreamEventType string

// Stream event types delivered to the OnEvent callback.
const (
	StreamEventText     StreamEventType = "text"
	StreamEventToolUse  StreamEventType = "tool_use"
	StreamEventInit     StreamEventType = "init"
	StreamEventThinking StreamEventType = "thinking"
)

// StreamEvent is one unit of streaming output from an adapter.
type StreamEvent struct {
	Type StreamEventType
	Text string
}

// ModelInfo declares one supported model with its pricing and capability
// tier. CLI alias models are priced at zero, which is why best-available
// selection uses the explicit tier rather than price.
type ModelInfo struct {
	ID          string  `yaml:"id"`
	InputPer1M  float64 `yaml:"input_per_1m"`
	OutputPer1M float64 `yaml:"output_per_1m"`
	Tier        int     `yaml:"tier"`
}

// TokenUsage is the token accounting reported by a backend.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// ExecutionContext carries everything an adapter needs for one execution.
type ExecutionContext struct {
	Prompt       string
	SystemPrompt string
	Model        string

	// WorkingDir is required for file-access adapters, ignored otherwise.
	WorkingDir string

	ProjectID string

	// SessionID resumes a stateful conversation when the backend supports it.
	SessionID string

	EnableTools bool
	Timeout     time.Duration

	// OnEvent receives streaming events. May be nil.
	OnEvent func(StreamEvent)

	// AbortRequested is polled by long-running adapters; when it reports
	// true the adapter terminates its backend. May be nil.
	AbortRequested func() bool

	MaxOutputTokens int
}

// ExecutionResult is the outcome of one adapter execution.
type ExecutionResult struct {
	Success    bool
	Output     string
	Error      string
	ErrorKind  ErrorKind
	DurationMs int
	Usage      *TokenUsage
	SessionID  string
	CostUSD    float64
}

// Availability is the result of adapter detection.
type Availability struct {
	Available bool
	Reason    string
}

// Adapter is the uniform execution contract implemented by every backend.
type Adapter interface {
	ID() string
	Name() string
	Capabilities() models.Capabilities
	Models() []ModelInfo
	Detect(ctx context.Context) Availability
	Execute(ctx context.Context, execCtx ExecutionContext) *ExecutionResult
}

// DefaultModel returns the adapter's first declared model id, or "".
func DefaultModel(a Adapter) string {
	if ms := a.Models(); len(ms) > 0 {
		return ms[0].ID
	}
	return ""
}

// SupportsModel reports whether the adapter declares the given model.
func SupportsModel(a Adapter, model string) bool {
	for _, m := range a.Models() {
		if m.ID == model {
			return true
		}
	}
	return false
}
