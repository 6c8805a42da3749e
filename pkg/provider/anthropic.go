package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/foremanhq/foreman/pkg/models"
)

// defaultHTTPMaxTokens caps completions when the caller does not set one.
const defaultHTTPMaxTokens = 8192

// AnthropicConfig configures the Anthropic Messages API adapter.
type AnthropicConfig struct {
	// APIKey overrides the ANTHROPIC_API_KEY environment variable.
	APIKey string      `yaml:"api_key"`
	Models []ModelInfo `yaml:"models"`
}

// messagesClient is the subset of the SDK message service the adapter
// uses, satisfied by *sdk.MessageService and by test fakes.
type messagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicAdapter executes prompts against the Anthropic Messages API.
// It is prompt-only: no file access, no shell, no tool execution.
type AnthropicAdapter struct {
	cfg AnthropicConfig
	msg messagesClient
}

// NewAnthropicAdapter creates the Anthropic HTTP adapter. The SDK client
// is built lazily on first execution so that Detect never requires a
// network round trip.
func NewAnthropicAdapter(cfg AnthropicConfig) *AnthropicAdapter {
	return &AnthropicAdapter{cfg: cfg}
}

func (a *AnthropicAdapter) ID() string   { return "anthropic-api" }
func (a *AnthropicAdapter) Name() string { return "Anthropic API" }

func (a *AnthropicAdapter) Capabilities() models.Capabilities {
	return models.Capabilities{}
}

func (a *AnthropicAdapter) Models() []ModelInfo { return a.cfg.Models }

// Detect reports availability based on key presence alone.
func (a *AnthropicAdapter) Detect(ctx context.Context) Availability {
	if a.apiKey() == "" {
		return Availability{Reason: "ANTHROPIC_API_KEY not set"}
	}
	return Availability{Available: true}
}

func (a *AnthropicAdapter) apiKey() string {
	if a.cfg.APIKey != "" {
		return a.cfg.APIKey
	}
	return os.Getenv("ANTHROPIC_API_KEY")
}

func (a *AnthropicAdapter) client() messagesClient {
	if a.msg == nil {
		c := sdk.NewClient(option.WithAPIKey(a.apiKey()))
		a.msg = &c.Messages
	}
	return a.msg
}

// Execute issues a single non-streaming Messages request.
func (a *AnthropicAdapter) Execute(ctx context.Context, execCtx ExecutionContext) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{}

	model := execCtx.Model
	if model == "" {
		model = DefaultModel(a)
	}
	if model == "" {
		result.Error = "no model configured for anthropic-api"
		result.ErrorKind = ErrorKindPermanent
		return result
	}

	maxTokens := execCtx.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = defaultHTTPMaxTokens
	}

	if execCtx.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, execCtx.Timeout)
		defer cancel()
	}

	params := sdk.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Model:     sdk.Model(model),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(execCtx.Prompt)),
		},
	}
	if execCtx.SystemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: execCtx.SystemPrompt}}
	}

	msg, err := a.client().New(ctx, params)
	result.DurationMs = int(time.Since(start).Milliseconds())
	if err != nil {
		result.Error = fmt.Sprintf("anthropic messages.new: %v", err)
		result.ErrorKind = classifyHTTPError(err)
		return result
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	result.Success = true
	result.Output = sb.String()
	if execCtx.OnEvent != nil && result.Output != "" {
		execCtx.OnEvent(StreamEvent{Type: StreamEventText, Text: result.Output})
	}

	usage := TokenUsage{
		InputTokens:  int(msg.Usage.InputTokens + msg.Usage.CacheCreationInputTokens + msg.Usage.CacheReadInputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	result.Usage = &usage
	result.CostUSD = usageCost(a.cfg.Models, model, usage)
	return result
}

// classifyHTTPError maps an SDK error onto an error kind, preferring the
// HTTP status code over message-text matching when one is present.
func classifyHTTPError(err error) ErrorKind {
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 429:
			return ErrorKindTransient
		case apierr.StatusCode >= 500:
			return ErrorKindTransient
		case apierr.StatusCode >= 400:
			return ErrorKindPermanent
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTransient
	}
	return ClassifyError(err.Error())
}

// usageCost prices token usage against the declared model pricing.
// Unknown models cost zero.
func usageCost(infos []ModelInfo, model string, usage TokenUsage) float64 {
	for _, m := range infos {
		if m.ID == model {
			return float64(usage.InputTokens)/1e6*m.InputPer1M +
				float64(usage.OutputTokens)/1e6*m.OutputPer1M
		}
	}
	return 0
}
