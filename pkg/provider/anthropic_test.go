package provider

import (
	"context"
	"errors"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessages struct {
	gotParams sdk.MessageNewParams
	msg       *sdk.Message
	err       error
}

func (f *fakeMessages) New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error) {
	f.gotParams = body
	return f.msg, f.err
}

func TestAnthropicDetect(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	a := NewAnthropicAdapter(AnthropicConfig{})
	av := a.Detect(context.Background())
	assert.False(t, av.Available)
	assert.Contains(t, av.Reason, "ANTHROPIC_API_KEY")

	a = NewAnthropicAdapter(AnthropicConfig{APIKey: "sk-ant-test"})
	assert.True(t, a.Detect(context.Background()).Available)
}

func TestAnthropicExecute(t *testing.T) {
	fake := &fakeMessages{msg: &sdk.Message{
		Content: []sdk.ContentBlockUnion{
			{Type: "text", Text: "part one "},
			{Type: "text", Text: "part two"},
		},
		Usage: sdk.Usage{InputTokens: 1000, OutputTokens: 500},
	}}
	a := NewAnthropicAdapter(AnthropicConfig{
		APIKey: "k",
		Models: []ModelInfo{{ID: "claude-sonnet-4-5", InputPer1M: 3, OutputPer1M: 15}},
	})
	a.msg = fake

	var events []StreamEvent
	res := a.Execute(context.Background(), ExecutionContext{
		Prompt:       "do the thing",
		SystemPrompt: "you are an agent",
		Model:        "claude-sonnet-4-5",
		OnEvent:      func(ev StreamEvent) { events = append(events, ev) },
	})

	require.True(t, res.Success)
	assert.Equal(t, "part one part two", res.Output)
	require.NotNil(t, res.Usage)
	assert.Equal(t, 1000, res.Usage.InputTokens)
	assert.Equal(t, 500, res.Usage.OutputTokens)
	assert.InDelta(t, 1000.0/1e6*3+500.0/1e6*15, res.CostUSD, 1e-9)
	require.Len(t, events, 1)
	assert.Equal(t, StreamEventText, events[0].Type)

	assert.Equal(t, sdk.Model("claude-sonnet-4-5"), fake.gotParams.Model)
	require.Len(t, fake.gotParams.System, 1)
	assert.Equal(t, "you are an agent", fake.gotParams.System[0].Text)
	assert.Equal(t, int64(defaultHTTPMaxTokens), fake.gotParams.MaxTokens)
}

func TestAnthropicExecuteError(t *testing.T) {
	a := NewAnthropicAdapter(AnthropicConfig{
		APIKey: "k",
		Models: []ModelInfo{{ID: "claude-sonnet-4-5"}},
	})
	a.msg = &fakeMessages{err: errors.New("overloaded_error: try again")}

	res := a.Execute(context.Background(), ExecutionContext{Prompt: "x", Model: "claude-sonnet-4-5"})
	require.False(t, res.Success)
	assert.Equal(t, ErrorKindTransient, res.ErrorKind)
	assert.Contains(t, res.Error, "overloaded_error")
}

func TestAnthropicExecuteNoModel(t *testing.T) {
	a := NewAnthropicAdapter(AnthropicConfig{APIKey: "k"})
	res := a.Execute(context.Background(), ExecutionContext{Prompt: "x"})
	require.False(t, res.Success)
	assert.Equal(t, ErrorKindPermanent, res.ErrorKind)
}

func TestUsageCost(t *testing.T) {
	infos := []ModelInfo{{ID: "m", InputPer1M: 2, OutputPer1M: 8}}
	assert.InDelta(t, 2e-6*100+8e-6*50, usageCost(infos, "m", TokenUsage{InputTokens: 100, OutputTokens: 50}), 1e-12)
	assert.Zero(t, usageCost(infos, "other", TokenUsage{InputTokens: 100}))
}
