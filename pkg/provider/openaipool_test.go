package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChat returns canned responses per account credential.
type fakeChat struct {
	cred  string
	calls *[]string
	err   error
	text  string
}

func (f *fakeChat) New(ctx context.Context, body oai.ChatCompletionNewParams, opts ...option.RequestOption) (*oai.ChatCompletion, error) {
	*f.calls = append(*f.calls, f.cred)
	if f.err != nil {
		return nil, f.err
	}
	return &oai.ChatCompletion{
		Choices: []oai.ChatCompletionChoice{
			{Message: oai.ChatCompletionMessage{Content: f.text}},
		},
		Usage: oai.CompletionUsage{PromptTokens: 10, CompletionTokens: 5},
	}, nil
}

func poolWith(t *testing.T, accounts []OpenAIAccount, perAccount map[string]*fakeChat) (*OpenAIPoolAdapter, *[]string) {
	t.Helper()
	calls := &[]string{}
	a := NewOpenAIPoolAdapter(OpenAIPoolConfig{
		Accounts: accounts,
		Models:   []ModelInfo{{ID: "gpt-5", InputPer1M: 1.25, OutputPer1M: 10}},
	}, nil)
	a.newClient = func(acct OpenAIAccount) chatClient {
		fc := perAccount[acct.ID]
		fc.cred = acct.credential()
		fc.calls = calls
		return fc
	}
	return a, calls
}

func TestOpenAIPoolDetect(t *testing.T) {
	a := NewOpenAIPoolAdapter(OpenAIPoolConfig{}, nil)
	assert.False(t, a.Detect(context.Background()).Available)

	a = NewOpenAIPoolAdapter(OpenAIPoolConfig{
		Accounts: []OpenAIAccount{{ID: "one", APIKey: "sk-test"}},
	}, nil)
	assert.True(t, a.Detect(context.Background()).Available)
}

func TestOpenAIPoolExecuteSuccess(t *testing.T) {
	a, calls := poolWith(t,
		[]OpenAIAccount{{ID: "one", APIKey: "key-one"}},
		map[string]*fakeChat{"one": {text: "answer"}},
	)

	res := a.Execute(context.Background(), ExecutionContext{Prompt: "q", Model: "gpt-5"})
	require.True(t, res.Success)
	assert.Equal(t, "answer", res.Output)
	require.NotNil(t, res.Usage)
	assert.Equal(t, 10, res.Usage.InputTokens)
	assert.Equal(t, 5, res.Usage.OutputTokens)
	assert.InDelta(t, 10.0/1e6*1.25+5.0/1e6*10, res.CostUSD, 1e-12)
	assert.Equal(t, []string{"key-one"}, *calls)
}

func TestOpenAIPoolRotatesOnRateLimit(t *testing.T) {
	a, calls := poolWith(t,
		[]OpenAIAccount{
			{ID: "one", APIKey: "key-one"},
			{ID: "two", APIKey: "key-two"},
		},
		map[string]*fakeChat{
			"one": {err: errors.New("429: rate limit exceeded")},
			"two": {text: "from two"},
		},
	)

	res := a.Execute(context.Background(), ExecutionContext{Prompt: "q", Model: "gpt-5"})
	require.True(t, res.Success)
	assert.Equal(t, "from two", res.Output)
	assert.Equal(t, []string{"key-one", "key-two"}, *calls)

	// The rate-limited account is cooling down, so the next execution goes
	// straight to the healthy one.
	res = a.Execute(context.Background(), ExecutionContext{Prompt: "q2", Model: "gpt-5"})
	require.True(t, res.Success)
	assert.Equal(t, []string{"key-one", "key-two", "key-two"}, *calls)
}

func TestOpenAIPoolAllAccountsExhausted(t *testing.T) {
	a, _ := poolWith(t,
		[]OpenAIAccount{
			{ID: "one", APIKey: "key-one"},
			{ID: "two", APIKey: "key-two"},
		},
		map[string]*fakeChat{
			"one": {err: errors.New("429: rate limit exceeded")},
			"two": {err: errors.New("429: rate limit exceeded")},
		},
	)

	res := a.Execute(context.Background(), ExecutionContext{Prompt: "q", Model: "gpt-5"})
	require.False(t, res.Success)
	assert.Equal(t, ErrorKindTransient, res.ErrorKind)
}

func TestOpenAIPoolPermanentErrorStops(t *testing.T) {
	a, calls := poolWith(t,
		[]OpenAIAccount{
			{ID: "one", APIKey: "key-one"},
			{ID: "two", APIKey: "key-two"},
		},
		map[string]*fakeChat{
			"one": {err: errors.New("401 unauthorized")},
			"two": {text: "never reached"},
		},
	)

	res := a.Execute(context.Background(), ExecutionContext{Prompt: "q", Model: "gpt-5"})
	require.False(t, res.Success)
	assert.Equal(t, ErrorKindPermanent, res.ErrorKind)
	assert.Len(t, *calls, 1, "non-rate-limit failures must not burn other accounts")
}

func TestOpenAIPoolPickLeastRecentlyUsed(t *testing.T) {
	a := NewOpenAIPoolAdapter(OpenAIPoolConfig{
		Accounts: []OpenAIAccount{
			{ID: "one", APIKey: "k1"},
			{ID: "two", APIKey: "k2"},
		},
	}, nil)
	a.accounts[0].lastUsed = time.Now()

	p := a.pick(map[string]bool{})
	require.NotNil(t, p)
	assert.Equal(t, "two", p.acct.ID)

	// Cooling accounts are skipped even when least recently used.
	a.accounts[1].cooldownUntil = time.Now().Add(time.Minute)
	p = a.pick(map[string]bool{})
	require.NotNil(t, p)
	assert.Equal(t, "one", p.acct.ID)

	// Everything tried: nothing left.
	assert.Nil(t, a.pick(map[string]bool{"one": true, "two": true}))
}

func TestOpenAIPoolTokenRefresh(t *testing.T) {
	refreshed := false
	refresh := func(ctx context.Context, refreshToken string) (string, time.Time, error) {
		refreshed = true
		assert.Equal(t, "rt-1", refreshToken)
		return "new-token", time.Now().Add(time.Hour), nil
	}
	a := NewOpenAIPoolAdapter(OpenAIPoolConfig{
		Accounts: []OpenAIAccount{{
			ID:           "one",
			AccessToken:  "old-token",
			RefreshToken: "rt-1",
			ExpiresAt:    time.Now().Add(time.Minute),
		}},
	}, refresh)

	a.refreshIfNeeded(context.Background(), a.accounts[0])
	assert.True(t, refreshed)
	assert.Equal(t, "new-token", a.accounts[0].acct.AccessToken)

	// Fresh token: no refresh.
	refreshed = false
	a.refreshIfNeeded(context.Background(), a.accounts[0])
	assert.False(t, refreshed)
}
