package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/foremanhq/foreman/pkg/models"
)

const (
	// rateLimitCooldown is how long a 429'd account sits out before it is
	// eligible for selection again.
	rateLimitCooldown = 60 * time.Second

	// tokenRefreshBuffer refreshes OAuth tokens this far before expiry.
	tokenRefreshBuffer = 5 * time.Minute
)

// OpenAIAccount is one credentialed account in the pool. Accounts carry
// either a static API key or an OAuth token pair refreshed through the
// pool's TokenRefresher.
type OpenAIAccount struct {
	ID           string    `yaml:"id"`
	APIKey       string    `yaml:"api_key"`
	AccessToken  string    `yaml:"access_token"`
	RefreshToken string    `yaml:"refresh_token"`
	ExpiresAt    time.Time `yaml:"expires_at"`
	BaseURL      string    `yaml:"base_url"`
}

// TokenRefresher exchanges a refresh token for a fresh access token.
type TokenRefresher func(ctx context.Context, refreshToken string) (accessToken string, expiresAt time.Time, err error)

// OpenAIPoolConfig configures the pooled OpenAI adapter.
type OpenAIPoolConfig struct {
	Accounts []OpenAIAccount `yaml:"accounts"`
	Models   []ModelInfo     `yaml:"models"`

	// MaxAccountRetries bounds how many accounts one execution may burn
	// through on rate limits. Zero means every account once.
	MaxAccountRetries int `yaml:"max_account_retries"`
}

type pooledAccount struct {
	acct          OpenAIAccount
	lastUsed      time.Time
	cooldownUntil time.Time
}

// OpenAIPoolAdapter executes prompts against the OpenAI Chat Completions
// API, rotating across a pool of accounts. Selection is least recently
// used; accounts that hit a rate limit are placed on cooldown and the
// request moves to the next account.
type OpenAIPoolAdapter struct {
	cfg     OpenAIPoolConfig
	refresh TokenRefresher
	logger  *slog.Logger

	mu       sync.Mutex
	accounts []*pooledAccount

	// newClient is swapped in tests to avoid real HTTP clients.
	newClient func(acct OpenAIAccount) chatClient
}

// chatClient is the slice of the SDK the adapter calls.
type chatClient interface {
	New(ctx context.Context, body oai.ChatCompletionNewParams, opts ...option.RequestOption) (*oai.ChatCompletion, error)
}

// NewOpenAIPoolAdapter creates the pooled adapter. refresh may be nil,
// in which case OAuth accounts are used as-is until their token expires.
func NewOpenAIPoolAdapter(cfg OpenAIPoolConfig, refresh TokenRefresher) *OpenAIPoolAdapter {
	a := &OpenAIPoolAdapter{
		cfg:     cfg,
		refresh: refresh,
		logger:  slog.With("component", "provider.openai-pool"),
	}
	for _, acct := range cfg.Accounts {
		a.accounts = append(a.accounts, &pooledAccount{acct: acct})
	}
	a.newClient = func(acct OpenAIAccount) chatClient {
		opts := []option.RequestOption{option.WithAPIKey(acct.credential())}
		if acct.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(acct.BaseURL))
		}
		c := oai.NewClient(opts...)
		return &c.Chat.Completions
	}
	return a
}

func (acct OpenAIAccount) credential() string {
	if acct.AccessToken != "" {
		return acct.AccessToken
	}
	return acct.APIKey
}

func (a *OpenAIPoolAdapter) ID() string   { return "openai-pool" }
func (a *OpenAIPoolAdapter) Name() string { return "OpenAI (pooled)" }

func (a *OpenAIPoolAdapter) Capabilities() models.Capabilities {
	return models.Capabilities{}
}

func (a *OpenAIPoolAdapter) Models() []ModelInfo { return a.cfg.Models }

// Detect reports availability when at least one account has a credential.
func (a *OpenAIPoolAdapter) Detect(ctx context.Context) Availability {
	for _, p := range a.accounts {
		if p.acct.credential() != "" {
			return Availability{Available: true}
		}
	}
	return Availability{Reason: "no openai accounts configured"}
}

// pick returns the least recently used account not on cooldown, skipping
// the ids in tried. Returns nil when every usable account has been tried
// or is cooling down.
func (a *OpenAIPoolAdapter) pick(tried map[string]bool) *pooledAccount {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	var best *pooledAccount
	for _, p := range a.accounts {
		if tried[p.acct.ID] || p.acct.credential() == "" || now.Before(p.cooldownUntil) {
			continue
		}
		if best == nil || p.lastUsed.Before(best.lastUsed) {
			best = p
		}
	}
	if best != nil {
		best.lastUsed = now
	}
	return best
}

func (a *OpenAIPoolAdapter) markRateLimited(p *pooledAccount) {
	a.mu.Lock()
	p.cooldownUntil = time.Now().Add(rateLimitCooldown)
	a.mu.Unlock()
	a.logger.Warn("account rate limited, cooling down",
		"account", p.acct.ID, "cooldown", rateLimitCooldown)
}

// refreshIfNeeded refreshes an OAuth token when it expires within the
// buffer. Refresh failures are logged and the stale token is used.
func (a *OpenAIPoolAdapter) refreshIfNeeded(ctx context.Context, p *pooledAccount) {
	a.mu.Lock()
	needs := a.refresh != nil && p.acct.RefreshToken != "" &&
		!p.acct.ExpiresAt.IsZero() && time.Until(p.acct.ExpiresAt) < tokenRefreshBuffer
	refreshToken := p.acct.RefreshToken
	a.mu.Unlock()
	if !needs {
		return
	}

	token, expiry, err := a.refresh(ctx, refreshToken)
	if err != nil {
		a.logger.Warn("token refresh failed", "account", p.acct.ID, "error", err)
		return
	}
	a.mu.Lock()
	p.acct.AccessToken = token
	p.acct.ExpiresAt = expiry
	a.mu.Unlock()
	a.logger.Info("refreshed account token", "account", p.acct.ID, "expires_at", expiry)
}

// Execute runs the prompt through the pool, moving to the next account on
// rate limits up to the retry bound.
func (a *OpenAIPoolAdapter) Execute(ctx context.Context, execCtx ExecutionContext) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{}

	model := execCtx.Model
	if model == "" {
		model = DefaultModel(a)
	}
	if model == "" {
		result.Error = "no model configured for openai-pool"
		result.ErrorKind = ErrorKindPermanent
		return result
	}

	if execCtx.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, execCtx.Timeout)
		defer cancel()
	}

	maxRetries := a.cfg.MaxAccountRetries
	if maxRetries <= 0 {
		maxRetries = len(a.accounts)
	}

	tried := make(map[string]bool)
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		p := a.pick(tried)
		if p == nil {
			break
		}
		tried[p.acct.ID] = true
		a.refreshIfNeeded(ctx, p)

		out, usage, err := a.complete(ctx, p.acct, model, execCtx)
		if err == nil {
			result.Success = true
			result.Output = out
			result.Usage = &usage
			result.CostUSD = usageCost(a.cfg.Models, model, usage)
			result.DurationMs = int(time.Since(start).Milliseconds())
			if execCtx.OnEvent != nil && out != "" {
				execCtx.OnEvent(StreamEvent{Type: StreamEventText, Text: out})
			}
			return result
		}
		lastErr = err
		if isRateLimited(err) {
			a.markRateLimited(p)
			continue
		}
		break
	}

	result.DurationMs = int(time.Since(start).Milliseconds())
	if lastErr == nil {
		result.Error = "all openai accounts exhausted or cooling down"
		result.ErrorKind = ErrorKindTransient
		return result
	}
	result.Error = fmt.Sprintf("openai chat.completions: %v", lastErr)
	result.ErrorKind = classifyOpenAIError(lastErr)
	return result
}

func (a *OpenAIPoolAdapter) complete(ctx context.Context, acct OpenAIAccount, model string, execCtx ExecutionContext) (string, TokenUsage, error) {
	params := oai.ChatCompletionNewParams{
		Model: oai.ChatModel(model),
	}
	if execCtx.SystemPrompt != "" {
		params.Messages = append(params.Messages, oai.SystemMessage(execCtx.SystemPrompt))
	}
	params.Messages = append(params.Messages, oai.UserMessage(execCtx.Prompt))
	if execCtx.MaxOutputTokens > 0 {
		params.MaxTokens = oai.Int(int64(execCtx.MaxOutputTokens))
	}

	resp, err := a.newClient(acct).New(ctx, params)
	if err != nil {
		return "", TokenUsage{}, err
	}
	if len(resp.Choices) == 0 {
		return "", TokenUsage{}, errors.New("empty completion response")
	}
	usage := TokenUsage{
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
	}
	return resp.Choices[0].Message.Content, usage, nil
}

func isRateLimited(err error) bool {
	var apierr *oai.Error
	if errors.As(err, &apierr) && apierr.StatusCode == 429 {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "rate limit")
}

func classifyOpenAIError(err error) ErrorKind {
	var apierr *oai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 429, apierr.StatusCode >= 500:
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
