package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/foremanhq/foreman/pkg/provider"
)

const pmSystemPrompt = `You are the project manager of an autonomous engineering team. You receive the current state of a task pipeline and decide what happens next. Respond with exactly one [PM_DECISION] block as instructed; do not perform any task work yourself.`

// defaultPMTimeout bounds one PM invocation. PM calls are prompt-only and
// should be much faster than task executions.
const defaultPMTimeout = 5 * time.Minute

// RegistryPM is the default PMClient: prompt-only invocation of the
// configured PM model, resolved through the provider registry.
type RegistryPM struct {
	registry *provider.Registry

	// Provider/Model are preferences; empty falls back to best-available.
	Provider string
	Model    string

	Timeout time.Duration
}

// NewRegistryPM builds a PM client over the given registry.
func NewRegistryPM(registry *provider.Registry, providerID, model string) *RegistryPM {
	if registry == nil {
		panic("loop.NewRegistryPM: registry is required")
	}
	return &RegistryPM{registry: registry, Provider: providerID, Model: model, Timeout: defaultPMTimeout}
}

// Decide invokes the PM model with the composed decision prompt and
// returns its raw output plus the invocation cost.
func (p *RegistryPM) Decide(ctx context.Context, prompt string) (string, float64, error) {
	adapter, model, err := p.resolve(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("resolving PM provider: %w", err)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultPMTimeout
	}
	res := adapter.Execute(ctx, provider.ExecutionContext{
		Prompt:       prompt,
		SystemPrompt: pmSystemPrompt,
		Model:        model,
		Timeout:      timeout,
	})
	if !res.Success {
		return "", res.CostUSD, errors.New(res.Error)
	}
	return res.Output, res.CostUSD, nil
}

func (p *RegistryPM) resolve(ctx context.Context) (provider.Adapter, string, error) {
	if p.Provider != "" {
		adapter, err := p.registry.Get(p.Provider)
		if err != nil {
			return nil, "", err
		}
		model := p.Model
		if model == "" {
			model = provider.DefaultModel(adapter)
		}
		return adapter, model, nil
	}
	if p.Model != "" {
		adapter, err := p.registry.ResolveModel(p.Model)
		if err == nil {
			return adapter, p.Model, nil
		}
	}
	return p.registry.BestAvailable(ctx)
}
