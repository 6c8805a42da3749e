package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/foremanhq/foreman/pkg/provider"
)

// ProviderType selects which adapter a provider entry configures.
type ProviderType string

// Supported provider adapter types.
const (
	ProviderTypeClaudeCLI   ProviderType = "claude-cli"
	ProviderTypeAnthropic   ProviderType = "anthropic-api"
	ProviderTypeOpenAIPool  ProviderType = "openai-pool"
	ProviderTypeModelServer ProviderType = "model-server"
)

// knownProviderTypes is the validation set for ProviderConfig.Type.
var knownProviderTypes = map[ProviderType]bool{
	ProviderTypeClaudeCLI:   true,
	ProviderTypeAnthropic:   true,
	ProviderTypeOpenAIPool:  true,
	ProviderTypeModelServer: true,
}

// ProviderConfig is one entry in providers.yaml. Exactly one of the
// adapter-specific sections should match Type; the others are ignored.
type ProviderConfig struct {
	Type ProviderType `yaml:"type"`

	// Enabled defaults to true; a disabled provider stays out of the
	// runtime registry without being deleted from the file.
	Enabled *bool `yaml:"enabled,omitempty"`

	ClaudeCLI   *provider.ClaudeCLIConfig  `yaml:"claude_cli,omitempty"`
	Anthropic   *provider.AnthropicConfig  `yaml:"anthropic,omitempty"`
	OpenAIPool  *provider.OpenAIPoolConfig `yaml:"openai_pool,omitempty"`
	ModelServer *provider.GRPCConfig       `yaml:"model_server,omitempty"`
}

// IsEnabled reports whether the provider should be registered.
func (p *ProviderConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Models returns the model declarations of the active adapter section.
func (p *ProviderConfig) Models() []provider.ModelInfo {
	switch p.Type {
	case ProviderTypeClaudeCLI:
		if p.ClaudeCLI != nil {
			return p.ClaudeCLI.Models
		}
	case ProviderTypeAnthropic:
		if p.Anthropic != nil {
			return p.Anthropic.Models
		}
	case ProviderTypeOpenAIPool:
		if p.OpenAIPool != nil {
			return p.OpenAIPool.Models
		}
	case ProviderTypeModelServer:
		if p.ModelServer != nil {
			return p.ModelServer.Models
		}
	}
	return nil
}

// ProviderRegistry stores provider configurations with thread-safe access.
// This holds settings only; live adapters are constructed at worker start.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider settings registry
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name (thread-safe)
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// GetAll returns all provider configurations (thread-safe, returns copy)
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Names returns all provider names, sorted.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of configured providers
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
