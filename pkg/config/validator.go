package config

import (
	"fmt"

	"github.com/foremanhq/foreman/pkg/models"
)

// validCapabilities is the set of capability tags agents may require.
var validCapabilities = map[string]bool{
	models.CapabilityFileAccess:  true,
	models.CapabilityShellAccess: true,
}

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: providers → agents → defaults → loop
	// This ensures dependencies are validated before dependents

	if err := v.validateProviders(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateLoop(); err != nil {
		return fmt.Errorf("loop validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateProviders() error {
	for name, p := range v.cfg.ProviderRegistry.GetAll() {
		if p.Type == "" {
			return NewValidationError("provider", name, "type", ErrMissingRequiredField)
		}
		if !knownProviderTypes[p.Type] {
			return NewValidationError("provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, p.Type))
		}

		// The adapter section matching Type must be present.
		switch p.Type {
		case ProviderTypeClaudeCLI:
			if p.ClaudeCLI == nil {
				return NewValidationError("provider", name, "claude_cli", ErrMissingRequiredField)
			}
		case ProviderTypeAnthropic:
			if p.Anthropic == nil {
				return NewValidationError("provider", name, "anthropic", ErrMissingRequiredField)
			}
		case ProviderTypeOpenAIPool:
			if p.OpenAIPool == nil {
				return NewValidationError("provider", name, "openai_pool", ErrMissingRequiredField)
			}
			if len(p.OpenAIPool.Accounts) == 0 {
				return NewValidationError("provider", name, "openai_pool.accounts", fmt.Errorf("at least one account required"))
			}
		case ProviderTypeModelServer:
			if p.ModelServer == nil {
				return NewValidationError("provider", name, "model_server", ErrMissingRequiredField)
			}
			if p.ModelServer.Addr == "" {
				return NewValidationError("provider", name, "model_server.addr", ErrMissingRequiredField)
			}
		}

		if len(p.Models()) == 0 {
			return NewValidationError("provider", name, "models", fmt.Errorf("at least one model required"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		for _, tag := range agent.Capabilities {
			if !validCapabilities[tag] {
				return NewValidationError("agent", name, "capabilities", fmt.Errorf("%w: %s", ErrInvalidValue, tag))
			}
		}

		if err := v.validateProviderRef("agent", name, "provider", agent.Provider); err != nil {
			return err
		}

		for roleName, role := range agent.Roles {
			field := fmt.Sprintf("roles.%s.provider", roleName)
			if err := v.validateProviderRef("agent", name, field, role.Provider); err != nil {
				return err
			}
		}

		for _, skill := range agent.Skills {
			if _, err := v.cfg.Skills.Get(skill); err != nil {
				return NewValidationError("agent", name, "skills", fmt.Errorf("skill '%s' not found", skill))
			}
		}
	}

	return nil
}

// validateProviderRef checks that a non-empty provider reference names a
// configured provider.
func (v *ConfigValidator) validateProviderRef(component, id, field, ref string) error {
	if ref == "" {
		return nil
	}
	if _, err := v.cfg.ProviderRegistry.Get(ref); err != nil {
		return NewValidationError(component, id, field, fmt.Errorf("provider '%s' not found", ref))
	}
	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	if v.cfg.Defaults.Provider == "" {
		return NewValidationError("defaults", "defaults", "provider", ErrMissingRequiredField)
	}
	return v.validateProviderRef("defaults", "defaults", "provider", v.cfg.Defaults.Provider)
}

func (v *ConfigValidator) validateLoop() error {
	loop := v.cfg.Loop
	if loop.MaxParallelTasks < 1 {
		return NewValidationError("loop", "loop", "max_parallel_tasks", fmt.Errorf("must be at least 1"))
	}
	if loop.MaxDecisions < 1 {
		return NewValidationError("loop", "loop", "max_decisions", fmt.Errorf("must be at least 1"))
	}
	if loop.BudgetUSD <= 0 {
		return NewValidationError("loop", "loop", "budget_usd", fmt.Errorf("must be positive"))
	}
	if loop.BudgetWarningFraction <= 0 || loop.BudgetWarningFraction > 1 {
		return NewValidationError("loop", "loop", "budget_warning_fraction", fmt.Errorf("must be in (0, 1]"))
	}
	if loop.TaskExecutionTimeout <= 0 {
		return NewValidationError("loop", "loop", "task_execution_timeout", fmt.Errorf("must be positive"))
	}
	if loop.HealthCheckInterval <= 0 {
		return NewValidationError("loop", "loop", "health_check_interval", fmt.Errorf("must be positive"))
	}
	if loop.StaleThreshold < loop.HealthCheckInterval {
		return NewValidationError("loop", "loop", "stale_threshold", fmt.Errorf("must be at least health_check_interval"))
	}
	return nil
}
