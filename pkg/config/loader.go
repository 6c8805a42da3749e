package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ForemanYAMLConfig represents the complete foreman.yaml file structure
type ForemanYAMLConfig struct {
	Loop      *LoopConfig                `yaml:"loop"`
	Agents    map[string]AgentConfig     `yaml:"agents"`
	Defaults  *Defaults                  `yaml:"defaults"`
	Worker    *WorkerConfig              `yaml:"worker"`
	Retention *RetentionConfig           `yaml:"retention"`
	Projects  map[string]ProjectSettings `yaml:"projects"`
	Skills    *SkillsYAMLConfig          `yaml:"skills"`
}

// SkillsYAMLConfig points at the skills library on disk.
type SkillsYAMLConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// ProvidersYAMLConfig represents the complete providers.yaml file structure
type ProvidersYAMLConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries and the skill library
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"providers", stats.Providers,
		"skills", stats.Skills)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load foreman.yaml (agents, loop tuning, defaults, projects)
	foremanConfig, err := loader.loadForemanYAML()
	if err != nil {
		return nil, NewLoadError("foreman.yaml", err)
	}

	// 2. Load providers.yaml
	providers, err := loader.loadProvidersYAML()
	if err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, foremanConfig.Agents)
	providersMerged := mergeProviders(builtin.Providers, providers)

	// 5. Resolve loop config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	loopConfig := DefaultLoopConfig()
	if foremanConfig.Loop != nil {
		if err := mergo.Merge(loopConfig, foremanConfig.Loop, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge loop config: %w", err)
		}
	}

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := foremanConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Provider == "" {
		defaults.Provider = builtin.DefaultProvider
	}
	if defaults.Model == "" {
		defaults.Model = builtin.DefaultModel
	}

	// 7. Load the skill library
	skillsDir := ""
	if foremanConfig.Skills != nil {
		skillsDir = foremanConfig.Skills.Dir
	}
	if skillsDir != "" && !filepath.IsAbs(skillsDir) {
		skillsDir = filepath.Join(configDir, skillsDir)
	}
	skills, err := LoadSkills(skillsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}

	worker := foremanConfig.Worker
	if worker == nil {
		worker = &WorkerConfig{}
	}

	// 8. Resolve retention config (user YAML overrides built-in defaults)
	retention := DefaultRetentionConfig()
	if foremanConfig.Retention != nil {
		if err := mergo.Merge(retention, foremanConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	return &Config{
		configDir:        configDir,
		Loop:             loopConfig,
		Defaults:         defaults,
		Worker:           worker,
		Retention:        retention,
		Projects:         foremanConfig.Projects,
		AgentRegistry:    NewAgentRegistry(agents),
		ProviderRegistry: NewProviderRegistry(providersMerged),
		Skills:           skills,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadForemanYAML() (*ForemanYAMLConfig, error) {
	var config ForemanYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentConfig)
	config.Projects = make(map[string]ProjectSettings)

	if err := l.loadYAML("foreman.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadProvidersYAML() (map[string]ProviderConfig, error) {
	var config ProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.Providers = make(map[string]ProviderConfig)

	if err := l.loadYAML("providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.Providers, nil
}
