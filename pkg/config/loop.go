package config

import "time"

// LoopConfig contains decision-loop tuning. These values bound how much
// work, time, and money one pipeline run may consume.
type LoopConfig struct {
	// MaxParallelTasks caps concurrently running agent executions. An
	// execute action listing more ready tasks than fit takes only the
	// prefix within this budget.
	MaxParallelTasks int `yaml:"max_parallel_tasks"`

	// MaxDecisions is the hard cap on PM decision rounds per run.
	MaxDecisions int `yaml:"max_decisions"`

	// BudgetUSD is the run's cost ceiling. Crossing it aborts the run.
	BudgetUSD float64 `yaml:"budget_usd"`

	// BudgetWarningFraction of BudgetUSD arms a one-shot budget_warning
	// trigger. Must be in (0, 1].
	BudgetWarningFraction float64 `yaml:"budget_warning_fraction"`

	// TaskExecutionTimeout is the per-task deadline; on expiry the
	// execution resolves as a "timed out" failure.
	TaskExecutionTimeout time.Duration `yaml:"task_execution_timeout"`

	// HealthCheckInterval is the cadence of abort/staleness/user-message
	// checks while waiting on in-flight executions.
	HealthCheckInterval time.Duration `yaml:"health_check_interval"`

	// StaleThreshold force-fails a wait when the project log sees no
	// activity for this long.
	StaleThreshold time.Duration `yaml:"stale_threshold"`

	// PlanConfirmTimeout bounds the plan confirmation gate; expiry is
	// treated as auto-continue.
	PlanConfirmTimeout time.Duration `yaml:"plan_confirm_timeout"`

	// QuestionTimeout bounds the agent-question gate; expiry unblocks
	// the task without an answer.
	QuestionTimeout time.Duration `yaml:"question_timeout"`

	// HeartbeatInterval is how often the worker refreshes the pipeline
	// run's heartbeat timestamp.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// DetectCacheTTL is how long provider availability probes are cached.
	DetectCacheTTL time.Duration `yaml:"detect_cache_ttl"`

	// RequirePlanConfirmation gates the first execute wave behind a plan
	// confirmation from the front end.
	RequirePlanConfirmation bool `yaml:"require_plan_confirmation"`
}

// DefaultLoopConfig returns the built-in loop defaults.
func DefaultLoopConfig() *LoopConfig {
	return &LoopConfig{
		MaxParallelTasks:      3,
		MaxDecisions:          50,
		BudgetUSD:             25.0,
		BudgetWarningFraction: 0.8,
		TaskExecutionTimeout:  35 * time.Minute,
		HealthCheckInterval:   30 * time.Second,
		StaleThreshold:        5 * time.Minute,
		PlanConfirmTimeout:    10 * time.Minute,
		QuestionTimeout:       10 * time.Minute,
		HeartbeatInterval:     30 * time.Second,
		DetectCacheTTL:        5 * time.Minute,
	}
}
