package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal pipeline runs
	// (completed, failed, aborted) before deleting them.
	RunRetentionDays int `yaml:"run_retention_days"`

	// EventTTL is the maximum age of event log rows before deletion.
	// Events age out independently of the runs they belong to.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 90,
		EventTTL:         30 * 24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}

// RunRetention returns the run retention window as a duration.
func (r *RetentionConfig) RunRetention() time.Duration {
	return time.Duration(r.RunRetentionDays) * 24 * time.Hour
}
