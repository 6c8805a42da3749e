package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the project history search: the PM looks up past runs
// by request text, and past task attempts by their output.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for run request full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_pipeline_runs_request_gin
		ON pipeline_runs USING gin(to_tsvector('english', request))`)
	if err != nil {
		return fmt.Errorf("failed to create request GIN index: %w", err)
	}

	// GIN index for agent run output full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agent_runs_output_gin
		ON agent_runs USING gin(to_tsvector('english', COALESCE(output, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create output GIN index: %w", err)
	}

	return nil
}
