package migration

import (
	"context"
	"fmt"

	"underwrite/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createSessionsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create underwriting_sessions table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createSessionsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS underwriting_sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			state JSONB NOT NULL,
			version BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON underwriting_sessions(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_sessions_declined ON underwriting_sessions(((state->>'declined')::boolean))",
		"CREATE INDEX IF NOT EXISTS idx_sessions_completed ON underwriting_sessions(((state->>'completed')::boolean))",
		"CREATE INDEX IF NOT EXISTS idx_sessions_current_plan ON underwriting_sessions((state->>'currentPlan'))",
	}

	for _, idxSQL := range indexes {
		if _, err := db.ExecContext(ctx, idxSQL); err != nil {
			// Log but don't fail on index creation errors
			fmt.Printf("Warning: failed to create index: %v\n", err)
		}
	}

	return nil
}
