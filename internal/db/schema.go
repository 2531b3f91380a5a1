package db

import (
	"context"
	"fmt"
)

// schemaStatements create the tables on first boot. Statements are
// idempotent so a restart against an initialized database is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		kind TEXT NOT NULL,
		candidate_data JSONB,
		recruiter_data JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		data JSONB NOT NULL,
		analysis JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS roadmaps (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		doc JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roadmaps_candidate ON roadmaps(candidate_id)`,
	`CREATE TABLE IF NOT EXISTS job_requirements (
		id UUID PRIMARY KEY,
		recruiter_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		company TEXT NOT NULL,
		position TEXT NOT NULL,
		doc JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_requirements_recruiter ON job_requirements(recruiter_id)`,
}

// EnsureSchema creates any missing tables and indexes.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
