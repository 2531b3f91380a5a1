package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daniel/career-coach/internal/types"
)

// CreateJobRequirements stores a recruiter's job requirements document.
// Company and position are duplicated into columns for target matching.
func (db *DB) CreateJobRequirements(ctx context.Context, reqs *types.JobRequirements) error {
	if reqs.ID == uuid.Nil {
		reqs.ID = uuid.New()
	}
	if reqs.CreatedAt.IsZero() {
		reqs.CreatedAt = time.Now().UTC()
	}

	doc, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_requirements (id, recruiter_id, company, position, doc, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reqs.ID, reqs.RecruiterID, reqs.Company, reqs.Position, doc, reqs.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create job requirements: %w", err)
	}
	return nil
}

// GetJobRequirementsByRecruiter lists a recruiter's published requirements,
// newest first.
func (db *DB) GetJobRequirementsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]types.JobRequirements, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT doc FROM job_requirements WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job requirements: %w", err)
	}
	defer rows.Close()

	var out []types.JobRequirements
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan job requirements: %w", err)
		}
		var reqs types.JobRequirements
		if err := json.Unmarshal(doc, &reqs); err != nil {
			return nil, fmt.Errorf("failed to decode job requirements: %w", err)
		}
		out = append(out, reqs)
	}
	return out, nil
}

// GetJobRequirements retrieves a single requirements document by ID. Returns
// nil without error if not found.
func (db *DB) GetJobRequirements(ctx context.Context, id uuid.UUID) (*types.JobRequirements, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT doc FROM job_requirements WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job requirements: %w", err)
	}

	var reqs types.JobRequirements
	if err := json.Unmarshal(doc, &reqs); err != nil {
		return nil, fmt.Errorf("failed to decode job requirements: %w", err)
	}
	return &reqs, nil
}

// FindByTarget retrieves every requirements document whose company and
// position match the given target by substring, case-insensitively, newest
// first. Returns an empty slice without error when nothing matches.
func (db *DB) FindByTarget(ctx context.Context, company, position string) ([]types.JobRequirements, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT doc FROM job_requirements
		 WHERE company ILIKE '%' || $1 || '%' AND position ILIKE '%' || $2 || '%'
		 ORDER BY created_at DESC`,
		company, position,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find job requirements: %w", err)
	}
	defer rows.Close()

	var out []types.JobRequirements
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan job requirements: %w", err)
		}
		var reqs types.JobRequirements
		if err := json.Unmarshal(doc, &reqs); err != nil {
			return nil, fmt.Errorf("failed to decode job requirements: %w", err)
		}
		out = append(out, reqs)
	}
	return out, nil
}
