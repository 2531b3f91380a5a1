package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daniel/career-coach/internal/types"
)

// CreateRoadmap stores a roadmap document.
func (db *DB) CreateRoadmap(ctx context.Context, r *types.Roadmap) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO roadmaps (id, candidate_id, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.CandidateID, doc, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

// GetRoadmap retrieves a roadmap by ID. Returns nil without error if not
// found.
func (db *DB) GetRoadmap(ctx context.Context, id uuid.UUID) (*types.Roadmap, error) {
	return db.getRoadmap(ctx, `SELECT doc FROM roadmaps WHERE id = $1`, id)
}

// GetRoadmapByCandidate retrieves the candidate's most recent roadmap.
// Returns nil without error if the candidate has none.
func (db *DB) GetRoadmapByCandidate(ctx context.Context, candidateID uuid.UUID) (*types.Roadmap, error) {
	return db.getRoadmap(ctx,
		`SELECT doc FROM roadmaps WHERE candidate_id = $1 ORDER BY created_at DESC LIMIT 1`,
		candidateID)
}

func (db *DB) getRoadmap(ctx context.Context, query string, arg any) (*types.Roadmap, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx, query, arg).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}

	var r types.Roadmap
	if err := json.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("failed to decode roadmap: %w", err)
	}
	return &r, nil
}

// UpdateRoadmap replaces the stored document. There is no version check:
// concurrent writers race and the last one wins.
func (db *DB) UpdateRoadmap(ctx context.Context, r *types.Roadmap) error {
	doc, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE roadmaps SET doc = $1, updated_at = $2 WHERE id = $3`,
		doc, r.UpdatedAt, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update roadmap: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("roadmap not found: %s", r.ID)
	}
	return nil
}

// DeleteRoadmap removes a roadmap document.
func (db *DB) DeleteRoadmap(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM roadmaps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete roadmap: %w", err)
	}
	return nil
}
