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

// SaveResumeData stores a parsed resume payload for a candidate and returns
// the resume ID.
func (db *DB) SaveResumeData(ctx context.Context, candidateID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	doc, err := json.Marshal(data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, candidate_id, data, created_at) VALUES ($1, $2, $3, $4)`,
		id, candidateID, doc, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResumeData retrieves a parsed resume payload by resume ID. Returns nil
// without error if not found.
func (db *DB) GetResumeData(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM resumes WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var data map[string]any
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("failed to decode resume data: %w", err)
	}
	return data, nil
}

// SaveResumeAnalysis attaches an analysis document to a stored resume.
func (db *DB) SaveResumeAnalysis(ctx context.Context, id uuid.UUID, analysis *types.ResumeAnalysis) error {
	doc, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal resume analysis: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET analysis = $2 WHERE id = $1`, id, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// GetResumeAnalysis retrieves the analysis stored with a resume. A resume
// that was uploaded but never analyzed yields nil without error; a missing
// resume is an error.
func (db *DB) GetResumeAnalysis(ctx context.Context, id uuid.UUID) (*types.ResumeAnalysis, error) {
	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT analysis FROM resumes WHERE id = $1`, id,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("resume not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get resume analysis: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal(doc, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode resume analysis: %w", err)
	}
	return &analysis, nil
}
