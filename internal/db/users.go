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

// CreateUser inserts a new user. The caller assigns the ID and hashes the
// password; the kind-specific document is marshaled from whichever variant
// is set.
func (db *DB) CreateUser(ctx context.Context, user *types.User) error {
	candidateDoc, recruiterDoc, err := variantDocs(user)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = db.pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, kind, candidate_data, recruiter_data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Kind),
		candidateDoc, recruiterDoc, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID. Returns nil without error if not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	return db.getUser(ctx,
		`SELECT id, email, name, password_hash, kind, candidate_data, recruiter_data, created_at, updated_at
		 FROM users WHERE id = $1`, id)
}

// GetUserByEmail retrieves a user by email. Returns nil without error if not
// found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return db.getUser(ctx,
		`SELECT id, email, name, password_hash, kind, candidate_data, recruiter_data, created_at, updated_at
		 FROM users WHERE email = $1`, email)
}

func (db *DB) getUser(ctx context.Context, query string, arg any) (*types.User, error) {
	var user types.User
	var kind string
	var candidateDoc, recruiterDoc []byte

	err := db.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &kind,
		&candidateDoc, &recruiterDoc, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Kind = types.UserKind(kind)
	if len(candidateDoc) > 0 {
		var data types.CandidateData
		if err := json.Unmarshal(candidateDoc, &data); err != nil {
			return nil, fmt.Errorf("failed to decode candidate data: %w", err)
		}
		user.Candidate = &data
	}
	if len(recruiterDoc) > 0 {
		var data types.RecruiterData
		if err := json.Unmarshal(recruiterDoc, &data); err != nil {
			return nil, fmt.Errorf("failed to decode recruiter data: %w", err)
		}
		user.Recruiter = &data
	}
	return &user, nil
}

// UpdateCandidateData replaces the candidate document for a user.
func (db *DB) UpdateCandidateData(ctx context.Context, id uuid.UUID, data types.CandidateData) error {
	doc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate data: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE users SET candidate_data = $1, updated_at = NOW()
		 WHERE id = $2 AND kind = 'candidate'`,
		doc, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate data: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

func variantDocs(user *types.User) ([]byte, []byte, error) {
	var candidateDoc, recruiterDoc []byte
	var err error
	if user.Candidate != nil {
		if candidateDoc, err = json.Marshal(user.Candidate); err != nil {
			return nil, nil, fmt.Errorf("failed to marshal candidate data: %w", err)
		}
	}
	if user.Recruiter != nil {
		if recruiterDoc, err = json.Marshal(user.Recruiter); err != nil {
			return nil, nil, fmt.Errorf("failed to marshal recruiter data: %w", err)
		}
	}
	return candidateDoc, recruiterDoc, nil
}
