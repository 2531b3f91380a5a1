package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daniel/career-coach/internal/config"
	"github.com/daniel/career-coach/internal/types"
)

// UserStore is the slice of storage the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *types.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateCandidateData(ctx context.Context, id uuid.UUID, data types.CandidateData) error
}

// UserService provides business logic for account registration and login.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// sanitize strips the password hash before a user leaves the service.
func sanitize(user *types.User) *types.User {
	if user == nil {
		return nil
	}
	out := *user
	out.PasswordHash = ""
	return &out
}

// Register creates a new candidate or recruiter account.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		ID:           uuid.New(),
		Kind:         req.Kind,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	switch req.Kind {
	case types.KindCandidate:
		user.Candidate = &types.CandidateData{}
	case types.KindRecruiter:
		user.Recruiter = &types.RecruiterData{
			Company:  req.Company,
			Position: req.Position,
		}
	default:
		return nil, &ErrValidation{Field: "kind", Message: "must be candidate or recruiter"}
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return sanitize(user), nil
}

// Login authenticates a user and returns the account.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Same error whether the account is missing or the password is wrong.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return sanitize(user), nil
}
