package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/career-coach/internal/config"
	"github.com/daniel/career-coach/internal/types"
)

type fakeUserStore struct {
	byID    map[uuid.UUID]*types.User
	byEmail map[string]*types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[uuid.UUID]*types.User),
		byEmail: make(map[string]*types.User),
	}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *types.User) error {
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	return nil
}

func (s *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*types.User, error) {
	return s.byID[id], nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	return s.byEmail[email], nil
}

func (s *fakeUserStore) UpdateCandidateData(_ context.Context, id uuid.UUID, data types.CandidateData) error {
	s.byID[id].Candidate = &data
	return nil
}

func testUserService(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore()
	// Minimum cost keeps bcrypt fast in tests.
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestRegister_Candidate(t *testing.T) {
	svc, store := testUserService(t)

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "longenough",
		Kind:     types.KindCandidate,
	})

	require.NoError(t, err)
	assert.Equal(t, types.KindCandidate, user.Kind)
	require.NotNil(t, user.Candidate)
	assert.Nil(t, user.Recruiter)
	assert.Empty(t, user.PasswordHash, "hash never leaves the service")

	// The stored record keeps the hash, and not the plaintext.
	stored := store.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "longenough", stored.PasswordHash)
}

func TestRegister_Recruiter(t *testing.T) {
	svc, _ := testUserService(t)

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name:     "Rex",
		Email:    "rex@example.com",
		Password: "longenough",
		Kind:     types.KindRecruiter,
		Company:  "Acme",
		Position: "Technical Recruiter",
	})

	require.NoError(t, err)
	require.NotNil(t, user.Recruiter)
	assert.Nil(t, user.Candidate)
	assert.Equal(t, "Acme", user.Recruiter.Company)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := testUserService(t)

	req := &types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "longenough", Kind: types.KindCandidate,
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	var exists *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "ada@example.com", exists.Email)
}

func TestRegister_UnknownKind(t *testing.T) {
	svc, _ := testUserService(t)

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name: "Eve", Email: "eve@example.com", Password: "longenough", Kind: "admin",
	})

	var validation *ErrValidation
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "kind", validation.Field)
}

func TestLogin(t *testing.T) {
	svc, _ := testUserService(t)

	_, err := svc.Register(context.Background(), &types.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "longenough", Kind: types.KindCandidate,
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(context.Background(), &types.LoginRequest{
			Email: "ada@example.com", Password: "longenough",
		})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &types.LoginRequest{
			Email: "ada@example.com", Password: "wrong-password",
		})
		var invalid *ErrInvalidCredentials
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &types.LoginRequest{
			Email: "nobody@example.com", Password: "longenough",
		})
		var invalid *ErrInvalidCredentials
		require.ErrorAs(t, err, &invalid)
	})
}
