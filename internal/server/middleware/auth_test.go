package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	userID uuid.UUID
	kind   string
}

func (f fakeIdentity) GetUserID() uuid.UUID { return f.userID }
func (f fakeIdentity) GetKind() string      { return f.kind }

type fakeValidator struct {
	identity IdentityGetter
	err      error
	lastTok  string
}

func (f *fakeValidator) ValidateToken(tokenString string) (IdentityGetter, error) {
	f.lastTok = tokenString
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func TestAuth(t *testing.T) {
	userID := uuid.New()
	validator := &fakeValidator{identity: fakeIdentity{userID: userID, kind: "candidate"}}

	var gotID uuid.UUID
	var gotKind string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		gotID, err = GetUserID(r)
		require.NoError(t, err)
		gotKind, err = GetUserKind(r)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth(validator)(next)

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "candidate", gotKind)
		assert.Equal(t, "some-token", validator.lastTok)
	})

	t.Run("prefix is case insensitive", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer some-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	rejections := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no token", header: "Bearer"},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "extra parts", header: "Bearer one two"},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	t.Run("validator rejects token", func(t *testing.T) {
		rejecting := Auth(&fakeValidator{err: errors.New("expired")})(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		rejecting.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireKind(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireKind("recruiter")(next)

	withKind := func(kind string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), UserKindKey(), kind)
		return req.WithContext(ctx)
	}

	t.Run("matching kind passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withKind("recruiter"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong kind is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, withKind("candidate"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated request is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)

	_, err = GetUserKind(req)
	assert.Error(t, err)
}
