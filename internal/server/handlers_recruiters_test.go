package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/career-coach/internal/server/middleware"
	"github.com/daniel/career-coach/internal/types"
)

// jobsFixture is an in-memory jobRequirementsStore.
type jobsFixture struct {
	docs map[uuid.UUID]*types.JobRequirements
}

func newJobsFixture() *jobsFixture {
	return &jobsFixture{docs: make(map[uuid.UUID]*types.JobRequirements)}
}

func (f *jobsFixture) CreateJobRequirements(_ context.Context, reqs *types.JobRequirements) error {
	copied := *reqs
	f.docs[reqs.ID] = &copied
	return nil
}

func (f *jobsFixture) GetJobRequirementsByRecruiter(_ context.Context, recruiterID uuid.UUID) ([]types.JobRequirements, error) {
	var out []types.JobRequirements
	for _, doc := range f.docs {
		if doc.RecruiterID == recruiterID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (f *jobsFixture) GetJobRequirements(_ context.Context, id uuid.UUID) (*types.JobRequirements, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	copied := *doc
	return &copied, nil
}

func asRecruiter(req *http.Request, recruiterID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey(), recruiterID)
	ctx = context.WithValue(ctx, middleware.UserKindKey(), string(types.KindRecruiter))
	return req.WithContext(ctx)
}

func TestHandleCreateJobRequirements(t *testing.T) {
	s := &Server{jobs: newJobsFixture()}
	recruiterID := uuid.New()

	body, _ := json.Marshal(types.JobRequirements{
		Company:  "Acme",
		Position: "Backend Engineer",
		RequiredSkills: []types.SkillRequirement{
			{Name: "Go", Required: true},
		},
	})
	req := asRecruiter(httptest.NewRequest(http.MethodPost, "/recruiters/job-requirements", bytes.NewReader(body)), recruiterID)
	rec := httptest.NewRecorder()
	s.handleCreateJobRequirements(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created types.JobRequirements
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, recruiterID, created.RecruiterID, "ownership comes from the token, not the body")
}

func TestHandleCreateJobRequirements_MissingFields(t *testing.T) {
	s := &Server{jobs: newJobsFixture()}

	body, _ := json.Marshal(types.JobRequirements{Company: "Acme"})
	req := asRecruiter(httptest.NewRequest(http.MethodPost, "/recruiters/job-requirements", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()
	s.handleCreateJobRequirements(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListJobRequirements(t *testing.T) {
	fixture := newJobsFixture()
	s := &Server{jobs: fixture}
	recruiterID := uuid.New()

	mine := &types.JobRequirements{ID: uuid.New(), RecruiterID: recruiterID, Company: "Acme", Position: "Backend Engineer"}
	other := &types.JobRequirements{ID: uuid.New(), RecruiterID: uuid.New(), Company: "Globex", Position: "CTO"}
	require.NoError(t, fixture.CreateJobRequirements(context.Background(), mine))
	require.NoError(t, fixture.CreateJobRequirements(context.Background(), other))

	req := asRecruiter(httptest.NewRequest(http.MethodGet, "/recruiters/job-requirements", nil), recruiterID)
	rec := httptest.NewRecorder()
	s.handleListJobRequirements(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var list []types.JobRequirements
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestHandleGetJobRequirements(t *testing.T) {
	fixture := newJobsFixture()
	s := &Server{jobs: fixture}
	recruiterID := uuid.New()

	doc := &types.JobRequirements{ID: uuid.New(), RecruiterID: recruiterID, Company: "Acme", Position: "Backend Engineer"}
	require.NoError(t, fixture.CreateJobRequirements(context.Background(), doc))

	get := func(id string, asID uuid.UUID) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/recruiters/job-requirements/"+id, nil)
		req.SetPathValue("id", id)
		req = asRecruiter(req, asID)
		rec := httptest.NewRecorder()
		s.handleGetJobRequirements(rec, req)
		return rec
	}

	t.Run("owner can fetch", func(t *testing.T) {
		rec := get(doc.ID.String(), recruiterID)
		require.Equal(t, http.StatusOK, rec.Code)

		var fetched types.JobRequirements
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&fetched))
		assert.Equal(t, doc.ID, fetched.ID)
		assert.Equal(t, "Acme", fetched.Company)
	})

	t.Run("other recruiter is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, get(doc.ID.String(), uuid.New()).Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(uuid.New().String(), recruiterID).Code)
	})

	t.Run("bad id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get("nope", recruiterID).Code)
	})
}
