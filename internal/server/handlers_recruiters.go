package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/daniel/career-coach/internal/compat"
	"github.com/daniel/career-coach/internal/server/middleware"
	"github.com/daniel/career-coach/internal/types"
)

// jobRequirementsStore is the slice of the database the recruiter
// requirement handlers need.
type jobRequirementsStore interface {
	CreateJobRequirements(ctx context.Context, reqs *types.JobRequirements) error
	GetJobRequirementsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]types.JobRequirements, error)
	GetJobRequirements(ctx context.Context, id uuid.UUID) (*types.JobRequirements, error)
}

// handleCreateJobRequirements publishes a job-requirements document for the
// authenticated recruiter.
func (s *Server) handleCreateJobRequirements(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var reqs types.JobRequirements
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if reqs.Company == "" || reqs.Position == "" {
		s.errorResponse(w, http.StatusBadRequest, "company and position are required")
		return
	}

	reqs.ID = uuid.New()
	reqs.RecruiterID = recruiterID

	if err := s.jobs.CreateJobRequirements(r.Context(), &reqs); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save job requirements")
		return
	}

	s.jsonResponse(w, http.StatusCreated, reqs)
}

// handleListJobRequirements lists the recruiter's published requirements.
func (s *Server) handleListJobRequirements(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := s.jobs.GetJobRequirementsByRecruiter(r.Context(), recruiterID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list job requirements")
		return
	}
	if list == nil {
		list = []types.JobRequirements{}
	}

	s.jsonResponse(w, http.StatusOK, list)
}

// handleGetJobRequirements returns one of the recruiter's published
// documents by ID.
func (s *Server) handleGetJobRequirements(w http.ResponseWriter, r *http.Request) {
	recruiterID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job requirements ID")
		return
	}

	reqs, err := s.jobs.GetJobRequirements(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job requirements")
		return
	}
	if reqs == nil {
		s.errorResponse(w, http.StatusNotFound, "Job requirements not found")
		return
	}
	if reqs.RecruiterID != recruiterID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return
	}

	s.jsonResponse(w, http.StatusOK, reqs)
}

// handleAnalyzeJobDescription extracts structured requirements from a raw
// job description. The result is returned, not stored; the recruiter reviews
// and publishes it separately.
func (s *Server) handleAnalyzeJobDescription(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeJobDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	reqs, err := s.advisor.AnalyzeJobDescription(r.Context(), req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Job description analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, reqs)
}

// handleCompatibility scores a candidate against the supplied job
// requirements. When the provider is unavailable the heuristic skill-overlap
// score is returned instead of an error.
func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req types.CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	profile, err := s.candidateProfile(r, candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.scorer.Score(r.Context(), *profile, *req.JobRequirements)
	if err != nil {
		var extErr *compat.ExternalServiceError
		if errors.As(err, &extErr) {
			log.Printf("Compatibility scoring degraded to heuristic for %s: %v", candidateID, err)
			report = compat.HeuristicScore(*profile, *req.JobRequirements)
		} else {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// candidateProfile assembles the scoring bundle for a candidate: profile
// fields, the parsed resume, and roadmap milestones when present.
func (s *Server) candidateProfile(r *http.Request, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	user, err := s.db.GetUser(r.Context(), candidateID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsCandidate() {
		return nil, &ErrValidation{Field: "candidateId", Message: "not a known candidate"}
	}

	profile := &types.CandidateProfile{
		Skills:     user.Candidate.Skills,
		Experience: user.Candidate.Experience,
		Education:  user.Candidate.Education,
		Projects:   user.Candidate.Projects,
	}

	if user.Candidate.ResumeID != nil {
		if resume, err := s.db.GetResumeData(r.Context(), *user.Candidate.ResumeID); err == nil {
			profile.Resume = resume
		}
	}

	if current, err := s.db.GetRoadmapByCandidate(r.Context(), candidateID); err == nil && current != nil {
		profile.Milestones = current.Milestones
		for _, m := range current.Milestones {
			if m.Completed {
				profile.CompletedMilestones = append(profile.CompletedMilestones, m)
			}
		}
	}

	return profile, nil
}
