package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/daniel/career-coach/internal/roadmap"
	"github.com/daniel/career-coach/internal/server/middleware"
	"github.com/daniel/career-coach/internal/types"
)

// handleGenerateRoadmap creates a roadmap for the authenticated candidate.
// An existing roadmap is left in place until the new one is persisted; the
// newest one becomes current.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.roadmaps.Generate(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, result)
}

// handleGetCurrentRoadmap returns the authenticated candidate's roadmap.
func (s *Server) handleGetCurrentRoadmap(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.roadmaps.GetByCandidate(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleMilestoneStatus toggles a milestone on the authenticated candidate's
// roadmap, addressed by stable ID or by position.
func (s *Server) handleMilestoneStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.MilestoneStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MilestoneID == nil && req.MilestoneIndex == nil {
		s.errorResponse(w, http.StatusBadRequest, "milestone_id or milestone_index is required")
		return
	}

	current, err := s.roadmaps.GetByCandidate(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var updated *types.Roadmap
	if req.MilestoneID != nil {
		updated, err = s.roadmaps.SetMilestoneStatus(r.Context(), current.ID, *req.MilestoneID, req.Completed)
	} else {
		updated, err = s.roadmaps.SetMilestoneStatusByIndex(r.Context(), current.ID, *req.MilestoneIndex, req.Completed)
	}
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// roadmapForRequest loads the roadmap addressed by the {id} path segment and
// enforces that candidates only see their own.
func (s *Server) roadmapForRequest(w http.ResponseWriter, r *http.Request) *types.Roadmap {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid roadmap ID")
		return nil
	}

	result, err := s.roadmaps.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil
	}

	kind, _ := middleware.GetUserKind(r)
	if kind == string(types.KindCandidate) {
		userID, err := middleware.GetUserID(r)
		if err != nil || result.CandidateID != userID {
			s.errorResponse(w, http.StatusForbidden, "Forbidden")
			return nil
		}
	}
	return result
}

// handleGetRoadmap returns a roadmap by ID.
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	result := s.roadmapForRequest(w, r)
	if result == nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRoadmapProgress scores a roadmap's progress.
func (s *Server) handleRoadmapProgress(w http.ResponseWriter, r *http.Request) {
	result := s.roadmapForRequest(w, r)
	if result == nil {
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap.ScoreProgress(result, time.Now().UTC()))
}

// handleRoadmapRecommendations returns recommended actions toward one of the
// roadmap's targets, named by the company and position query parameters.
func (s *Server) handleRoadmapRecommendations(w http.ResponseWriter, r *http.Request) {
	result := s.roadmapForRequest(w, r)
	if result == nil {
		return
	}

	company := r.URL.Query().Get("company")
	position := r.URL.Query().Get("position")
	if company == "" || position == "" {
		s.errorResponse(w, http.StatusBadRequest, "company and position are required")
		return
	}

	recs, err := s.roadmaps.TargetRecommendations(r.Context(), result.ID, company, position)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company":         company,
		"position":        position,
		"recommendations": recs,
	})
}
