package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/daniel/career-coach/internal/server/middleware"
	"github.com/daniel/career-coach/internal/types"
)

// handleUpdateTargets replaces the candidate's target company list. A new
// roadmap is regenerated best-effort: the target update succeeds even when
// regeneration fails, and the response notes which happened.
func (s *Server) handleUpdateTargets(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateTargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if user == nil || !user.IsCandidate() {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	data := *user.Candidate
	data.TargetCompanies = req.TargetCompanies
	if err := s.db.UpdateCandidateData(r.Context(), userID, data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update targets")
		return
	}

	response := map[string]any{
		"target_companies": req.TargetCompanies,
		"regenerated":      false,
	}

	if result, err := s.roadmaps.Regenerate(r.Context(), userID); err != nil {
		log.Printf("Roadmap regeneration after target update failed for %s: %v", userID, err)
	} else {
		response["regenerated"] = true
		response["roadmap"] = result
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleUploadResume stores a parsed resume payload for the candidate and
// links it to their profile.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(payload) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Resume payload is empty")
		return
	}

	user, err := s.db.GetUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if user == nil || !user.IsCandidate() {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	resumeID, err := s.db.SaveResumeData(r.Context(), userID, payload)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	data := *user.Candidate
	data.ResumeID = &resumeID
	if err := s.db.UpdateCandidateData(r.Context(), userID, data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to link resume")
		return
	}

	// Analysis is advisory; a provider outage does not fail the upload.
	// Whatever the provider produced is stored with the resume so later
	// roadmap generations consume it instead of re-analyzing.
	response := map[string]any{"resume_id": resumeID}
	if analysis, err := s.advisor.AnalyzeResume(r.Context(), payload); err != nil {
		log.Printf("Resume analysis unavailable for %s: %v", userID, err)
	} else if err := s.db.SaveResumeAnalysis(r.Context(), resumeID, analysis); err != nil {
		log.Printf("Failed to store resume analysis for %s: %v", userID, err)
	} else {
		response["analysis"] = analysis
	}

	s.jsonResponse(w, http.StatusCreated, response)
}
