// Package roadmap orchestrates roadmap generation and the operations that
// read and mutate stored roadmaps. Generation gathers the candidate's resume
// analysis and any recruiter-published requirements for their targets, asks
// the advisor for a roadmap, and normalizes the payload before saving. When
// the advisor is unreachable or unauthorized, a deterministic template
// roadmap is produced instead so candidates are never left without one.
package roadmap

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/daniel/career-coach/internal/advisor"
	"github.com/daniel/career-coach/internal/normalize"
	"github.com/daniel/career-coach/internal/types"
)

// Service coordinates stores and the advisor to serve roadmap operations.
type Service struct {
	users    UserStore
	resumes  ResumeStore
	roadmaps RoadmapStore
	jobs     JobRequirementStore
	advisor  Advisor
}

// NewService wires a roadmap service from its collaborators.
func NewService(users UserStore, resumes ResumeStore, roadmaps RoadmapStore, jobs JobRequirementStore, adv Advisor) *Service {
	return &Service{
		users:    users,
		resumes:  resumes,
		roadmaps: roadmaps,
		jobs:     jobs,
		advisor:  adv,
	}
}

// candidateFor loads a user and verifies they are a candidate with a parsed
// resume and at least one target. These preconditions apply to every
// generation path, including the fallback.
func (s *Service) candidateFor(ctx context.Context, candidateID uuid.UUID) (*types.User, error) {
	user, err := s.users.GetUser(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsCandidate() {
		return nil, &NotFoundError{Entity: "candidate", ID: candidateID.String()}
	}
	if user.Candidate.ResumeID == nil {
		return nil, &ValidationError{Message: "candidate has no resume on file"}
	}
	if len(user.Candidate.TargetCompanies) == 0 {
		return nil, &ValidationError{Message: "candidate has no target companies"}
	}
	return user, nil
}

// gatherRequirements looks up recruiter-published requirements for each
// target concurrently and flattens every match into one list. Lookups are
// best effort: a store error for one target only means that target
// contributes no requirements.
func (s *Service) gatherRequirements(ctx context.Context, targets []types.TargetCompany) []types.JobRequirements {
	results := make([][]types.JobRequirements, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			reqs, err := s.jobs.FindByTarget(gctx, target.Company, target.Position)
			if err != nil {
				log.Printf("Job requirements lookup failed for %s/%s: %v", target.Company, target.Position, err)
				return nil
			}
			results[i] = reqs
			return nil
		})
	}
	// Workers never return errors; Wait only orders the writes above.
	_ = g.Wait()

	var found []types.JobRequirements
	for _, matches := range results {
		found = append(found, matches...)
	}
	return found
}

// Generate builds and persists a new roadmap for the candidate. The
// candidate document is updated to point at the roadmap.
func (s *Service) Generate(ctx context.Context, candidateID uuid.UUID) (*types.Roadmap, error) {
	user, err := s.candidateFor(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	targets := user.Candidate.TargetCompanies
	reqs := s.gatherRequirements(ctx, targets)

	raw, err := s.generateRaw(ctx, candidateID, *user.Candidate.ResumeID, targets, reqs)
	if err != nil {
		return nil, err
	}

	roadmap := normalize.Roadmap(raw)
	roadmap.ID = uuid.New()
	roadmap.CandidateID = candidateID
	roadmap.TargetCompanies = targets
	now := time.Now().UTC()
	roadmap.CreatedAt = now
	roadmap.UpdatedAt = now

	if err := s.roadmaps.CreateRoadmap(ctx, &roadmap); err != nil {
		return nil, &PersistenceError{Operation: "create roadmap", Cause: err}
	}

	data := user.Candidate
	data.RoadmapID = &roadmap.ID
	if err := s.users.UpdateCandidateData(ctx, candidateID, *data); err != nil {
		return nil, &PersistenceError{Operation: "link roadmap to candidate", Cause: err}
	}

	return &roadmap, nil
}

// generateRaw asks the advisor for a roadmap payload, falling back to the
// template when the provider is unauthorized or unreachable. A malformed
// response is a hard failure: the provider answered, we just could not use
// the answer, and handing back a template would mask that.
func (s *Service) generateRaw(ctx context.Context, candidateID, resumeID uuid.UUID, targets []types.TargetCompany, reqs []types.JobRequirements) (map[string]any, error) {
	// The analysis was produced and stored when the resume was uploaded;
	// generation reads it back rather than re-analyzing on every call.
	analysis, err := s.resumes.GetResumeAnalysis(ctx, resumeID)
	if err != nil {
		return nil, &NotFoundError{Entity: "resume", ID: resumeID.String()}
	}
	if analysis == nil {
		// Analysis can be absent when the provider was down at upload time.
		analysis = &types.ResumeAnalysis{}
	}

	raw, err := s.advisor.GenerateRoadmap(ctx, analysis, targets, reqs)
	if err != nil {
		if fallbackEligible(err) {
			log.Printf("Roadmap generation unavailable for candidate %s, using template roadmap: %v", candidateID, err)
			return FallbackTemplate(targets), nil
		}
		return nil, &ExternalServiceError{Message: "roadmap generation failed", Cause: err}
	}
	return raw, nil
}

// fallbackEligible reports whether a generation failure should degrade to
// the template roadmap rather than fail the request.
func fallbackEligible(err error) bool {
	var authErr *advisor.AuthError
	var unavailErr *advisor.UnavailableError
	return errors.As(err, &authErr) || errors.As(err, &unavailErr)
}

// Regenerate replaces the candidate's existing roadmap with a freshly
// generated one. The delete and the create are separate writes, not a
// transaction: a crash in between leaves the candidate without a roadmap,
// which the next generation call repairs.
func (s *Service) Regenerate(ctx context.Context, candidateID uuid.UUID) (*types.Roadmap, error) {
	user, err := s.candidateFor(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if user.Candidate.RoadmapID != nil {
		if err := s.roadmaps.DeleteRoadmap(ctx, *user.Candidate.RoadmapID); err != nil {
			return nil, &PersistenceError{Operation: "delete roadmap", Cause: err}
		}
	}

	return s.Generate(ctx, candidateID)
}

// Get returns a roadmap by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*types.Roadmap, error) {
	r, err := s.roadmaps.GetRoadmap(ctx, id)
	if err != nil {
		return nil, &PersistenceError{Operation: "get roadmap", Cause: err}
	}
	if r == nil {
		return nil, &NotFoundError{Entity: "roadmap", ID: id.String()}
	}
	return r, nil
}

// GetByCandidate returns the candidate's current roadmap.
func (s *Service) GetByCandidate(ctx context.Context, candidateID uuid.UUID) (*types.Roadmap, error) {
	r, err := s.roadmaps.GetRoadmapByCandidate(ctx, candidateID)
	if err != nil {
		return nil, &PersistenceError{Operation: "get roadmap by candidate", Cause: err}
	}
	if r == nil {
		return nil, &NotFoundError{Entity: "roadmap for candidate", ID: candidateID.String()}
	}
	return r, nil
}

// SetMilestoneStatus marks a milestone complete or incomplete by its stable
// ID and persists the whole document. Concurrent updates to the same
// roadmap are resolved last-write-wins.
func (s *Service) SetMilestoneStatus(ctx context.Context, roadmapID, milestoneID uuid.UUID, completed bool) (*types.Roadmap, error) {
	r, err := s.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	m := r.MilestoneByID(milestoneID)
	if m == nil {
		return nil, &NotFoundError{Entity: "milestone", ID: milestoneID.String()}
	}

	applyStatus(m, completed)
	r.UpdatedAt = time.Now().UTC()

	if err := s.roadmaps.UpdateRoadmap(ctx, r); err != nil {
		return nil, &PersistenceError{Operation: "update roadmap", Cause: err}
	}
	return r, nil
}

// SetMilestoneStatusByIndex is the positional variant of SetMilestoneStatus,
// kept for clients that track milestones by list position.
func (s *Service) SetMilestoneStatusByIndex(ctx context.Context, roadmapID uuid.UUID, index int, completed bool) (*types.Roadmap, error) {
	r, err := s.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(r.Milestones) {
		return nil, &NotFoundError{Entity: "milestone", ID: "index " + strconv.Itoa(index)}
	}

	applyStatus(&r.Milestones[index], completed)
	r.UpdatedAt = time.Now().UTC()

	if err := s.roadmaps.UpdateRoadmap(ctx, r); err != nil {
		return nil, &PersistenceError{Operation: "update roadmap", Cause: err}
	}
	return r, nil
}

func applyStatus(m *types.Milestone, completed bool) {
	m.Completed = completed
	if completed {
		now := time.Now().UTC()
		m.CompletionDate = &now
	} else {
		m.CompletionDate = nil
	}
}

// TargetRecommendations asks the advisor for prioritized actions toward one
// of the roadmap's targets. The (company, position) pair must be part of the
// roadmap's target snapshot.
func (s *Service) TargetRecommendations(ctx context.Context, roadmapID uuid.UUID, company, position string) ([]string, error) {
	r, err := s.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	if !r.HasTarget(company, position) {
		return nil, &ValidationError{Message: "target company is not part of this roadmap"}
	}

	recs, err := s.advisor.TargetRecommendations(ctx, company, position)
	if err != nil {
		return nil, &ExternalServiceError{Message: "recommendations unavailable", Cause: err}
	}
	return recs, nil
}
