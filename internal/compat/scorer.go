// Package compat scores a candidate profile against recruiter job
// requirements. The real score comes from the generative provider; the
// package also offers a local heuristic for callers that prefer a rough
// score over surfacing a provider outage to the end user.
package compat

import (
	"context"
	"fmt"

	"github.com/daniel/career-coach/internal/types"
)

// Advisor is the slice of the generative boundary the scorer needs.
type Advisor interface {
	ScoreCandidate(ctx context.Context, profile types.CandidateProfile, reqs types.JobRequirements) (*types.CompatibilityReport, error)
}

// ExternalServiceError indicates the provider call failed. The scorer never
// retries; the caller decides between the heuristic and surfacing the error.
type ExternalServiceError struct {
	Cause error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("compatibility scoring failed: %v", e.Cause)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}

// Scorer produces compatibility reports.
type Scorer struct {
	advisor Advisor
}

// NewScorer creates a Scorer over the given advisor.
func NewScorer(adv Advisor) *Scorer {
	return &Scorer{advisor: adv}
}

// Score delegates to the provider. Any failure, including a malformed
// response, propagates as an ExternalServiceError without a retry.
func (s *Scorer) Score(ctx context.Context, profile types.CandidateProfile, reqs types.JobRequirements) (*types.CompatibilityReport, error) {
	report, err := s.advisor.ScoreCandidate(ctx, profile, reqs)
	if err != nil {
		return nil, &ExternalServiceError{Cause: err}
	}
	return report, nil
}
