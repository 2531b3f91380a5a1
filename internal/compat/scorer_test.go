package compat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/career-coach/internal/advisor"
	"github.com/daniel/career-coach/internal/types"
)

type stubAdvisor struct {
	report *types.CompatibilityReport
	err    error
	calls  int
}

func (s *stubAdvisor) ScoreCandidate(_ context.Context, _ types.CandidateProfile, _ types.JobRequirements) (*types.CompatibilityReport, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func TestScorer_Success(t *testing.T) {
	adv := &stubAdvisor{report: &types.CompatibilityReport{MatchScore: 85, Analysis: "solid fit"}}
	scorer := NewScorer(adv)

	report, err := scorer.Score(context.Background(), types.CandidateProfile{}, types.JobRequirements{})

	require.NoError(t, err)
	assert.Equal(t, 85, report.MatchScore)
	assert.False(t, report.Heuristic)
	assert.Equal(t, 1, adv.calls)
}

func TestScorer_WrapsFailuresWithoutRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unavailable", err: &advisor.UnavailableError{Cause: errors.New("timeout")}},
		{name: "auth", err: &advisor.AuthError{}},
		{name: "malformed", err: &advisor.MalformedResponseError{Message: "not JSON"}},
		{name: "plain", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := &stubAdvisor{err: tt.err}
			scorer := NewScorer(adv)

			_, err := scorer.Score(context.Background(), types.CandidateProfile{}, types.JobRequirements{})

			var external *ExternalServiceError
			require.ErrorAs(t, err, &external)
			assert.ErrorIs(t, err, tt.err, "original cause stays reachable")
			assert.Equal(t, 1, adv.calls, "a failed call is not retried")
		})
	}
}
