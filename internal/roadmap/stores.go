package roadmap

import (
	"context"

	"github.com/google/uuid"

	"github.com/daniel/career-coach/internal/types"
)

// UserStore provides access to user records. Candidate profile data rides on
// the user document.
type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
	UpdateCandidateData(ctx context.Context, id uuid.UUID, data types.CandidateData) error
}

// ResumeStore provides the analysis stored alongside a resume at upload
// time. A nil analysis without error means the resume exists but was never
// analyzed.
type ResumeStore interface {
	GetResumeAnalysis(ctx context.Context, id uuid.UUID) (*types.ResumeAnalysis, error)
}

// RoadmapStore persists roadmap documents. Updates replace the whole
// document; the last write wins.
type RoadmapStore interface {
	CreateRoadmap(ctx context.Context, r *types.Roadmap) error
	GetRoadmap(ctx context.Context, id uuid.UUID) (*types.Roadmap, error)
	GetRoadmapByCandidate(ctx context.Context, candidateID uuid.UUID) (*types.Roadmap, error)
	UpdateRoadmap(ctx context.Context, r *types.Roadmap) error
	DeleteRoadmap(ctx context.Context, id uuid.UUID) error
}

// JobRequirementStore provides recruiter-published job requirements.
// FindByTarget matches company and position case-insensitively and by
// substring, returning every match and an empty slice when there are none.
type JobRequirementStore interface {
	CreateJobRequirements(ctx context.Context, reqs *types.JobRequirements) error
	GetJobRequirementsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]types.JobRequirements, error)
	FindByTarget(ctx context.Context, company, position string) ([]types.JobRequirements, error)
}

// Advisor is the slice of the generative boundary the roadmap service needs.
type Advisor interface {
	GenerateRoadmap(ctx context.Context, analysis *types.ResumeAnalysis, targets []types.TargetCompany, reqs []types.JobRequirements) (map[string]any, error)
	TargetRecommendations(ctx context.Context, company, position string) ([]string, error)
}
