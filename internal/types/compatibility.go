package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillRequirement is one skill a job posting asks for.
type SkillRequirement struct {
	Name     string     `json:"name"`
	Level    Difficulty `json:"level,omitempty"`
	Required bool       `json:"required"`
}

// ExperienceRange is the required years of experience for a position.
type ExperienceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// EducationRequirement is one education requirement of a job posting.
type EducationRequirement struct {
	Degree   string `json:"degree"`
	Field    string `json:"field"`
	Required bool   `json:"required"`
}

// JobRequirements is a recruiter's structured description of what a position
// needs. Recruiters create these directly or extract them from a raw job
// description via the advisor.
type JobRequirements struct {
	ID                    uuid.UUID              `json:"id"`
	RecruiterID           uuid.UUID              `json:"recruiter_id"`
	Company               string                 `json:"company"`
	Position              string                 `json:"position"`
	RequiredSkills        []SkillRequirement     `json:"required_skills"`
	PreferredSkills       []SkillRequirement     `json:"preferred_skills,omitempty"`
	ExperienceRequired    ExperienceRange        `json:"experience_required"`
	EducationRequirements []EducationRequirement `json:"education_requirements,omitempty"`
	Responsibilities      []string               `json:"responsibilities,omitempty"`
	CompanyCulture        []string               `json:"company_culture,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
}

// TimeToClose estimates how long a candidate needs to close their skill gaps.
type TimeToClose struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// CompatibilityReport is the result of scoring a candidate against a
// job-requirements structure.
type CompatibilityReport struct {
	MatchScore           int         `json:"match_score"`
	MatchingStrengths    []string    `json:"matching_strengths"`
	Gaps                 []string    `json:"gaps"`
	Recommendations      []string    `json:"recommendations,omitempty"`
	EstimatedTimeToClose TimeToClose `json:"estimated_time_to_close,omitempty"`
	Analysis             string      `json:"analysis"`
	// Heuristic is set when the report was produced by the local fallback
	// scorer instead of the advisor.
	Heuristic bool `json:"heuristic,omitempty"`
}

// CandidateProfile is the bundle handed to the compatibility scorer. The
// resume payload is whatever the resume-parsing collaborator produced; its
// schema is not enforced here.
type CandidateProfile struct {
	Skills              []SkillEntry      `json:"skills"`
	Experience          []ExperienceEntry `json:"experience,omitempty"`
	Education           []EducationEntry  `json:"education,omitempty"`
	Projects            []ProjectEntry    `json:"projects,omitempty"`
	Resume              map[string]any    `json:"resume,omitempty"`
	Milestones          []Milestone       `json:"milestones,omitempty"`
	CompletedMilestones []Milestone       `json:"completed_milestones,omitempty"`
}
