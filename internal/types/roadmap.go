// Package types provides type definitions for structured data used throughout the career-coach system.
package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MilestoneType categorizes a roadmap milestone.
type MilestoneType string

// Milestone type constants define the recognized milestone categories.
const (
	MilestoneProject       MilestoneType = "project"
	MilestoneCertification MilestoneType = "certification"
	MilestoneCourse        MilestoneType = "course"
	MilestoneSkill         MilestoneType = "skill"
	MilestoneJob           MilestoneType = "job"
	MilestoneInternship    MilestoneType = "internship"
	MilestoneNetworking    MilestoneType = "networking"
	MilestoneEducation     MilestoneType = "education"
	MilestoneOther         MilestoneType = "other"
)

// Difficulty represents the skill level required for a milestone.
type Difficulty string

// Difficulty constants define the recognized difficulty levels.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// TimeUnit is the unit of a milestone time estimate.
type TimeUnit string

// Time unit constants define the canonical time estimate units.
const (
	UnitDays   TimeUnit = "days"
	UnitWeeks  TimeUnit = "weeks"
	UnitMonths TimeUnit = "months"
)

// ResourceType categorizes a learning resource attached to a milestone.
type ResourceType string

// Resource type constants define the recognized resource categories.
const (
	ResourceArticle       ResourceType = "article"
	ResourceVideo         ResourceType = "video"
	ResourceCourse        ResourceType = "course"
	ResourceBook          ResourceType = "book"
	ResourceDocumentation ResourceType = "documentation"
	ResourceTool          ResourceType = "tool"
	ResourceOther         ResourceType = "other"
)

// TimeEstimate is the planned duration of a milestone.
type TimeEstimate struct {
	Amount int      `json:"amount"`
	Unit   TimeUnit `json:"unit"`
}

// Resource is a learning resource (course, article, documentation) attached to a milestone.
type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// Milestone is a single actionable step in a roadmap. Milestones are embedded
// in their parent roadmap document and have no lifecycle of their own.
// The ID is assigned at normalization time so mutations can address a
// milestone by identity instead of by list position.
type Milestone struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Type           MilestoneType `json:"type"`
	Difficulty     Difficulty    `json:"difficulty"`
	TimeEstimate   TimeEstimate  `json:"time_estimate"`
	Resources      []Resource    `json:"resources"`
	Order          int           `json:"order"`
	Completed      bool          `json:"completed"`
	CompletionDate *time.Time    `json:"completion_date,omitempty"`
	Dependencies   []uuid.UUID   `json:"dependencies"`
}

// TargetCompany is a (company, position, priority) tuple a candidate is aiming for.
// Roadmap documents carry a snapshot without the priority.
type TargetCompany struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Priority int    `json:"priority,omitempty"`
}

// AlternativeMilestone is a lightweight milestone inside an alternative route.
type AlternativeMilestone struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        MilestoneType `json:"type"`
}

// AlternativeRoute is a named alternative milestone sequence. Routes are
// informational only and are never scored or mutated after creation.
type AlternativeRoute struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Milestones  []AlternativeMilestone `json:"milestones"`
}

// RoadmapInsights is the free-text reasoning bundle produced alongside a roadmap.
type RoadmapInsights struct {
	Reasoning      string   `json:"reasoning"`
	KeyInsights    []string `json:"key_insights"`
	MarketTrends   []string `json:"market_trends"`
	CompanyCulture []string `json:"company_culture"`
}

// Roadmap is the ordered plan of milestones generated for one candidate.
// It is stored as a single document; every write replaces the whole document.
// CreatedAt fixes the start of the planned timeline and is never updated
// after creation; only a full regeneration moves it.
type Roadmap struct {
	ID                      uuid.UUID          `json:"id"`
	CandidateID             uuid.UUID          `json:"candidate_id"`
	TargetCompanies         []TargetCompany    `json:"target_companies"`
	Title                   string             `json:"title"`
	Description             string             `json:"description"`
	EstimatedTimelineMonths int                `json:"estimated_timeline_months"`
	DifficultyScore         int                `json:"difficulty_score"`
	Milestones              []Milestone        `json:"milestones"`
	AlternativeRoutes       []AlternativeRoute `json:"alternative_routes"`
	Insights                RoadmapInsights    `json:"insights"`
	CreatedAt               time.Time          `json:"created_at"`
	UpdatedAt               time.Time          `json:"updated_at"`
}

// MilestoneByID returns the milestone with the given ID, or nil if absent.
func (r *Roadmap) MilestoneByID(id uuid.UUID) *Milestone {
	for i := range r.Milestones {
		if r.Milestones[i].ID == id {
			return &r.Milestones[i]
		}
	}
	return nil
}

// HasTarget reports whether the (company, position) pair is part of the
// roadmap's target snapshot. Matching is case-insensitive.
func (r *Roadmap) HasTarget(company, position string) bool {
	for _, tc := range r.TargetCompanies {
		if strings.EqualFold(tc.Company, company) && strings.EqualFold(tc.Position, position) {
			return true
		}
	}
	return false
}
