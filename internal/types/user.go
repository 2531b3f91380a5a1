package types

import (
	"time"

	"github.com/google/uuid"
)

// UserKind discriminates the two user variants sharing one collection.
type UserKind string

// User kind constants.
const (
	KindCandidate UserKind = "candidate"
	KindRecruiter UserKind = "recruiter"
)

// SkillEntry is a named skill with an optional proficiency level.
type SkillEntry struct {
	Name  string     `json:"name"`
	Level Difficulty `json:"level,omitempty"`
}

// EducationEntry is one education record on a candidate profile.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Current     bool   `json:"current,omitempty"`
}

// ExperienceEntry is one work experience record on a candidate profile.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

// ProjectEntry is one project record on a candidate profile.
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// CandidateData holds the fields only present on candidate users.
type CandidateData struct {
	Skills          []SkillEntry      `json:"skills,omitempty"`
	Education       []EducationEntry  `json:"education,omitempty"`
	Experience      []ExperienceEntry `json:"experience,omitempty"`
	Projects        []ProjectEntry    `json:"projects,omitempty"`
	TargetCompanies []TargetCompany   `json:"target_companies,omitempty"`
	ResumeID        *uuid.UUID        `json:"resume_id,omitempty"`
	RoadmapID       *uuid.UUID        `json:"roadmap_id,omitempty"`
}

// RecruiterData holds the fields only present on recruiter users.
type RecruiterData struct {
	Company  string `json:"company"`
	Position string `json:"position"`
}

// User is a tagged union over candidate and recruiter accounts. Exactly one
// of Candidate or Recruiter is non-nil, matching Kind.
type User struct {
	ID           uuid.UUID      `json:"id"`
	Kind         UserKind       `json:"kind"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Candidate    *CandidateData `json:"candidate,omitempty"`
	Recruiter    *RecruiterData `json:"recruiter,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsCandidate reports whether the user is the candidate variant.
func (u *User) IsCandidate() bool {
	return u.Kind == KindCandidate && u.Candidate != nil
}

// IsRecruiter reports whether the user is the recruiter variant.
func (u *User) IsRecruiter() bool {
	return u.Kind == KindRecruiter && u.Recruiter != nil
}
