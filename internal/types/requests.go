package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new user account.
type RegisterRequest struct {
	Name     string   `json:"name" validate:"required,min=1"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Kind     UserKind `json:"kind" validate:"required,oneof=candidate recruiter"`
	// Recruiter-only fields; ignored for candidates.
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the authenticated user and a signed token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// MilestoneStatusRequest toggles a milestone's completion flag. Either
// MilestoneID (preferred, stable under structural edits) or MilestoneIndex
// (legacy positional addressing) must be provided.
type MilestoneStatusRequest struct {
	MilestoneID    *uuid.UUID `json:"milestone_id,omitempty"`
	MilestoneIndex *int       `json:"milestone_index,omitempty" validate:"omitempty,min=0"`
	Completed      bool       `json:"completed"`
}

// UpdateTargetsRequest replaces a candidate's target company list.
type UpdateTargetsRequest struct {
	TargetCompanies []TargetCompany `json:"target_companies" validate:"required,dive"`
}

// CompatibilityRequest asks for a candidate-vs-requirements match score.
type CompatibilityRequest struct {
	JobRequirements *JobRequirements `json:"job_requirements" validate:"required"`
}

// AnalyzeJobDescriptionRequest asks the advisor to extract structured
// requirements from a raw job description.
type AnalyzeJobDescriptionRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MilestoneStatusRequest using the validator.
func (r *MilestoneStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateTargetsRequest using the validator.
func (r *UpdateTargetsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompatibilityRequest using the validator.
func (r *CompatibilityRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeJobDescriptionRequest using the validator.
func (r *AnalyzeJobDescriptionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
