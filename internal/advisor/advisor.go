// Package advisor is the boundary to the external generative capability. It
// builds prompts from structured inputs, invokes the llm client, and converts
// responses and failures into forms the rest of the system can act on:
// payloads stay untrusted (the roadmap pipeline normalizes them), and
// failures are classified as auth, unavailable, or malformed so callers can
// decide between fallback and hard failure.
package advisor

import (
	"context"
	"encoding/json"
	"math"

	"github.com/daniel/career-coach/internal/llm"
	"github.com/daniel/career-coach/internal/prompts"
	"github.com/daniel/career-coach/internal/types"
)

// Advisor wraps an llm client with the career-coach prompt set.
type Advisor struct {
	client llm.Client
}

// New creates an Advisor backed by the given client.
func New(client llm.Client) *Advisor {
	return &Advisor{client: client}
}

// classify converts a transport error into the advisor error taxonomy.
func classify(err error) error {
	if llm.IsAuthError(err) {
		return &AuthError{Cause: err}
	}
	return &UnavailableError{Cause: err}
}

// GenerateRoadmap asks the provider for a career roadmap. The returned map is
// the decoded, still-untrusted payload; callers must normalize it before any
// further use.
func (a *Advisor) GenerateRoadmap(ctx context.Context, analysis *types.ResumeAnalysis, targets []types.TargetCompany, reqs []types.JobRequirements) (map[string]any, error) {
	analysisJSON, _ := json.Marshal(analysis)
	targetsJSON, _ := json.Marshal(targets)

	reqSection := ""
	if len(reqs) > 0 {
		reqsJSON, _ := json.Marshal(reqs)
		reqSection = prompts.Format(prompts.MustGet("roadmap.json", "job-requirements-section"), map[string]string{
			"JobRequirements": string(reqsJSON),
		})
	}

	prompt := prompts.Format(prompts.MustGet("roadmap.json", "generate-roadmap"), map[string]string{
		"ResumeAnalysis":         string(analysisJSON),
		"TargetCompanies":        string(targetsJSON),
		"JobRequirementsSection": reqSection,
	})

	text, err := a.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, classify(err)
	}

	if err := checkShape(roadmapResponseSchema, text); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &MalformedResponseError{Message: "failed to decode roadmap payload", Cause: err}
	}
	return raw, nil
}

// scoreResponse mirrors the provider's compatibility payload with lenient
// numeric types; models return floats where we store ints.
type scoreResponse struct {
	MatchScore           float64  `json:"match_score"`
	MatchingStrengths    []string `json:"matching_strengths"`
	Gaps                 []string `json:"gaps"`
	Recommendations      []string `json:"recommendations"`
	EstimatedTimeToClose struct {
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	} `json:"estimated_time_to_close"`
	Analysis string `json:"analysis"`
}

// ScoreCandidate compares a candidate profile against job requirements and
// returns a match report. No retries: a failed call surfaces as a classified
// error and fallback scoring is the caller's decision.
func (a *Advisor) ScoreCandidate(ctx context.Context, profile types.CandidateProfile, reqs types.JobRequirements) (*types.CompatibilityReport, error) {
	profileJSON, _ := json.Marshal(profile)
	reqsJSON, _ := json.Marshal(reqs)

	prompt := prompts.Format(prompts.MustGet("scoring.json", "score-candidate"), map[string]string{
		"CandidateProfile": string(profileJSON),
		"JobRequirements":  string(reqsJSON),
	})

	text, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, classify(err)
	}

	if err := checkShape(compatibilityResponseSchema, text); err != nil {
		return nil, err
	}

	var resp scoreResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, &MalformedResponseError{Message: "failed to decode compatibility payload", Cause: err}
	}

	report := &types.CompatibilityReport{
		MatchScore:        clampScore(int(math.Round(resp.MatchScore))),
		MatchingStrengths: resp.MatchingStrengths,
		Gaps:              resp.Gaps,
		Recommendations:   resp.Recommendations,
		EstimatedTimeToClose: types.TimeToClose{
			Amount: int(math.Round(resp.EstimatedTimeToClose.Amount)),
			Unit:   resp.EstimatedTimeToClose.Unit,
		},
		Analysis: resp.Analysis,
	}
	return report, nil
}

// AnalyzeResume runs the talent-evaluation prompt over a parsed resume
// payload. The payload schema is owned by the resume-parsing collaborator
// and passed through as-is.
func (a *Advisor) AnalyzeResume(ctx context.Context, resumeData map[string]any) (*types.ResumeAnalysis, error) {
	dataJSON, _ := json.Marshal(resumeData)

	prompt := prompts.Format(prompts.MustGet("analysis.json", "analyze-resume"), map[string]string{
		"ResumeData": string(dataJSON),
	})

	text, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, classify(err)
	}

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, &MalformedResponseError{Message: "failed to decode resume analysis", Cause: err}
	}
	return &analysis, nil
}

// requirementsResponse mirrors the extraction payload with lenient numerics.
type requirementsResponse struct {
	RequiredSkills  []types.SkillRequirement `json:"required_skills"`
	PreferredSkills []types.SkillRequirement `json:"preferred_skills"`
	ExperienceRequired struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"experience_required"`
	EducationRequirements []types.EducationRequirement `json:"education_requirements"`
	Responsibilities      []string                     `json:"responsibilities"`
	CompanyCulture        []string                     `json:"company_culture"`
}

// AnalyzeJobDescription extracts structured requirements from a raw job
// posting for recruiters.
func (a *Advisor) AnalyzeJobDescription(ctx context.Context, jobDescription string) (*types.JobRequirements, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobRequirementsSchema(), jobDescription)

	text, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, classify(err)
	}

	var resp requirementsResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, &MalformedResponseError{Message: "failed to decode job requirements", Cause: err}
	}

	return &types.JobRequirements{
		RequiredSkills:  resp.RequiredSkills,
		PreferredSkills: resp.PreferredSkills,
		ExperienceRequired: types.ExperienceRange{
			Min: int(resp.ExperienceRequired.Min),
			Max: int(resp.ExperienceRequired.Max),
		},
		EducationRequirements: resp.EducationRequirements,
		Responsibilities:      resp.Responsibilities,
		CompanyCulture:        resp.CompanyCulture,
	}, nil
}

// TargetRecommendations asks for prioritized actions for one target
// (company, position) pair.
func (a *Advisor) TargetRecommendations(ctx context.Context, company, position string) ([]string, error) {
	prompt := prompts.Format(prompts.MustGet("roadmap.json", "target-recommendations"), map[string]string{
		"Company":  company,
		"Position": position,
	})

	text, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, classify(err)
	}

	if err := checkShape(recommendationsResponseSchema, text); err != nil {
		return nil, err
	}

	var resp struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, &MalformedResponseError{Message: "failed to decode recommendations", Cause: err}
	}
	return resp.Recommendations, nil
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
