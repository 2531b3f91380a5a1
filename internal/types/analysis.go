package types

// ResumeAnalysis is the advisor's assessment of a parsed resume. The
// resume-parsing collaborator owns the upstream payload; this is the
// structured view the roadmap pipeline consumes.
type ResumeAnalysis struct {
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	PotentialRoles    []string `json:"potential_roles"`
	Recommendations   []string `json:"recommendations"`
	KeySkills         []string `json:"key_skills"`
	SkillGaps         []string `json:"skill_gaps"`
	OverallAssessment string   `json:"overall_assessment"`
}
