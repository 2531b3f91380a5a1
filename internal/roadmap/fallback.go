package roadmap

import (
	"fmt"

	"github.com/daniel/career-coach/internal/types"
)

// FallbackTemplate returns a deterministic raw roadmap payload used when the
// generative provider cannot be reached. It is shaped like a provider
// response so it flows through the same normalization as real output, and is
// parameterized only by the first target's position name.
func FallbackTemplate(targets []types.TargetCompany) map[string]any {
	position := "your target role"
	if len(targets) > 0 && targets[0].Position != "" {
		position = targets[0].Position
	}

	return map[string]any{
		"title":                     fmt.Sprintf("Career Roadmap: %s", position),
		"description":               "A starting roadmap generated from a standard template. Regenerate later for a personalized plan.",
		"estimated_timeline_months": 6,
		"difficulty_score":          5,
		"milestones": []any{
			map[string]any{
				"title":       fmt.Sprintf("Build core skills for %s", position),
				"description": fmt.Sprintf("Identify the three most demanded skills for %s roles and work through a structured course or certification for each.", position),
				"type":        "skill",
				"difficulty":  "intermediate",
				"time_estimate": map[string]any{
					"amount": 2, "unit": "months",
				},
			},
			map[string]any{
				"title":       "Complete a portfolio project",
				"description": "Apply the new skills in a project you can show in interviews. Publish the result where recruiters can find it.",
				"type":        "project",
				"difficulty":  "intermediate",
				"time_estimate": map[string]any{
					"amount": 6, "unit": "weeks",
				},
			},
			map[string]any{
				"title":       "Polish your resume",
				"description": fmt.Sprintf("Rework your resume around the %s role: lead with relevant skills and projects, quantify outcomes, and trim unrelated history.", position),
				"type":        "other",
				"difficulty":  "beginner",
				"time_estimate": map[string]any{
					"amount": 1, "unit": "weeks",
				},
			},
			map[string]any{
				"title":       "Prepare for interviews",
				"description": fmt.Sprintf("Practice common %s interview questions, rehearse walking through your portfolio project, and do at least two mock interviews.", position),
				"type":        "other",
				"difficulty":  "intermediate",
				"time_estimate": map[string]any{
					"amount": 3, "unit": "weeks",
				},
			},
		},
		"insights": map[string]any{
			"reasoning": "Template roadmap: a generic four-step plan covering core skills, proof of work, resume quality, and interview readiness.",
		},
	}
}
