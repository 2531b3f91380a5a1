package compat

import (
	"fmt"
	"strings"

	"github.com/daniel/career-coach/internal/types"
)

// HeuristicScore produces a rough compatibility report from skill-name
// overlap alone: the score is the percentage of required skills that appear
// (case-insensitive, substring in either direction) among the candidate's
// skills. It is used when the provider is unavailable and is marked as
// heuristic so clients can present it accordingly.
func HeuristicScore(profile types.CandidateProfile, reqs types.JobRequirements) *types.CompatibilityReport {
	report := &types.CompatibilityReport{
		Heuristic: true,
		Analysis:  "Approximate score based on skill-name overlap; a full analysis was not available.",
	}

	if len(reqs.RequiredSkills) == 0 {
		report.MatchScore = 0
		return report
	}

	matched := 0
	for _, req := range reqs.RequiredSkills {
		if hasSkill(profile.Skills, req.Name) {
			matched++
			report.MatchingStrengths = append(report.MatchingStrengths, req.Name)
		} else {
			report.Gaps = append(report.Gaps, req.Name)
			report.Recommendations = append(report.Recommendations,
				fmt.Sprintf("Develop %s to meet a required skill for %s.", req.Name, reqs.Position))
		}
	}

	report.MatchScore = 100 * matched / len(reqs.RequiredSkills)
	return report
}

func hasSkill(skills []types.SkillEntry, name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return false
	}
	for _, s := range skills {
		have := strings.ToLower(strings.TrimSpace(s.Name))
		if have == "" {
			continue
		}
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return true
		}
	}
	return false
}
