package roadmap

import (
	"math"
	"time"

	"github.com/daniel/career-coach/internal/types"
)

// skillTypes are the milestone types that count toward the skill
// improvement sub-score.
var skillTypes = map[types.MilestoneType]bool{
	types.MilestoneSkill:         true,
	types.MilestoneCourse:        true,
	types.MilestoneCertification: true,
}

// ScoreProgress derives a progress report from a roadmap snapshot at the
// given instant. It is a pure function: an empty milestone list scores zero
// on every metric instead of failing.
func ScoreProgress(r *types.Roadmap, now time.Time) types.ProgressReport {
	total := len(r.Milestones)
	completed := 0
	skillTotal := 0
	skillCompleted := 0
	for _, m := range r.Milestones {
		if m.Completed {
			completed++
		}
		if skillTypes[m.Type] {
			skillTotal++
			if m.Completed {
				skillCompleted++
			}
		}
	}

	report := types.ProgressReport{
		CompletedMilestones: completed,
		TotalMilestones:     total,
	}
	if total > 0 {
		report.CompletionPercentage = int(math.Round(100 * float64(completed) / float64(total)))
	}
	if skillTotal > 0 {
		report.SkillImprovementScore = int(math.Round(100 * float64(skillCompleted) / float64(skillTotal)))
	}

	targetEnd := r.CreatedAt.AddDate(0, r.EstimatedTimelineMonths, 0)
	planned := targetEnd.Sub(r.CreatedAt)
	if planned > 0 {
		elapsed := now.Sub(r.CreatedAt)
		report.TimeProgress = clampPercent(int(math.Round(100 * elapsed.Seconds() / planned.Seconds())))
	}

	report.IsOnTrack = report.CompletionPercentage >= report.TimeProgress

	if remaining := targetEnd.Sub(now); remaining > 0 {
		days := int(math.Ceil(remaining.Hours() / 24))
		report.RemainingTime = types.RemainingTime{
			Days:   days,
			Months: (days + 29) / 30,
		}
	}

	return report
}

func clampPercent(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
