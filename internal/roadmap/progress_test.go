package roadmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daniel/career-coach/internal/types"
)

func testMilestone(typ types.MilestoneType, completed bool) types.Milestone {
	return types.Milestone{Type: typ, Completed: completed}
}

func TestScoreProgress_EmptyRoadmap(t *testing.T) {
	r := &types.Roadmap{
		CreatedAt:               time.Now().UTC(),
		EstimatedTimelineMonths: 6,
	}

	report := ScoreProgress(r, time.Now().UTC())

	assert.Equal(t, 0, report.CompletionPercentage)
	assert.Equal(t, 0, report.SkillImprovementScore)
	assert.Equal(t, 0, report.TotalMilestones)
	assert.Equal(t, 0, report.CompletedMilestones)
}

func TestScoreProgress_HalfwayOnTrack(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -3, 0) // 3 months into a 6-month plan

	r := &types.Roadmap{
		CreatedAt:               created,
		EstimatedTimelineMonths: 6,
		Milestones: []types.Milestone{
			testMilestone(types.MilestoneSkill, true),
			testMilestone(types.MilestoneProject, true),
			testMilestone(types.MilestoneSkill, false),
			testMilestone(types.MilestoneNetworking, false),
		},
	}

	report := ScoreProgress(r, now)

	assert.Equal(t, 50, report.CompletionPercentage)
	assert.InDelta(t, 50, report.TimeProgress, 2)
	assert.True(t, report.IsOnTrack)
	assert.Equal(t, 2, report.CompletedMilestones)
	assert.Equal(t, 4, report.TotalMilestones)
}

func TestScoreProgress_BehindSchedule(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -5, 0) // 5 months into a 6-month plan

	r := &types.Roadmap{
		CreatedAt:               created,
		EstimatedTimelineMonths: 6,
		Milestones: []types.Milestone{
			testMilestone(types.MilestoneSkill, true),
			testMilestone(types.MilestoneProject, false),
			testMilestone(types.MilestoneCourse, false),
			testMilestone(types.MilestoneNetworking, false),
		},
	}

	report := ScoreProgress(r, now)

	assert.Equal(t, 25, report.CompletionPercentage)
	assert.Greater(t, report.TimeProgress, 25)
	assert.False(t, report.IsOnTrack)
}

func TestScoreProgress_TimeProgressClamped(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	// Plan ended two years ago.
	overdue := &types.Roadmap{
		CreatedAt:               now.AddDate(-3, 0, 0),
		EstimatedTimelineMonths: 12,
	}
	report := ScoreProgress(overdue, now)
	assert.Equal(t, 100, report.TimeProgress)
	assert.Equal(t, 0, report.RemainingTime.Days)
	assert.Equal(t, 0, report.RemainingTime.Months)

	// Clock skew: roadmap created "in the future".
	future := &types.Roadmap{
		CreatedAt:               now.AddDate(0, 1, 0),
		EstimatedTimelineMonths: 6,
	}
	report = ScoreProgress(future, now)
	assert.Equal(t, 0, report.TimeProgress)
}

func TestScoreProgress_RemainingTime(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -3, 0)

	r := &types.Roadmap{
		CreatedAt:               created,
		EstimatedTimelineMonths: 6,
	}

	report := ScoreProgress(r, now)

	// Three months left: roughly 92 days, which rounds up to 4 blocks of 30.
	assert.InDelta(t, 92, report.RemainingTime.Days, 2)
	assert.Equal(t, (report.RemainingTime.Days+29)/30, report.RemainingTime.Months)
}

func TestScoreProgress_SkillImprovementScore(t *testing.T) {
	r := &types.Roadmap{
		CreatedAt:               time.Now().UTC(),
		EstimatedTimelineMonths: 6,
		Milestones: []types.Milestone{
			testMilestone(types.MilestoneSkill, true),
			testMilestone(types.MilestoneCourse, true),
			testMilestone(types.MilestoneCertification, false),
			// Non-skill milestones do not count toward the sub-score.
			testMilestone(types.MilestoneProject, true),
			testMilestone(types.MilestoneNetworking, false),
		},
	}

	report := ScoreProgress(r, time.Now().UTC())

	assert.Equal(t, 67, report.SkillImprovementScore)
	assert.Equal(t, 60, report.CompletionPercentage)
}

func TestScoreProgress_NoSkillMilestones(t *testing.T) {
	r := &types.Roadmap{
		CreatedAt:               time.Now().UTC(),
		EstimatedTimelineMonths: 6,
		Milestones: []types.Milestone{
			testMilestone(types.MilestoneProject, true),
		},
	}

	report := ScoreProgress(r, time.Now().UTC())

	assert.Equal(t, 0, report.SkillImprovementScore)
	assert.Equal(t, 100, report.CompletionPercentage)
}
