package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniel/career-coach/internal/types"
)

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.Roadmap{
		Title:                   "Backend Engineer Track",
		EstimatedTimelineMonths: 6,
		DifficultyScore:         5,
		TargetCompanies: []types.TargetCompany{
			{Company: "Acme", Position: "Backend Engineer"},
		},
		Milestones: []types.Milestone{
			{Title: "Learn Go", Type: types.MilestoneSkill, Completed: true,
				TimeEstimate: types.TimeEstimate{Amount: 2, Unit: "months"}},
			{Title: "Ship a service", Type: types.MilestoneProject,
				TimeEstimate: types.TimeEstimate{Amount: 6, Unit: "weeks"}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "CAREER ROADMAP")
	assert.Contains(t, out, "Backend Engineer Track")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "[✓] Learn Go")
	assert.Contains(t, out, "[ ] Ship a service")
}

func TestPrintRoadmap_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoadmap(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRoadmap_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	milestones := make([]types.Milestone, 8)
	for i := range milestones {
		milestones[i] = types.Milestone{Title: "Milestone"}
	}
	p.PrintRoadmap(&types.Roadmap{Milestones: milestones})

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProgress(types.ProgressReport{
		TotalMilestones:      4,
		CompletedMilestones:  2,
		CompletionPercentage: 50,
		TimeProgress:         40,
		IsOnTrack:            true,
		RemainingTime:        types.RemainingTime{Days: 92, Months: 4},
	})

	out := buf.String()
	assert.Contains(t, out, "PROGRESS REPORT")
	assert.Contains(t, out, "2 of 4 milestones (50%)")
	assert.Contains(t, out, "on track")
	assert.Contains(t, out, "92 days")
}

func TestPrintProgress_BehindSchedule(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgress(types.ProgressReport{IsOnTrack: false})
	assert.Contains(t, buf.String(), "behind schedule")
}

func TestPrintCompatibility(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompatibility(&types.CompatibilityReport{
		MatchScore:        67,
		MatchingStrengths: []string{"Go", "PostgreSQL"},
		Gaps:              []string{"Kubernetes"},
		Heuristic:         true,
	})

	out := buf.String()
	assert.Contains(t, out, "COMPATIBILITY REPORT")
	assert.Contains(t, out, "67/100 (heuristic)")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Kubernetes")
}

func TestPrintCompatibility_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCompatibility(nil)
	assert.Empty(t, buf.String())
}
