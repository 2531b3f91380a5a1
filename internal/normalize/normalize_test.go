package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/career-coach/internal/types"
)

func TestRoadmap_NilInput(t *testing.T) {
	r := Roadmap(nil)

	assert.Equal(t, "Career Development Roadmap", r.Title)
	assert.Equal(t, 6, r.EstimatedTimelineMonths)
	assert.Equal(t, 5, r.DifficultyScore)
	assert.NotNil(t, r.Milestones)
	assert.Empty(t, r.Milestones)
	assert.NotNil(t, r.AlternativeRoutes)
}

func TestRoadmap_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		check func(t *testing.T, r types.Roadmap)
	}{
		{
			name: "blank title falls back",
			raw:  map[string]any{"title": "   "},
			check: func(t *testing.T, r types.Roadmap) {
				assert.Equal(t, "Career Development Roadmap", r.Title)
			},
		},
		{
			name: "zero timeline falls back",
			raw:  map[string]any{"estimated_timeline_months": float64(0)},
			check: func(t *testing.T, r types.Roadmap) {
				assert.Equal(t, 6, r.EstimatedTimelineMonths)
			},
		},
		{
			name: "difficulty clamped to range",
			raw:  map[string]any{"difficulty_score": float64(42)},
			check: func(t *testing.T, r types.Roadmap) {
				assert.Equal(t, 10, r.DifficultyScore)
			},
		},
		{
			name: "difficulty clamped from below",
			raw:  map[string]any{"difficulty_score": float64(-3)},
			check: func(t *testing.T, r types.Roadmap) {
				assert.Equal(t, 1, r.DifficultyScore)
			},
		},
		{
			name: "camelCase keys accepted",
			raw:  map[string]any{"estimatedTimelineMonths": float64(9)},
			check: func(t *testing.T, r types.Roadmap) {
				assert.Equal(t, 9, r.EstimatedTimelineMonths)
			},
		},
		{
			name: "milestones of wrong type ignored",
			raw:  map[string]any{"milestones": "not a list"},
			check: func(t *testing.T, r types.Roadmap) {
				assert.Empty(t, r.Milestones)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Roadmap(tt.raw))
		})
	}
}

func TestRoadmap_MilestoneDefaults(t *testing.T) {
	r := Roadmap(map[string]any{
		"milestones": []any{
			map[string]any{},
			nil,
		},
	})

	require.Len(t, r.Milestones, 2)

	first := r.Milestones[0]
	assert.Equal(t, "Milestone 1", first.Title)
	assert.Equal(t, "No description provided", first.Description)
	assert.Equal(t, types.MilestoneOther, first.Type)
	assert.Equal(t, types.DifficultyIntermediate, first.Difficulty)
	assert.Equal(t, 2, first.TimeEstimate.Amount)
	assert.Equal(t, types.UnitWeeks, first.TimeEstimate.Unit)
	assert.Equal(t, 0, first.Order)
	assert.False(t, first.Completed)
	assert.Nil(t, first.CompletionDate)

	second := r.Milestones[1]
	assert.Equal(t, "Milestone 2", second.Title)
	assert.Equal(t, 1, second.Order)
}

func TestRoadmap_MilestoneIDsAreUnique(t *testing.T) {
	r := Roadmap(map[string]any{
		"milestones": []any{
			map[string]any{"title": "A"},
			map[string]any{"title": "B"},
			map[string]any{"title": "C"},
		},
	})

	require.Len(t, r.Milestones, 3)
	seen := map[string]bool{}
	for _, m := range r.Milestones {
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", m.ID.String())
		assert.False(t, seen[m.ID.String()], "milestone IDs must be unique")
		seen[m.ID.String()] = true
	}
}

func TestRoadmap_EnumCollapse(t *testing.T) {
	r := Roadmap(map[string]any{
		"milestones": []any{
			map[string]any{"type": "SKILL", "difficulty": "Expert"},
			map[string]any{"type": "bootcamp", "difficulty": "impossible"},
		},
	})

	require.Len(t, r.Milestones, 2)
	assert.Equal(t, types.MilestoneSkill, r.Milestones[0].Type)
	assert.Equal(t, types.DifficultyExpert, r.Milestones[0].Difficulty)
	// Unknown values collapse to the defaults.
	assert.Equal(t, types.MilestoneOther, r.Milestones[1].Type)
	assert.Equal(t, types.DifficultyIntermediate, r.Milestones[1].Difficulty)
}

func TestRoadmap_TimeEstimateUnits(t *testing.T) {
	tests := []struct {
		name       string
		estimate   map[string]any
		wantAmount int
		wantUnit   types.TimeUnit
	}{
		{
			name:       "years convert to months",
			estimate:   map[string]any{"amount": float64(2), "unit": "years"},
			wantAmount: 24,
			wantUnit:   types.UnitMonths,
		},
		{
			name:       "singular year converts too",
			estimate:   map[string]any{"amount": float64(1), "unit": "year"},
			wantAmount: 12,
			wantUnit:   types.UnitMonths,
		},
		{
			name: "unit matching is case-sensitive",
			// "Year" is not in the synonym table; the amount survives but
			// the unit stays at the default.
			estimate:   map[string]any{"amount": float64(3), "unit": "Year"},
			wantAmount: 3,
			wantUnit:   types.UnitWeeks,
		},
		{
			name:       "weeks pass through",
			estimate:   map[string]any{"amount": float64(6), "unit": "weeks"},
			wantAmount: 6,
			wantUnit:   types.UnitWeeks,
		},
		{
			name:       "days pass through",
			estimate:   map[string]any{"amount": float64(10), "unit": "days"},
			wantAmount: 10,
			wantUnit:   types.UnitDays,
		},
		{
			name:       "non-positive amount falls back",
			estimate:   map[string]any{"amount": float64(-1), "unit": "months"},
			wantAmount: 2,
			wantUnit:   types.UnitMonths,
		},
		{
			name:       "missing estimate uses defaults",
			estimate:   nil,
			wantAmount: 2,
			wantUnit:   types.UnitWeeks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			milestone := map[string]any{"title": "m"}
			if tt.estimate != nil {
				milestone["time_estimate"] = tt.estimate
			}
			r := Roadmap(map[string]any{"milestones": []any{milestone}})

			require.Len(t, r.Milestones, 1)
			assert.Equal(t, tt.wantAmount, r.Milestones[0].TimeEstimate.Amount)
			assert.Equal(t, tt.wantUnit, r.Milestones[0].TimeEstimate.Unit)
		})
	}
}

func TestRoadmap_DependenciesAlwaysEmpty(t *testing.T) {
	r := Roadmap(map[string]any{
		"milestones": []any{
			map[string]any{
				"title":        "depends on others",
				"dependencies": []any{float64(0), float64(1)},
			},
		},
	})

	require.Len(t, r.Milestones, 1)
	assert.NotNil(t, r.Milestones[0].Dependencies)
	assert.Empty(t, r.Milestones[0].Dependencies)
}

func TestRoadmap_CompletionDate(t *testing.T) {
	r := Roadmap(map[string]any{
		"milestones": []any{
			map[string]any{
				"completed":       true,
				"completion_date": "2026-01-15T10:00:00Z",
			},
			map[string]any{
				// Date without the completed flag is discarded.
				"completed":       false,
				"completion_date": "2026-01-15T10:00:00Z",
			},
		},
	})

	require.Len(t, r.Milestones, 2)
	require.NotNil(t, r.Milestones[0].CompletionDate)
	assert.Equal(t, 2026, r.Milestones[0].CompletionDate.Year())
	assert.Nil(t, r.Milestones[1].CompletionDate)
}

func TestRoadmap_Resources(t *testing.T) {
	r := Roadmap(map[string]any{
		"milestones": []any{
			map[string]any{
				"resources": []any{
					map[string]any{"title": "Go Tour", "url": "https://go.dev/tour", "type": "course"},
					map[string]any{"title": "Some blog", "type": "weird"},
					"not a resource",
				},
			},
		},
	})

	require.Len(t, r.Milestones, 1)
	resources := r.Milestones[0].Resources
	require.Len(t, resources, 2)
	assert.Equal(t, types.ResourceCourse, resources[0].Type)
	assert.Equal(t, types.ResourceOther, resources[1].Type)
}

func TestRoadmap_Insights(t *testing.T) {
	r := Roadmap(map[string]any{
		"insights": map[string]any{
			"reasoning":    "because",
			"key_insights": []any{"one", "two", float64(3)},
		},
	})

	assert.Equal(t, "because", r.Insights.Reasoning)
	assert.Equal(t, []string{"one", "two"}, r.Insights.KeyInsights)
	assert.NotNil(t, r.Insights.MarketTrends)
}

func TestRoadmap_AlternativeRoutes(t *testing.T) {
	r := Roadmap(map[string]any{
		"alternative_routes": []any{
			map[string]any{
				"title": "Slower path",
				"milestones": []any{
					map[string]any{"title": "opt", "type": "course"},
				},
			},
		},
	})

	require.Len(t, r.AlternativeRoutes, 1)
	route := r.AlternativeRoutes[0]
	assert.Equal(t, "Slower path", route.Title)
	require.Len(t, route.Milestones, 1)
	assert.Equal(t, types.MilestoneCourse, route.Milestones[0].Type)
}

func TestRoadmap_InputNotMutated(t *testing.T) {
	raw := map[string]any{
		"title":      "Original",
		"milestones": []any{map[string]any{"title": "m1"}},
	}

	_ = Roadmap(raw)

	assert.Equal(t, "Original", raw["title"])
	assert.Len(t, raw["milestones"], 1)
}
