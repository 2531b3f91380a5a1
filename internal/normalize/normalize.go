// Package normalize coerces externally-produced roadmap payloads into the
// canonical schema. The generative capability returns loosely structured,
// untrusted JSON; nothing from it reaches domain logic or storage without
// passing through this boundary.
//
// Normalization is total: any input, including nil, yields a structurally
// valid roadmap by substituting defaults for missing or invalid fields. The
// input is never mutated.
package normalize

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/daniel/career-coach/internal/types"
)

// Defaults applied when a field is missing or invalid.
const (
	defaultTitle           = "Career Development Roadmap"
	defaultDescription     = "No description provided"
	defaultTimelineMonths  = 6
	defaultDifficultyScore = 5
	defaultEstimateAmount  = 2
)

var milestoneTypes = map[string]types.MilestoneType{
	"project":       types.MilestoneProject,
	"certification": types.MilestoneCertification,
	"course":        types.MilestoneCourse,
	"skill":         types.MilestoneSkill,
	"job":           types.MilestoneJob,
	"internship":    types.MilestoneInternship,
	"networking":    types.MilestoneNetworking,
	"education":     types.MilestoneEducation,
	"other":         types.MilestoneOther,
}

var difficulties = map[string]types.Difficulty{
	"beginner":     types.DifficultyBeginner,
	"intermediate": types.DifficultyIntermediate,
	"advanced":     types.DifficultyAdvanced,
	"expert":       types.DifficultyExpert,
}

var resourceTypes = map[string]types.ResourceType{
	"article":       types.ResourceArticle,
	"video":         types.ResourceVideo,
	"course":        types.ResourceCourse,
	"book":          types.ResourceBook,
	"documentation": types.ResourceDocumentation,
	"tool":          types.ResourceTool,
	"other":         types.ResourceOther,
}

// unitSynonyms maps time-estimate unit spellings to the canonical unit and a
// multiplier applied to the amount. Matching is deliberately exact and
// case-sensitive: "Year" does not match. Generalizing this to
// case-insensitive matching would change persisted estimates, so it stays
// as-is until the product decides otherwise.
var unitSynonyms = map[string]struct {
	unit       types.TimeUnit
	multiplier int
}{
	"day":    {types.UnitDays, 1},
	"days":   {types.UnitDays, 1},
	"week":   {types.UnitWeeks, 1},
	"weeks":  {types.UnitWeeks, 1},
	"month":  {types.UnitMonths, 1},
	"months": {types.UnitMonths, 1},
	"year":   {types.UnitMonths, 12},
	"years":  {types.UnitMonths, 12},
}

// pick returns the first present key from the raw map, tolerating both the
// snake_case keys our prompts request and the camelCase keys models tend to
// emit anyway.
func pick(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Roadmap converts an untrusted payload into a canonical roadmap. Identity
// fields (ID, CandidateID, timestamps, target snapshot) are left zero; the
// orchestrator owns those.
func Roadmap(raw map[string]any) types.Roadmap {
	if raw == nil {
		raw = map[string]any{}
	}

	r := types.Roadmap{
		Title:                   defaultTitle,
		EstimatedTimelineMonths: defaultTimelineMonths,
		DifficultyScore:         defaultDifficultyScore,
		Milestones:              []types.Milestone{},
		AlternativeRoutes:       []types.AlternativeRoute{},
	}

	if s := strings.TrimSpace(stringField(raw, "title")); s != "" {
		r.Title = s
	}
	r.Description = stringField(raw, "description")

	if v, ok := pick(raw, "estimated_timeline_months", "estimatedTimelineMonths"); ok {
		if n, ok := asInt(v); ok && n > 0 {
			r.EstimatedTimelineMonths = n
		}
	}
	if v, ok := pick(raw, "difficulty_score", "difficultyScore"); ok {
		if n, ok := asInt(v); ok {
			r.DifficultyScore = clampScore(n)
		}
	}

	if items, ok := asSlice(raw["milestones"]); ok {
		r.Milestones = make([]types.Milestone, 0, len(items))
		for i, item := range items {
			m, _ := asMap(item)
			r.Milestones = append(r.Milestones, milestone(m, i))
		}
	}

	if v, ok := pick(raw, "alternative_routes", "alternativeRoutes"); ok {
		if items, ok := asSlice(v); ok {
			r.AlternativeRoutes = make([]types.AlternativeRoute, 0, len(items))
			for _, item := range items {
				m, _ := asMap(item)
				r.AlternativeRoutes = append(r.AlternativeRoutes, alternativeRoute(m))
			}
		}
	}

	if v, ok := pick(raw, "insights", "gpt_analysis", "gptAnalysis"); ok {
		if m, ok := asMap(v); ok {
			r.Insights = insights(m)
		}
	}

	return r
}

// milestone normalizes a single milestone entry. A nil map yields a fully
// defaulted milestone for the position.
func milestone(m map[string]any, index int) types.Milestone {
	if m == nil {
		m = map[string]any{}
	}

	out := types.Milestone{
		ID:           uuid.New(),
		Title:        fmt.Sprintf("Milestone %d", index+1),
		Description:  defaultDescription,
		Type:         types.MilestoneOther,
		Difficulty:   types.DifficultyIntermediate,
		TimeEstimate: types.TimeEstimate{Amount: defaultEstimateAmount, Unit: types.UnitWeeks},
		Resources:    []types.Resource{},
		Order:        index,
		Dependencies: []uuid.UUID{},
	}

	if s := strings.TrimSpace(stringField(m, "title")); s != "" {
		out.Title = s
	}
	if s := strings.TrimSpace(stringField(m, "description")); s != "" {
		out.Description = s
	}
	if t, ok := milestoneTypes[strings.ToLower(stringField(m, "type"))]; ok {
		out.Type = t
	}
	if d, ok := difficulties[strings.ToLower(stringField(m, "difficulty"))]; ok {
		out.Difficulty = d
	}

	if v, ok := pick(m, "time_estimate", "timeEstimate"); ok {
		if te, ok := asMap(v); ok {
			out.TimeEstimate = timeEstimate(te)
		}
	}

	if items, ok := asSlice(m["resources"]); ok {
		out.Resources = make([]types.Resource, 0, len(items))
		for _, item := range items {
			rm, ok := asMap(item)
			if !ok {
				continue
			}
			out.Resources = append(out.Resources, resource(rm))
		}
	}

	if n, ok := intField(m, "order"); ok {
		out.Order = n
	}

	if c, ok := asBool(m["completed"]); ok {
		out.Completed = c
	}
	if out.Completed {
		if v, ok := pick(m, "completion_date", "completionDate"); ok {
			if t, ok := asTime(v); ok {
				out.CompletionDate = &t
			}
		}
	}

	// Dependencies are discarded unconditionally: upstream payloads refer to
	// prerequisites by list index, and those indices have no meaning once
	// milestones carry generated IDs. Populating them from the stable IDs
	// assigned here is a possible follow-up, not current behavior.
	return out
}

func timeEstimate(m map[string]any) types.TimeEstimate {
	out := types.TimeEstimate{Amount: defaultEstimateAmount, Unit: types.UnitWeeks}
	if n, ok := intField(m, "amount"); ok && n > 0 {
		out.Amount = n
	}
	if syn, ok := unitSynonyms[stringField(m, "unit")]; ok {
		out.Unit = syn.unit
		out.Amount *= syn.multiplier
	}
	return out
}

func resource(m map[string]any) types.Resource {
	out := types.Resource{
		Title: stringField(m, "title"),
		URL:   stringField(m, "url"),
		Type:  types.ResourceOther,
	}
	if t, ok := resourceTypes[strings.ToLower(stringField(m, "type"))]; ok {
		out.Type = t
	}
	return out
}

func alternativeRoute(m map[string]any) types.AlternativeRoute {
	if m == nil {
		m = map[string]any{}
	}
	out := types.AlternativeRoute{
		Title:       stringField(m, "title"),
		Description: stringField(m, "description"),
		Milestones:  []types.AlternativeMilestone{},
	}
	if items, ok := asSlice(m["milestones"]); ok {
		for _, item := range items {
			am, ok := asMap(item)
			if !ok {
				continue
			}
			alt := types.AlternativeMilestone{
				Title:       stringField(am, "title"),
				Description: stringField(am, "description"),
				Type:        types.MilestoneOther,
			}
			if t, ok := milestoneTypes[strings.ToLower(stringField(am, "type"))]; ok {
				alt.Type = t
			}
			out.Milestones = append(out.Milestones, alt)
		}
	}
	return out
}

func insights(m map[string]any) types.RoadmapInsights {
	out := types.RoadmapInsights{
		Reasoning:      stringField(m, "reasoning"),
		KeyInsights:    []string{},
		MarketTrends:   []string{},
		CompanyCulture: []string{},
	}
	if v, ok := pick(m, "key_insights", "keyInsights"); ok {
		out.KeyInsights = stringList(v)
	}
	if v, ok := pick(m, "market_trends", "marketTrends"); ok {
		out.MarketTrends = stringList(v)
	}
	if v, ok := pick(m, "company_culture", "companyCulture"); ok {
		out.CompanyCulture = stringList(v)
	}
	return out
}

func stringList(v any) []string {
	items, ok := asSlice(v)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := asString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
