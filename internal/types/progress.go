package types

// RemainingTime is the time left until the roadmap's planned end date.
// Days are whole days rounded up; months are days/30 rounded up.
type RemainingTime struct {
	Days   int `json:"days"`
	Months int `json:"months"`
}

// ProgressReport is the derived progress score for one roadmap snapshot.
// All percentages are rounded to the nearest integer for display.
type ProgressReport struct {
	CompletionPercentage  int           `json:"completion_percentage"`
	TimeProgress          int           `json:"time_progress"`
	IsOnTrack             bool          `json:"is_on_track"`
	RemainingTime         RemainingTime `json:"remaining_time"`
	SkillImprovementScore int           `json:"skill_improvement_score"`
	CompletedMilestones   int           `json:"completed_milestones"`
	TotalMilestones       int           `json:"total_milestones"`
}
