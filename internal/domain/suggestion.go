package domain

import "time"

// PrioritySuggestion is a recorded recommendation to change a task's priority.
// Suggestions are only recorded when the suggested priority differs from the
// task's current priority.
type PrioritySuggestion struct {
	ID                string
	TaskID            string
	SuggestedPriority TaskPriority
	CurrentPriority   TaskPriority
	Reason            string
	ConfidenceScore   float64
	IsApplied         bool
	CreatedAt         time.Time
}
