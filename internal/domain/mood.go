package domain

import "time"

// Mood represents a self-reported well-being state.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodStressed Mood = "stressed"
	MoodBurnout  Mood = "burnout"
)

// IsValid checks if the mood is one of the allowed values.
func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodStressed, MoodBurnout:
		return true
	default:
		return false
	}
}

// Severity maps a mood to its ordinal severity (1 = happy .. 4 = burnout).
func (m Mood) Severity() int {
	switch m {
	case MoodHappy:
		return 1
	case MoodNeutral:
		return 2
	case MoodStressed:
		return 3
	case MoodBurnout:
		return 4
	default:
		return 0
	}
}

// MoodCheckin is an append-only record of an employee's mood at a point in time.
type MoodCheckin struct {
	ID         string
	EmployeeID string
	TeamID     string
	Mood       Mood
	Notes      string
	Timestamp  time.Time
}
