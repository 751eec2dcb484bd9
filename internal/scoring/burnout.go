// Package scoring implements the workload and well-being heuristics:
// burnout scoring, priority suggestions, mood trend prediction, and
// productivity aggregation. Every function is pure: it takes a snapshot
// of task or mood data plus an explicit reference time and returns a
// value. Persistence of results belongs to the service layer.
package scoring

import (
	"sort"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
)

// RiskBand is the qualitative label derived from a burnout score.
type RiskBand string

const (
	RiskBandLow      RiskBand = "low"
	RiskBandModerate RiskBand = "moderate"
	RiskBandHigh     RiskBand = "high"
	RiskBandCritical RiskBand = "critical"
)

// Fallback constants used when input collections are empty. Absence of
// data is not an error condition.
const (
	noTaskScore         = 10
	noDeadlinePressure  = 30
	deadlineClusterDays = 20
	deadlineSpreadDays  = 40
)

// BurnoutScore computes the 0-100 composite burnout score for the given
// set of assigned tasks:
//
//	(priorityScore + deadlinePressure + workloadFactor + pendingFactor) / 4
//
// An employee with no tasks short-circuits to the minimal score of 10.
func BurnoutScore(tasks []domain.Task, today time.Time) int {
	if len(tasks) == 0 {
		return noTaskScore
	}

	active := activeTasks(tasks)

	score := (PriorityScore(tasks) +
		DeadlinePressure(active, today) +
		WorkloadFactor(len(active)) +
		PendingFactor(tasks)) / 4

	if score > 100 {
		return 100
	}
	return int(score)
}

// BandForScore maps a burnout score to its risk band.
func BandForScore(score int) RiskBand {
	switch {
	case score >= 81:
		return RiskBandCritical
	case score >= 61:
		return RiskBandHigh
	case score >= 31:
		return RiskBandModerate
	default:
		return RiskBandLow
	}
}

// Describe returns the operator-facing description of a risk band.
func (b RiskBand) Describe() string {
	switch b {
	case RiskBandCritical:
		return "Burnout danger - Immediate intervention needed"
	case RiskBandHigh:
		return "Overload likely - Redistribute workload"
	case RiskBandModerate:
		return "Manageable stress - Monitor closely"
	default:
		return "Healthy balance - Good workload"
	}
}

// PriorityScore averages task priorities mapped to high 100, medium 60,
// low 30. Returns 10 when there are no tasks.
func PriorityScore(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return noTaskScore
	}

	total := 0.0
	for _, t := range tasks {
		switch t.Priority {
		case domain.TaskPriorityHigh:
			total += 100
		case domain.TaskPriorityMedium:
			total += 60
		default:
			total += 30
		}
	}
	return total / float64(len(tasks))
}

// DeadlinePressure scores the clustering and proximity of active task
// deadlines. Two or more high-priority tasks due within 20 days of each
// other, with the earlier one within 20 days of today, score 100.
// Deadlines 20-40 days apart score 60. Otherwise 30.
func DeadlinePressure(active []domain.Task, today time.Time) float64 {
	if len(active) == 0 {
		return noDeadlinePressure
	}

	var highDue []time.Time
	for _, t := range active {
		if t.Priority == domain.TaskPriorityHigh {
			highDue = append(highDue, t.DueDate)
		}
	}

	if len(highDue) < 2 {
		// No clustering possible; check for any near deadline.
		for _, t := range active {
			if daysBetween(today, t.DueDate) <= deadlineClusterDays {
				return 60
			}
		}
		return noDeadlinePressure
	}

	sort.Slice(highDue, func(i, j int) bool { return highDue[i].Before(highDue[j]) })

	for i := 0; i < len(highDue)-1; i++ {
		apart := daysBetween(highDue[i], highDue[i+1])
		fromNow := daysBetween(today, highDue[i])
		if apart <= deadlineClusterDays && fromNow <= deadlineClusterDays {
			return 100
		}
	}

	for i := 0; i < len(highDue)-1; i++ {
		apart := daysBetween(highDue[i], highDue[i+1])
		if apart >= deadlineClusterDays && apart <= deadlineSpreadDays {
			return 60
		}
	}

	return noDeadlinePressure
}

// WorkloadFactor scores the number of active tasks: >5 is 100, 3-5 is 70,
// 1-2 is 40, none is 10.
func WorkloadFactor(activeCount int) float64 {
	switch {
	case activeCount > 5:
		return 100
	case activeCount >= 3:
		return 70
	case activeCount >= 1:
		return 40
	default:
		return noTaskScore
	}
}

// PendingFactor is the percentage of tasks still pending. Returns 10 when
// there are no tasks.
func PendingFactor(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return noTaskScore
	}

	pending := 0
	for _, t := range tasks {
		if t.Status == domain.TaskStatusPending {
			pending++
		}
	}
	return float64(pending) / float64(len(tasks)) * 100
}

// activeTasks filters tasks with pending or in_progress status.
func activeTasks(tasks []domain.Task) []domain.Task {
	var active []domain.Task
	for _, t := range tasks {
		if t.Status.IsActive() {
			active = append(active, t)
		}
	}
	return active
}

// daysBetween returns whole days from one calendar date to another,
// ignoring time-of-day. Negative when to precedes from.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
