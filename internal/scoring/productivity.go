package scoring

import (
	"time"

	"github.com/teampulse/teampulse/internal/domain"
)

// DefaultProductivityWindowDays is the default lookback for productivity
// aggregation.
const DefaultProductivityWindowDays = 30

// TeamProductivity summarizes a team's task throughput over a window.
type TeamProductivity struct {
	TotalTasks        int
	CompletedTasks    int
	CompletionRate    float64
	AvgCompletionDays float64
	ProductivityScore float64
}

// EmployeeProductivity summarizes an individual's throughput, adjusted
// downward by their burnout score.
type EmployeeProductivity struct {
	TotalTasks           int
	CompletedTasks       int
	CompletionRate       float64
	BurnoutScore         int
	AdjustedProductivity float64
}

// CalculateTeamProductivity aggregates completion rate and mean
// days-to-completion over the lookback window, combining them as
// rate*0.7 + speed*0.3 where speed caps the average at 30 days.
func CalculateTeamProductivity(tasks []domain.Task, windowDays int, now time.Time) TeamProductivity {
	if windowDays <= 0 {
		windowDays = DefaultProductivityWindowDays
	}
	start := now.AddDate(0, 0, -windowDays)

	total := 0
	completed := 0
	var completionDays []float64

	for _, t := range tasks {
		if !t.CreatedAt.Before(start) {
			total++
			if t.Status == domain.TaskStatusCompleted {
				completed++
			}
		}
		// Average completion time counts anything finished inside the window,
		// regardless of when it was created.
		if t.Status == domain.TaskStatusCompleted && !t.UpdatedAt.Before(start) {
			completionDays = append(completionDays, float64(daysBetween(t.CreatedAt, t.UpdatedAt)))
		}
	}

	completionRate := 0.0
	if total > 0 {
		completionRate = float64(completed) / float64(total) * 100
	}

	avgDays := mean(completionDays)

	capped := avgDays
	if capped > 30 {
		capped = 30
	}
	score := completionRate*0.7 + (100-capped/30*100)*0.3

	return TeamProductivity{
		TotalTasks:        total,
		CompletedTasks:    completed,
		CompletionRate:    completionRate,
		AvgCompletionDays: avgDays,
		ProductivityScore: score,
	}
}

// CalculateEmployeeProductivity computes an individual completion rate
// over the window and discounts it by the employee's burnout score:
// adjusted = rate * (1 - burnout/200). The burnout score is computed from
// the full task set, not just the window.
func CalculateEmployeeProductivity(tasks []domain.Task, windowDays int, now time.Time) EmployeeProductivity {
	if windowDays <= 0 {
		windowDays = DefaultProductivityWindowDays
	}
	start := now.AddDate(0, 0, -windowDays)

	total := 0
	completed := 0
	for _, t := range tasks {
		if t.CreatedAt.Before(start) {
			continue
		}
		total++
		if t.Status == domain.TaskStatusCompleted {
			completed++
		}
	}

	completionRate := 0.0
	if total > 0 {
		completionRate = float64(completed) / float64(total) * 100
	}

	burnout := BurnoutScore(tasks, now)
	adjusted := completionRate * (1 - float64(burnout)/200)

	return EmployeeProductivity{
		TotalTasks:           total,
		CompletedTasks:       completed,
		CompletionRate:       completionRate,
		BurnoutScore:         burnout,
		AdjustedProductivity: adjusted,
	}
}
