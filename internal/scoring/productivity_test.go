package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/scoring"
)

func completedTask(createdDaysAgo, completedDaysAgo int) domain.Task {
	return domain.Task{
		Priority:  domain.TaskPriorityMedium,
		Status:    domain.TaskStatusCompleted,
		DueDate:   today,
		CreatedAt: today.AddDate(0, 0, -createdDaysAgo),
		UpdatedAt: today.AddDate(0, 0, -completedDaysAgo),
	}
}

func openTask(createdDaysAgo int) domain.Task {
	return domain.Task{
		Priority:  domain.TaskPriorityMedium,
		Status:    domain.TaskStatusPending,
		DueDate:   today.AddDate(0, 0, 14),
		CreatedAt: today.AddDate(0, 0, -createdDaysAgo),
		UpdatedAt: today.AddDate(0, 0, -createdDaysAgo),
	}
}

func TestCalculateTeamProductivity_Empty(t *testing.T) {
	got := scoring.CalculateTeamProductivity(nil, 30, today)
	assert.Zero(t, got.TotalTasks)
	assert.Zero(t, got.CompletionRate)
	// With no completions avg days is 0, so speed contributes its full 30.
	assert.InDelta(t, 30.0, got.ProductivityScore, 0.001)
}

func TestCalculateTeamProductivity(t *testing.T) {
	tasks := []domain.Task{
		completedTask(10, 4), // 6 days to complete
		completedTask(8, 2),  // 6 days to complete
		openTask(5),
		openTask(3),
	}

	got := scoring.CalculateTeamProductivity(tasks, 30, today)
	assert.Equal(t, 4, got.TotalTasks)
	assert.Equal(t, 2, got.CompletedTasks)
	assert.InDelta(t, 50.0, got.CompletionRate, 0.001)
	assert.InDelta(t, 6.0, got.AvgCompletionDays, 0.001)
	// 50*0.7 + (100 - 6/30*100)*0.3 = 35 + 24 = 59
	assert.InDelta(t, 59.0, got.ProductivityScore, 0.001)
}

func TestCalculateTeamProductivity_IgnoresOldTasks(t *testing.T) {
	tasks := []domain.Task{
		openTask(90), // outside the 30-day window
		openTask(5),
	}

	got := scoring.CalculateTeamProductivity(tasks, 30, today)
	assert.Equal(t, 1, got.TotalTasks)
}

func TestCalculateTeamProductivity_CapsSlowCompletion(t *testing.T) {
	tasks := []domain.Task{
		completedTask(20, 1), // 19 days, inside window
	}
	// Average is capped at 30 for the speed term, so score stays >= 0.
	got := scoring.CalculateTeamProductivity(tasks, 30, today)
	assert.GreaterOrEqual(t, got.ProductivityScore, 0.0)
	assert.LessOrEqual(t, got.ProductivityScore, 100.0)
}

func TestCalculateEmployeeProductivity(t *testing.T) {
	tasks := []domain.Task{
		completedTask(10, 4),
		openTask(5),
	}

	got := scoring.CalculateEmployeeProductivity(tasks, 30, today)
	assert.Equal(t, 2, got.TotalTasks)
	assert.Equal(t, 1, got.CompletedTasks)
	assert.InDelta(t, 50.0, got.CompletionRate, 0.001)

	// adjusted = rate * (1 - burnout/200)
	expected := 50.0 * (1 - float64(got.BurnoutScore)/200)
	assert.InDelta(t, expected, got.AdjustedProductivity, 0.001)
}

func TestCalculateEmployeeProductivity_NoTasks(t *testing.T) {
	got := scoring.CalculateEmployeeProductivity(nil, 30, today)
	assert.Zero(t, got.CompletionRate)
	assert.Equal(t, 10, got.BurnoutScore)
	assert.Zero(t, got.AdjustedProductivity)
}
