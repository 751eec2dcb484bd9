package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/scoring"
)

var today = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func task(priority domain.TaskPriority, status domain.TaskStatus, dueInDays int) domain.Task {
	return domain.Task{
		Priority:  priority,
		Status:    status,
		DueDate:   today.AddDate(0, 0, dueInDays),
		CreatedAt: today.AddDate(0, 0, -10),
		UpdatedAt: today,
	}
}

func TestBurnoutScore_NoTasks(t *testing.T) {
	assert.Equal(t, 10, scoring.BurnoutScore(nil, today))
	assert.Equal(t, 10, scoring.BurnoutScore([]domain.Task{}, today))
}

func TestBurnoutScore_Range(t *testing.T) {
	cases := []struct {
		name  string
		tasks []domain.Task
	}{
		{"single low task", []domain.Task{task(domain.TaskPriorityLow, domain.TaskStatusPending, 60)}},
		{"heavy load", []domain.Task{
			task(domain.TaskPriorityHigh, domain.TaskStatusPending, 1),
			task(domain.TaskPriorityHigh, domain.TaskStatusPending, 3),
			task(domain.TaskPriorityHigh, domain.TaskStatusPending, 5),
			task(domain.TaskPriorityHigh, domain.TaskStatusInProgress, 7),
			task(domain.TaskPriorityHigh, domain.TaskStatusPending, 9),
			task(domain.TaskPriorityHigh, domain.TaskStatusPending, 11),
		}},
		{"all completed", []domain.Task{
			task(domain.TaskPriorityMedium, domain.TaskStatusCompleted, -5),
			task(domain.TaskPriorityLow, domain.TaskStatusCompleted, -3),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := scoring.BurnoutScore(tc.tasks, today)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestBurnoutScore_Idempotent(t *testing.T) {
	tasks := []domain.Task{
		task(domain.TaskPriorityHigh, domain.TaskStatusPending, 10),
		task(domain.TaskPriorityHigh, domain.TaskStatusInProgress, 15),
		task(domain.TaskPriorityLow, domain.TaskStatusCompleted, -2),
	}

	first := scoring.BurnoutScore(tasks, today)
	second := scoring.BurnoutScore(tasks, today)
	assert.Equal(t, first, second)
}

func TestPriorityScore(t *testing.T) {
	assert.Equal(t, 10.0, scoring.PriorityScore(nil))

	tasks := []domain.Task{
		task(domain.TaskPriorityHigh, domain.TaskStatusPending, 5),
		task(domain.TaskPriorityMedium, domain.TaskStatusPending, 5),
		task(domain.TaskPriorityLow, domain.TaskStatusPending, 5),
	}
	// (100 + 60 + 30) / 3
	assert.InDelta(t, 63.33, scoring.PriorityScore(tasks), 0.01)
}

func TestDeadlinePressure(t *testing.T) {
	cases := []struct {
		name   string
		active []domain.Task
		want   float64
	}{
		{"no active tasks", nil, 30},
		{
			"single task near deadline",
			[]domain.Task{task(domain.TaskPriorityMedium, domain.TaskStatusPending, 15)},
			60,
		},
		{
			"single task far deadline",
			[]domain.Task{task(domain.TaskPriorityMedium, domain.TaskStatusPending, 45)},
			30,
		},
		{
			"two high priority clustered and near",
			[]domain.Task{
				task(domain.TaskPriorityHigh, domain.TaskStatusPending, 10),
				task(domain.TaskPriorityHigh, domain.TaskStatusPending, 15),
			},
			100,
		},
		{
			"two high priority spread 20-40 days",
			[]domain.Task{
				task(domain.TaskPriorityHigh, domain.TaskStatusPending, 30),
				task(domain.TaskPriorityHigh, domain.TaskStatusPending, 60),
			},
			60,
		},
		{
			"two high priority well spaced",
			[]domain.Task{
				task(domain.TaskPriorityHigh, domain.TaskStatusPending, 50),
				task(domain.TaskPriorityHigh, domain.TaskStatusPending, 100),
			},
			30,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scoring.DeadlinePressure(tc.active, today))
		})
	}
}

func TestWorkloadFactor(t *testing.T) {
	assert.Equal(t, 100.0, scoring.WorkloadFactor(6))
	assert.Equal(t, 70.0, scoring.WorkloadFactor(4))
	assert.Equal(t, 70.0, scoring.WorkloadFactor(3))
	assert.Equal(t, 40.0, scoring.WorkloadFactor(1))
	assert.Equal(t, 10.0, scoring.WorkloadFactor(0))
}

func TestPendingFactor(t *testing.T) {
	assert.Equal(t, 10.0, scoring.PendingFactor(nil))

	tasks := []domain.Task{
		task(domain.TaskPriorityLow, domain.TaskStatusPending, 5),
		task(domain.TaskPriorityLow, domain.TaskStatusInProgress, 5),
		task(domain.TaskPriorityLow, domain.TaskStatusCompleted, 5),
		task(domain.TaskPriorityLow, domain.TaskStatusPending, 5),
	}
	assert.Equal(t, 50.0, scoring.PendingFactor(tasks))
}

func TestBandForScore(t *testing.T) {
	cases := []struct {
		score int
		want  scoring.RiskBand
	}{
		{0, scoring.RiskBandLow},
		{30, scoring.RiskBandLow},
		{31, scoring.RiskBandModerate},
		{60, scoring.RiskBandModerate},
		{61, scoring.RiskBandHigh},
		{80, scoring.RiskBandHigh},
		{81, scoring.RiskBandCritical},
		{100, scoring.RiskBandCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, scoring.BandForScore(tc.score), "score %d", tc.score)
	}
}

func TestBandDescriptions(t *testing.T) {
	for _, band := range []scoring.RiskBand{
		scoring.RiskBandLow, scoring.RiskBandModerate,
		scoring.RiskBandHigh, scoring.RiskBandCritical,
	} {
		require.NotEmpty(t, band.Describe())
	}
}
