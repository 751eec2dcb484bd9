package scoring_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/scoring"
)

func TestDeadlineUrgency(t *testing.T) {
	cases := []struct {
		name      string
		dueInDays int
		want      float64
	}{
		{"overdue by one day", -1, 100},
		{"due today", 0, 90},
		{"due in exactly 2 days", 2, 90},
		{"due in 5 days", 5, 70},
		{"due in 10 days", 10, 50},
		{"due in 25 days", 25, 30},
		{"due in 90 days", 90, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			due := today.AddDate(0, 0, tc.dueInDays)
			assert.Equal(t, tc.want, scoring.DeadlineUrgency(due, today))
		})
	}
}

func TestComplexityEstimate(t *testing.T) {
	s := scoring.NewSuggester()

	cases := []struct {
		name        string
		title       string
		description string
		want        float64
	}{
		// Base 50, no keywords, short text (-10).
		{"short plain text", "do thing", "small", 40},
		// "refactor" +5, "migration" +5; text below 50 chars -10.
		{"complex keywords", "refactor migration", "", 50},
		// "fix" -3, short text -10.
		{"simple keyword", "fix typo", "", 37},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.ComplexityEstimate(tc.title, tc.description))
		})
	}
}

func TestComplexityEstimate_LengthBands(t *testing.T) {
	s := scoring.NewSuggester()

	// No keywords in any of these bodies.
	long := strings.Repeat("z", 501)
	medium := strings.Repeat("z", 250)

	assert.Equal(t, 70.0, s.ComplexityEstimate("", long))
	assert.Equal(t, 60.0, s.ComplexityEstimate("", medium))
}

func TestComplexityEstimate_CountsCharactersNotBytes(t *testing.T) {
	s := scoring.NewSuggester()

	// 30 Cyrillic characters occupy 60 bytes; the short-text discount
	// still applies because the bands count characters.
	short := strings.Repeat("ж", 30)
	assert.Equal(t, 40.0, s.ComplexityEstimate(short, ""))

	// 250 characters (500 bytes) sit in the middle band, not the top one.
	medium := strings.Repeat("ж", 250)
	assert.Equal(t, 60.0, s.ComplexityEstimate("", medium))
}

func TestSuggest_ConfidenceCountsCharacters(t *testing.T) {
	s := scoring.NewSuggester()

	// 40 characters but 80 bytes: no description bonus.
	task := domain.Task{
		Title:       "plan",
		Description: strings.Repeat("ж", 40),
		Priority:    domain.TaskPriorityLow,
		DueDate:     today.AddDate(0, 0, 5),
	}
	got := s.Suggest(task, scoring.WorkloadSnapshot{}, today)
	assert.Equal(t, 0.5, got.ConfidenceScore)
}

func TestComplexityEstimate_Clamped(t *testing.T) {
	s := scoring.NewSuggester()

	// All ten complex keywords plus long text cannot exceed 100.
	text := strings.Join(s.ComplexKeywords, " ") + strings.Repeat(" padding", 100)
	assert.LessOrEqual(t, s.ComplexityEstimate("", text), 100.0)
}

func TestWorkloadScore(t *testing.T) {
	assert.Equal(t, 0.0, scoring.WorkloadScore(nil))

	two := []domain.Task{
		{Priority: domain.TaskPriorityLow, Status: domain.TaskStatusPending},
		{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusPending},
	}
	// 2*10 + 1*15
	assert.Equal(t, 35.0, scoring.WorkloadScore(two))

	var many []domain.Task
	for i := 0; i < 12; i++ {
		many = append(many, domain.Task{Priority: domain.TaskPriorityHigh})
	}
	assert.Equal(t, 100.0, scoring.WorkloadScore(many))
}

func TestSuggest_PriorityThresholds(t *testing.T) {
	s := scoring.NewSuggester()

	// Overdue task (urgency 100) with a busy assignee pushes the weighted
	// score past 70 and suggests high.
	overdue := domain.Task{
		Title:       "Implement reporting integration",
		Description: strings.Repeat("detail ", 40),
		Priority:    domain.TaskPriorityLow,
		Status:      domain.TaskStatusPending,
		DueDate:     today.AddDate(0, 0, -1),
	}
	busy := scoring.WorkloadSnapshot{
		OtherActive: []domain.Task{
			{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusPending},
			{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusPending},
			{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusPending},
			{Priority: domain.TaskPriorityHigh, Status: domain.TaskStatusPending},
		},
		AssigneeTaskCount: 6,
		TeamTaskCount:     12,
	}

	got := s.Suggest(overdue, busy, today)
	assert.GreaterOrEqual(t, got.PriorityScore, 70.0)
	assert.Equal(t, domain.TaskPriorityHigh, got.SuggestedPriority)
	assert.Contains(t, got.Reason, "imminent or overdue")
	assert.Contains(t, got.Reason, "Recommend upgrading to HIGH priority")

	// A far-out trivial task for an idle assignee stays low.
	quiet := domain.Task{
		Title:    "fix typo",
		Priority: domain.TaskPriorityMedium,
		Status:   domain.TaskStatusPending,
		DueDate:  today.AddDate(0, 0, 90),
	}
	got = s.Suggest(quiet, scoring.WorkloadSnapshot{}, today)
	assert.Less(t, got.PriorityScore, 40.0)
	assert.Equal(t, domain.TaskPriorityLow, got.SuggestedPriority)
	assert.Contains(t, got.Reason, "far in the future")
}

func TestSuggest_ExactThresholds(t *testing.T) {
	s := scoring.NewSuggester()

	// Plain 60-char title: base complexity 50, no keyword or length bumps.
	plainTitle := strings.Repeat("a", 60)

	// urgency 100*0.35 + complexity 50*0.20 + workload 100*0.25 = 70.0
	overdue := domain.Task{
		Title:    plainTitle,
		Priority: domain.TaskPriorityHigh,
		DueDate:  today.AddDate(0, 0, -1),
	}
	tenActive := make([]domain.Task, 10)
	got := s.Suggest(overdue, scoring.WorkloadSnapshot{OtherActive: tenActive}, today)
	assert.Equal(t, 70.0, got.PriorityScore)
	assert.Equal(t, domain.TaskPriorityHigh, got.SuggestedPriority)

	// urgency 50*0.35 + complexity 50*0.20 + workload 50*0.25 = 40.0
	moderate := domain.Task{
		Title:    plainTitle,
		Priority: domain.TaskPriorityMedium,
		DueDate:  today.AddDate(0, 0, 10),
	}
	fiveActive := make([]domain.Task, 5)
	got = s.Suggest(moderate, scoring.WorkloadSnapshot{OtherActive: fiveActive}, today)
	assert.Equal(t, 40.0, got.PriorityScore)
	assert.Equal(t, domain.TaskPriorityMedium, got.SuggestedPriority)
}

func TestSuggest_ConfidenceCapped(t *testing.T) {
	s := scoring.NewSuggester()

	task := domain.Task{
		Title:       "Develop analytics",
		Description: strings.Repeat("long description ", 10),
		Priority:    domain.TaskPriorityMedium,
		DueDate:     today.AddDate(0, 0, 5),
	}
	workload := scoring.WorkloadSnapshot{
		AssigneeTaskCount: 10,
		TeamTaskCount:     25,
	}

	// 0.5 + 0.2 + 0.15 + 0.15 = 1.0 exactly, capped not overflowed.
	got := s.Suggest(task, workload, today)
	assert.Equal(t, 1.0, got.ConfidenceScore)
}

func TestSuggest_BaseConfidence(t *testing.T) {
	s := scoring.NewSuggester()

	task := domain.Task{
		Title:    "check",
		Priority: domain.TaskPriorityLow,
		DueDate:  today.AddDate(0, 0, 5),
	}
	got := s.Suggest(task, scoring.WorkloadSnapshot{}, today)
	assert.Equal(t, 0.5, got.ConfidenceScore)
}

func TestSuggest_ReasonEndsWithPeriod(t *testing.T) {
	s := scoring.NewSuggester()

	task := domain.Task{
		Title:    "Research caching options",
		Priority: domain.TaskPriorityLow,
		DueDate:  today.AddDate(0, 0, 3),
	}
	got := s.Suggest(task, scoring.WorkloadSnapshot{}, today)
	require.NotEmpty(t, got.Reason)
	assert.True(t, strings.HasSuffix(got.Reason, "."))
}
