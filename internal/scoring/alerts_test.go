package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/scoring"
)

func TestClassifyMoodAlert(t *testing.T) {
	cases := []struct {
		name         string
		moods        []domain.Mood
		wantSeverity domain.AlertSeverity
		wantAlert    bool
	}{
		{
			"three burnout is critical",
			[]domain.Mood{domain.MoodBurnout, domain.MoodBurnout, domain.MoodBurnout, domain.MoodHappy},
			domain.AlertSeverityCritical, true,
		},
		{
			"two burnout is high",
			[]domain.Mood{domain.MoodBurnout, domain.MoodNeutral, domain.MoodBurnout},
			domain.AlertSeverityHigh, true,
		},
		{
			"four stressed is medium",
			[]domain.Mood{domain.MoodStressed, domain.MoodStressed, domain.MoodStressed, domain.MoodStressed},
			domain.AlertSeverityMedium, true,
		},
		{
			"burnout outranks stressed",
			[]domain.Mood{
				domain.MoodBurnout, domain.MoodBurnout,
				domain.MoodStressed, domain.MoodStressed, domain.MoodStressed, domain.MoodStressed,
			},
			domain.AlertSeverityHigh, true,
		},
		{
			"three stressed is not enough",
			[]domain.Mood{domain.MoodStressed, domain.MoodStressed, domain.MoodStressed},
			"", false,
		},
		{
			"single burnout is not enough",
			[]domain.Mood{domain.MoodBurnout, domain.MoodHappy},
			"", false,
		},
		{"no checkins", nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alert, ok := scoring.ClassifyMoodAlert(checkins(tc.moods...), "Jordan Reyes")
			assert.Equal(t, tc.wantAlert, ok)
			if ok {
				assert.Equal(t, tc.wantSeverity, alert.Severity)
				assert.Contains(t, alert.Message, "Jordan Reyes")
			}
		})
	}
}
