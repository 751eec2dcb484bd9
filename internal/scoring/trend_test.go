package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/scoring"
)

func checkins(moods ...domain.Mood) []domain.MoodCheckin {
	out := make([]domain.MoodCheckin, len(moods))
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, m := range moods {
		out[i] = domain.MoodCheckin{Mood: m, Timestamp: base.AddDate(0, 0, i)}
	}
	return out
}

func TestPredictMoodTrend_InsufficientData(t *testing.T) {
	// Exactly 6 entries is not enough, regardless of values.
	history := checkins(
		domain.MoodBurnout, domain.MoodBurnout, domain.MoodBurnout,
		domain.MoodBurnout, domain.MoodBurnout, domain.MoodBurnout,
	)

	got := scoring.PredictMoodTrend(history)
	assert.Equal(t, "Insufficient data", got.Prediction)
	assert.Equal(t, scoring.TrendRiskUnknown, got.RiskLevel)
	assert.Zero(t, got.Slope)
}

func TestPredictMoodTrend_Increasing(t *testing.T) {
	// Severity climbing from happy to burnout.
	history := checkins(
		domain.MoodHappy, domain.MoodHappy, domain.MoodNeutral,
		domain.MoodNeutral, domain.MoodStressed, domain.MoodStressed,
		domain.MoodBurnout, domain.MoodBurnout,
	)

	got := scoring.PredictMoodTrend(history)
	assert.Greater(t, got.Slope, 0.1)
	assert.Equal(t, scoring.TrendRiskIncreasing, got.RiskLevel)
	assert.Equal(t, "Burnout risk is increasing", got.Prediction)
}

func TestPredictMoodTrend_Decreasing(t *testing.T) {
	history := checkins(
		domain.MoodBurnout, domain.MoodBurnout, domain.MoodStressed,
		domain.MoodStressed, domain.MoodNeutral, domain.MoodNeutral,
		domain.MoodHappy, domain.MoodHappy,
	)

	got := scoring.PredictMoodTrend(history)
	assert.Less(t, got.Slope, -0.1)
	assert.Equal(t, scoring.TrendRiskDecreasing, got.RiskLevel)
}

func TestPredictMoodTrend_Stable(t *testing.T) {
	history := checkins(
		domain.MoodNeutral, domain.MoodNeutral, domain.MoodNeutral,
		domain.MoodNeutral, domain.MoodNeutral, domain.MoodNeutral,
		domain.MoodNeutral,
	)

	got := scoring.PredictMoodTrend(history)
	assert.InDelta(t, 0, got.Slope, 0.1)
	assert.Equal(t, scoring.TrendRiskStable, got.RiskLevel)
}

func TestPredictMoodTrend_HighRiskOverride(t *testing.T) {
	// Recent-week mean 3.57 (>= 3.5) forces high risk even though the
	// overall slope is flat.
	history := checkins(
		domain.MoodBurnout, domain.MoodStressed, domain.MoodBurnout,
		domain.MoodStressed, domain.MoodBurnout, domain.MoodStressed,
		domain.MoodBurnout,
	)

	got := scoring.PredictMoodTrend(history)
	assert.GreaterOrEqual(t, got.CurrentScore, 3.5)
	assert.Equal(t, scoring.TrendRiskHigh, got.RiskLevel)
	assert.Equal(t, "Immediate intervention recommended", got.Recommendation)
}

func TestPredictMoodTrend_UsesMostRecent28(t *testing.T) {
	// A long happy prefix followed by 28 stressed entries: only the recent
	// window should matter.
	var moods []domain.Mood
	for i := 0; i < 40; i++ {
		moods = append(moods, domain.MoodHappy)
	}
	for i := 0; i < 28; i++ {
		moods = append(moods, domain.MoodStressed)
	}

	got := scoring.PredictMoodTrend(checkins(moods...))
	assert.Equal(t, 3.0, got.CurrentScore)
}
