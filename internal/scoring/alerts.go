package scoring

import (
	"fmt"

	"github.com/teampulse/teampulse/internal/domain"
)

// MoodAlert is the classification of an employee's trailing-week mood
// pattern. Creating alert records, including the one-open-alert-per-week
// deduplication, is the caller's responsibility.
type MoodAlert struct {
	Severity domain.AlertSeverity
	Message  string
}

// ClassifyMoodAlert inspects mood check-ins from the trailing 7 days and
// decides whether they warrant an alert. Returns false when the pattern
// is unremarkable. Severity ordering: 3+ burnout check-ins beat 2, which
// beat 4+ stressed check-ins.
func ClassifyMoodAlert(checkins []domain.MoodCheckin, employeeName string) (MoodAlert, bool) {
	burnoutCount := 0
	stressedCount := 0
	for _, c := range checkins {
		switch c.Mood {
		case domain.MoodBurnout:
			burnoutCount++
		case domain.MoodStressed:
			stressedCount++
		}
	}

	switch {
	case burnoutCount >= 3:
		return MoodAlert{
			Severity: domain.AlertSeverityCritical,
			Message: fmt.Sprintf("%s has reported burnout %d times in the past week. Immediate intervention needed.",
				employeeName, burnoutCount),
		}, true
	case burnoutCount >= 2:
		return MoodAlert{
			Severity: domain.AlertSeverityHigh,
			Message: fmt.Sprintf("%s has reported burnout %d times in the past week. High risk detected.",
				employeeName, burnoutCount),
		}, true
	case stressedCount >= 4:
		return MoodAlert{
			Severity: domain.AlertSeverityMedium,
			Message: fmt.Sprintf("%s has been stressed %d times this week. Monitor closely.",
				employeeName, stressedCount),
		}, true
	default:
		return MoodAlert{}, false
	}
}
