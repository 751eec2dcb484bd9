package scoring

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/teampulse/teampulse/internal/domain"
)

// Suggestion is a computed priority recommendation for a single task.
type Suggestion struct {
	SuggestedPriority domain.TaskPriority
	Reason            string
	ConfidenceScore   float64
	PriorityScore     float64
}

// WorkloadSnapshot describes the assignee's and team's task counts at the
// time of analysis. OtherActive excludes the task under analysis.
type WorkloadSnapshot struct {
	OtherActive       []domain.Task
	AssigneeTaskCount int
	TeamTaskCount     int
}

// Suggester computes priority suggestions from deadline urgency, estimated
// complexity, and assignee workload. Keyword lists are injectable for
// tuning; NewSuggester installs the defaults.
type Suggester struct {
	ComplexKeywords []string
	SimpleKeywords  []string

	deadlineWeight   float64
	complexityWeight float64
	workloadWeight   float64
	// dependencyWeight is declared in the original weighting scheme but no
	// dependency signal is computed, so the combination is effectively
	// renormalized over the other three factors. Kept for documentation;
	// see DESIGN.md open questions.
	dependencyWeight float64
}

// NewSuggester creates a Suggester with the default keyword lists and
// weights.
func NewSuggester() *Suggester {
	return &Suggester{
		ComplexKeywords: []string{
			"implement", "develop", "architect", "design", "integrate",
			"analyze", "research", "optimize", "refactor", "migration",
		},
		SimpleKeywords: []string{
			"update", "fix", "change", "modify", "review", "check",
		},
		deadlineWeight:   0.35,
		complexityWeight: 0.20,
		workloadWeight:   0.25,
		dependencyWeight: 0.20,
	}
}

// Suggest analyzes a task against the assignee's workload snapshot and
// returns a priority suggestion with reason and confidence. The result is
// only worth recording when SuggestedPriority differs from the task's
// current priority; that decision belongs to the caller.
func (s *Suggester) Suggest(task domain.Task, workload WorkloadSnapshot, today time.Time) Suggestion {
	deadlineScore := DeadlineUrgency(task.DueDate, today)
	complexityScore := s.ComplexityEstimate(task.Title, task.Description)
	workloadScore := WorkloadScore(workload.OtherActive)

	score := deadlineScore*s.deadlineWeight +
		complexityScore*s.complexityWeight +
		workloadScore*s.workloadWeight

	suggested := scoreToPriority(score)

	return Suggestion{
		SuggestedPriority: suggested,
		Reason:            buildReason(deadlineScore, complexityScore, workloadScore, task.Priority, suggested),
		ConfidenceScore:   confidence(task.Description, workload.AssigneeTaskCount, workload.TeamTaskCount),
		PriorityScore:     score,
	}
}

// DeadlineUrgency scores how close a task is to its due date: overdue 100,
// within 2 days 90, a week 70, two weeks 50, a month 30, further out 10.
func DeadlineUrgency(dueDate, today time.Time) float64 {
	days := daysBetween(today, dueDate)

	switch {
	case days < 0:
		return 100
	case days <= 2:
		return 90
	case days <= 7:
		return 70
	case days <= 14:
		return 50
	case days <= 30:
		return 30
	default:
		return 10
	}
}

// ComplexityEstimate scores task complexity from keyword occurrence and
// combined text length, starting from a base of 50 and clamped to [0,100].
func (s *Suggester) ComplexityEstimate(title, description string) float64 {
	text := strings.ToLower(description + title)
	// Length bands count characters, not bytes.
	textLength := utf8.RuneCountInString(description) + utf8.RuneCountInString(title)

	score := 50.0
	for _, kw := range s.ComplexKeywords {
		if strings.Contains(text, kw) {
			score += 5
		}
	}
	for _, kw := range s.SimpleKeywords {
		if strings.Contains(text, kw) {
			score -= 3
		}
	}

	switch {
	case textLength > 500:
		score += 20
	case textLength > 200:
		score += 10
	case textLength < 50:
		score -= 10
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// WorkloadScore scores the assignee's concurrent load: 10 points per other
// active task plus 15 per other high-priority task, capped at 100.
func WorkloadScore(otherActive []domain.Task) float64 {
	highCount := 0
	for _, t := range otherActive {
		if t.Priority == domain.TaskPriorityHigh {
			highCount++
		}
	}

	score := float64(len(otherActive)*10 + highCount*15)
	if score > 100 {
		return 100
	}
	return score
}

// scoreToPriority maps a weighted score to a priority level.
func scoreToPriority(score float64) domain.TaskPriority {
	switch {
	case score >= 70:
		return domain.TaskPriorityHigh
	case score >= 40:
		return domain.TaskPriorityMedium
	default:
		return domain.TaskPriorityLow
	}
}

// buildReason concatenates the canned sentences that apply to each
// sub-score band and to a priority change, matching the product wording.
func buildReason(deadlineScore, complexityScore, workloadScore float64, current, suggested domain.TaskPriority) string {
	var reasons []string

	switch {
	case deadlineScore >= 90:
		reasons = append(reasons, "Task deadline is imminent or overdue")
	case deadlineScore >= 70:
		reasons = append(reasons, "Task is due within a week")
	case deadlineScore <= 20:
		reasons = append(reasons, "Deadline is far in the future")
	}

	switch {
	case complexityScore >= 70:
		reasons = append(reasons, "Task appears highly complex")
	case complexityScore >= 50:
		reasons = append(reasons, "Task has moderate complexity")
	}

	switch {
	case workloadScore >= 70:
		reasons = append(reasons, "Employee has high workload")
	case workloadScore >= 40:
		reasons = append(reasons, "Employee has moderate workload")
	}

	if suggested != current {
		switch suggested {
		case domain.TaskPriorityHigh:
			reasons = append(reasons, "Recommend upgrading to HIGH priority")
		case domain.TaskPriorityLow:
			reasons = append(reasons, "Consider downgrading to LOW priority")
		}
	}

	return strings.Join(reasons, ". ") + "."
}

// confidence starts at 0.5 and grows with available supporting data,
// capped at 1.0.
func confidence(description string, assigneeTaskCount, teamTaskCount int) float64 {
	c := 0.5
	if utf8.RuneCountInString(description) > 50 {
		c += 0.2
	}
	if assigneeTaskCount > 5 {
		c += 0.15
	}
	if teamTaskCount > 10 {
		c += 0.15
	}
	if c > 1.0 {
		return 1.0
	}
	return c
}
