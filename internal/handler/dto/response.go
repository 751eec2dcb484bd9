package dto

import (
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/scoring"
	"github.com/teampulse/teampulse/internal/service"
)

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"team_id"`
	AssigneeID  string    `json:"assignee_id"`
	CreatorID   string    `json:"creator_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TasksListResponse represents the response for GET /tasks.
type TasksListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// BurnoutResponse represents an employee burnout score.
type BurnoutResponse struct {
	EmployeeID  string `json:"employee_id"`
	Score       int    `json:"score"`
	RiskBand    string `json:"risk_band"`
	Description string `json:"description"`
	TaskCount   int    `json:"task_count"`
}

// TrendResponse represents a mood trend prediction.
type TrendResponse struct {
	Prediction     string  `json:"prediction"`
	RiskLevel      string  `json:"risk_level"`
	Recommendation string  `json:"recommendation"`
	TrendSlope     float64 `json:"trend_slope"`
	CurrentScore   float64 `json:"current_score"`
}

// SuggestionResponse represents an on-demand priority suggestion.
type SuggestionResponse struct {
	TaskID            string  `json:"task_id"`
	SuggestedPriority string  `json:"suggested_priority"`
	Reason            string  `json:"reason"`
	ConfidenceScore   float64 `json:"confidence_score"`
	PriorityScore     float64 `json:"priority_score"`
}

// TeamProductivityResponse represents team productivity metrics.
type TeamProductivityResponse struct {
	TeamID            string  `json:"team_id"`
	WindowDays        int     `json:"window_days"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	CompletionRate    float64 `json:"completion_rate"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
	ProductivityScore float64 `json:"productivity_score"`
}

// EmployeeProductivityResponse represents individual productivity metrics.
type EmployeeProductivityResponse struct {
	EmployeeID           string  `json:"employee_id"`
	WindowDays           int     `json:"window_days"`
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	CompletionRate       float64 `json:"completion_rate"`
	BurnoutScore         int     `json:"burnout_score"`
	AdjustedProductivity float64 `json:"adjusted_productivity"`
}

// AlertResponse represents a burnout alert.
type AlertResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	TeamID         string     `json:"team_id"`
	Message        string     `json:"message"`
	Severity       string     `json:"severity"`
	IsAcknowledged bool       `json:"is_acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AlertsListResponse represents the response for GET /alerts.
type AlertsListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Total  int             `json:"total"`
}

// PrioritySuggestionResponse represents a recorded priority suggestion.
type PrioritySuggestionResponse struct {
	ID                string    `json:"id"`
	TaskID            string    `json:"task_id"`
	SuggestedPriority string    `json:"suggested_priority"`
	CurrentPriority   string    `json:"current_priority"`
	Reason            string    `json:"reason"`
	ConfidenceScore   float64   `json:"confidence_score"`
	IsApplied         bool      `json:"is_applied"`
	CreatedAt         time.Time `json:"created_at"`
}

// SuggestionsListResponse represents the response for GET /tasks/{id}/suggestions.
type SuggestionsListResponse struct {
	Suggestions []PrioritySuggestionResponse `json:"suggestions"`
	Total       int                          `json:"total"`
}

// ReportResponse represents a persisted insight report.
type ReportResponse struct {
	ID                string    `json:"id"`
	TeamID            string    `json:"team_id"`
	GeneratedBy       string    `json:"generated_by"`
	ReportType        string    `json:"report_type"`
	Summary           string    `json:"summary"`
	ProductivityScore float64   `json:"productivity_score"`
	CreatedAt         time.Time `json:"created_at"`
}

// ReportsListResponse represents the response for GET /teams/{id}/reports.
type ReportsListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}

// MoodCheckinResponse represents a recorded mood check-in.
type MoodCheckinResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Mood       string    `json:"mood"`
	Notes      string    `json:"notes"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		TeamID:      task.TeamID,
		AssigneeID:  task.AssigneeID,
		CreatorID:   task.CreatorID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate.Format("2006-01-02"),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToBurnoutResponse converts a service.BurnoutResult to BurnoutResponse.
func ToBurnoutResponse(result *service.BurnoutResult) BurnoutResponse {
	return BurnoutResponse{
		EmployeeID:  result.EmployeeID,
		Score:       result.Score,
		RiskBand:    string(result.Band),
		Description: result.Description,
		TaskCount:   result.TaskCount,
	}
}

// ToTrendResponse converts a scoring.TrendReport to TrendResponse.
func ToTrendResponse(report *scoring.TrendReport) TrendResponse {
	return TrendResponse{
		Prediction:     report.Prediction,
		RiskLevel:      report.RiskLevel,
		Recommendation: report.Recommendation,
		TrendSlope:     report.Slope,
		CurrentScore:   report.CurrentScore,
	}
}

// ToPrioritySuggestionResponse converts domain.PrioritySuggestion to
// PrioritySuggestionResponse.
func ToPrioritySuggestionResponse(s domain.PrioritySuggestion) PrioritySuggestionResponse {
	return PrioritySuggestionResponse{
		ID:                s.ID,
		TaskID:            s.TaskID,
		SuggestedPriority: string(s.SuggestedPriority),
		CurrentPriority:   string(s.CurrentPriority),
		Reason:            s.Reason,
		ConfidenceScore:   s.ConfidenceScore,
		IsApplied:         s.IsApplied,
		CreatedAt:         s.CreatedAt,
	}
}

// ToReportResponse converts domain.InsightReport to ReportResponse.
func ToReportResponse(r domain.InsightReport) ReportResponse {
	return ReportResponse{
		ID:                r.ID,
		TeamID:            r.TeamID,
		GeneratedBy:       r.GeneratedBy,
		ReportType:        string(r.ReportType),
		Summary:           r.Summary,
		ProductivityScore: r.ProductivityScore,
		CreatedAt:         r.CreatedAt,
	}
}

// ToAlertResponse converts domain.BurnoutAlert to AlertResponse.
func ToAlertResponse(alert domain.BurnoutAlert) AlertResponse {
	return AlertResponse{
		ID:             alert.ID,
		EmployeeID:     alert.EmployeeID,
		TeamID:         alert.TeamID,
		Message:        alert.Message,
		Severity:       string(alert.Severity),
		IsAcknowledged: alert.IsAcknowledged,
		AcknowledgedAt: alert.AcknowledgedAt,
		CreatedAt:      alert.CreatedAt,
	}
}
