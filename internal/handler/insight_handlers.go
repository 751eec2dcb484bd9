package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/teampulse/teampulse/internal/handler/dto"
	"github.com/teampulse/teampulse/internal/middleware"
	"github.com/teampulse/teampulse/internal/scoring"
)

// handleEmployeeBurnout computes an employee's current burnout score.
// @Summary Get employee burnout score
// @Description Computes the burnout score from the employee's current task load, with its qualitative risk band.
// @Tags insights
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.BurnoutResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/burnout [get]
func (h *Handler) handleEmployeeBurnout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, ok := extractPathID(w, r, "employee id")
	if !ok {
		return
	}

	result, err := h.insightService.EmployeeBurnout(ctx, employeeID, time.Now().UTC())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToBurnoutResponse(result))
}

// handleEmployeeTrend predicts an employee's mood trend.
// @Summary Get employee mood trend
// @Description Predicts the burnout trend from the employee's mood check-in history.
// @Tags insights
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.TrendResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/trend [get]
func (h *Handler) handleEmployeeTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, ok := extractPathID(w, r, "employee id")
	if !ok {
		return
	}

	report, err := h.insightService.MoodTrend(ctx, employeeID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTrendResponse(report))
}

// handleEmployeeProductivity computes an employee's productivity metrics.
// @Summary Get employee productivity
// @Description Computes the employee's completion rate over the window, discounted by their burnout score.
// @Tags insights
// @Produce json
// @Param id path string true "Employee ID"
// @Param window_days query int false "Lookback window in days (default 30)"
// @Success 200 {object} dto.EmployeeProductivityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/productivity [get]
func (h *Handler) handleEmployeeProductivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employeeID, ok := extractPathID(w, r, "employee id")
	if !ok {
		return
	}

	windowDays, ok := extractWindowDays(w, r)
	if !ok {
		return
	}

	result, err := h.insightService.EmployeeProductivity(ctx, employeeID, windowDays, time.Now().UTC())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.EmployeeProductivityResponse{
		EmployeeID:           employeeID,
		WindowDays:           windowDays,
		TotalTasks:           result.TotalTasks,
		CompletedTasks:       result.CompletedTasks,
		CompletionRate:       result.CompletionRate,
		BurnoutScore:         result.BurnoutScore,
		AdjustedProductivity: result.AdjustedProductivity,
	})
}

// handleTeamProductivity computes a team's productivity metrics.
// @Summary Get team productivity
// @Description Aggregates the team's throughput over the window and records the result as an insight report.
// @Tags insights
// @Produce json
// @Param id path string true "Team ID"
// @Param window_days query int false "Lookback window in days (default 30)"
// @Success 200 {object} dto.TeamProductivityResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/productivity [get]
func (h *Handler) handleTeamProductivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employee, err := middleware.GetEmployeeFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	teamID, ok := extractPathID(w, r, "team id")
	if !ok {
		return
	}

	windowDays, ok := extractWindowDays(w, r)
	if !ok {
		return
	}

	result, err := h.insightService.TeamProductivity(ctx, teamID, employee.ID, windowDays, time.Now().UTC())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamProductivityResponse{
		TeamID:            teamID,
		WindowDays:        windowDays,
		TotalTasks:        result.TotalTasks,
		CompletedTasks:    result.CompletedTasks,
		CompletionRate:    result.CompletionRate,
		AvgCompletionDays: result.AvgCompletionDays,
		ProductivityScore: result.ProductivityScore,
	})
}

// defaultReportsLimit bounds how many reports a listing returns unless the
// caller asks for more.
const defaultReportsLimit = 10

// handleListTeamReports lists a team's persisted insight reports.
// @Summary List team insight reports
// @Description Returns the team's persisted insight reports, newest first.
// @Tags insights
// @Produce json
// @Param id path string true "Team ID"
// @Param limit query int false "Maximum reports to return (default 10)"
// @Success 200 {object} dto.ReportsListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/reports [get]
func (h *Handler) handleListTeamReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	teamID, ok := extractPathID(w, r, "team id")
	if !ok {
		return
	}

	limit := defaultReportsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	if _, err := h.teamRepo.GetByID(ctx, teamID); err != nil {
		respondDomainError(w, err)
		return
	}

	reports, err := h.reportRepo.ListByTeam(ctx, teamID, limit)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	items := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		items = append(items, dto.ToReportResponse(report))
	}

	respondJSON(w, http.StatusOK, dto.ReportsListResponse{
		Reports: items,
		Total:   len(items),
	})
}

// handleTaskSuggestion computes an on-demand priority suggestion.
// @Summary Get task priority suggestion
// @Description Analyzes one task's urgency, complexity and the assignee's workload without persisting the result.
// @Tags insights
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/suggestion [get]
func (h *Handler) handleTaskSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractPathID(w, r, "task id")
	if !ok {
		return
	}

	suggestion, err := h.insightService.AnalyzeTask(ctx, taskID, time.Now().UTC())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SuggestionResponse{
		TaskID:            taskID,
		SuggestedPriority: string(suggestion.SuggestedPriority),
		Reason:            suggestion.Reason,
		ConfidenceScore:   suggestion.ConfidenceScore,
		PriorityScore:     suggestion.PriorityScore,
	})
}

// extractWindowDays parses the optional window_days query parameter.
// Returns (days, true) on success, (0, false) if invalid (error already
// sent to client).
func extractWindowDays(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("window_days")
	if raw == "" {
		return scoring.DefaultProductivityWindowDays, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 || days > 365 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "window_days must be an integer between 1 and 365")
		return 0, false
	}
	return days, true
}
