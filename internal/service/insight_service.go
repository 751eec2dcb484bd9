package service

import (
	"context"
	"fmt"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/repository"
	"github.com/teampulse/teampulse/internal/scoring"
)

// trendHistoryLimit bounds how many check-ins are loaded for trend
// prediction; the predictor itself only looks at the most recent 28.
const trendHistoryLimit = 28

// BurnoutResult pairs a burnout score with its qualitative band.
type BurnoutResult struct {
	EmployeeID  string
	Score       int
	Band        scoring.RiskBand
	Description string
	TaskCount   int
}

// InsightService computes on-demand analyses by loading a snapshot from
// the repositories and delegating to the pure scoring functions.
type InsightService struct {
	taskRepo     *repository.TaskRepository
	moodRepo     *repository.MoodRepository
	employeeRepo *repository.EmployeeRepository
	teamRepo     *repository.TeamRepository
	reportRepo   *repository.ReportRepository
	suggester    *scoring.Suggester
}

// NewInsightService creates a new InsightService.
func NewInsightService(
	taskRepo *repository.TaskRepository,
	moodRepo *repository.MoodRepository,
	employeeRepo *repository.EmployeeRepository,
	teamRepo *repository.TeamRepository,
	reportRepo *repository.ReportRepository,
) *InsightService {
	return &InsightService{
		taskRepo:     taskRepo,
		moodRepo:     moodRepo,
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
		reportRepo:   reportRepo,
		suggester:    scoring.NewSuggester(),
	}
}

// EmployeeBurnout computes the current burnout score for an employee.
func (s *InsightService) EmployeeBurnout(ctx context.Context, employeeID string, today time.Time) (*BurnoutResult, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByAssignee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	score := scoring.BurnoutScore(tasks, today)
	band := scoring.BandForScore(score)

	return &BurnoutResult{
		EmployeeID:  employeeID,
		Score:       score,
		Band:        band,
		Description: band.Describe(),
		TaskCount:   len(tasks),
	}, nil
}

// MoodTrend predicts an employee's burnout trend from their mood history.
func (s *InsightService) MoodTrend(ctx context.Context, employeeID string) (*scoring.TrendReport, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	history, err := s.moodRepo.ListByEmployee(ctx, employeeID, trendHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list mood checkins: %w", err)
	}

	report := scoring.PredictMoodTrend(history)
	return &report, nil
}

// AnalyzeTask computes a priority suggestion for a single task without
// persisting it.
func (s *InsightService) AnalyzeTask(ctx context.Context, taskID string, today time.Time) (*scoring.Suggestion, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	workload, err := s.loadWorkload(ctx, task)
	if err != nil {
		return nil, err
	}

	suggestion := s.suggester.Suggest(*task, *workload, today)
	return &suggestion, nil
}

// TeamProductivity aggregates a team's productivity over the window and
// persists the result as an insight report.
func (s *InsightService) TeamProductivity(ctx context.Context, teamID, requestedBy string, windowDays int, now time.Time) (*scoring.TeamProductivity, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team tasks: %w", err)
	}

	result := scoring.CalculateTeamProductivity(tasks, windowDays, now)

	report := &domain.InsightReport{
		TeamID:      teamID,
		GeneratedBy: requestedBy,
		ReportType:  domain.ReportTypeProductivity,
		Summary: fmt.Sprintf("Completed %d of %d tasks (%.1f%%) over %d days, avg %.1f days to complete.",
			result.CompletedTasks, result.TotalTasks, result.CompletionRate,
			windowDays, result.AvgCompletionDays),
		ProductivityScore: result.ProductivityScore,
	}
	if _, err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}

	return &result, nil
}

// EmployeeProductivity computes an individual's productivity, adjusted by
// their burnout score.
func (s *InsightService) EmployeeProductivity(ctx context.Context, employeeID string, windowDays int, now time.Time) (*scoring.EmployeeProductivity, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByAssignee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	result := scoring.CalculateEmployeeProductivity(tasks, windowDays, now)
	return &result, nil
}

// loadWorkload assembles the workload snapshot for a task's assignee.
func (s *InsightService) loadWorkload(ctx context.Context, task *domain.Task) (*scoring.WorkloadSnapshot, error) {
	otherActive, err := s.taskRepo.ListActiveByAssignee(ctx, task.AssigneeID, &task.ID)
	if err != nil {
		return nil, fmt.Errorf("list assignee tasks: %w", err)
	}

	assigneeCount, err := s.taskRepo.CountByAssignee(ctx, task.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("count assignee tasks: %w", err)
	}

	teamCount, err := s.taskRepo.CountByTeam(ctx, task.TeamID)
	if err != nil {
		return nil, fmt.Errorf("count team tasks: %w", err)
	}

	return &scoring.WorkloadSnapshot{
		OtherActive:       otherActive,
		AssigneeTaskCount: assigneeCount,
		TeamTaskCount:     teamCount,
	}, nil
}
