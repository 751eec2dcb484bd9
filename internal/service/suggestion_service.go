package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/repository"
	"github.com/teampulse/teampulse/internal/scoring"
)

// SuggestionService runs the periodic priority suggestion sweep.
type SuggestionService struct {
	taskRepo       *repository.TaskRepository
	suggestionRepo *repository.SuggestionRepository
	suggester      *scoring.Suggester
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(
	taskRepo *repository.TaskRepository,
	suggestionRepo *repository.SuggestionRepository,
) *SuggestionService {
	return &SuggestionService{
		taskRepo:       taskRepo,
		suggestionRepo: suggestionRepo,
		suggester:      scoring.NewSuggester(),
	}
}

// RunPrioritySweep analyzes every active task and records a suggestion
// whenever the computed priority differs from the current one. A failure
// for one task is logged and skipped; the sweep continues with the rest.
// Returns the number of suggestions created.
func (s *SuggestionService) RunPrioritySweep(ctx context.Context, today time.Time) (int, error) {
	tasks, err := s.taskRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active tasks: %w", err)
	}

	created := 0
	for _, task := range tasks {
		recorded, err := s.suggestForTask(ctx, task, today)
		if err != nil {
			slog.Error("priority analysis failed for task",
				"task_id", task.ID,
				"error", err,
			)
			continue
		}
		if recorded {
			created++
		}
	}

	slog.Info("priority suggestion sweep completed",
		"tasks_analyzed", len(tasks),
		"suggestions_created", created,
	)

	return created, nil
}

// ApplySuggestion sets the task's priority to the suggested one and marks
// the suggestion applied. Only the task's assignee or a lead of the task's
// team may apply it. Applying an already-applied suggestion is a no-op.
func (s *SuggestionService) ApplySuggestion(ctx context.Context, suggestionID string, applier *domain.Employee) (*domain.PrioritySuggestion, error) {
	suggestion, err := s.suggestionRepo.GetByID(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, suggestion.TaskID)
	if err != nil {
		return nil, err
	}

	isAssignee := applier.ID == task.AssigneeID
	isTeamLead := applier.IsLead && applier.HasTeam() && *applier.TeamID == task.TeamID
	if !isAssignee && !isTeamLead {
		return nil, domain.ErrNotSuggestionManager
	}

	if suggestion.IsApplied {
		return suggestion, nil
	}

	if err := s.taskRepo.UpdatePriority(ctx, task.ID, suggestion.SuggestedPriority); err != nil {
		return nil, fmt.Errorf("update task priority: %w", err)
	}
	if err := s.suggestionRepo.MarkApplied(ctx, suggestion.ID); err != nil {
		return nil, fmt.Errorf("mark suggestion applied: %w", err)
	}

	suggestion.IsApplied = true
	slog.Info("priority suggestion applied",
		"suggestion_id", suggestion.ID,
		"task_id", task.ID,
		"priority", suggestion.SuggestedPriority,
	)

	return suggestion, nil
}

// suggestForTask computes and conditionally records a suggestion for one
// task. Returns true when a suggestion was recorded.
func (s *SuggestionService) suggestForTask(ctx context.Context, task domain.Task, today time.Time) (bool, error) {
	otherActive, err := s.taskRepo.ListActiveByAssignee(ctx, task.AssigneeID, &task.ID)
	if err != nil {
		return false, fmt.Errorf("list assignee tasks: %w", err)
	}

	assigneeCount, err := s.taskRepo.CountByAssignee(ctx, task.AssigneeID)
	if err != nil {
		return false, fmt.Errorf("count assignee tasks: %w", err)
	}

	teamCount, err := s.taskRepo.CountByTeam(ctx, task.TeamID)
	if err != nil {
		return false, fmt.Errorf("count team tasks: %w", err)
	}

	suggestion := s.suggester.Suggest(task, scoring.WorkloadSnapshot{
		OtherActive:       otherActive,
		AssigneeTaskCount: assigneeCount,
		TeamTaskCount:     teamCount,
	}, today)

	// Only record suggestions that would actually change the priority.
	if suggestion.SuggestedPriority == task.Priority {
		return false, nil
	}

	record := &domain.PrioritySuggestion{
		TaskID:            task.ID,
		SuggestedPriority: suggestion.SuggestedPriority,
		CurrentPriority:   task.Priority,
		Reason:            suggestion.Reason,
		ConfidenceScore:   suggestion.ConfidenceScore,
	}
	if _, err := s.suggestionRepo.Create(ctx, record); err != nil {
		return false, fmt.Errorf("create suggestion: %w", err)
	}

	return true, nil
}
