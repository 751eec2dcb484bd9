package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teampulse/teampulse/internal/repository"
)

// ReminderService finds tasks due soon. Notification delivery is handled
// by external collaborators; this service only identifies and logs them.
type ReminderService struct {
	taskRepo *repository.TaskRepository
}

// NewReminderService creates a new ReminderService.
func NewReminderService(taskRepo *repository.TaskRepository) *ReminderService {
	return &ReminderService{taskRepo: taskRepo}
}

// RunReminderSweep logs a reminder for every active task due within the
// next 24 hours. Returns the number of reminders issued.
func (s *ReminderService) RunReminderSweep(ctx context.Context, now time.Time) (int, error) {
	upcoming, err := s.taskRepo.ListActiveDueWithin(ctx, now, now.AddDate(0, 0, 1))
	if err != nil {
		return 0, fmt.Errorf("list upcoming tasks: %w", err)
	}

	for _, task := range upcoming {
		slog.Info("task due soon",
			"task_id", task.ID,
			"assignee_id", task.AssigneeID,
			"title", task.Title,
			"due_date", task.DueDate.Format("2006-01-02"),
		)
	}

	slog.Info("reminder sweep completed", "reminders", len(upcoming))
	return len(upcoming), nil
}
