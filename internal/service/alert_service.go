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

// alertWindow is the trailing period inspected for mood patterns and for
// alert deduplication.
const alertWindow = 7 * 24 * time.Hour

// AlertService runs the periodic burnout alert sweep.
type AlertService struct {
	moodRepo     *repository.MoodRepository
	alertRepo    *repository.AlertRepository
	employeeRepo *repository.EmployeeRepository
}

// NewAlertService creates a new AlertService.
func NewAlertService(
	moodRepo *repository.MoodRepository,
	alertRepo *repository.AlertRepository,
	employeeRepo *repository.EmployeeRepository,
) *AlertService {
	return &AlertService{
		moodRepo:     moodRepo,
		alertRepo:    alertRepo,
		employeeRepo: employeeRepo,
	}
}

// RunBurnoutSweep classifies every active employee's trailing-week moods
// and creates alerts for their team leads. At most one unacknowledged
// alert may exist per (employee, lead) pair within the trailing week.
// A failure for one employee is logged and skipped; the sweep continues.
// Returns the number of alerts created.
func (s *AlertService) RunBurnoutSweep(ctx context.Context, now time.Time) (int, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list employees: %w", err)
	}

	weekAgo := now.Add(-alertWindow)
	created := 0

	for _, emp := range employees {
		if !emp.HasTeam() {
			continue
		}

		n, err := s.sweepEmployee(ctx, emp, weekAgo)
		if err != nil {
			slog.Error("burnout sweep failed for employee",
				"employee_id", emp.ID,
				"error", err,
			)
			continue
		}
		created += n
	}

	slog.Info("burnout alert sweep completed",
		"employees_checked", len(employees),
		"alerts_created", created,
	)

	return created, nil
}

// sweepEmployee classifies one employee's recent moods and fans out
// alerts to their team leads, applying the dedup check before insert.
func (s *AlertService) sweepEmployee(ctx context.Context, emp domain.Employee, weekAgo time.Time) (int, error) {
	recent, err := s.moodRepo.ListByEmployeeSince(ctx, emp.ID, weekAgo)
	if err != nil {
		return 0, fmt.Errorf("list recent moods: %w", err)
	}

	alert, ok := scoring.ClassifyMoodAlert(recent, emp.Name)
	if !ok {
		return 0, nil
	}

	leads, err := s.employeeRepo.ListLeadsByTeam(ctx, *emp.TeamID)
	if err != nil {
		return 0, fmt.Errorf("list team leads: %w", err)
	}

	created := 0
	for _, lead := range leads {
		exists, err := s.alertRepo.HasOpenAlert(ctx, emp.ID, lead.ID, weekAgo)
		if err != nil {
			return created, fmt.Errorf("check open alert: %w", err)
		}
		if exists {
			continue
		}

		record := &domain.BurnoutAlert{
			EmployeeID: emp.ID,
			TeamID:     *emp.TeamID,
			LeadID:     lead.ID,
			Message:    alert.Message,
			Severity:   alert.Severity,
		}
		if _, err := s.alertRepo.Create(ctx, record); err != nil {
			return created, fmt.Errorf("create alert: %w", err)
		}
		created++

		slog.Info("burnout alert created",
			"employee_id", emp.ID,
			"lead_id", lead.ID,
			"severity", alert.Severity,
		)
	}

	return created, nil
}

// AcknowledgeAlert marks an alert acknowledged on behalf of its lead.
func (s *AlertService) AcknowledgeAlert(ctx context.Context, alertID, leadID string) error {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return err
	}
	if alert.LeadID != leadID {
		return domain.ErrNotAlertOwner
	}
	if alert.IsAcknowledged {
		return domain.ErrAlertAcknowledged
	}

	return s.alertRepo.Acknowledge(ctx, alertID)
}
