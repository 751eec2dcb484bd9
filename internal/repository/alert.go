package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teampulse/teampulse/internal/domain"
)

var alertColumns = []string{
	"id", "employee_id", "team_id", "lead_id", "message", "severity",
	"is_acknowledged", "acknowledged_at", "created_at",
}

// AlertRepository handles database operations for burnout alerts.
type AlertRepository struct {
	pool *pgxpool.Pool
}

// NewAlertRepository creates a new AlertRepository.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

// Create inserts a new burnout alert.
func (r *AlertRepository) Create(ctx context.Context, alert *domain.BurnoutAlert) (*domain.BurnoutAlert, error) {
	query, args, err := psql.
		Insert("burnout_alerts").
		Columns("employee_id", "team_id", "lead_id", "message", "severity").
		Values(alert.EmployeeID, alert.TeamID, alert.LeadID, alert.Message, alert.Severity).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for alert: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}

	return alert, nil
}

// HasOpenAlert reports whether an unacknowledged alert already exists for
// the (employee, lead) pair since the given time. The alert sweep calls
// this before insert to keep at most one open alert per pair per week.
func (r *AlertRepository) HasOpenAlert(ctx context.Context, employeeID, leadID string, since time.Time) (bool, error) {
	query, args, err := psql.
		Select("1").
		From("burnout_alerts").
		Where(sq.Eq{
			"employee_id":     employeeID,
			"lead_id":         leadID,
			"is_acknowledged": false,
		}).
		Where(sq.GtOrEq{"created_at": since}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build HasOpenAlert query: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query open alert: %w", err)
	}
	return true, nil
}

// ListByLead retrieves alerts addressed to a team lead, newest first.
func (r *AlertRepository) ListByLead(ctx context.Context, leadID string, unacknowledgedOnly bool) ([]domain.BurnoutAlert, error) {
	qb := psql.
		Select(alertColumns...).
		From("burnout_alerts").
		Where(sq.Eq{"lead_id": leadID})
	if unacknowledgedOnly {
		qb = qb.Where(sq.Eq{"is_acknowledged": false})
	}

	query, args, err := qb.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByLead query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.BurnoutAlert
	for rows.Next() {
		var a domain.BurnoutAlert
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.TeamID, &a.LeadID, &a.Message,
			&a.Severity, &a.IsAcknowledged, &a.AcknowledgedAt, &a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return alerts, nil
}

// GetByID retrieves a single alert.
func (r *AlertRepository) GetByID(ctx context.Context, alertID string) (*domain.BurnoutAlert, error) {
	query, args, err := psql.
		Select(alertColumns...).
		From("burnout_alerts").
		Where(sq.Eq{"id": alertID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for alert: %w", err)
	}

	var a domain.BurnoutAlert
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.EmployeeID, &a.TeamID, &a.LeadID, &a.Message,
		&a.Severity, &a.IsAcknowledged, &a.AcknowledgedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("query alert: %w", err)
	}
	return &a, nil
}

// Acknowledge marks an alert as acknowledged.
func (r *AlertRepository) Acknowledge(ctx context.Context, alertID string) error {
	query, args, err := psql.
		Update("burnout_alerts").
		Set("is_acknowledged", true).
		Set("acknowledged_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": alertID, "is_acknowledged": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Acknowledge query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}
