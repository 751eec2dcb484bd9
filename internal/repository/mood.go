package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teampulse/teampulse/internal/domain"
)

var moodColumns = []string{
	"id", "employee_id", "team_id", "mood", "notes", "timestamp",
}

// MoodRepository handles database operations for mood check-ins.
type MoodRepository struct {
	pool *pgxpool.Pool
}

// NewMoodRepository creates a new MoodRepository.
func NewMoodRepository(pool *pgxpool.Pool) *MoodRepository {
	return &MoodRepository{pool: pool}
}

// Create inserts a new mood check-in. Check-ins are append-only.
func (r *MoodRepository) Create(ctx context.Context, checkin *domain.MoodCheckin) (*domain.MoodCheckin, error) {
	query, args, err := psql.
		Insert("mood_checkins").
		Columns("employee_id", "team_id", "mood", "notes").
		Values(checkin.EmployeeID, checkin.TeamID, checkin.Mood, checkin.Notes).
		Suffix("RETURNING id, timestamp").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for mood checkin: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&checkin.ID, &checkin.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("create mood checkin: %w", err)
	}

	return checkin, nil
}

// ListByEmployee retrieves an employee's check-ins in chronological
// order, limited to the most recent n entries.
func (r *MoodRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]domain.MoodCheckin, error) {
	// Inner query takes the newest entries, outer restores chronological order.
	inner := psql.
		Select(moodColumns...).
		From("mood_checkins").
		Where(sq.Eq{"employee_id": employeeID}).
		OrderBy("timestamp DESC").
		Limit(uint64(limit))

	query, args, err := psql.
		Select(moodColumns...).
		FromSelect(inner, "recent").
		OrderBy("timestamp ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByEmployee query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mood checkins: %w", err)
	}

	return scanCheckins(rows)
}

// ListByEmployeeSince retrieves check-ins after the given time in
// chronological order.
func (r *MoodRepository) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]domain.MoodCheckin, error) {
	query, args, err := psql.
		Select(moodColumns...).
		From("mood_checkins").
		Where(sq.Eq{"employee_id": employeeID}).
		Where(sq.GtOrEq{"timestamp": since}).
		OrderBy("timestamp ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByEmployeeSince query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mood checkins: %w", err)
	}

	return scanCheckins(rows)
}

func scanCheckins(rows pgx.Rows) ([]domain.MoodCheckin, error) {
	defer rows.Close()

	var checkins []domain.MoodCheckin
	for rows.Next() {
		var c domain.MoodCheckin
		err := rows.Scan(&c.ID, &c.EmployeeID, &c.TeamID, &c.Mood, &c.Notes, &c.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan mood checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return checkins, nil
}
