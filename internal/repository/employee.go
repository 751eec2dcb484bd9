package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teampulse/teampulse/internal/domain"
)

var employeeColumns = []string{
	"id", "team_id", "name", "token", "is_lead", "is_active",
	"department", "job_title", "created_at",
}

// EmployeeRepository handles database operations for employees.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.TeamID, &e.Name, &e.Token, &e.IsLead, &e.IsActive,
		&e.Department, &e.JobTitle, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return &e, nil
}

func scanEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return employees, nil
}

// GetByID retrieves an employee by ID.
func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query, args, err := psql.
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"id": employeeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for employee: %w", err)
	}

	return scanEmployee(r.pool.QueryRow(ctx, query, args...))
}

// GetByToken finds an employee by authentication token.
func (r *EmployeeRepository) GetByToken(ctx context.Context, token string) (*domain.Employee, error) {
	query, args, err := psql.
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByToken query: %w", err)
	}

	return scanEmployee(r.pool.QueryRow(ctx, query, args...))
}

// ListActive retrieves all active employees, used by the alert sweep.
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]domain.Employee, error) {
	query, args, err := psql.
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListActive query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}

	return scanEmployees(rows)
}

// ListLeadsByTeam retrieves the active team leads of a team.
func (r *EmployeeRepository) ListLeadsByTeam(ctx context.Context, teamID string) ([]domain.Employee, error) {
	query, args, err := psql.
		Select(employeeColumns...).
		From("employees").
		Where(sq.Eq{"team_id": teamID, "is_lead": true, "is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListLeadsByTeam query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query team leads: %w", err)
	}

	return scanEmployees(rows)
}
