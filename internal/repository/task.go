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

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "team_id", "assignee_id", "creator_id", "title", "description",
	"status", "priority", "due_date", "created_at", "updated_at",
}

// activeStatuses are the statuses of tasks that still require work.
var activeStatuses = []domain.TaskStatus{
	domain.TaskStatusPending,
	domain.TaskStatusInProgress,
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.TeamID,
		&task.AssigneeID,
		&task.CreatorID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]domain.Task, error) {
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	query, args, err := psql.
		Insert("tasks").
		Columns("team_id", "assignee_id", "creator_id", "title", "description",
			"status", "priority", "due_date").
		Values(task.TeamID, task.AssigneeID, task.CreatorID, task.Title,
			task.Description, task.Status, task.Priority, task.DueDate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for task: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// UpdatePriority sets a task's priority.
func (r *TaskRepository) UpdatePriority(ctx context.Context, taskID string, priority domain.TaskPriority) error {
	query, args, err := psql.
		Update("tasks").
		Set("priority", priority).
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build UpdatePriority query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update task priority: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// ListByAssignee retrieves every task assigned to an employee.
func (r *TaskRepository) ListByAssignee(ctx context.Context, employeeID string) ([]domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"assignee_id": employeeID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAssignee query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by assignee: %w", err)
	}

	return scanTasks(rows)
}

// ListActiveByAssignee retrieves an employee's pending and in_progress
// tasks, optionally excluding one task (the task under analysis).
func (r *TaskRepository) ListActiveByAssignee(ctx context.Context, employeeID string, excludeTaskID *string) ([]domain.Task, error) {
	qb := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"assignee_id": employeeID}).
		Where(sq.Eq{"status": activeStatuses})
	if excludeTaskID != nil {
		qb = qb.Where(sq.NotEq{"id": *excludeTaskID})
	}

	query, args, err := qb.OrderBy("due_date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListActiveByAssignee query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query active tasks: %w", err)
	}

	return scanTasks(rows)
}

// ListActive retrieves all pending and in_progress tasks across teams,
// used by the priority suggestion sweep.
func (r *TaskRepository) ListActive(ctx context.Context) ([]domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"status": activeStatuses}).
		OrderBy("due_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListActive query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query active tasks: %w", err)
	}

	return scanTasks(rows)
}

// ListActiveDueWithin retrieves active tasks due between today and the
// given horizon, used by the reminder sweep.
func (r *TaskRepository) ListActiveDueWithin(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"status": activeStatuses}).
		Where(sq.GtOrEq{"due_date": from}).
		Where(sq.LtOrEq{"due_date": to}).
		OrderBy("due_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListActiveDueWithin query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query due tasks: %w", err)
	}

	return scanTasks(rows)
}

// ListByTeam retrieves every task belonging to a team.
func (r *TaskRepository) ListByTeam(ctx context.Context, teamID string) ([]domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByTeam query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks by team: %w", err)
	}

	return scanTasks(rows)
}

// CountByAssignee counts all tasks assigned to an employee.
func (r *TaskRepository) CountByAssignee(ctx context.Context, employeeID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("tasks").
		Where(sq.Eq{"assignee_id": employeeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build CountByAssignee query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks by assignee: %w", err)
	}
	return count, nil
}

// CountByTeam counts all tasks belonging to a team.
func (r *TaskRepository) CountByTeam(ctx context.Context, teamID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("tasks").
		Where(sq.Eq{"team_id": teamID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build CountByTeam query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count tasks by team: %w", err)
	}
	return count, nil
}
