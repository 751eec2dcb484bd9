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

var suggestionColumns = []string{
	"id", "task_id", "suggested_priority", "current_priority", "reason",
	"confidence_score", "is_applied", "created_at",
}

// SuggestionRepository handles database operations for priority suggestions.
type SuggestionRepository struct {
	pool *pgxpool.Pool
}

// NewSuggestionRepository creates a new SuggestionRepository.
func NewSuggestionRepository(pool *pgxpool.Pool) *SuggestionRepository {
	return &SuggestionRepository{pool: pool}
}

// Create inserts a new priority suggestion.
func (r *SuggestionRepository) Create(ctx context.Context, s *domain.PrioritySuggestion) (*domain.PrioritySuggestion, error) {
	query, args, err := psql.
		Insert("priority_suggestions").
		Columns("task_id", "suggested_priority", "current_priority", "reason", "confidence_score").
		Values(s.TaskID, s.SuggestedPriority, s.CurrentPriority, s.Reason, s.ConfidenceScore).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for suggestion: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}

	return s, nil
}

// GetByID retrieves a single suggestion.
func (r *SuggestionRepository) GetByID(ctx context.Context, suggestionID string) (*domain.PrioritySuggestion, error) {
	query, args, err := psql.
		Select(suggestionColumns...).
		From("priority_suggestions").
		Where(sq.Eq{"id": suggestionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for suggestion: %w", err)
	}

	var s domain.PrioritySuggestion
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.TaskID, &s.SuggestedPriority, &s.CurrentPriority,
		&s.Reason, &s.ConfidenceScore, &s.IsApplied, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("query suggestion: %w", err)
	}
	return &s, nil
}

// ListByTask retrieves suggestions for a task, newest first.
func (r *SuggestionRepository) ListByTask(ctx context.Context, taskID string) ([]domain.PrioritySuggestion, error) {
	query, args, err := psql.
		Select(suggestionColumns...).
		From("priority_suggestions").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByTask query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []domain.PrioritySuggestion
	for rows.Next() {
		var s domain.PrioritySuggestion
		err := rows.Scan(
			&s.ID, &s.TaskID, &s.SuggestedPriority, &s.CurrentPriority,
			&s.Reason, &s.ConfidenceScore, &s.IsApplied, &s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return suggestions, nil
}

// MarkApplied flags a suggestion as applied to its task.
func (r *SuggestionRepository) MarkApplied(ctx context.Context, suggestionID string) error {
	query, args, err := psql.
		Update("priority_suggestions").
		Set("is_applied", true).
		Where(sq.Eq{"id": suggestionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build MarkApplied query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("mark suggestion applied: %w", err)
	}
	return nil
}
