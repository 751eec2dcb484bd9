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

// TeamRepository handles database operations for teams.
type TeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// GetByID retrieves a team by ID.
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query, args, err := psql.
		Select("id", "name", "join_code", "created_at").
		From("teams").
		Where(sq.Eq{"id": teamID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for team: %w", err)
	}

	var team domain.Team
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&team.ID, &team.Name, &team.JoinCode, &team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("query team: %w", err)
	}

	return &team, nil
}
