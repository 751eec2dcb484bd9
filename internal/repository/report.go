package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teampulse/teampulse/internal/domain"
)

// ReportRepository handles database operations for insight reports.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Create inserts a new insight report.
func (r *ReportRepository) Create(ctx context.Context, report *domain.InsightReport) (*domain.InsightReport, error) {
	query, args, err := psql.
		Insert("insight_reports").
		Columns("team_id", "generated_by", "report_type", "summary", "productivity_score").
		Values(report.TeamID, report.GeneratedBy, report.ReportType, report.Summary, report.ProductivityScore).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for report: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	return report, nil
}

// ListByTeam retrieves a team's reports, newest first.
func (r *ReportRepository) ListByTeam(ctx context.Context, teamID string, limit int) ([]domain.InsightReport, error) {
	query, args, err := psql.
		Select("id", "team_id", "generated_by", "report_type", "summary",
			"productivity_score", "created_at").
		From("insight_reports").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByTeam query for reports: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.InsightReport
	for rows.Next() {
		var rep domain.InsightReport
		err := rows.Scan(
			&rep.ID, &rep.TeamID, &rep.GeneratedBy, &rep.ReportType,
			&rep.Summary, &rep.ProductivityScore, &rep.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return reports, nil
}
