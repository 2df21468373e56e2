package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDailyReportRepository struct {
	BaseRepository
}

func newPgxDailyReportRepository(pool *pgxpool.Pool) portsrepo.DailyReportRepositoryFacade {
	return &PgxDailyReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DailyReportRepositoryFacade = (*PgxDailyReportRepository)(nil)

const dailyReportSelectQuery = `
SELECT
	report_id, workplace_id, goal_id, report_date, performance_value, progress_percent, description,
	created_at, created_by, last_updated_at, last_updated_by
FROM daily_reports
`

func (r *PgxDailyReportRepository) getReports(ctx context.Context, filterQuery string, args ...any) ([]domain.DailyReport, error) {
	rows, err := r.Pool.Query(ctx, dailyReportSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query daily reports", err)
	}
	defer rows.Close()
	reports, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DailyReport])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect daily report rows", err)
	}
	return mapping.ToDomainDailyReportSlice(reports), nil
}

func (r *PgxDailyReportRepository) FindDailyReportByID(ctx context.Context, workplaceID, reportID string) (*domain.DailyReport, error) {
	reports, err := r.getReports(ctx, `WHERE workplace_id = $1 AND report_id = $2`, workplaceID, reportID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, apperrors.NewNotFoundError("daily report " + reportID + " not found")
	}
	return &reports[0], nil
}

func (r *PgxDailyReportRepository) ListDailyReportsByGoals(ctx context.Context, workplaceID string, goalIDs []string) ([]domain.DailyReport, error) {
	if len(goalIDs) == 0 {
		return []domain.DailyReport{}, nil
	}
	return r.getReports(ctx, `WHERE workplace_id = $1 AND goal_id = ANY($2) ORDER BY report_date, created_at, report_id`,
		workplaceID, goalIDs)
}

const dailyReportInsertQuery = `
	INSERT INTO daily_reports (
		report_id, workplace_id, goal_id, report_date, performance_value, progress_percent, description,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func (r *PgxDailyReportRepository) SaveDailyReport(ctx context.Context, report domain.DailyReport, check portsrepo.DailyReportCheck) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if check != nil {
		// Serializes reports against one goal until commit.
		lock := `SELECT goal_id FROM goals WHERE workplace_id = $1 AND level = $2 AND goal_id = $3 FOR UPDATE;`
		var goalID string
		if err := tx.QueryRow(ctx, lock, report.WorkplaceID, string(domain.PersonalMonthly), report.GoalID).Scan(&goalID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("goal " + report.GoalID + " not found")
			}
			return apperrors.NewAppError(500, "failed to lock goal "+report.GoalID, err)
		}

		rows, err := tx.Query(ctx, dailyReportSelectQuery+`WHERE workplace_id = $1 AND goal_id = $2`, report.WorkplaceID, report.GoalID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query daily reports", err)
		}
		existing, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DailyReport])
		if err != nil {
			return apperrors.NewAppError(500, "failed to collect daily report rows", err)
		}
		if err := check(mapping.ToDomainDailyReportSlice(existing)); err != nil {
			return err
		}
	}

	m := mapping.ToModelDailyReport(report)
	_, err = tx.Exec(ctx, dailyReportInsertQuery,
		m.ReportID, m.WorkplaceID, m.GoalID, m.ReportDate, m.PerformanceValue, m.ProgressPercent, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("daily report " + report.ReportID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save daily report "+report.ReportID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxDailyReportRepository) DeleteDailyReport(ctx context.Context, workplaceID, reportID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM daily_reports WHERE workplace_id = $1 AND report_id = $2;`, workplaceID, reportID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete daily report "+reportID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("daily report " + reportID + " not found")
	}
	return nil
}
