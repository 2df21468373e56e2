package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGoalRepository stores all three goal levels in the goals table.
type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryWithTx {
	return &PgxGoalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GoalRepositoryWithTx = (*PgxGoalRepository)(nil)

const goalSelectQuery = `
SELECT
	g.goal_id, g.workplace_id, g.level, g.title, g.target_value, g.unit, g.parent_id,
	g.year, g.month, g.department_id, g.user_id, g.ratio, g.remark, g.status, g.deleted_at,
	g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
FROM goals g
`

const goalInsertQuery = `
	INSERT INTO goals (
		goal_id, workplace_id, level, title, target_value, unit, parent_id,
		year, month, department_id, user_id, ratio, remark, status, deleted_at,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

const quarterInsertQuery = `
	INSERT INTO goal_quarters (workplace_id, goal_id, quarter, target_value, percentage)
	VALUES ($1, $2, $3, $4, $5);
`

func queueGoalInsert(batch *pgx.Batch, goal domain.GoalNode) {
	m := mapping.ToModelGoal(goal)
	batch.Queue(goalInsertQuery,
		m.GoalID, m.WorkplaceID, m.Level, m.Title, m.TargetValue, m.Unit, m.ParentID,
		m.Year, m.Month, m.DepartmentID, m.UserID, m.Ratio, m.Remark, m.Status, m.DeletedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	for _, q := range mapping.ToModelGoalQuarters(goal) {
		batch.Queue(quarterInsertQuery, q.WorkplaceID, q.GoalID, q.Quarter, q.TargetValue, q.Percentage)
	}
}

func (r *PgxGoalRepository) getGoals(ctx context.Context, filterQuery string, args ...any) ([]models.Goal, error) {
	rows, err := r.Pool.Query(ctx, goalSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goals", err)
	}
	defer rows.Close()
	goals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect goal rows", err)
	}
	return goals, nil
}

// getQuarters returns quarter rows grouped by goal id.
func (r *PgxGoalRepository) getQuarters(ctx context.Context, filterQuery string, args ...any) (map[string][]models.GoalQuarter, error) {
	query := `
		SELECT q.workplace_id, q.goal_id, q.quarter, q.target_value, q.percentage
		FROM goal_quarters q
	` + filterQuery + ` ORDER BY q.goal_id, q.quarter;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query goal quarters", err)
	}
	defer rows.Close()
	quarters, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GoalQuarter])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect goal quarter rows", err)
	}
	byGoal := make(map[string][]models.GoalQuarter)
	for _, q := range quarters {
		byGoal[q.GoalID] = append(byGoal[q.GoalID], q)
	}
	return byGoal, nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, workplaceID string, key domain.NodeKey) (*domain.GoalNode, error) {
	goals, err := r.getGoals(ctx, `WHERE g.workplace_id = $1 AND g.level = $2 AND g.goal_id = $3`,
		workplaceID, string(key.Level), key.ID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, apperrors.NewNotFoundError("goal " + key.String() + " not found")
	}

	var quarters []models.GoalQuarter
	if key.Level == domain.CompanyYearly {
		byGoal, err := r.getQuarters(ctx, `WHERE q.workplace_id = $1 AND q.goal_id = $2`, workplaceID, key.ID)
		if err != nil {
			return nil, err
		}
		quarters = byGoal[key.ID]
	}
	goal := mapping.ToDomainGoal(goals[0], quarters)
	return &goal, nil
}

func (r *PgxGoalRepository) ListGoalsByYear(ctx context.Context, workplaceID string, year int) ([]domain.GoalNode, error) {
	goals, err := r.getGoals(ctx, `WHERE g.workplace_id = $1 AND g.year = $2 ORDER BY g.level, g.month NULLS FIRST, g.created_at, g.goal_id`,
		workplaceID, year)
	if err != nil {
		return nil, err
	}
	byGoal, err := r.getQuarters(ctx, `
		JOIN goals g ON g.workplace_id = q.workplace_id AND g.goal_id = q.goal_id AND g.level = $3
		WHERE q.workplace_id = $1 AND g.year = $2`,
		workplaceID, year, string(domain.CompanyYearly))
	if err != nil {
		return nil, err
	}

	nodes := make([]domain.GoalNode, len(goals))
	for i, m := range goals {
		var quarters []models.GoalQuarter
		if domain.GoalLevel(m.Level) == domain.CompanyYearly {
			quarters = byGoal[m.GoalID]
		}
		nodes[i] = mapping.ToDomainGoal(m, quarters)
	}
	return nodes, nil
}

func (r *PgxGoalRepository) CountGoalDependents(ctx context.Context, workplaceID string, key domain.NodeKey) (int, error) {
	var query string
	args := []any{workplaceID, key.ID}
	if childLevel, ok := key.Level.ChildLevel(); ok {
		query = `SELECT COUNT(*) FROM goals WHERE workplace_id = $1 AND parent_id = $2 AND level = $3;`
		args = append(args, string(childLevel))
	} else {
		query = `SELECT COUNT(*) FROM daily_reports WHERE workplace_id = $1 AND goal_id = $2;`
	}

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count dependents of goal "+key.String(), err)
	}
	return count, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.GoalNode) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	queueGoalInsert(batch, goal)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("goal " + goal.Key().String() + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save goal "+goal.Key().String(), err)
	}
	return r.Commit(ctx, tx)
}

// SaveGoalBatch inserts all goals in one transaction. The store either keeps every
// goal or none of them, so the returned id list is empty on any error.
func (r *PgxGoalRepository) SaveGoalBatch(ctx context.Context, goals []domain.GoalNode) ([]string, error) {
	if len(goals) == 0 {
		return []string{}, nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, goal := range goals {
		queueGoalInsert(batch, goal)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a goal of this split already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to save goal batch", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	ids := make([]string, len(goals))
	for i, goal := range goals {
		ids[i] = goal.ID
	}
	return ids, nil
}

func (r *PgxGoalRepository) MarkGoalDeleted(ctx context.Context, workplaceID string, key domain.NodeKey, userID string, at time.Time) error {
	query := `
		UPDATE goals
		SET status = $4, deleted_at = $5, last_updated_at = $5, last_updated_by = $6
		WHERE workplace_id = $1 AND level = $2 AND goal_id = $3 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, workplaceID, string(key.Level), key.ID, string(domain.GoalDeleted), at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to soft delete goal "+key.String(), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal " + key.String() + " not found")
	}
	return nil
}
