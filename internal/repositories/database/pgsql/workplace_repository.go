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

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryWithTx {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryWithTx
var _ portsrepo.WorkplaceRepositoryWithTx = (*PgxWorkplaceRepository)(nil)

const workplaceSelectQuery = `
SELECT
	w.workplace_id, w.name, w.description, w.is_active,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workplaces w
`

func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	rows, err := r.Pool.Query(ctx, workplaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workplaces", err)
	}
	defer rows.Close()
	modelWorkplaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Workplace])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workplace rows", err)
	}
	return mapping.ToDomainWorkplaceSlice(modelWorkplaces), nil
}

// SaveWorkplace inserts the workplace and its creator's membership in one transaction.
func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.UserWorkplace) error {
	m := mapping.ToModelWorkplace(workplace)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO workplaces (
			workplace_id, name, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.WorkplaceID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	batch.Queue(`
		INSERT INTO user_workplaces (user_id, workplace_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		creator.UserID, creator.WorkplaceID, string(creator.Role), creator.JoinedAt,
	)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("workplace ID " + workplace.WorkplaceID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save workplace "+workplace.WorkplaceID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.workplace_id = $1`, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workplaces[0], nil
}

func (r *PgxWorkplaceRepository) AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error {
	query := `
		INSERT INTO user_workplaces (user_id, workplace_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, workplace_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: Add user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.WorkplaceID,
		string(membership.Role),
		membership.JoinedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in workplace "+membership.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	query := `
		SELECT user_id, workplace_id, role, joined_at
		FROM user_workplaces
		WHERE user_id = $1 AND workplace_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, workplaceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" workplace role in "+workplaceID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.UserWorkplace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("workplace not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" workplace role in "+workplaceID, err)
	}
	uw := mapping.ToDomainUserWorkplace(m)
	return &uw, nil
}

// ListWorkplacesByUserID lists active workplaces where the user holds any role other than REMOVED.
func (r *PgxWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	query := `JOIN user_workplaces uw ON w.workplace_id = uw.workplace_id
		WHERE uw.user_id = $1 AND uw.role != $2 AND w.is_active = true
		ORDER BY w.name;`
	return r.getWorkplaces(ctx, query, userID, string(domain.RoleRemoved))
}
