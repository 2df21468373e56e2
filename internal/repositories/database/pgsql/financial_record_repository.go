package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/SscSPs/backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFinancialRecordRepository stores primary records and their allocation children
// in the financial_records table.
type PgxFinancialRecordRepository struct {
	BaseRepository
}

func newPgxFinancialRecordRepository(pool *pgxpool.Pool) portsrepo.FinancialRecordRepositoryWithTx {
	return &PgxFinancialRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FinancialRecordRepositoryWithTx = (*PgxFinancialRecordRepository)(nil)

const recordSelectQuery = `
SELECT
	record_id, workplace_id, kind, amount, record_date, description, org_unit_ref, org_unit_type,
	is_allocated, allocation_type, is_allocation_child, parent_record_id, allocation_ratio, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by
FROM financial_records
`

const recordInsertQuery = `
	INSERT INTO financial_records (
		record_id, workplace_id, kind, amount, record_date, description, org_unit_ref, org_unit_type,
		is_allocated, allocation_type, is_allocation_child, parent_record_id, allocation_ratio, deleted_at,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
`

func recordInsertArgs(record domain.FinancialRecord) []any {
	m := mapping.ToModelFinancialRecord(record)
	return []any{
		m.RecordID, m.WorkplaceID, m.Kind, m.Amount, m.RecordDate, m.Description, m.OrganizationalUnitRef, m.OrgUnitType,
		m.IsAllocated, m.AllocationType, m.IsAllocationChild, m.ParentRecordID, m.AllocationRatio, m.DeletedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxFinancialRecordRepository) getRecords(ctx context.Context, filterQuery string, args ...any) ([]models.FinancialRecord, error) {
	rows, err := r.Pool.Query(ctx, recordSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query financial records", err)
	}
	defer rows.Close()
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FinancialRecord])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect financial record rows", err)
	}
	return records, nil
}

// whereClause renders the live-record filter. Placeholders start at $1 with the workplace id.
func whereClause(workplaceID string, filter portsrepo.FinancialRecordFilter) (string, []any) {
	conds := []string{"workplace_id = $1", "deleted_at IS NULL"}
	args := []any{workplaceID}
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Kind != nil {
		conds = append(conds, "kind = "+next(string(*filter.Kind)))
	}
	if filter.From != nil {
		conds = append(conds, "record_date >= "+next(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "record_date <= "+next(*filter.To))
	}
	if !filter.IncludeChildren {
		conds = append(conds, "is_allocation_child = false")
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PgxFinancialRecordRepository) FindRecordByID(ctx context.Context, workplaceID, recordID string) (*domain.FinancialRecord, error) {
	records, err := r.getRecords(ctx, `WHERE workplace_id = $1 AND record_id = $2 AND deleted_at IS NULL`, workplaceID, recordID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NewNotFoundError("financial record " + recordID + " not found")
	}
	record := mapping.ToDomainFinancialRecord(records[0])
	return &record, nil
}

func (r *PgxFinancialRecordRepository) ListAllocationChildren(ctx context.Context, workplaceID, parentRecordID string) ([]domain.FinancialRecord, error) {
	records, err := r.getRecords(ctx, `WHERE workplace_id = $1 AND parent_record_id = $2 AND deleted_at IS NULL ORDER BY created_at, org_unit_ref`,
		workplaceID, parentRecordID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainFinancialRecordSlice(records), nil
}

// ListRecords pages by (record_date, created_at, record_id) descending, fetching one extra row to detect a next page.
func (r *PgxFinancialRecordRepository) ListRecords(ctx context.Context, workplaceID string, filter portsrepo.FinancialRecordFilter, limit int, nextToken *string) ([]domain.FinancialRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	where, args := whereClause(workplaceID, filter)
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		where += " AND (record_date, created_at, record_id) < ($" + strconv.Itoa(n-2) + ", $" + strconv.Itoa(n-1) + ", $" + strconv.Itoa(n) + ")"
	}
	args = append(args, fetchLimit)
	query := where + " ORDER BY record_date DESC, created_at DESC, record_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	records, err := r.getRecords(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(records) > limit {
		last := records[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{Date: last.RecordDate, CreatedAt: last.CreatedAt, ID: last.RecordID})
		nextTokenVal = &token
		records = records[:limit]
	}
	return mapping.ToDomainFinancialRecordSlice(records), nextTokenVal, nil
}

func (r *PgxFinancialRecordRepository) ListRecordsForPeriod(ctx context.Context, workplaceID string, filter portsrepo.FinancialRecordFilter) ([]domain.FinancialRecord, error) {
	where, args := whereClause(workplaceID, filter)
	records, err := r.getRecords(ctx, where+" ORDER BY record_date, created_at, record_id;", args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainFinancialRecordSlice(records), nil
}

func (r *PgxFinancialRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	if _, err := r.Pool.Exec(ctx, recordInsertQuery, recordInsertArgs(record)...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("financial record " + record.RecordID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save financial record "+record.RecordID, err)
	}
	return nil
}

// SaveAllocation marks the primary allocated, soft deletes its previous children and
// inserts the new ones in one transaction.
func (r *PgxFinancialRecordRepository) SaveAllocation(ctx context.Context, primary domain.FinancialRecord, children []domain.FinancialRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	result, err := tx.Exec(ctx, `
		UPDATE financial_records
		SET is_allocated = true, allocation_type = $3, last_updated_at = $4, last_updated_by = $5
		WHERE workplace_id = $1 AND record_id = $2 AND is_allocation_child = false AND deleted_at IS NULL;`,
		primary.WorkplaceID, primary.RecordID, string(primary.AllocationType), primary.LastUpdatedAt, primary.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark financial record "+primary.RecordID+" allocated", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("financial record " + primary.RecordID + " not found")
	}

	batch := &pgx.Batch{}
	batch.Queue(`
		UPDATE financial_records
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE workplace_id = $1 AND parent_record_id = $2 AND deleted_at IS NULL;`,
		primary.WorkplaceID, primary.RecordID, primary.LastUpdatedAt, primary.LastUpdatedBy,
	)
	for _, child := range children {
		batch.Queue(recordInsertQuery, recordInsertArgs(child)...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("an allocation child of " + primary.RecordID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save allocation of "+primary.RecordID, err)
	}
	return r.Commit(ctx, tx)
}
