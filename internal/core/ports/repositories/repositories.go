package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	WorkplaceRepo       WorkplaceRepositoryFacade
	GoalRepo            GoalRepositoryFacade
	DailyReportRepo     DailyReportRepositoryFacade
	FinancialRecordRepo FinancialRecordRepositoryFacade
}
