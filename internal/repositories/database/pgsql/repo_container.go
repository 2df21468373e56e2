package pgsql

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkplaceRepo:       newPgxWorkplaceRepository(dbPool),
		GoalRepo:            newPgxGoalRepository(dbPool),
		DailyReportRepo:     newPgxDailyReportRepository(dbPool),
		FinancialRecordRepo: newPgxFinancialRecordRepository(dbPool),
	}
}
