package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// FinancialRecordFilter narrows record listings. Nil fields do not filter.
type FinancialRecordFilter struct {
	Kind            *domain.RecordKind
	From            *time.Time
	To              *time.Time
	IncludeChildren bool
}

// FinancialRecordReader defines read operations for ledger records
type FinancialRecordReader interface {
	// FindRecordByID retrieves a primary or child record.
	FindRecordByID(ctx context.Context, workplaceID, recordID string) (*domain.FinancialRecord, error)

	// ListAllocationChildren returns the live children of a primary record.
	ListAllocationChildren(ctx context.Context, workplaceID, parentRecordID string) ([]domain.FinancialRecord, error)

	// ListRecords pages through live records, newest record date first.
	ListRecords(ctx context.Context, workplaceID string, filter FinancialRecordFilter, limit int, nextToken *string) ([]domain.FinancialRecord, *string, error)

	// ListRecordsForPeriod returns every live primary and child record in range, unpaged.
	ListRecordsForPeriod(ctx context.Context, workplaceID string, filter FinancialRecordFilter) ([]domain.FinancialRecord, error)
}

// FinancialRecordWriter defines write operations for ledger records
type FinancialRecordWriter interface {
	SaveRecord(ctx context.Context, record domain.FinancialRecord) error

	// SaveAllocation flips the primary's allocation flags, soft deletes any earlier children
	// and inserts the new ones in one transaction.
	SaveAllocation(ctx context.Context, primary domain.FinancialRecord, children []domain.FinancialRecord) error
}

// FinancialRecordRepositoryFacade combines all ledger repository interfaces
type FinancialRecordRepositoryFacade interface {
	FinancialRecordReader
	FinancialRecordWriter
}

// FinancialRecordRepositoryWithTx extends FinancialRecordRepositoryFacade with transaction capabilities
type FinancialRecordRepositoryWithTx interface {
	FinancialRecordRepositoryFacade
	TransactionManager
}
