package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// LedgerReaderSvc defines read operations for the allocation ledger
type LedgerReaderSvc interface {
	// GetRecord retrieves a record together with its live allocation children.
	GetRecord(ctx context.Context, workplaceID, recordID, requestingUserID string) (*dto.GetFinancialRecordResponse, error)

	// ListRecords retrieves a page of records, primaries only unless asked otherwise.
	ListRecords(ctx context.Context, workplaceID string, params dto.ListFinancialRecordsParams, requestingUserID string) (*dto.ListFinancialRecordsResponse, error)

	// GetLedgerSummary totals one record kind without counting allocated amounts twice.
	GetLedgerSummary(ctx context.Context, workplaceID string, params dto.LedgerSummaryParams, requestingUserID string) (*dto.LedgerSummaryResponse, error)
}

// LedgerWriterSvc defines write operations for the allocation ledger
type LedgerWriterSvc interface {
	CreateRecord(ctx context.Context, workplaceID string, req dto.CreateFinancialRecordRequest, creatorUserID string) (*domain.FinancialRecord, error)

	// AllocateRecord splits a primary record into allocation children. Allocating an
	// already allocated record replaces its children.
	AllocateRecord(ctx context.Context, workplaceID, recordID string, req dto.AllocateRecordRequest, requestingUserID string) (*engine.AllocationPlan, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
