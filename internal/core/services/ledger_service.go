package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService implements the LedgerSvcFacade interface over financial records.
type ledgerService struct {
	BaseService
	recordRepo portsrepo.FinancialRecordRepositoryFacade
	ratioScale int32
	now        func() time.Time
	newID      func() string
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerWorkplaceAuthorizer adds the workplace authorizer dependency
func WithLedgerWorkplaceAuthorizer(authorizer portssvc.WorkplaceAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.WorkplaceAuthorizer = authorizer
	}
}

// WithRatioScale sets the decimal places of ratio-derived allocation amounts.
func WithRatioScale(places int32) LedgerServiceOption {
	return func(s *ledgerService) {
		s.ratioScale = places
	}
}

// WithLedgerClock overrides the time source and id generator.
func WithLedgerClock(now func() time.Time, newID func() string) LedgerServiceOption {
	return func(s *ledgerService) {
		if now != nil {
			s.now = now
		}
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.FinancialRecordRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		recordRepo: repo,
		ratioScale: engine.RatioPlaces,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateRecord(ctx context.Context, workplaceID string, req dto.CreateFinancialRecordRequest, creatorUserID string) (*domain.FinancialRecord, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, workplaceID, domain.RoleManager); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError(apperrors.FieldIssue{Index: -1, Field: "amount", Message: "must be greater than 0"})
	}
	recordDate, err := dto.ParseDate(req.RecordDate)
	if err != nil {
		return nil, err
	}

	record := domain.FinancialRecord{
		RecordID:              s.newID(),
		WorkplaceID:           workplaceID,
		Kind:                  req.Kind,
		Amount:                req.Amount,
		RecordDate:            recordDate,
		Description:           req.Description,
		OrganizationalUnitRef: req.OrganizationalUnitRef,
		OrgUnitType:           req.OrgUnitType,
		AuditFields:           domain.NewAuditFields(creatorUserID, s.now()),
	}
	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save financial record",
			slog.String("workplace_id", workplaceID),
			slog.String("kind", string(req.Kind)))
		return nil, fmt.Errorf("failed to create financial record: %w", err)
	}

	s.LogInfo(ctx, "Financial record created",
		slog.String("record_id", record.RecordID),
		slog.String("kind", string(record.Kind)),
		slog.String("amount", record.Amount.String()))
	return &record, nil
}

func (s *ledgerService) GetRecord(ctx context.Context, workplaceID, recordID, requestingUserID string) (*dto.GetFinancialRecordResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	record, err := s.findRecord(ctx, workplaceID, recordID)
	if err != nil {
		return nil, err
	}

	resp := &dto.GetFinancialRecordResponse{
		Record:    dto.ToFinancialRecordResponse(record),
		Children:  []dto.FinancialRecordResponse{},
		Remaining: decimal.Zero,
		Balance:   engine.StatusBalanced,
	}
	if record.IsAllocationChild {
		return resp, nil
	}

	var children []domain.FinancialRecord
	if record.IsAllocated {
		children, err = s.recordRepo.ListAllocationChildren(ctx, workplaceID, recordID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list allocation children", slog.String("record_id", recordID))
			return nil, fmt.Errorf("failed to get financial record: %w", err)
		}
	}
	resp.Children = dto.ToFinancialRecordResponses(children)
	resp.Remaining = engine.RemainingAmount(*record, children)
	resp.Balance = engine.BalanceOf(resp.Remaining)
	return resp, nil
}

func (s *ledgerService) findRecord(ctx context.Context, workplaceID, recordID string) (*domain.FinancialRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, workplaceID, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find financial record", slog.String("record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

func (s *ledgerService) ListRecords(ctx context.Context, workplaceID string, params dto.ListFinancialRecordsParams, requestingUserID string) (*dto.ListFinancialRecordsResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	filter, err := recordFilter(params.Kind, params.From, params.To)
	if err != nil {
		return nil, err
	}
	filter.IncludeChildren = params.IncludeChildren

	records, nextToken, err := s.recordRepo.ListRecords(ctx, workplaceID, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list financial records", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}
	return &dto.ListFinancialRecordsResponse{
		Records:   dto.ToFinancialRecordResponses(records),
		NextToken: nextToken,
	}, nil
}

func recordFilter(kind, from, to string) (portsrepo.FinancialRecordFilter, error) {
	var filter portsrepo.FinancialRecordFilter
	if kind != "" {
		k := domain.RecordKind(kind)
		if !k.IsValid() {
			return filter, apperrors.NewValidationFailedError(fmt.Sprintf("unknown record kind %q", kind))
		}
		filter.Kind = &k
	}
	start, end, err := dto.ParsePeriod(from, to)
	if err != nil {
		return filter, err
	}
	if !start.IsZero() {
		filter.From = &start
	}
	if !end.IsZero() {
		filter.To = &end
	}
	return filter, nil
}

// GetLedgerSummary totals one kind. Primaries and children are never added together.
func (s *ledgerService) GetLedgerSummary(ctx context.Context, workplaceID string, params dto.LedgerSummaryParams, requestingUserID string) (*dto.LedgerSummaryResponse, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	filter, err := recordFilter(params.Kind, params.From, params.To)
	if err != nil {
		return nil, err
	}
	filter.IncludeChildren = true

	records, err := s.recordRepo.ListRecordsForPeriod(ctx, workplaceID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load financial records for summary", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to summarize ledger: %w", err)
	}

	resp := &dto.LedgerSummaryResponse{
		Kind:           domain.RecordKind(params.Kind),
		PrimaryTotal:   engine.SumPrimaries(records),
		AllocatedTotal: engine.SumAllocationChildren(records),
		ByUnit:         engine.TotalsByUnit(records),
		Discrepancies:  engine.AllocationDiscrepancies(records),
	}
	if resp.Discrepancies == nil {
		resp.Discrepancies = []engine.Discrepancy{}
	}
	return resp, nil
}

// AllocateRecord plans the allocation and, unless it is a dry run, replaces the
// primary's children in one transaction. Children that do not add up to the primary
// are saved and reported, not rejected.
func (s *ledgerService) AllocateRecord(ctx context.Context, workplaceID, recordID string, req dto.AllocateRecordRequest, requestingUserID string) (*engine.AllocationPlan, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleManager); err != nil {
		return nil, err
	}
	primary, err := s.findRecord(ctx, workplaceID, recordID)
	if err != nil {
		return nil, err
	}

	plan, err := engine.PlanAllocation(*primary, req.ToAllocationSpecs(), engine.AllocationOptions{
		Actor:      requestingUserID,
		Now:        s.now(),
		NewID:      s.newID,
		RatioScale: s.ratioScale,
	})
	if err != nil {
		return nil, err
	}
	if req.DryRun {
		return plan, nil
	}

	if err := s.recordRepo.SaveAllocation(ctx, plan.Primary, plan.Children); err != nil {
		s.LogError(ctx, err, "Failed to save allocation", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to allocate financial record: %w", err)
	}

	if plan.Balance != engine.StatusBalanced {
		s.LogWarn(ctx, "Allocation does not match primary amount",
			slog.String("record_id", recordID),
			slog.String("amount", primary.Amount.String()),
			slog.String("allocated", plan.Allocated.String()),
			slog.String("balance", string(plan.Balance)))
	}
	s.LogInfo(ctx, "Financial record allocated",
		slog.String("record_id", recordID),
		slog.Int("children", len(plan.Children)))
	return plan, nil
}
