package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/shopspring/decimal"
)

// CreateFinancialRecordRequest defines the data needed to create a primary record.
type CreateFinancialRecordRequest struct {
	Kind                  domain.RecordKind  `json:"kind" binding:"required,oneof=REVENUE EXPENSE ACCOUNT_RECEIVABLE ACCOUNT_PAYABLE OPERATING_COST"`
	Amount                decimal.Decimal    `json:"amount"`
	RecordDate            string             `json:"recordDate" binding:"required,datetime=2006-01-02"`
	Description           string             `json:"description"`
	OrganizationalUnitRef string             `json:"organizationalUnitRef" binding:"required"`
	OrgUnitType           domain.OrgUnitType `json:"orgUnitType" binding:"required,oneof=SUBSIDIARY DEPARTMENT"`
}

// FinancialRecordResponse defines the data returned for a primary or child record.
type FinancialRecordResponse struct {
	RecordID              string                `json:"recordID"`
	Kind                  domain.RecordKind     `json:"kind"`
	Amount                decimal.Decimal       `json:"amount"`
	RecordDate            time.Time             `json:"recordDate"`
	Description           string                `json:"description"`
	OrganizationalUnitRef string                `json:"organizationalUnitRef"`
	OrgUnitType           domain.OrgUnitType    `json:"orgUnitType"`
	IsAllocated           bool                  `json:"isAllocated"`
	AllocationType        domain.AllocationType `json:"allocationType,omitempty"`
	IsAllocationChild     bool                  `json:"isAllocationChild"`
	ParentRecordRef       string                `json:"parentRecordRef,omitempty"`
	AllocationRatio       *decimal.Decimal      `json:"allocationRatio,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
	CreatedBy             string                `json:"createdBy"`
}

// ToFinancialRecordResponse converts a domain.FinancialRecord to DTO.
func ToFinancialRecordResponse(r *domain.FinancialRecord) FinancialRecordResponse {
	resp := FinancialRecordResponse{
		RecordID:              r.RecordID,
		Kind:                  r.Kind,
		Amount:                r.Amount,
		RecordDate:            r.RecordDate,
		Description:           r.Description,
		OrganizationalUnitRef: r.OrganizationalUnitRef,
		OrgUnitType:           r.OrgUnitType,
		IsAllocated:           r.IsAllocated,
		AllocationType:        r.AllocationType,
		IsAllocationChild:     r.IsAllocationChild,
		ParentRecordRef:       r.ParentRecordRef,
		CreatedAt:             r.CreatedAt,
		CreatedBy:             r.CreatedBy,
	}
	if r.IsAllocationChild {
		ratio := r.AllocationRatio
		resp.AllocationRatio = &ratio
	}
	return resp
}

// ToFinancialRecordResponses converts a slice of domain.FinancialRecord.
func ToFinancialRecordResponses(records []domain.FinancialRecord) []FinancialRecordResponse {
	res := make([]FinancialRecordResponse, len(records))
	for i := range records {
		res[i] = ToFinancialRecordResponse(&records[i])
	}
	return res
}

// GetFinancialRecordResponse is a record with its live allocation children.
type GetFinancialRecordResponse struct {
	Record    FinancialRecordResponse   `json:"record"`
	Children  []FinancialRecordResponse `json:"children"`
	Remaining decimal.Decimal           `json:"remaining"`
	Balance   engine.BalanceStatus      `json:"balance"`
}

// ListFinancialRecordsParams defines query parameters for listing records.
type ListFinancialRecordsParams struct {
	Kind            string  `form:"kind" binding:"omitempty,oneof=REVENUE EXPENSE ACCOUNT_RECEIVABLE ACCOUNT_PAYABLE OPERATING_COST"`
	From            string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To              string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
	IncludeChildren bool    `form:"includeChildren"`
	Limit           int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken       *string `form:"nextToken"`
}

// ListFinancialRecordsResponse wraps one page of records.
type ListFinancialRecordsResponse struct {
	Records   []FinancialRecordResponse `json:"records"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// AllocationRequest is one organizational unit's share. Exactly one of Ratio and Amount is expected.
type AllocationRequest struct {
	OrganizationalUnitRef string             `json:"organizationalUnitRef"`
	OrgUnitType           domain.OrgUnitType `json:"orgUnitType"`
	Ratio                 *decimal.Decimal   `json:"ratio"`
	Amount                *decimal.Decimal   `json:"amount"`
}

// AllocateRecordRequest allocates a primary record to organizational units.
type AllocateRecordRequest struct {
	Allocations []AllocationRequest `json:"allocations"`
	DryRun      bool                `json:"dryRun"`
}

// ToAllocationSpecs converts the request items to ledger input.
func (r AllocateRecordRequest) ToAllocationSpecs() []engine.AllocationSpec {
	specs := make([]engine.AllocationSpec, len(r.Allocations))
	for i, a := range r.Allocations {
		specs[i] = engine.AllocationSpec(a)
	}
	return specs
}

// AllocateRecordResponse describes the outcome of an allocation.
type AllocateRecordResponse struct {
	Primary    FinancialRecordResponse   `json:"primary"`
	Children   []FinancialRecordResponse `json:"children"`
	Allocated  decimal.Decimal           `json:"allocated"`
	Remaining  decimal.Decimal           `json:"remaining"`
	Balance    engine.BalanceStatus      `json:"balance"`
	RatioTotal decimal.Decimal           `json:"ratioTotal"`
	DryRun     bool                      `json:"dryRun"`
}

// ToAllocateRecordResponse converts an allocation plan to DTO.
func ToAllocateRecordResponse(plan *engine.AllocationPlan, dryRun bool) AllocateRecordResponse {
	return AllocateRecordResponse{
		Primary:    ToFinancialRecordResponse(&plan.Primary),
		Children:   ToFinancialRecordResponses(plan.Children),
		Allocated:  plan.Allocated,
		Remaining:  plan.Remaining,
		Balance:    plan.Balance,
		RatioTotal: plan.RatioTotal,
		DryRun:     dryRun,
	}
}

// LedgerSummaryParams defines query parameters for the ledger summary.
type LedgerSummaryParams struct {
	Kind string `form:"kind" binding:"required,oneof=REVENUE EXPENSE ACCOUNT_RECEIVABLE ACCOUNT_PAYABLE OPERATING_COST"`
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerSummaryResponse totals one record kind. PrimaryTotal counts primaries only;
// ByUnit attributes each primary once, through its children when allocated.
type LedgerSummaryResponse struct {
	Kind           domain.RecordKind    `json:"kind"`
	PrimaryTotal   decimal.Decimal      `json:"primaryTotal"`
	AllocatedTotal decimal.Decimal      `json:"allocatedTotal"`
	ByUnit         []engine.UnitTotal   `json:"byUnit"`
	Discrepancies  []engine.Discrepancy `json:"discrepancies"`
}
