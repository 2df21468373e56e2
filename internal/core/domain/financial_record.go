package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind is the ledger collection a financial record belongs to.
type RecordKind string

const (
	Revenue           RecordKind = "REVENUE"
	Expense           RecordKind = "EXPENSE"
	AccountReceivable RecordKind = "ACCOUNT_RECEIVABLE"
	AccountPayable    RecordKind = "ACCOUNT_PAYABLE"
	OperatingCost     RecordKind = "OPERATING_COST"
)

// IsValid reports whether k is a known record kind.
func (k RecordKind) IsValid() bool {
	switch k {
	case Revenue, Expense, AccountReceivable, AccountPayable, OperatingCost:
		return true
	}
	return false
}

// OrgUnitType distinguishes the organizational units an allocation can target.
type OrgUnitType string

const (
	Subsidiary OrgUnitType = "SUBSIDIARY"
	Department OrgUnitType = "DEPARTMENT"
)

// AllocationType describes how a primary record was split.
type AllocationType string

const (
	AllocationNone  AllocationType = ""
	AllocationRatio AllocationType = "ratio"
)

// FinancialRecord is either a primary record or an allocation child of one.
// Both live in the same collection and are told apart by IsAllocationChild/ParentRecordRef.
type FinancialRecord struct {
	RecordID              string          `json:"recordID"`
	WorkplaceID           string          `json:"workplaceID"`
	Kind                  RecordKind      `json:"kind"`
	Amount                decimal.Decimal `json:"amount"`
	RecordDate            time.Time       `json:"recordDate"`
	Description           string          `json:"description"`
	OrganizationalUnitRef string          `json:"organizationalUnitRef"`
	OrgUnitType           OrgUnitType     `json:"orgUnitType"`
	IsAllocated           bool            `json:"isAllocated"`
	AllocationType        AllocationType  `json:"allocationType"`
	IsAllocationChild     bool            `json:"isAllocationChild"`
	ParentRecordRef       string          `json:"parentRecordRef"`
	AllocationRatio       decimal.Decimal `json:"allocationRatio"` // Informational, children only
	DeletedAt             *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// IsPrimary reports whether the record is a primary (non-child) record.
func (r FinancialRecord) IsPrimary() bool {
	return !r.IsAllocationChild
}

// Quantity is the value compared against allocation children when computing remaining capacity.
func (r FinancialRecord) Quantity() decimal.Decimal {
	return r.Amount
}
