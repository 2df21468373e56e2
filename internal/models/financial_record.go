package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialRecord is a row of the financial_records table. Primaries and
// allocation children share the table.
type FinancialRecord struct {
	RecordID              string              `db:"record_id"`
	WorkplaceID           string              `db:"workplace_id"`
	Kind                  string              `db:"kind"`
	Amount                decimal.Decimal     `db:"amount"`
	RecordDate            time.Time           `db:"record_date"`
	Description           string              `db:"description"`
	OrganizationalUnitRef string              `db:"org_unit_ref"`
	OrgUnitType           string              `db:"org_unit_type"`
	IsAllocated           bool                `db:"is_allocated"`
	AllocationType        *string             `db:"allocation_type"`
	IsAllocationChild     bool                `db:"is_allocation_child"`
	ParentRecordID        *string             `db:"parent_record_id"`
	AllocationRatio       decimal.NullDecimal `db:"allocation_ratio"`
	DeletedAt             *time.Time          `db:"deleted_at"`
	AuditFields
}
