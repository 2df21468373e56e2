package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelFinancialRecord converts a domain FinancialRecord to a model FinancialRecord
func ToModelFinancialRecord(d domain.FinancialRecord) models.FinancialRecord {
	m := models.FinancialRecord{
		RecordID:              d.RecordID,
		WorkplaceID:           d.WorkplaceID,
		Kind:                  string(d.Kind),
		Amount:                d.Amount,
		RecordDate:            d.RecordDate,
		Description:           d.Description,
		OrganizationalUnitRef: d.OrganizationalUnitRef,
		OrgUnitType:           string(d.OrgUnitType),
		IsAllocated:           d.IsAllocated,
		AllocationType:        nullable(string(d.AllocationType)),
		IsAllocationChild:     d.IsAllocationChild,
		ParentRecordID:        nullable(d.ParentRecordRef),
		DeletedAt:             d.DeletedAt,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
	if d.IsAllocationChild {
		m.AllocationRatio = decimal.NewNullDecimal(d.AllocationRatio)
	}
	return m
}

// ToDomainFinancialRecord converts a model FinancialRecord to a domain FinancialRecord
func ToDomainFinancialRecord(m models.FinancialRecord) domain.FinancialRecord {
	d := domain.FinancialRecord{
		RecordID:              m.RecordID,
		WorkplaceID:           m.WorkplaceID,
		Kind:                  domain.RecordKind(m.Kind),
		Amount:                m.Amount,
		RecordDate:            m.RecordDate,
		Description:           m.Description,
		OrganizationalUnitRef: m.OrganizationalUnitRef,
		OrgUnitType:           domain.OrgUnitType(m.OrgUnitType),
		IsAllocated:           m.IsAllocated,
		AllocationType:        domain.AllocationType(deref(m.AllocationType)),
		IsAllocationChild:     m.IsAllocationChild,
		ParentRecordRef:       deref(m.ParentRecordID),
		DeletedAt:             m.DeletedAt,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
	if m.AllocationRatio.Valid {
		d.AllocationRatio = m.AllocationRatio.Decimal
	}
	return d
}

// ToDomainFinancialRecordSlice converts a slice of model FinancialRecords
func ToDomainFinancialRecordSlice(ms []models.FinancialRecord) []domain.FinancialRecord {
	ds := make([]domain.FinancialRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialRecord(m)
	}
	return ds
}
