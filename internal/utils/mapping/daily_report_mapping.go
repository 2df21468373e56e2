package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelDailyReport converts a domain DailyReport to a model DailyReport
func ToModelDailyReport(d domain.DailyReport) models.DailyReport {
	m := models.DailyReport{
		ReportID:         d.ReportID,
		WorkplaceID:      d.WorkplaceID,
		GoalID:           d.GoalID,
		ReportDate:       d.ReportDate,
		PerformanceValue: d.PerformanceValue,
		Description:      d.Description,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.ProgressPercent != nil {
		m.ProgressPercent = decimal.NewNullDecimal(*d.ProgressPercent)
	}
	return m
}

// ToDomainDailyReport converts a model DailyReport to a domain DailyReport
func ToDomainDailyReport(m models.DailyReport) domain.DailyReport {
	d := domain.DailyReport{
		ReportID:         m.ReportID,
		WorkplaceID:      m.WorkplaceID,
		GoalID:           m.GoalID,
		ReportDate:       m.ReportDate,
		PerformanceValue: m.PerformanceValue,
		Description:      m.Description,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
	if m.ProgressPercent.Valid {
		p := m.ProgressPercent.Decimal
		d.ProgressPercent = &p
	}
	return d
}

// ToDomainDailyReportSlice converts a slice of model DailyReports
func ToDomainDailyReportSlice(ms []models.DailyReport) []domain.DailyReport {
	ds := make([]domain.DailyReport, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailyReport(m)
	}
	return ds
}
