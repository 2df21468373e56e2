package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDailyReportRequest files a daily report against a personal monthly goal.
type CreateDailyReportRequest struct {
	ReportDate       string           `json:"reportDate" binding:"required,datetime=2006-01-02"`
	PerformanceValue decimal.Decimal  `json:"performanceValue"`
	ProgressPercent  *decimal.Decimal `json:"progressPercent"` // Optional task-progress share
	Description      string           `json:"description"`
}

// DailyReportResponse defines the data returned for a daily report.
type DailyReportResponse struct {
	ReportID         string           `json:"reportID"`
	GoalID           string           `json:"goalID"`
	ReportDate       time.Time        `json:"reportDate"`
	PerformanceValue decimal.Decimal  `json:"performanceValue"`
	ProgressPercent  *decimal.Decimal `json:"progressPercent,omitempty"`
	Description      string           `json:"description"`
	CreatedAt        time.Time        `json:"createdAt"`
	CreatedBy        string           `json:"createdBy"`
}

// ToDailyReportResponse converts a domain.DailyReport to DTO.
func ToDailyReportResponse(r *domain.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		ReportID:         r.ReportID,
		GoalID:           r.GoalID,
		ReportDate:       r.ReportDate,
		PerformanceValue: r.PerformanceValue,
		ProgressPercent:  r.ProgressPercent,
		Description:      r.Description,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
	}
}

// ListDailyReportsResponse wraps the reports of one goal.
type ListDailyReportsResponse struct {
	GoalID          string                `json:"goalID"`
	Reports         []DailyReportResponse `json:"reports"`
	ActualValue     decimal.Decimal       `json:"actualValue"`
	ReportedPercent decimal.Decimal       `json:"reportedPercent"`
}
