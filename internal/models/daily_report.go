package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is a row of the daily_reports table.
type DailyReport struct {
	ReportID         string              `db:"report_id"`
	WorkplaceID      string              `db:"workplace_id"`
	GoalID           string              `db:"goal_id"`
	ReportDate       time.Time           `db:"report_date"`
	PerformanceValue decimal.Decimal     `db:"performance_value"`
	ProgressPercent  decimal.NullDecimal `db:"progress_percent"`
	Description      string              `db:"description"`
	AuditFields
}
