package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is a leaf contribution to a personal monthly goal.
type DailyReport struct {
	ReportID         string          `json:"reportID"`
	WorkplaceID      string          `json:"workplaceID"`
	GoalID           string          `json:"goalID"` // Personal monthly goal
	ReportDate       time.Time       `json:"reportDate"`
	PerformanceValue decimal.Decimal `json:"performanceValue"` // Signed contribution to the goal's actual value
	// ProgressPercent is the task-progress share this report claims against its goal.
	// Reports of one goal may never claim more than 100 in total.
	ProgressPercent *decimal.Decimal `json:"progressPercent,omitempty"`
	Description     string           `json:"description"`
	AuditFields
}
