package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table. All three levels share the table; ids are
// unique per (workplace_id, level).
type Goal struct {
	GoalID       string          `db:"goal_id"`
	WorkplaceID  string          `db:"workplace_id"`
	Level        string          `db:"level"`
	Title        string          `db:"title"`
	TargetValue  decimal.Decimal `db:"target_value"`
	Unit         string          `db:"unit"`
	ParentID     *string         `db:"parent_id"` // Nullable
	Year         int             `db:"year"`
	Month        *int            `db:"month"` // Nullable for company goals
	DepartmentID *string         `db:"department_id"`
	UserID       *string         `db:"user_id"`
	Ratio        decimal.Decimal `db:"ratio"`
	Remark       string          `db:"remark"`
	Status       string          `db:"status"`
	DeletedAt    *time.Time      `db:"deleted_at"`
	AuditFields
}

// GoalQuarter is a row of the goal_quarters table.
type GoalQuarter struct {
	WorkplaceID string          `db:"workplace_id"`
	GoalID      string          `db:"goal_id"`
	Quarter     int             `db:"quarter"`
	TargetValue decimal.Decimal `db:"target_value"`
	Percentage  decimal.Decimal `db:"percentage"`
}
