package engine

import (
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Quantified is anything with a value that children are carved out of.
type Quantified interface {
	Quantity() decimal.Decimal
}

// BalanceStatus tells a renderer which message to show next to a split.
type BalanceStatus string

const (
	StatusBalanced  BalanceStatus = "BALANCED"
	StatusRemaining BalanceStatus = "REMAINING"
	StatusExcess    BalanceStatus = "EXCESS"
)

// IsOrphaned reports whether node.ParentID is set and the referenced parent is
// absent from all or soft deleted.
func IsOrphaned(node domain.GoalNode, all []domain.GoalNode) bool {
	return NewGoalIndex(all).IsOrphaned(node)
}

// Remaining returns parent - sum(children). The result is negative when the
// children over-allocate the parent and is never clamped.
func Remaining[T Quantified](parent T, children []T) decimal.Decimal {
	return parent.Quantity().Sub(sumQuantities(children))
}

// RemainingTarget is Remaining specialised to goal nodes.
func RemainingTarget(parent domain.GoalNode, children []domain.GoalNode) decimal.Decimal {
	return Remaining(parent, children)
}

// RemainingAmount is Remaining specialised to financial records.
func RemainingAmount(primary domain.FinancialRecord, children []domain.FinancialRecord) decimal.Decimal {
	return Remaining(primary, children)
}

func sumQuantities[T Quantified](items []T) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity())
	}
	return total
}

// BalanceOf classifies a signed remaining value.
func BalanceOf(remaining decimal.Decimal) BalanceStatus {
	switch remaining.Sign() {
	case 0:
		return StatusBalanced
	case 1:
		return StatusRemaining
	default:
		return StatusExcess
	}
}

// BalanceMessage renders the remaining/excess badge text.
func BalanceMessage(remaining decimal.Decimal, unit string) string {
	suffix := ""
	if unit != "" {
		suffix = " " + unit
	}
	switch BalanceOf(remaining) {
	case StatusRemaining:
		return fmt.Sprintf("remaining %s%s", remaining.String(), suffix)
	case StatusExcess:
		return fmt.Sprintf("excess %s%s", remaining.Abs().String(), suffix)
	default:
		return "fully allocated"
	}
}

// IsVisible is the display filter: soft-deleted nodes are hidden.
func IsVisible(node domain.GoalNode) bool {
	return !node.IsDeleted()
}

// ContributesTo is the aggregation filter: child counts towards ancestor when it
// links to it directly and has not been soft deleted itself.
func ContributesTo(child, ancestor domain.GoalNode) bool {
	if child.IsDeleted() {
		return false
	}
	key, ok := child.ParentKey()
	return ok && key == ancestor.Key()
}

// PercentWithinBounds checks 0 <= value <= 100.
func PercentWithinBounds(value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return apperrors.NewValidationError(apperrors.FieldIssue{
			Index:   -1,
			Field:   "progressPercent",
			Message: fmt.Sprintf("must be between 0 and 100, got %s", value.String()),
		})
	}
	return nil
}

// CheckReportCapacity rejects an addition that would push a goal's cumulative
// daily report percentage above 100.
func CheckReportCapacity(current, attempted decimal.Decimal) error {
	if err := PercentWithinBounds(attempted); err != nil {
		return err
	}
	if current.Add(attempted).GreaterThan(hundred) {
		return apperrors.NewValidationError(apperrors.FieldIssue{
			Index: -1,
			Field: "progressPercent",
			Message: fmt.Sprintf("would exceed 100%%: current total is %s%%, attempted addition is %s%%",
				current.String(), attempted.String()),
		})
	}
	return nil
}

// ReportedPercent sums the progress percentages already claimed by goalID's reports.
func ReportedPercent(goalID string, reports []domain.DailyReport) decimal.Decimal {
	total := decimal.Zero
	for _, r := range reports {
		if r.GoalID == goalID && r.ProgressPercent != nil {
			total = total.Add(*r.ProgressPercent)
		}
	}
	return total
}
