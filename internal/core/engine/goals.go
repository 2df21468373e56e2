package engine

import (
	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateGoal checks a manually created goal. Goals produced by PlanSplit are
// already valid and do not need to pass through here.
func ValidateGoal(g domain.GoalNode) error {
	verr := apperrors.NewValidationError()

	if !g.Level.IsValid() {
		verr.Add(-1, "level", "is not a known goal level")
	}
	if g.TargetValue.IsNegative() {
		verr.Add(-1, "targetValue", "must not be negative")
	}
	if g.Year <= 0 {
		verr.Add(-1, "year", "is required")
	}

	switch g.Level {
	case domain.CompanyYearly:
		if g.ParentID != "" {
			verr.Add(-1, "parentID", "must be empty for company goals")
		}
		if g.Title == "" {
			verr.Add(-1, "title", "is required")
		}
		validateQuarters(g.Quarters, verr)
	case domain.TeamMonthly:
		if g.Month < 1 || g.Month > 12 {
			verr.Add(-1, "month", "must be between 1 and 12")
		}
		if g.DepartmentID == "" {
			verr.Add(-1, "departmentID", "is required")
		}
		if g.ParentID == "" && g.Title == "" {
			verr.Add(-1, "title", "is required for a team goal without a company goal")
		}
	case domain.PersonalMonthly:
		if g.Month < 1 || g.Month > 12 {
			verr.Add(-1, "month", "must be between 1 and 12")
		}
		if g.UserID == "" {
			verr.Add(-1, "userID", "is required")
		}
		if g.ParentID == "" && g.Unit == "" {
			verr.Add(-1, "unit", "is required for a personal goal without a team goal")
		}
	}
	if g.Level != domain.CompanyYearly && len(g.Quarters) > 0 {
		verr.Add(-1, "quarters", "are only allowed on company goals")
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}

func validateQuarters(quarters []domain.QuarterlyGoal, verr *apperrors.ValidationError) {
	if len(quarters) == 0 {
		return
	}
	if len(quarters) != 4 {
		verr.Add(-1, "quarters", "must contain exactly four entries")
		return
	}
	for i, q := range quarters {
		if q.Quarter != i+1 {
			verr.Add(i, "quarter", "must be ordered Q1 to Q4")
		}
		if q.TargetValue.IsNegative() {
			verr.Add(i, "targetValue", "must not be negative")
		}
	}
}

// QuarterPercentages returns a copy of quarters with Percentage derived from the
// year target. The percentages are not required to sum to 100.
func QuarterPercentages(yearTarget decimal.Decimal, quarters []domain.QuarterlyGoal) []domain.QuarterlyGoal {
	out := make([]domain.QuarterlyGoal, len(quarters))
	for i, q := range quarters {
		q.Percentage = Ratio(q.TargetValue, yearTarget)
		out[i] = q
	}
	return out
}

// PlanDailyReport validates a new or edited daily report against its goal and the
// goal's existing reports. An existing report with the same ReportID is treated as
// the one being replaced and does not count towards the current total.
func PlanDailyReport(goal domain.GoalNode, existing []domain.DailyReport, report domain.DailyReport) error {
	verr := apperrors.NewValidationError()
	if goal.Level != domain.PersonalMonthly {
		verr.Add(-1, "goalID", "must reference a personal monthly goal")
	}
	if goal.IsDeleted() {
		verr.Add(-1, "goalID", "references a deleted goal")
	}
	if report.ReportDate.IsZero() {
		verr.Add(-1, "reportDate", "is required")
	}
	if verr.HasIssues() {
		return verr
	}
	if report.ProgressPercent == nil {
		return nil
	}

	others := make([]domain.DailyReport, 0, len(existing))
	for _, r := range existing {
		if report.ReportID != "" && r.ReportID == report.ReportID {
			continue
		}
		others = append(others, r)
	}
	return CheckReportCapacity(ReportedPercent(goal.ID, others), *report.ProgressPercent)
}
