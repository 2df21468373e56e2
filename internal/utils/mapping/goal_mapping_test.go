package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalMapping_CompanyGoalStoresNullMonthAndParent(t *testing.T) {
	company := domain.GoalNode{
		ID:          "c1",
		WorkplaceID: "wp-1",
		Level:       domain.CompanyYearly,
		Title:       "Revenue 2024",
		TargetValue: decimal.NewFromInt(1000),
		Year:        2024,
		Status:      domain.GoalActive,
		Quarters: []domain.QuarterlyGoal{
			{Quarter: 1, TargetValue: decimal.NewFromInt(200), Percentage: decimal.NewFromInt(20)},
		},
	}

	m := ToModelGoal(company)
	assert.Nil(t, m.Month)
	assert.Nil(t, m.ParentID)
	assert.Nil(t, m.DepartmentID)

	back := ToDomainGoal(m, ToModelGoalQuarters(company))
	assert.Equal(t, company, back)
}

func TestGoalMapping_PersonalGoalRoundTrip(t *testing.T) {
	deleted := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	personal := domain.GoalNode{
		ID:          "p1",
		WorkplaceID: "wp-1",
		Level:       domain.PersonalMonthly,
		TargetValue: decimal.NewFromInt(50),
		ParentID:    "t1",
		Year:        2024,
		Month:       12,
		UserID:      "u1",
		Ratio:       decimal.NewFromInt(25),
		Status:      domain.GoalDeleted,
		DeletedAt:   &deleted,
	}

	m := ToModelGoal(personal)
	require.NotNil(t, m.Month)
	assert.Equal(t, 12, *m.Month)
	require.NotNil(t, m.UserID)
	assert.Equal(t, "u1", *m.UserID)

	assert.Equal(t, personal, ToDomainGoal(m, nil))
}

func TestDailyReportMapping_OptionalProgress(t *testing.T) {
	progress := decimal.NewFromInt(30)
	withProgress := domain.DailyReport{ReportID: "r1", GoalID: "p1", PerformanceValue: decimal.NewFromInt(5), ProgressPercent: &progress}
	without := domain.DailyReport{ReportID: "r2", GoalID: "p1", PerformanceValue: decimal.NewFromInt(-2)}

	m := ToModelDailyReport(withProgress)
	assert.True(t, m.ProgressPercent.Valid)
	assert.Equal(t, withProgress, ToDomainDailyReport(m))

	m = ToModelDailyReport(without)
	assert.False(t, m.ProgressPercent.Valid)
	assert.Nil(t, ToDomainDailyReport(m).ProgressPercent)
}

func TestFinancialRecordMapping_ChildKeepsParentAndRatio(t *testing.T) {
	child := domain.FinancialRecord{
		RecordID:              "child-1",
		Kind:                  domain.Revenue,
		Amount:                decimal.NewFromInt(300),
		OrganizationalUnitRef: "east",
		OrgUnitType:           domain.Department,
		IsAllocationChild:     true,
		ParentRecordRef:       "prim-1",
		AllocationRatio:       decimal.NewFromInt(30),
	}
	primary := domain.FinancialRecord{RecordID: "prim-1", Kind: domain.Revenue, Amount: decimal.NewFromInt(1000)}

	m := ToModelFinancialRecord(child)
	require.NotNil(t, m.ParentRecordID)
	assert.True(t, m.AllocationRatio.Valid)
	assert.Equal(t, child, ToDomainFinancialRecord(m))

	m = ToModelFinancialRecord(primary)
	assert.Nil(t, m.ParentRecordID)
	assert.Nil(t, m.AllocationType)
	assert.False(t, m.AllocationRatio.Valid)
	assert.Equal(t, primary, ToDomainFinancialRecord(m))
}
