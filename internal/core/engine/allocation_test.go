package engine_test

import (
	"testing"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func revenue(id, amount string) domain.FinancialRecord {
	return domain.FinancialRecord{
		RecordID:              id,
		WorkplaceID:           "wp-1",
		Kind:                  domain.Revenue,
		Amount:                dec(amount),
		RecordDate:            ts(3),
		Description:           "December contract",
		OrganizationalUnitRef: "hq",
		OrgUnitType:           domain.Subsidiary,
	}
}

func allocOpts() engine.AllocationOptions {
	return engine.AllocationOptions{Actor: "cfo", Now: ts(4), NewID: sequentialIDs()}
}

func TestPlanAllocation_DirectAmounts(t *testing.T) {
	primary := revenue("rev-1", "500000")
	specs := []engine.AllocationSpec{
		{OrganizationalUnitRef: "sub-a", OrgUnitType: domain.Subsidiary, Amount: ptr("200000")},
		{OrganizationalUnitRef: "sub-b", OrgUnitType: domain.Subsidiary, Amount: ptr("175000")},
		{OrganizationalUnitRef: "dept-c", OrgUnitType: domain.Department, Amount: ptr("125000")},
	}

	plan, err := engine.PlanAllocation(primary, specs, allocOpts())

	require.NoError(t, err)
	require.Len(t, plan.Children, 3)
	assert.True(t, plan.Remaining.IsZero())
	assert.True(t, engine.RemainingAmount(plan.Primary, plan.Children).IsZero())
	assert.Equal(t, engine.StatusBalanced, plan.Balance)
	assert.Equal(t, "100", plan.RatioTotal.String())

	assert.True(t, plan.Primary.IsAllocated)
	assert.Equal(t, domain.AllocationRatio, plan.Primary.AllocationType)
	assert.False(t, primary.IsAllocated, "caller's record is not modified")

	child := plan.Children[1]
	assert.Equal(t, "id-2", child.RecordID)
	assert.True(t, child.IsAllocationChild)
	assert.Equal(t, "rev-1", child.ParentRecordRef)
	assert.Equal(t, "sub-b", child.OrganizationalUnitRef)
	assert.Equal(t, domain.Revenue, child.Kind)
	assert.Equal(t, primary.RecordDate, child.RecordDate)
	assert.Equal(t, "35", child.AllocationRatio.String())
	assert.Equal(t, "cfo", child.CreatedBy)
}

func TestPlanAllocation_RatioResidueGoesToLastChild(t *testing.T) {
	primary := revenue("rev-1", "100")
	specs := []engine.AllocationSpec{
		{OrganizationalUnitRef: "a", OrgUnitType: domain.Subsidiary, Ratio: ptr("33.33")},
		{OrganizationalUnitRef: "b", OrgUnitType: domain.Subsidiary, Ratio: ptr("33.33")},
		{OrganizationalUnitRef: "c", OrgUnitType: domain.Subsidiary, Ratio: ptr("33.34")},
	}
	primary.Amount = dec("1000.01")

	plan, err := engine.PlanAllocation(primary, specs, allocOpts())

	require.NoError(t, err)
	assert.Equal(t, "333.30", plan.Children[0].Amount.StringFixed(2))
	assert.Equal(t, "333.30", plan.Children[1].Amount.StringFixed(2))
	assert.Equal(t, "333.41", plan.Children[2].Amount.StringFixed(2))
	assert.True(t, plan.Remaining.IsZero())
	assert.Equal(t, "100", plan.RatioTotal.String())
}

func TestPlanAllocation_ShortAllocationIsSurfaced(t *testing.T) {
	primary := revenue("rev-1", "1000")
	specs := []engine.AllocationSpec{
		{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Ratio: ptr("40")},
		{OrganizationalUnitRef: "b", OrgUnitType: domain.Department, Ratio: ptr("40")},
	}

	plan, err := engine.PlanAllocation(primary, specs, allocOpts())

	require.NoError(t, err)
	assert.Equal(t, "400", plan.Children[1].Amount.String())
	assert.Equal(t, "200", plan.Remaining.String())
	assert.Equal(t, engine.StatusRemaining, plan.Balance)

	records := append([]domain.FinancialRecord{plan.Primary}, plan.Children...)
	discrepancies := engine.AllocationDiscrepancies(records)
	require.Len(t, discrepancies, 1)
	assert.Equal(t, "rev-1", discrepancies[0].RecordID)
	assert.Equal(t, "200", discrepancies[0].Remaining.String())
}

func TestPlanAllocation_Validation(t *testing.T) {
	child := revenue("c", "10")
	child.IsAllocationChild = true
	child.ParentRecordRef = "p"

	tests := []struct {
		name    string
		primary domain.FinancialRecord
		specs   []engine.AllocationSpec
		index   int
		field   string
	}{
		{"children cannot be allocated", child, []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Amount: ptr("1")}}, -1, "primary"},
		{"zero primary", revenue("r", "0"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Amount: ptr("1")}}, -1, "amount"},
		{"no specs", revenue("r", "10"), nil, -1, "allocations"},
		{"missing unit", revenue("r", "10"), []engine.AllocationSpec{{OrgUnitType: domain.Department, Amount: ptr("1")}}, 0, "organizationalUnitRef"},
		{"bad unit type", revenue("r", "10"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: "TEAM", Amount: ptr("1")}}, 0, "orgUnitType"},
		{"ratio over 100", revenue("r", "10"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Ratio: ptr("100.01")}}, 0, "ratio"},
		{"both modes", revenue("r", "10"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Ratio: ptr("10"), Amount: ptr("1")}}, 0, "ratio"},
		{"neither mode", revenue("r", "10"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department}}, 0, "amount"},
		{"negative amount", revenue("r", "10"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Amount: ptr("-3")}}, 0, "amount"},
		{"ratio rounds to zero", revenue("r", "1"), []engine.AllocationSpec{{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Ratio: ptr("0.1")}}, 0, "ratio"},
		{"residue pushes last child below zero", revenue("r", "0.02"), []engine.AllocationSpec{
			{OrganizationalUnitRef: "a", OrgUnitType: domain.Department, Ratio: ptr("25")},
			{OrganizationalUnitRef: "b", OrgUnitType: domain.Department, Ratio: ptr("25")},
			{OrganizationalUnitRef: "c", OrgUnitType: domain.Department, Ratio: ptr("25")},
			{OrganizationalUnitRef: "d", OrgUnitType: domain.Department, Ratio: ptr("25")},
		}, 3, "ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := engine.PlanAllocation(tt.primary, tt.specs, allocOpts())

			assert.Nil(t, plan)
			issues := issuesOf(t, err)
			require.NotEmpty(t, issues)
			assert.Equal(t, tt.index, issues[0].Index)
			assert.Equal(t, tt.field, issues[0].Field)
		})
	}
}

func TestLedgerTotals_NeverDoubleCount(t *testing.T) {
	primary := revenue("rev-1", "500000")
	plan, err := engine.PlanAllocation(primary, []engine.AllocationSpec{
		{OrganizationalUnitRef: "sub-a", OrgUnitType: domain.Subsidiary, Amount: ptr("200000")},
		{OrganizationalUnitRef: "sub-b", OrgUnitType: domain.Subsidiary, Amount: ptr("175000")},
		{OrganizationalUnitRef: "sub-c", OrgUnitType: domain.Subsidiary, Amount: ptr("125000")},
	}, allocOpts())
	require.NoError(t, err)
	unallocated := revenue("rev-2", "1000")

	records := append([]domain.FinancialRecord{plan.Primary, unallocated}, plan.Children...)

	assert.Equal(t, "501000", engine.SumPrimaries(records).String())
	assert.Equal(t, "500000", engine.SumAllocationChildren(records).String())
	assert.NotEqual(t, "1001000", engine.SumPrimaries(records).String())

	totals := engine.TotalsByUnit(records)
	require.Len(t, totals, 4)
	assert.Equal(t, "hq", totals[0].OrganizationalUnitRef)
	assert.Equal(t, "1000", totals[0].Amount.String())
	assert.Equal(t, "sub-a", totals[1].OrganizationalUnitRef)
	assert.Equal(t, "200000", totals[1].Amount.String())

	sum := decimal.Zero
	for _, u := range totals {
		sum = sum.Add(u.Amount)
	}
	assert.Equal(t, "501000", sum.String(), "per-unit totals count each primary exactly once")
	assert.Empty(t, engine.AllocationDiscrepancies(records))
}

func TestLedgerTotals_SkipDeletedRecords(t *testing.T) {
	gone := revenue("rev-3", "70")
	at := ts(5)
	gone.DeletedAt = &at

	records := []domain.FinancialRecord{revenue("rev-1", "30"), gone}

	assert.Equal(t, "30", engine.SumPrimaries(records).String())
	assert.Len(t, engine.TotalsByUnit(records), 1)
}
