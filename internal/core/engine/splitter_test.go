package engine_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func splitOpts() engine.SplitOptions {
	return engine.SplitOptions{Actor: "manager-1", Now: ts(1), NewID: sequentialIDs()}
}

func issuesOf(t *testing.T, err error) []apperrors.FieldIssue {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Issues
}

func TestPlanSplit_TeamIntoPersonalGoals(t *testing.T) {
	parent := team("t1", "c1", "1500000")
	specs := []engine.ChildSpec{
		{AssigneeRef: "alice", TargetValue: dec("1000000"), Remark: "north"},
		{AssigneeRef: "bob", TargetValue: dec("500000"), Unit: "ignored"},
	}

	plan, err := engine.PlanSplit(parent, specs, splitOpts())

	require.NoError(t, err)
	require.Len(t, plan.Children, 2)
	alice := plan.Children[0]
	assert.Equal(t, "id-1", alice.ID)
	assert.Equal(t, domain.PersonalMonthly, alice.Level)
	assert.Equal(t, "t1", alice.ParentID)
	assert.Equal(t, "alice", alice.UserID)
	assert.Equal(t, "sales", alice.DepartmentID)
	assert.Equal(t, 2024, alice.Year)
	assert.Equal(t, 12, alice.Month)
	assert.Equal(t, "CNY", alice.Unit)
	assert.Equal(t, "north", alice.Remark)
	assert.Equal(t, domain.GoalActive, alice.Status)
	assert.Equal(t, "manager-1", alice.CreatedBy)
	assert.Equal(t, ts(1), alice.CreatedAt)
	assert.Equal(t, "66.67", alice.Ratio.StringFixed(2))
	assert.Equal(t, "33.33", plan.Children[1].Ratio.StringFixed(2))
	assert.Equal(t, "CNY", plan.Children[1].Unit, "parent unit wins over child input")

	assert.True(t, plan.Remaining.IsZero())
	assert.Equal(t, engine.StatusBalanced, plan.Balance)
	assert.Equal(t, "fully allocated", plan.Message)
}

func TestPlanSplit_CompanyIntoTeamGoals(t *testing.T) {
	parent := company("c1", "15000000")
	specs := []engine.ChildSpec{
		{AssigneeRef: "sales", TargetValue: dec("1500000"), Month: 12},
		{AssigneeRef: "support", TargetValue: dec("300000"), Month: 11, Title: "Renewals"},
	}

	plan, err := engine.PlanSplit(parent, specs, splitOpts())

	require.NoError(t, err)
	assert.Equal(t, domain.TeamMonthly, plan.Children[0].Level)
	assert.Equal(t, "sales", plan.Children[0].DepartmentID)
	assert.Equal(t, 12, plan.Children[0].Month)
	assert.Equal(t, "Revenue", plan.Children[0].Title)
	assert.Equal(t, "Renewals", plan.Children[1].Title)
	assert.Equal(t, "10", plan.Children[0].Ratio.String())
	assert.Equal(t, "13200000", plan.Remaining.String())
	assert.Equal(t, engine.StatusRemaining, plan.Balance)
	assert.Equal(t, "remaining 13200000 CNY", plan.Message)
}

func TestPlanSplit_AcceptsOverAllocation(t *testing.T) {
	parent := team("t1", "", "100")
	specs := []engine.ChildSpec{
		{AssigneeRef: "a", TargetValue: dec("80")},
		{AssigneeRef: "b", TargetValue: dec("70")},
	}

	plan, err := engine.PlanSplit(parent, specs, splitOpts())

	require.NoError(t, err)
	assert.Equal(t, "-50", plan.Remaining.String())
	assert.Equal(t, engine.StatusExcess, plan.Balance)
	assert.Equal(t, "excess 50 CNY", plan.Message)
	assert.Equal(t, "150", plan.Allocated.String())
}

func TestPlanSplit_ChildFarAboveParentKeepsFullRatio(t *testing.T) {
	parent := team("t1", "", "1")
	specs := []engine.ChildSpec{{AssigneeRef: "a", TargetValue: dec("10000")}}

	plan, err := engine.PlanSplit(parent, specs, splitOpts())

	require.NoError(t, err)
	assert.Equal(t, "1000000", plan.Children[0].Ratio.String())
	assert.Equal(t, engine.StatusExcess, plan.Balance)
}

func TestPlanSplit_RejectsWholeBatch(t *testing.T) {
	parent := team("t1", "", "100")
	specs := []engine.ChildSpec{
		{AssigneeRef: "a", TargetValue: dec("10")},
		{AssigneeRef: "", TargetValue: dec("10")},
		{AssigneeRef: "c", TargetValue: dec("0")},
		{AssigneeRef: "d", TargetValue: dec("-1")},
	}

	plan, err := engine.PlanSplit(parent, specs, splitOpts())

	assert.Nil(t, plan)
	issues := issuesOf(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, apperrors.FieldIssue{Index: 1, Field: "assigneeRef", Message: "is required"}, issues[0])
	assert.Equal(t, 2, issues[1].Index)
	assert.Equal(t, "targetValue", issues[1].Field)
	assert.Equal(t, 3, issues[2].Index)
	assert.Contains(t, err.Error(), "item 2: targetValue")
}

func TestPlanSplit_UnitRequiredWithoutParentUnit(t *testing.T) {
	parent := team("t1", "", "100")
	parent.Unit = ""
	specs := []engine.ChildSpec{
		{AssigneeRef: "a", TargetValue: dec("10"), Unit: "hours"},
		{AssigneeRef: "b", TargetValue: dec("10")},
	}

	_, err := engine.PlanSplit(parent, specs, splitOpts())

	issues := issuesOf(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Index)
	assert.Equal(t, "unit", issues[0].Field)

	specs[1].Unit = "calls"
	plan, err := engine.PlanSplit(parent, specs, splitOpts())
	require.NoError(t, err)
	assert.Equal(t, "hours", plan.Children[0].Unit)
	assert.Equal(t, "calls", plan.Children[1].Unit)
}

func TestPlanSplit_DuplicateAssignees(t *testing.T) {
	parent := team("t1", "", "100")
	specs := []engine.ChildSpec{
		{AssigneeRef: "a", TargetValue: dec("10")},
		{AssigneeRef: "a", TargetValue: dec("20")},
	}

	plan, err := engine.PlanSplit(parent, specs, splitOpts())
	require.NoError(t, err, "duplicates are allowed by default")
	assert.Len(t, plan.Children, 2)

	opts := splitOpts()
	opts.RejectDuplicateAssignees = true
	_, err = engine.PlanSplit(parent, specs, opts)
	issues := issuesOf(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Index)
	assert.Equal(t, "duplicates item 0", issues[0].Message)
}

func TestPlanSplit_ParentRules(t *testing.T) {
	tests := []struct {
		name   string
		parent domain.GoalNode
		specs  []engine.ChildSpec
		field  string
	}{
		{"personal goals are leaves", personal("p", "", "10"), []engine.ChildSpec{{AssigneeRef: "a", TargetValue: dec("1")}}, "parent"},
		{"deleted parent", deleted(team("t", "", "10")), []engine.ChildSpec{{AssigneeRef: "a", TargetValue: dec("1")}}, "parent"},
		{"empty batch", team("t", "", "10"), nil, "children"},
		{"team month required", company("c", "10"), []engine.ChildSpec{{AssigneeRef: "a", TargetValue: dec("1")}}, "month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.PlanSplit(tt.parent, tt.specs, splitOpts())

			issues := issuesOf(t, err)
			require.NotEmpty(t, issues)
			assert.Equal(t, tt.field, issues[0].Field)
		})
	}
}

func TestPlanSplit_ZeroParentTargetGivesZeroRatio(t *testing.T) {
	parent := team("t1", "", "0")

	plan, err := engine.PlanSplit(parent, []engine.ChildSpec{{AssigneeRef: "a", TargetValue: dec("5")}}, splitOpts())

	require.NoError(t, err)
	assert.True(t, plan.Children[0].Ratio.IsZero())
}

func TestPlanSplit_DefaultsAndInputsUntouched(t *testing.T) {
	parent := team("t1", "", "100")
	specs := []engine.ChildSpec{{AssigneeRef: "a", TargetValue: dec("10")}}
	before := parent

	plan, err := engine.PlanSplit(parent, specs, engine.SplitOptions{Actor: "x"})

	require.NoError(t, err)
	assert.NotEmpty(t, plan.Children[0].ID)
	assert.WithinDuration(t, time.Now(), plan.Children[0].CreatedAt, time.Minute)
	assert.Equal(t, before, parent)
	assert.Equal(t, before, plan.Parent)
}
