package engine

import (
	"strconv"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChildSpec is one proposed fragment of a parent goal.
type ChildSpec struct {
	AssigneeRef string          // Department for team goals, user for personal goals
	TargetValue decimal.Decimal
	Remark      string
	Unit        string // Only read when the parent has no unit
	Month       int    // Required when splitting a company goal into team goals
	Title       string // Defaults to the parent's title
}

// SplitOptions carries the caller context of a split.
type SplitOptions struct {
	Actor string
	Now   time.Time
	// RejectDuplicateAssignees turns on the one-fragment-per-assignee rule.
	// The product allows several fragments per assignee, so this is off by default.
	RejectDuplicateAssignees bool
	NewID                    func() string
}

func (o SplitOptions) withDefaults() SplitOptions {
	if o.Now.IsZero() {
		o.Now = time.Now().UTC()
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

// SplitPlan is the validated outcome of PlanSplit, ready to persist.
type SplitPlan struct {
	Parent    domain.GoalNode   `json:"parent"`
	Children  []domain.GoalNode `json:"children"`
	Allocated decimal.Decimal   `json:"allocated"`
	Remaining decimal.Decimal   `json:"remaining"` // Signed; negative means excess
	Balance   BalanceStatus     `json:"balance"`
	Message   string            `json:"message"`
}

// PlanSplit validates specs against parent and returns one child record per spec.
// A single failing spec rejects the whole batch; the returned *apperrors.ValidationError
// lists every offending item. Under- and over-allocation are accepted and reported
// through the plan's Remaining and Balance.
func PlanSplit(parent domain.GoalNode, specs []ChildSpec, opts SplitOptions) (*SplitPlan, error) {
	opts = opts.withDefaults()
	verr := apperrors.NewValidationError()

	childLevel, splittable := parent.Level.ChildLevel()
	if !splittable {
		verr.Add(-1, "parent", "of level "+string(parent.Level)+" cannot be split")
	}
	if parent.IsDeleted() {
		verr.Add(-1, "parent", "has been deleted")
	}
	if opts.Actor == "" {
		verr.Add(-1, "actor", "is required")
	}
	if len(specs) == 0 {
		verr.Add(-1, "children", "must contain at least one item")
	}

	seen := make(map[string]int, len(specs))
	for i, spec := range specs {
		if spec.AssigneeRef == "" {
			verr.Add(i, "assigneeRef", "is required")
		} else if first, dup := seen[spec.AssigneeRef]; dup && opts.RejectDuplicateAssignees {
			verr.Add(i, "assigneeRef", "duplicates item "+strconv.Itoa(first))
		} else if !dup {
			seen[spec.AssigneeRef] = i
		}
		if !spec.TargetValue.IsPositive() {
			verr.Add(i, "targetValue", "must be greater than 0")
		}
		if parent.Unit == "" && spec.Unit == "" {
			verr.Add(i, "unit", "is required when the parent has no unit")
		}
		if childLevel == domain.TeamMonthly && (spec.Month < 1 || spec.Month > 12) {
			verr.Add(i, "month", "must be between 1 and 12")
		}
	}
	if verr.HasIssues() {
		return nil, verr
	}

	children := make([]domain.GoalNode, 0, len(specs))
	for _, spec := range specs {
		children = append(children, newChild(parent, childLevel, spec, opts))
	}

	remaining := RemainingTarget(parent, children)
	return &SplitPlan{
		Parent:    parent,
		Children:  children,
		Allocated: sumQuantities(children),
		Remaining: remaining,
		Balance:   BalanceOf(remaining),
		Message:   BalanceMessage(remaining, parent.Unit),
	}, nil
}

func newChild(parent domain.GoalNode, level domain.GoalLevel, spec ChildSpec, opts SplitOptions) domain.GoalNode {
	unit := parent.Unit
	if unit == "" {
		unit = spec.Unit
	}
	title := spec.Title
	if title == "" {
		title = parent.Title
	}
	child := domain.GoalNode{
		ID:          opts.NewID(),
		WorkplaceID: parent.WorkplaceID,
		Level:       level,
		Title:       title,
		TargetValue: spec.TargetValue,
		Unit:        unit,
		ParentID:    parent.ID,
		Year:        parent.Year,
		Ratio:       Ratio(spec.TargetValue, parent.TargetValue),
		Remark:      spec.Remark,
		Status:      domain.GoalActive,
		AuditFields: domain.NewAuditFields(opts.Actor, opts.Now),
	}
	switch level {
	case domain.TeamMonthly:
		child.Month = spec.Month
		child.DepartmentID = spec.AssigneeRef
	case domain.PersonalMonthly:
		child.Month = parent.Month
		child.DepartmentID = parent.DepartmentID
		child.UserID = spec.AssigneeRef
	}
	return child
}
