package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/shopspring/decimal"
)

// QuarterRequest is one quarter target of a company yearly goal.
type QuarterRequest struct {
	Quarter     int             `json:"quarter" binding:"required,min=1,max=4"`
	TargetValue decimal.Decimal `json:"targetValue"`
}

// CreateGoalRequest defines the data needed to create a goal by hand.
// Level-specific fields are ignored for levels that do not use them.
type CreateGoalRequest struct {
	Level        domain.GoalLevel `json:"level" binding:"required,oneof=COMPANY_YEARLY TEAM_MONTHLY PERSONAL_MONTHLY"`
	Title        string           `json:"title"`
	TargetValue  decimal.Decimal  `json:"targetValue"`
	Unit         string           `json:"unit"`
	ParentID     string           `json:"parentID"` // Optional link to a goal one level up
	Year         int              `json:"year" binding:"required,min=1"`
	Month        int              `json:"month" binding:"omitempty,min=1,max=12"`
	DepartmentID string           `json:"departmentID"`
	UserID       string           `json:"userID"`
	Remark       string           `json:"remark"`
	Quarters     []QuarterRequest `json:"quarters" binding:"omitempty,dive"`
}

// QuarterResponse mirrors domain.QuarterlyGoal.
type QuarterResponse struct {
	Quarter     int             `json:"quarter"`
	TargetValue decimal.Decimal `json:"targetValue"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// GoalResponse defines the data returned for a goal node.
type GoalResponse struct {
	ID           string            `json:"id"`
	Level        domain.GoalLevel  `json:"level"`
	Title        string            `json:"title"`
	TargetValue  decimal.Decimal   `json:"targetValue"`
	Unit         string            `json:"unit"`
	ParentID     string            `json:"parentID,omitempty"`
	Year         int               `json:"year"`
	Month        int               `json:"month,omitempty"`
	DepartmentID string            `json:"departmentID,omitempty"`
	UserID       string            `json:"userID,omitempty"`
	Quarters     []QuarterResponse `json:"quarters,omitempty"`
	Ratio        decimal.Decimal   `json:"ratio"`
	Remark       string            `json:"remark,omitempty"`
	Status       domain.GoalStatus `json:"status"`
	DeletedAt    *time.Time        `json:"deletedAt,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	CreatedBy    string            `json:"createdBy"`
}

// ToGoalResponse converts a domain.GoalNode to GoalResponse DTO.
func ToGoalResponse(g *domain.GoalNode) GoalResponse {
	resp := GoalResponse{
		ID:           g.ID,
		Level:        g.Level,
		Title:        g.Title,
		TargetValue:  g.TargetValue,
		Unit:         g.Unit,
		ParentID:     g.ParentID,
		Year:         g.Year,
		Month:        g.Month,
		DepartmentID: g.DepartmentID,
		UserID:       g.UserID,
		Ratio:        g.Ratio,
		Remark:       g.Remark,
		Status:       g.Status,
		DeletedAt:    g.DeletedAt,
		CreatedAt:    g.CreatedAt,
		CreatedBy:    g.CreatedBy,
	}
	for _, q := range g.Quarters {
		resp.Quarters = append(resp.Quarters, QuarterResponse(q))
	}
	return resp
}

// ToGoalResponses converts a slice of domain.GoalNode.
func ToGoalResponses(goals []domain.GoalNode) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}

// GoalTreeParams defines query parameters for the goal tree.
type GoalTreeParams struct {
	Year           int    `form:"year" binding:"required,min=1"`
	From           string `form:"from" binding:"omitempty,datetime=2006-01-02"` // Reporting period start, inclusive
	To             string `form:"to" binding:"omitempty,datetime=2006-01-02"`   // Reporting period end, inclusive
	IncludeDeleted bool   `form:"includeDeleted"`
}

// GoalTreeNode is one node of the goal tree with its derived rollup.
type GoalTreeNode struct {
	Goal          GoalResponse         `json:"goal"`
	ActualValue   decimal.Decimal      `json:"actualValue"`
	Progress      int64                `json:"progress"`
	Completed     bool                 `json:"completed"`
	Orphaned      bool                 `json:"orphaned"`
	ParentDeleted bool                 `json:"parentDeleted"`
	Remaining     *decimal.Decimal     `json:"remaining,omitempty"` // Target left to split; absent on personal goals
	Balance       engine.BalanceStatus `json:"balance,omitempty"`
	Message       string               `json:"message,omitempty"`
	Children      []GoalTreeNode       `json:"children"`
}

// GoalTreeResponse is the goal tree of one workplace year.
type GoalTreeResponse struct {
	Year  int            `json:"year"`
	Roots []GoalTreeNode `json:"roots"`
}

// SplitChildRequest is one proposed child of a split. Field checks are left to the
// splitter so that every offending item is reported together.
type SplitChildRequest struct {
	AssigneeRef string          `json:"assigneeRef"` // Department for team goals, user for personal goals
	TargetValue decimal.Decimal `json:"targetValue"`
	Remark      string          `json:"remark"`
	Unit        string          `json:"unit"`
	Month       int             `json:"month"`
	Title       string          `json:"title"`
}

// SplitGoalRequest splits a goal into child goals one level down.
type SplitGoalRequest struct {
	Children []SplitChildRequest `json:"children"`
	DryRun   bool                `json:"dryRun"` // Validate and preview without persisting
}

// ToChildSpecs converts the request items to splitter input.
func (r SplitGoalRequest) ToChildSpecs() []engine.ChildSpec {
	specs := make([]engine.ChildSpec, len(r.Children))
	for i, c := range r.Children {
		specs[i] = engine.ChildSpec(c)
	}
	return specs
}

// SplitGoalResponse describes the outcome of a split.
type SplitGoalResponse struct {
	Parent    GoalResponse         `json:"parent"`
	Children  []GoalResponse       `json:"children"`
	Allocated decimal.Decimal      `json:"allocated"`
	Remaining decimal.Decimal      `json:"remaining"`
	Balance   engine.BalanceStatus `json:"balance"`
	Message   string               `json:"message"`
	DryRun    bool                 `json:"dryRun"`
}

// ToSplitGoalResponse converts a split plan to DTO.
func ToSplitGoalResponse(plan *engine.SplitPlan, dryRun bool) SplitGoalResponse {
	return SplitGoalResponse{
		Parent:    ToGoalResponse(&plan.Parent),
		Children:  ToGoalResponses(plan.Children),
		Allocated: plan.Allocated,
		Remaining: plan.Remaining,
		Balance:   plan.Balance,
		Message:   plan.Message,
		DryRun:    dryRun,
	}
}

// DeleteMode tells how a goal was removed. Goals are only ever soft deleted.
type DeleteMode string

const DeleteModeSoft DeleteMode = "soft"

// DeleteGoalResponse describes how a goal was removed.
type DeleteGoalResponse struct {
	ID         string           `json:"id"`
	Level      domain.GoalLevel `json:"level"`
	Mode       DeleteMode       `json:"mode"`
	Dependents int              `json:"dependents"`
}
