package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalLevel identifies the tier of a node in the goal tree.
type GoalLevel string

const (
	CompanyYearly   GoalLevel = "COMPANY_YEARLY"
	TeamMonthly     GoalLevel = "TEAM_MONTHLY"
	PersonalMonthly GoalLevel = "PERSONAL_MONTHLY"
)

// ParentLevel returns the level a node of this level may link to, and false for the root.
func (l GoalLevel) ParentLevel() (GoalLevel, bool) {
	switch l {
	case TeamMonthly:
		return CompanyYearly, true
	case PersonalMonthly:
		return TeamMonthly, true
	default:
		return "", false
	}
}

// ChildLevel returns the level produced when a node of this level is split.
func (l GoalLevel) ChildLevel() (GoalLevel, bool) {
	switch l {
	case CompanyYearly:
		return TeamMonthly, true
	case TeamMonthly:
		return PersonalMonthly, true
	default:
		return "", false
	}
}

// IsValid reports whether l is a known level.
func (l GoalLevel) IsValid() bool {
	switch l {
	case CompanyYearly, TeamMonthly, PersonalMonthly:
		return true
	}
	return false
}

// GoalStatus is the persisted lifecycle state. Completion is never stored; it is
// derived from progress at read time.
type GoalStatus string

const (
	GoalActive  GoalStatus = "ACTIVE"
	GoalDeleted GoalStatus = "DELETED"
)

// QuarterlyGoal is one of the four quarter targets of a company yearly goal.
type QuarterlyGoal struct {
	Quarter     int             `json:"quarter"` // 1..4
	TargetValue decimal.Decimal `json:"targetValue"`
	Percentage  decimal.Decimal `json:"percentage"` // quarterTarget / yearTarget * 100, informational
}

// GoalNode is any node of the goal tree. Level-specific fields are zero for levels
// that do not use them. Nodes reference their parent by id only; the tree is
// resolved through a lookup at aggregation time.
type GoalNode struct {
	ID           string          `json:"id"`
	WorkplaceID  string          `json:"workplaceID"`
	Level        GoalLevel       `json:"level"`
	Title        string          `json:"title"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	Unit         string          `json:"unit"`
	ParentID     string          `json:"parentID"` // Empty when unlinked
	Year         int             `json:"year"`
	Month        int             `json:"month"`        // Team and personal goals, 1..12
	DepartmentID string          `json:"departmentID"` // Team goals
	UserID       string          `json:"userID"`       // Personal goals
	Quarters     []QuarterlyGoal `json:"quarters,omitempty"`
	Ratio        decimal.Decimal `json:"ratio"` // Set when created by a split
	Remark       string          `json:"remark"`
	Status       GoalStatus      `json:"status"`
	DeletedAt    *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// Key returns the level-scoped identity of the node.
func (g GoalNode) Key() NodeKey {
	return NodeKey{Level: g.Level, ID: g.ID}
}

// HasParent reports whether the node carries a parent reference.
func (g GoalNode) HasParent() bool {
	return g.ParentID != ""
}

// ParentKey returns the key the parent reference points at.
func (g GoalNode) ParentKey() (NodeKey, bool) {
	if g.ParentID == "" {
		return NodeKey{}, false
	}
	level, ok := g.Level.ParentLevel()
	if !ok {
		return NodeKey{}, false
	}
	return NodeKey{Level: level, ID: g.ParentID}, true
}

// IsDeleted reports whether the node has been soft deleted.
func (g GoalNode) IsDeleted() bool {
	return g.DeletedAt != nil
}

// AssigneeRef returns the department for team goals and the user for personal goals.
func (g GoalNode) AssigneeRef() string {
	switch g.Level {
	case TeamMonthly:
		return g.DepartmentID
	case PersonalMonthly:
		return g.UserID
	}
	return ""
}

// NodeKey identifies a node. Ids are only unique within a level.
type NodeKey struct {
	Level GoalLevel `json:"level"`
	ID    string    `json:"id"`
}

func (k NodeKey) String() string {
	return string(k.Level) + "/" + k.ID
}

// Quantity is the value compared against children when computing remaining capacity.
func (g GoalNode) Quantity() decimal.Decimal {
	return g.TargetValue
}
