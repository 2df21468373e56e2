package domain

import "time"

// Workplace is the organization a goal tree and its ledger belong to.
type Workplace struct {
	WorkplaceID string `json:"workplaceID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// UserWorkplaceRole is a member's role inside a workplace.
type UserWorkplaceRole string

const (
	RoleAdmin   UserWorkplaceRole = "ADMIN"
	RoleManager UserWorkplaceRole = "MANAGER" // May create, split and delete goals and allocate records
	RoleMember  UserWorkplaceRole = "MEMBER"  // May read and file daily reports
	RoleRemoved UserWorkplaceRole = "REMOVED"
)

// rank orders roles; REMOVED and unknown roles rank lowest.
func (r UserWorkplaceRole) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleMember:
		return 1
	}
	return 0
}

// Satisfies reports whether r grants at least the permissions of required.
func (r UserWorkplaceRole) Satisfies(required UserWorkplaceRole) bool {
	return r.rank() > 0 && r.rank() >= required.rank()
}

// UserWorkplace links a user to a workplace.
type UserWorkplace struct {
	UserID      string            `json:"userID"`
	WorkplaceID string            `json:"workplaceID"`
	Role        UserWorkplaceRole `json:"role"`
	JoinedAt    time.Time         `json:"joinedAt"`
}
