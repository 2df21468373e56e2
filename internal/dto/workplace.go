package dto

import (
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// CreateWorkplaceRequest defines data for creating a new workplace.
type CreateWorkplaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// WorkplaceResponse defines data returned for a workplace.
type WorkplaceResponse struct {
	WorkplaceID   string    `json:"workplaceID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToWorkplaceResponse converts domain.Workplace to DTO.
func ToWorkplaceResponse(w *domain.Workplace) WorkplaceResponse {
	return WorkplaceResponse{
		WorkplaceID:   w.WorkplaceID,
		Name:          w.Name,
		Description:   w.Description,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
		CreatedBy:     w.CreatedBy,
		LastUpdatedAt: w.LastUpdatedAt,
		LastUpdatedBy: w.LastUpdatedBy,
	}
}

// ListWorkplacesResponse wraps a list of workplaces.
type ListWorkplacesResponse struct {
	Workplaces []WorkplaceResponse `json:"workplaces"`
}

// ToListWorkplacesResponse converts a slice of domain.Workplace to DTO.
func ToListWorkplacesResponse(ws []domain.Workplace) ListWorkplacesResponse {
	list := make([]WorkplaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkplaceResponse(&ws[i])
	}
	return ListWorkplacesResponse{Workplaces: list}
}

// AddUserToWorkplaceRequest adds a member or changes an existing member's role.
type AddUserToWorkplaceRequest struct {
	UserID string                   `json:"userID" binding:"required"`
	Role   domain.UserWorkplaceRole `json:"role" binding:"required,oneof=ADMIN MANAGER MEMBER"`
}

// UserWorkplaceResponse defines data returned about a user's membership.
type UserWorkplaceResponse struct {
	UserID      string                   `json:"userID"`
	WorkplaceID string                   `json:"workplaceID"`
	Role        domain.UserWorkplaceRole `json:"role"`
	JoinedAt    time.Time                `json:"joinedAt"`
}

// ToUserWorkplaceResponse converts domain.UserWorkplace to DTO.
func ToUserWorkplaceResponse(uw *domain.UserWorkplace) UserWorkplaceResponse {
	return UserWorkplaceResponse{
		UserID:      uw.UserID,
		WorkplaceID: uw.WorkplaceID,
		Role:        uw.Role,
		JoinedAt:    uw.JoinedAt,
	}
}
