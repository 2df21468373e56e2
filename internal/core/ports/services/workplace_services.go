package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// WorkplaceReaderSvc defines read operations for workplace data
type WorkplaceReaderSvc interface {
	// FindWorkplaceByID retrieves a workplace the requesting user belongs to.
	FindWorkplaceByID(ctx context.Context, workplaceID, requestingUserID string) (*domain.Workplace, error)

	// ListUserWorkplaces retrieves the active workplaces a user belongs to.
	ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error)
}

// WorkplaceWriterSvc defines write operations for workplace data
type WorkplaceWriterSvc interface {
	// CreateWorkplace persists a new workplace with the creator as its admin.
	CreateWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest, creatorUserID string) (*domain.Workplace, error)
}

// WorkplaceMembershipSvc defines operations for managing workplace membership
type WorkplaceMembershipSvc interface {
	// AddUserToWorkplace adds a user or changes their role. Only admins may do this.
	AddUserToWorkplace(ctx context.Context, addingUserID, workplaceID string, req dto.AddUserToWorkplaceRequest) (*domain.UserWorkplace, error)
}

// WorkplaceAuthorizerSvc defines operations for workplace authorization
type WorkplaceAuthorizerSvc interface {
	// AuthorizeUserAction checks that a user holds at least requiredRole in a workplace.
	AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error
}

// WorkplaceSvcFacade combines all workplace-related service interfaces
type WorkplaceSvcFacade interface {
	WorkplaceReaderSvc
	WorkplaceWriterSvc
	WorkplaceMembershipSvc
	WorkplaceAuthorizerSvc
}
