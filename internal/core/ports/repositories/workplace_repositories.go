package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data
type WorkplaceReader interface {
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)

	// ListWorkplacesByUserID retrieves the active workplaces a user belongs to.
	ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data
type WorkplaceWriter interface {
	// SaveWorkplace persists a workplace together with its creator's admin membership.
	SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.UserWorkplace) error
}

// WorkplaceMembershipManager defines operations for managing workplace memberships
type WorkplaceMembershipManager interface {
	// AddUserToWorkplace adds a member or updates the role of an existing one.
	AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error

	FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error)
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
	WorkplaceMembershipManager
}

// WorkplaceRepositoryWithTx extends WorkplaceRepositoryFacade with transaction capabilities
type WorkplaceRepositoryWithTx interface {
	WorkplaceRepositoryFacade
	TransactionManager
}
