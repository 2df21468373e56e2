package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// workplaceService handles workplaces and their memberships. It is also the
// authorizer every other service checks roles through.
type workplaceService struct {
	BaseService
	workplaceRepo portsrepo.WorkplaceRepositoryFacade
	now           func() time.Time
}

// NewWorkplaceService creates a new workplace service.
func NewWorkplaceService(repo portsrepo.WorkplaceRepositoryFacade) portssvc.WorkplaceSvcFacade {
	svc := &workplaceService{
		workplaceRepo: repo,
		now:           func() time.Time { return time.Now().UTC() },
	}
	svc.WorkplaceAuthorizer = svc
	return svc
}

var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// CreateWorkplace creates a workplace and makes the creator its admin.
func (s *workplaceService) CreateWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest, creatorUserID string) (*domain.Workplace, error) {
	now := s.now()
	workplace := domain.Workplace{
		WorkplaceID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	creator := domain.UserWorkplace{
		UserID:      creatorUserID,
		WorkplaceID: workplace.WorkplaceID,
		Role:        domain.RoleAdmin,
		JoinedAt:    now,
	}

	if err := s.workplaceRepo.SaveWorkplace(ctx, workplace, creator); err != nil {
		s.LogError(ctx, err, "Failed to save workplace", slog.String("workplace_name", req.Name))
		return nil, fmt.Errorf("failed to create workplace: %w", err)
	}

	s.LogInfo(ctx, "Workplace created", slog.String("workplace_id", workplace.WorkplaceID), slog.String("creator_user_id", creatorUserID))
	return &workplace, nil
}

// AddUserToWorkplace adds a member or changes the role of an existing one.
func (s *workplaceService) AddUserToWorkplace(ctx context.Context, addingUserID, workplaceID string, req dto.AddUserToWorkplaceRequest) (*domain.UserWorkplace, error) {
	if err := s.AuthorizeUser(ctx, addingUserID, workplaceID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	membership := domain.UserWorkplace{
		UserID:      req.UserID,
		WorkplaceID: workplaceID,
		Role:        req.Role,
		JoinedAt:    s.now(),
	}
	if err := s.workplaceRepo.AddUserToWorkplace(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to workplace",
			slog.String("target_user_id", req.UserID),
			slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to add user %s to workplace %s: %w", req.UserID, workplaceID, err)
	}

	s.LogInfo(ctx, "User added to workplace",
		slog.String("target_user_id", req.UserID),
		slog.String("workplace_id", workplaceID),
		slog.String("role", string(req.Role)),
		slog.String("added_by_user_id", addingUserID))
	return &membership, nil
}

// ListUserWorkplaces retrieves the workplaces a user belongs to.
func (s *workplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	workplaces, err := s.workplaceRepo.ListWorkplacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workplaces for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list workplaces for user %s: %w", userID, err)
	}
	if workplaces == nil {
		return []domain.Workplace{}, nil
	}
	s.LogDebug(ctx, "Workplaces listed for user", slog.String("user_id", userID), slog.Int("count", len(workplaces)))
	return workplaces, nil
}

// FindWorkplaceByID retrieves a workplace the requesting user is a member of.
func (s *workplaceService) FindWorkplaceByID(ctx context.Context, workplaceID, requestingUserID string) (*domain.Workplace, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, workplaceID, domain.RoleMember); err != nil {
		return nil, err
	}
	workplace, err := s.workplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workplace", slog.String("workplace_id", workplaceID))
		}
		return nil, err
	}
	return workplace, nil
}

// AuthorizeUserAction checks that a user holds requiredRole or a higher one.
// A user outside the workplace gets apperrors.ErrNotFound so workplace ids are not revealed;
// a member with too low a role gets apperrors.ErrForbidden.
func (s *workplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	membership, err := s.workplaceRepo.FindUserWorkplaceRole(ctx, userID, workplaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Authorization failed: user is not a member of the workplace",
				slog.String("user_id", userID), slog.String("workplace_id", workplaceID))
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to check user workplace role",
			slog.String("user_id", userID), slog.String("workplace_id", workplaceID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if membership.Role.Satisfies(requiredRole) {
		return nil
	}

	s.LogWarn(ctx, "Authorization failed: user lacks required role",
		slog.String("user_id", userID),
		slog.String("workplace_id", workplaceID),
		slog.String("user_role", string(membership.Role)),
		slog.String("required_role", string(requiredRole)))
	return apperrors.ErrForbidden
}
