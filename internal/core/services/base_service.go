package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
)

// BaseService provides logging and workplace authorization shared by the services.
type BaseService struct {
	WorkplaceAuthorizer portssvc.WorkplaceAuthorizerSvc
}

// GetLogger returns the request logger, or the default logger outside a request.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	return slog.Default()
}

// LogError logs err under msg with the given attributes.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that userID holds at least requiredRole in workplaceID.
// Without an authorizer every call is allowed.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	if s.WorkplaceAuthorizer == nil {
		s.LogDebug(ctx, "No workplace authorizer configured, skipping role check",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("required_role", string(requiredRole)))
		return nil
	}
	if err := s.WorkplaceAuthorizer.AuthorizeUserAction(ctx, userID, workplaceID, requiredRole); err != nil {
		s.LogError(ctx, err, "User not authorized",
			slog.String("user_id", userID),
			slog.String("workplace_id", workplaceID),
			slog.String("required_role", string(requiredRole)))
		return err
	}
	return nil
}
