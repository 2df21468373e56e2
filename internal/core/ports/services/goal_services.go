package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// GoalReaderSvc defines read operations for the goal tree
type GoalReaderSvc interface {
	// GetGoal retrieves a goal node, soft-deleted or not.
	GetGoal(ctx context.Context, workplaceID string, key domain.NodeKey, requestingUserID string) (*domain.GoalNode, error)

	// GetGoalTree loads every goal and daily report of a year and returns the aggregated tree.
	GetGoalTree(ctx context.Context, workplaceID string, params dto.GoalTreeParams, requestingUserID string) (*dto.GoalTreeResponse, error)
}

// GoalWriterSvc defines write operations for the goal tree
type GoalWriterSvc interface {
	// CreateGoal persists a manually created goal.
	CreateGoal(ctx context.Context, workplaceID string, req dto.CreateGoalRequest, creatorUserID string) (*domain.GoalNode, error)

	// SplitGoal validates the children of a split and persists them as one batch unless
	// the request is a dry run.
	SplitGoal(ctx context.Context, workplaceID string, key domain.NodeKey, req dto.SplitGoalRequest, requestingUserID string) (*engine.SplitPlan, error)

	// DeleteGoal soft deletes a goal; dependents are counted in the response.
	DeleteGoal(ctx context.Context, workplaceID string, key domain.NodeKey, requestingUserID string) (*dto.DeleteGoalResponse, error)
}

// DailyReportSvc defines operations on the leaves of the goal tree
type DailyReportSvc interface {
	AddDailyReport(ctx context.Context, workplaceID, goalID string, req dto.CreateDailyReportRequest, creatorUserID string) (*domain.DailyReport, error)
	ListDailyReports(ctx context.Context, workplaceID, goalID, requestingUserID string) (*dto.ListDailyReportsResponse, error)
	DeleteDailyReport(ctx context.Context, workplaceID, reportID, requestingUserID string) error
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
	DailyReportSvc
}
