package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// GoalReader defines read operations for goal tree nodes
type GoalReader interface {
	// FindGoalByID retrieves a node by its level-scoped identity, soft-deleted or not.
	FindGoalByID(ctx context.Context, workplaceID string, key domain.NodeKey) (*domain.GoalNode, error)

	// ListGoalsByYear returns every node of a workplace for one year, including soft-deleted
	// nodes, so the caller can derive orphan flags from the snapshot alone.
	ListGoalsByYear(ctx context.Context, workplaceID string, year int) ([]domain.GoalNode, error)

	// CountGoalDependents counts the child goals of company and team nodes, soft-deleted
	// ones included, and the daily reports of personal nodes.
	CountGoalDependents(ctx context.Context, workplaceID string, key domain.NodeKey) (int, error)
}

// GoalWriter defines write operations for goal tree nodes
type GoalWriter interface {
	// SaveGoal persists a manually created node, quarters included.
	SaveGoal(ctx context.Context, goal domain.GoalNode) error

	// SaveGoalBatch persists the children of one split as a single unit. It returns the ids
	// that reached the store; a non-nil error with a non-empty id list is a partial write.
	SaveGoalBatch(ctx context.Context, goals []domain.GoalNode) ([]string, error)

	// MarkGoalDeleted soft deletes a node.
	MarkGoalDeleted(ctx context.Context, workplaceID string, key domain.NodeKey, userID string, at time.Time) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}

// GoalRepositoryWithTx extends GoalRepositoryFacade with transaction capabilities
type GoalRepositoryWithTx interface {
	GoalRepositoryFacade
	TransactionManager
}

// DailyReportReader defines read operations for daily reports
type DailyReportReader interface {
	FindDailyReportByID(ctx context.Context, workplaceID, reportID string) (*domain.DailyReport, error)

	// ListDailyReportsByGoals returns the reports of the given personal goals.
	ListDailyReportsByGoals(ctx context.Context, workplaceID string, goalIDs []string) ([]domain.DailyReport, error)
}

// DailyReportCheck validates a new report against the goal's reports as stored at save time.
type DailyReportCheck func(existing []domain.DailyReport) error

// DailyReportWriter defines write operations for daily reports
type DailyReportWriter interface {
	// SaveDailyReport inserts report. A non-nil check runs with the goal locked, so
	// concurrent saves against the same goal see each other's reports.
	SaveDailyReport(ctx context.Context, report domain.DailyReport, check DailyReportCheck) error
	DeleteDailyReport(ctx context.Context, workplaceID, reportID string) error
}

// DailyReportRepositoryFacade combines all daily-report repository interfaces
type DailyReportRepositoryFacade interface {
	DailyReportReader
	DailyReportWriter
}
