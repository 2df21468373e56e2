package services

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workplace service first; it authorizes every other service.
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo)
	workplaceAuthorizer := container.Workplace.(portssvc.WorkplaceAuthorizerSvc)

	container.Goal = NewGoalService(
		repos.GoalRepo,
		repos.DailyReportRepo,
		WithGoalWorkplaceAuthorizer(workplaceAuthorizer),
		WithDuplicateAssigneesRejected(!cfg.SplitAllowDuplicateAssignees),
	)

	container.Ledger = NewLedgerService(
		repos.FinancialRecordRepo,
		WithLedgerWorkplaceAuthorizer(workplaceAuthorizer),
		WithRatioScale(cfg.AllocationRatioScale),
	)

	return container
}
