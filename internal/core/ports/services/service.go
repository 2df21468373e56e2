package services

// ServiceContainer holds instances of all the application services.
// Handlers reach every operation through it.
type ServiceContainer struct {
	Workplace WorkplaceSvcFacade
	Goal      GoalSvcFacade
	Ledger    LedgerSvcFacade
}
