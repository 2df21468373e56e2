package services_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

var _ portsrepo.GoalRepositoryFacade = (*MockGoalRepository)(nil)

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, workplaceID string, key domain.NodeKey) (*domain.GoalNode, error) {
	args := m.Called(ctx, workplaceID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalNode), args.Error(1)
}

func (m *MockGoalRepository) ListGoalsByYear(ctx context.Context, workplaceID string, year int) ([]domain.GoalNode, error) {
	args := m.Called(ctx, workplaceID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoalNode), args.Error(1)
}

func (m *MockGoalRepository) CountGoalDependents(ctx context.Context, workplaceID string, key domain.NodeKey) (int, error) {
	args := m.Called(ctx, workplaceID, key)
	return args.Int(0), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.GoalNode) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) SaveGoalBatch(ctx context.Context, goals []domain.GoalNode) ([]string, error) {
	args := m.Called(ctx, goals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGoalRepository) MarkGoalDeleted(ctx context.Context, workplaceID string, key domain.NodeKey, userID string, at time.Time) error {
	args := m.Called(ctx, workplaceID, key, userID, at)
	return args.Error(0)
}

// --- Mock DailyReportRepository ---
type MockDailyReportRepository struct {
	mock.Mock
}

var _ portsrepo.DailyReportRepositoryFacade = (*MockDailyReportRepository)(nil)

func (m *MockDailyReportRepository) FindDailyReportByID(ctx context.Context, workplaceID, reportID string) (*domain.DailyReport, error) {
	args := m.Called(ctx, workplaceID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockDailyReportRepository) ListDailyReportsByGoals(ctx context.Context, workplaceID string, goalIDs []string) ([]domain.DailyReport, error) {
	args := m.Called(ctx, workplaceID, goalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

// SaveDailyReport returns (existing []domain.DailyReport, err); check runs against existing.
func (m *MockDailyReportRepository) SaveDailyReport(ctx context.Context, report domain.DailyReport, check portsrepo.DailyReportCheck) error {
	args := m.Called(ctx, report)
	if check != nil && args.Get(0) != nil {
		if err := check(args.Get(0).([]domain.DailyReport)); err != nil {
			return err
		}
	}
	return args.Error(1)
}

func (m *MockDailyReportRepository) DeleteDailyReport(ctx context.Context, workplaceID, reportID string) error {
	args := m.Called(ctx, workplaceID, reportID)
	return args.Error(0)
}

// --- Mock FinancialRecordRepository ---
type MockFinancialRecordRepository struct {
	mock.Mock
}

var _ portsrepo.FinancialRecordRepositoryFacade = (*MockFinancialRecordRepository)(nil)

func (m *MockFinancialRecordRepository) FindRecordByID(ctx context.Context, workplaceID, recordID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, workplaceID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) ListAllocationChildren(ctx context.Context, workplaceID, parentRecordID string) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, workplaceID, parentRecordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) ListRecords(ctx context.Context, workplaceID string, filter portsrepo.FinancialRecordFilter, limit int, nextToken *string) ([]domain.FinancialRecord, *string, error) {
	args := m.Called(ctx, workplaceID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.FinancialRecord), returnedNextToken, args.Error(2)
}

func (m *MockFinancialRecordRepository) ListRecordsForPeriod(ctx context.Context, workplaceID string, filter portsrepo.FinancialRecordFilter) ([]domain.FinancialRecord, error) {
	args := m.Called(ctx, workplaceID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialRecord), args.Error(1)
}

func (m *MockFinancialRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockFinancialRecordRepository) SaveAllocation(ctx context.Context, primary domain.FinancialRecord, children []domain.FinancialRecord) error {
	args := m.Called(ctx, primary, children)
	return args.Error(0)
}

// --- Mock WorkplaceRepository ---
type MockWorkplaceRepository struct {
	mock.Mock
}

var _ portsrepo.WorkplaceRepositoryFacade = (*MockWorkplaceRepository)(nil)

func (m *MockWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) ListWorkplacesByUserID(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace, creator domain.UserWorkplace) error {
	args := m.Called(ctx, workplace, creator)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) AddUserToWorkplace(ctx context.Context, membership domain.UserWorkplace) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockWorkplaceRepository) FindUserWorkplaceRole(ctx context.Context, userID, workplaceID string) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, userID, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}

// --- Mock WorkplaceAuthorizer ---
type MockWorkplaceAuthorizer struct {
	mock.Mock
}

var _ portssvc.WorkplaceAuthorizerSvc = (*MockWorkplaceAuthorizer)(nil)

func (m *MockWorkplaceAuthorizer) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}

// --- helpers ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
