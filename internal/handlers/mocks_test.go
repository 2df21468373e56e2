package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-for-handlers"

// generateTestToken creates a valid JWT for testing
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "test-issuer",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

func (m *MockGoalService) GetGoal(ctx context.Context, workplaceID string, key domain.NodeKey, userID string) (*domain.GoalNode, error) {
	args := m.Called(ctx, workplaceID, key, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalNode), args.Error(1)
}

func (m *MockGoalService) GetGoalTree(ctx context.Context, workplaceID string, params dto.GoalTreeParams, userID string) (*dto.GoalTreeResponse, error) {
	args := m.Called(ctx, workplaceID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GoalTreeResponse), args.Error(1)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, workplaceID string, req dto.CreateGoalRequest, userID string) (*domain.GoalNode, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalNode), args.Error(1)
}

func (m *MockGoalService) SplitGoal(ctx context.Context, workplaceID string, key domain.NodeKey, req dto.SplitGoalRequest, userID string) (*engine.SplitPlan, error) {
	args := m.Called(ctx, workplaceID, key, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.SplitPlan), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, workplaceID string, key domain.NodeKey, userID string) (*dto.DeleteGoalResponse, error) {
	args := m.Called(ctx, workplaceID, key, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteGoalResponse), args.Error(1)
}

func (m *MockGoalService) AddDailyReport(ctx context.Context, workplaceID, goalID string, req dto.CreateDailyReportRequest, userID string) (*domain.DailyReport, error) {
	args := m.Called(ctx, workplaceID, goalID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockGoalService) ListDailyReports(ctx context.Context, workplaceID, goalID, userID string) (*dto.ListDailyReportsResponse, error) {
	args := m.Called(ctx, workplaceID, goalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDailyReportsResponse), args.Error(1)
}

func (m *MockGoalService) DeleteDailyReport(ctx context.Context, workplaceID, reportID, userID string) error {
	args := m.Called(ctx, workplaceID, reportID, userID)
	return args.Error(0)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetRecord(ctx context.Context, workplaceID, recordID, userID string) (*dto.GetFinancialRecordResponse, error) {
	args := m.Called(ctx, workplaceID, recordID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GetFinancialRecordResponse), args.Error(1)
}

func (m *MockLedgerService) ListRecords(ctx context.Context, workplaceID string, params dto.ListFinancialRecordsParams, userID string) (*dto.ListFinancialRecordsResponse, error) {
	args := m.Called(ctx, workplaceID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListFinancialRecordsResponse), args.Error(1)
}

func (m *MockLedgerService) GetLedgerSummary(ctx context.Context, workplaceID string, params dto.LedgerSummaryParams, userID string) (*dto.LedgerSummaryResponse, error) {
	args := m.Called(ctx, workplaceID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LedgerSummaryResponse), args.Error(1)
}

func (m *MockLedgerService) CreateRecord(ctx context.Context, workplaceID string, req dto.CreateFinancialRecordRequest, userID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockLedgerService) AllocateRecord(ctx context.Context, workplaceID, recordID string, req dto.AllocateRecordRequest, userID string) (*engine.AllocationPlan, error) {
	args := m.Called(ctx, workplaceID, recordID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.AllocationPlan), args.Error(1)
}

// --- Mock WorkplaceService ---
type MockWorkplaceService struct {
	mock.Mock
}

var _ portssvc.WorkplaceSvcFacade = (*MockWorkplaceService)(nil)

func (m *MockWorkplaceService) FindWorkplaceByID(ctx context.Context, workplaceID, userID string) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceService) ListUserWorkplaces(ctx context.Context, userID string) ([]domain.Workplace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceService) CreateWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest, userID string) (*domain.Workplace, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}

func (m *MockWorkplaceService) AddUserToWorkplace(ctx context.Context, addingUserID, workplaceID string, req dto.AddUserToWorkplaceRequest) (*domain.UserWorkplace, error) {
	args := m.Called(ctx, addingUserID, workplaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWorkplace), args.Error(1)
}

func (m *MockWorkplaceService) AuthorizeUserAction(ctx context.Context, userID, workplaceID string, requiredRole domain.UserWorkplaceRole) error {
	args := m.Called(ctx, userID, workplaceID, requiredRole)
	return args.Error(0)
}
