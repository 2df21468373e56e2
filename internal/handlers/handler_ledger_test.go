package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockLedgerSvc *MockLedgerService
	token         string
	userID        string
	workplaceID   string
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.userID = "finance-1"
	suite.workplaceID = "wp-1"

	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	v1 := suite.router.Group("/api/v1/workplaces/:workplace_id")
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerSvc)
}

func (suite *LedgerHandlerTestSuite) TearDownTest() {
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (suite *LedgerHandlerTestSuite) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	req, err := http.NewRequest(method, "/api/v1/workplaces/"+suite.workplaceID+path, bytes.NewReader(raw))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func primaryExpense() domain.FinancialRecord {
	return domain.FinancialRecord{
		RecordID:              "rec-1",
		WorkplaceID:           "wp-1",
		Kind:                  domain.Expense,
		Amount:                decimal.NewFromInt(1000),
		RecordDate:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		OrganizationalUnitRef: "hq",
		OrgUnitType:           domain.Subsidiary,
	}
}

func (suite *LedgerHandlerTestSuite) TestCreateRecord_Success() {
	record := primaryExpense()
	suite.mockLedgerSvc.On("CreateRecord", mock.Anything, suite.workplaceID,
		mock.MatchedBy(func(r dto.CreateFinancialRecordRequest) bool {
			return r.Kind == domain.Expense && r.Amount.Equal(decimal.NewFromInt(1000))
		}), suite.userID).Return(&record, nil).Once()

	w, body := suite.do(http.MethodPost, "/records", map[string]any{
		"kind": "EXPENSE", "amount": "1000", "recordDate": "2025-03-01",
		"organizationalUnitRef": "hq", "orgUnitType": "SUBSIDIARY",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("rec-1", body["recordID"])
	suite.Equal(false, body["isAllocationChild"])
}

func (suite *LedgerHandlerTestSuite) TestCreateRecord_UnknownKind() {
	w, _ := suite.do(http.MethodPost, "/records", map[string]any{
		"kind": "GIFT", "amount": "1", "recordDate": "2025-03-01",
		"organizationalUnitRef": "hq", "orgUnitType": "SUBSIDIARY",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "CreateRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestListRecords_DefaultsAndToken() {
	next := "cursor-2"
	suite.mockLedgerSvc.On("ListRecords", mock.Anything, suite.workplaceID,
		mock.MatchedBy(func(p dto.ListFinancialRecordsParams) bool {
			return p.Limit == 20 && p.Kind == "EXPENSE" && p.NextToken != nil && *p.NextToken == "cursor-1"
		}), suite.userID).
		Return(&dto.ListFinancialRecordsResponse{Records: []dto.FinancialRecordResponse{}, NextToken: &next}, nil).Once()

	w, body := suite.do(http.MethodGet, "/records?kind=EXPENSE&nextToken=cursor-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("cursor-2", body["nextToken"])
}

func (suite *LedgerHandlerTestSuite) TestListRecords_InvalidToken() {
	token := "garbage"
	suite.mockLedgerSvc.On("ListRecords", mock.Anything, suite.workplaceID,
		mock.MatchedBy(func(p dto.ListFinancialRecordsParams) bool { return p.NextToken != nil && *p.NextToken == token }),
		suite.userID).Return(nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", nil)).Once()

	w, body := suite.do(http.MethodGet, "/records?nextToken="+token, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid nextToken", body["error"])
}

func (suite *LedgerHandlerTestSuite) TestGetRecord_NotFound() {
	suite.mockLedgerSvc.On("GetRecord", mock.Anything, suite.workplaceID, "missing", suite.userID).
		Return(nil, apperrors.NewNotFoundError("record missing")).Once()

	w, _ := suite.do(http.MethodGet, "/records/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) allocationPlan() *engine.AllocationPlan {
	primary := primaryExpense()
	primary.IsAllocated = true
	primary.AllocationType = domain.AllocationRatio
	ratio := decimal.RequireFromString("0.6")
	child := domain.FinancialRecord{
		RecordID: "rec-2", WorkplaceID: "wp-1", Kind: domain.Expense, Amount: decimal.NewFromInt(600),
		RecordDate: primary.RecordDate, OrganizationalUnitRef: "east", OrgUnitType: domain.Department,
		IsAllocationChild: true, ParentRecordRef: "rec-1", AllocationRatio: ratio,
	}
	return &engine.AllocationPlan{
		Primary:    primary,
		Children:   []domain.FinancialRecord{child},
		Allocated:  decimal.NewFromInt(600),
		Remaining:  decimal.NewFromInt(400),
		Balance:    engine.StatusRemaining,
		RatioTotal: ratio,
	}
}

func (suite *LedgerHandlerTestSuite) TestAllocateRecord_Created() {
	suite.mockLedgerSvc.On("AllocateRecord", mock.Anything, suite.workplaceID, "rec-1",
		mock.MatchedBy(func(r dto.AllocateRecordRequest) bool {
			return len(r.Allocations) == 1 && r.Allocations[0].Ratio != nil && r.Allocations[0].Amount == nil
		}), suite.userID).Return(suite.allocationPlan(), nil).Once()

	w, body := suite.do(http.MethodPost, "/records/rec-1/allocations", map[string]any{
		"allocations": []map[string]any{{"organizationalUnitRef": "east", "orgUnitType": "DEPARTMENT", "ratio": "0.6"}},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("400", body["remaining"])
	suite.Equal("REMAINING", body["balance"])
	children, ok := body["children"].([]any)
	suite.Require().True(ok)
	suite.Len(children, 1)
	suite.Equal("rec-1", children[0].(map[string]any)["parentRecordRef"])
}

func (suite *LedgerHandlerTestSuite) TestAllocateRecord_DryRun() {
	suite.mockLedgerSvc.On("AllocateRecord", mock.Anything, suite.workplaceID, "rec-1",
		mock.MatchedBy(func(r dto.AllocateRecordRequest) bool { return r.DryRun }), suite.userID).
		Return(suite.allocationPlan(), nil).Once()

	w, body := suite.do(http.MethodPost, "/records/rec-1/allocations", map[string]any{
		"allocations": []map[string]any{{"organizationalUnitRef": "east", "orgUnitType": "DEPARTMENT", "ratio": "0.6"}},
		"dryRun":      true,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["dryRun"])
}

func (suite *LedgerHandlerTestSuite) TestAllocateRecord_ChildRejected() {
	suite.mockLedgerSvc.On("AllocateRecord", mock.Anything, suite.workplaceID, "rec-2", mock.Anything, suite.userID).
		Return(nil, apperrors.NewValidationFailedError("allocation children cannot be allocated")).Once()

	w, body := suite.do(http.MethodPost, "/records/rec-2/allocations", map[string]any{"allocations": []any{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(body["error"], "allocation children cannot be allocated")
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerSummary_KindRequired() {
	w, _ := suite.do(http.MethodGet, "/ledger/summary", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "GetLedgerSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerSummary_Success() {
	params := dto.LedgerSummaryParams{Kind: "REVENUE", From: "2025-01-01", To: "2025-12-31"}
	suite.mockLedgerSvc.On("GetLedgerSummary", mock.Anything, suite.workplaceID, params, suite.userID).
		Return(&dto.LedgerSummaryResponse{
			Kind:           domain.Revenue,
			PrimaryTotal:   decimal.NewFromInt(600000),
			AllocatedTotal: decimal.NewFromInt(500000),
			ByUnit:         []engine.UnitTotal{},
			Discrepancies:  []engine.Discrepancy{},
		}, nil).Once()

	w, body := suite.do(http.MethodGet, "/ledger/summary?kind=REVENUE&from=2025-01-01&to=2025-12-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("600000", body["primaryTotal"])
}
