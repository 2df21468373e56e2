package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/core/engine"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockFinancialRecordRepository
	mockAuthorizer *MockWorkplaceAuthorizer
	service        portssvc.LedgerSvcFacade
	now            time.Time
	workplaceID    string
	userID         string
	ctx            context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockFinancialRecordRepository)
	suite.mockAuthorizer = new(MockWorkplaceAuthorizer)
	suite.now = time.Date(2024, 12, 20, 8, 30, 0, 0, time.UTC)
	suite.workplaceID = "wp-1"
	suite.userID = "manager-1"
	suite.ctx = context.Background()
	suite.service = services.NewLedgerService(
		suite.mockRecordRepo,
		services.WithLedgerWorkplaceAuthorizer(suite.mockAuthorizer),
		services.WithLedgerClock(func() time.Time { return suite.now }, sequentialIDs("rec")),
	)
}

func (suite *LedgerServiceTestSuite) allow(role domain.UserWorkplaceRole) {
	suite.mockAuthorizer.On("AuthorizeUserAction", suite.ctx, suite.userID, suite.workplaceID, role).Return(nil).Once()
}

func (suite *LedgerServiceTestSuite) revenue(id, amount string) *domain.FinancialRecord {
	return &domain.FinancialRecord{
		RecordID:              id,
		WorkplaceID:           suite.workplaceID,
		Kind:                  domain.Revenue,
		Amount:                dec(amount),
		RecordDate:            time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		Description:           "Q4 contract",
		OrganizationalUnitRef: "hq",
		OrgUnitType:           domain.Subsidiary,
	}
}

func amountOf(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func (suite *LedgerServiceTestSuite) TestAllocateRecord_DirectAmountsBalance() {
	primary := suite.revenue("prim-1", "500000")
	req := dto.AllocateRecordRequest{Allocations: []dto.AllocationRequest{
		{OrganizationalUnitRef: "east", OrgUnitType: domain.Department, Amount: amountOf("200000")},
		{OrganizationalUnitRef: "west", OrgUnitType: domain.Department, Amount: amountOf("175000")},
		{OrganizationalUnitRef: "north", OrgUnitType: domain.Department, Amount: amountOf("125000")},
	}}
	suite.allow(domain.RoleManager)
	suite.mockRecordRepo.On("FindRecordByID", suite.ctx, suite.workplaceID, "prim-1").Return(primary, nil).Once()
	suite.mockRecordRepo.On("SaveAllocation", suite.ctx,
		mock.MatchedBy(func(p domain.FinancialRecord) bool {
			return p.RecordID == "prim-1" && p.IsAllocated && p.AllocationType == domain.AllocationRatio
		}),
		mock.MatchedBy(func(children []domain.FinancialRecord) bool {
			return len(children) == 3 && children[0].IsAllocationChild && children[0].ParentRecordRef == "prim-1"
		}),
	).Return(nil).Once()

	plan, err := suite.service.AllocateRecord(suite.ctx, suite.workplaceID, "prim-1", req, suite.userID)

	suite.Require().NoError(err)
	assertDecimal(suite.T(), "500000", plan.Allocated)
	assertDecimal(suite.T(), "0", plan.Remaining)
	suite.Equal(engine.StatusBalanced, plan.Balance)
	assertDecimal(suite.T(), "40", plan.Children[0].AllocationRatio)
	assertDecimal(suite.T(), "35", plan.Children[1].AllocationRatio)
	assertDecimal(suite.T(), "25", plan.Children[2].AllocationRatio)
	suite.Equal("rec-1", plan.Children[0].RecordID)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAllocateRecord_ShortAllocationIsSavedAndReported() {
	primary := suite.revenue("prim-1", "500000")
	req := dto.AllocateRecordRequest{Allocations: []dto.AllocationRequest{
		{OrganizationalUnitRef: "east", OrgUnitType: domain.Department, Amount: amountOf("300000")},
		{OrganizationalUnitRef: "west", OrgUnitType: domain.Department, Amount: amountOf("100000")},
	}}
	suite.allow(domain.RoleManager)
	suite.mockRecordRepo.On("FindRecordByID", suite.ctx, suite.workplaceID, "prim-1").Return(primary, nil).Once()
	suite.mockRecordRepo.On("SaveAllocation", suite.ctx, mock.AnythingOfType("domain.FinancialRecord"), mock.AnythingOfType("[]domain.FinancialRecord")).Return(nil).Once()

	plan, err := suite.service.AllocateRecord(suite.ctx, suite.workplaceID, "prim-1", req, suite.userID)

	suite.Require().NoError(err)
	assertDecimal(suite.T(), "100000", plan.Remaining)
	suite.Equal(engine.StatusRemaining, plan.Balance)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAllocateRecord_ChildCannotBeAllocated() {
	child := suite.revenue("child-1", "100")
	child.IsAllocationChild = true
	child.ParentRecordRef = "prim-1"
	req := dto.AllocateRecordRequest{Allocations: []dto.AllocationRequest{
		{OrganizationalUnitRef: "east", OrgUnitType: domain.Department, Ratio: amountOf("100")},
	}}
	suite.allow(domain.RoleManager)
	suite.mockRecordRepo.On("FindRecordByID", suite.ctx, suite.workplaceID, "child-1").Return(child, nil).Once()

	_, err := suite.service.AllocateRecord(suite.ctx, suite.workplaceID, "child-1", req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveAllocation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAllocateRecord_DryRun() {
	primary := suite.revenue("prim-1", "1000")
	req := dto.AllocateRecordRequest{
		Allocations: []dto.AllocationRequest{
			{OrganizationalUnitRef: "east", OrgUnitType: domain.Department, Ratio: amountOf("33.33")},
			{OrganizationalUnitRef: "west", OrgUnitType: domain.Department, Ratio: amountOf("66.67")},
		},
		DryRun: true,
	}
	suite.allow(domain.RoleManager)
	suite.mockRecordRepo.On("FindRecordByID", suite.ctx, suite.workplaceID, "prim-1").Return(primary, nil).Once()

	plan, err := suite.service.AllocateRecord(suite.ctx, suite.workplaceID, "prim-1", req, suite.userID)

	suite.Require().NoError(err)
	assertDecimal(suite.T(), "333.3", plan.Children[0].Amount)
	assertDecimal(suite.T(), "666.7", plan.Children[1].Amount)
	suite.Equal(engine.StatusBalanced, plan.Balance)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveAllocation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetLedgerSummary_CountsEachPrimaryOnce() {
	allocated := suite.revenue("prim-1", "500000")
	allocated.IsAllocated = true
	allocated.AllocationType = domain.AllocationRatio
	east := suite.revenue("child-1", "300000")
	east.IsAllocationChild, east.ParentRecordRef, east.OrganizationalUnitRef = true, "prim-1", "east"
	west := suite.revenue("child-2", "200000")
	west.IsAllocationChild, west.ParentRecordRef, west.OrganizationalUnitRef = true, "prim-1", "west"
	plain := suite.revenue("prim-2", "100000")
	plain.OrganizationalUnitRef = "east"

	suite.allow(domain.RoleMember)
	suite.mockRecordRepo.On("ListRecordsForPeriod", suite.ctx, suite.workplaceID, mock.MatchedBy(func(f portsrepo.FinancialRecordFilter) bool {
		return f.Kind != nil && *f.Kind == domain.Revenue && f.IncludeChildren && f.From != nil && f.To != nil
	})).Return([]domain.FinancialRecord{*allocated, *east, *west, *plain}, nil).Once()

	summary, err := suite.service.GetLedgerSummary(suite.ctx, suite.workplaceID, dto.LedgerSummaryParams{
		Kind: "REVENUE",
		From: "2024-12-01",
		To:   "2024-12-31",
	}, suite.userID)

	suite.Require().NoError(err)
	assertDecimal(suite.T(), "600000", summary.PrimaryTotal)
	assertDecimal(suite.T(), "500000", summary.AllocatedTotal)
	suite.Require().Len(summary.ByUnit, 2)
	suite.Equal("east", summary.ByUnit[0].OrganizationalUnitRef)
	assertDecimal(suite.T(), "400000", summary.ByUnit[0].Amount)
	suite.Equal("west", summary.ByUnit[1].OrganizationalUnitRef)
	assertDecimal(suite.T(), "200000", summary.ByUnit[1].Amount)
	suite.Empty(summary.Discrepancies)
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_RejectsNonPositiveAmount() {
	suite.allow(domain.RoleManager)

	_, err := suite.service.CreateRecord(suite.ctx, suite.workplaceID, dto.CreateFinancialRecordRequest{
		Kind:                  domain.Expense,
		Amount:                decimal.Zero,
		RecordDate:            "2024-12-01",
		OrganizationalUnitRef: "hq",
		OrgUnitType:           domain.Subsidiary,
	}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateRecord_Success() {
	suite.allow(domain.RoleManager)
	suite.mockRecordRepo.On("SaveRecord", suite.ctx, mock.MatchedBy(func(r domain.FinancialRecord) bool {
		return r.RecordID == "rec-1" && r.IsPrimary() && !r.IsAllocated
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(suite.ctx, suite.workplaceID, dto.CreateFinancialRecordRequest{
		Kind:                  domain.OperatingCost,
		Amount:                dec("1250.50"),
		RecordDate:            "2024-12-01",
		Description:           "office rent",
		OrganizationalUnitRef: "hq",
		OrgUnitType:           domain.Subsidiary,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OperatingCost, record.Kind)
	suite.Equal(suite.now, record.CreatedAt)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListRecords_ForwardsPagination() {
	token := "abc"
	suite.allow(domain.RoleMember)
	suite.mockRecordRepo.On("ListRecords", suite.ctx, suite.workplaceID, portsrepo.FinancialRecordFilter{}, 20, &token).
		Return([]domain.FinancialRecord{*suite.revenue("prim-1", "10")}, "next", nil).Once()

	resp, err := suite.service.ListRecords(suite.ctx, suite.workplaceID, dto.ListFinancialRecordsParams{Limit: 20, NextToken: &token}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(resp.Records, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next", *resp.NextToken)
}

func (suite *LedgerServiceTestSuite) TestGetRecord_ReportsRemaining() {
	primary := suite.revenue("prim-1", "1000")
	primary.IsAllocated = true
	child := suite.revenue("child-1", "1200")
	child.IsAllocationChild, child.ParentRecordRef = true, "prim-1"
	suite.allow(domain.RoleMember)
	suite.mockRecordRepo.On("FindRecordByID", suite.ctx, suite.workplaceID, "prim-1").Return(primary, nil).Once()
	suite.mockRecordRepo.On("ListAllocationChildren", suite.ctx, suite.workplaceID, "prim-1").Return([]domain.FinancialRecord{*child}, nil).Once()

	resp, err := suite.service.GetRecord(suite.ctx, suite.workplaceID, "prim-1", suite.userID)

	suite.Require().NoError(err)
	suite.Len(resp.Children, 1)
	assertDecimal(suite.T(), "-200", resp.Remaining)
	suite.Equal(engine.StatusExcess, resp.Balance)
}

func (suite *LedgerServiceTestSuite) TestGetRecord_NotFound() {
	suite.allow(domain.RoleMember)
	suite.mockRecordRepo.On("FindRecordByID", suite.ctx, suite.workplaceID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetRecord(suite.ctx, suite.workplaceID, "missing", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
