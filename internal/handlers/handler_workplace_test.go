package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/handlers"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkplaceHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockWorkplaceSvc *MockWorkplaceService
	token            string
	userID           string
}

func (suite *WorkplaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockWorkplaceSvc = new(MockWorkplaceService)
	suite.userID = "admin-1"

	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterWorkplaceRoutes(suite.router.Group("/api/v1"), suite.mockWorkplaceSvc)
}

func (suite *WorkplaceHandlerTestSuite) TearDownTest() {
	suite.mockWorkplaceSvc.AssertExpectations(suite.T())
}

func TestWorkplaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkplaceHandlerTestSuite))
}

func (suite *WorkplaceHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	raw := []byte(nil)
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	req, err := http.NewRequest(method, "/api/v1"+path, bytes.NewReader(raw))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.token)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WorkplaceHandlerTestSuite) TestCreateWorkplace_Success() {
	req := dto.CreateWorkplaceRequest{Name: "Sales"}
	suite.mockWorkplaceSvc.On("CreateWorkplace", mock.Anything, req, suite.userID).
		Return(&domain.Workplace{WorkplaceID: "wp-1", Name: "Sales", IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/workplaces", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.WorkplaceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("wp-1", resp.WorkplaceID)
	suite.True(resp.IsActive)
}

func (suite *WorkplaceHandlerTestSuite) TestCreateWorkplace_NameRequired() {
	w := suite.do(http.MethodPost, "/workplaces", map[string]string{"description": "no name"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWorkplaceSvc.AssertNotCalled(suite.T(), "CreateWorkplace", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkplaceHandlerTestSuite) TestListUserWorkplaces() {
	suite.mockWorkplaceSvc.On("ListUserWorkplaces", mock.Anything, suite.userID).
		Return([]domain.Workplace{{WorkplaceID: "wp-1", Name: "Sales"}, {WorkplaceID: "wp-2", Name: "Ops"}}, nil).Once()

	w := suite.do(http.MethodGet, "/workplaces", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListWorkplacesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Workplaces, 2)
}

func (suite *WorkplaceHandlerTestSuite) TestGetWorkplace_NonMemberSeesNotFound() {
	suite.mockWorkplaceSvc.On("FindWorkplaceByID", mock.Anything, "wp-9", suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/workplaces/wp-9", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *WorkplaceHandlerTestSuite) TestAddUserToWorkplace_Success() {
	req := dto.AddUserToWorkplaceRequest{UserID: "user-2", Role: domain.RoleManager}
	suite.mockWorkplaceSvc.On("AddUserToWorkplace", mock.Anything, suite.userID, "wp-1", req).
		Return(&domain.UserWorkplace{UserID: "user-2", WorkplaceID: "wp-1", Role: domain.RoleManager}, nil).Once()

	w := suite.do(http.MethodPost, "/workplaces/wp-1/users", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserWorkplaceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.RoleManager, resp.Role)
}

func (suite *WorkplaceHandlerTestSuite) TestAddUserToWorkplace_Forbidden() {
	req := dto.AddUserToWorkplaceRequest{UserID: "user-2", Role: domain.RoleAdmin}
	suite.mockWorkplaceSvc.On("AddUserToWorkplace", mock.Anything, suite.userID, "wp-1", req).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, "/workplaces/wp-1/users", req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *WorkplaceHandlerTestSuite) TestAddUserToWorkplace_RemovedIsNotAssignable() {
	w := suite.do(http.MethodPost, "/workplaces/wp-1/users", map[string]string{"userID": "user-2", "role": "REMOVED"})

	suite.Equal(http.StatusBadRequest, w.Code)
}
