package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// RegisterWorkplaceRoutes registers routes related to workplaces and their members.
func RegisterWorkplaceRoutes(rg *gin.RouterGroup, workplaceService portssvc.WorkplaceSvcFacade) {
	h := newWorkplaceHandler(workplaceService)

	workplacesTopLevel := rg.Group("/workplaces")
	{
		workplacesTopLevel.POST("", h.createWorkplace)
		workplacesTopLevel.GET("", h.listUserWorkplaces)
	}

	workplaceSpecific := rg.Group("/workplaces/:workplace_id")
	{
		workplaceSpecific.GET("", h.getWorkplace)
		workplaceSpecific.POST("/users", h.addUserToWorkplace)
	}
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a new workplace and assigns the creator as admin.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} dto.WorkplaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create workplace"
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	newWorkplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create workplace")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkplaceResponse(newWorkplace))
}

// listUserWorkplaces godoc
// @Summary List workplaces for current user
// @Description Retrieves a list of workplaces the authenticated user belongs to.
// @Tags workplaces
// @Produce  json
// @Success 200 {object} dto.ListWorkplacesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list workplaces"
// @Security BearerAuth
// @Router /workplaces [get]
func (h *workplaceHandler) listUserWorkplaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	workplaces, err := h.workplaceService.ListUserWorkplaces(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list workplaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkplacesResponse(workplaces))
}

// getWorkplace godoc
// @Summary Get a workplace
// @Tags workplaces
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.WorkplaceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Workplace not found or caller is not a member"
// @Failure 500 {object} map[string]string "Failed to get workplace"
// @Security BearerAuth
// @Router /workplaces/{workplace_id} [get]
func (h *workplaceHandler) getWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	workplace, err := h.workplaceService.FindWorkplaceByID(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to get workplace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkplaceResponse(workplace))
}

// addUserToWorkplace godoc
// @Summary Add a user to a workplace
// @Description Adds a user to a workplace with a given role, or changes the role of a member (requires admin permission).
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   user_details body dto.AddUserToWorkplaceRequest true "User ID and Role"
// @Success 200 {object} dto.UserWorkplaceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (caller is not admin)"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Failure 500 {object} map[string]string "Failed to add user"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/users [post]
func (h *workplaceHandler) addUserToWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var req dto.AddUserToWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddUserToWorkplace", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	addingUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("workplace_id", workplaceID), slog.String("target_user_id", req.UserID))
	membership, err := h.workplaceService.AddUserToWorkplace(c.Request.Context(), addingUserID, workplaceID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add user to workplace")
		return
	}

	logger.Info("User added to workplace successfully", slog.String("role", string(membership.Role)))
	c.JSON(http.StatusOK, dto.ToUserWorkplaceResponse(membership))
}
