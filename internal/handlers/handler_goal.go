package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests for the goal tree and its daily reports.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// RegisterGoalRoutes registers goal and daily report routes under a workplace group.
func RegisterGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	rg.GET("/goal-tree", h.getGoalTree)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("/:level/:goal_id", h.getGoal)
		goals.POST("/:level/:goal_id/split", h.splitGoal)
		goals.DELETE("/:level/:goal_id", h.deleteGoal)
	}

	reports := rg.Group("/personal-goals/:goal_id/reports")
	{
		reports.POST("", h.addDailyReport)
		reports.GET("", h.listDailyReports)
	}
	rg.DELETE("/daily-reports/:report_id", h.deleteDailyReport)
}

// nodeKeyFromPath reads the :level and :goal_id path params. Levels are matched case-insensitively.
func nodeKeyFromPath(c *gin.Context) (domain.NodeKey, bool) {
	level := domain.GoalLevel(strings.ToUpper(c.Param("level")))
	if !level.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown goal level " + c.Param("level")})
		return domain.NodeKey{}, false
	}
	return domain.NodeKey{Level: level, ID: c.Param("goal_id")}, true
}

// createGoal godoc
// @Summary Create a goal
// @Description Creates a company yearly, team monthly or personal monthly goal. A parentID links the goal one level up.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Workplace or parent goal not found"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// getGoal godoc
// @Summary Get a goal
// @Tags goals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   level path string true "Goal level" Enums(COMPANY_YEARLY, TEAM_MONTHLY, PERSONAL_MONTHLY)
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Unknown level"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to get goal"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/goals/{level}/{goal_id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	key, ok := nodeKeyFromPath(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), workplaceID, key, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("goal", key.String())), err, "Failed to get goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// getGoalTree godoc
// @Summary Get the goal tree of a year
// @Description Returns the goal tree with actual values and progress aggregated from daily reports. Deleted goals are hidden unless includeDeleted is set; goals whose parent is gone are returned as roots flagged parentDeleted.
// @Tags goals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   year query int true "Goal year"
// @Param   from query string false "Reporting period start (YYYY-MM-DD)"
// @Param   to query string false "Reporting period end (YYYY-MM-DD)"
// @Param   includeDeleted query bool false "Include soft-deleted goals"
// @Success 200 {object} dto.GoalTreeResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Failure 500 {object} map[string]string "Failed to build goal tree"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/goal-tree [get]
func (h *goalHandler) getGoalTree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var params dto.GoalTreeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetGoalTree", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tree, err := h.goalService.GetGoalTree(c.Request.Context(), workplaceID, params, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to build goal tree")
		return
	}

	c.JSON(http.StatusOK, tree)
}

// splitGoal godoc
// @Summary Split a goal
// @Description Splits a company goal into team goals or a team goal into personal goals. Children whose targets do not add up to the parent are accepted; the gap is reported as remaining. With dryRun the split is validated and previewed only.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   level path string true "Parent goal level" Enums(COMPANY_YEARLY, TEAM_MONTHLY)
// @Param   goal_id path string true "Parent goal ID"
// @Param   split body dto.SplitGoalRequest true "Children"
// @Success 201 {object} dto.SplitGoalResponse
// @Success 200 {object} dto.SplitGoalResponse "Dry run"
// @Success 207 {object} map[string]interface{} "Some children were not written"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to split goal"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/goals/{level}/{goal_id}/split [post]
func (h *goalHandler) splitGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	key, ok := nodeKeyFromPath(c)
	if !ok {
		return
	}

	var req dto.SplitGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SplitGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("goal", key.String()))
	plan, err := h.goalService.SplitGoal(c.Request.Context(), workplaceID, key, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to split goal")
		return
	}

	status := http.StatusCreated
	if req.DryRun {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToSplitGoalResponse(plan, req.DryRun))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Goals are soft deleted; child goals and daily reports survive and report a deleted parent.
// @Tags goals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   level path string true "Goal level" Enums(COMPANY_YEARLY, TEAM_MONTHLY, PERSONAL_MONTHLY)
// @Param   goal_id path string true "Goal ID"
// @Success 200 {object} dto.DeleteGoalResponse
// @Failure 400 {object} map[string]string "Unknown level"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/goals/{level}/{goal_id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	key, ok := nodeKeyFromPath(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.goalService.DeleteGoal(c.Request.Context(), workplaceID, key, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("goal", key.String())), err, "Failed to delete goal")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// addDailyReport godoc
// @Summary File a daily report
// @Description Adds a daily report to a personal monthly goal. Reports claiming progress may not push the goal past 100%.
// @Tags daily-reports
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   goal_id path string true "Personal goal ID"
// @Param   report body dto.CreateDailyReportRequest true "Report"
// @Success 201 {object} dto.DailyReportResponse
// @Failure 400 {object} map[string]interface{} "Invalid input or progress over 100%"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to add daily report"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/personal-goals/{goal_id}/reports [post]
func (h *goalHandler) addDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	goalID := c.Param("goal_id")

	var req dto.CreateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddDailyReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	report, err := h.goalService.AddDailyReport(c.Request.Context(), workplaceID, goalID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("goal_id", goalID)), err, "Failed to add daily report")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDailyReportResponse(report))
}

// listDailyReports godoc
// @Summary List the daily reports of a personal goal
// @Tags daily-reports
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   goal_id path string true "Personal goal ID"
// @Success 200 {object} dto.ListDailyReportsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to list daily reports"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/personal-goals/{goal_id}/reports [get]
func (h *goalHandler) listDailyReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	goalID := c.Param("goal_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.goalService.ListDailyReports(c.Request.Context(), workplaceID, goalID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("goal_id", goalID)), err, "Failed to list daily reports")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// deleteDailyReport godoc
// @Summary Delete a daily report
// @Tags daily-reports
// @Param   workplace_id path string true "Workplace ID"
// @Param   report_id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Failed to delete daily report"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/daily-reports/{report_id} [delete]
func (h *goalHandler) deleteDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	reportID := c.Param("report_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.goalService.DeleteDailyReport(c.Request.Context(), workplaceID, reportID, userID); err != nil {
		respondError(c, logger.With(slog.String("report_id", reportID)), err, "Failed to delete daily report")
		return
	}

	c.Status(http.StatusNoContent)
}
