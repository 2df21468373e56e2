package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for financial records and their allocations.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers allocation ledger routes under a workplace group.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	records := rg.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/:record_id", h.getRecord)
		records.POST("/:record_id/allocations", h.allocateRecord)
	}
	rg.GET("/ledger/summary", h.getLedgerSummary)
}

// createRecord godoc
// @Summary Create a financial record
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   record body dto.CreateFinancialRecordRequest true "Record details"
// @Success 201 {object} dto.FinancialRecordResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/records [post]
func (h *ledgerHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var req dto.CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	record, err := h.ledgerService.CreateRecord(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to create record")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFinancialRecordResponse(record))
}

// listRecords godoc
// @Summary List financial records
// @Description Lists records newest first. Allocation children are left out unless includeChildren is set.
// @Tags ledger
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   kind query string false "Record kind" Enums(REVENUE, EXPENSE, ACCOUNT_RECEIVABLE, ACCOUNT_PAYABLE, OPERATING_COST)
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Param   includeChildren query bool false "Include allocation children"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListFinancialRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/records [get]
func (h *ledgerHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var params dto.ListFinancialRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ListRecords(c.Request.Context(), workplaceID, params, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to list records")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getRecord godoc
// @Summary Get a financial record
// @Description Returns a record with its live allocation children and how much of it is still unallocated.
// @Tags ledger
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   record_id path string true "Record ID"
// @Success 200 {object} dto.GetFinancialRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to get record"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/records/{record_id} [get]
func (h *ledgerHandler) getRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	recordID := c.Param("record_id")
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetRecord(c.Request.Context(), workplaceID, recordID, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("record_id", recordID)), err, "Failed to get record")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// allocateRecord godoc
// @Summary Allocate a financial record
// @Description Splits a primary record over subsidiaries or departments by ratio or by direct amount. Allocating again replaces the previous children. An allocation that does not add up to the record is accepted and reported through remaining and balance.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   record_id path string true "Record ID"
// @Param   allocation body dto.AllocateRecordRequest true "Allocations"
// @Success 201 {object} dto.AllocateRecordResponse
// @Success 200 {object} dto.AllocateRecordResponse "Dry run"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Record not found"
// @Failure 500 {object} map[string]string "Failed to allocate record"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/records/{record_id}/allocations [post]
func (h *ledgerHandler) allocateRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")
	recordID := c.Param("record_id")

	var req dto.AllocateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AllocateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	plan, err := h.ledgerService.AllocateRecord(c.Request.Context(), workplaceID, recordID, req, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("record_id", recordID)), err, "Failed to allocate record")
		return
	}

	status := http.StatusCreated
	if req.DryRun {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToAllocateRecordResponse(plan, req.DryRun))
}

// getLedgerSummary godoc
// @Summary Summarize a record kind
// @Description Totals one record kind per organizational unit, counting each primary once whether or not it is allocated.
// @Tags ledger
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   kind query string true "Record kind" Enums(REVENUE, EXPENSE, ACCOUNT_RECEIVABLE, ACCOUNT_PAYABLE, OPERATING_COST)
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Failure 500 {object} map[string]string "Failed to summarize ledger"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/ledger/summary [get]
func (h *ledgerHandler) getLedgerSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var params dto.LedgerSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetLedgerSummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetLedgerSummary(c.Request.Context(), workplaceID, params, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("workplace_id", workplaceID)), err, "Failed to summarize ledger")
		return
	}

	c.JSON(http.StatusOK, resp)
}
