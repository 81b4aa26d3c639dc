package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/internal/presentation/http/dto/response"
)

// AlertHandler handles alert-related HTTP requests
type AlertHandler struct {
	alertService *service.AlertService
	generator    *service.AlertGenerator
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService *service.AlertService, generator *service.AlertGenerator) *AlertHandler {
	return &AlertHandler{alertService: alertService, generator: generator}
}

// List handles listing alerts with optional status/seller filters
func (h *AlertHandler) List(c *gin.Context) {
	params := &repository.AlertFilterParams{}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.AlertStatus(strings.ToUpper(statusStr))
		if !status.Valid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}
	if sellerIDStr := c.Query("seller_id"); sellerIDStr != "" {
		sellerID, err := uuid.Parse(sellerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid seller_id filter")
			return
		}
		params.SellerID = &sellerID
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		params.Limit = limit
	}

	result, err := h.alertService.ListAlerts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Alerts retrieved successfully", result)
}

// Get handles getting a single alert
func (h *AlertHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	alert, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Alert retrieved successfully", alert)
}

// Resolve handles marking an alert as resolved
func (h *AlertHandler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	alert, err := h.alertService.ResolveAlert(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Alert resolved successfully", alert)
}

// Generate handles triggering a full alert generation run. A run
// already in flight answers 409.
func (h *AlertHandler) Generate(c *gin.Context) {
	summary, err := h.generator.GenerateAll(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrGenerationRunning) {
			response.Conflict(c, "Alert generation is already running")
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Alerts generated successfully", summary)
}
