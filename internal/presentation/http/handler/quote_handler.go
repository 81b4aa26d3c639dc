package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/internal/presentation/http/dto/response"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// List handles listing quotes with filters
func (h *QuoteHandler) List(c *gin.Context) {
	params := &repository.QuoteFilterParams{
		Pagination: paginationFromQuery(c),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := enum.ParseQuoteStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer_id filter")
			return
		}
		params.CustomerID = &customerID
	}
	if sellerIDStr := c.Query("seller_id"); sellerIDStr != "" {
		sellerID, err := uuid.Parse(sellerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid seller_id filter")
			return
		}
		params.SellerID = &sellerID
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Create handles creating a quote
func (h *QuoteHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID `json:"customer_id" binding:"required"`
		Items      []struct {
			ProductID uuid.UUID `json:"product_id" binding:"required"`
			Quantity  int       `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
		Notes    *string `json:"notes"`
		PlacedAt *string `json:"placed_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	placedAt, err := parseDate(req.PlacedAt)
	if err != nil {
		response.BadRequest(c, "Invalid placed_at, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateQuoteInput{
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
		PlacedAt:   placedAt,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.QuoteItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// Get handles getting a single quote with its items
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// UpdateStatus handles quote status transitions
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := enum.ParseQuoteStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid quote status")
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated successfully", quote)
}

// Cancel handles cancelling a quote. Quotes are never hard-deleted,
// delete requests transition them to CANCELLED.
func (h *QuoteHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), id, enum.QuoteStatusCancelled)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote cancelled successfully", quote)
}

// UpdateNotes handles updating a quote's notes
func (h *QuoteHandler) UpdateNotes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req struct {
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.quoteService.UpdateQuoteNotes(c.Request.Context(), id, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote notes updated successfully", quote)
}
