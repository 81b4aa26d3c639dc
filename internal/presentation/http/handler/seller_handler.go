package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/presentation/http/dto/response"
)

// SellerHandler handles seller-related HTTP requests
type SellerHandler struct {
	sellerService *service.SellerService
}

// NewSellerHandler creates a new seller handler
func NewSellerHandler(sellerService *service.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// List handles listing all sellers
func (h *SellerHandler) List(c *gin.Context) {
	sellers, err := h.sellerService.ListSellers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sellers retrieved successfully", sellers)
}

// Create handles creating a seller
func (h *SellerHandler) Create(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Email *string `json:"email"`
		Phone string  `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	seller, err := h.sellerService.CreateSeller(c.Request.Context(), &service.CreateSellerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Seller created successfully", seller)
}

// Get handles getting a single seller
func (h *SellerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	seller, err := h.sellerService.GetSeller(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Seller retrieved successfully", seller)
}

// Update handles updating a seller
func (h *SellerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Phone  *string `json:"phone"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	seller, err := h.sellerService.UpdateSeller(c.Request.Context(), &service.UpdateSellerInput{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Active: req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Seller updated successfully", seller)
}

// Delete handles deactivating a seller
func (h *SellerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID")
		return
	}

	if err := h.sellerService.DeactivateSeller(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
