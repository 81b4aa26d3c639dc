package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		SellerID         *uuid.UUID `json:"seller_id"`
		Name             string     `json:"name" binding:"required"`
		Phone            string     `json:"phone" binding:"required"`
		Email            *string    `json:"email"`
		Address          *string    `json:"address"`
		BirthDate        *string    `json:"birth_date"`
		LastPurchaseDate *string    `json:"last_purchase_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		response.BadRequest(c, "Invalid birth_date, expected YYYY-MM-DD")
		return
	}
	lastPurchase, err := parseDate(req.LastPurchaseDate)
	if err != nil {
		response.BadRequest(c, "Invalid last_purchase_date, expected YYYY-MM-DD")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		SellerID:         req.SellerID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		BirthDate:        birthDate,
		LastPurchaseDate: lastPurchase,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		SellerID         *uuid.UUID `json:"seller_id"`
		Name             *string    `json:"name"`
		Phone            *string    `json:"phone"`
		Email            *string    `json:"email"`
		Address          *string    `json:"address"`
		BirthDate        *string    `json:"birth_date"`
		LastPurchaseDate *string    `json:"last_purchase_date"`
		Active           *bool      `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		response.BadRequest(c, "Invalid birth_date, expected YYYY-MM-DD")
		return
	}
	lastPurchase, err := parseDate(req.LastPurchaseDate)
	if err != nil {
		response.BadRequest(c, "Invalid last_purchase_date, expected YYYY-MM-DD")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:               id,
		SellerID:         req.SellerID,
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		BirthDate:        birthDate,
		LastPurchaseDate: lastPurchase,
		Active:           req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deactivating a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeactivateCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
