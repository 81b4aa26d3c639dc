package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/presentation/http/dto/response"
)

// EmailHandler handles outreach email HTTP requests
type EmailHandler struct {
	outreachService *service.OutreachService
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(outreachService *service.OutreachService) *EmailHandler {
	return &EmailHandler{outreachService: outreachService}
}

// SendAlert handles sending the outreach email for an alert
func (h *EmailHandler) SendAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	if err := h.outreachService.SendAlertEmail(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Email sent successfully", nil)
}

// SendTest handles sending a test email
func (h *EmailHandler) SendTest(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.outreachService.SendTestEmail(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test email sent successfully", nil)
}
