package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/presentation/http/dto/response"
)

// MessageHandler handles canned outreach message HTTP requests
type MessageHandler struct {
	messageService *service.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List handles listing canned templates, optionally by alert type
func (h *MessageHandler) List(c *gin.Context) {
	templates := h.messageService.ListTemplates(c.Query("type"))
	response.OK(c, "Message templates retrieved successfully", templates)
}

// Personalize handles filling a template with customer data
func (h *MessageHandler) Personalize(c *gin.Context) {
	var req struct {
		Template  string            `json:"template" binding:"required"`
		Variables map[string]string `json:"variables"`
		Phone     string            `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result := h.messageService.Personalize(req.Template, req.Variables, req.Phone)
	response.OK(c, "Message personalized successfully", result)
}
