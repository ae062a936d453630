package handler

import (
	"net/http"

	"homecatalog/internal/model"
	"homecatalog/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response := h.contactService.Submit(c.Request.Context(), &req)
	c.JSON(http.StatusAccepted, response)
}
