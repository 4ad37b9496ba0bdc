package handlers

import (
	"net/http"

	"morisbiz/models"
	"morisbiz/services/contact"
	"morisbiz/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler serves the public contact form endpoint.
type ContactHandler struct {
	Contact contact.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Contact: svc}
}

// SubmitContactHandler handles POST /api/contact.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var sub models.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Contact.Submit(&sub)
	if err != nil {
		utils.RespondError(c, "Could not submit message", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Thank you, we will get back to you soon"})
}
