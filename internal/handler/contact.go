package handler

import (
	"errors"
	"net/http"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContactHandler serves the contact form routes.
type ContactHandler struct {
	contacts *service.ContactService
	log      zerolog.Logger
}

func NewContactHandler(contacts *service.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

type submitContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Message     string `json:"message"`
	CountryCode string `json:"countryCode"`
}

// Submit handles POST /api/postContact. The entry is stored, the proposal
// notification is emailed, and the send is logged.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	entry := &model.ContactEntry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Message:     req.Message,
		CountryCode: req.CountryCode,
	}

	if _, err := h.contacts.Submit(c.Request.Context(), entry); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
			return
		}
		h.log.Error().Err(err).Msg("contact submission failed")
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to send email", ""))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Email sent successfully!"})
}

// List handles GET /api/getContact.
func (h *ContactHandler) List(c *gin.Context) {
	entries, err := h.contacts.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list contact entries failed")
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Error fetching contact form entries", ""))
		return
	}
	c.JSON(http.StatusOK, entries)
}
