package handler

import (
	"net/http"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// thanksPage is where successful signup/download submissions land.
const thanksPage = "/thanks.html"

// NotifyHandler serves the email-triggering routes: newsletter signup and
// resource downloads.
type NotifyHandler struct {
	notifier *service.NotificationService
	log      zerolog.Logger
}

func NewNotifyHandler(notifier *service.NotificationService, log zerolog.Logger) *NotifyHandler {
	return &NotifyHandler{notifier: notifier, log: log}
}

type emailRequest struct {
	Email string `json:"email"`
}

// Signup handles POST /api/send-email.
func (h *NotifyHandler) Signup(c *gin.Context) {
	h.sendAndRedirect(c, func(email string) error {
		return h.notifier.SendSignup(c.Request.Context(), email)
	})
}

// DownloadMediaKit handles POST /api/downloadmedia-kit.
func (h *NotifyHandler) DownloadMediaKit(c *gin.Context) {
	h.sendAndRedirect(c, func(email string) error {
		return h.notifier.SendDownload(c.Request.Context(), email, "Media-Kit")
	})
}

// DownloadCaseStudies handles POST /api/downloadcase-studies.
func (h *NotifyHandler) DownloadCaseStudies(c *gin.Context) {
	h.sendAndRedirect(c, func(email string) error {
		return h.notifier.SendDownload(c.Request.Context(), email, "Case-Studies")
	})
}

func (h *NotifyHandler) sendAndRedirect(c *gin.Context, send func(email string) error) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required", ""))
		return
	}

	if err := send(req.Email); err != nil {
		h.log.Error().Err(err).Str("email", req.Email).Msg("notification failed")
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Error sending email", ""))
		return
	}

	c.Redirect(http.StatusFound, thanksPage)
}
