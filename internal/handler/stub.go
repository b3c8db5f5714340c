package handler

import (
	"net/http"

	"github.com/adworks/marketing-backend/internal/model"

	"github.com/gin-gonic/gin"
)

// NotImplemented answers 501 for routes whose persistence operations were
// never built: contact and user update/delete. Kept as explicit stubs
// rather than guessed implementations.
func NotImplemented(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotImplemented, model.NewErrorResponse("Not implemented", operation))
	}
}
