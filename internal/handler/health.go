package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Liveness handles GET / with a plaintext liveness string.
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "marketing-backend",
	})
}
