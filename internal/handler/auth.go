package handler

import (
	"errors"
	"net/http"

	"github.com/adworks/marketing-backend/internal/model"
	"github.com/adworks/marketing-backend/internal/repository"
	"github.com/adworks/marketing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	users *service.UserService
	log   zerolog.Logger
}

func NewAuthHandler(users *service.UserService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	user, tok, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("All fields are required.", ""))
			return
		}
		h.log.Error().Err(err).Msg("register user failed")
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Error registering user.", ""))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully.",
		"token":   tok,
		"name":    user.FullName(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login. A wrong password and an unknown email
// both answer 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body", err.Error()))
		return
	}

	user, tok, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found or incorrect credentials."})
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully.",
		"token":   tok,
		"name":    user.FullName(),
	})
}
