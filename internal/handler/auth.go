package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/sirupsen/logrus"

	"jobboard/internal/httperr"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Profile(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService service.AuthService, log *logrus.Logger) AuthHandler {
	return &authHandler{authService: authService, log: log}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email.Error("Please provide a valid email")),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(6, 0).Error("Password must be at least 6 characters long")),
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(3, 0).Error("Username must be at least 3 characters long")),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email.Error("Please provide a valid email")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

func (h *authHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for registration: %v", err)
		_ = c.Error(httperr.BadRequest("Invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		_ = c.Error(httperr.FromValidation(err))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			_ = c.Error(httperr.BadRequest("User with this email already exists"))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    gin.H{"user": user, "token": token},
	})
}

func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for login: %v", err)
		_ = c.Error(httperr.BadRequest("Invalid request body"))
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(httperr.FromValidation(err))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			_ = c.Error(httperr.Unauthorized("Invalid credentials"))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    gin.H{"user": user, "token": token},
	})
}

func (h *authHandler) Profile(c *gin.Context) {
	email, exists := c.Get(middleware.ContextEmail)
	if !exists {
		_ = c.Error(httperr.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), email.(string))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			_ = c.Error(httperr.NotFound("User not found"))
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}
