package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/service"
	"github.com/Unsighted/Dashboard-backend/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("email and password are required"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized,
				response.Error("INVALID_CREDENTIALS", "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("login failed"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Refresh handles access token renewal
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// absent credential is 401, a presented-but-bad one is 403
		c.JSON(http.StatusUnauthorized,
			response.Unauthorized("refresh token is required"))
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			c.JSON(http.StatusForbidden, response.Error("TOKEN_EXPIRED", "Refresh token has expired"))
		case errors.Is(err, domain.ErrTokenRevoked):
			c.JSON(http.StatusForbidden, response.Error("TOKEN_REVOKED", "Refresh token is no longer valid"))
		case errors.Is(err, domain.ErrInvalidToken):
			c.JSON(http.StatusForbidden, response.Error("INVALID_TOKEN", "Invalid refresh token"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError("refresh failed"))
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout revokes the user's stored refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("userId is required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("logout failed"))
		return
	}

	c.JSON(http.StatusOK, response.Message("logged out"))
}
