package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptn8/promptn8-server/internal/database"
	"github.com/promptn8/promptn8-server/internal/middleware"
	"github.com/promptn8/promptn8-server/internal/services/auth"
)

// AuthHandler handles OTP login, logout and the current-user endpoint.
type AuthHandler struct {
	svc   *auth.Service
	users *database.UserRepository
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *auth.Service, users *database.UserRepository) *AuthHandler {
	return &AuthHandler{svc: svc, users: users}
}

// RequestOTP issues a login code for an email address.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondError(c, http.StatusBadRequest, "Email is required", "INVALID_REQUEST")
		return
	}

	if err := h.svc.RequestOTP(req.Email); err != nil {
		if errors.Is(err, auth.ErrInvalidEmail) {
			respondError(c, http.StatusBadRequest, "Invalid email address", "INVALID_EMAIL")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to issue login code", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, gin.H{"success": true})
}

// VerifyOTP exchanges an email and code for a session token.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Code == "" {
		respondError(c, http.StatusBadRequest, "Email and code are required", "INVALID_REQUEST")
		return
	}

	token, user, err := h.svc.VerifyOTP(req.Email, req.Code)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			respondError(c, http.StatusUnauthorized, "Invalid or expired code", "INVALID_CODE")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to verify code", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout invalidates the presented session token.
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) {
		if err := h.svc.Logout(header[len(prefix):]); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to log out", "INTERNAL_ERROR")
			return
		}
	}
	respondData(c, http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user, or null for anonymous requests.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondData(c, http.StatusOK, gin.H{"user": nil})
		return
	}
	user, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load user", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, gin.H{"user": user})
}
