package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/promptn8/promptn8-server/internal/models"
	"github.com/promptn8/promptn8-server/internal/services/ai"
)

// ProxyHandler fronts the image generation and prompt review providers.
type ProxyHandler struct {
	svc *ai.Service
}

// NewProxyHandler creates a new provider proxy handler.
func NewProxyHandler(svc *ai.Service) *ProxyHandler {
	return &ProxyHandler{svc: svc}
}

// GenerateImage proxies a prompt to the selected image model.
func (h *ProxyHandler) GenerateImage(c *gin.Context) {
	var req models.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}

	result, err := h.svc.GenerateImage(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrEmptyPrompt), errors.Is(err, ai.ErrUnknownModel):
			respondError(c, http.StatusBadRequest, err.Error(), "INVALID_REQUEST")
		case errors.Is(err, ai.ErrNotConfigured):
			respondError(c, http.StatusInternalServerError, err.Error(), "CONFIG_ERROR")
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("image generation failed")
			respondError(c, http.StatusBadGateway, err.Error(), "API_ERROR")
		}
		return
	}
	respondData(c, http.StatusOK, result)
}

// ReviewPrompt proxies a prompt to the review model for suggestions.
func (h *ProxyHandler) ReviewPrompt(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		respondError(c, http.StatusBadRequest, "Prompt is required", "INVALID_REQUEST")
		return
	}

	result, err := h.svc.ReviewPrompt(c.Request.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			respondError(c, http.StatusInternalServerError, "OpenAI API key not configured", "MISSING_API_KEY")
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("prompt review failed")
		respondError(c, http.StatusBadGateway, "Failed to review prompt", "API_ERROR")
		return
	}
	respondData(c, http.StatusOK, result)
}
