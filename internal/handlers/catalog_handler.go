package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptn8/promptn8-server/pkg/prompt"
)

// CatalogHandler exposes the prompt engine: the static vocabulary,
// composition and parsing. All endpoints are total and unauthenticated.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog returns the full vocabulary catalog.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"categories":            prompt.Categories(),
		"lenses":                prompt.Lenses(),
		"lensStyleFilters":      prompt.LensStyleFilters,
		"cameras":               prompt.CameraBodies(),
		"cameraTypeFilters":     prompt.CameraTypeFilters,
		"defaultCameraId":       prompt.DefaultCameraID,
		"defaultNegativePrompt": prompt.DefaultNegativePrompt,
	})
}

// Compose renders a selection state into prompt text.
func (h *CatalogHandler) Compose(c *gin.Context) {
	var state prompt.SelectionState
	if err := c.ShouldBindJSON(&state); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}
	respondData(c, http.StatusOK, gin.H{"prompt": prompt.Compose(state)})
}

// Parse recovers a selection state from prompt text.
func (h *CatalogHandler) Parse(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}
	respondData(c, http.StatusOK, prompt.Parse(req.Text))
}
