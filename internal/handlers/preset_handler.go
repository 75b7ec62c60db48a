package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/promptn8/promptn8-server/internal/database"
	"github.com/promptn8/promptn8-server/internal/middleware"
	"github.com/promptn8/promptn8-server/internal/models"
)

// PresetHandler handles scene preset CRUD, scoped to the authenticated
// user.
type PresetHandler struct {
	repo *database.PresetRepository
}

// NewPresetHandler creates a new scene preset handler.
func NewPresetHandler(repo *database.PresetRepository) *PresetHandler {
	return &PresetHandler{repo: repo}
}

// GetAll returns the user's presets, optionally filtered by the
// category query parameter.
func (h *PresetHandler) GetAll(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	category := c.Query("category")
	if category != "" && !models.ValidPresetCategory(category) {
		respondError(c, http.StatusBadRequest, "Invalid category", "INVALID_REQUEST")
		return
	}

	presets, err := h.repo.GetAllForUser(userID, category)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load presets", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, presets)
}

// Create saves a new preset.
func (h *PresetHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var p models.ScenePreset
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}
	if p.Name == "" || p.Category == "" || p.Value == "" {
		respondError(c, http.StatusBadRequest, "Name, category, and value are required", "INVALID_REQUEST")
		return
	}
	if !models.ValidPresetCategory(p.Category) {
		respondError(c, http.StatusBadRequest, "Invalid category", "INVALID_REQUEST")
		return
	}

	p.ID = 0
	p.UserID = userID
	if err := h.repo.Create(&p); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save preset", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusCreated, p)
}

// Update changes a preset's name and/or value. Fields omitted from the
// body keep their current value.
func (h *PresetHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID", "INVALID_REQUEST")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Value *string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}

	preset, err := h.repo.GetByID(userID, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load preset", "INTERNAL_ERROR")
		return
	}
	if preset == nil {
		respondError(c, http.StatusNotFound, "Preset not found", "NOT_FOUND")
		return
	}

	if req.Name != nil && *req.Name != "" {
		preset.Name = *req.Name
	}
	if req.Value != nil && *req.Value != "" {
		preset.Value = *req.Value
	}
	if _, err := h.repo.Update(preset); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update preset", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, preset)
}

// Delete removes a preset.
func (h *PresetHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID", "INVALID_REQUEST")
		return
	}

	ok, err := h.repo.Delete(userID, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete preset", "INTERNAL_ERROR")
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "Preset not found", "NOT_FOUND")
		return
	}
	respondData(c, http.StatusOK, gin.H{"success": true})
}
