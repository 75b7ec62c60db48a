package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/promptn8/promptn8-server/internal/database"
	"github.com/promptn8/promptn8-server/internal/middleware"
	"github.com/promptn8/promptn8-server/internal/models"
)

// PromptHandler handles saved prompt CRUD. All routes sit behind
// RequireAuth; rows are scoped to the authenticated user.
type PromptHandler struct {
	repo *database.PromptRepository
}

// NewPromptHandler creates a new saved prompt handler.
func NewPromptHandler(repo *database.PromptRepository) *PromptHandler {
	return &PromptHandler{repo: repo}
}

// GetAll returns the user's saved prompts, newest first.
func (h *PromptHandler) GetAll(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	prompts, err := h.repo.GetAllForUser(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load prompts", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, prompts)
}

// Create saves a new prompt with its builder state snapshot.
func (h *PromptHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var p models.SavedPrompt
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}
	if p.Name == "" || p.Prompt == "" {
		respondError(c, http.StatusBadRequest, "Name and prompt are required", "INVALID_REQUEST")
		return
	}

	p.ID = 0
	p.UserID = userID
	if err := h.repo.Create(&p); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to save prompt", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusCreated, p)
}

// Update replaces a saved prompt's content and state snapshot.
func (h *PromptHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID", "INVALID_REQUEST")
		return
	}

	var p models.SavedPrompt
	if err := c.ShouldBindJSON(&p); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}
	if p.Name == "" || p.Prompt == "" {
		respondError(c, http.StatusBadRequest, "Name and prompt are required", "INVALID_REQUEST")
		return
	}

	p.ID = id
	p.UserID = userID
	ok, err := h.repo.Update(&p)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update prompt", "INTERNAL_ERROR")
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "Not found", "NOT_FOUND")
		return
	}

	updated, err := h.repo.GetByID(userID, id)
	if err != nil || updated == nil {
		respondError(c, http.StatusInternalServerError, "Failed to load prompt", "INTERNAL_ERROR")
		return
	}
	respondData(c, http.StatusOK, updated)
}

// UpdateImage stores the generated thumbnail and full-size image for a
// saved prompt.
func (h *PromptHandler) UpdateImage(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID", "INVALID_REQUEST")
		return
	}

	var req struct {
		Image     string `json:"image"`
		ImageFull string `json:"imageFull"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", "INVALID_REQUEST")
		return
	}

	ok, err := h.repo.UpdateImage(userID, id, req.Image, req.ImageFull)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update image", "INTERNAL_ERROR")
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "Not found", "NOT_FOUND")
		return
	}
	respondData(c, http.StatusOK, gin.H{"id": id, "image": req.Image, "imageFull": req.ImageFull})
}

// Delete removes a saved prompt.
func (h *PromptHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID", "INVALID_REQUEST")
		return
	}

	ok, err := h.repo.Delete(userID, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete prompt", "INTERNAL_ERROR")
		return
	}
	if !ok {
		respondError(c, http.StatusNotFound, "Not found", "NOT_FOUND")
		return
	}
	c.Status(http.StatusNoContent)
}
