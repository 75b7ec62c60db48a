package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/promptn8/promptn8-server/internal/models"
)

// PromptRepository handles saved prompt database operations. All
// queries are scoped to the owning user; a row belonging to another
// user behaves as if it did not exist.
type PromptRepository struct {
	db *sql.DB
}

// NewPromptRepository creates a new saved prompt repository.
func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

const promptColumns = `id, user_id, name, prompt, selections, custom_values,
	image, image_full, lens_id, lens_style, camera_id, camera_type, created_at`

// GetAllForUser returns the user's saved prompts, newest first.
func (r *PromptRepository) GetAllForUser(userID int) ([]models.SavedPrompt, error) {
	query := `SELECT ` + promptColumns + ` FROM saved_prompts
		WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prompts := []models.SavedPrompt{}
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, *p)
	}
	return prompts, rows.Err()
}

// GetByID returns the user's saved prompt with the given id, or nil
// when it does not exist or belongs to someone else.
func (r *PromptRepository) GetByID(userID, id int) (*models.SavedPrompt, error) {
	query := `SELECT ` + promptColumns + ` FROM saved_prompts
		WHERE id = ? AND user_id = ?`

	row := r.db.QueryRow(query, id, userID)
	p, err := scanPrompt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new saved prompt and fills in its id and creation
// timestamp.
func (r *PromptRepository) Create(p *models.SavedPrompt) error {
	selections, customValues, err := marshalState(p)
	if err != nil {
		return err
	}
	p.CreatedAt = time.Now().UnixMilli()

	query := `INSERT INTO saved_prompts (user_id, name, prompt, selections,
		custom_values, image, image_full, lens_id, lens_style, camera_id,
		camera_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		p.UserID, p.Name, p.Prompt, selections, customValues,
		p.Image, p.ImageFull, p.LensID, p.LensStyle, p.CameraID,
		p.CameraType, p.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)
	return nil
}

// Update replaces the stored prompt content and state snapshot. It
// returns false when no row matched the id and user.
func (r *PromptRepository) Update(p *models.SavedPrompt) (bool, error) {
	selections, customValues, err := marshalState(p)
	if err != nil {
		return false, err
	}

	query := `UPDATE saved_prompts SET name=?, prompt=?, selections=?,
		custom_values=?, lens_id=?, lens_style=?, camera_id=?, camera_type=?
		WHERE id=? AND user_id=?`

	result, err := r.db.Exec(query,
		p.Name, p.Prompt, selections, customValues,
		p.LensID, p.LensStyle, p.CameraID, p.CameraType,
		p.ID, p.UserID,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// UpdateImage stores the thumbnail and full image payloads for a
// prompt. It returns false when no row matched the id and user.
func (r *PromptRepository) UpdateImage(userID, id int, image, imageFull string) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE saved_prompts SET image=?, image_full=? WHERE id=? AND user_id=?`,
		image, imageFull, id, userID,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// Delete removes the user's saved prompt. It returns false when no row
// matched the id and user.
func (r *PromptRepository) Delete(userID, id int) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM saved_prompts WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

func marshalState(p *models.SavedPrompt) (string, string, error) {
	if p.Selections == nil {
		p.Selections = map[string][]string{}
	}
	if p.CustomValues == nil {
		p.CustomValues = map[string][]string{}
	}
	selections, err := json.Marshal(p.Selections)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode selections: %w", err)
	}
	customValues, err := json.Marshal(p.CustomValues)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode custom values: %w", err)
	}
	return string(selections), string(customValues), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrompt(row rowScanner) (*models.SavedPrompt, error) {
	var p models.SavedPrompt
	var selections, customValues string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Prompt, &selections, &customValues,
		&p.Image, &p.ImageFull, &p.LensID, &p.LensStyle, &p.CameraID,
		&p.CameraType, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(selections), &p.Selections); err != nil {
		return nil, fmt.Errorf("failed to decode selections: %w", err)
	}
	if err := json.Unmarshal([]byte(customValues), &p.CustomValues); err != nil {
		return nil, fmt.Errorf("failed to decode custom values: %w", err)
	}
	return &p, nil
}
