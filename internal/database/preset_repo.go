package database

import (
	"database/sql"
	"time"

	"github.com/promptn8/promptn8-server/internal/models"
)

// PresetRepository handles scene preset database operations, scoped to
// the owning user.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new scene preset repository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

// GetAllForUser returns the user's presets, optionally filtered by
// category, newest first.
func (r *PresetRepository) GetAllForUser(userID int, category string) ([]models.ScenePreset, error) {
	query := `SELECT id, user_id, name, category, value, created_at
		FROM scene_presets WHERE user_id = ?`
	args := []any{userID}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := []models.ScenePreset{}
	for rows.Next() {
		var p models.ScenePreset
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Category, &p.Value, &p.CreatedAt); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// GetByID returns the user's preset with the given id, or nil when it
// does not exist or belongs to someone else.
func (r *PresetRepository) GetByID(userID, id int) (*models.ScenePreset, error) {
	var p models.ScenePreset
	err := r.db.QueryRow(
		`SELECT id, user_id, name, category, value, created_at
		FROM scene_presets WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Category, &p.Value, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new preset and fills in its id and creation
// timestamp.
func (r *PresetRepository) Create(p *models.ScenePreset) error {
	p.CreatedAt = time.Now().UnixMilli()

	result, err := r.db.Exec(
		`INSERT INTO scene_presets (user_id, name, category, value, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.UserID, p.Name, p.Category, p.Value, p.CreatedAt,
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

// Update replaces the preset's name and value. It returns false when no
// row matched the id and user.
func (r *PresetRepository) Update(p *models.ScenePreset) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE scene_presets SET name=?, value=? WHERE id=? AND user_id=?`,
		p.Name, p.Value, p.ID, p.UserID,
	)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

// Delete removes the user's preset. It returns false when no row
// matched the id and user.
func (r *PresetRepository) Delete(userID, id int) (bool, error) {
	result, err := r.db.Exec(
		`DELETE FROM scene_presets WHERE id=? AND user_id=?`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}
