package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptn8/promptn8-server/internal/models"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, ExecSchema(filepath.Join("..", "..", "scripts", "schema.sql")))
	t.Cleanup(func() { Close() })
}

func createUser(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email}
	require.NoError(t, NewUserRepository(DB).Create(u))
	return u
}

func TestUserRepository(t *testing.T) {
	setupDB(t)
	repo := NewUserRepository(DB)

	missing, err := repo.GetByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	u := createUser(t, "maya@example.com")
	assert.NotZero(t, u.ID)

	found, err := repo.GetByEmail("maya@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, u.ID, found.ID)

	byID, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "maya@example.com", byID.Email)
}

func TestSessionLifecycle(t *testing.T) {
	setupDB(t)
	repo := NewUserRepository(DB)
	u := createUser(t, "maya@example.com")

	session := &models.Session{
		Token:     "tok-live",
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateSession(session))

	got, err := repo.GetSession("tok-live")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.UserID)

	expired := &models.Session{
		Token:     "tok-expired",
		UserID:    u.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.CreateSession(expired))
	got, err = repo.GetSession("tok-expired")
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err := repo.DeleteExpired(time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	require.NoError(t, repo.DeleteSession("tok-live"))
	got, err = repo.GetSession("tok-live")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOTPLifecycle(t *testing.T) {
	setupDB(t)
	repo := NewUserRepository(DB)

	otp := &models.OTPCode{
		Email:     "maya@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, repo.UpsertOTP(otp))

	// A second request replaces the stored code.
	otp.Code = "654321"
	require.NoError(t, repo.UpsertOTP(otp))

	got, err := repo.GetOTP("maya@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "654321", got.Code)

	require.NoError(t, repo.DeleteOTP("maya@example.com"))
	got, err = repo.GetOTP("maya@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPromptRepositoryCRUD(t *testing.T) {
	setupDB(t)
	repo := NewPromptRepository(DB)
	u := createUser(t, "maya@example.com")

	p := &models.SavedPrompt{
		UserID: u.ID,
		Name:   "Rooftop portrait",
		Prompt: "[Camera/Lens] cinematic",
		Selections: map[string][]string{
			"style":  {"cinematic"},
			"angles": {"height-low"},
		},
		CustomValues: map[string][]string{
			"environment": {"on a rooftop at dusk"},
		},
		LensID:    "50mm-a",
		LensStyle: "A",
		CameraID:  "red",
	}
	require.NoError(t, repo.Create(p))
	assert.NotZero(t, p.ID)
	assert.NotZero(t, p.CreatedAt)

	got, err := repo.GetByID(u.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Selections, got.Selections)
	assert.Equal(t, p.CustomValues, got.CustomValues)
	assert.Equal(t, "50mm-a", got.LensID)

	p.Name = "Rooftop portrait v2"
	p.Selections["style"] = []string{"cinematic", "photorealistic"}
	ok, err := repo.Update(p)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByID(u.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Rooftop portrait v2", got.Name)
	assert.Equal(t, []string{"cinematic", "photorealistic"}, got.Selections["style"])

	ok, err = repo.UpdateImage(u.ID, p.ID, "thumb-data", "full-data")
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = repo.GetByID(u.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "thumb-data", got.Image)
	assert.Equal(t, "full-data", got.ImageFull)

	ok, err = repo.Delete(u.ID, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = repo.GetByID(u.ID, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPromptOwnershipScoping(t *testing.T) {
	setupDB(t)
	repo := NewPromptRepository(DB)
	owner := createUser(t, "owner@example.com")
	other := createUser(t, "other@example.com")

	p := &models.SavedPrompt{UserID: owner.ID, Name: "Mine", Prompt: "text"}
	require.NoError(t, repo.Create(p))

	got, err := repo.GetByID(other.ID, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := repo.Delete(other.ID, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdateImage(other.ID, p.ID, "x", "y")
	require.NoError(t, err)
	assert.False(t, ok)

	mine, err := repo.GetAllForUser(owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	theirs, err := repo.GetAllForUser(other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestPresetRepository(t *testing.T) {
	setupDB(t)
	repo := NewPresetRepository(DB)
	u := createUser(t, "maya@example.com")

	wardrobe := &models.ScenePreset{UserID: u.ID, Name: "Red coat", Category: "wardrobe", Value: "wearing a red coat"}
	env := &models.ScenePreset{UserID: u.ID, Name: "Rooftop", Category: "environment", Value: "on a rooftop at dusk"}
	require.NoError(t, repo.Create(wardrobe))
	require.NoError(t, repo.Create(env))

	all, err := repo.GetAllForUser(u.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyWardrobe, err := repo.GetAllForUser(u.ID, "wardrobe")
	require.NoError(t, err)
	require.Len(t, onlyWardrobe, 1)
	assert.Equal(t, "Red coat", onlyWardrobe[0].Name)

	wardrobe.Value = "wearing a long red coat"
	ok, err := repo.Update(wardrobe)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(u.ID, wardrobe.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "wearing a long red coat", got.Value)

	ok, err = repo.Delete(u.ID, env.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	remaining, err := repo.GetAllForUser(u.ID, "")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
