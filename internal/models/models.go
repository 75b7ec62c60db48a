package models

import "time"

// User is an account created on first successful OTP login.
type User struct {
	ID        int       `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Session is a bearer token issued by verify-otp.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    int       `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OTPCode is a short-lived login code for an email address.
type OTPCode struct {
	Email     string    `json:"-" db:"email"`
	Code      string    `json:"-" db:"code"`
	ExpiresAt time.Time `json:"-" db:"expires_at"`
}

// SavedPrompt stores a rendered prompt together with the full builder
// state snapshot so it reloads into the editor unchanged. Image holds a
// small thumbnail and ImageFull the full-size payload; both are data
// URLs or base64 strings supplied by the client.
type SavedPrompt struct {
	ID           int                 `json:"id" db:"id"`
	UserID       int                 `json:"-" db:"user_id"`
	Name         string              `json:"name" db:"name"`
	Prompt       string              `json:"prompt" db:"prompt"`
	Selections   map[string][]string `json:"selections" db:"selections"`
	CustomValues map[string][]string `json:"customValues" db:"custom_values"`
	Image        string              `json:"image,omitempty" db:"image"`
	ImageFull    string              `json:"imageFull,omitempty" db:"image_full"`
	LensID       string              `json:"selectedLensId,omitempty" db:"lens_id"`
	LensStyle    string              `json:"selectedLensStyle,omitempty" db:"lens_style"`
	CameraID     string              `json:"selectedCameraId,omitempty" db:"camera_id"`
	CameraType   string              `json:"selectedCameraType,omitempty" db:"camera_type"`
	CreatedAt    int64               `json:"createdAt" db:"created_at"` // unix milliseconds
}

// ScenePreset is a reusable free-text snippet for one builder category.
type ScenePreset struct {
	ID        int    `json:"id" db:"id"`
	UserID    int    `json:"-" db:"user_id"`
	Name      string `json:"name" db:"name"`
	Category  string `json:"category" db:"category"`
	Value     string `json:"value" db:"value"`
	CreatedAt int64  `json:"createdAt" db:"created_at"` // unix milliseconds
}

// PresetCategories are the builder categories a scene preset may target.
var PresetCategories = []string{"action", "wardrobe", "environment", "subjects"}

// ValidPresetCategory reports whether category may hold scene presets.
func ValidPresetCategory(category string) bool {
	for _, c := range PresetCategories {
		if c == category {
			return true
		}
	}
	return false
}

// GenerateImageRequest is the body of the generation proxy endpoint.
type GenerateImageRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio"`
	Resolution  string `json:"resolution"`
	Model       string `json:"model"`
}

// GenerateImageResponse carries the generated image back to the client.
type GenerateImageResponse struct {
	ImageData string `json:"imageData"`
	MimeType  string `json:"mimeType"`
}

// ReviewResponse carries reviewer suggestions for a prompt.
type ReviewResponse struct {
	Suggestions string `json:"suggestions"`
}
