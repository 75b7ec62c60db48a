package database

import (
	"database/sql"
	"time"

	"github.com/promptn8/promptn8-server/internal/models"
)

// UserRepository handles user, OTP code and session database
// operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when no
// such user exists.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		`SELECT id, email, created_at FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user with the given id, or nil when no such user
// exists.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		`SELECT id, email, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and fills in its id.
func (r *UserRepository) Create(u *models.User) error {
	u.CreatedAt = time.Now().UTC()
	result, err := r.db.Exec(
		`INSERT INTO users (email, created_at) VALUES (?, ?)`,
		u.Email, u.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = int(id)
	return nil
}

// UpsertOTP stores the current login code for an email, replacing any
// previous code.
func (r *UserRepository) UpsertOTP(otp *models.OTPCode) error {
	_, err := r.db.Exec(
		`INSERT INTO otp_codes (email, code, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET code=excluded.code, expires_at=excluded.expires_at`,
		otp.Email, otp.Code, otp.ExpiresAt,
	)
	return err
}

// GetOTP returns the stored code for an email, or nil when none exists.
func (r *UserRepository) GetOTP(email string) (*models.OTPCode, error) {
	var otp models.OTPCode
	err := r.db.QueryRow(
		`SELECT email, code, expires_at FROM otp_codes WHERE email = ?`, email,
	).Scan(&otp.Email, &otp.Code, &otp.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

// DeleteOTP removes the stored code for an email. Codes are single-use.
func (r *UserRepository) DeleteOTP(email string) error {
	_, err := r.db.Exec(`DELETE FROM otp_codes WHERE email = ?`, email)
	return err
}

// CreateSession stores a new session token.
func (r *UserRepository) CreateSession(s *models.Session) error {
	s.CreatedAt = time.Now().UTC()
	_, err := r.db.Exec(
		`INSERT INTO sessions (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		s.Token, s.UserID, s.ExpiresAt, s.CreatedAt,
	)
	return err
}

// GetSession returns the session for a token, or nil when the token is
// unknown or expired.
func (r *UserRepository) GetSession(token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(
		`SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ?`, token,
	).Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	return &s, nil
}

// DeleteSession removes a session token.
func (r *UserRepository) DeleteSession(token string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// DeleteExpired removes expired sessions and OTP codes. It returns the
// number of rows removed.
func (r *UserRepository) DeleteExpired(now time.Time) (int64, error) {
	var total int64
	result, err := r.db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	total += n

	result, err = r.db.Exec(`DELETE FROM otp_codes WHERE expires_at < ?`, now)
	if err != nil {
		return total, err
	}
	n, _ = result.RowsAffected()
	return total + n, nil
}
