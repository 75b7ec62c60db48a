package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/promptn8/promptn8-server/internal/database"
	"github.com/promptn8/promptn8-server/internal/models"
)

// Sentinel errors translated to HTTP responses by the auth handler.
var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidCode  = errors.New("invalid or expired code")
)

// Service implements email OTP login and bearer session lookup.
// Sessions live in sqlite; a go-cache front avoids a query per request.
type Service struct {
	users      *database.UserRepository
	sessions   *cache.Cache
	sessionTTL time.Duration
	otpTTL     time.Duration
}

// NewService creates an auth service backed by the user repository.
func NewService(users *database.UserRepository, sessionTTL, otpTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   cache.New(5*time.Minute, 10*time.Minute),
		sessionTTL: sessionTTL,
		otpTTL:     otpTTL,
	}
}

// RequestOTP generates and stores a 6-digit login code for the email.
// Delivery is out of scope; the code is written to the server log.
func (s *Service) RequestOTP(email string) error {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return ErrInvalidEmail
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	otp := &models.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.users.UpsertOTP(otp); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	log.Info().Str("email", email).Str("code", code).Msg("login code issued")
	return nil
}

// VerifyOTP checks the code, creates the user on first login, and
// issues a session token.
func (s *Service) VerifyOTP(email, code string) (string, *models.User, error) {
	email = normalizeEmail(email)

	otp, err := s.users.GetOTP(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load code: %w", err)
	}
	if otp == nil || otp.Code != strings.TrimSpace(code) || time.Now().After(otp.ExpiresAt) {
		return "", nil, ErrInvalidCode
	}
	if err := s.users.DeleteOTP(email); err != nil {
		return "", nil, fmt.Errorf("failed to consume code: %w", err)
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		user = &models.User{Email: email}
		if err := s.users.Create(user); err != nil {
			return "", nil, fmt.Errorf("failed to create user: %w", err)
		}
		log.Info().Str("email", email).Int("user_id", user.ID).Msg("user created")
	}

	token, err := generateToken()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.users.CreateSession(session); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}
	s.cacheSession(token, user.ID, session.ExpiresAt)

	return token, user, nil
}

// Authenticate resolves a bearer token to a user id. It returns false
// for unknown or expired tokens.
func (s *Service) Authenticate(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	if cached, ok := s.sessions.Get(token); ok {
		return cached.(int), true
	}

	session, err := s.users.GetSession(token)
	if err != nil {
		log.Error().Err(err).Msg("session lookup failed")
		return 0, false
	}
	if session == nil {
		return 0, false
	}
	s.cacheSession(token, session.UserID, session.ExpiresAt)
	return session.UserID, true
}

// cacheSession fronts a live session. go-cache keeps entries with
// non-positive TTLs forever, so expired sessions are never cached.
func (s *Service) cacheSession(token string, userID int, expiresAt time.Time) {
	if remaining := time.Until(expiresAt); remaining > 0 {
		s.sessions.Set(token, userID, remaining)
	}
}

// Logout invalidates a session token.
func (s *Service) Logout(token string) error {
	s.sessions.Delete(token)
	if err := s.users.DeleteSession(token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t\n")
}
