// filepath: internal/services/auth/session_service.go
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/services"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

// Compile-time check to ensure sessionService implements the interface.
var _ services.SessionService = (*sessionService)(nil)

// sessionService maps opaque tokens to user ids. Sessions live only in
// memory and die with the process; the go-cache store is safe for
// concurrent authenticate/login/logout calls and its janitor purges
// expired sessions.
type sessionService struct {
	userSvc  services.UserService
	sessions *cache.Cache
	ttl      time.Duration
}

// NewSessionService creates a new instance of the sessionService.
func NewSessionService(cfg *config.Config, userSvc services.UserService) *sessionService {
	ttlHours := cfg.Session.TTLHours
	if ttlHours == 0 {
		ttlHours = 24
	}
	ttl := time.Duration(ttlHours) * time.Hour
	return &sessionService{
		userSvc:  userSvc,
		sessions: cache.New(ttl, 10*time.Minute),
		ttl:      ttl,
	}
}

// generateToken creates a cryptographically secure opaque session token.
func generateToken() (string, error) {
	bytes := make([]byte, 32) // 256 bits
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// Login verifies the credentials and establishes a new session bound to
// the user id. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (s *sessionService) Login(username, password string) (string, error) {
	user, err := s.userSvc.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return "", services.ErrInvalidCredentials
		}
		// An infrastructure failure is not a credential rejection.
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logging.Log.Warnf("SessionService: failed login attempt for '%s'", username)
		return "", services.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	s.sessions.Set(token, user.ID, s.ttl)

	logging.Log.Infof("SessionService: user '%s' logged in", username)
	return token, nil
}

// Logout invalidates the session unconditionally. Unknown tokens are
// not an error, so logout is idempotent.
func (s *sessionService) Logout(token string) {
	s.sessions.Delete(token)
}

// Authenticate returns the user id bound to a live session token.
func (s *sessionService) Authenticate(token string) (int64, error) {
	if token == "" {
		return 0, services.ErrUnauthorized
	}
	userID, found := s.sessions.Get(token)
	if !found {
		return 0, services.ErrUnauthorized
	}
	return userID.(int64), nil
}

// Status reports whether the token maps to a live session.
func (s *sessionService) Status(token string) bool {
	_, err := s.Authenticate(token)
	return err == nil
}
