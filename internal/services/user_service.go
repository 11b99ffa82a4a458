// filepath: internal/services/user_service.go
package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/models"
	"portfolio/internal/repository"
)

const defaultUsername = "admin"

var _ UserService = (*userService)(nil)

// userService handles the singleton photographer account.
type userService struct {
	Repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *userService {
	return &userService{Repo: repo}
}

// GetUserByUsername retrieves a user by their username.
func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(id int64) (*models.User, error) {
	user, err := s.Repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfile returns the public profile of the photographer account.
func (s *userService) GetProfile() (*models.Profile, error) {
	user, err := s.Repo.GetFirstUser()
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile updates name, email and bio of the photographer account.
// Username and password are not editable through this path.
func (s *userService) UpdateProfile(name, email, bio string) (*models.Profile, error) {
	user, err := s.Repo.GetFirstUser()
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updated, err := s.Repo.UpdateUserProfile(user.ID, name, email, bio)
	if err != nil {
		logging.Log.Errorf("UserService: failed to update profile: %v", err)
		return nil, fmt.Errorf("failed to update profile")
	}
	profile := updated.Profile()
	return &profile, nil
}

// EnsureDefaultUser seeds the singleton account on first boot and
// handles password resets requested via config/flags.
func (s *userService) EnsureDefaultUser(cfg *config.Config) error {
	count, err := s.Repo.CountUsers()
	if err != nil {
		return fmt.Errorf("failed to check for existing user: %w", err)
	}

	if count == 0 {
		return s.createDefaultUser(cfg)
	}

	if cfg.ResetAdminPassword {
		return s.resetPassword(cfg.AdminPassword)
	}
	return nil
}

func (s *userService) createDefaultUser(cfg *config.Config) error {
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
		logging.Log.Warnf("No admin password provided. Using default credential '%s'/'%s' -- change it.", defaultUsername, password)
	}

	name := cfg.Profile.Name
	if name == "" {
		name = "Photographer Name"
	}
	email := cfg.Profile.Email
	if email == "" {
		email = "photographer@example.com"
	}
	bio := cfg.Profile.Bio
	if bio == "" {
		bio = "Professional photographer with a passion for capturing life's beautiful moments."
	}

	args := &repository.UserCreateArgs{
		Username: defaultUsername,
		Password: password,
		Name:     name,
		Email:    email,
		Bio:      bio,
	}
	if _, err := s.Repo.CreateUser(args); err != nil {
		return fmt.Errorf("failed to create default user: %w", err)
	}
	logging.Log.Infof("Default user '%s' created.", defaultUsername)
	return nil
}

func (s *userService) resetPassword(password string) error {
	if password == "" {
		password = generateRandomPassword(10)
		logging.Log.Infof("No password provided for reset. Generated a random password for '%s': %s", defaultUsername, password)
	}
	if err := s.Repo.UpdateUserPassword(defaultUsername, password); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	logging.Log.Infof("Password for '%s' was reset.", defaultUsername)
	return nil
}

// generateRandomPassword creates a random alphanumeric password.
func generateRandomPassword(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			// crypto/rand failing is unrecoverable for credential generation
			panic(err)
		}
		out[i] = chars[n.Int64()]
	}
	return string(out)
}
