// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/logging"
	"portfolio/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// UserCreateArgs carries the plaintext password for user creation; it is
// hashed here and never stored.
type UserCreateArgs struct {
	Username string
	Password string
	Name     string
	Email    string
	Bio      string
}

const userColumns = "id, username, password_hash, name, email, bio"

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Name, &user.Email, &user.Bio); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by their username, using a cache for performance.
func (s *Repository) GetUserByUsername(username string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", username)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByUsername: CACHE MISS for '%s'. Querying DB.", username)
	row := s.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE username = ?", username)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(cacheKey, user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_id_%d", user.ID), user, 5*time.Minute)
	return user, nil
}

// GetUserByID retrieves a user by their ID, using a cache for performance.
func (s *Repository) GetUserByID(id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_id_%d", id)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByID: CACHE MISS for ID %d. Querying DB.", id)
	row := s.DB.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(cacheKey, user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_name_%s", user.Username), user, 5*time.Minute)
	return user, nil
}

// GetFirstUser returns the singleton photographer account (lowest id).
func (s *Repository) GetFirstUser() (*models.User, error) {
	row := s.DB.QueryRow("SELECT " + userColumns + " FROM users ORDER BY id LIMIT 1")
	return scanUser(row)
}

// CountUsers returns the number of user records.
func (s *Repository) CountUsers() (int, error) {
	var count int
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateUser creates a new user record with a bcrypt-hashed password.
func (s *Repository) CreateUser(args *UserCreateArgs) (*models.User, error) {
	logging.Log.Debugf("CreateUser: Hashing password for '%s'", args.Username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(args.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO users (username, password_hash, name, email, bio, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := s.DB.Exec(query, args.Username, string(hashedPassword), args.Name, args.Email, args.Bio, time.Now().Unix())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrUserExists
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("CreateUser: User '%s' created with ID %d", args.Username, id)

	return &models.User{
		ID:           id,
		Username:     args.Username,
		PasswordHash: string(hashedPassword),
		Name:         args.Name,
		Email:        args.Email,
		Bio:          args.Bio,
	}, nil
}

// UpdateUserProfile updates the editable profile fields (name, email,
// bio). Username and password are not touched by this path.
func (s *Repository) UpdateUserProfile(id int64, name, email, bio string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	query := "UPDATE users SET name = ?, email = ?, bio = ? WHERE id = ?"
	if _, err := s.DB.Exec(query, name, email, bio, id); err != nil {
		return nil, err
	}

	s.invalidateUserCache(user)
	return s.GetUserByID(id)
}

// UpdateUserPassword re-hashes and stores a new password for the user.
func (s *Repository) UpdateUserPassword(username, password string) error {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return err
	}

	logging.Log.Debugf("UpdateUserPassword: Hashing new password for user '%s'", username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec("UPDATE users SET password_hash = ? WHERE id = ?", string(hashedPassword), user.ID); err != nil {
		return err
	}

	s.invalidateUserCache(user)
	return nil
}

func (s *Repository) invalidateUserCache(user *models.User) {
	s.Cache.Delete(fmt.Sprintf("user_by_name_%s", user.Username))
	s.Cache.Delete(fmt.Sprintf("user_by_id_%d", user.ID))
}
