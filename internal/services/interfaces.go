// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"mime/multipart"

	"portfolio/internal/config"
	"portfolio/internal/models"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "artwork.create", "auth.login")
	// actor: who did it (username)
	// resource: what was affected (e.g., "Artwork:3", "Profile")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// UserService defines the interface for profile and credential handling.
type UserService interface {
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetProfile() (*models.Profile, error)
	UpdateProfile(name, email, bio string) (*models.Profile, error)
	EnsureDefaultUser(cfg *config.Config) error
}

// UploadService defines the interface for storing and removing uploaded
// image files.
type UploadService interface {
	Accept(file multipart.File, header *multipart.FileHeader) (string, error)
	Delete(publicPath string) error
	PublicPrefix() string
	Dir() string
}

// ArtworkService defines the interface for the artwork lifecycle.
type ArtworkService interface {
	GetArtworks() ([]models.Artwork, error)
	GetArtwork(id int64) (*models.Artwork, error)
	CreateArtwork(fields models.ArtworkFields, file multipart.File, header *multipart.FileHeader) (*models.Artwork, error)
	UpdateArtwork(id int64, fields models.ArtworkFields, file multipart.File, header *multipart.FileHeader) (*models.Artwork, error)
	DeleteArtwork(id int64) error
}

// SessionService defines the interface for the session gate.
type SessionService interface {
	Login(username, password string) (string, error)
	Logout(token string)
	Authenticate(token string) (int64, error)
	Status(token string) bool
}

// HousekeepingService defines the interface for the orphan-file sweep.
type HousekeepingService interface {
	Start()
	Stop()
	TriggerSweep() (*models.HousekeepingReport, error)
}
