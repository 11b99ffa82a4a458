// filepath: internal/models/models.go
package models

import "time"

// User is the singleton photographer account. The password hash never
// leaves the backend; the JSON tag strips it from API responses.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
}

// Profile is the public view of the user record.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
}

// Profile returns the public fields of a user.
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Bio:      u.Bio,
	}
}

// Artwork is a gallery entry pairing metadata with one stored image.
// ImagePath is the public URL path ("/uploads/<name>") of the backing
// file; for as long as the record exists that file exists on disk.
type Artwork struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImagePath   string    `json:"image_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArtworkFields carries the caller-editable metadata of an artwork.
type ArtworkFields struct {
	Title       string
	Description string
	Location    string
}

// HousekeepingReport summarizes one orphan sweep over the upload
// directory.
type HousekeepingReport struct {
	Scanned int `json:"scanned"`
	Removed int `json:"removed"`
}
