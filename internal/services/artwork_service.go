// filepath: internal/services/artwork_service.go
package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"portfolio/internal/logging"
	"portfolio/internal/models"
	"portfolio/internal/repository"
)

var _ ArtworkService = (*artworkService)(nil)

// artworkService orchestrates the artwork record + image file
// lifecycle. The repository owns the id->record mapping, the upload
// service owns the files; this layer keeps the two consistent.
type artworkService struct {
	Repo    *repository.Repository
	Uploads UploadService
}

// NewArtworkService creates a new ArtworkService.
func NewArtworkService(repo *repository.Repository, uploads UploadService) *artworkService {
	return &artworkService{Repo: repo, Uploads: uploads}
}

// GetArtworks returns all artworks, newest first.
func (s *artworkService) GetArtworks() ([]models.Artwork, error) {
	return s.Repo.GetArtworks()
}

// GetArtwork returns a single artwork by id.
func (s *artworkService) GetArtwork(id int64) (*models.Artwork, error) {
	artwork, err := s.Repo.GetArtwork(id)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return artwork, nil
}

// CreateArtwork stores the attached image, then inserts the record. If
// the insert fails the just-stored file is removed again so a rejected
// create never leaves a file behind.
func (s *artworkService) CreateArtwork(fields models.ArtworkFields, file multipart.File, header *multipart.FileHeader) (*models.Artwork, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if file == nil || header == nil {
		return nil, fmt.Errorf("%w: image file is required", ErrValidation)
	}

	imagePath, err := s.Uploads.Accept(file, header)
	if err != nil {
		return nil, err
	}

	artwork, err := s.Repo.CreateArtwork(fields, imagePath)
	if err != nil {
		logging.Log.Errorf("ArtworkService: insert failed after storing %s, cleaning up: %v", imagePath, err)
		if delErr := s.Uploads.Delete(imagePath); delErr != nil {
			logging.Log.Warnf("ArtworkService: failed to remove orphaned upload %s: %v", imagePath, delErr)
		}
		return nil, fmt.Errorf("failed to create artwork record: %w", err)
	}

	logging.Log.Infof("ArtworkService: artwork %d created (%s)", artwork.ID, artwork.Title)
	return artwork, nil
}

// UpdateArtwork updates an artwork's metadata and optionally replaces
// its image. The old file is deleted only after the record update has
// committed, so a failed update never leaves the record pointing at a
// missing file. A failed update removes the newly stored file instead.
func (s *artworkService) UpdateArtwork(id int64, fields models.ArtworkFields, file multipart.File, header *multipart.FileHeader) (*models.Artwork, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	newImagePath := ""
	if file != nil && header != nil {
		path, err := s.Uploads.Accept(file, header)
		if err != nil {
			return nil, err
		}
		newImagePath = path
	}

	artwork, previousPath, err := s.Repo.UpdateArtwork(id, fields, newImagePath)
	if err != nil {
		if newImagePath != "" {
			if delErr := s.Uploads.Delete(newImagePath); delErr != nil {
				logging.Log.Warnf("ArtworkService: failed to remove unused upload %s: %v", newImagePath, delErr)
			}
		}
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update artwork record: %w", err)
	}

	// Only now is the previous image orphaned. Best-effort removal: a
	// leftover file is harmless, a dangling record would not be.
	if newImagePath != "" && previousPath != newImagePath {
		if delErr := s.Uploads.Delete(previousPath); delErr != nil {
			logging.Log.Warnf("ArtworkService: failed to remove replaced image %s: %v", previousPath, delErr)
		}
	}

	logging.Log.Infof("ArtworkService: artwork %d updated", id)
	return artwork, nil
}

// DeleteArtwork removes the record first, then its backing file. A
// crash between the two leaves at most an orphan file for housekeeping,
// never a record without an image.
func (s *artworkService) DeleteArtwork(id int64) error {
	imagePath, err := s.Repo.DeleteArtwork(id)
	if err != nil {
		if errors.Is(err, repository.ErrArtworkNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete artwork record: %w", err)
	}

	if delErr := s.Uploads.Delete(imagePath); delErr != nil {
		logging.Log.Warnf("ArtworkService: failed to remove image %s of deleted artwork %d: %v", imagePath, id, delErr)
	}

	logging.Log.Infof("ArtworkService: artwork %d deleted", id)
	return nil
}
