// filepath: internal/repository/artwork_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"portfolio/internal/logging"
	"portfolio/internal/models"

	"github.com/Masterminds/squirrel"
)

const artworkColumns = "id, title, description, location, image_path, created_at, updated_at"

// scanArtwork scans a single row into an Artwork, converting the stored
// unix timestamps back into time.Time.
func scanArtwork(row squirrel.RowScanner) (*models.Artwork, error) {
	var a models.Artwork
	var created, updated int64
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Location, &a.ImagePath, &created, &updated); err != nil {
		return nil, err
	}
	a.CreatedAt = time.Unix(created, 0).UTC()
	a.UpdatedAt = time.Unix(updated, 0).UTC()
	return &a, nil
}

// GetArtworks returns all artworks, newest first. Ties on created_at
// (second resolution) are broken by id so insertion order wins.
func (s *Repository) GetArtworks() ([]models.Artwork, error) {
	query := s.Builder.
		Select(artworkColumns).
		From("artworks").
		OrderBy("created_at DESC", "id DESC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build artworks query: %w", err)
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artworks := make([]models.Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, *a)
	}
	return artworks, rows.Err()
}

// GetArtwork retrieves a single artwork by id.
func (s *Repository) GetArtwork(id int64) (*models.Artwork, error) {
	query := s.Builder.
		Select(artworkColumns).
		From("artworks").
		Where(squirrel.Eq{"id": id})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build artwork query: %w", err)
	}

	a, err := scanArtwork(s.DB.QueryRow(sqlQuery, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrArtworkNotFound
		}
		return nil, err
	}
	return a, nil
}

// CreateArtwork inserts a new artwork record with both timestamps set to
// now and returns the stored row.
func (s *Repository) CreateArtwork(fields models.ArtworkFields, imagePath string) (*models.Artwork, error) {
	now := time.Now().Unix()

	query := s.Builder.
		Insert("artworks").
		Columns("title", "description", "location", "image_path", "created_at", "updated_at").
		Values(fields.Title, fields.Description, fields.Location, imagePath, now, now)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	res, err := s.DB.Exec(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateArtwork: inserted artwork %d (%s)", id, fields.Title)
	return s.GetArtwork(id)
}

// UpdateArtwork updates an artwork's metadata, optionally replacing its
// image path, and refreshes updated_at. It returns the updated row plus
// the image path the record held before the update so the caller can
// clean up the orphaned file once the update has committed. The whole
// read-modify-write runs in one transaction.
func (s *Repository) UpdateArtwork(id int64, fields models.ArtworkFields, newImagePath string) (*models.Artwork, string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback()

	var previousPath string
	err = tx.QueryRow("SELECT image_path FROM artworks WHERE id = ?", id).Scan(&previousPath)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", ErrArtworkNotFound
		}
		return nil, "", err
	}

	imagePath := previousPath
	if newImagePath != "" {
		imagePath = newImagePath
	}

	update := s.Builder.
		Update("artworks").
		Set("title", fields.Title).
		Set("description", fields.Description).
		Set("location", fields.Location).
		Set("image_path", imagePath).
		Set("updated_at", time.Now().Unix()).
		Where(squirrel.Eq{"id": id})

	sqlQuery, args, err := update.ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := tx.Exec(sqlQuery, args...)
	if err != nil {
		return nil, "", err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, "", err
	}
	if affected == 0 {
		// Deleted between our read and write.
		return nil, "", ErrArtworkNotFound
	}

	// Read the updated row back inside the transaction: once Commit
	// returns nil the caller may delete the replaced file, so this
	// function must not report a committed update as failed.
	updated, err := scanArtwork(tx.QueryRow("SELECT "+artworkColumns+" FROM artworks WHERE id = ?", id))
	if err != nil {
		return nil, "", err
	}

	if err := tx.Commit(); err != nil {
		return nil, "", err
	}
	return updated, previousPath, nil
}

// DeleteArtwork removes an artwork record and returns the image path it
// referenced. Exactly one of two concurrent deletes for the same id
// succeeds; the other observes ErrArtworkNotFound.
func (s *Repository) DeleteArtwork(id int64) (string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var imagePath string
	err = tx.QueryRow("SELECT image_path FROM artworks WHERE id = ?", id).Scan(&imagePath)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrArtworkNotFound
		}
		return "", err
	}

	res, err := tx.Exec("DELETE FROM artworks WHERE id = ?", id)
	if err != nil {
		return "", err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", ErrArtworkNotFound
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	logging.Log.Debugf("DeleteArtwork: removed artwork %d", id)
	return imagePath, nil
}

// GetImagePaths returns the image paths of all artwork records. Used by
// housekeeping to detect orphaned files in the upload directory.
func (s *Repository) GetImagePaths() (map[string]struct{}, error) {
	rows, err := s.DB.Query("SELECT image_path FROM artworks")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paths := make(map[string]struct{})
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths[p] = struct{}{}
	}
	return paths, rows.Err()
}
