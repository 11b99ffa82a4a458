// filepath: internal/repository/artwork_repo_test.go
package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtworkCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	fields := models.ArtworkFields{
		Title:       "Dunes at Dawn",
		Description: "Long exposure over the dunes",
		Location:    "Namibia",
	}

	created, err := repo.CreateArtwork(fields, "/uploads/aaa.jpg")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dunes at Dawn", created.Title)
	assert.Equal(t, "/uploads/aaa.jpg", created.ImagePath)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetArtwork(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Unknown id
	_, err = repo.GetArtwork(99999)
	assert.ErrorIs(t, err, ErrArtworkNotFound)

	// Update metadata only; image path must survive
	updated, previous, err := repo.UpdateArtwork(created.ID, models.ArtworkFields{
		Title:    "Dunes at Dusk",
		Location: "Namibia",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/aaa.jpg", previous)
	assert.Equal(t, "/uploads/aaa.jpg", updated.ImagePath)
	assert.Equal(t, "Dunes at Dusk", updated.Title)
	assert.Equal(t, "", updated.Description)

	// Update with a replacement image; previous path comes back
	updated, previous, err = repo.UpdateArtwork(created.ID, models.ArtworkFields{Title: "Dunes at Dusk"}, "/uploads/bbb.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/aaa.jpg", previous)
	assert.Equal(t, "/uploads/bbb.jpg", updated.ImagePath)

	// Delete returns the referenced image path
	imagePath, err := repo.DeleteArtwork(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/bbb.jpg", imagePath)

	_, err = repo.GetArtwork(created.ID)
	assert.ErrorIs(t, err, ErrArtworkNotFound)
}

func TestGetArtworks_NewestFirst(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 1; i <= 3; i++ {
		_, err := repo.CreateArtwork(models.ArtworkFields{
			Title: fmt.Sprintf("Artwork %d", i),
		}, fmt.Sprintf("/uploads/%d.jpg", i))
		require.NoError(t, err)
	}

	artworks, err := repo.GetArtworks()
	require.NoError(t, err)
	require.Len(t, artworks, 3)

	// Same-second inserts fall back to id ordering, so the last insert
	// still lists first.
	assert.Equal(t, "Artwork 3", artworks[0].Title)
	assert.Equal(t, "Artwork 2", artworks[1].Title)
	assert.Equal(t, "Artwork 1", artworks[2].Title)
}

func TestGetArtworks_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	artworks, err := repo.GetArtworks()
	require.NoError(t, err)
	assert.NotNil(t, artworks)
	assert.Len(t, artworks, 0)
}

func TestUpdateArtwork_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, _, err := repo.UpdateArtwork(42, models.ArtworkFields{Title: "Ghost"}, "")
	assert.ErrorIs(t, err, ErrArtworkNotFound)
}

func TestDeleteArtwork_ExactlyOneWins(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateArtwork(models.ArtworkFields{Title: "Contested"}, "/uploads/c.jpg")
	require.NoError(t, err)

	imagePath, err := repo.DeleteArtwork(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/c.jpg", imagePath)

	// The second delete for the same id loses.
	_, err = repo.DeleteArtwork(created.ID)
	assert.True(t, errors.Is(err, ErrArtworkNotFound), "unexpected error: %v", err)
}

func TestDeleteArtwork_ConcurrentRace(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Two racing deletes for the same row: one succeeds, the other must
	// observe ErrArtworkNotFound, never a stray driver error.
	for i := 0; i < 20; i++ {
		created, err := repo.CreateArtwork(models.ArtworkFields{Title: "Contested"}, "/uploads/race.jpg")
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for g := 0; g < 2; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				_, errs[g] = repo.DeleteArtwork(created.ID)
			}(g)
		}
		wg.Wait()

		succeeded, notFound := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrArtworkNotFound):
				notFound++
			default:
				t.Fatalf("iteration %d: loser saw unexpected error: %v", i, err)
			}
		}
		assert.Equal(t, 1, succeeded, "iteration %d: exactly one delete must win", i)
		assert.Equal(t, 1, notFound, "iteration %d: the loser must observe not-found", i)
	}
}

func TestUpdateArtwork_RacingDelete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// An update racing a delete of the same row must end in one of two
	// consistent outcomes: the update loses with not-found, or it wins
	// and the delete reaps the updated row afterwards.
	for i := 0; i < 20; i++ {
		created, err := repo.CreateArtwork(models.ArtworkFields{Title: "Racing"}, "/uploads/v1.jpg")
		require.NoError(t, err)

		var wg sync.WaitGroup
		var updErr, delErr error
		var updated *models.Artwork
		wg.Add(2)
		go func() {
			defer wg.Done()
			updated, _, updErr = repo.UpdateArtwork(created.ID, models.ArtworkFields{Title: "Racing v2"}, "/uploads/v2.jpg")
		}()
		go func() {
			defer wg.Done()
			_, delErr = repo.DeleteArtwork(created.ID)
		}()
		wg.Wait()

		if updErr != nil {
			assert.True(t, errors.Is(updErr, ErrArtworkNotFound), "iteration %d: update failed with %v", i, updErr)
		} else {
			assert.Equal(t, "/uploads/v2.jpg", updated.ImagePath, "iteration %d", i)
		}
		require.NoError(t, delErr, "iteration %d: the delete must always win eventually", i)

		_, err = repo.GetArtwork(created.ID)
		assert.ErrorIs(t, err, ErrArtworkNotFound, "iteration %d: row must be gone", i)
	}
}

func TestGetImagePaths(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateArtwork(models.ArtworkFields{Title: "One"}, "/uploads/one.jpg")
	require.NoError(t, err)
	_, err = repo.CreateArtwork(models.ArtworkFields{Title: "Two"}, "/uploads/two.png")
	require.NoError(t, err)

	paths, err := repo.GetImagePaths()
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.Contains(t, paths, "/uploads/one.jpg")
	assert.Contains(t, paths, "/uploads/two.png")
}
