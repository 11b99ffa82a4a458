// filepath: internal/api/handlers/artwork_handler.go
package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"portfolio/internal/logging"
	"portfolio/internal/models"
	"portfolio/internal/services/auth"

	"github.com/gorilla/mux"
)

// artworkID extracts and parses the {id} path variable.
func artworkID(r *http.Request) (int64, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid artwork id: %q", idStr)
	}
	return id, nil
}

// parseArtworkForm reads the multipart text fields and the optional
// image part. A missing image part yields (nil, nil) for the file so
// the service layer decides whether that is acceptable. The request
// body is capped so an oversized upload is cut off while streaming in
// rather than after it has been spooled to disk.
func (h *Handlers) parseArtworkForm(w http.ResponseWriter, r *http.Request) (models.ArtworkFields, multipart.File, *multipart.FileHeader, error) {
	maxMemory := h.Cfg.MaxUploadSizeBytes
	if maxMemory <= 0 {
		maxMemory = 10 << 20
	}
	// Headroom for the text fields and multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, maxMemory+(1<<20))
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return models.ArtworkFields{}, nil, nil, err
	}

	fields := models.ArtworkFields{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return fields, nil, nil, nil
		}
		return models.ArtworkFields{}, nil, nil, err
	}
	return fields, file, header, nil
}

// respondWithFormError distinguishes a body that blew past the upload
// cap from a malformed multipart payload.
func respondWithFormError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		respondWithError(w, http.StatusBadRequest, "Image exceeds the maximum upload size")
		return
	}
	respondWithError(w, http.StatusBadRequest, "Failed to parse multipart form")
}

// actor returns the authenticated username for audit events.
func actor(r *http.Request) string {
	if user, ok := auth.UserFromContext(r.Context()); ok {
		return user.Username
	}
	return ""
}

// @Summary List artworks
// @Description Returns the public gallery, newest first.
// @Tags Artworks
// @Produce json
// @Success 200 {array} models.Artwork
// @Failure 500 {object} ErrorResponse
// @Router /artworks [get]
func (h *Handlers) GetArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.Artworks.GetArtworks()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, artworks)
}

// @Summary Get a single artwork
// @Tags Artworks
// @Produce json
// @Success 200 {object} models.Artwork
// @Failure 400 {object} ErrorResponse "Invalid artwork id"
// @Failure 404 {object} ErrorResponse "Artwork not found"
// @Router /artworks/{id} [get]
func (h *Handlers) GetArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := artworkID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid artwork id")
		return
	}

	artwork, err := h.Artworks.GetArtwork(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, artwork)
}

// @Summary Create an artwork
// @Description Multipart form: image (required), title (required), description, location.
// @Tags Artworks
// @Accept mpfd
// @Produce json
// @Success 201 {object} models.Artwork
// @Failure 400 {object} ErrorResponse "Validation or upload rejection"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse
// @Router /artworks [post]
func (h *Handlers) CreateArtwork(w http.ResponseWriter, r *http.Request) {
	fields, file, header, err := h.parseArtworkForm(w, r)
	if err != nil {
		logging.Log.Warnf("CreateArtwork: failed to parse multipart form: %v", err)
		respondWithFormError(w, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	artwork, err := h.Artworks.CreateArtwork(fields, file, header)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "artwork.create", actor(r), fmt.Sprintf("Artwork:%d", artwork.ID), map[string]interface{}{
		"title": artwork.Title,
	})
	respondWithJSON(w, http.StatusCreated, artwork)
}

// @Summary Update an artwork
// @Description Multipart form like create; the image part is optional. A new
// @Description image replaces the stored one, whose file is removed after the
// @Description record update has committed.
// @Tags Artworks
// @Accept mpfd
// @Produce json
// @Success 200 {object} models.Artwork
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Artwork not found"
// @Router /artworks/{id} [put]
func (h *Handlers) UpdateArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := artworkID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid artwork id")
		return
	}

	fields, file, header, err := h.parseArtworkForm(w, r)
	if err != nil {
		logging.Log.Warnf("UpdateArtwork: failed to parse multipart form: %v", err)
		respondWithFormError(w, err)
		return
	}
	if file != nil {
		defer file.Close()
	}

	artwork, err := h.Artworks.UpdateArtwork(id, fields, file, header)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "artwork.update", actor(r), fmt.Sprintf("Artwork:%d", id), map[string]interface{}{
		"title":          artwork.Title,
		"image_replaced": header != nil,
	})
	respondWithJSON(w, http.StatusOK, artwork)
}

// @Summary Delete an artwork
// @Description Removes the record and its backing image file.
// @Tags Artworks
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid artwork id"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Artwork not found"
// @Router /artworks/{id} [delete]
func (h *Handlers) DeleteArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := artworkID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid artwork id")
		return
	}

	if err := h.Artworks.DeleteArtwork(id); err != nil {
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "artwork.delete", actor(r), fmt.Sprintf("Artwork:%d", id), nil)
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Artwork deleted successfully"})
}
