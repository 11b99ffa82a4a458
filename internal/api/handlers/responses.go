// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/internal/logging"
	"portfolio/internal/services"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard format for simple API messages.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError translates a service-layer error into the
// matching status code and a client-safe message. Internal detail
// (paths, driver errors) stays in the log.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnsupportedType):
		respondWithError(w, http.StatusBadRequest, "Only image files are allowed (jpeg, png, gif, webp)")
	case errors.Is(err, services.ErrFileTooLarge):
		respondWithError(w, http.StatusBadRequest, "Image exceeds the maximum upload size")
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Artwork not found")
	case errors.Is(err, services.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, services.ErrStorage):
		logging.Log.Errorf("Storage error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Storage error")
	default:
		logging.Log.Errorf("Internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Database error")
	}
}
