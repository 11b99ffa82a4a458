// filepath: internal/api/handlers/profile_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/internal/services"
	"portfolio/internal/services/auth"
)

// profileUpdateRequest is the JSON body for profile updates. Username
// and password are deliberately absent: they are not editable here.
type profileUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

// @Summary Get public profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 500 {object} ErrorResponse
// @Router /profile [get]
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.User.GetProfile()
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// @Summary Update profile
// @Description Updates name, email and bio of the photographer account.
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Router /profile [put]
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.User.UpdateProfile(req.Name, req.Email, req.Bio)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		respondWithServiceError(w, err)
		return
	}

	actor := ""
	if user, ok := auth.UserFromContext(r.Context()); ok {
		actor = user.Username
	}
	h.Auditor.Log(r.Context(), "profile.update", actor, "Profile", nil)

	respondWithJSON(w, http.StatusOK, profile)
}
