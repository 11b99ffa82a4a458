// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"portfolio/internal/services"
	"portfolio/internal/services/auth"
)

// loginRequest is the JSON body for the login endpoint.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// statusResponse is the JSON body of the auth status endpoint.
type statusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// sessionCookie builds the session cookie with the given token and age.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// @Summary Log in
// @Description Authenticate with username and password; sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.Sessions.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "auth.login", req.Username, "Session", nil)

	ttlSeconds := h.Cfg.Session.TTLHours * 3600
	if ttlSeconds <= 0 {
		ttlSeconds = 24 * 3600
	}
	http.SetCookie(w, sessionCookie(token, ttlSeconds))
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Logged in successfully"})
}

// @Summary Log out
// @Description Invalidates the current session and clears the cookie. Idempotent.
// @Tags Auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /logout [post]
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromRequest(r)
	h.Sessions.Logout(token)
	h.Auditor.Log(r.Context(), "auth.logout", "", "Session", nil)

	http.SetCookie(w, sessionCookie("", -1))
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "Logged out successfully"})
}

// @Summary Session status
// @Description Reports whether the request carries a live session.
// @Tags Auth
// @Produce json
// @Success 200 {object} statusResponse
// @Router /auth/status [get]
func (h *Handlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromRequest(r)
	respondWithJSON(w, http.StatusOK, statusResponse{Authenticated: h.Sessions.Status(token)})
}
