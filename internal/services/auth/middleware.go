// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portfolio/internal/logging"
	"portfolio/internal/models"
	"portfolio/internal/services"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "portfolio_session"

type contextKey string

// UserContextKey is the request-context key holding the authenticated *models.User.
const UserContextKey contextKey = "user"

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware guards mutating routes with the session gate.
type Middleware struct {
	User    services.UserService
	Session services.SessionService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(user services.UserService, session services.SessionService) *Middleware {
	return &Middleware{
		User:    user,
		Session: session,
	}
}

// TokenFromRequest extracts the session token from the session cookie
// or, as a fallback for non-browser clients, a Bearer header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// RequireSession validates the session token and injects the
// authenticated user into the request context. Every failure mode
// yields the same 401 body so the response leaks nothing about routes
// or resources.
func (m *Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)

		userID, err := m.Session.Authenticate(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := m.User.GetUserByID(userID)
		if err != nil {
			// Session outlived the user record; treat as logged out.
			logging.Log.Warnf("RequireSession: no user for live session (id %d)", userID)
			m.Session.Logout(token)
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user set by RequireSession.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	return user, ok
}
