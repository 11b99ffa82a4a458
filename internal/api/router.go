// filepath: internal/api/router.go
package api

import (
	"net/http"

	"portfolio/internal/api/handlers"
	"portfolio/internal/config"
	"portfolio/internal/services/auth"
	"portfolio/internal/web"

	"github.com/gorilla/mux"
)

// SetupRouter configures the main router and its sub-routers. The
// gallery and profile reads stay public; everything that mutates
// state sits behind the session middleware.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/logout", h.Logout).Methods("POST")
	r.HandleFunc("/api/auth/status", h.AuthStatus).Methods("GET")
	r.HandleFunc("/api/profile", h.GetProfile).Methods("GET")
	r.HandleFunc("/api/artworks", h.GetArtworks).Methods("GET")
	r.HandleFunc("/api/artworks/{id}", h.GetArtwork).Methods("GET")

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.RequireSession)
	apiRouter.HandleFunc("/profile", h.UpdateProfile).Methods("PUT")
	apiRouter.HandleFunc("/artworks", h.CreateArtwork).Methods("POST")
	apiRouter.HandleFunc("/artworks/{id}", h.UpdateArtwork).Methods("PUT")
	apiRouter.HandleFunc("/artworks/{id}", h.DeleteArtwork).Methods("DELETE")
	apiRouter.HandleFunc("/housekeeping", h.TriggerHousekeeping).Methods("POST")

	// Uploaded images served straight from disk (public)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.UploadDir))))

	// Frontend web server (public)
	web.AddRoutes(r, cfg.Storage.PublicDir)

	return r
}
