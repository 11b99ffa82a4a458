// filepath: internal/api/handlers/main.go
package handlers

import (
	"portfolio/internal/config"
	"portfolio/internal/services"
)

// Handlers holds the shared dependencies for the API handlers.
// It depends on the service interfaces, not concrete structs.
type Handlers struct {
	User         services.UserService
	Artworks     services.ArtworkService
	Sessions     services.SessionService
	Housekeeping services.HousekeepingService
	Auditor      services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	user services.UserService,
	artworks services.ArtworkService,
	sessions services.SessionService,
	housekeeping services.HousekeepingService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		User:         user,
		Artworks:     artworks,
		Sessions:     sessions,
		Housekeeping: housekeeping,
		Auditor:      auditor,
		Cfg:          cfg,
	}
}
