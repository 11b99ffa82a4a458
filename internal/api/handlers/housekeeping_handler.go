// filepath: internal/api/handlers/housekeeping_handler.go
package handlers

import (
	"net/http"

	"portfolio/internal/logging"
)

// @Summary Trigger an orphan-file sweep
// @Description Scans the upload directory and removes files that no artwork
// @Description record references anymore. Recent files are left alone.
// @Tags System
// @Produce json
// @Success 200 {object} models.HousekeepingReport
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse
// @Router /housekeeping [post]
func (h *Handlers) TriggerHousekeeping(w http.ResponseWriter, r *http.Request) {
	report, err := h.Housekeeping.TriggerSweep()
	if err != nil {
		logging.Log.Errorf("Housekeeping sweep failed: %v", err)
		respondWithServiceError(w, err)
		return
	}

	h.Auditor.Log(r.Context(), "housekeeping.sweep", actor(r), "UploadDir", map[string]interface{}{
		"scanned": report.Scanned,
		"removed": report.Removed,
	})
	respondWithJSON(w, http.StatusOK, report)
}
