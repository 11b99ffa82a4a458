// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"os"
	"path/filepath"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/services"
)

const (
	// DefaultSweepInterval is used when no interval is configured.
	DefaultSweepInterval = 6 * time.Hour
	// orphanGracePeriod protects files whose record insert is still in
	// flight from being swept between upload and commit.
	orphanGracePeriod = 1 * time.Hour
)

var _ services.HousekeepingService = (*Service)(nil)

// Service sweeps the upload directory for image files no longer
// referenced by any artwork record. Such orphans are harmless (the
// partial-failure policy deliberately produces them) but not worth
// keeping.
type Service struct {
	Repo     *repository.Repository
	Uploads  services.UploadService
	interval time.Duration
	enabled  bool
	timer    *time.Timer
	stopCh   chan struct{}
}

// NewService creates a new housekeeping service instance.
func NewService(cfg *config.Config, repo *repository.Repository, uploads services.UploadService) *Service {
	interval := DefaultSweepInterval
	if cfg.Housekeeping.IntervalHours > 0 {
		interval = time.Duration(cfg.Housekeeping.IntervalHours) * time.Hour
	}
	return &Service{
		Repo:     repo,
		Uploads:  uploads,
		interval: interval,
		enabled:  cfg.Housekeeping.Enabled,
		stopCh:   make(chan struct{}),
	}
}

// Start kicks off the background sweep loop.
func (s *Service) Start() {
	if !s.enabled {
		logging.Log.Debug("Housekeeping disabled; orphan sweep will only run on demand.")
		return
	}
	logging.Log.Info("Starting background housekeeping service.")
	s.timer = time.NewTimer(s.interval)

	go func() {
		for {
			select {
			case <-s.timer.C:
				if report, err := s.TriggerSweep(); err != nil {
					logging.Log.Errorf("Housekeeping sweep failed: %v", err)
				} else if report.Removed > 0 {
					logging.Log.Infof("Housekeeping removed %d orphaned file(s) out of %d scanned.", report.Removed, report.Scanned)
				}
				s.timer.Reset(s.interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background sweep loop.
func (s *Service) Stop() {
	if !s.enabled {
		return
	}
	logging.Log.Info("Stopping background housekeeping service.")
	close(s.stopCh)
}

// TriggerSweep runs one sweep immediately and reports what it did.
func (s *Service) TriggerSweep() (*models.HousekeepingReport, error) {
	referenced, err := s.Repo.GetImagePaths()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.Uploads.Dir())
	if err != nil {
		if os.IsNotExist(err) {
			// Nothing uploaded yet.
			return &models.HousekeepingReport{}, nil
		}
		return nil, err
	}

	report := &models.HousekeepingReport{}
	cutoff := time.Now().Add(-orphanGracePeriod)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		report.Scanned++

		publicPath := s.Uploads.PublicPrefix() + entry.Name()
		if _, ok := referenced[publicPath]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := s.Uploads.Delete(publicPath); err != nil {
			logging.Log.Warnf("Housekeeping: failed to remove orphan %s: %v", filepath.Join(s.Uploads.Dir(), entry.Name()), err)
			continue
		}
		report.Removed++
	}

	return report, nil
}
