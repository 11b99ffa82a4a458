// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"testing"

	"portfolio/internal/config"
	"portfolio/internal/services/mocks"
)

// testHandlers bundles the handler struct with its mocked services so
// individual tests can set expectations on exactly the calls they need.
type testHandlers struct {
	h            *Handlers
	user         *mocks.MockUserService
	artworks     *mocks.MockArtworkService
	sessions     *mocks.MockSessionService
	housekeeping *mocks.MockHousekeepingService
	auditor      *mocks.MockAuditor
}

func newTestHandlers(t *testing.T) *testHandlers {
	t.Helper()

	th := &testHandlers{
		user:         new(mocks.MockUserService),
		artworks:     new(mocks.MockArtworkService),
		sessions:     new(mocks.MockSessionService),
		housekeeping: new(mocks.MockHousekeepingService),
		auditor:      new(mocks.MockAuditor),
	}

	cfg := &config.Config{
		Session:            config.SessionConfig{TTLHours: 24},
		MaxUploadSizeBytes: 8 << 20,
	}

	th.h = NewHandlers(
		th.user,
		th.artworks,
		th.sessions,
		th.housekeeping,
		th.auditor,
		cfg,
	)
	return th
}

func (th *testHandlers) assertExpectations(t *testing.T) {
	t.Helper()
	th.user.AssertExpectations(t)
	th.artworks.AssertExpectations(t)
	th.sessions.AssertExpectations(t)
	th.housekeeping.AssertExpectations(t)
	th.auditor.AssertExpectations(t)
}
