// filepath: internal/api/handlers/profile_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	th := newTestHandlers(t)
	th.user.On("GetProfile").Return(&models.Profile{
		Name:  "Photographer Name",
		Email: "photographer@example.com",
		Bio:   "Landscapes and portraits.",
	}, nil).Once()

	req := httptest.NewRequest("GET", "/api/profile", nil)
	rr := httptest.NewRecorder()

	th.h.GetProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "Photographer Name", profile.Name)
	assert.Equal(t, "photographer@example.com", profile.Email)
	th.assertExpectations(t)
}

func TestGetProfile_NotSeeded(t *testing.T) {
	th := newTestHandlers(t)
	th.user.On("GetProfile").Return(nil, services.ErrNotFound).Once()

	req := httptest.NewRequest("GET", "/api/profile", nil)
	rr := httptest.NewRecorder()

	th.h.GetProfile(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Profile not found"}`, rr.Body.String())
}

func TestUpdateProfile(t *testing.T) {
	th := newTestHandlers(t)
	th.user.On("UpdateProfile", "New Name", "new@example.com", "New bio").Return(&models.Profile{
		Name:  "New Name",
		Email: "new@example.com",
		Bio:   "New bio",
	}, nil).Once()
	th.auditor.On("Log", mock.Anything, "profile.update", "admin", "Profile", mock.Anything).Once()

	body := bytes.NewBufferString(`{"name":"New Name","email":"new@example.com","bio":"New bio"}`)
	req := httptest.NewRequest("PUT", "/api/profile", body)
	// Simulate what RequireSession injects.
	ctx := context.WithValue(req.Context(), auth.UserContextKey, &models.User{ID: 1, Username: "admin"})
	req = req.WithContext(ctx)
	rr := httptest.NewRecorder()

	th.h.UpdateProfile(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
	assert.Equal(t, "New Name", profile.Name)
	th.assertExpectations(t)
}

func TestUpdateProfile_MalformedBody(t *testing.T) {
	th := newTestHandlers(t)

	req := httptest.NewRequest("PUT", "/api/profile", bytes.NewBufferString(`not json`))
	rr := httptest.NewRecorder()

	th.h.UpdateProfile(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	th.user.AssertNotCalled(t, "UpdateProfile")
}
