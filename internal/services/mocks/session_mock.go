// filepath: internal/services/mocks/session_mock.go
package mocks

import (
	"portfolio/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of services.SessionService
type MockSessionService struct {
	mock.Mock
}

var _ services.SessionService = (*MockSessionService)(nil)

func (m *MockSessionService) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Logout(token string) {
	m.Called(token)
}

func (m *MockSessionService) Authenticate(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionService) Status(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}
