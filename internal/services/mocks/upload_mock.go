// filepath: internal/services/mocks/upload_mock.go
package mocks

import (
	"mime/multipart"

	"portfolio/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of services.UploadService
type MockUploadService struct {
	mock.Mock
}

var _ services.UploadService = (*MockUploadService)(nil)

func (m *MockUploadService) Accept(file multipart.File, header *multipart.FileHeader) (string, error) {
	args := m.Called(file, header)
	return args.String(0), args.Error(1)
}

func (m *MockUploadService) Delete(publicPath string) error {
	args := m.Called(publicPath)
	return args.Error(0)
}

func (m *MockUploadService) PublicPrefix() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockUploadService) Dir() string {
	args := m.Called()
	return args.String(0)
}
