// filepath: internal/services/mocks/artwork_mock.go
package mocks

import (
	"mime/multipart"

	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockArtworkService is a mock implementation of services.ArtworkService
type MockArtworkService struct {
	mock.Mock
}

var _ services.ArtworkService = (*MockArtworkService)(nil)

func (m *MockArtworkService) GetArtworks() ([]models.Artwork, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artwork), args.Error(1)
}

func (m *MockArtworkService) GetArtwork(id int64) (*models.Artwork, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artwork), args.Error(1)
}

func (m *MockArtworkService) CreateArtwork(fields models.ArtworkFields, file multipart.File, header *multipart.FileHeader) (*models.Artwork, error) {
	args := m.Called(fields, file, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artwork), args.Error(1)
}

func (m *MockArtworkService) UpdateArtwork(id int64, fields models.ArtworkFields, file multipart.File, header *multipart.FileHeader) (*models.Artwork, error) {
	args := m.Called(id, fields, file, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artwork), args.Error(1)
}

func (m *MockArtworkService) DeleteArtwork(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
