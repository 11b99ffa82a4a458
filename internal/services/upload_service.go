// filepath: internal/services/upload_service.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/storage"

	"github.com/oklog/ulid/v2"
)

// PublicUploadPrefix is the URL prefix under which stored images are
// served as static content.
const PublicUploadPrefix = "/uploads/"

// allowedExtensions and allowedMimeTypes are both enforced: a mislabeled
// upload must fail either check.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var _ UploadService = (*uploadService)(nil)

// uploadService owns the filesystem namespace under the upload
// directory; nothing else writes there.
type uploadService struct {
	uploadDir string
	maxBytes  int64
}

// NewUploadService creates a new UploadService.
func NewUploadService(cfg *config.Config) *uploadService {
	return &uploadService{
		uploadDir: cfg.Storage.UploadDir,
		maxBytes:  cfg.MaxUploadSizeBytes,
	}
}

// PublicPrefix returns the URL prefix of stored files.
func (s *uploadService) PublicPrefix() string { return PublicUploadPrefix }

// Dir returns the upload directory on disk.
func (s *uploadService) Dir() string { return s.uploadDir }

// Accept validates and stores an uploaded image, returning its public
// path ("/uploads/<name>"). The generated name is a ULID (time-ordered,
// 80 bits of entropy) so concurrent uploads cannot collide.
func (s *uploadService) Accept(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxBytes {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, header.Size, s.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}
	declaredMime := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	if mime, _, found := strings.Cut(declaredMime, ";"); found {
		declaredMime = strings.TrimSpace(mime)
	}
	if !allowedMimeTypes[declaredMime] {
		return "", fmt.Errorf("%w: mime type %q", ErrUnsupportedType, declaredMime)
	}

	if err := storage.EnsureDir(s.uploadDir); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	name := ulid.Make().String() + ext
	dst, err := storage.ResolveUnder(s.uploadDir, name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// Guard the streamed copy as well: a client may lie about the size
	// in the multipart header.
	written, err := storage.SaveFile(io.LimitReader(file, s.maxBytes+1), dst)
	if err != nil {
		storage.DeleteFile(dst)
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if written > s.maxBytes {
		storage.DeleteFile(dst)
		return "", fmt.Errorf("%w: upload exceeds limit of %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	logging.Log.Debugf("UploadService: stored %s (%d bytes) as %s", header.Filename, written, name)
	return PublicUploadPrefix + name, nil
}

// Delete removes the stored file behind a public path. Best-effort and
// idempotent: a missing file is not an error.
func (s *uploadService) Delete(publicPath string) error {
	if publicPath == "" {
		return nil
	}
	name := path.Base(strings.TrimPrefix(publicPath, PublicUploadPrefix))
	dst, err := storage.ResolveUnder(s.uploadDir, name)
	if err != nil {
		logging.Log.Warnf("UploadService: refusing to delete suspicious path %q: %v", publicPath, err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return storage.DeleteFile(dst)
}
