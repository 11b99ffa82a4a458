// filepath: internal/services/service_errors.go
package services

import "errors"

// Standard errors returned by the service layer. Handlers translate
// these into HTTP status codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrFileTooLarge       = errors.New("file too large")
	ErrStorage            = errors.New("storage failure")
)
