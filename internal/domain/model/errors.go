package model

import "errors"

var (
	ErrUMKMNotFound     = errors.New("umkm not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrAdminDisabled    = errors.New("admin login is disabled")
	ErrImageTooLarge    = errors.New("image exceeds maximum size")
	ErrNotAnImage       = errors.New("file is not an image")
	ErrEmptyImage       = errors.New("image file is empty")
	ErrUploadFailed     = errors.New("image upload failed")
	ErrSaveFailed       = errors.New("failed to save image url")
	ErrRouteNotFound    = errors.New("route not found")
	ErrRouteCacheMiss   = errors.New("route cache miss")
	ErrInvalidRoute     = errors.New("invalid route request")
)

// ValidationError describes a single invalid request field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrValidation
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
