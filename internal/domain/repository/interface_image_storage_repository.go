package repository

import (
	"context"
)

// ImageStorageRepository is the object store for business images
type ImageStorageRepository interface {
	// Upload stores data at path without overwriting an existing object
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
	Remove(ctx context.Context, path string) error
}
