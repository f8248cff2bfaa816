package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	storage_go "github.com/supabase-community/storage-go"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
)

const cacheControl = "3600"

// SupabaseImageStorage stores images in a Supabase Storage bucket
type SupabaseImageStorage struct {
	client *storage_go.Client
	bucket string
	// guards every request; the storage client keeps upload options in shared headers
	mu sync.Mutex
}

func NewSupabaseImageStorage(client *database.SupabaseClient, bucket string) repository.ImageStorageRepository {
	return &SupabaseImageStorage{
		client: client.GetClient().Storage,
		bucket: bucket,
	}
}

func (s *SupabaseImageStorage) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	upsert := false
	cache := cacheControl
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		CacheControl: &cache,
		ContentType:  &contentType,
		Upsert:       &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", path, s.bucket, err)
	}
	return nil
}

func (s *SupabaseImageStorage) PublicURL(path string) string {
	return s.client.GetPublicUrl(s.bucket, path).SignedURL
}

func (s *SupabaseImageStorage) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.client.RemoveFile(s.bucket, []string{path}); err != nil {
		return fmt.Errorf("failed to remove %s from bucket %s: %w", path, s.bucket, err)
	}
	return nil
}
