package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
)

type storageCall struct {
	method      string
	path        string
	contentType string
	upsert      string
	body        []byte
}

func newFakeStorage(t *testing.T, status int) (*[]storageCall, *database.SupabaseClient) {
	t.Helper()
	var mu sync.Mutex
	calls := &[]storageCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		*calls = append(*calls, storageCall{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			upsert:      r.Header.Get("x-upsert"),
			body:        body,
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status >= 400 {
			_, _ = io.WriteString(w, `{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`)
			return
		}
		if r.Method == http.MethodDelete {
			_, _ = io.WriteString(w, `[]`)
			return
		}
		_, _ = io.WriteString(w, `{"Key":"umkm-images/umkm/1-1.png"}`)
	}))
	t.Cleanup(srv.Close)

	client, err := database.NewSupabaseClient(srv.URL, "anon")
	require.NoError(t, err)
	return calls, client
}

func TestSupabaseImageStorage_Upload(t *testing.T) {
	calls, client := newFakeStorage(t, http.StatusOK)
	store := NewSupabaseImageStorage(client, "umkm-images")

	err := store.Upload(context.Background(), "umkm/1-1700000000000.png", []byte("\x89PNG"), "image/png")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/storage/v1/object/umkm-images/umkm/1-1700000000000.png", call.path)
	assert.Equal(t, "image/png", call.contentType)
	assert.Equal(t, "false", call.upsert)
	assert.Equal(t, []byte("\x89PNG"), call.body)

	url := store.PublicURL("umkm/1-1700000000000.png")
	assert.Equal(t, client.URL()+"/storage/v1/object/public/umkm-images/umkm/1-1700000000000.png", url)

	require.NoError(t, store.Remove(context.Background(), "umkm/1-1700000000000.png"))
	assert.Equal(t, http.MethodDelete, (*calls)[1].method)
	assert.Equal(t, "/storage/v1/object/umkm-images", (*calls)[1].path)
	assert.Contains(t, string((*calls)[1].body), "umkm/1-1700000000000.png")
}

func TestSupabaseImageStorage_UploadError(t *testing.T) {
	_, client := newFakeStorage(t, http.StatusConflict)
	store := NewSupabaseImageStorage(client, "umkm-images")

	err := store.Upload(context.Background(), "umkm/1-1.png", []byte("x"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "umkm/1-1.png")
}

func TestNewMinIOImageStorage(t *testing.T) {
	_, err := NewMinIOImageStorage(MinIOConfig{Endpoint: "localhost:9000", Bucket: "umkm-images"})
	assert.Error(t, err)

	_, err = NewMinIOImageStorage(MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	assert.Error(t, err)

	store, err := NewMinIOImageStorage(MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", Bucket: "umkm-images"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/umkm-images/umkm/1-1.png", store.PublicURL("umkm/1-1.png"))

	store, err = NewMinIOImageStorage(MinIOConfig{Endpoint: "s3.example.com", AccessKey: "a", SecretKey: "b", Bucket: "img", UseSSL: true, PublicURL: "https://cdn.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img/umkm/2-2.jpg", store.AsRepository().PublicURL("/umkm/2-2.jpg"))
}

func TestSupabaseImageStorage_ConcurrentUploadAndRemove(t *testing.T) {
	_, client := newFakeStorage(t, http.StatusOK)
	store := NewSupabaseImageStorage(client, "umkm-images")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Upload(ctx, "umkm/1-1.png", []byte("\x89PNG"), "image/png"))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Remove(ctx, "umkm/1-1.png"))
		}()
	}
	wg.Wait()
}
