package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/firestore"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
)

// requireEnv loads ../../.env when present and skips unless every variable is set
func requireEnv(t *testing.T, vars ...string) {
	t.Helper()
	_ = godotenv.Load("../../.env")
	for _, v := range vars {
		if os.Getenv(v) == "" {
			t.Skipf("%s is not set", v)
		}
	}
}

func TestSupabaseUMKMRepository_Live(t *testing.T) {
	requireEnv(t, "SUPABASE_URL", "SUPABASE_ANON_KEY")

	client, err := database.NewSupabaseClient(os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"))
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, client.HealthCheck(ctx))

	repo := NewSupabaseUMKMRepository(client)
	items, err := repo.Find(ctx, model.UMKMFilter{})
	require.NoError(t, err)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}

	if len(items) > 0 {
		got, err := repo.GetByID(ctx, items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, items[0].Name, got.Name)

		filtered, err := repo.Find(ctx, model.UMKMFilter{Category: items[0].Category})
		require.NoError(t, err)
		for _, item := range filtered {
			assert.Equal(t, items[0].Category, item.Category)
		}
	}
}

func TestFirestoreRouteCacheRepository_Live(t *testing.T) {
	requireEnv(t, "FIRESTORE_PROJECT_ID")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	client, err := firestore.NewFirestoreClient(ctx, os.Getenv("FIRESTORE_PROJECT_ID"), os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"), logger.Test(t))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	repo := NewFirestoreRouteCacheRepository(client.GetClient())
	key := "live-test-" + time.Now().Format("20060102150405.000000")
	route := &model.RouteDetails{
		Path:            []model.LatLng{{Lat: -7.3287, Lng: 108.2145}, {Lat: -7.3301, Lng: 108.2210}},
		DistanceMeters:  820,
		DurationSeconds: 120,
	}
	require.NoError(t, repo.Save(ctx, key, route, time.Minute))

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, route.Path, got.Path)
	assert.Equal(t, route.DistanceMeters, got.DistanceMeters)

	_, err = repo.Get(ctx, key+"-missing")
	assert.ErrorIs(t, err, model.ErrRouteCacheMiss)
}
