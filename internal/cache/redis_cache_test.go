package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/itemshop/storefront/internal/cache"
	"github.com/itemshop/storefront/internal/config"
	"github.com/itemshop/storefront/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
		CatalogTTL: time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock
}

func TestGet(t *testing.T) {
	catalog := []models.Product{{ID: 1, Name: "Rune Scimitar", Cost: 25000}}
	jsonData, err := json.Marshal(catalog)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result []models.Product

		mock.ExpectGet(cache.CatalogKey).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(t.Context(), cache.CatalogKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, catalog, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result []models.Product

		mock.ExpectGet(cache.CatalogKey).SetErr(redis.Nil)

		found, err := redisCache.Get(t.Context(), cache.CatalogKey, &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, result)
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result []models.Product

		mock.ExpectGet(cache.CatalogKey).SetErr(errors.New("connection refused"))

		found, err := redisCache.Get(t.Context(), cache.CatalogKey, &result)

		require.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		redisCache, mock := setup(t)

		var result []models.Product

		mock.ExpectGet(cache.CatalogKey).SetVal("{not json")

		found, err := redisCache.Get(t.Context(), cache.CatalogKey, &result)

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestSet(t *testing.T) {
	catalog := []models.Product{{ID: 2, Name: "Lobster", Cost: 150}}
	jsonData, err := json.Marshal(catalog)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(cache.CatalogKey, jsonData, time.Minute).SetVal("OK")

		err := redisCache.Set(t.Context(), cache.CatalogKey, catalog, time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Falls Back To Default", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectSet(cache.CatalogKey, jsonData, 10*time.Minute).SetVal("OK")

		err := redisCache.Set(t.Context(), cache.CatalogKey, catalog, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(cache.CatalogKey).SetVal(1)

		require.NoError(t, redisCache.Delete(t.Context(), cache.CatalogKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock := setup(t)

		mock.ExpectDel(cache.CatalogKey).SetErr(errors.New("connection refused"))

		require.Error(t, redisCache.Delete(t.Context(), cache.CatalogKey))
	})
}
