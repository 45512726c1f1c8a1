package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/digiri/giriloyo-batik/internal/cache"
	"github.com/digiri/giriloyo-batik/internal/config"
	"github.com/digiri/giriloyo-batik/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.ProductKey(7)
	product := models.Product{ID: 7, Slug: "kain-motif-parang", Name: "Kain Motif Parang", Price: 850000}
	jsonData, err := json.Marshal(product)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result models.Product

		mock.ExpectGet(key).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, product.Name, result.Name)
		assert.Equal(t, product.Price, result.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result models.Product

		mock.ExpectGet(key).SetErr(redis.Nil)

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result models.Product

		expectedErr := errors.New("redis connection error")
		mock.ExpectGet(key).SetErr(expectedErr)

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to get key product:7 from redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result models.Product

		mock.ExpectGet(key).SetVal(`{"id": "not-a-number"}`)

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)

		var jsonErr *json.UnmarshalTypeError

		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := cache.OrderKey("GRLYO-1700000000000-ABC123")
	order := models.Order{OrderID: "GRLYO-1700000000000-ABC123", Status: models.OrderStatusPending}
	jsonData, err := json.Marshal(order)
	require.NoError(t, err)

	t.Run("Success - With Specific TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		mock.ExpectSet(key, jsonData, 5*time.Minute).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, order, 5*time.Minute)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL Without Jitter", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)

		mock.ExpectSet(key, jsonData, cfg.DefaultTTL).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, order, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		// Assert
		require.Error(t, err)

		var jsonErr *json.UnsupportedTypeError

		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SET failed")

		mock.ExpectSet(key, jsonData, time.Minute).SetErr(expectedErr)

		// Act
		err := redisCache.Set(ctx, key, order, time.Minute)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet_DefaultTTLWithJitter(t *testing.T) {
	// Arrange
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute, Jitter: time.Minute}
	redisCache := cache.NewRedisCache(client, cfg)

	// Act
	err := redisCache.Set(t.Context(), "product:1", models.Product{ID: 1}, 0)

	// Assert
	require.NoError(t, err)
	ttl := mr.TTL("product:1")
	assert.GreaterOrEqual(t, ttl, cfg.DefaultTTL)
	assert.Less(t, ttl, cfg.DefaultTTL+cfg.Jitter)
}

func TestDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Multiple Keys", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		mock.ExpectDel("product:1", "product_slug:kain").SetVal(2)

		// Act
		err := redisCache.Delete(ctx, "product:1", "product_slug:kain")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")

		mock.ExpectDel("order:X").SetErr(expectedErr)

		// Act
		err := redisCache.Delete(ctx, "order:X")

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "product:42", cache.ProductKey(42))
	assert.Equal(t, "product_slug:kain-sogan", cache.ProductSlugKey("kain-sogan"))
	assert.Equal(t, "order:GRLYO-1-AAAAAA", cache.OrderKey("GRLYO-1-AAAAAA"))
	assert.Equal(t, "prefix:", cache.Key("prefix", ""))
}
