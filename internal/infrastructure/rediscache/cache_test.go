package rediscache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/infrastructure/rediscache"
	"github.com/jvalencia/surtido-api/pkg/logger"
)

func buildCache(t *testing.T) (*rediscache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return rediscache.NewCache(client, logger.New(logger.Config{Level: "error"})), mr
}

func TestCache_GuardaYRecupera(t *testing.T) {
	ctx := context.Background()
	cache, _ := buildCache(t)

	in := []entry.Candidate{
		{ProductID: "prod-a", SKU: 884512, Name: "Tornillo 1/2", SupplierName: "Ferretería El Sol"},
	}
	require.NoError(t, cache.Set(ctx, "lookup:name:tornillo", in, time.Minute))

	var out []entry.Candidate
	found, err := cache.Get(ctx, "lookup:name:tornillo", &out)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestCache_MissNoEsError(t *testing.T) {
	cache, _ := buildCache(t)

	var out []entry.Candidate
	found, err := cache.Get(context.Background(), "lookup:name:inexistente", &out)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_RespetaTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := buildCache(t)

	require.NoError(t, cache.Set(ctx, "lookup:name:tornillo", []entry.Candidate{{ProductID: "x"}}, time.Second))
	mr.FastForward(2 * time.Second)

	var out []entry.Candidate
	found, err := cache.Get(ctx, "lookup:name:tornillo", &out)

	require.NoError(t, err)
	assert.False(t, found, "la clave debe expirar con el TTL")
}

// Un valor ilegible se trata como miss: el caché nunca tumba la búsqueda.
func TestCache_ValorCorruptoEsMiss(t *testing.T) {
	ctx := context.Background()
	cache, mr := buildCache(t)
	require.NoError(t, mr.Set("lookup:name:roto", "esto no es json{"))

	var out []entry.Candidate
	found, err := cache.Get(ctx, "lookup:name:roto", &out)

	require.NoError(t, err)
	assert.False(t, found)
}
