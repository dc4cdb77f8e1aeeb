// Package rediscache implementa el puerto de caché de búsquedas sobre Redis.
// Los valores se guardan como JSON con TTL corto: el caché solo amortigua el
// tecleo rápido del puesto de captura, no es fuente de verdad.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/pkg/config"
	"github.com/jvalencia/surtido-api/pkg/logger"
)

var _ lookup.Cache = (*Cache)(nil)

// Cache adaptador de Redis para el puerto lookup.Cache.
type Cache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewClient crea el cliente de Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewCache construye el adaptador sobre un cliente ya conectado.
func NewCache(client *redis.Client, log *logger.Logger) *Cache {
	return &Cache{client: client, log: log}
}

// Get busca la clave y deserializa en dest. Un miss devuelve found=false sin error.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Valor corrupto: se descarta como miss y se deja expirar.
		c.log.Warn().Err(err).Str("key", key).Msg("valor de caché ilegible, se ignora")
		return false, nil
	}
	return true, nil
}

// Set serializa value y lo guarda con el TTL indicado.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
