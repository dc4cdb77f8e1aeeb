package lookup

import (
	"context"
	"time"
)

// Cache puerto de caché para resultados de búsqueda (Redis en producción).
// Un miss no es error: Get devuelve found=false. Los fallos del caché se
// degradan a consultar la base, nunca tumban la búsqueda.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
