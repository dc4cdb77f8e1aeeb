// Package lookup resuelve las consultas de producto del motor de captura:
// código exacto para el escáner, fragmento de nombre para la búsqueda manual.
// El catálogo es en español, así que el fragmento se normaliza (minúsculas,
// sin tildes) antes de tocar base o caché.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
	"github.com/jvalencia/surtido-api/pkg/logger"
)

// Al motor le alcanza con pocas coincidencias: el operario refina tecleando.
const maxCandidates = 20

var _ entry.ProductLookup = (*UseCase)(nil)

// UseCase implementa el puerto ProductLookup del motor sobre el repositorio de
// productos, con caché corto por consulta para soportar tecleo rápido.
type UseCase struct {
	products repository.ProductRepository
	cache    Cache
	ttl      time.Duration
	log      *logger.Logger
}

// NewUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewUseCase(products repository.ProductRepository, cache Cache, ttl time.Duration, log *logger.Logger) *UseCase {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if log == nil {
		log = logger.New(logger.Config{Level: "error"})
	}
	return &UseCase{products: products, cache: cache, ttl: ttl, log: log}
}

// Lookup busca candidatos según el modo. Consulta vacía devuelve lista vacía.
func (uc *UseCase) Lookup(ctx context.Context, query string, mode entry.LookupMode) ([]entry.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	key := cacheKey(query, mode)
	if uc.cache != nil {
		var cached []entry.Candidate
		found, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("caché de búsqueda no disponible, consultando base")
		} else if found {
			return cached, nil
		}
	}

	var (
		products []*entity.Product
		err      error
	)
	switch mode {
	case entry.LookupExactCode:
		sku, ok := entry.ParseCode(query)
		if !ok {
			return nil, nil
		}
		var p *entity.Product
		p, err = uc.products.GetBySKU(sku)
		if errors.Is(err, domain.ErrNotFound) {
			p, err = nil, nil
		}
		if p != nil {
			products = []*entity.Product{p}
		}
	default:
		products, err = uc.products.Search(repository.ProductSearch{
			NameFragment: Normalize(query),
			Limit:        maxCandidates,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}

	cands := make([]entry.Candidate, 0, len(products))
	for _, p := range products {
		cands = append(cands, toCandidate(p))
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, cands, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir el caché de búsqueda")
		}
	}
	return cands, nil
}

func toCandidate(p *entity.Product) entry.Candidate {
	c := entry.Candidate{ProductID: p.ID, SKU: p.SKU, Name: p.Name}
	if p.Supplier != nil {
		c.SupplierName = p.Supplier.Name
	}
	return c
}

func cacheKey(query string, mode entry.LookupMode) string {
	kind := "name"
	if mode == entry.LookupExactCode {
		kind = "sku"
	}
	return fmt.Sprintf("lookup:%s:%s", kind, Normalize(query))
}

// Normalize pasa a minúsculas y quita marcas diacríticas ("Ñandú" → "nandu"),
// para que "cafe" encuentre "Café".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
