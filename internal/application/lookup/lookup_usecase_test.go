package lookup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	repository.ProductRepository // los métodos no usados entran en pánico si se llaman

	bySKU      map[int64]*entity.Product
	byFragment map[string][]*entity.Product
	searchErr  error

	skuCalls    int
	searchCalls []repository.ProductSearch
}

func (f *fakeProductRepo) GetBySKU(sku int64) (*entity.Product, error) {
	f.skuCalls++
	p, ok := f.bySKU[sku]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) Search(filter repository.ProductSearch) ([]*entity.Product, error) {
	f.searchCalls = append(f.searchCalls, filter)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.byFragment[filter.NameFragment], nil
}

type fakeCache struct {
	store   map[string][]entry.Candidate
	getErr  error
	setErr  error
	getKeys []string
	setKeys []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]entry.Candidate{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	f.getKeys = append(f.getKeys, key)
	if f.getErr != nil {
		return false, f.getErr
	}
	v, ok := f.store[key]
	if !ok {
		return false, nil
	}
	*dest.(*[]entry.Candidate) = v
	return true, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.setKeys = append(f.setKeys, key)
	if f.setErr != nil {
		return f.setErr
	}
	f.store[key] = value.([]entry.Candidate)
	return nil
}

func producto(id string, sku int64, name string) *entity.Product {
	return &entity.Product{ID: id, SKU: sku, Name: name, Supplier: &entity.Supplier{Name: "Ferretería El Sol"}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_QuitaTildesYMayusculas(t *testing.T) {
	cases := map[string]string{
		"Café":        "cafe",
		"  ÑANDÚ  ":   "nandu",
		"tornillo":    "tornillo",
		"Pequeño Más": "pequeno mas",
	}
	for in, want := range cases {
		assert.Equal(t, want, lookup.Normalize(in), "entrada %q", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por código exacto
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup_CodigoExactoEncontrado(t *testing.T) {
	repo := &fakeProductRepo{bySKU: map[int64]*entity.Product{
		884512: producto("prod-a", 884512, "Tornillo 1/2"),
	}}
	uc := lookup.NewUseCase(repo, nil, 0, nil)

	cands, err := uc.Lookup(context.Background(), "884512", entry.LookupExactCode)

	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "prod-a", cands[0].ProductID)
	assert.Equal(t, "Ferretería El Sol", cands[0].SupplierName)
}

// Código sin coincidencia devuelve lista vacía, no error: el motor decide
// cómo avisar al operario.
func TestLookup_CodigoExactoSinCoincidencia(t *testing.T) {
	repo := &fakeProductRepo{bySKU: map[int64]*entity.Product{}}
	uc := lookup.NewUseCase(repo, nil, 0, nil)

	cands, err := uc.Lookup(context.Background(), "999999", entry.LookupExactCode)

	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestLookup_CodigoNoNumericoNoConsulta(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := lookup.NewUseCase(repo, nil, 0, nil)

	cands, err := uc.Lookup(context.Background(), "ABC12", entry.LookupExactCode)

	require.NoError(t, err)
	assert.Empty(t, cands)
	assert.Zero(t, repo.skuCalls, "un código inválido no debe tocar el repositorio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por fragmento
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup_FragmentoNormalizaLaConsulta(t *testing.T) {
	repo := &fakeProductRepo{byFragment: map[string][]*entity.Product{
		"cafe": {producto("prod-b", 1001, "Café Molido")},
	}}
	uc := lookup.NewUseCase(repo, nil, 0, nil)

	cands, err := uc.Lookup(context.Background(), "  Café ", entry.LookupNameFragment)

	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "Café Molido", cands[0].Name)
	require.Len(t, repo.searchCalls, 1)
	assert.Equal(t, "cafe", repo.searchCalls[0].NameFragment, "el repositorio recibe el fragmento normalizado")
	assert.Positive(t, repo.searchCalls[0].Limit)
}

func TestLookup_ConsultaVaciaNoConsulta(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := lookup.NewUseCase(repo, nil, 0, nil)

	cands, err := uc.Lookup(context.Background(), "   ", entry.LookupNameFragment)

	require.NoError(t, err)
	assert.Empty(t, cands)
	assert.Empty(t, repo.searchCalls)
}

func TestLookup_ErrorDelRepositorioSePropaga(t *testing.T) {
	repo := &fakeProductRepo{searchErr: errors.New("conexión rechazada")}
	uc := lookup.NewUseCase(repo, nil, 0, nil)

	_, err := uc.Lookup(context.Background(), "tornillo", entry.LookupNameFragment)

	require.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caché
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup_CacheEvitaSegundaConsulta(t *testing.T) {
	repo := &fakeProductRepo{byFragment: map[string][]*entity.Product{
		"tornillo": {producto("prod-a", 884512, "Tornillo 1/2")},
	}}
	cache := newFakeCache()
	uc := lookup.NewUseCase(repo, cache, time.Minute, nil)

	first, err := uc.Lookup(context.Background(), "tornillo", entry.LookupNameFragment)
	require.NoError(t, err)
	second, err := uc.Lookup(context.Background(), "Tornillo", entry.LookupNameFragment)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.searchCalls, 1, "la segunda consulta debe salir del caché")
	require.NotEmpty(t, cache.setKeys)
	assert.Equal(t, "lookup:name:tornillo", cache.setKeys[0])
}

// Un caché caído degrada a consultar la base: la búsqueda nunca falla por Redis.
func TestLookup_CacheCaidoDegradaALaBase(t *testing.T) {
	repo := &fakeProductRepo{byFragment: map[string][]*entity.Product{
		"tornillo": {producto("prod-a", 884512, "Tornillo 1/2")},
	}}
	cache := newFakeCache()
	cache.getErr = errors.New("redis: connection refused")
	cache.setErr = cache.getErr
	uc := lookup.NewUseCase(repo, cache, time.Minute, nil)

	cands, err := uc.Lookup(context.Background(), "tornillo", entry.LookupNameFragment)

	require.NoError(t, err)
	assert.Len(t, cands, 1)
	assert.Len(t, repo.searchCalls, 1)
}
