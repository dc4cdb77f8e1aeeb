package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/usecase"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

func buildProductUC(products ...*entity.Product) *usecase.ProductUseCase {
	suppliers := newMemSupplierRepo(&entity.Supplier{ID: "sup-1", Name: "Ferretería El Sol"})
	return usecase.NewProductUseCase(newMemProductRepo(products...), suppliers)
}

func TestProduct_Crear(t *testing.T) {
	uc := buildProductUC()

	resp, err := uc.Create(dto.CreateProductRequest{
		SKU:        884512,
		Name:       "Tornillo 1/2",
		SupplierID: "sup-1",
		Price:      decimal.NewFromInt(350),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ferretería El Sol", resp.SupplierName)
}

// El SKU es el código de barras físico: no puede repetirse en el catálogo.
func TestProduct_SKURepetidoEsDuplicado(t *testing.T) {
	uc := buildProductUC(producto("prod-a", 884512, "Tornillo 1/2", "sup-1"))

	_, err := uc.Create(dto.CreateProductRequest{SKU: 884512, Name: "Otro tornillo", SupplierID: "sup-1"})

	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_CrearConProveedorInexistente(t *testing.T) {
	uc := buildProductUC()

	_, err := uc.Create(dto.CreateProductRequest{SKU: 1, Name: "Suelto", SupplierID: "sup-fantasma"})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_BusquedaPorSKUGanaSobreNombre(t *testing.T) {
	uc := buildProductUC(
		producto("prod-a", 884512, "Tornillo 1/2", "sup-1"),
		producto("prod-b", 551200, "Tornillo 1/4", "sup-1"),
	)

	resp, err := uc.Search(dto.ProductSearchRequest{SKU: "884512", Name: "tornillo"})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "prod-a", resp.Items[0].ID)
}

func TestProduct_BusquedaConSKUInvalido(t *testing.T) {
	uc := buildProductUC()

	_, err := uc.Search(dto.ProductSearchRequest{SKU: "-5"})

	require.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestProduct_ActualizarNoTocaSKU(t *testing.T) {
	uc := buildProductUC(producto("prod-a", 884512, "Tornillo 1/2", "sup-1"))

	name := "Tornillo galvanizado 1/2"
	resp, err := uc.Update("prod-a", dto.UpdateProductRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Tornillo galvanizado 1/2", resp.Name)
	assert.Equal(t, int64(884512), resp.SKU)
}
