package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvalencia/surtido-api/internal/application/export"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles
// ──────────────────────────────────────────────────────────────────────────────

type fakeGenerator struct {
	doc export.Document
}

func (f *fakeGenerator) Generate(doc export.Document) ([]byte, error) {
	f.doc = doc
	return []byte("%PDF-1.7"), nil
}

type stubListRepo struct{ list *entity.SupplierList }

func (s *stubListRepo) Create(*entity.SupplierList) error { return nil }
func (s *stubListRepo) GetByID(id string) (*entity.SupplierList, error) {
	if s.list == nil || s.list.ID != id {
		return nil, domain.ErrNotFound
	}
	return s.list, nil
}
func (s *stubListRepo) List() ([]*entity.SupplierList, error) { return nil, nil }
func (s *stubListRepo) Rename(string, string) (*entity.SupplierList, error) {
	return nil, domain.ErrNotFound
}
func (s *stubListRepo) Delete(string) error { return nil }

type stubItemRepo struct{ items []*entity.ListItem }

func (s *stubItemRepo) Create(*entity.ListItem) error            { return nil }
func (s *stubItemRepo) GetByID(string) (*entity.ListItem, error) { return nil, domain.ErrNotFound }
func (s *stubItemRepo) GetByListAndProduct(string, string) (*entity.ListItem, error) {
	return nil, domain.ErrNotFound
}
func (s *stubItemRepo) ListByList(string) ([]*entity.ListItem, error) { return s.items, nil }
func (s *stubItemRepo) Update(*entity.ListItem) error                 { return nil }
func (s *stubItemRepo) Delete(string) error                           { return nil }
func (s *stubItemRepo) DeleteByList(string) error                     { return nil }

func renglon(name string, sku int64, qty int, supplier string) *entity.ListItem {
	return &entity.ListItem{
		Quantity: qty,
		Product: &entity.Product{
			SKU:      sku,
			Name:     name,
			Supplier: &entity.Supplier{Name: supplier},
		},
	}
}

func buildExportUC(items ...*entity.ListItem) (*export.UseCase, *fakeGenerator) {
	gen := &fakeGenerator{}
	lists := &stubListRepo{list: &entity.SupplierList{ID: "list-1", Name: "Surtido semana 35"}}
	return export.NewUseCase(lists, &stubItemRepo{items: items}, gen), gen
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del documento
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_ModoTodoOrdenaPorNombreSinTildes(t *testing.T) {
	uc, gen := buildExportUC(
		renglon("Ñandú de juguete", 3, 1, "Jugueterías Bogotá"),
		renglon("Azúcar morena", 1, 2, "Distribuidora Caribe"),
		renglon("Árbol navideño", 2, 1, "Jugueterías Bogotá"),
	)

	pdf, err := uc.Export("list-1", export.Options{Mode: export.ModeAll, Sort: export.SortName})

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.Len(t, gen.doc.Sections, 1, "modo 'all' es una sola tabla")
	rows := gen.doc.Sections[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "Árbol navideño", rows[0].Name, "la Á ordena como A")
	assert.Equal(t, "Azúcar morena", rows[1].Name)
	assert.Equal(t, "Ñandú de juguete", rows[2].Name, "la Ñ ordena como N")
	assert.Equal(t, "Surtido semana 35", gen.doc.ListName)
}

func TestExport_ModoProveedoresAgrupaEnSecciones(t *testing.T) {
	uc, gen := buildExportUC(
		renglon("Tornillo 1/2", 10, 5, "Ferretería El Sol"),
		renglon("Azúcar morena", 20, 2, "Distribuidora Caribe"),
		renglon("Puntilla 2\"", 30, 1, "Ferretería El Sol"),
	)

	_, err := uc.Export("list-1", export.Options{Mode: export.ModeSuppliers, Sort: export.SortName})

	require.NoError(t, err)
	require.Len(t, gen.doc.Sections, 2)
	assert.Equal(t, "Distribuidora Caribe", gen.doc.Sections[0].Title)
	assert.Equal(t, "Ferretería El Sol", gen.doc.Sections[1].Title)
	assert.Len(t, gen.doc.Sections[1].Rows, 2)
	assert.Equal(t, "Puntilla 2\"", gen.doc.Sections[1].Rows[0].Name)
}

func TestExport_OrdenPorSKU(t *testing.T) {
	uc, gen := buildExportUC(
		renglon("B", 300, 1, "X"),
		renglon("A", 100, 1, "X"),
		renglon("C", 200, 1, "X"),
	)

	_, err := uc.Export("list-1", export.Options{Sort: export.SortSKU})

	require.NoError(t, err)
	rows := gen.doc.Sections[0].Rows
	assert.Equal(t, []int64{100, 200, 300}, []int64{rows[0].SKU, rows[1].SKU, rows[2].SKU})
}

func TestExport_OpcionesPorDefecto(t *testing.T) {
	uc, gen := buildExportUC(renglon("Tornillo", 1, 1, "X"))

	_, err := uc.Export("list-1", export.Options{})

	require.NoError(t, err)
	assert.Len(t, gen.doc.Sections, 1)
	assert.False(t, gen.doc.ShowSKU, "el SKU se imprime solo si se pide")
}

func TestExport_ModoInvalido(t *testing.T) {
	uc, _ := buildExportUC()

	_, err := uc.Export("list-1", export.Options{Mode: "zigzag"})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La lista vacía también se exporta: encabezado sin renglones.
func TestExport_ListaVacia(t *testing.T) {
	uc, gen := buildExportUC()

	pdf, err := uc.Export("list-1", export.Options{})

	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.Len(t, gen.doc.Sections, 1)
	assert.Empty(t, gen.doc.Sections[0].Rows)
}

func TestExport_ListaInexistente(t *testing.T) {
	uc, _ := buildExportUC()

	_, err := uc.Export("list-fantasma", export.Options{})

	require.ErrorIs(t, err, domain.ErrNotFound)
}
