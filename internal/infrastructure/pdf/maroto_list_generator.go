// Package pdf genera el documento imprimible de una lista de pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la lista  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  [Sección por proveedor, si aplica]                          │
//	│  TABLA: [SKU] | Cant | Producto | Unidad | Proveedor | Nota  │
//	│  ...                                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jvalencia/surtido-api/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.Generator = (*MarotoListGenerator)(nil)

// MarotoListGenerator implementa export.Generator usando Maroto v2.
type MarotoListGenerator struct{}

// NewMarotoListGenerator construye el generador.
func NewMarotoListGenerator() *MarotoListGenerator { return &MarotoListGenerator{} }

// Generate genera el PDF de la lista y devuelve sus bytes.
func (g *MarotoListGenerator) Generate(doc export.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.ListName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, section := range doc.Sections {
		if section.Title != "" {
			m.AddRows(sectionTitleRow(section.Title))
		}
		m.AddRows(tableHeaderRow(doc.ShowSKU))
		for _, r := range tableRows(section.Rows, doc.ShowSKU) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la lista (izq) y fecha de generación (der).
func headerRow(doc export.Document) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(doc.ListName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Lista de pedido", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// sectionTitleRow: encabezado de un grupo por proveedor.
func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableHeaderRow: cabecera de la tabla. La columna SKU es opcional.
func tableHeaderRow(showSKU bool) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	if showSKU {
		return row.New(8).Add(
			h("Código", 2, align.Left),
			h("Cant.", 1, align.Center),
			h("Producto", 4, align.Left),
			h("Unidad", 1, align.Center),
			h("Proveedor", 2, align.Left),
			h("Novedad", 2, align.Left),
		)
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Unidad", 1, align.Center),
		h("Proveedor", 3, align.Left),
		h("Novedad", 2, align.Left),
	)
}

// tableRows: una fila por renglón de la sección.
func tableRows(rows []export.Row, showSKU bool) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		qty := strconv.Itoa(r.Quantity)
		if showSKU {
			result = append(result, row.New(7).Add(
				cell(strconv.FormatInt(r.SKU, 10), 2, align.Left),
				cell(qty, 1, align.Center),
				cell(r.Name, 4, align.Left),
				cell(r.MeasureUnit, 1, align.Center),
				cell(r.SupplierName, 2, align.Left),
				cell(r.Comment, 2, align.Left),
			))
			continue
		}
		result = append(result, row.New(7).Add(
			cell(qty, 1, align.Center),
			cell(r.Name, 5, align.Left),
			cell(r.MeasureUnit, 1, align.Center),
			cell(r.SupplierName, 3, align.Left),
			cell(r.Comment, 2, align.Left),
		))
	}
	return result
}
