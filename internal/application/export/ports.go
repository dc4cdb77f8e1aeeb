// Package export arma el documento imprimible de una lista de pedido:
// agrupa, ordena y delega el render a un generador (maroto en producción).
package export

import "time"

// Mode cómo se agrupan los renglones en el documento.
type Mode string

// Sort criterio de orden dentro de cada grupo.
type Sort string

const (
	// ModeAll una sola tabla con todos los renglones.
	ModeAll Mode = "all"
	// ModeSuppliers una sección por proveedor.
	ModeSuppliers Mode = "suppliers"

	// SortName orden alfabético por nombre de producto (sin tildes).
	SortName Sort = "name"
	// SortSuppliers orden por proveedor y luego por nombre.
	SortSuppliers Sort = "suppliers"
	// SortSKU orden numérico por código de barras.
	SortSKU Sort = "sku"
)

// Options opciones de exportación que elige el usuario.
type Options struct {
	Mode    Mode
	Sort    Sort
	ShowSKU bool
}

// Row un renglón ya resuelto para imprimir.
type Row struct {
	SKU          int64
	Name         string
	MeasureUnit  string
	Quantity     int
	Comment      string
	SupplierName string
}

// Section un bloque del documento: título opcional más sus renglones.
type Section struct {
	Title string
	Rows  []Row
}

// Document la lista lista para render.
type Document struct {
	ListName    string
	GeneratedAt time.Time
	ShowSKU     bool
	Sections    []Section
}

// Generator renderiza el documento a bytes (PDF).
type Generator interface {
	Generate(doc Document) ([]byte, error)
}
