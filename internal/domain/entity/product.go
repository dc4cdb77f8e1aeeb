package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El SKU es el código de barras
// numérico único que lee el escáner; Supplier se carga cuando la consulta hace join.
type Product struct {
	ID          string
	SKU         int64 // código de barras, único
	Name        string
	SupplierID  string
	MeasureUnit string
	Price       decimal.Decimal // precio de referencia del proveedor
	Supplier    *Supplier
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
