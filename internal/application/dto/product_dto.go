package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU         int64           `json:"sku" validate:"required,min=1"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SupplierID  string          `json:"supplier_id" validate:"required,uuid4"`
	MeasureUnit string          `json:"measure_unit" validate:"omitempty,max=30"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto. El SKU no se toca:
// es el código físico impreso en el empaque.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SupplierID  *string          `json:"supplier_id" validate:"omitempty,uuid4"`
	MeasureUnit *string          `json:"measure_unit" validate:"omitempty,max=30"`
	Price       *decimal.Decimal `json:"price"`
}

// ProductSearchRequest filtros del endpoint de búsqueda de productos.
// sku y name son excluyentes; sku gana si vienen ambos.
type ProductSearchRequest struct {
	SKU        string `query:"sku" validate:"omitempty,numeric"`
	Name       string `query:"name" validate:"omitempty,max=200"`
	SupplierID string `query:"supplier_id" validate:"omitempty,uuid4"`
	Limit      int    `query:"limit" validate:"min=0,max=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          int64           `json:"sku"`
	Name         string          `json:"name"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name,omitempty"`
	MeasureUnit  string          `json:"measure_unit"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// FromProduct mapea la entidad a su respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	r := ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		SupplierID:  p.SupplierID,
		MeasureUnit: p.MeasureUnit,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Supplier != nil {
		r.SupplierName = p.Supplier.Name
	}
	return r
}
