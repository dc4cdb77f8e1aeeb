package dto

import (
	"time"

	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateSupplierRequest entrada para renombrar un proveedor.
type UpdateSupplierRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// FromSupplier mapea la entidad a su respuesta.
func FromSupplier(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}
