package dto

import (
	"time"

	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// CreateListRequest entrada para crear una lista de pedido.
type CreateListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// RenameListRequest entrada para renombrar una lista.
type RenameListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ListResponse salida de una lista de pedido.
type ListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListsResponse listado paginado de listas.
type ListsResponse struct {
	Items []ListResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// FromList mapea la entidad a su respuesta.
func FromList(l *entity.SupplierList) ListResponse {
	return ListResponse{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt, UpdatedAt: l.UpdatedAt}
}
