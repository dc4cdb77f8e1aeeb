package dto

import (
	"time"

	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// CreateItemRequest entrada para agregar un renglón a una lista.
type CreateItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Comment   string `json:"comment" validate:"omitempty,max=500"`
}

// UpdateItemRequest entrada para ajustar cantidad o novedad de un renglón.
type UpdateItemRequest struct {
	Quantity *int    `json:"quantity" validate:"omitempty,min=1"`
	Comment  *string `json:"comment" validate:"omitempty,max=500"`
}

// ItemResponse salida de un renglón con su producto embebido.
type ItemResponse struct {
	ID        string           `json:"id"`
	ListID    string           `json:"list_id"`
	Quantity  int              `json:"quantity"`
	Comment   string           `json:"comment,omitempty"`
	Product   *ProductResponse `json:"product,omitempty"`
	ProductID string           `json:"product_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ItemsResponse renglones de una lista. No se pagina: una lista de surtido
// son decenas de renglones, no miles.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// FromItem mapea la entidad a su respuesta.
func FromItem(it *entity.ListItem) ItemResponse {
	r := ItemResponse{
		ID:        it.ID,
		ListID:    it.ListID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Comment:   it.Comment,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
	if it.Product != nil {
		p := FromProduct(it.Product)
		r.Product = &p
	}
	return r
}
