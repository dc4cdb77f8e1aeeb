package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

// ListItemUseCase casos de uso para los renglones de una lista de pedido.
type ListItemUseCase struct {
	items    repository.ListItemRepository
	products repository.ProductRepository
	lists    repository.SupplierListRepository
}

// NewListItemUseCase construye el caso de uso.
func NewListItemUseCase(items repository.ListItemRepository, products repository.ProductRepository, lists repository.SupplierListRepository) *ListItemUseCase {
	return &ListItemUseCase{items: items, products: products, lists: lists}
}

// Create agrega un producto a la lista. Si el producto ya tiene renglón en
// esa lista devuelve ErrDuplicate: el cliente debe actualizar el existente.
func (uc *ListItemUseCase) Create(listID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if _, err := uc.lists.GetByID(listID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing, _ := uc.items.GetByListAndProduct(listID, in.ProductID); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.ListItem{
		ID:        uuid.New().String(),
		ListID:    listID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Comment:   in.Comment,
		Product:   product,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	resp := dto.FromItem(item)
	return &resp, nil
}

// ListByList devuelve los renglones de una lista con producto y proveedor.
func (uc *ListItemUseCase) ListByList(listID string) (*dto.ItemsResponse, error) {
	if _, err := uc.lists.GetByID(listID); err != nil {
		return nil, err
	}
	items, err := uc.items.ListByList(listID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromItem(it))
	}
	return &dto.ItemsResponse{Items: out}, nil
}

// Update ajusta cantidad o novedad de un renglón. Repetir la misma cantidad
// no es error: la operación es idempotente.
func (uc *ListItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Comment != nil {
		item.Comment = *in.Comment
	}
	item.UpdatedAt = time.Now()
	if err := uc.items.Update(item); err != nil {
		return nil, err
	}
	resp := dto.FromItem(item)
	return &resp, nil
}

// Delete quita un renglón de su lista.
func (uc *ListItemUseCase) Delete(id string) error {
	return uc.items.Delete(id)
}
