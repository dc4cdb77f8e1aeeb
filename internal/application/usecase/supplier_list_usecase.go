package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/ports"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

// SupplierListUseCase casos de uso para las listas de pedido.
type SupplierListUseCase struct {
	lists repository.SupplierListRepository
	items repository.ListItemRepository
	tx    ports.TxRunner
}

// NewSupplierListUseCase construye el caso de uso. tx puede ser nil en pruebas;
// en ese caso Delete borra sin transacción.
func NewSupplierListUseCase(lists repository.SupplierListRepository, items repository.ListItemRepository, tx ports.TxRunner) *SupplierListUseCase {
	return &SupplierListUseCase{lists: lists, items: items, tx: tx}
}

// Create crea una lista vacía.
func (uc *SupplierListUseCase) Create(in dto.CreateListRequest) (*dto.ListResponse, error) {
	now := time.Now()
	list := &entity.SupplierList{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.lists.Create(list); err != nil {
		return nil, err
	}
	resp := dto.FromList(list)
	return &resp, nil
}

// GetByID obtiene una lista por ID.
func (uc *SupplierListUseCase) GetByID(id string) (*dto.ListResponse, error) {
	list, err := uc.lists.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromList(list)
	return &resp, nil
}

// List devuelve todas las listas, más reciente primero.
func (uc *SupplierListUseCase) List() (*dto.ListsResponse, error) {
	lists, err := uc.lists.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListResponse, 0, len(lists))
	for _, l := range lists {
		items = append(items, dto.FromList(l))
	}
	return &dto.ListsResponse{Items: items, Page: dto.PageResponse{Total: len(items)}}, nil
}

// Rename cambia el nombre de una lista.
func (uc *SupplierListUseCase) Rename(id string, in dto.RenameListRequest) (*dto.ListResponse, error) {
	list, err := uc.lists.Rename(id, in.Name)
	if err != nil {
		return nil, err
	}
	resp := dto.FromList(list)
	return &resp, nil
}

// Delete borra la lista junto con sus renglones, en una sola transacción:
// nunca quedan renglones huérfanos ni una lista a medio borrar.
func (uc *SupplierListUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.lists.GetByID(id); err != nil {
		return err
	}
	if uc.tx == nil {
		if err := uc.items.DeleteByList(id); err != nil {
			return err
		}
		return uc.lists.Delete(id)
	}
	return uc.tx.Run(ctx, func(lists repository.SupplierListRepository, items repository.ListItemRepository) error {
		if err := items.DeleteByList(id); err != nil {
			return err
		}
		return lists.Delete(id)
	})
}
