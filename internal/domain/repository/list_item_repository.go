package repository

import "github.com/jvalencia/surtido-api/internal/domain/entity"

// ListItemRepository define el puerto de persistencia para ListItem (DIP).
// ListByList devuelve los renglones con Product (y su Supplier) cargados,
// porque la reconciliación y el PDF los necesitan completos.
type ListItemRepository interface {
	Create(item *entity.ListItem) error
	GetByID(id string) (*entity.ListItem, error)
	GetByListAndProduct(listID, productID string) (*entity.ListItem, error)
	ListByList(listID string) ([]*entity.ListItem, error)
	Update(item *entity.ListItem) error
	Delete(id string) error
	DeleteByList(listID string) error
}
