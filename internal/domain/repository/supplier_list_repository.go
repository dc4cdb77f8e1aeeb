package repository

import "github.com/jvalencia/surtido-api/internal/domain/entity"

// SupplierListRepository define el puerto de persistencia para SupplierList (DIP).
type SupplierListRepository interface {
	Create(list *entity.SupplierList) error
	GetByID(id string) (*entity.SupplierList, error)
	List() ([]*entity.SupplierList, error)
	Rename(id, name string) (*entity.SupplierList, error)
	Delete(id string) error
}
