package repository

import "github.com/jvalencia/surtido-api/internal/domain/entity"

// ProductSearch filtros para la búsqueda de productos del catálogo.
// SKU y NameFragment son excluyentes: SKU != nil busca código exacto,
// NameFragment != "" busca por fragmento de nombre normalizado.
type ProductSearch struct {
	SKU          *int64
	NameFragment string // ya normalizado (minúsculas, sin tildes)
	SupplierID   string
	Limit        int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku int64) (*entity.Product, error)
	Search(filter ProductSearch) ([]*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
