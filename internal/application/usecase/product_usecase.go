package usecase

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y de búsqueda para el catálogo de productos.
type ProductUseCase struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, suppliers repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{products: products, suppliers: suppliers}
}

// Create crea un producto. El SKU debe ser único en todo el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if existing, _ := uc.products.GetBySKU(in.SKU); existing != nil {
		return nil, domain.ErrDuplicate
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		SupplierID:  in.SupplierID,
		MeasureUnit: in.MeasureUnit,
		Price:       in.Price,
		Supplier:    supplier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// Search busca productos por SKU exacto o fragmento de nombre. Si vienen
// ambos filtros, el SKU gana: es la consulta del escáner.
func (uc *ProductUseCase) Search(in dto.ProductSearchRequest) (*dto.ProductListResponse, error) {
	filter := repository.ProductSearch{SupplierID: in.SupplierID, Limit: in.Limit}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if in.SKU != "" {
		sku, err := parseSKU(in.SKU)
		if err != nil {
			return nil, err
		}
		filter.SKU = &sku
	} else if in.Name != "" {
		filter.NameFragment = lookup.Normalize(in.Name)
	}
	products, err := uc.products.Search(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Total: len(items)},
	}, nil
}

// Update actualiza un producto. El SKU no se modifica.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SupplierID != nil {
		supplier, err := uc.suppliers.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		product.SupplierID = *in.SupplierID
		product.Supplier = supplier
	}
	if in.MeasureUnit != nil {
		product.MeasureUnit = *in.MeasureUnit
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	resp := dto.FromProduct(product)
	return &resp, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.products.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.products.Delete(id)
}

func parseSKU(raw string) (int64, error) {
	sku, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || sku <= 0 {
		return 0, domain.ErrInvalidCode
	}
	return sku, nil
}
