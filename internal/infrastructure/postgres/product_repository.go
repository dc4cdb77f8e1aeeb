package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jvalencia/surtido-api/internal/application/lookup"
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Columnas de products con su proveedor (join a suppliers).
var productColumns = []string{
	"p.id", "p.sku", "p.name", "p.supplier_id", "p.measure_unit", "p.price",
	"p.created_at", "p.updated_at",
	"s.id", "s.name", "s.created_at", "s.updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto. name_normalized guarda el nombre en minúsculas
// y sin tildes para la búsqueda por fragmento.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, name_normalized, supplier_id, measure_unit, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, lookup.Normalize(product.Name),
		product.SupplierID, product.MeasureUnit, product.Price,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con su proveedor.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(squirrel.Eq{"p.id": id})
}

// GetBySKU obtiene un producto por código de barras.
func (r *ProductRepo) GetBySKU(sku int64) (*entity.Product, error) {
	return r.getOne(squirrel.Eq{"p.sku": sku})
}

func (r *ProductRepo) getOne(where squirrel.Eq) (*entity.Product, error) {
	sql, args, err := selectProducts().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	row := r.q.QueryRow(context.Background(), sql, args...)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Search busca productos según el filtro: SKU exacto, fragmento del nombre
// normalizado, o proveedor. Los filtros se arman dinámicamente.
func (r *ProductRepo) Search(filter repository.ProductSearch) ([]*entity.Product, error) {
	qb := selectProducts()
	if filter.SKU != nil {
		qb = qb.Where(squirrel.Eq{"p.sku": *filter.SKU})
	}
	if filter.NameFragment != "" {
		qb = qb.Where("p.name_normalized LIKE ?", "%"+filter.NameFragment+"%")
	}
	if filter.SupplierID != "" {
		qb = qb.Where(squirrel.Eq{"p.supplier_id": filter.SupplierID})
	}
	qb = qb.OrderBy("p.name_normalized ASC")
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Update actualiza un producto. El SKU no se modifica.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, name_normalized = $3, supplier_id = $4, measure_unit = $5, price = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, lookup.Normalize(product.Name),
		product.SupplierID, product.MeasureUnit, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	sql, args, err := selectProducts().
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func selectProducts() squirrel.SelectBuilder {
	return squirrel.Select(productColumns...).
		From("products p").
		Join("suppliers s ON s.id = p.supplier_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var s entity.Supplier
	if err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.SupplierID, &p.MeasureUnit, &p.Price,
		&p.CreatedAt, &p.UpdatedAt,
		&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Supplier = &s
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
