package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

var _ repository.ListItemRepository = (*ListItemRepo)(nil)

const listItemSelect = `
	SELECT i.id, i.list_id, i.product_id, i.quantity, i.comment, i.created_at, i.updated_at,
	       p.id, p.sku, p.name, p.supplier_id, p.measure_unit, p.price, p.created_at, p.updated_at,
	       s.id, s.name, s.created_at, s.updated_at
	FROM list_items i
	JOIN products p ON p.id = i.product_id
	JOIN suppliers s ON s.id = p.supplier_id`

// ListItemRepo implementación del puerto ListItemRepository sobre PostgreSQL (usable con pool o tx).
type ListItemRepo struct {
	q Querier
}

// NewListItemRepository construye el adaptador de persistencia para renglones de listas.
func NewListItemRepository(q Querier) *ListItemRepo {
	return &ListItemRepo{q: q}
}

// Create persiste un renglón. El constraint único (list_id, product_id)
// respalda en base lo que el caso de uso ya valida.
func (r *ListItemRepo) Create(item *entity.ListItem) error {
	query := `
		INSERT INTO list_items (id, list_id, product_id, quantity, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ListID, item.ProductID, item.Quantity, item.Comment,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert list item: %w", err)
	}
	return nil
}

// GetByID obtiene un renglón por ID con producto y proveedor.
func (r *ListItemRepo) GetByID(id string) (*entity.ListItem, error) {
	return r.getOne(listItemSelect+` WHERE i.id = $1`, id)
}

// GetByListAndProduct obtiene el renglón de un producto en una lista, si existe.
func (r *ListItemRepo) GetByListAndProduct(listID, productID string) (*entity.ListItem, error) {
	return r.getOne(listItemSelect+` WHERE i.list_id = $1 AND i.product_id = $2`, listID, productID)
}

func (r *ListItemRepo) getOne(query string, args ...any) (*entity.ListItem, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	item, err := scanListItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get list item: %w", err)
	}
	return item, nil
}

// ListByList devuelve los renglones de una lista en orden de inserción.
func (r *ListItemRepo) ListByList(listID string) ([]*entity.ListItem, error) {
	rows, err := r.q.Query(context.Background(), listItemSelect+` WHERE i.list_id = $1 ORDER BY i.created_at ASC`, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ListItem
	for rows.Next() {
		item, err := scanListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Update ajusta cantidad y novedad de un renglón.
func (r *ListItemRepo) Update(item *entity.ListItem) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE list_items SET quantity = $2, comment = $3, updated_at = $4 WHERE id = $1`,
		item.ID, item.Quantity, item.Comment, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update list item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un renglón por ID.
func (r *ListItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM list_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete list item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByList borra todos los renglones de una lista. Borrar cero renglones
// no es error: la lista pudo estar vacía.
func (r *ListItemRepo) DeleteByList(listID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM list_items WHERE list_id = $1`, listID)
	if err != nil {
		return fmt.Errorf("delete items by list: %w", err)
	}
	return nil
}

func scanListItem(row pgx.Row) (*entity.ListItem, error) {
	var it entity.ListItem
	var p entity.Product
	var s entity.Supplier
	if err := row.Scan(
		&it.ID, &it.ListID, &it.ProductID, &it.Quantity, &it.Comment, &it.CreatedAt, &it.UpdatedAt,
		&p.ID, &p.SKU, &p.Name, &p.SupplierID, &p.MeasureUnit, &p.Price, &p.CreatedAt, &p.UpdatedAt,
		&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Supplier = &s
	it.Product = &p
	return &it, nil
}
