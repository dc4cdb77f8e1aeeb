package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

var _ repository.SupplierListRepository = (*SupplierListRepo)(nil)

// SupplierListRepo implementación del puerto SupplierListRepository sobre PostgreSQL (usable con pool o tx).
type SupplierListRepo struct {
	q Querier
}

// NewSupplierListRepository construye el adaptador de persistencia para listas de pedido.
func NewSupplierListRepository(q Querier) *SupplierListRepo {
	return &SupplierListRepo{q: q}
}

// Create persiste una lista.
func (r *SupplierListRepo) Create(list *entity.SupplierList) error {
	query := `
		INSERT INTO supplier_lists (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		list.ID, list.Name, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier list: %w", err)
	}
	return nil
}

// GetByID obtiene una lista por ID.
func (r *SupplierListRepo) GetByID(id string) (*entity.SupplierList, error) {
	query := `SELECT id, name, created_at, updated_at FROM supplier_lists WHERE id = $1`
	var l entity.SupplierList
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get supplier list: %w", err)
	}
	return &l, nil
}

// List devuelve todas las listas, más recientes primero.
func (r *SupplierListRepo) List() ([]*entity.SupplierList, error) {
	query := `SELECT id, name, created_at, updated_at FROM supplier_lists ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list supplier lists: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierList
	for rows.Next() {
		var l entity.SupplierList
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier list: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Rename cambia el nombre y devuelve la lista ya actualizada.
func (r *SupplierListRepo) Rename(id, name string) (*entity.SupplierList, error) {
	query := `
		UPDATE supplier_lists SET name = $2, updated_at = $3
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`
	var l entity.SupplierList
	err := r.q.QueryRow(context.Background(), query, id, name, time.Now()).Scan(
		&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("rename supplier list: %w", err)
	}
	return &l, nil
}

// Delete elimina una lista por ID. Los renglones se borran aparte (ver TxRunner).
func (r *SupplierListRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM supplier_lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier list: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
