package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *memProductRepo) GetBySKU(sku int64) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memProductRepo) Search(filter repository.ProductSearch) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if filter.SKU != nil && p.SKU != *filter.SKU {
			continue
		}
		if filter.SupplierID != "" && p.SupplierID != filter.SupplierID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type memSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newMemSupplierRepo(suppliers ...*entity.Supplier) *memSupplierRepo {
	r := &memSupplierRepo{byID: map[string]*entity.Supplier{}}
	for _, s := range suppliers {
		r.byID[s.ID] = s
	}
	return r
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	r.byID[s.ID] = s
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *memSupplierRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type memListRepo struct {
	byID    map[string]*entity.SupplierList
	deletes []string
}

func newMemListRepo(lists ...*entity.SupplierList) *memListRepo {
	r := &memListRepo{byID: map[string]*entity.SupplierList{}}
	for _, l := range lists {
		r.byID[l.ID] = l
	}
	return r
}

func (r *memListRepo) Create(l *entity.SupplierList) error {
	r.byID[l.ID] = l
	return nil
}

func (r *memListRepo) GetByID(id string) (*entity.SupplierList, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (r *memListRepo) List() ([]*entity.SupplierList, error) {
	var out []*entity.SupplierList
	for _, l := range r.byID {
		out = append(out, l)
	}
	return out, nil
}

func (r *memListRepo) Rename(id, name string) (*entity.SupplierList, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l.Name = name
	l.UpdatedAt = time.Now()
	return l, nil
}

func (r *memListRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	r.deletes = append(r.deletes, id)
	return nil
}

type memItemRepo struct {
	byID        map[string]*entity.ListItem
	deleteLists []string
}

func newMemItemRepo(items ...*entity.ListItem) *memItemRepo {
	r := &memItemRepo{byID: map[string]*entity.ListItem{}}
	for _, it := range items {
		r.byID[it.ID] = it
	}
	return r
}

func (r *memItemRepo) Create(it *entity.ListItem) error {
	for _, existing := range r.byID {
		if existing.ListID == it.ListID && existing.ProductID == it.ProductID {
			return domain.ErrDuplicate
		}
	}
	r.byID[it.ID] = it
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.ListItem, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return it, nil
}

func (r *memItemRepo) GetByListAndProduct(listID, productID string) (*entity.ListItem, error) {
	for _, it := range r.byID {
		if it.ListID == listID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memItemRepo) ListByList(listID string) ([]*entity.ListItem, error) {
	var out []*entity.ListItem
	for _, it := range r.byID {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(it *entity.ListItem) error {
	if _, ok := r.byID[it.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[it.ID] = it
	return nil
}

func (r *memItemRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memItemRepo) DeleteByList(listID string) error {
	for id, it := range r.byID {
		if it.ListID == listID {
			delete(r.byID, id)
		}
	}
	r.deleteLists = append(r.deleteLists, listID)
	return nil
}

// fakeTxRunner ejecuta fn con los mismos repositorios en memoria; registra
// cuántas veces se abrió transacción y puede forzar un fallo.
type fakeTxRunner struct {
	lists *memListRepo
	items *memItemRepo
	runs  int
	err   error
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.SupplierListRepository, repository.ListItemRepository) error) error {
	f.runs++
	if f.err != nil {
		return f.err
	}
	return fn(f.lists, f.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de datos
// ──────────────────────────────────────────────────────────────────────────────

func producto(id string, sku int64, name, supplierID string) *entity.Product {
	return &entity.Product{
		ID:         id,
		SKU:        sku,
		Name:       name,
		SupplierID: supplierID,
		Price:      decimal.NewFromInt(1200),
	}
}

func renglon(id, listID, productID string, qty int) *entity.ListItem {
	return &entity.ListItem{ID: id, ListID: listID, ProductID: productID, Quantity: qty}
}
