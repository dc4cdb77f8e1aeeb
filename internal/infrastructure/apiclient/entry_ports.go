package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jvalencia/surtido-api/internal/application/dto"
	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

var (
	_ entry.ProductLookup  = (*ProductLookup)(nil)
	_ entry.ItemWriter     = (*ItemWriter)(nil)
	_ entry.SnapshotLoader = (*SnapshotLoader)(nil)
)

// ProductLookup resuelve búsquedas de producto contra GET /api/products.
type ProductLookup struct {
	c *Client
}

// NewProductLookup construye el adaptador.
func NewProductLookup(c *Client) *ProductLookup {
	return &ProductLookup{c: c}
}

// Lookup busca candidatos: sku= para código exacto, name= para fragmento.
func (l *ProductLookup) Lookup(ctx context.Context, query string, mode entry.LookupMode) ([]entry.Candidate, error) {
	params := url.Values{}
	switch mode {
	case entry.LookupExactCode:
		params.Set("sku", query)
	default:
		params.Set("name", query)
	}
	var out dto.ProductListResponse
	if err := l.c.do(ctx, http.MethodGet, queryPath("/api/products", params), nil, &out); err != nil {
		return nil, err
	}
	cands := make([]entry.Candidate, 0, len(out.Items))
	for _, p := range out.Items {
		cands = append(cands, entry.Candidate{
			ProductID:    p.ID,
			SKU:          p.SKU,
			Name:         p.Name,
			SupplierName: p.SupplierName,
		})
	}
	return cands, nil
}

// ItemWriter persiste renglones contra la API de una lista fija.
type ItemWriter struct {
	c      *Client
	listID string
}

// NewItemWriter construye el adaptador para una lista fija.
func NewItemWriter(c *Client, listID string) *ItemWriter {
	return &ItemWriter{c: c, listID: listID}
}

// Create agrega un renglón a la lista.
func (w *ItemWriter) Create(ctx context.Context, listID, productID string, quantity int) (*entity.ListItem, error) {
	in := dto.CreateItemRequest{ProductID: productID, Quantity: quantity}
	var out dto.ItemResponse
	if err := w.c.do(ctx, http.MethodPost, "/api/lists/"+listID+"/items", in, &out); err != nil {
		return nil, err
	}
	return toListItem(out), nil
}

// Update ajusta cantidad y novedad de un renglón existente.
func (w *ItemWriter) Update(ctx context.Context, itemID string, quantity int, comment string) (*entity.ListItem, error) {
	in := dto.UpdateItemRequest{Quantity: &quantity, Comment: &comment}
	var out dto.ItemResponse
	if err := w.c.do(ctx, http.MethodPut, "/api/lists/"+w.listID+"/items/"+itemID, in, &out); err != nil {
		return nil, err
	}
	return toListItem(out), nil
}

// Delete quita un renglón.
func (w *ItemWriter) Delete(ctx context.Context, itemID string) error {
	return w.c.do(ctx, http.MethodDelete, "/api/lists/"+w.listID+"/items/"+itemID, nil, nil)
}

// SnapshotLoader recarga la lista de trabajo desde la API.
type SnapshotLoader struct {
	c      *Client
	listID string
}

// NewSnapshotLoader construye el adaptador para una lista fija.
func NewSnapshotLoader(c *Client, listID string) *SnapshotLoader {
	return &SnapshotLoader{c: c, listID: listID}
}

// Reload trae los renglones actuales con su producto embebido.
func (s *SnapshotLoader) Reload(ctx context.Context) ([]*entity.ListItem, error) {
	var out dto.ItemsResponse
	if err := s.c.do(ctx, http.MethodGet, "/api/lists/"+s.listID+"/items", nil, &out); err != nil {
		return nil, err
	}
	items := make([]*entity.ListItem, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, toListItem(it))
	}
	return items, nil
}

// toListItem reconstruye la entidad a partir de la respuesta de la API,
// incluyendo el producto y su proveedor cuando vienen embebidos.
func toListItem(it dto.ItemResponse) *entity.ListItem {
	item := &entity.ListItem{
		ID:        it.ID,
		ListID:    it.ListID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Comment:   it.Comment,
	}
	if it.Product != nil {
		item.Product = &entity.Product{
			ID:          it.Product.ID,
			SKU:         it.Product.SKU,
			Name:        it.Product.Name,
			SupplierID:  it.Product.SupplierID,
			MeasureUnit: it.Product.MeasureUnit,
			Price:       it.Product.Price,
		}
		if it.Product.SupplierName != "" {
			item.Product.Supplier = &entity.Supplier{
				ID:   it.Product.SupplierID,
				Name: it.Product.SupplierName,
			}
		}
	}
	return item
}

// Lists devuelve las listas disponibles (para elegir al arrancar el puesto).
func (c *Client) Lists(ctx context.Context) ([]dto.ListResponse, error) {
	var out dto.ListsResponse
	if err := c.do(ctx, http.MethodGet, "/api/lists", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CreateList crea una lista nueva desde el puesto.
func (c *Client) CreateList(ctx context.Context, name string) (*dto.ListResponse, error) {
	var out dto.ListResponse
	if err := c.do(ctx, http.MethodPost, "/api/lists", dto.CreateListRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
