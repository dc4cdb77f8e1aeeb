// Package entry implementa el motor de captura de renglones: resuelve el
// producto que el operario escanea o busca, lo reconcilia contra la lista de
// trabajo (crear vs actualizar), enruta el foco por teclado y garantiza un
// solo envío en vuelo. No conoce UI ni transporte; todo colaborador externo
// entra por los puertos de este archivo.
package entry

import (
	"context"
	"fmt"

	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// LookupMode distingue la búsqueda por código exacto (escáner) de la búsqueda
// incremental por fragmento de nombre.
type LookupMode int

const (
	LookupNameFragment LookupMode = iota
	LookupExactCode
)

// Candidate es un producto candidato devuelto por la búsqueda, con los campos
// que el operario ve y por los que puede filtrar.
type Candidate struct {
	ProductID    string
	SKU          int64
	Name         string
	SupplierName string
}

// Label arma la etiqueta de despliegue: código, proveedor y nombre.
func (c Candidate) Label() string {
	if c.SupplierName == "" {
		return fmt.Sprintf("%d  %s", c.SKU, c.Name)
	}
	return fmt.Sprintf("%d · %s  %s", c.SKU, c.SupplierName, c.Name)
}

// SearchFields devuelve los campos consultables del candidato.
func (c Candidate) SearchFields() []string {
	return []string{fmt.Sprintf("%d", c.SKU), c.Name, c.SupplierName}
}

// ProductLookup busca productos del catálogo. Debe tolerar llamadas rápidas y
// repetidas; un fallo se reporta como error y el motor lo degrada a lista vacía.
type ProductLookup interface {
	Lookup(ctx context.Context, query string, mode LookupMode) ([]Candidate, error)
}

// ItemWriter persiste renglones de la lista. Update debe ser seguro de repetir
// con el mismo payload (reintento tras timeout).
type ItemWriter interface {
	Create(ctx context.Context, listID, productID string, quantity int) (*entity.ListItem, error)
	Update(ctx context.Context, itemID string, quantity int, comment string) (*entity.ListItem, error)
	Delete(ctx context.Context, itemID string) error
}

// SnapshotLoader recarga la lista de trabajo completa. El motor lo invoca tras
// cada envío exitoso para que la siguiente reconciliación vea estado fresco.
type SnapshotLoader interface {
	Reload(ctx context.Context) ([]*entity.ListItem, error)
}

// Notifier recibe notificaciones al operario. Fire and forget.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// FocusDriver materializa el foco lógico del motor en la UI concreta.
type FocusDriver interface {
	Focus(target FocusTarget)
}
