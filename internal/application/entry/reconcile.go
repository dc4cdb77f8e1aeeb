package entry

import (
	"github.com/jvalencia/surtido-api/internal/domain"
	"github.com/jvalencia/surtido-api/internal/domain/entity"
)

// IntentKind clasifica el intento: crear renglón nuevo o actualizar uno existente.
type IntentKind int

const (
	IntentCreate IntentKind = iota
	IntentUpdate
)

// Intent es el resultado de reconciliar una selección contra la lista de
// trabajo. Se calcula en fresco cada vez y nunca se persiste; la escritura
// real la hace la compuerta de envío, exactamente una vez por intento.
type Intent struct {
	Kind      IntentKind
	ProductID string
	ItemID    string // solo Update
	Quantity  int    // cantidad por defecto del intento
	Comment   string // se conserva tal cual en Update
}

// Reconcile clasifica la selección contra la lista de trabajo sin efectos:
// si el producto ya tiene renglón el intento es Update con el id y la cantidad
// existentes (el operario edita, no pisa a ciegas); si no, Create con cantidad 1.
// working == nil significa "lista aún no cargada", distinto de lista vacía:
// en ese estado no se puede asumir "no encontrado" y el envío queda bloqueado
// para no crear un renglón duplicado por carrera con la carga inicial.
func Reconcile(sel Candidate, working []*entity.ListItem) (Intent, error) {
	if working == nil {
		return Intent{}, domain.ErrListNotLoaded
	}
	for _, item := range working {
		if item != nil && item.ProductID == sel.ProductID {
			return Intent{
				Kind:      IntentUpdate,
				ProductID: sel.ProductID,
				ItemID:    item.ID,
				Quantity:  item.Quantity,
				Comment:   item.Comment,
			}, nil
		}
	}
	return Intent{Kind: IntentCreate, ProductID: sel.ProductID, Quantity: 1}, nil
}

// findByProduct busca el renglón del producto en la lista de trabajo.
// Recorrido lineal: las listas son de decenas de renglones, no hace falta índice.
func findByProduct(working []*entity.ListItem, productID string) *entity.ListItem {
	for _, item := range working {
		if item != nil && item.ProductID == productID {
			return item
		}
	}
	return nil
}
