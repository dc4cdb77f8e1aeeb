package entry

// FocusTarget es uno de los tres destinos de foco del flujo de captura.
type FocusTarget int

const (
	FocusSearch FocusTarget = iota
	FocusQuantity
	FocusSubmit
)

func (t FocusTarget) String() string {
	switch t {
	case FocusQuantity:
		return "quantity"
	case FocusSubmit:
		return "submit"
	default:
		return "search"
	}
}

// Key es una tecla semántica. El motor se maneja con identidades de tecla, no
// con key codes crudos; el mapeo desde el dispositivo es asunto de la UI.
type Key int

const (
	KeyEnter Key = iota
	KeyArrowLeft
	KeyArrowRight
)

// nextFocus aplica la tabla de transición de flechas:
//
//	Search ──→ Quantity ──→ Submit
//	        ←──          ←──
//
// Devuelve false si la tecla no mueve el foco desde el destino actual.
func nextFocus(cur FocusTarget, k Key) (FocusTarget, bool) {
	switch {
	case cur == FocusSearch && k == KeyArrowRight:
		return FocusQuantity, true
	case cur == FocusQuantity && k == KeyArrowLeft:
		return FocusSearch, true
	case cur == FocusQuantity && k == KeyArrowRight:
		return FocusSubmit, true
	case cur == FocusSubmit && k == KeyArrowLeft:
		return FocusQuantity, true
	}
	return cur, false
}
