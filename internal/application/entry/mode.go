package entry

import "strconv"

// Mode es el modo de interpretación del campo de búsqueda. El cambio es
// siempre una acción explícita del operario, nunca automática.
type Mode int

const (
	// ModeManual interpreta los teclazos como búsqueda incremental de texto.
	ModeManual Mode = iota
	// ModeBarcode interpreta la entrada como un código alimentado por el
	// escáner, confirmado con Enter.
	ModeBarcode
)

func (m Mode) String() string {
	switch m {
	case ModeBarcode:
		return "barcode"
	default:
		return "manual"
	}
}

// ParseCode valida el buffer del escáner como código numérico.
func ParseCode(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	sku, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || sku < 0 {
		return 0, false
	}
	return sku, true
}

// lookupModeForText decide el modo de búsqueda manual: los dígitos buscan por
// código, el resto por fragmento de nombre.
func lookupModeForText(text string) LookupMode {
	if _, ok := ParseCode(text); ok {
		return LookupExactCode
	}
	return LookupNameFragment
}
