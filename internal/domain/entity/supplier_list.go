package entity

import "time"

// SupplierList representa una lista de pedido en construcción (p. ej. el surtido
// de la semana). El nombre es editable en cualquier momento.
type SupplierList struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
