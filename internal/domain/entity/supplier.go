package entity

import "time"

// Supplier representa un proveedor del catálogo. Cada producto pertenece a uno.
type Supplier struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
