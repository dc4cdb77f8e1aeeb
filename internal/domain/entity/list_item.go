package entity

import "time"

// ListItem representa un renglón producto-cantidad de una lista. Un producto
// aparece a lo sumo una vez por lista (constraint único list_id + product_id);
// cantidades repetidas se reconcilian como actualización, nunca como duplicado.
type ListItem struct {
	ID        string
	ListID    string
	ProductID string
	Quantity  int    // siempre > 0
	Comment   string // novedad opcional del operario
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}
