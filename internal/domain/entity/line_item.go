package entity

import "github.com/jhoicas/Oficina-api/internal/domain/money"

// ItemKind distingue productos de servicios.
type ItemKind string

const (
	KindProduct ItemKind = "product"
	KindService ItemKind = "service"
)

// LineItem es una línea de carrito. Name y UnitPrice son copias tomadas al
// agregar; cambios posteriores en el catálogo no las afectan.
type LineItem struct {
	LocalID   string      `json:"id"`
	SourceID  *int64      `json:"originalId,omitempty"`
	Name      string      `json:"name"`
	UnitPrice money.Money `json:"price"`
	Quantity  int         `json:"quantity"`
	Kind      ItemKind    `json:"type"`
}

// Subtotal devuelve precio unitario × cantidad.
func (li LineItem) Subtotal() money.Money {
	return li.UnitPrice.Mul(li.Quantity)
}
