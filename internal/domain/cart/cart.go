// Package cart mantiene la lista ordenada de líneas (productos o servicios)
// de una orden o venta y calcula su subtotal.
//
// Todas las mutaciones son síncronas: al retornar, Subtotal ya refleja el cambio.
package cart

import (
	"github.com/google/uuid"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

// Source es el ítem del catálogo desde el que se agrega una línea.
type Source struct {
	ID        *int64
	Name      string
	PriceText string
}

// ProductSource arma un Source desde un producto del catálogo.
func ProductSource(p *entity.Product) Source {
	id := p.ID
	return Source{ID: &id, Name: p.Name, PriceText: p.Price}
}

// ServiceSource arma un Source desde un servicio del catálogo.
func ServiceSource(s *entity.Service) Source {
	id := s.ID
	return Source{ID: &id, Name: s.Name, PriceText: s.Price}
}

// Cart es una lista ordenada de líneas. El valor cero es un carrito vacío.
type Cart struct {
	items []entity.LineItem
}

// FromItems reconstruye un carrito desde líneas persistidas. Cantidades
// menores a 1 se normalizan a 1.
func FromItems(items []entity.LineItem) *Cart {
	c := &Cart{items: make([]entity.LineItem, 0, len(items))}
	for _, it := range items {
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if it.LocalID == "" {
			it.LocalID = uuid.NewString()
		}
		c.items = append(c.items, it)
	}
	return c
}

// AddItem toma una copia del nombre y del precio del origen y agrega una
// línea nueva con cantidad 1.
func (c *Cart) AddItem(src Source, kind entity.ItemKind) entity.LineItem {
	var sourceID *int64
	if src.ID != nil {
		id := *src.ID
		sourceID = &id
	}
	item := entity.LineItem{
		LocalID:   uuid.NewString(),
		SourceID:  sourceID,
		Name:      src.Name,
		UnitPrice: money.Parse(src.PriceText),
		Quantity:  1,
		Kind:      kind,
	}
	c.items = append(c.items, item)
	return item
}

// RemoveItem quita la línea con ese id local. Devuelve false si no existía.
func (c *Cart) RemoveItem(localID string) bool {
	i := c.index(localID)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// SetQuantity reemplaza la cantidad. Cantidades menores a 1 se ignoran.
func (c *Cart) SetQuantity(localID string, qty int) bool {
	if qty < 1 {
		return false
	}
	i := c.index(localID)
	if i < 0 {
		return false
	}
	c.items[i].Quantity = qty
	return true
}

// Has informa si existe una línea con ese id local.
func (c *Cart) Has(localID string) bool { return c.index(localID) >= 0 }

// Item devuelve la línea con ese id local.
func (c *Cart) Item(localID string) (entity.LineItem, bool) {
	i := c.index(localID)
	if i < 0 {
		return entity.LineItem{}, false
	}
	return c.items[i], true
}

// Subtotal suma precio × cantidad de todas las líneas.
func (c *Cart) Subtotal() money.Money {
	total := money.Zero()
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Items devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Items() []entity.LineItem {
	out := make([]entity.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len devuelve el número de líneas.
func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) index(localID string) int {
	for i := range c.items {
		if c.items[i].LocalID == localID {
			return i
		}
	}
	return -1
}
