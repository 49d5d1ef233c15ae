package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Oficina-api/internal/domain/acceptance"
	"github.com/jhoicas/Oficina-api/internal/domain/cart"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/workflow"
)

// Textos del resumen de una orden (columna service).
const (
	SummaryProductsOnly = "Apenas Produtos"
	SummaryEmpty        = "-"
)

// OrderStore es el puerto de persistencia que usa Order.Save.
type OrderStore interface {
	Add(ctx context.Context, rec *entity.OrderRecord) (int64, error)
	Update(ctx context.Context, rec *entity.OrderRecord) error
}

// Order es una orden de servicio con un carrito de servicios y otro de productos.
type Order struct {
	owned
	openedAt    time.Time
	status      workflow.OrderStatus
	description string
	services    *cart.Cart
	products    *cart.Cart
	total       money.Money
	summary     string
}

// NewOrder crea una orden vacía en estado Aberto. Requiere add sobre orders.
// Un cliente queda como cliente de la orden y un técnico como responsable.
func NewOrder(actor entity.Actor, now time.Time) (*Order, bool) {
	if !permission.Can(actor, entity.ModuleOrders, permission.ActionAdd) {
		return nil, false
	}
	o := &Order{
		openedAt: now,
		status:   workflow.Orders.Initial(),
		services: &cart.Cart{},
		products: &cart.Cart{},
	}
	o.prefill(actor)
	o.RecomputeTotal()
	return o, true
}

// LoadOrder reconstruye la orden desde el registro persistido. El total
// guardado se descarta y se recalcula desde los ítems.
func LoadOrder(rec *entity.OrderRecord) *Order {
	o := &Order{
		owned: owned{
			id:          rec.ID,
			client:      rec.Client,
			responsible: rec.Responsible,
		},
		openedAt:    rec.OpenedAt,
		status:      workflow.OrderStatus(rec.Status),
		description: rec.Description,
		services:    cart.FromItems(withKind(rec.Services, entity.KindService)),
		products:    cart.FromItems(withKind(rec.Products, entity.KindProduct)),
	}
	if o.status == "" {
		o.status = workflow.Orders.Initial()
	}
	o.RecomputeTotal()
	return o
}

func withKind(items []entity.LineItem, kind entity.ItemKind) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, it := range items {
		it.Kind = kind
		out[i] = it
	}
	return out
}

// OpenedAt devuelve la fecha de apertura.
func (o *Order) OpenedAt() time.Time { return o.openedAt }

// Status devuelve el estado actual.
func (o *Order) Status() workflow.OrderStatus { return o.status }

// StatusColor devuelve la clase de color del estado.
func (o *Order) StatusColor() string { return workflow.Orders.CSSClass(o.status) }

// Description devuelve la descripción del problema o trabajo.
func (o *Order) Description() string { return o.description }

// Total devuelve la suma de ambos carritos.
func (o *Order) Total() money.Money { return o.total }

// Summary devuelve el resumen de una línea de la orden.
func (o *Order) Summary() string { return o.summary }

// Services devuelve una copia de las líneas de servicio.
func (o *Order) Services() []entity.LineItem { return o.services.Items() }

// Products devuelve una copia de las líneas de producto.
func (o *Order) Products() []entity.LineItem { return o.products.Items() }

// Visible informa si el actor puede ver la orden.
func (o *Order) Visible(actor entity.Actor) bool {
	return o.visible(actor, entity.ModuleOrders)
}

// CanEdit informa si el actor puede editar la orden: capacidad y pertenencia,
// y para clientes solo mientras siga en Aberto.
func (o *Order) CanEdit(actor entity.Actor) bool {
	if !o.mayWrite(actor, entity.ModuleOrders) {
		return false
	}
	return !actor.IsClient() || o.status == workflow.OrderOpen
}

// CanDelete informa si el actor puede borrar la orden. Un cliente nunca borra.
func (o *Order) CanDelete(actor entity.Actor) bool {
	if actor.IsClient() || o.IsNew() {
		return false
	}
	return permission.Can(actor, entity.ModuleOrders, permission.ActionDelete) && o.Visible(actor)
}

// RecomputeTotal recalcula total y resumen desde los carritos.
func (o *Order) RecomputeTotal() {
	o.total = o.services.Subtotal().Add(o.products.Subtotal())
	o.summary = orderSummary(o.services.Items(), o.products.Len())
}

func orderSummary(services []entity.LineItem, products int) string {
	switch {
	case len(services) > 1:
		return fmt.Sprintf("%s + %d serv.", services[0].Name, len(services)-1)
	case len(services) == 1:
		return services[0].Name
	case products > 0:
		return SummaryProductsOnly
	}
	return SummaryEmpty
}

func (o *Order) cartFor(kind entity.ItemKind) *cart.Cart {
	switch kind {
	case entity.KindService:
		return o.services
	case entity.KindProduct:
		return o.products
	}
	return nil
}

// AddService agrega un servicio con su precio actual del catálogo.
func (o *Order) AddService(actor entity.Actor, src cart.Source) (entity.LineItem, bool) {
	return o.addItem(actor, src, entity.KindService)
}

// AddProduct agrega un producto con su precio actual del catálogo.
func (o *Order) AddProduct(actor entity.Actor, src cart.Source) (entity.LineItem, bool) {
	return o.addItem(actor, src, entity.KindProduct)
}

func (o *Order) addItem(actor entity.Actor, src cart.Source, kind entity.ItemKind) (entity.LineItem, bool) {
	if !o.CanEdit(actor) {
		return entity.LineItem{}, false
	}
	item := o.cartFor(kind).AddItem(src, kind)
	o.RecomputeTotal()
	return item, true
}

// RemoveItem quita una línea del carrito indicado.
func (o *Order) RemoveItem(actor entity.Actor, kind entity.ItemKind, localID string) bool {
	c := o.cartFor(kind)
	if c == nil || !o.CanEdit(actor) {
		return false
	}
	if !c.RemoveItem(localID) {
		return false
	}
	o.RecomputeTotal()
	return true
}

// SetQuantity cambia la cantidad de una línea. Cantidades menores a 1 se ignoran.
func (o *Order) SetQuantity(actor entity.Actor, kind entity.ItemKind, localID string, qty int) bool {
	c := o.cartFor(kind)
	if c == nil || !o.CanEdit(actor) {
		return false
	}
	if !c.SetQuantity(localID, qty) {
		return false
	}
	o.RecomputeTotal()
	return true
}

// SetStatus aplica la transición si es legal para el actor. Mantener el
// estado actual es siempre un no-op aceptado.
func (o *Order) SetStatus(actor entity.Actor, next workflow.OrderStatus) bool {
	if next == o.status {
		return true
	}
	if !o.mayWrite(actor, entity.ModuleOrders) {
		return false
	}
	allowed := workflow.Orders.CanTransition(o.status, next)
	if actor.IsClient() {
		allowed = workflow.Orders.ClientCanTransition(o.status, next)
	}
	if !allowed {
		return false
	}
	o.status = next
	return true
}

// SetResponsible cambia el responsable. Denegado para clientes.
func (o *Order) SetResponsible(actor entity.Actor, p entity.PartyRef) bool {
	return o.setResponsible(actor, entity.ModuleOrders, p)
}

// SetClient cambia el cliente. Denegado para clientes.
func (o *Order) SetClient(actor entity.Actor, p entity.PartyRef) bool {
	return o.setClient(actor, entity.ModuleOrders, p)
}

// SetDescription cambia la descripción.
func (o *Order) SetDescription(actor entity.Actor, d string) bool {
	if !o.CanEdit(actor) {
		return false
	}
	o.description = d
	return true
}

// SetOpenedAt cambia la fecha de apertura. Denegado para clientes.
func (o *Order) SetOpenedAt(actor entity.Actor, t time.Time) bool {
	if actor.IsClient() || !o.mayWrite(actor, entity.ModuleOrders) {
		return false
	}
	o.openedAt = t
	return true
}

// ToRecord aplana la orden a su forma persistida.
func (o *Order) ToRecord() *entity.OrderRecord {
	return &entity.OrderRecord{
		ID:          o.id,
		Client:      o.client,
		Responsible: o.responsible,
		OpenedAt:    o.openedAt,
		Status:      string(o.status),
		StatusColor: o.StatusColor(),
		Total:       o.total,
		Description: o.description,
		Services:    o.services.Items(),
		Products:    o.products.Items(),
		Summary:     o.summary,
	}
}

// Save persiste la orden a través del gate de aceptación. El id se asigna
// solo si el repositorio confirma; ante un error la orden queda intacta.
func (o *Order) Save(ctx context.Context, gate *acceptance.Gate, store OrderStore) error {
	return gate.Commit(ctx, func(ctx context.Context) error {
		rec := o.ToRecord()
		if o.IsNew() {
			id, err := store.Add(ctx, rec)
			if err != nil {
				return err
			}
			o.id = id
			return nil
		}
		return store.Update(ctx, rec)
	})
}
