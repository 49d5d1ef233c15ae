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

// SaleStore es el puerto de persistencia que usa Sale.Save.
type SaleStore interface {
	Add(ctx context.Context, rec *entity.SaleRecord) (int64, error)
	Update(ctx context.Context, rec *entity.SaleRecord) error
}

// Sale es una venta con un único carrito de ítems.
type Sale struct {
	owned
	date    time.Time
	status  workflow.SaleStatus
	details string
	items   *cart.Cart
	total   money.Money
}

// NewSale crea una venta vacía en estado Aberto. Requiere add sobre sales.
func NewSale(actor entity.Actor, now time.Time) (*Sale, bool) {
	if !permission.Can(actor, entity.ModuleSales, permission.ActionAdd) {
		return nil, false
	}
	s := &Sale{
		date:   now,
		status: workflow.Sales.Initial(),
		items:  &cart.Cart{},
	}
	s.prefill(actor)
	s.RecomputeTotal()
	return s, true
}

// LoadSale reconstruye la venta desde el registro persistido recalculando el total.
func LoadSale(rec *entity.SaleRecord) *Sale {
	s := &Sale{
		owned: owned{
			id:          rec.ID,
			client:      rec.Client,
			responsible: rec.Responsible,
		},
		date:    rec.Date,
		status:  workflow.SaleStatus(rec.Status),
		details: rec.Details,
		items:   cart.FromItems(rec.Items),
	}
	if s.status == "" {
		s.status = workflow.Sales.Initial()
	}
	s.RecomputeTotal()
	return s
}

// Date devuelve la fecha de la venta.
func (s *Sale) Date() time.Time { return s.date }

// Status devuelve el estado actual.
func (s *Sale) Status() workflow.SaleStatus { return s.status }

// StatusColor devuelve la clase de color del estado.
func (s *Sale) StatusColor() string { return workflow.Sales.CSSClass(s.status) }

// Details devuelve las observaciones de la venta.
func (s *Sale) Details() string { return s.details }

// Total devuelve la suma del carrito.
func (s *Sale) Total() money.Money { return s.total }

// Items devuelve una copia de las líneas.
func (s *Sale) Items() []entity.LineItem { return s.items.Items() }

// Summary devuelve "N itens", las observaciones, o "-".
func (s *Sale) Summary() string {
	if n := s.items.Len(); n > 0 {
		return fmt.Sprintf("%d itens", n)
	}
	if s.details != "" {
		return s.details
	}
	return SummaryEmpty
}

// Visible informa si el actor puede ver la venta.
func (s *Sale) Visible(actor entity.Actor) bool {
	return s.visible(actor, entity.ModuleSales)
}

// CanEdit informa si el actor puede editar la venta; clientes solo en Aberto.
func (s *Sale) CanEdit(actor entity.Actor) bool {
	if !s.mayWrite(actor, entity.ModuleSales) {
		return false
	}
	return !actor.IsClient() || s.status == workflow.SaleOpen
}

// CanDelete informa si el actor puede borrar la venta. Un cliente nunca borra.
func (s *Sale) CanDelete(actor entity.Actor) bool {
	if actor.IsClient() || s.IsNew() {
		return false
	}
	return permission.Can(actor, entity.ModuleSales, permission.ActionDelete) && s.Visible(actor)
}

// RecomputeTotal recalcula el total desde el carrito.
func (s *Sale) RecomputeTotal() {
	s.total = s.items.Subtotal()
}

// AddItem agrega un producto o servicio con su precio actual del catálogo.
func (s *Sale) AddItem(actor entity.Actor, src cart.Source, kind entity.ItemKind) (entity.LineItem, bool) {
	if !s.CanEdit(actor) {
		return entity.LineItem{}, false
	}
	item := s.items.AddItem(src, kind)
	s.RecomputeTotal()
	return item, true
}

// RemoveItem quita una línea.
func (s *Sale) RemoveItem(actor entity.Actor, localID string) bool {
	if !s.CanEdit(actor) || !s.items.RemoveItem(localID) {
		return false
	}
	s.RecomputeTotal()
	return true
}

// SetQuantity cambia la cantidad de una línea. Cantidades menores a 1 se ignoran.
func (s *Sale) SetQuantity(actor entity.Actor, localID string, qty int) bool {
	if !s.CanEdit(actor) || !s.items.SetQuantity(localID, qty) {
		return false
	}
	s.RecomputeTotal()
	return true
}

// SetStatus aplica la transición si es legal para el actor.
func (s *Sale) SetStatus(actor entity.Actor, next workflow.SaleStatus) bool {
	if next == s.status {
		return true
	}
	if !s.mayWrite(actor, entity.ModuleSales) {
		return false
	}
	allowed := workflow.Sales.CanTransition(s.status, next)
	if actor.IsClient() {
		allowed = workflow.Sales.ClientCanTransition(s.status, next)
	}
	if !allowed {
		return false
	}
	s.status = next
	return true
}

// SetResponsible cambia el responsable. Denegado para clientes.
func (s *Sale) SetResponsible(actor entity.Actor, p entity.PartyRef) bool {
	return s.setResponsible(actor, entity.ModuleSales, p)
}

// SetClient cambia el cliente. Denegado para clientes.
func (s *Sale) SetClient(actor entity.Actor, p entity.PartyRef) bool {
	return s.setClient(actor, entity.ModuleSales, p)
}

// SetDetails cambia las observaciones.
func (s *Sale) SetDetails(actor entity.Actor, d string) bool {
	if !s.CanEdit(actor) {
		return false
	}
	s.details = d
	return true
}

// SetDate cambia la fecha. Denegado para clientes.
func (s *Sale) SetDate(actor entity.Actor, t time.Time) bool {
	if actor.IsClient() || !s.mayWrite(actor, entity.ModuleSales) {
		return false
	}
	s.date = t
	return true
}

// ToRecord aplana la venta a su forma persistida.
func (s *Sale) ToRecord() *entity.SaleRecord {
	return &entity.SaleRecord{
		ID:          s.id,
		Client:      s.client,
		Responsible: s.responsible,
		Date:        s.date,
		Status:      string(s.status),
		Total:       s.total,
		Details:     s.details,
		Items:       s.items.Items(),
	}
}

// Save persiste la venta a través del gate de aceptación.
func (s *Sale) Save(ctx context.Context, gate *acceptance.Gate, store SaleStore) error {
	return gate.Commit(ctx, func(ctx context.Context) error {
		rec := s.ToRecord()
		if s.IsNew() {
			id, err := store.Add(ctx, rec)
			if err != nil {
				return err
			}
			s.id = id
			return nil
		}
		return store.Update(ctx, rec)
	})
}
