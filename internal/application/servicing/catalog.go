package servicing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/cart"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// catalog resuelve ítems del catálogo y valida responsables.
type catalog struct {
	products repository.ProductRepository
	services repository.ServiceRepository
	users    repository.UserRepository
}

func (c *catalog) source(ctx context.Context, kind entity.ItemKind, id int64) (cart.Source, error) {
	switch kind {
	case entity.KindService:
		s, err := c.services.GetByID(ctx, id)
		if err != nil {
			return cart.Source{}, fmt.Errorf("obtener servicio: %w", err)
		}
		if s == nil {
			return cart.Source{}, fmt.Errorf("%w: servicio %d no existe", domain.ErrInvalidInput, id)
		}
		return cart.ServiceSource(s), nil
	case entity.KindProduct:
		p, err := c.products.GetByID(ctx, id)
		if err != nil {
			return cart.Source{}, fmt.Errorf("obtener producto: %w", err)
		}
		if p == nil {
			return cart.Source{}, fmt.Errorf("%w: producto %d no existe", domain.ErrInvalidInput, id)
		}
		return cart.ProductSource(p), nil
	}
	return cart.Source{}, fmt.Errorf("%w: tipo de ítem %q", domain.ErrInvalidInput, kind)
}

// responsibles lista los usuarios que pueden ser responsables.
func (c *catalog) responsibles(ctx context.Context) ([]*entity.User, error) {
	users, err := c.users.ListByRoles(ctx, entity.RoleAdmin, entity.RoleManager, entity.RoleTechnician)
	if err != nil {
		return nil, fmt.Errorf("listar responsables: %w", err)
	}
	out := users[:0]
	for _, u := range users {
		if permission.CanBeResponsible(u.Role) {
			out = append(out, u)
		}
	}
	return out, nil
}

// checkResponsible acepta el nombre vacío o el de un candidato válido.
func (c *catalog) checkResponsible(ctx context.Context, name entity.PartyRef) error {
	if name.IsZero() {
		return nil
	}
	users, err := c.responsibles(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if entity.PartyRef(u.Name).Equal(name) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q no puede ser responsable", domain.ErrInvalidInput, name)
}

// reassignable lo cumplen *aggregate.Order y *aggregate.Sale.
type reassignable interface {
	Responsible() entity.PartyRef
	SetResponsible(actor entity.Actor, p entity.PartyRef) bool
}

// reassign cambia el responsable si el borrador trae uno distinto. Vacío
// conserva el actual.
func (c *catalog) reassign(ctx context.Context, actor entity.Actor, rec reassignable, name entity.PartyRef) error {
	if name.IsZero() || name.Equal(rec.Responsible()) {
		return nil
	}
	if err := c.checkResponsible(ctx, name); err != nil {
		return err
	}
	if !rec.SetResponsible(actor, name) {
		return domain.ErrForbidden
	}
	return nil
}

// cartOps adapta las mutaciones de un carrito del agregado para reconcile.
type cartOps struct {
	kind    entity.ItemKind
	current []entity.LineItem
	add     func(cart.Source, entity.ItemKind) (entity.LineItem, bool)
	setQty  func(localID string, qty int) bool
	remove  func(localID string) bool
}

// reconcile lleva el carrito al estado del borrador. Las líneas existentes
// conservan nombre y precio guardados; las nuevas toman los del catálogo en
// este momento. Cantidades menores a 1 se ignoran.
func (c *catalog) reconcile(ctx context.Context, ops cartOps, in []dto.LineItemInput) error {
	existing := make(map[string]entity.LineItem, len(ops.current))
	for _, it := range ops.current {
		existing[it.LocalID] = it
	}
	kept := make(map[string]bool, len(in))

	for _, li := range in {
		if cur, ok := existing[li.ID]; ok && li.ID != "" {
			if kept[li.ID] {
				return fmt.Errorf("%w: línea %q repetida", domain.ErrInvalidInput, li.ID)
			}
			kept[li.ID] = true
			if li.Quantity >= 1 && li.Quantity != cur.Quantity && !ops.setQty(li.ID, li.Quantity) {
				return domain.ErrForbidden
			}
			continue
		}
		if li.SourceID == nil {
			return fmt.Errorf("%w: línea sin source_id", domain.ErrInvalidInput)
		}
		kind := ops.kind
		if kind == "" {
			kind = entity.ItemKind(li.Type)
			if kind == "" {
				kind = entity.KindProduct
			}
		}
		src, err := c.source(ctx, kind, *li.SourceID)
		if err != nil {
			return err
		}
		item, ok := ops.add(src, kind)
		if !ok {
			return domain.ErrForbidden
		}
		if li.Quantity > 1 {
			ops.setQty(item.LocalID, li.Quantity)
		}
	}

	for _, it := range ops.current {
		if kept[it.LocalID] {
			continue
		}
		if !ops.remove(it.LocalID) {
			return domain.ErrForbidden
		}
	}
	return nil
}
