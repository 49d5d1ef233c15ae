// Package servicing orquesta órdenes de servicio y ventas: carga, filtra por
// permisos, aplica el borrador del front sobre el agregado y lo guarda a
// través del gate de aceptación de términos.
package servicing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/aggregate"
	"github.com/jhoicas/Oficina-api/internal/domain/cart"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
	"github.com/jhoicas/Oficina-api/internal/domain/workflow"
	"github.com/jhoicas/Oficina-api/pkg/logger"
)

// OrderUseCase casos de uso de órdenes de servicio.
type OrderUseCase struct {
	orders   repository.OrderRepository
	files    repository.FileRepository
	catalog  *catalog
	terms    *TermsService
	tx       TxRunner
	renderer OrderPDFRenderer
	log      *logger.Logger
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso inyectando todas sus dependencias.
func NewOrderUseCase(
	orders repository.OrderRepository,
	files repository.FileRepository,
	products repository.ProductRepository,
	services repository.ServiceRepository,
	users repository.UserRepository,
	terms *TermsService,
	tx TxRunner,
	renderer OrderPDFRenderer,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		files:    files,
		catalog:  &catalog{products: products, services: services, users: users},
		terms:    terms,
		tx:       tx,
		renderer: renderer,
		log:      log,
		now:      time.Now,
	}
}

// List devuelve las órdenes que el actor puede ver, id descendente.
func (uc *OrderUseCase) List(ctx context.Context, actor entity.Actor) (*dto.OrderListResponse, error) {
	if !permission.Can(actor, entity.ModuleOrders, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	recs, err := uc.orders.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].ID > recs[j].ID })
	visible := permission.VisibleRecords(actor, entity.ModuleOrders, recs, permission.OrderOwnership)

	out := &dto.OrderListResponse{
		Data:   make([]dto.OrderResponse, 0, len(visible)),
		CanAdd: permission.Can(actor, entity.ModuleOrders, permission.ActionAdd),
	}
	for _, rec := range visible {
		out.Data = append(out.Data, toOrderResponse(aggregate.LoadOrder(rec), actor))
	}
	return out, nil
}

// load obtiene la orden y verifica pertenencia. Una orden ajena se reporta
// como inexistente.
func (uc *OrderUseCase) load(ctx context.Context, actor entity.Actor, id int64) (*aggregate.Order, error) {
	rec, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener orden: %w", err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	o := aggregate.LoadOrder(rec)
	if !o.Visible(actor) {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// Get devuelve una orden con su adjunto, si lo tiene.
func (uc *OrderUseCase) Get(ctx context.Context, actor entity.Actor, id int64) (*dto.OrderResponse, error) {
	if !permission.Can(actor, entity.ModuleOrders, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	o, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(o, actor)
	att, err := uc.files.FindByDescriptionPrefix(ctx, AttachmentPrefix(id))
	if err != nil {
		uc.log.ForActor(actor).Warn().Err(err).Int64("record_id", id).Msg("buscar adjunto de la orden")
	}
	resp.Attachment = toFileResponse(att)
	return &resp, nil
}

// Terms devuelve los términos de garantía vigentes.
func (uc *OrderUseCase) Terms(ctx context.Context) (*dto.TermsResponse, error) {
	t, err := uc.terms.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TermsResponse{Text: t.Text, Digest: t.Digest}, nil
}

// Responsibles lista los usuarios que pueden quedar como responsables.
func (uc *OrderUseCase) Responsibles(ctx context.Context) ([]dto.ResponsibleResponse, error) {
	users, err := uc.catalog.responsibles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResponsibleResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ResponsibleResponse{ID: u.ID, Name: u.Name, Role: string(u.Role)})
	}
	return out, nil
}

// Save crea (id == 0) o actualiza una orden aplicando el borrador recibido.
//
// Retorna:
//   - domain.ErrForbidden     si el actor no puede crear/editar la orden o el cambio.
//   - domain.ErrNotFound      si la orden no existe o no es visible para el actor.
//   - domain.ErrInvalidInput  si el borrador referencia ítems o responsables inválidos.
//   - domain.ErrConflict      si la transición de estado no es legal.
//   - domain.ErrGateDenied    si no se aceptaron los términos (no se llama al repositorio).
//   - domain.ErrTermsMismatch si la huella aceptada no es la de los términos vigentes.
//   - domain.ErrRepository    si falla la persistencia; la operación puede reintentarse.
func (uc *OrderUseCase) Save(ctx context.Context, actor entity.Actor, id int64, in dto.SaveOrderRequest) (*dto.OrderResponse, error) {
	log := uc.log.ForActor(actor)
	now := uc.now()

	var o *aggregate.Order
	if id == 0 {
		var ok bool
		if o, ok = aggregate.NewOrder(actor, now); !ok {
			return nil, domain.ErrForbidden
		}
	} else {
		var err error
		if o, err = uc.load(ctx, actor, id); err != nil {
			return nil, err
		}
		if !o.CanEdit(actor) {
			return nil, domain.ErrForbidden
		}
	}

	if err := uc.apply(ctx, actor, o, in); err != nil {
		return nil, err
	}
	if err := validateAttachment(in.Attachment); err != nil {
		return nil, err
	}

	gate, err := uc.terms.Gate(ctx, in.Accepted, in.TermsDigest)
	if err != nil {
		return nil, err
	}
	store := &orderTxStore{tx: uc.tx, attachment: in.Attachment, actor: actor, now: now}
	if err := o.Save(ctx, gate, store); err != nil {
		switch {
		case errors.Is(err, domain.ErrGateDenied):
			log.Info().Str("module", "orders").Int64("record_id", id).Msg("gate denied")
		default:
			log.Error().Err(err).Str("module", "orders").Int64("record_id", id).Msg("repository failure")
		}
		return nil, err
	}

	log.Info().Str("module", "orders").Int64("record_id", o.ID()).Str("total", o.Total().String()).Msg("order saved")
	resp := toOrderResponse(o, actor)
	resp.Attachment = toFileResponse(store.saved)
	return &resp, nil
}

// apply replica el borrador sobre el agregado respetando los permisos del actor.
// Los campos que un cliente no puede tocar se ignoran; cliente y responsable
// vacíos conservan el valor actual.
func (uc *OrderUseCase) apply(ctx context.Context, actor entity.Actor, o *aggregate.Order, in dto.SaveOrderRequest) error {
	if !actor.IsClient() {
		if c := entity.PartyRef(in.Client); !c.IsZero() && !c.Equal(o.Client()) && !o.SetClient(actor, c) {
			return domain.ErrForbidden
		}
		if in.DateInit != nil && !in.DateInit.Equal(o.OpenedAt()) && !o.SetOpenedAt(actor, *in.DateInit) {
			return domain.ErrForbidden
		}
	}
	if in.Description != o.Description() && !o.SetDescription(actor, in.Description) {
		return domain.ErrForbidden
	}

	services := cartOps{
		kind:    entity.KindService,
		current: o.Services(),
		add: func(src cart.Source, _ entity.ItemKind) (entity.LineItem, bool) {
			return o.AddService(actor, src)
		},
		setQty: func(id string, q int) bool { return o.SetQuantity(actor, entity.KindService, id, q) },
		remove: func(id string) bool { return o.RemoveItem(actor, entity.KindService, id) },
	}
	if err := uc.catalog.reconcile(ctx, services, in.Services); err != nil {
		return err
	}
	products := cartOps{
		kind:    entity.KindProduct,
		current: o.Products(),
		add: func(src cart.Source, _ entity.ItemKind) (entity.LineItem, bool) {
			return o.AddProduct(actor, src)
		},
		setQty: func(id string, q int) bool { return o.SetQuantity(actor, entity.KindProduct, id, q) },
		remove: func(id string) bool { return o.RemoveItem(actor, entity.KindProduct, id) },
	}
	if err := uc.catalog.reconcile(ctx, products, in.Products); err != nil {
		return err
	}

	if in.Status != "" {
		next := workflow.OrderStatus(in.Status)
		if !workflow.Orders.Known(next) {
			return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
		}
		if !o.SetStatus(actor, next) {
			if actor.IsClient() {
				return domain.ErrForbidden
			}
			return fmt.Errorf("%w: %s → %s", domain.ErrConflict, o.Status(), next)
		}
	}

	// El responsable va al final: para un técnico la pertenencia se evalúa
	// contra el responsable vigente, y después del cambio deja de serlo.
	if actor.IsClient() {
		return nil
	}
	return uc.catalog.reassign(ctx, actor, o, entity.PartyRef(in.Responsible))
}

// Delete borra la orden. Un cliente nunca borra.
func (uc *OrderUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	o, err := uc.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if !o.CanDelete(actor) {
		return domain.ErrForbidden
	}
	ok, err := uc.orders.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRepository, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.log.ForActor(actor).Info().Str("module", "orders").Int64("record_id", id).Msg("order deleted")
	return nil
}

// PDF genera el documento imprimible de la orden.
func (uc *OrderUseCase) PDF(ctx context.Context, actor entity.Actor, id int64) (pdf []byte, filename string, err error) {
	if !permission.Can(actor, entity.ModuleOrders, permission.ActionView) {
		return nil, "", domain.ErrForbidden
	}
	o, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.terms.Settings(ctx)
	if err != nil {
		return nil, "", err
	}
	doc := OrderDocument{
		Company:      company,
		Order:        o.ToRecord(),
		WarrantyText: uc.terms.textOf(company),
	}
	pdf, err = uc.renderer.RenderOrder(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("OS_%d.pdf", id), nil
}
