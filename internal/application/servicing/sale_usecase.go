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

// Títulos del listado de ventas.
const (
	SalesTitle       = "Vendas"
	ClientSalesTitle = "Minhas Compras"
)

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	sales   repository.SaleRepository
	catalog *catalog
	terms   *TermsService
	log     *logger.Logger
	now     func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	services repository.ServiceRepository,
	users repository.UserRepository,
	terms *TermsService,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		sales:   sales,
		catalog: &catalog{products: products, services: services, users: users},
		terms:   terms,
		log:     log,
		now:     time.Now,
	}
}

// List devuelve las ventas que el actor puede ver, id descendente.
func (uc *SaleUseCase) List(ctx context.Context, actor entity.Actor) (*dto.SaleListResponse, error) {
	if !permission.Can(actor, entity.ModuleSales, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	recs, err := uc.sales.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].ID > recs[j].ID })
	visible := permission.VisibleRecords(actor, entity.ModuleSales, recs, permission.SaleOwnership)

	title := SalesTitle
	if actor.IsClient() {
		title = ClientSalesTitle
	}
	out := &dto.SaleListResponse{
		Title:  title,
		Data:   make([]dto.SaleResponse, 0, len(visible)),
		CanAdd: permission.Can(actor, entity.ModuleSales, permission.ActionAdd),
	}
	for _, rec := range visible {
		out.Data = append(out.Data, toSaleResponse(aggregate.LoadSale(rec), actor))
	}
	return out, nil
}

func (uc *SaleUseCase) load(ctx context.Context, actor entity.Actor, id int64) (*aggregate.Sale, error) {
	rec, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	s := aggregate.LoadSale(rec)
	if !s.Visible(actor) {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Get devuelve una venta visible para el actor.
func (uc *SaleUseCase) Get(ctx context.Context, actor entity.Actor, id int64) (*dto.SaleResponse, error) {
	if !permission.Can(actor, entity.ModuleSales, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	s, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(s, actor)
	return &resp, nil
}

// Save crea (id == 0) o actualiza una venta. Los errores son los mismos que
// OrderUseCase.Save.
func (uc *SaleUseCase) Save(ctx context.Context, actor entity.Actor, id int64, in dto.SaveSaleRequest) (*dto.SaleResponse, error) {
	log := uc.log.ForActor(actor)

	var s *aggregate.Sale
	if id == 0 {
		var ok bool
		if s, ok = aggregate.NewSale(actor, uc.now()); !ok {
			return nil, domain.ErrForbidden
		}
	} else {
		var err error
		if s, err = uc.load(ctx, actor, id); err != nil {
			return nil, err
		}
		if !s.CanEdit(actor) {
			return nil, domain.ErrForbidden
		}
	}

	if err := uc.apply(ctx, actor, s, in); err != nil {
		return nil, err
	}

	gate, err := uc.terms.Gate(ctx, in.Accepted, in.TermsDigest)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, gate, uc.sales); err != nil {
		if errors.Is(err, domain.ErrGateDenied) {
			log.Info().Str("module", "sales").Int64("record_id", id).Msg("gate denied")
		} else {
			log.Error().Err(err).Str("module", "sales").Int64("record_id", id).Msg("repository failure")
		}
		return nil, err
	}

	log.Info().Str("module", "sales").Int64("record_id", s.ID()).Str("total", s.Total().String()).Msg("sale saved")
	resp := toSaleResponse(s, actor)
	return &resp, nil
}

func (uc *SaleUseCase) apply(ctx context.Context, actor entity.Actor, s *aggregate.Sale, in dto.SaveSaleRequest) error {
	if !actor.IsClient() {
		if c := entity.PartyRef(in.Client); !c.IsZero() && !c.Equal(s.Client()) && !s.SetClient(actor, c) {
			return domain.ErrForbidden
		}
		if in.Date != nil && !in.Date.Equal(s.Date()) && !s.SetDate(actor, *in.Date) {
			return domain.ErrForbidden
		}
	}
	if in.Details != s.Details() && !s.SetDetails(actor, in.Details) {
		return domain.ErrForbidden
	}

	items := cartOps{
		current: s.Items(),
		add: func(src cart.Source, kind entity.ItemKind) (entity.LineItem, bool) {
			return s.AddItem(actor, src, kind)
		},
		setQty: func(id string, q int) bool { return s.SetQuantity(actor, id, q) },
		remove: func(id string) bool { return s.RemoveItem(actor, id) },
	}
	if err := uc.catalog.reconcile(ctx, items, in.Items); err != nil {
		return err
	}

	if in.Status != "" {
		next := workflow.SaleStatus(in.Status)
		if !workflow.Sales.Known(next) {
			return fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, in.Status)
		}
		if !s.SetStatus(actor, next) {
			if actor.IsClient() {
				return domain.ErrForbidden
			}
			return fmt.Errorf("%w: %s → %s", domain.ErrConflict, s.Status(), next)
		}
	}

	// El responsable va al final: para un técnico la pertenencia se evalúa
	// contra el responsable vigente, y después del cambio deja de serlo.
	if actor.IsClient() {
		return nil
	}
	return uc.catalog.reassign(ctx, actor, s, entity.PartyRef(in.Responsible))
}

// Delete borra la venta. Un cliente nunca borra.
func (uc *SaleUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	s, err := uc.load(ctx, actor, id)
	if err != nil {
		return err
	}
	if !s.CanDelete(actor) {
		return domain.ErrForbidden
	}
	ok, err := uc.sales.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRepository, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.log.ForActor(actor).Info().Str("module", "sales").Int64("record_id", id).Msg("sale deleted")
	return nil
}
