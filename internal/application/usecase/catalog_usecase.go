package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// CatalogUseCase lectura del catálogo (productos, servicios y clientes) que
// alimenta los formularios de órdenes y ventas. El catálogo se mantiene fuera
// de esta API.
type CatalogUseCase struct {
	products repository.ProductRepository
	services repository.ServiceRepository
	clients  repository.ClientRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, services repository.ServiceRepository, clients repository.ClientRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, services: services, clients: clients}
}

// composes informa si el actor arma carritos: view en órdenes o en ventas.
func composes(actor entity.Actor) bool {
	return permission.Can(actor, entity.ModuleOrders, permission.ActionView) ||
		permission.Can(actor, entity.ModuleSales, permission.ActionView)
}

// ListProducts devuelve los productos ordenados por nombre.
func (uc *CatalogUseCase) ListProducts(ctx context.Context, actor entity.Actor) ([]dto.CatalogItemResponse, error) {
	if !composes(actor) {
		return nil, domain.ErrForbidden
	}
	products, err := uc.products.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.CatalogItemResponse, 0, len(products))
	for _, p := range products {
		price := money.Parse(p.Price)
		stock := p.Stock
		out = append(out, dto.CatalogItemResponse{
			ID:        p.ID,
			Name:      p.Name,
			Type:      string(entity.KindProduct),
			Price:     price,
			PriceText: price.String(),
			Unit:      p.Unit,
			Stock:     &stock,
			LowStock:  p.MinStock > 0 && p.Stock <= p.MinStock,
		})
	}
	return out, nil
}

// ListServices devuelve los servicios ordenados por nombre.
func (uc *CatalogUseCase) ListServices(ctx context.Context, actor entity.Actor) ([]dto.CatalogItemResponse, error) {
	if !composes(actor) {
		return nil, domain.ErrForbidden
	}
	services, err := uc.services.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar servicios: %w", err)
	}
	out := make([]dto.CatalogItemResponse, 0, len(services))
	for _, s := range services {
		price := money.Parse(s.Price)
		out = append(out, dto.CatalogItemResponse{
			ID:          s.ID,
			Name:        s.Name,
			Type:        string(entity.KindService),
			Price:       price,
			PriceText:   price.String(),
			Description: s.Description,
		})
	}
	return out, nil
}

// ListClients devuelve clientes y proveedores. Un cliente no ve la cartera.
func (uc *CatalogUseCase) ListClients(ctx context.Context, actor entity.Actor) ([]dto.ClientResponse, error) {
	if actor.IsClient() || !composes(actor) {
		return nil, domain.ErrForbidden
	}
	clients, err := uc.clients.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, dto.ClientResponse{
			ID:       c.ID,
			Name:     c.Name,
			Document: c.Document,
			Phone:    c.Phone,
			Email:    c.Email,
			Type:     c.Type,
			City:     c.City,
			State:    c.State,
		})
	}
	return out, nil
}
