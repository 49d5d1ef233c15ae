package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

type catalogService interface {
	ListProducts(ctx context.Context, actor entity.Actor) ([]dto.CatalogItemResponse, error)
	ListServices(ctx context.Context, actor entity.Actor) ([]dto.CatalogItemResponse, error)
	ListClients(ctx context.Context, actor entity.Actor) ([]dto.ClientResponse, error)
}

// CatalogHandler expone el catálogo que usan los formularios de órdenes y ventas.
type CatalogHandler struct {
	uc catalogService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc catalogService) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Products godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CatalogItemResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Services godoc
// @Summary      Listar servicios
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CatalogItemResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/services [get]
func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	out, err := h.uc.ListServices(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Clients godoc
// @Summary      Listar clientes y proveedores
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ClientResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/clients [get]
func (h *CatalogHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.ListClients(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
