package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

type orderService interface {
	List(ctx context.Context, actor entity.Actor) (*dto.OrderListResponse, error)
	Get(ctx context.Context, actor entity.Actor, id int64) (*dto.OrderResponse, error)
	Save(ctx context.Context, actor entity.Actor, id int64, in dto.SaveOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, actor entity.Actor, id int64) error
	PDF(ctx context.Context, actor entity.Actor, id int64) ([]byte, string, error)
	Terms(ctx context.Context) (*dto.TermsResponse, error)
	Responsibles(ctx context.Context) ([]dto.ResponsibleResponse, error)
}

// OrderHandler maneja las órdenes de servicio.
type OrderHandler struct {
	uc orderService
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc orderService) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes de servicio
// @Description  Técnicos y clientes solo ven las suyas. Orden id descendente.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OrderListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden de servicio
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Get(c.UserContext(), GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de servicio
// @Description  Requiere accepted=true y terms_digest de GET /api/terms.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveOrderRequest  true  "borrador de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveOrderRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Save(c.UserContext(), GetActor(c), 0, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de servicio
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                   true  "ID de la orden"
// @Param        body  body  dto.SaveOrderRequest  true  "borrador de la orden"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.SaveOrderRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Save(c.UserContext(), GetActor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar orden de servicio
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la orden"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar la orden en PDF
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, filename, err := h.uc.PDF(c.UserContext(), GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdf)
}

// Responsibles godoc
// @Summary      Candidatos a responsable
// @Description  Administradores, gerentes y técnicos.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ResponsibleResponse
// @Router       /api/responsibles [get]
func (h *OrderHandler) Responsibles(c *fiber.Ctx) error {
	out, err := h.uc.Responsibles(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Terms godoc
// @Summary      Términos de garantía vigentes
// @Description  El digest se devuelve en terms_digest al guardar.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TermsResponse
// @Router       /api/terms [get]
func (h *OrderHandler) Terms(c *fiber.Ctx) error {
	out, err := h.uc.Terms(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
