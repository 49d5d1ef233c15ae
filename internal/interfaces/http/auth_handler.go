package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/application/auth"
	"github.com/jhoicas/Oficina-api/internal/application/dto"
)

type loginService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
}

// AuthHandler maneja login y los permisos del usuario autenticado.
type AuthHandler struct {
	uc loginService
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc loginService) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Permissions godoc
// @Summary      Permisos efectivos del usuario autenticado
// @Description  Capacidad por módulo y módulos visibles en el menú.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PermissionsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me/permissions [get]
func (h *AuthHandler) Permissions(c *fiber.Ctx) error {
	return c.JSON(auth.Permissions(GetActor(c)))
}
