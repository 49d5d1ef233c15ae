package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
)

// RequireCapability devuelve un middleware Fiber que exige la acción sobre el
// módulo. Debe usarse DESPUÉS de ActorMiddleware (necesita LocalActor).
//
// Comportamiento:
//   - 401 Unauthorized → no hay actor en el contexto.
//   - 403 Forbidden    → la fila de permisos del actor no incluye la acción.
//
// Solo es el chequeo de capacidad; la pertenencia de cada registro la
// resuelven los casos de uso.
func RequireCapability(module entity.Module, action permission.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals(LocalActor).(entity.Actor)
		if !ok || actor.ID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "actor no encontrado en el contexto",
			})
		}
		if !permission.Can(actor, module, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "sin permiso '" + string(action) + "' en el módulo '" + string(module) + "'",
			})
		}
		return c.Next()
	}
}
