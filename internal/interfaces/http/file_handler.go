package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

type fileService interface {
	List(ctx context.Context, actor entity.Actor) ([]dto.FileResponse, error)
}

// FileHandler expone los archivos registrados.
type FileHandler struct {
	uc fileService
}

// NewFileHandler construye el handler.
func NewFileHandler(uc fileService) *FileHandler {
	return &FileHandler{uc: uc}
}

// List godoc
// @Summary      Listar archivos
// @Description  Un cliente solo recibe sus archivos.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.FileResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
