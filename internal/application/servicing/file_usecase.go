package servicing

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// FileUseCase lista los archivos registrados (adjuntos de órdenes incluidos).
type FileUseCase struct {
	files repository.FileRepository
}

// NewFileUseCase construye el caso de uso.
func NewFileUseCase(files repository.FileRepository) *FileUseCase {
	return &FileUseCase{files: files}
}

// List devuelve los archivos que el actor puede ver, id descendente. Un
// cliente solo ve los suyos; un técnico ninguno, porque los archivos no
// tienen responsable.
func (uc *FileUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.FileResponse, error) {
	if !permission.Can(actor, entity.ModuleFiles, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	recs, err := uc.files.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar archivos: %w", err)
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].ID > recs[j].ID })
	visible := permission.VisibleRecords(actor, entity.ModuleFiles, recs, permission.FileOwnership)

	out := make([]dto.FileResponse, 0, len(visible))
	for _, f := range visible {
		out = append(out, *toFileResponse(f))
	}
	return out, nil
}
