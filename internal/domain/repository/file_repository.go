package repository

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

// FileRepository define el puerto de persistencia de archivos (colección files).
type FileRepository interface {
	GetAll(ctx context.Context) ([]*entity.FileDocument, error)
	// FindByDescriptionPrefix devuelve el primer archivo cuya descripción
	// empieza con prefix, o nil.
	FindByDescriptionPrefix(ctx context.Context, prefix string) (*entity.FileDocument, error)
	Add(ctx context.Context, f *entity.FileDocument) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
