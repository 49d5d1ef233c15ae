package repository

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByID y FindByEmail devuelven nil, nil si el usuario no existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByRoles(ctx context.Context, roles ...entity.Role) ([]*entity.User, error)
	// GetAll devuelve los usuarios ordenados por fecha de alta.
	GetAll(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
}
