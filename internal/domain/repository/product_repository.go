package repository

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Count(ctx context.Context) (int, error)
}

// ServiceRepository define el puerto de lectura del catálogo de servicios.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]*entity.Service, error)
	GetByID(ctx context.Context, id int64) (*entity.Service, error)
	Count(ctx context.Context) (int, error)
}

// ClientRepository define el puerto de lectura de clientes y proveedores.
type ClientRepository interface {
	GetAll(ctx context.Context) ([]*entity.Client, error)
	Count(ctx context.Context) (int, error)
}
