package repository

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia de órdenes (colección orders).
// GetAll no filtra: la visibilidad se aplica después con permission.VisibleRecords.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]*entity.OrderRecord, error)
	GetByID(ctx context.Context, id int64) (*entity.OrderRecord, error)
	// Add inserta y devuelve el id asignado.
	Add(ctx context.Context, rec *entity.OrderRecord) (int64, error)
	// Update reemplaza el registro completo (último en escribir gana). No-op si ID es 0.
	Update(ctx context.Context, rec *entity.OrderRecord) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// SaleRepository define el puerto de persistencia de ventas (colección service_sales).
type SaleRepository interface {
	GetAll(ctx context.Context) ([]*entity.SaleRecord, error)
	GetByID(ctx context.Context, id int64) (*entity.SaleRecord, error)
	Add(ctx context.Context, rec *entity.SaleRecord) (int64, error)
	Update(ctx context.Context, rec *entity.SaleRecord) error
	Delete(ctx context.Context, id int64) (bool, error)
}
