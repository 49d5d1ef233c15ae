package servicing

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Se usa para guardar una orden y su adjunto
// de forma atómica.
type TxRunner interface {
	RunServicing(ctx context.Context, fn func(
		orders repository.OrderRepository,
		files repository.FileRepository,
	) error) error
}

// OrderDocument datos que necesita el generador del PDF de una orden.
type OrderDocument struct {
	Company      entity.CompanySettings
	Order        *entity.OrderRecord
	WarrantyText string
}

// OrderPDFRenderer genera el documento imprimible de una orden de servicio.
type OrderPDFRenderer interface {
	RenderOrder(ctx context.Context, doc OrderDocument) ([]byte, error)
}
