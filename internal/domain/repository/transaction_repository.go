package repository

import (
	"context"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

// TransactionRepository define el puerto del libro financiero.
type TransactionRepository interface {
	GetAll(ctx context.Context) ([]*entity.Transaction, error)
}
