package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo lectura del libro de receitas y despesas.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// GetAll lista las transacciones por vencimiento.
func (r *TransactionRepo) GetAll(ctx context.Context) ([]*entity.Transaction, error) {
	query := `
		SELECT id, type, COALESCE(description, ''), COALESCE(amount, 0), due_date, COALESCE(status, '')
		FROM transactions ORDER BY due_date DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var (
			t      entity.Transaction
			amount decimal.Decimal
		)
		if err := rows.Scan(&t.ID, &t.Kind, &t.Description, &amount, &t.DueDate, &t.Status); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Amount = money.FromDecimal(amount)
		list = append(list, &t)
	}
	return list, rows.Err()
}
