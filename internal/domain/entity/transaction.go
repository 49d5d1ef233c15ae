package entity

import (
	"time"

	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

// TransactionKind distingue ingresos de egresos.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "receita"
	TransactionExpense TransactionKind = "despesa"
)

// Estados de Transaction.
const (
	TransactionPending = "Pendente"
	TransactionPaid    = "Pago"
)

// Transaction es un asiento del libro financiero.
type Transaction struct {
	ID          int64
	Kind        TransactionKind
	Description string
	Amount      money.Money
	DueDate     time.Time
	Status      string
}
