package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// FinanceUseCase resume el libro de transacciones.
type FinanceUseCase struct {
	transactions repository.TransactionRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(transactions repository.TransactionRepository) *FinanceUseCase {
	return &FinanceUseCase{transactions: transactions}
}

// Summary suma receitas y despesas (pagas o pendientes) y su balance.
// Transacciones de otro tipo se cuentan pero no suman.
func (uc *FinanceUseCase) Summary(ctx context.Context, actor entity.Actor) (*dto.FinanceSummaryResponse, error) {
	if !permission.Can(actor, entity.ModuleFinance, permission.ActionView) {
		return nil, domain.ErrForbidden
	}
	txs, err := uc.transactions.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("finanzas: listar transacciones: %w", err)
	}

	income, expense := money.Zero(), money.Zero()
	for _, t := range txs {
		switch t.Kind {
		case entity.TransactionIncome:
			income = income.Add(t.Amount)
		case entity.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}
	balance := income.Sub(expense)
	return &dto.FinanceSummaryResponse{
		Income:       income,
		Expense:      expense,
		Balance:      balance,
		IncomeText:   money.Format(income),
		ExpenseText:  money.Format(expense),
		BalanceText:  money.Format(balance),
		Transactions: len(txs),
	}, nil
}
