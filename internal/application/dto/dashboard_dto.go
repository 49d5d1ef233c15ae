package dto

import "github.com/jhoicas/Oficina-api/internal/domain/money"

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Clients      int         `json:"clients"`
	Products     int         `json:"products"`
	Services     int         `json:"services"`
	Orders       int         `json:"orders"`
	Revenue      money.Money `json:"revenue"`
	Expenses     money.Money `json:"expenses"`
	RevenueText  string      `json:"revenue_text"`
	ExpensesText string      `json:"expenses_text"`
}

// FinanceSummaryResponse respuesta de GET /api/finance/summary.
type FinanceSummaryResponse struct {
	Income       money.Money `json:"income"`
	Expense      money.Money `json:"expense"`
	Balance      money.Money `json:"balance"`
	IncomeText   string      `json:"income_text"`
	ExpenseText  string      `json:"expense_text"`
	BalanceText  string      `json:"balance_text"`
	Transactions int         `json:"transactions"`
}
