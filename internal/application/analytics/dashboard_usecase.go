// Package analytics contiene los casos de uso del Dashboard y del resumen
// financiero.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

// DashboardUseCase arma los contadores y totales de la pantalla inicial.
type DashboardUseCase struct {
	clients      repository.ClientRepository
	products     repository.ProductRepository
	services     repository.ServiceRepository
	orders       repository.OrderRepository
	transactions repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	clients repository.ClientRepository,
	products repository.ProductRepository,
	services repository.ServiceRepository,
	orders repository.OrderRepository,
	transactions repository.TransactionRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clients:      clients,
		products:     products,
		services:     services,
		orders:       orders,
		transactions: transactions,
	}
}

// GetStats requiere view sobre dashboard.
//
// Cinco consultas en paralelo: conteo de clientes, productos, servicios y
// órdenes, más el libro de transacciones para receita/despesa. La primera
// que falla cancela el resto.
func (uc *DashboardUseCase) GetStats(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error) {
	if !permission.Can(actor, entity.ModuleDashboard, permission.ActionView) {
		return nil, domain.ErrForbidden
	}

	var (
		out = &dto.DashboardResponse{}
		txs []*entity.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Clients, err = uc.clients.Count(gctx)
		return wrap("clientes", err)
	})
	g.Go(func() (err error) {
		out.Products, err = uc.products.Count(gctx)
		return wrap("productos", err)
	})
	g.Go(func() (err error) {
		out.Services, err = uc.services.Count(gctx)
		return wrap("servicios", err)
	})
	g.Go(func() (err error) {
		out.Orders, err = uc.orders.Count(gctx)
		return wrap("órdenes", err)
	})
	g.Go(func() (err error) {
		txs, err = uc.transactions.GetAll(gctx)
		return wrap("transacciones", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// En el dashboard todo lo que no es receita cuenta como despesa.
	revenue, expenses := money.Zero(), money.Zero()
	for _, t := range txs {
		if t.Kind == entity.TransactionIncome {
			revenue = revenue.Add(t.Amount)
		} else {
			expenses = expenses.Add(t.Amount)
		}
	}
	out.Revenue, out.Expenses = revenue, expenses
	out.RevenueText, out.ExpensesText = money.Format(revenue), money.Format(expenses)
	return out, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}
