package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

type dashboardService interface {
	GetStats(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error)
}

type financeService interface {
	Summary(ctx context.Context, actor entity.Actor) (*dto.FinanceSummaryResponse, error)
}

// DashboardHandler maneja el tablero y el resumen financiero.
type DashboardHandler struct {
	dashboard dashboardService
	finance   financeService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard dashboardService, finance financeService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, finance: finance}
}

// GetStats devuelve los conteos del tablero y receita/despesa totales.
// GET /api/dashboard
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.dashboard.GetStats(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FinanceSummary devuelve entradas, salidas y saldo del libro de transacciones.
// GET /api/finance/summary
func (h *DashboardHandler) FinanceSummary(c *fiber.Ctx) error {
	out, err := h.finance.Summary(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
