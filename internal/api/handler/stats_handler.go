package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
	"github.com/novafin/finance-system/internal/core/stats"
)

// StatsHandler serves the derived views. It loads the session user's
// transactions once per request and hands the slice to the pure aggregation
// functions; nothing here is cached.
type StatsHandler struct {
	ledger ports.LedgerService
}

func NewStatsHandler(ledger ports.LedgerService) *StatsHandler {
	return &StatsHandler{ledger: ledger}
}

// Balance handles GET /v1/balance.
//
// @Summary      Current balance
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  stats.BalanceSummary
// @Failure      401  {object}  map[string]string
// @Router       /v1/balance [get]
func (h *StatsHandler) Balance(c echo.Context) error {
	txns, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats.Balance(txns))
}

// Summary handles GET /v1/statistics.
//
// @Summary      Statistics roll-up
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  stats.Summary
// @Failure      401  {object}  map[string]string
// @Router       /v1/statistics [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	txns, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats.Summarize(txns, time.Now().UTC()))
}

// CategoryBreakdown handles GET /v1/statistics/categories?tipo=gasto.
//
// @Summary      Per-category breakdown
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        tipo  query     string  false  "ingreso or gasto (default gasto)"
// @Success      200   {array}   stats.CategoryShare
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/statistics/categories [get]
func (h *StatsHandler) CategoryBreakdown(c echo.Context) error {
	tipo := domain.TransactionType(c.QueryParam("tipo"))
	if tipo == "" {
		tipo = domain.TypeExpense
	}
	if tipo != domain.TypeExpense && tipo != domain.TypeIncome {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "tipo must be ingreso or gasto"})
	}

	txns, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats.CategoryBreakdown(txns, tipo))
}

// MonthlyEvolution handles GET /v1/statistics/monthly.
//
// @Summary      Income vs expense per calendar month
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   stats.MonthlyPoint
// @Failure      401  {object}  map[string]string
// @Router       /v1/statistics/monthly [get]
func (h *StatsHandler) MonthlyEvolution(c echo.Context) error {
	txns, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats.MonthlyEvolution(txns))
}

func (h *StatsHandler) load(c echo.Context) ([]domain.Transaction, error) {
	session, err := ctxSession(c)
	if err != nil {
		return nil, err
	}
	return h.ledger.ListForSession(c.Request().Context(), session)
}
