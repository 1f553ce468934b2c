package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/api/metrics"
	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
	"github.com/novafin/finance-system/internal/core/stats"
)

// TransactionHandler handles HTTP requests for ledger operations.
type TransactionHandler struct {
	ledger ports.LedgerService
}

func NewTransactionHandler(ledger ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// List handles GET /v1/transactions with the history view's filters. The
// response carries the filtered items plus the totals of that filtered subset.
//
// @Summary      List the session user's transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        tipo       query     string  false  "ingreso or gasto"
// @Param        categoria  query     string  false  "exact category name"
// @Param        search     query     string  false  "substring match on category or description"
// @Param        date_from  query     string  false  "inclusive lower bound (2006-01-02)"
// @Param        date_to    query     string  false  "inclusive upper bound (2006-01-02)"
// @Param        sort_by    query     string  false  "fecha-desc (default), fecha-asc, monto-desc, monto-asc"
// @Success      200        {object}  listTransactionsResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Router       /v1/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var q listTransactionsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}

	filter := stats.Filter{
		Type:     domain.TransactionType(q.Type),
		Category: q.Category,
		Search:   q.Search,
		SortBy:   stats.SortKey(q.SortBy),
	}
	if q.DateFrom != "" {
		if filter.DateFrom, err = parseDate(q.DateFrom); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
	}
	if q.DateTo != "" {
		if filter.DateTo, err = parseDate(q.DateTo); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
	}

	txns, err := h.ledger.ListForSession(c.Request().Context(), session)
	if err != nil {
		return err
	}

	items := stats.FilterSort(txns, filter)
	return c.JSON(http.StatusOK, listTransactionsResponse{
		Items:  items,
		Totals: stats.Balance(items),
		Count:  len(items),
	})
}

// Record handles POST /v1/transactions.
//
// @Summary      Record a new transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordTransactionRequest  true  "Transaction details"
// @Success      201   {object}  recordTransactionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/transactions [post]
func (h *TransactionHandler) Record(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req recordTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.RecordTransactionInput{
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != "" {
		if input.Date, err = parseDate(req.Date); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
	}

	tx, err := h.ledger.Record(c.Request().Context(), session, input)
	if err != nil {
		return err
	}

	metrics.TransactionsRecordedTotal.WithLabelValues(string(tx.Type)).Inc()
	return c.JSON(http.StatusCreated, recordTransactionResponse{Transaction: *tx})
}

// Delete handles DELETE /v1/transactions/:id. Deleting an id that does not
// exist still returns 204, matching the ledger's idempotent delete.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Security     BearerAuth
// @Param        id   path      string  true  "Transaction id"
// @Success      204  "deleted or already absent"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.ledger.Delete(c.Request().Context(), session, c.Param("id")); err != nil {
		return err
	}

	metrics.TransactionsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
