package handler

import (
	"fmt"
	"time"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/stats"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// recordTransactionRequest carries a new transaction. The domain rules the
// core deliberately leaves to the form layer are enforced here: monto must be
// positive and tipo must be one of the two known kinds.
type recordTransactionRequest struct {
	Type        string  `json:"tipo"        validate:"required,oneof=ingreso gasto"`
	Amount      float64 `json:"monto"       validate:"required,gt=0"`
	Category    string  `json:"categoria"   validate:"required"`
	Description string  `json:"descripcion"`
	// Date is optional; accepts 2006-01-02 or RFC3339. Empty means now.
	Date string `json:"fecha"`
}

// listTransactionsQuery mirrors the history view's filter controls.
type listTransactionsQuery struct {
	Type     string `query:"tipo"`
	Category string `query:"categoria"`
	Search   string `query:"search"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
	SortBy   string `query:"sort_by"`
}

type listTransactionsResponse struct {
	Items  []domain.Transaction `json:"items"`
	Totals stats.BalanceSummary `json:"totales"`
	Count  int                  `json:"count"`
}

type recordTransactionResponse struct {
	Transaction domain.Transaction `json:"transaction"`
}

// parseDate accepts a bare calendar date or a full RFC3339 instant.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want 2006-01-02 or RFC3339", s)
}
