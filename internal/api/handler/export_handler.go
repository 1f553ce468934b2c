package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

// ExportHandler produces a one-document backup of the caller's data.
type ExportHandler struct {
	ledger   ports.LedgerService
	taxonomy ports.TaxonomyService
}

func NewExportHandler(ledger ports.LedgerService, taxonomy ports.TaxonomyService) *ExportHandler {
	return &ExportHandler{ledger: ledger, taxonomy: taxonomy}
}

type exportResponse struct {
	User         *domain.Session      `json:"user"`
	Transactions []domain.Transaction `json:"transactions"`
	Categories   domain.Taxonomy      `json:"categories"`
	ExportDate   time.Time            `json:"exportDate"`
}

// Export handles GET /v1/export. The snapshot is scoped to the caller: their
// profile, transactions and taxonomy, never other users' data.
//
// @Summary      Export a backup of the session user's data
// @Tags         export
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  exportResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/export [get]
func (h *ExportHandler) Export(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	txns, err := h.ledger.ListForSession(ctx, session)
	if err != nil {
		return err
	}
	taxonomy, err := h.taxonomy.CategoriesFor(ctx, session)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="novafin-backup.json"`)
	return c.JSON(http.StatusOK, exportResponse{
		User:         session,
		Transactions: txns,
		Categories:   taxonomy,
		ExportDate:   time.Now().UTC(),
	})
}
