package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/novafin/finance-system/internal/api/middleware"
	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

type stubLedgerService struct {
	listFn   func(ctx context.Context, session *domain.Session) ([]domain.Transaction, error)
	recordFn func(ctx context.Context, session *domain.Session, input ports.RecordTransactionInput) (*domain.Transaction, error)
	deleteFn func(ctx context.Context, session *domain.Session, id string) error
}

func (s *stubLedgerService) ListForSession(ctx context.Context, session *domain.Session) ([]domain.Transaction, error) {
	return s.listFn(ctx, session)
}

func (s *stubLedgerService) Record(ctx context.Context, session *domain.Session, input ports.RecordTransactionInput) (*domain.Transaction, error) {
	return s.recordFn(ctx, session, input)
}

func (s *stubLedgerService) Delete(ctx context.Context, session *domain.Session, id string) error {
	return s.deleteFn(ctx, session, id)
}

func withSession(c echo.Context) echo.Context {
	c.Set(middleware.SessionKey, &domain.Session{ID: "u1", Name: "Ana"})
	return c
}

func TestTransactionHandler_List_FiltersAndTotals(t *testing.T) {
	stub := &stubLedgerService{
		listFn: func(_ context.Context, session *domain.Session) ([]domain.Transaction, error) {
			if session.ID != "u1" {
				t.Fatalf("expected session u1, got %s", session.ID)
			}
			return []domain.Transaction{
				{ID: "1", UserID: "u1", Type: domain.TypeExpense, Amount: 100, Category: "Otros", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
				{ID: "2", UserID: "u1", Type: domain.TypeIncome, Amount: 500, Category: "Salario", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	handler := NewTransactionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/transactions?tipo=ingreso", "")
	withSession(c)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Items  []domain.Transaction `json:"items"`
		Totals struct {
			Incomes float64 `json:"ingresos"`
			Gastos  float64 `json:"gastos"`
		} `json:"totales"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 1 || len(resp.Items) != 1 || resp.Items[0].ID != "2" {
		t.Fatalf("expected only the income record, got %+v", resp)
	}
	if resp.Totals.Incomes != 500 || resp.Totals.Gastos != 0 {
		t.Fatalf("totals must cover the filtered subset: %+v", resp.Totals)
	}
}

func TestTransactionHandler_List_BadDate(t *testing.T) {
	stub := &stubLedgerService{
		listFn: func(context.Context, *domain.Session) ([]domain.Transaction, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTransactionHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/transactions?date_from=notadate", "")
	withSession(c)

	_ = handler.List(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Record_Success(t *testing.T) {
	stub := &stubLedgerService{
		recordFn: func(_ context.Context, session *domain.Session, input ports.RecordTransactionInput) (*domain.Transaction, error) {
			if input.Type != domain.TypeExpense || input.Amount != 50000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Transaction{ID: "t1", UserID: session.ID, Type: input.Type, Amount: input.Amount, Category: input.Category}, nil
		},
	}
	handler := NewTransactionHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/transactions",
		`{"tipo":"gasto","monto":50000,"categoria":"Alimentación","fecha":"2024-01-10"}`)
	withSession(c)

	if err := handler.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTransactionHandler_Record_RejectsInvalidAmount(t *testing.T) {
	stub := &stubLedgerService{
		recordFn: func(context.Context, *domain.Session, ports.RecordTransactionInput) (*domain.Transaction, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTransactionHandler(stub)

	for _, body := range []string{
		`{"tipo":"gasto","monto":0,"categoria":"Otros"}`,
		`{"tipo":"gasto","monto":-5,"categoria":"Otros"}`,
		`{"tipo":"prestamo","monto":10,"categoria":"Otros"}`,
	} {
		c, rec := newTestContext(t, http.MethodPost, "/v1/transactions", body)
		withSession(c)

		_ = handler.Record(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestTransactionHandler_Delete_Forbidden(t *testing.T) {
	stub := &stubLedgerService{
		deleteFn: func(context.Context, *domain.Session, string) error {
			return domain.ErrForbidden
		},
	}
	handler := NewTransactionHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/v1/transactions/t1", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	withSession(c)

	err := handler.Delete(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to bubble up, got %v", err)
	}
}

func TestTransactionHandler_Delete_Success(t *testing.T) {
	var deletedID string
	stub := &stubLedgerService{
		deleteFn: func(_ context.Context, _ *domain.Session, id string) error {
			deletedID = id
			return nil
		},
	}
	handler := NewTransactionHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/transactions/t1", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	withSession(c)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deletedID != "t1" {
		t.Fatalf("expected delete of t1, got %q", deletedID)
	}
}

func TestTransactionHandler_MissingSession(t *testing.T) {
	handler := NewTransactionHandler(&stubLedgerService{})

	c, _ := newTestContext(t, http.MethodGet, "/v1/transactions", "")

	err := handler.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %v", err)
	}
}
