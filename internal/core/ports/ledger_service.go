package ports

import (
	"context"
	"time"

	"github.com/novafin/finance-system/internal/core/domain"
)

// RecordTransactionInput carries the caller-supplied fields of a new
// transaction. The ledger stamps id, owner and creation time itself; it does
// not validate Amount or Type here — by contract that is the form layer's job.
type RecordTransactionInput struct {
	Type        domain.TransactionType
	Amount      float64
	Category    string
	Description string
	// Date defaults to the current time when zero.
	Date time.Time
}

// LedgerService is CRUD over the shared transaction collection, scoped to the
// session passed explicitly into every call.
type LedgerService interface {
	// ListForSession returns the session user's transactions in storage order.
	// A nil session yields an empty list.
	ListForSession(ctx context.Context, session *domain.Session) ([]domain.Transaction, error)
	// Record appends a new transaction owned by the session user.
	Record(ctx context.Context, session *domain.Session, input RecordTransactionInput) (*domain.Transaction, error)
	// Delete removes the identified transaction. Deleting another user's
	// transaction fails with domain.ErrForbidden; deleting an absent id
	// succeeds silently.
	Delete(ctx context.Context, session *domain.Session, transactionID string) error
}
