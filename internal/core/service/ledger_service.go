package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

// LedgerService implements CRUD over the shared transaction collection. Every
// mutation reads the whole collection, transforms it in memory and writes it
// back; the single-writer model makes that sequence safe without locks.
type LedgerService struct {
	store ports.BlobStore
	log   zerolog.Logger
}

func NewLedgerService(store ports.BlobStore, log zerolog.Logger) *LedgerService {
	return &LedgerService{store: store, log: log}
}

// ListForSession returns the session user's transactions in storage order.
func (s *LedgerService) ListForSession(ctx context.Context, session *domain.Session) ([]domain.Transaction, error) {
	if session == nil {
		return []domain.Transaction{}, nil
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if t.UserID == session.ID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

// Record appends a new transaction stamped with a fresh id, the session's
// user id and the creation time. Amount and Type arrive pre-validated by the
// form layer; the ledger accepts them as given.
func (s *LedgerService) Record(ctx context.Context, session *domain.Session, input ports.RecordTransactionInput) (*domain.Transaction, error) {
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	tx := domain.Transaction{
		ID:          newID(),
		UserID:      session.ID,
		Type:        input.Type,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        date,
		CreatedAt:   now,
	}

	all = append(all, tx)
	if err := saveJSON(ctx, s.store, ports.KeyTransactions, all); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", tx.ID).
		Str("user_id", tx.UserID).
		Str("tipo", string(tx.Type)).
		Msg("transaction recorded")

	return &tx, nil
}

// Delete removes the identified transaction after an ownership check. An
// absent id is a silent success, so deletes are idempotent.
func (s *LedgerService) Delete(ctx context.Context, session *domain.Session, transactionID string) error {
	if session == nil {
		return domain.ErrUnauthenticated
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, t := range all {
		if t.ID == transactionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if all[idx].UserID != session.ID {
		return domain.ErrForbidden
	}

	remaining := append(all[:idx:idx], all[idx+1:]...)
	if err := saveJSON(ctx, s.store, ports.KeyTransactions, remaining); err != nil {
		return err
	}

	s.log.Info().Str("transaction_id", transactionID).Str("user_id", session.ID).Msg("transaction deleted")
	return nil
}

func (s *LedgerService) loadAll(ctx context.Context) ([]domain.Transaction, error) {
	var all []domain.Transaction
	if _, err := loadJSON(ctx, s.store, ports.KeyTransactions, &all); err != nil {
		return nil, err
	}
	return all, nil
}
