package domain

import (
	"errors"
	"time"
)

// TransactionType distinguishes income from expense records.
type TransactionType string

const (
	TypeIncome  TransactionType = "ingreso"
	TypeExpense TransactionType = "gasto"
)

var ErrForbidden = errors.New("transaction belongs to another user")

// Transaction is a single financial record. All users share one physical
// collection; UserID is the logical partition key and is immutable after
// creation. Category is a free string, deliberately not validated against the
// taxonomy, so a renamed or deleted category leaves old records untouched.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        TransactionType `json:"tipo"`
	Amount      float64         `json:"monto"`
	Category    string          `json:"categoria"`
	Description string          `json:"descripcion,omitempty"`
	Date        time.Time       `json:"fecha"`
	CreatedAt   time.Time       `json:"createdAt"`
}
