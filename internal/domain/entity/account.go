// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a cash account owned by a user.
//
// Balance is a derived value: it always equals the sum of the signed amounts
// of all active transactions referencing the account. Only the transaction
// ledger use cases may write to it.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity with a zero starting balance.
func NewAccount(userID uuid.UUID, name string) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
