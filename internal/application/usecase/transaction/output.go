// Package transaction contains the ledger use cases for monetary transactions.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// TransactionOutput represents a transaction returned by a use case.
type TransactionOutput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AccountSnapshot is an account's balance after a ledger operation.
type AccountSnapshot struct {
	ID      uuid.UUID
	Balance decimal.Decimal
}

// CategorySnapshot is a category's derived state after a ledger operation.
type CategorySnapshot struct {
	ID        uuid.UUID
	Assigned  decimal.Decimal
	Spent     decimal.Decimal
	Available decimal.Decimal
}

// PeriodSnapshot is a budget period's pool state after a ledger operation.
type PeriodSnapshot struct {
	ID                uuid.UUID
	Month             string
	AvailableToBudget decimal.Decimal
}

// BalanceSnapshots collects the derived balances touched by one operation.
type BalanceSnapshots struct {
	Accounts   []AccountSnapshot
	Categories []CategorySnapshot
	Periods    []PeriodSnapshot
}

func transactionToOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:          t.ID,
		UserID:      t.UserID,
		AccountID:   t.AccountID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
