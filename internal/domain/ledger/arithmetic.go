// Package ledger implements the pure core of the ledger consistency engine:
// balance arithmetic, availability validation, assignment arithmetic and the
// mutation-plan diff step. Nothing in this package performs I/O.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendContribution returns the portion of a transaction that counts against
// a category's spend total. Only categorized outflows (positive amounts)
// contribute; categorized inflows are refunds that credit the account alone,
// and uncategorized transactions never touch category spend.
func SpendContribution(categoryID *uuid.UUID, amount decimal.Decimal) decimal.Decimal {
	if categoryID != nil && amount.IsPositive() {
		return amount
	}
	return decimal.Zero
}

// IncomeContribution returns the amount a transaction credits to its budget
// period's unassigned pool. Only uncategorized inflows (negative amounts
// without a category) fund the pool; categorized inflows act as refunds
// against the account alone.
func IncomeContribution(categoryID *uuid.UUID, amount decimal.Decimal) decimal.Decimal {
	if categoryID == nil && amount.IsNegative() {
		return amount.Neg()
	}
	return decimal.Zero
}

// AccountDeltaOnCreate returns the balance delta applied to an account when a
// transaction is created. Amounts are stored as the value subtracted from the
// account on creation and added back on removal.
func AccountDeltaOnCreate(amount decimal.Decimal) decimal.Decimal {
	return amount.Neg()
}

// AccountDeltaOnRemove returns the balance delta applied to an account when a
// transaction is removed.
func AccountDeltaOnRemove(amount decimal.Decimal) decimal.Decimal {
	return amount
}
