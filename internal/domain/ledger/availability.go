package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// CheckSpend decides whether a proposed spend against a category is permitted.
//
// spendBeingReplaced is the spend contribution of the transaction version
// being superseded: zero for a brand-new transaction, the prior contribution
// when amending a transaction that keeps the same category, and zero when the
// category changes (the new spend is evaluated fresh against the new category).
//
// Existing overspend already on the books is tolerated; only a positive spend
// that would push the category further past its available balance is rejected.
// Refunds and zero spends always pass.
func CheckSpend(category *entity.Category, proposedSpend, spendBeingReplaced decimal.Decimal) error {
	available := category.Assigned.Sub(category.Spent.Sub(spendBeingReplaced))
	if proposedSpend.IsPositive() && proposedSpend.GreaterThan(available) {
		return domainerror.ErrCategoryOverextended
	}
	return nil
}
