package ledger

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// AssignResult is the outcome of an assignment computation.
type AssignResult struct {
	Assigned          decimal.Decimal // category's new assigned amount
	AvailableToBudget decimal.Decimal // period's new unassigned pool
}

// Assign computes the effect of moving requested money from a budget period's
// unassigned pool into a category's assigned bucket. Assignment is additive;
// negative requests are rejected, so assigned never decreases through this
// path and can never go negative.
func Assign(availableToBudget, assigned, requested decimal.Decimal) (AssignResult, error) {
	if requested.IsNegative() {
		return AssignResult{}, domainerror.ErrInvalidAssignmentAmount
	}
	if requested.GreaterThan(availableToBudget) {
		return AssignResult{}, domainerror.ErrInsufficientFunds
	}
	return AssignResult{
		Assigned:          assigned.Add(requested),
		AvailableToBudget: availableToBudget.Sub(requested),
	}, nil
}
