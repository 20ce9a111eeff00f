package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Version captures the balance-relevant fields of one transaction state.
// Patch reconciliation diffs the prior version against the merged next one.
type Version struct {
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Amount     decimal.Decimal
	Month      string // budget period month derived from the transaction date
}

// AccountDelta is a signed adjustment to one account's balance.
type AccountDelta struct {
	AccountID uuid.UUID
	Delta     decimal.Decimal
}

// CategoryDelta is a signed adjustment to one category's spent total.
type CategoryDelta struct {
	CategoryID uuid.UUID
	Delta      decimal.Decimal
}

// PeriodDelta is a signed adjustment to one budget period's unassigned pool.
type PeriodDelta struct {
	Month string
	Delta decimal.Decimal
}

// MutationPlan is the precomputed set of derived-balance adjustments for one
// ledger operation. The write phase applies the plan verbatim inside a single
// atomic unit of work; no balance decision is made after planning.
type MutationPlan struct {
	AccountDeltas  []AccountDelta
	CategoryDeltas []CategoryDelta
	PeriodDeltas   []PeriodDelta
}

// CreatePlan returns the plan for bringing a transaction into existence.
func CreatePlan(next Version) MutationPlan {
	var plan MutationPlan
	plan.addAccount(next.AccountID, AccountDeltaOnCreate(next.Amount))
	if spend := SpendContribution(next.CategoryID, next.Amount); spend.IsPositive() {
		plan.addCategory(*next.CategoryID, spend)
	}
	if income := IncomeContribution(next.CategoryID, next.Amount); income.IsPositive() {
		plan.addPeriod(next.Month, income)
	}
	return plan
}

// RemovePlan returns the plan for taking a transaction out of existence. It is
// the exact inverse of CreatePlan for the same version, so create followed by
// remove restores every derived balance.
func RemovePlan(prev Version) MutationPlan {
	var plan MutationPlan
	plan.addAccount(prev.AccountID, AccountDeltaOnRemove(prev.Amount))
	if spend := SpendContribution(prev.CategoryID, prev.Amount); spend.IsPositive() {
		plan.addCategory(*prev.CategoryID, spend.Neg())
	}
	if income := IncomeContribution(prev.CategoryID, prev.Amount); income.IsPositive() {
		plan.addPeriod(prev.Month, income.Neg())
	}
	return plan
}

// PatchPlan diffs the prior version against the merged next version and
// returns the net adjustments. When old and new touch the same row the plan
// carries a single net delta rather than two independent writes.
func PatchPlan(prev, next Version) MutationPlan {
	var plan MutationPlan

	if prev.AccountID == next.AccountID {
		plan.addAccount(prev.AccountID, prev.Amount.Sub(next.Amount))
	} else {
		plan.addAccount(prev.AccountID, AccountDeltaOnRemove(prev.Amount))
		plan.addAccount(next.AccountID, AccountDeltaOnCreate(next.Amount))
	}

	oldSpend := SpendContribution(prev.CategoryID, prev.Amount)
	newSpend := SpendContribution(next.CategoryID, next.Amount)
	if sameCategory(prev.CategoryID, next.CategoryID) {
		if prev.CategoryID != nil {
			plan.addCategory(*prev.CategoryID, newSpend.Sub(oldSpend))
		}
	} else {
		if prev.CategoryID != nil && oldSpend.IsPositive() {
			plan.addCategory(*prev.CategoryID, oldSpend.Neg())
		}
		if next.CategoryID != nil && newSpend.IsPositive() {
			plan.addCategory(*next.CategoryID, newSpend)
		}
	}

	oldIncome := IncomeContribution(prev.CategoryID, prev.Amount)
	newIncome := IncomeContribution(next.CategoryID, next.Amount)
	if prev.Month == next.Month {
		plan.addPeriod(prev.Month, newIncome.Sub(oldIncome))
	} else {
		if oldIncome.IsPositive() {
			plan.addPeriod(prev.Month, oldIncome.Neg())
		}
		if newIncome.IsPositive() {
			plan.addPeriod(next.Month, newIncome)
		}
	}

	return plan
}

// SpendBeingReplaced returns the prior spend contribution that availability
// validation credits back when amending a transaction. It is zero when the
// category changes: the old spend leaves the old category entirely and the
// new spend is evaluated fresh.
func SpendBeingReplaced(prev, next Version) decimal.Decimal {
	if sameCategory(prev.CategoryID, next.CategoryID) {
		return SpendContribution(prev.CategoryID, prev.Amount)
	}
	return decimal.Zero
}

func sameCategory(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (p *MutationPlan) addAccount(id uuid.UUID, delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}
	p.AccountDeltas = append(p.AccountDeltas, AccountDelta{AccountID: id, Delta: delta})
}

func (p *MutationPlan) addCategory(id uuid.UUID, delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}
	p.CategoryDeltas = append(p.CategoryDeltas, CategoryDelta{CategoryID: id, Delta: delta})
}

func (p *MutationPlan) addPeriod(month string, delta decimal.Decimal) {
	if delta.IsZero() {
		return
	}
	p.PeriodDeltas = append(p.PeriodDeltas, PeriodDelta{Month: month, Delta: delta})
}
