package transaction

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/budget"
	"github.com/budgetbook/backend/internal/domain/ledger"
)

// applyPlan applies a precomputed mutation plan inside the caller's unit of
// work and returns the derived balances it touched.
//
// Rows of each kind are written in ascending identity order (accounts and
// categories by UUID string, periods by month key) so concurrent units that
// touch overlapping rows acquire their write locks in the same sequence and
// cannot deadlock.
func applyPlan(ctx context.Context, repos adapter.Repositories, userID uuid.UUID, plan ledger.MutationPlan) (*BalanceSnapshots, error) {
	snapshots := &BalanceSnapshots{}

	accountDeltas := append([]ledger.AccountDelta(nil), plan.AccountDeltas...)
	sort.Slice(accountDeltas, func(i, j int) bool {
		return accountDeltas[i].AccountID.String() < accountDeltas[j].AccountID.String()
	})
	for _, d := range accountDeltas {
		if err := repos.Accounts.AddToBalance(ctx, d.AccountID, d.Delta); err != nil {
			return nil, fmt.Errorf("failed to adjust account balance: %w", err)
		}
		account, err := repos.Accounts.FindByIDAndUser(ctx, d.AccountID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload account: %w", err)
		}
		snapshots.Accounts = append(snapshots.Accounts, AccountSnapshot{
			ID:      account.ID,
			Balance: account.Balance,
		})
	}

	categoryDeltas := append([]ledger.CategoryDelta(nil), plan.CategoryDeltas...)
	sort.Slice(categoryDeltas, func(i, j int) bool {
		return categoryDeltas[i].CategoryID.String() < categoryDeltas[j].CategoryID.String()
	})
	for _, d := range categoryDeltas {
		if err := repos.Categories.AddToSpent(ctx, d.CategoryID, d.Delta); err != nil {
			return nil, fmt.Errorf("failed to adjust category spend: %w", err)
		}
		category, err := repos.Categories.FindByIDAndUser(ctx, d.CategoryID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload category: %w", err)
		}
		snapshots.Categories = append(snapshots.Categories, CategorySnapshot{
			ID:        category.ID,
			Assigned:  category.Assigned,
			Spent:     category.Spent,
			Available: category.Available(),
		})
	}

	periodDeltas := append([]ledger.PeriodDelta(nil), plan.PeriodDeltas...)
	sort.Slice(periodDeltas, func(i, j int) bool {
		return periodDeltas[i].Month < periodDeltas[j].Month
	})
	for _, d := range periodDeltas {
		period, err := budget.EnsurePeriod(ctx, repos, userID, d.Month)
		if err != nil {
			return nil, err
		}
		if err := repos.BudgetPeriods.AddToAvailableToBudget(ctx, period.ID, d.Delta); err != nil {
			return nil, fmt.Errorf("failed to adjust budget pool: %w", err)
		}
		snapshots.Periods = append(snapshots.Periods, PeriodSnapshot{
			ID:                period.ID,
			Month:             period.Month,
			AvailableToBudget: period.AvailableToBudget.Add(d.Delta),
		})
	}

	return snapshots, nil
}
