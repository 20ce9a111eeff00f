// Package budget contains budget period and allocation use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// EnsurePeriod returns the budget period for (user, month), creating it lazily
// on first use. A new period is seeded with the most recent earlier period's
// unassigned pool as carryover, so months with no activity do not strand the
// pool. The returned row is locked for the remainder of the enclosing unit
// of work.
func EnsurePeriod(ctx context.Context, repos adapter.Repositories, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	period, err := repos.BudgetPeriods.FindByUserAndMonthForUpdate(ctx, userID, month)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, domainerror.ErrBudgetPeriodNotFound) {
		return nil, fmt.Errorf("failed to find budget period: %w", err)
	}

	carryover := decimal.Zero
	previous, err := repos.BudgetPeriods.FindLatestBeforeMonth(ctx, userID, month)
	if err == nil {
		carryover = previous.AvailableToBudget
	} else if !errors.Is(err, domainerror.ErrBudgetPeriodNotFound) {
		return nil, fmt.Errorf("failed to find previous budget period: %w", err)
	}

	period = entity.NewBudgetPeriod(userID, month, carryover)
	if err := repos.BudgetPeriods.Create(ctx, period); err != nil {
		return nil, fmt.Errorf("failed to create budget period: %w", err)
	}
	return period, nil
}
