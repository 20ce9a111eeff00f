// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// BudgetPeriodRepository defines the interface for budget period persistence operations.
type BudgetPeriodRepository interface {
	// Create creates a new budget period in the database.
	Create(ctx context.Context, period *entity.BudgetPeriod) error

	// FindByID retrieves a budget period by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error)

	// FindByUserAndMonth retrieves the period for a (user, month) pair.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error)

	// FindByUserAndMonthForUpdate retrieves the period for a (user, month) pair
	// and locks its row for the remainder of the enclosing unit of work.
	FindByUserAndMonthForUpdate(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error)

	// FindLatestBeforeMonth retrieves the user's most recent period strictly
	// before the given month, skipping months with no activity.
	FindLatestBeforeMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error)

	// UpdateAvailableToBudget sets a period's unassigned pool to a new value.
	UpdateAvailableToBudget(ctx context.Context, id uuid.UUID, available decimal.Decimal) error

	// AddToAvailableToBudget adjusts a period's unassigned pool by a signed delta.
	AddToAvailableToBudget(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
