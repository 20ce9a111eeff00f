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
	"github.com/budgetbook/backend/internal/domain/ledger"
)

// AssignMoneyInput represents the input for assigning money to a category.
// Amount is additive: it moves that much from the month's unassigned pool
// into the category on top of what is already assigned.
type AssignMoneyInput struct {
	UserID     uuid.UUID
	Month      string
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// AssignMoneyOutput represents the state after an assignment.
type AssignMoneyOutput struct {
	CategoryID        uuid.UUID
	Assigned          decimal.Decimal
	Available         decimal.Decimal
	AvailableToBudget decimal.Decimal
}

// AssignMoneyUseCase handles moving money from the unassigned pool into a category.
type AssignMoneyUseCase struct {
	uow adapter.UnitOfWork
}

// NewAssignMoneyUseCase creates a new AssignMoneyUseCase instance.
func NewAssignMoneyUseCase(uow adapter.UnitOfWork) *AssignMoneyUseCase {
	return &AssignMoneyUseCase{uow: uow}
}

// Execute performs the assignment atomically: the category's assigned amount
// and the period's unassigned pool move together or not at all.
func (uc *AssignMoneyUseCase) Execute(ctx context.Context, input AssignMoneyInput) (*AssignMoneyOutput, error) {
	if !entity.ValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAssignmentAmount,
			"assignment amount must not be negative",
			domainerror.ErrInvalidAssignmentAmount,
		)
	}

	var output *AssignMoneyOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		period, err := EnsurePeriod(ctx, repos, input.UserID, input.Month)
		if err != nil {
			return err
		}

		category, err := repos.Categories.FindByIDAndUserForUpdate(ctx, input.CategoryID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFound,
				)
			}
			return fmt.Errorf("failed to find category: %w", err)
		}
		if category.PeriodID != period.ID {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category does not belong to this month",
				domainerror.ErrCategoryNotFound,
			)
		}

		result, err := ledger.Assign(period.AvailableToBudget, category.Assigned, input.Amount)
		if err != nil {
			if errors.Is(err, domainerror.ErrInsufficientFunds) {
				return domainerror.NewBudgetError(
					domainerror.ErrCodeInsufficientFunds,
					"assignment exceeds available to budget",
					err,
				)
			}
			return err
		}

		if err := repos.Categories.UpdateAssigned(ctx, category.ID, result.Assigned); err != nil {
			return fmt.Errorf("failed to update category assignment: %w", err)
		}
		if err := repos.BudgetPeriods.UpdateAvailableToBudget(ctx, period.ID, result.AvailableToBudget); err != nil {
			return fmt.Errorf("failed to update budget pool: %w", err)
		}

		output = &AssignMoneyOutput{
			CategoryID:        category.ID,
			Assigned:          result.Assigned,
			Available:         result.Assigned.Sub(category.Spent),
			AvailableToBudget: result.AvailableToBudget,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
