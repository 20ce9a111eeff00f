package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(uow adapter.UnitOfWork) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{uow: uow}
}

// Execute deletes the category. A category still referenced by active
// transactions cannot be deleted; those transactions must be recategorized
// or removed first. Money assigned to the category returns to the period's
// unassigned pool.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	return uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
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

		count, err := repos.Transactions.CountByCategory(ctx, category.ID)
		if err != nil {
			return fmt.Errorf("failed to count category transactions: %w", err)
		}
		if count > 0 {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryInUse,
				fmt.Sprintf("category is referenced by %d transactions", count),
				domainerror.ErrCategoryInUse,
			)
		}

		if category.Assigned.IsPositive() {
			if err := repos.BudgetPeriods.AddToAvailableToBudget(ctx, category.PeriodID, category.Assigned); err != nil {
				return fmt.Errorf("failed to return assigned money to pool: %w", err)
			}
		}

		if err := repos.Categories.Delete(ctx, category.ID); err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}
