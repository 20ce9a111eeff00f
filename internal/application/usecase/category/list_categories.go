package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing a month's categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Month  string
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	periodRepository   adapter.BudgetPeriodRepository
	categoryRepository adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	periodRepository adapter.BudgetPeriodRepository,
	categoryRepository adapter.CategoryRepository,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		periodRepository:   periodRepository,
		categoryRepository: categoryRepository,
	}
}

// Execute returns the categories of the month's budget period. A month with
// no period yet has no categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if !entity.ValidMonth(input.Month) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	period, err := uc.periodRepository.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetPeriodNotFound) {
			return &ListCategoriesOutput{Categories: []*entity.Category{}}, nil
		}
		return nil, fmt.Errorf("failed to find budget period: %w", err)
	}

	categories, err := uc.categoryRepository.FindByPeriod(ctx, period.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
