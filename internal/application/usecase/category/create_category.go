// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/application/usecase/budget"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID uuid.UUID
	Month  string
	Name   string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(uow adapter.UnitOfWork) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{uow: uow}
}

// Execute creates a category in the given month's budget period, creating the
// period itself if this is the first activity for that month.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			nil,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if !entity.ValidMonth(input.Month) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	var output *CreateCategoryOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		period, err := budget.EnsurePeriod(ctx, repos, input.UserID, input.Month)
		if err != nil {
			return err
		}

		exists, err := repos.Categories.ExistsByNameAndPeriod(ctx, name, period.ID)
		if err != nil {
			return fmt.Errorf("failed to check category name existence: %w", err)
		}
		if exists {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists for this month",
				domainerror.ErrCategoryNameExists,
			)
		}

		category := entity.NewCategory(input.UserID, period.ID, name)
		if err := repos.Categories.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		output = &CreateCategoryOutput{Category: category}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
