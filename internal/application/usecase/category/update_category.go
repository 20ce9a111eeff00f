package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for renaming a category.
type UpdateCategoryInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Name       string
}

// UpdateCategoryOutput represents the output of a category rename.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category rename logic.
type UpdateCategoryUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(uow adapter.UnitOfWork) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{uow: uow}
}

// Execute renames the category. The new name must be unique within the
// category's budget period.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
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

	var output *UpdateCategoryOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
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

		if name != category.Name {
			exists, err := repos.Categories.ExistsByNameAndPeriod(ctx, name, category.PeriodID)
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
			if err := repos.Categories.UpdateName(ctx, category.ID, name); err != nil {
				return fmt.Errorf("failed to rename category: %w", err)
			}
			category.Name = name
		}

		output = &UpdateCategoryOutput{Category: category}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
