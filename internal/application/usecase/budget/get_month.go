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

// CategoryBudgetView is one category's budget state within a month.
type CategoryBudgetView struct {
	ID        uuid.UUID
	Name      string
	Assigned  decimal.Decimal
	Spent     decimal.Decimal
	Available decimal.Decimal
}

// GetMonthInput represents the input for reading a month's budget.
type GetMonthInput struct {
	UserID uuid.UUID
	Month  string
}

// GetMonthOutput represents a month's budget snapshot. For a month that has
// no period yet, the snapshot is virtual: the pool shows what would carry over
// from the previous month and the category list is empty.
type GetMonthOutput struct {
	Month                 string
	AvailableToBudget     decimal.Decimal
	CarryoverFromPrevious decimal.Decimal
	TotalAssigned         decimal.Decimal
	TotalSpent            decimal.Decimal
	Categories            []CategoryBudgetView
}

// GetMonthUseCase handles reading a month's budget snapshot.
type GetMonthUseCase struct {
	periodRepository   adapter.BudgetPeriodRepository
	categoryRepository adapter.CategoryRepository
}

// NewGetMonthUseCase creates a new GetMonthUseCase instance.
func NewGetMonthUseCase(
	periodRepository adapter.BudgetPeriodRepository,
	categoryRepository adapter.CategoryRepository,
) *GetMonthUseCase {
	return &GetMonthUseCase{
		periodRepository:   periodRepository,
		categoryRepository: categoryRepository,
	}
}

// Execute returns the budget snapshot for (user, month). Reading never
// creates a period; that happens lazily on the first write for the month.
func (uc *GetMonthUseCase) Execute(ctx context.Context, input GetMonthInput) (*GetMonthOutput, error) {
	if !entity.ValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}

	period, err := uc.periodRepository.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		if !errors.Is(err, domainerror.ErrBudgetPeriodNotFound) {
			return nil, fmt.Errorf("failed to find budget period: %w", err)
		}
		return uc.virtualMonth(ctx, input)
	}

	categories, err := uc.categoryRepository.FindByPeriod(ctx, period.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &GetMonthOutput{
		Month:                 period.Month,
		AvailableToBudget:     period.AvailableToBudget,
		CarryoverFromPrevious: period.CarryoverFromPrevious,
		TotalAssigned:         decimal.Zero,
		TotalSpent:            decimal.Zero,
		Categories:            make([]CategoryBudgetView, 0, len(categories)),
	}
	for _, c := range categories {
		output.TotalAssigned = output.TotalAssigned.Add(c.Assigned)
		output.TotalSpent = output.TotalSpent.Add(c.Spent)
		output.Categories = append(output.Categories, CategoryBudgetView{
			ID:        c.ID,
			Name:      c.Name,
			Assigned:  c.Assigned,
			Spent:     c.Spent,
			Available: c.Available(),
		})
	}
	return output, nil
}

func (uc *GetMonthUseCase) virtualMonth(ctx context.Context, input GetMonthInput) (*GetMonthOutput, error) {
	carryover := decimal.Zero
	previous, err := uc.periodRepository.FindLatestBeforeMonth(ctx, input.UserID, input.Month)
	if err == nil {
		carryover = previous.AvailableToBudget
	} else if !errors.Is(err, domainerror.ErrBudgetPeriodNotFound) {
		return nil, fmt.Errorf("failed to find previous budget period: %w", err)
	}

	return &GetMonthOutput{
		Month:                 input.Month,
		AvailableToBudget:     carryover,
		CarryoverFromPrevious: carryover,
		TotalAssigned:         decimal.Zero,
		TotalSpent:            decimal.Zero,
		Categories:            []CategoryBudgetView{},
	}, nil
}
