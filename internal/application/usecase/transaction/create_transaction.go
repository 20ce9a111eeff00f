// Package transaction contains the ledger use cases for monetary transactions.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/domain/ledger"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
// Amount follows the ledger sign convention: positive = outflow, negative = inflow.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	Balances    *BalanceSnapshots
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(uow adapter.UnitOfWork) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{uow: uow}
}

// Execute performs the transaction creation as one atomic unit: the new row,
// the account balance delta, the category spend increment and any budget pool
// credit commit together or not at all.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Date, input.Description); err != nil {
		return nil, err
	}

	var output *CreateTransactionOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		if _, err := repos.Accounts.FindByIDAndUser(ctx, input.AccountID, input.UserID); err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeTxnAccountNotFound,
					"account not found",
					domainerror.ErrAccountNotFound,
				)
			}
			return fmt.Errorf("failed to find account: %w", err)
		}

		spend := ledger.SpendContribution(input.CategoryID, input.Amount)
		if input.CategoryID != nil {
			category, err := repos.Categories.FindByIDAndUserForUpdate(ctx, *input.CategoryID, input.UserID)
			if err != nil {
				if errors.Is(err, domainerror.ErrCategoryNotFound) {
					return domainerror.NewTransactionError(
						domainerror.ErrCodeTxnCategoryNotFound,
						"category not found",
						domainerror.ErrCategoryNotFound,
					)
				}
				return fmt.Errorf("failed to find category: %w", err)
			}
			if spend.IsPositive() {
				if err := ledger.CheckSpend(category, spend, decimal.Zero); err != nil {
					return domainerror.NewTransactionError(
						domainerror.ErrCodeTxnOverextended,
						"spend exceeds category availability",
						err,
					)
				}
			}
		}

		txn := entity.NewTransaction(
			input.UserID,
			input.AccountID,
			input.CategoryID,
			input.Amount,
			input.Date,
			input.Description,
		)
		if err := repos.Transactions.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		plan := ledger.CreatePlan(ledger.Version{
			AccountID:  txn.AccountID,
			CategoryID: txn.CategoryID,
			Amount:     txn.Amount,
			Month:      entity.MonthOf(txn.Date),
		})
		snapshots, err := applyPlan(ctx, repos, input.UserID, plan)
		if err != nil {
			return err
		}

		output = &CreateTransactionOutput{
			Transaction: transactionToOutput(txn),
			Balances:    snapshots,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// validateTransactionFields checks the request fields shared by create and patch.
func validateTransactionFields(date time.Time, description string) error {
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}
