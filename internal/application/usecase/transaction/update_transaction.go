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

// UpdateTransactionInput represents a partial transaction update. Nil fields
// keep their stored values. ClearCategory uncategorizes the transaction and
// takes precedence over CategoryID.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	ClearCategory bool
	Amount        *decimal.Decimal
	Date          *time.Time
	Description   *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
	Balances    *BalanceSnapshots
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(uow adapter.UnitOfWork) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{uow: uow}
}

// Execute applies the patch atomically. Balances are reconciled by diffing the
// stored transaction against the merged one, so only the fields that actually
// changed produce deltas. On any rejection nothing is modified.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.Date != nil && input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	if input.Description != nil && len(*input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	var output *UpdateTransactionOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		txn, err := repos.Transactions.FindByIDAndUserForUpdate(ctx, input.TransactionID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrTransactionNotFound) {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeTransactionNotFound,
					"transaction not found",
					domainerror.ErrTransactionNotFound,
				)
			}
			return fmt.Errorf("failed to find transaction: %w", err)
		}

		prev := ledger.Version{
			AccountID:  txn.AccountID,
			CategoryID: txn.CategoryID,
			Amount:     txn.Amount,
			Month:      entity.MonthOf(txn.Date),
		}

		merged := mergePatch(txn, input)
		next := ledger.Version{
			AccountID:  merged.AccountID,
			CategoryID: merged.CategoryID,
			Amount:     merged.Amount,
			Month:      entity.MonthOf(merged.Date),
		}

		// Availability is validated against the merged state before anything
		// else: the spend already attributed to the target category by this
		// transaction's stored version does not count against it twice.
		newSpend := ledger.SpendContribution(next.CategoryID, next.Amount)
		if next.CategoryID != nil {
			category, err := repos.Categories.FindByIDAndUserForUpdate(ctx, *next.CategoryID, input.UserID)
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
			if newSpend.IsPositive() {
				replaced := ledger.SpendBeingReplaced(prev, next)
				if err := ledger.CheckSpend(category, newSpend, replaced); err != nil {
					return domainerror.NewTransactionError(
						domainerror.ErrCodeTxnOverextended,
						"spend exceeds category availability",
						err,
					)
				}
			}
		}

		if next.AccountID != prev.AccountID {
			if _, err := repos.Accounts.FindByIDAndUser(ctx, next.AccountID, input.UserID); err != nil {
				if errors.Is(err, domainerror.ErrAccountNotFound) {
					return domainerror.NewTransactionError(
						domainerror.ErrCodeTxnAccountNotFound,
						"account not found",
						domainerror.ErrAccountNotFound,
					)
				}
				return fmt.Errorf("failed to find account: %w", err)
			}
		}

		if err := repos.Transactions.Update(ctx, merged); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		snapshots, err := applyPlan(ctx, repos, input.UserID, ledger.PatchPlan(prev, next))
		if err != nil {
			return err
		}

		output = &UpdateTransactionOutput{
			Transaction: transactionToOutput(merged),
			Balances:    snapshots,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}

// mergePatch overlays the provided fields onto the stored transaction.
func mergePatch(txn *entity.Transaction, input UpdateTransactionInput) *entity.Transaction {
	merged := *txn
	if input.AccountID != nil {
		merged.AccountID = *input.AccountID
	}
	if input.ClearCategory {
		merged.CategoryID = nil
	} else if input.CategoryID != nil {
		merged.CategoryID = input.CategoryID
	}
	if input.Amount != nil {
		merged.Amount = *input.Amount
	}
	if input.Date != nil {
		merged.Date = *input.Date
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	merged.UpdatedAt = time.Now()
	return &merged
}
