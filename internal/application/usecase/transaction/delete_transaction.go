package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/domain/ledger"
)

// DeleteTransactionInput represents the input for transaction removal.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput carries the balances restored by the removal.
type DeleteTransactionOutput struct {
	Balances *BalanceSnapshots
}

// DeleteTransactionUseCase handles transaction removal logic.
type DeleteTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(uow adapter.UnitOfWork) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{uow: uow}
}

// Execute removes the transaction and reverses its balance effects exactly,
// regardless of the current state of the touched balances. Removing an
// already removed transaction reports not found.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	var output *DeleteTransactionOutput
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

		if err := repos.Transactions.Delete(ctx, txn.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		plan := ledger.RemovePlan(ledger.Version{
			AccountID:  txn.AccountID,
			CategoryID: txn.CategoryID,
			Amount:     txn.Amount,
			Month:      entity.MonthOf(txn.Date),
		})
		snapshots, err := applyPlan(ctx, repos, input.UserID, plan)
		if err != nil {
			return err
		}

		output = &DeleteTransactionOutput{Balances: snapshots}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return output, nil
}
