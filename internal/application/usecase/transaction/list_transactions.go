package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
)

// ListTransactionsInput represents the filter and pagination for listing.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

// ListTransactionsOutput represents a page of transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepository adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepository: transactionRepository}
}

// Execute returns the user's transactions matching the filter, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := uc.transactionRepository.FindByFilter(ctx,
		adapter.TransactionFilter{
			UserID:     input.UserID,
			AccountID:  input.AccountID,
			CategoryID: input.CategoryID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
		},
		adapter.TransactionPagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, 0, len(result.Transactions))
	for _, txn := range result.Transactions {
		outputs = append(outputs, transactionToOutput(txn))
	}

	return &ListTransactionsOutput{
		Transactions: outputs,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
	}, nil
}
