// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction
// creation. A positive amount is an outflow, a negative amount is an inflow.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required"`
	CategoryID  *string `json:"category_id,omitempty"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. Omitted fields keep their stored values.
type UpdateTransactionRequest struct {
	AccountID     *string  `json:"account_id,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountBalanceResponse represents an account balance after a ledger operation.
type AccountBalanceResponse struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
}

// CategoryBalanceResponse represents a category's state after a ledger operation.
type CategoryBalanceResponse struct {
	ID        string `json:"id"`
	Assigned  string `json:"assigned"`
	Spent     string `json:"spent"`
	Available string `json:"available"`
}

// PeriodBalanceResponse represents a budget period's pool after a ledger operation.
type PeriodBalanceResponse struct {
	ID                string `json:"id"`
	Month             string `json:"month"`
	AvailableToBudget string `json:"available_to_budget"`
}

// BalancesResponse collects the balances touched by one ledger operation.
type BalancesResponse struct {
	Accounts   []AccountBalanceResponse  `json:"accounts"`
	Categories []CategoryBalanceResponse `json:"categories"`
	Periods    []PeriodBalanceResponse   `json:"periods"`
}

// TransactionMutationResponse represents the response for a transaction write.
type TransactionMutationResponse struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Balances    BalancesResponse     `json:"balances"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		AccountID:   txn.AccountID.String(),
		Amount:      txn.Amount.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if txn.CategoryID != nil {
		id := txn.CategoryID.String()
		response.CategoryID = &id
	}
	return response
}

// ToBalancesResponse converts BalanceSnapshots to a BalancesResponse DTO.
func ToBalancesResponse(balances *transaction.BalanceSnapshots) BalancesResponse {
	response := BalancesResponse{
		Accounts:   make([]AccountBalanceResponse, 0, len(balances.Accounts)),
		Categories: make([]CategoryBalanceResponse, 0, len(balances.Categories)),
		Periods:    make([]PeriodBalanceResponse, 0, len(balances.Periods)),
	}
	for _, a := range balances.Accounts {
		response.Accounts = append(response.Accounts, AccountBalanceResponse{
			ID:      a.ID.String(),
			Balance: a.Balance.String(),
		})
	}
	for _, c := range balances.Categories {
		response.Categories = append(response.Categories, CategoryBalanceResponse{
			ID:        c.ID.String(),
			Assigned:  c.Assigned.String(),
			Spent:     c.Spent.String(),
			Available: c.Available.String(),
		})
	}
	for _, p := range balances.Periods {
		response.Periods = append(response.Periods, PeriodBalanceResponse{
			ID:                p.ID.String(),
			Month:             p.Month,
			AvailableToBudget: p.AvailableToBudget.String(),
		})
	}
	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
