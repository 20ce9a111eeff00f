// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepository adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepository adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepository: accountRepository}
}

// Execute performs the account creation. New accounts start with a zero
// balance; money enters through transactions.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountName,
			"account name is required",
			nil,
		)
	}
	if len(name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}

	exists, err := uc.accountRepository.ExistsByNameAndUser(ctx, name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameExists,
			"an account with this name already exists",
			domainerror.ErrAccountNameExists,
		)
	}

	account := entity.NewAccount(input.UserID, name)
	if err := uc.accountRepository.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
