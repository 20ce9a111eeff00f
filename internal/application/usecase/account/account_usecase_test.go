package account

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/test/integration/mock"
)

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with zero balance", func(t *testing.T) {
		store := mock.NewMemStore()
		uc := NewCreateAccountUseCase(store.Repos().Accounts)

		out, err := uc.Execute(ctx, CreateAccountInput{
			UserID: uuid.New(),
			Name:   "Checking",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Account.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", out.Account.Balance)
		}
		if len(store.Accounts) != 1 {
			t.Errorf("expected 1 stored account, got %d", len(store.Accounts))
		}
	})

	t.Run("rejects duplicate name for the same user", func(t *testing.T) {
		store := mock.NewMemStore()
		uc := NewCreateAccountUseCase(store.Repos().Accounts)
		userID := uuid.New()

		if _, err := uc.Execute(ctx, CreateAccountInput{UserID: userID, Name: "Checking"}); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := uc.Execute(ctx, CreateAccountInput{UserID: userID, Name: "Checking"})
		if !errors.Is(err, domainerror.ErrAccountNameExists) {
			t.Fatalf("expected ErrAccountNameExists, got %v", err)
		}
	})

	t.Run("same name is allowed for different users", func(t *testing.T) {
		store := mock.NewMemStore()
		uc := NewCreateAccountUseCase(store.Repos().Accounts)

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(ctx, CreateAccountInput{UserID: uuid.New(), Name: "Checking"}); err != nil {
				t.Fatalf("create %d failed: %v", i, err)
			}
		}
	})

	t.Run("rejects blank and oversized names", func(t *testing.T) {
		store := mock.NewMemStore()
		uc := NewCreateAccountUseCase(store.Repos().Accounts)

		if _, err := uc.Execute(ctx, CreateAccountInput{UserID: uuid.New(), Name: "  "}); err == nil {
			t.Error("expected error for blank name")
		}

		_, err := uc.Execute(ctx, CreateAccountInput{
			UserID: uuid.New(),
			Name:   strings.Repeat("x", MaxAccountNameLength+1),
		})
		if !errors.Is(err, domainerror.ErrAccountNameTooLong) {
			t.Fatalf("expected ErrAccountNameTooLong, got %v", err)
		}
	})
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("lists only the caller's accounts", func(t *testing.T) {
		store := mock.NewMemStore()
		userID := uuid.New()
		mine := entity.NewAccount(userID, "Checking")
		mine.Balance = decimal.NewFromInt(120)
		store.Accounts[mine.ID] = *mine
		theirs := entity.NewAccount(uuid.New(), "Savings")
		store.Accounts[theirs.ID] = *theirs

		uc := NewListAccountsUseCase(store.Repos().Accounts)
		out, err := uc.Execute(ctx, ListAccountsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Accounts) != 1 {
			t.Fatalf("expected 1 account, got %d", len(out.Accounts))
		}
		if !out.Accounts[0].Balance.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected balance 120, got %s", out.Accounts[0].Balance)
		}
	})
}
