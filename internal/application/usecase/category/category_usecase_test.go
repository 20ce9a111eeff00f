package category

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/test/integration/mock"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category in existing period", func(t *testing.T) {
		store := mock.NewMemStore()
		userID := uuid.New()
		period := entity.NewBudgetPeriod(userID, "2024-11", decimal.Zero)
		store.Periods[period.ID] = *period

		uc := NewCreateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		out, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Month:  "2024-11",
			Name:   "Groceries",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.PeriodID != period.ID {
			t.Errorf("expected period %s, got %s", period.ID, out.Category.PeriodID)
		}
		if !out.Category.Assigned.IsZero() || !out.Category.Spent.IsZero() {
			t.Error("expected new category to start with zero assigned and spent")
		}
	})

	t.Run("creates the month's period on first category", func(t *testing.T) {
		store := mock.NewMemStore()
		userID := uuid.New()

		uc := NewCreateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Month:  "2024-11",
			Name:   "Rent",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.Periods) != 1 {
			t.Fatalf("expected period to be created, have %d", len(store.Periods))
		}
	})

	t.Run("rejects duplicate name within the month", func(t *testing.T) {
		store := mock.NewMemStore()
		userID := uuid.New()

		uc := NewCreateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		input := CreateCategoryInput{UserID: userID, Month: "2024-11", Name: "Groceries"}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Fatalf("expected ErrCategoryNameExists, got %v", err)
		}
	})

	t.Run("same name is allowed in a different month", func(t *testing.T) {
		store := mock.NewMemStore()
		userID := uuid.New()

		uc := NewCreateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		for _, month := range []string{"2024-11", "2024-12"} {
			if _, err := uc.Execute(ctx, CreateCategoryInput{
				UserID: userID,
				Month:  month,
				Name:   "Groceries",
			}); err != nil {
				t.Fatalf("create for %s failed: %v", month, err)
			}
		}
		if len(store.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(store.Categories))
		}
	})

	t.Run("rejects blank and oversized names", func(t *testing.T) {
		store := mock.NewMemStore()
		uc := NewCreateCategoryUseCase(&mock.MemUnitOfWork{Store: store})

		if _, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: uuid.New(),
			Month:  "2024-11",
			Name:   "   ",
		}); err == nil {
			t.Error("expected error for blank name")
		}

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: uuid.New(),
			Month:  "2024-11",
			Name:   strings.Repeat("x", MaxCategoryNameLength+1),
		})
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Fatalf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		store := mock.NewMemStore()
		uc := NewCreateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: uuid.New(),
			Month:  "2024",
			Name:   "Groceries",
		})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the month's categories", func(t *testing.T) {
		store := mock.NewMemStore()
		userID := uuid.New()
		period := entity.NewBudgetPeriod(userID, "2024-11", decimal.Zero)
		store.Periods[period.ID] = *period
		for _, name := range []string{"Groceries", "Rent"} {
			c := entity.NewCategory(userID, period.ID, name)
			store.Categories[c.ID] = *c
		}

		repos := store.Repos()
		uc := NewListCategoriesUseCase(repos.BudgetPeriods, repos.Categories)
		out, err := uc.Execute(ctx, ListCategoriesInput{UserID: userID, Month: "2024-11"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(out.Categories))
		}
	})

	t.Run("month without a period lists nothing", func(t *testing.T) {
		store := mock.NewMemStore()
		repos := store.Repos()
		uc := NewListCategoriesUseCase(repos.BudgetPeriods, repos.Categories)
		out, err := uc.Execute(ctx, ListCategoriesInput{UserID: uuid.New(), Month: "2024-11"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 0 {
			t.Errorf("expected no categories, got %d", len(out.Categories))
		}
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*mock.MemStore, uuid.UUID, *entity.Category) {
		t.Helper()
		store := mock.NewMemStore()
		userID := uuid.New()
		period := entity.NewBudgetPeriod(userID, "2024-11", decimal.Zero)
		store.Periods[period.ID] = *period
		category := entity.NewCategory(userID, period.ID, "Groceries")
		store.Categories[category.ID] = *category
		return store, userID, category
	}

	t.Run("renames the category", func(t *testing.T) {
		store, userID, category := seed(t)
		uc := NewUpdateCategoryUseCase(&mock.MemUnitOfWork{Store: store})

		out, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Name:       "Food",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Name != "Food" {
			t.Errorf("expected name Food, got %s", out.Category.Name)
		}
		if store.Categories[category.ID].Name != "Food" {
			t.Errorf("expected stored name Food, got %s", store.Categories[category.ID].Name)
		}
	})

	t.Run("rejects rename to an existing name", func(t *testing.T) {
		store, userID, category := seed(t)
		other := entity.NewCategory(userID, category.PeriodID, "Rent")
		store.Categories[other.ID] = *other

		uc := NewUpdateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Name:       "Rent",
		})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Fatalf("expected ErrCategoryNameExists, got %v", err)
		}
	})

	t.Run("renaming to the same name is a no-op", func(t *testing.T) {
		store, userID, category := seed(t)
		uc := NewUpdateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		if _, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     userID,
			CategoryID: category.ID,
			Name:       "Groceries",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown category reports not found", func(t *testing.T) {
		store, userID, _ := seed(t)
		uc := NewUpdateCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			UserID:     userID,
			CategoryID: uuid.New(),
			Name:       "Food",
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*mock.MemStore, uuid.UUID, *entity.BudgetPeriod, *entity.Category) {
		t.Helper()
		store := mock.NewMemStore()
		userID := uuid.New()
		period := entity.NewBudgetPeriod(userID, "2024-11", decimal.Zero)
		period.AvailableToBudget = mustDec(t, "50")
		store.Periods[period.ID] = *period
		category := entity.NewCategory(userID, period.ID, "Groceries")
		category.Assigned = mustDec(t, "30")
		store.Categories[category.ID] = *category
		return store, userID, period, category
	}

	t.Run("deletes and returns assigned money to the pool", func(t *testing.T) {
		store, userID, period, category := seed(t)
		uc := NewDeleteCategoryUseCase(&mock.MemUnitOfWork{Store: store})

		if err := uc.Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: category.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := store.Categories[category.ID]; ok {
			t.Error("expected category to be deleted")
		}
		got := store.Periods[period.ID].AvailableToBudget
		if !got.Equal(mustDec(t, "80")) {
			t.Errorf("expected pool 80, got %s", got)
		}
	})

	t.Run("rejects deletion while transactions reference it", func(t *testing.T) {
		store, userID, _, category := seed(t)
		account := entity.NewAccount(userID, "Checking")
		store.Accounts[account.ID] = *account
		txn := entity.NewTransaction(userID, account.ID, &category.ID, mustDec(t, "10"), time.Now(), "")
		store.Transactions[txn.ID] = *txn

		uc := NewDeleteCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		err := uc.Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: category.ID})
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Fatalf("expected ErrCategoryInUse, got %v", err)
		}
		if _, ok := store.Categories[category.ID]; !ok {
			t.Error("expected category to remain")
		}
	})

	t.Run("unknown category reports not found", func(t *testing.T) {
		store, userID, _, _ := seed(t)
		uc := NewDeleteCategoryUseCase(&mock.MemUnitOfWork{Store: store})
		err := uc.Execute(ctx, DeleteCategoryInput{UserID: userID, CategoryID: uuid.New()})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
