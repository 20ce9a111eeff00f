// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// All lookups are scoped to the owning user; an account belonging to another
// user is reported as not found.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByIDAndUser retrieves an account by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error)

	// FindByIDAndUserForUpdate retrieves an account and locks its row for the
	// remainder of the enclosing unit of work.
	FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// ExistsByNameAndUser checks if an account with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// AddToBalance adjusts an account's balance by a signed delta.
	AddToBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
}
