// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// All lookups are scoped to the owning user.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category by ID scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByIDAndUserForUpdate retrieves a category and locks its row for the
	// remainder of the enclosing unit of work.
	FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByPeriod retrieves all categories belonging to a budget period.
	FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNameAndPeriod checks if a category with the given name exists in the period.
	ExistsByNameAndPeriod(ctx context.Context, name string, periodID uuid.UUID) (bool, error)

	// UpdateName renames a category.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// UpdateAssigned sets a category's assigned amount to a new value.
	UpdateAssigned(ctx context.Context, id uuid.UUID, assigned decimal.Decimal) error

	// AddToSpent adjusts a category's spent total by a signed delta.
	AddToSpent(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
