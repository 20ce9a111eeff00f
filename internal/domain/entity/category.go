// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents a spending envelope within one budget period.
//
// Assigned is money allocated to the category this period (never negative).
// Spent is derived: the sum of spend contributions of all active transactions
// referencing the category. Assigned minus Spent is the category's available
// balance, which may be negative when the category is overspent.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PeriodID  uuid.UUID
	Name      string
	Assigned  decimal.Decimal
	Spent     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity with nothing assigned or spent.
func NewCategory(userID, periodID uuid.UUID, name string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		PeriodID:  periodID,
		Name:      name,
		Assigned:  decimal.Zero,
		Spent:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Available returns the category's available balance (assigned minus spent).
func (c *Category) Available() decimal.Decimal {
	return c.Assigned.Sub(c.Spent)
}
