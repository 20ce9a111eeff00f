// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthLayout is the time layout for budget period month keys (e.g. "2024-11").
const MonthLayout = "2006-01"

// MonthOf returns the budget period month key for a given date.
func MonthOf(date time.Time) string {
	return date.UTC().Format(MonthLayout)
}

// ValidMonth reports whether s is a well-formed month key.
func ValidMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}

// BudgetPeriod represents one calendar month of budgeting for a user.
// There is exactly one period per (user, month); periods are created lazily
// on the first category, assignment or inflow for that month.
//
// AvailableToBudget is the unassigned pool. It is credited by uncategorized
// inflows, debited by assignments, and may go negative when overspending is
// not covered.
type BudgetPeriod struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Month                 string // YYYY-MM
	AvailableToBudget     decimal.Decimal
	CarryoverFromPrevious decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewBudgetPeriod creates a new BudgetPeriod seeded with the carryover from
// the most recent earlier month's unassigned pool.
func NewBudgetPeriod(userID uuid.UUID, month string, carryover decimal.Decimal) *BudgetPeriod {
	now := time.Now().UTC()
	return &BudgetPeriod{
		ID:                    uuid.New(),
		UserID:                userID,
		Month:                 month,
		AvailableToBudget:     carryover,
		CarryoverFromPrevious: carryover,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
