package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSpendContribution(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name       string
		categoryID *uuid.UUID
		amount     string
		expected   string
	}{
		{
			name:       "categorized outflow counts in full",
			categoryID: &categoryID,
			amount:     "20",
			expected:   "20",
		},
		{
			name:       "uncategorized outflow contributes nothing",
			categoryID: nil,
			amount:     "20",
			expected:   "0",
		},
		{
			name:       "categorized inflow contributes nothing",
			categoryID: &categoryID,
			amount:     "-15",
			expected:   "0",
		},
		{
			name:       "zero amount contributes nothing",
			categoryID: &categoryID,
			amount:     "0",
			expected:   "0",
		},
		{
			name:       "fractional outflow keeps exact value",
			categoryID: &categoryID,
			amount:     "19.99",
			expected:   "19.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpendContribution(tt.categoryID, decimal.RequireFromString(tt.amount))
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got.String())
			}
		})
	}
}

func TestIncomeContribution(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name       string
		categoryID *uuid.UUID
		amount     string
		expected   string
	}{
		{
			name:       "uncategorized inflow funds the pool",
			categoryID: nil,
			amount:     "-500",
			expected:   "500",
		},
		{
			name:       "categorized inflow is a refund, not income",
			categoryID: &categoryID,
			amount:     "-500",
			expected:   "0",
		},
		{
			name:       "outflow contributes nothing",
			categoryID: nil,
			amount:     "30",
			expected:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncomeContribution(tt.categoryID, decimal.RequireFromString(tt.amount))
			if !got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got.String())
			}
		})
	}
}

func TestAccountDeltas_CreateAndRemoveCancelOut(t *testing.T) {
	amounts := []string{"25", "-100", "0", "3.50"}
	for _, a := range amounts {
		amount := decimal.RequireFromString(a)
		sum := AccountDeltaOnCreate(amount).Add(AccountDeltaOnRemove(amount))
		if !sum.IsZero() {
			t.Errorf("create+remove delta for %s should cancel, got %s", a, sum.String())
		}
	}
}
