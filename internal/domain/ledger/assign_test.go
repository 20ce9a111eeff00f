package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

func TestAssign(t *testing.T) {
	tests := []struct {
		name          string
		available     string
		assigned      string
		requested     string
		wantAssigned  string
		wantAvailable string
		wantErr       error
	}{
		{
			name:          "assignment moves money from pool to category",
			available:     "100",
			assigned:      "0",
			requested:     "60",
			wantAssigned:  "60",
			wantAvailable: "40",
		},
		{
			name:      "assignment exceeding pool is rejected",
			available: "40",
			assigned:  "60",
			requested: "50",
			wantErr:   domainerror.ErrInsufficientFunds,
		},
		{
			name:      "negative assignment is rejected",
			available: "100",
			assigned:  "0",
			requested: "-10",
			wantErr:   domainerror.ErrInvalidAssignmentAmount,
		},
		{
			name:          "assignment of the entire pool empties it",
			available:     "75.25",
			assigned:      "10",
			requested:     "75.25",
			wantAssigned:  "85.25",
			wantAvailable: "0",
		},
		{
			name:          "zero assignment is a no-op",
			available:     "100",
			assigned:      "20",
			requested:     "0",
			wantAssigned:  "20",
			wantAvailable: "100",
		},
		{
			name:      "negative pool rejects any positive assignment",
			available: "-5",
			assigned:  "0",
			requested: "1",
			wantErr:   domainerror.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Assign(
				decimal.RequireFromString(tt.available),
				decimal.RequireFromString(tt.assigned),
				decimal.RequireFromString(tt.requested),
			)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Assigned.Equal(decimal.RequireFromString(tt.wantAssigned)) {
				t.Errorf("expected assigned %s, got %s", tt.wantAssigned, result.Assigned.String())
			}
			if !result.AvailableToBudget.Equal(decimal.RequireFromString(tt.wantAvailable)) {
				t.Errorf("expected available %s, got %s", tt.wantAvailable, result.AvailableToBudget.String())
			}
		})
	}
}

func TestAssign_SequenceDrainsPool(t *testing.T) {
	// Period starts with 100 available; assign 60 then attempt 50.
	first, err := Assign(decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.AvailableToBudget.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected 40 available after first assignment, got %s", first.AvailableToBudget.String())
	}

	_, err = Assign(first.AvailableToBudget, first.Assigned, decimal.NewFromInt(50))
	if !errors.Is(err, domainerror.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
