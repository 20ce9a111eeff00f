package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func accountDeltaFor(t *testing.T, plan MutationPlan, id uuid.UUID) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, d := range plan.AccountDeltas {
		if d.AccountID == id {
			total = total.Add(d.Delta)
		}
	}
	return total
}

func categoryDeltaFor(t *testing.T, plan MutationPlan, id uuid.UUID) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, d := range plan.CategoryDeltas {
		if d.CategoryID == id {
			total = total.Add(d.Delta)
		}
	}
	return total
}

func periodDeltaFor(t *testing.T, plan MutationPlan, month string) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, d := range plan.PeriodDeltas {
		if d.Month == month {
			total = total.Add(d.Delta)
		}
	}
	return total
}

func TestCreatePlan_CategorizedOutflow(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()

	plan := CreatePlan(Version{
		AccountID:  accountID,
		CategoryID: &categoryID,
		Amount:     dec("20"),
		Month:      "2024-11",
	})

	if got := accountDeltaFor(t, plan, accountID); !got.Equal(dec("-20")) {
		t.Errorf("expected account delta -20, got %s", got.String())
	}
	if got := categoryDeltaFor(t, plan, categoryID); !got.Equal(dec("20")) {
		t.Errorf("expected category delta 20, got %s", got.String())
	}
	if len(plan.PeriodDeltas) != 0 {
		t.Errorf("expected no period deltas, got %v", plan.PeriodDeltas)
	}
}

func TestCreatePlan_UncategorizedInflow(t *testing.T) {
	accountID := uuid.New()

	plan := CreatePlan(Version{
		AccountID: accountID,
		Amount:    dec("-500"),
		Month:     "2024-11",
	})

	if got := accountDeltaFor(t, plan, accountID); !got.Equal(dec("500")) {
		t.Errorf("expected account delta 500, got %s", got.String())
	}
	if len(plan.CategoryDeltas) != 0 {
		t.Errorf("expected no category deltas, got %v", plan.CategoryDeltas)
	}
	if got := periodDeltaFor(t, plan, "2024-11"); !got.Equal(dec("500")) {
		t.Errorf("expected period delta 500, got %s", got.String())
	}
}

func TestRemovePlan_InvertsCreatePlan(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()

	versions := []Version{
		{AccountID: accountID, CategoryID: &categoryID, Amount: dec("20"), Month: "2024-11"},
		{AccountID: accountID, Amount: dec("-500"), Month: "2024-11"},
		{AccountID: accountID, CategoryID: &categoryID, Amount: dec("-3.25"), Month: "2024-12"},
	}

	for _, v := range versions {
		create := CreatePlan(v)
		remove := RemovePlan(v)

		if got := accountDeltaFor(t, create, accountID).Add(accountDeltaFor(t, remove, accountID)); !got.IsZero() {
			t.Errorf("account deltas should cancel, got %s", got.String())
		}
		if got := categoryDeltaFor(t, create, categoryID).Add(categoryDeltaFor(t, remove, categoryID)); !got.IsZero() {
			t.Errorf("category deltas should cancel, got %s", got.String())
		}
		if got := periodDeltaFor(t, create, v.Month).Add(periodDeltaFor(t, remove, v.Month)); !got.IsZero() {
			t.Errorf("period deltas should cancel, got %s", got.String())
		}
	}
}

func TestPatchPlan_SameAccountAmountChange(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()

	prev := Version{AccountID: accountID, CategoryID: &categoryID, Amount: dec("20"), Month: "2024-11"}
	next := prev
	next.Amount = dec("30")

	plan := PatchPlan(prev, next)

	// Net effect of raising the spend by 10: balance drops by 10 more.
	if got := accountDeltaFor(t, plan, accountID); !got.Equal(dec("-10")) {
		t.Errorf("expected account delta -10, got %s", got.String())
	}
	// Single net category adjustment, not two writes.
	if len(plan.CategoryDeltas) != 1 {
		t.Fatalf("expected one category delta, got %d", len(plan.CategoryDeltas))
	}
	if got := categoryDeltaFor(t, plan, categoryID); !got.Equal(dec("10")) {
		t.Errorf("expected category delta 10, got %s", got.String())
	}
}

func TestPatchPlan_AccountMove(t *testing.T) {
	oldAccount := uuid.New()
	newAccount := uuid.New()

	prev := Version{AccountID: oldAccount, Amount: dec("25"), Month: "2024-11"}
	next := Version{AccountID: newAccount, Amount: dec("25"), Month: "2024-11"}

	plan := PatchPlan(prev, next)

	if got := accountDeltaFor(t, plan, oldAccount); !got.Equal(dec("25")) {
		t.Errorf("expected old account refunded 25, got %s", got.String())
	}
	if got := accountDeltaFor(t, plan, newAccount); !got.Equal(dec("-25")) {
		t.Errorf("expected new account debited 25, got %s", got.String())
	}
}

func TestPatchPlan_CategoryMove(t *testing.T) {
	accountID := uuid.New()
	oldCategory := uuid.New()
	newCategory := uuid.New()

	prev := Version{AccountID: accountID, CategoryID: &oldCategory, Amount: dec("20"), Month: "2024-11"}
	next := Version{AccountID: accountID, CategoryID: &newCategory, Amount: dec("35"), Month: "2024-11"}

	plan := PatchPlan(prev, next)

	if got := categoryDeltaFor(t, plan, oldCategory); !got.Equal(dec("-20")) {
		t.Errorf("expected old category credited back 20, got %s", got.String())
	}
	if got := categoryDeltaFor(t, plan, newCategory); !got.Equal(dec("35")) {
		t.Errorf("expected new category debited 35, got %s", got.String())
	}
	if got := accountDeltaFor(t, plan, accountID); !got.Equal(dec("-15")) {
		t.Errorf("expected account delta -15, got %s", got.String())
	}
}

func TestPatchPlan_CategorizingAnInflowMovesPoolFunding(t *testing.T) {
	accountID := uuid.New()
	categoryID := uuid.New()

	// An uncategorized inflow funds the pool; attaching a category turns it
	// into a refund and the pool credit must be withdrawn.
	prev := Version{AccountID: accountID, Amount: dec("-100"), Month: "2024-11"}
	next := Version{AccountID: accountID, CategoryID: &categoryID, Amount: dec("-100"), Month: "2024-11"}

	plan := PatchPlan(prev, next)

	if got := periodDeltaFor(t, plan, "2024-11"); !got.Equal(dec("-100")) {
		t.Errorf("expected period delta -100, got %s", got.String())
	}
	if len(plan.CategoryDeltas) != 0 {
		t.Errorf("inflow must not touch category spend, got %v", plan.CategoryDeltas)
	}
	if len(plan.AccountDeltas) != 0 {
		t.Errorf("unchanged amount must not touch the account, got %v", plan.AccountDeltas)
	}
}

func TestPatchPlan_InflowMonthMove(t *testing.T) {
	accountID := uuid.New()

	prev := Version{AccountID: accountID, Amount: dec("-200"), Month: "2024-11"}
	next := Version{AccountID: accountID, Amount: dec("-200"), Month: "2024-12"}

	plan := PatchPlan(prev, next)

	if got := periodDeltaFor(t, plan, "2024-11"); !got.Equal(dec("-200")) {
		t.Errorf("expected November pool debited 200, got %s", got.String())
	}
	if got := periodDeltaFor(t, plan, "2024-12"); !got.Equal(dec("200")) {
		t.Errorf("expected December pool credited 200, got %s", got.String())
	}
}

func TestPatchPlan_NoChangeProducesEmptyPlan(t *testing.T) {
	categoryID := uuid.New()
	v := Version{AccountID: uuid.New(), CategoryID: &categoryID, Amount: dec("12.50"), Month: "2024-11"}

	plan := PatchPlan(v, v)

	if len(plan.AccountDeltas)+len(plan.CategoryDeltas)+len(plan.PeriodDeltas) != 0 {
		t.Errorf("expected empty plan, got %+v", plan)
	}
}

func TestSpendBeingReplaced(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	tests := []struct {
		name     string
		prev     Version
		next     Version
		expected string
	}{
		{
			name:     "same category replaces prior spend",
			prev:     Version{CategoryID: &catA, Amount: dec("20")},
			next:     Version{CategoryID: &catA, Amount: dec("30")},
			expected: "20",
		},
		{
			name:     "category change evaluates fresh",
			prev:     Version{CategoryID: &catA, Amount: dec("20")},
			next:     Version{CategoryID: &catB, Amount: dec("30")},
			expected: "0",
		},
		{
			name:     "clearing the category evaluates fresh",
			prev:     Version{CategoryID: &catA, Amount: dec("20")},
			next:     Version{Amount: dec("20")},
			expected: "0",
		},
		{
			name:     "prior inflow replaces nothing",
			prev:     Version{CategoryID: &catA, Amount: dec("-20")},
			next:     Version{CategoryID: &catA, Amount: dec("30")},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpendBeingReplaced(tt.prev, tt.next)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got.String())
			}
		})
	}
}
