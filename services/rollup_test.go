package services

import (
	"testing"
	"time"

	"devtrack-api/models"
)

func TestRollupCategorySumsItemActuals(t *testing.T) {
	category := models.BudgetCategory{
		ID:        "land",
		Name:      "Land Acquisition",
		Allocated: 2500000,
		Status:    models.CategoryStatusOnTrack,
		Items: []models.BudgetLineItem{
			{ID: "l1", Name: "Purchase Price", Estimated: 2400000, Actuals: 0},
			{ID: "l2", Name: "Closing Costs", Estimated: 100000, Actuals: 45000,
				Invoices: []models.Invoice{
					{ID: "inv1", Description: "Earnest Money", Amount: 45000, Status: models.InvoiceStatusPaid},
				}},
		},
	}

	rollup := RollupCategory(category)

	if rollup.Spent != 45000 {
		t.Fatalf("expected spent 45000, got %v", rollup.Spent)
	}
	if rollup.Status != models.CategoryStatusOnTrack {
		t.Fatalf("status must pass through unchanged, got %q", rollup.Status)
	}
	if len(rollup.Warnings) != 0 {
		t.Fatalf("matching invoice totals must not warn, got %v", rollup.Warnings)
	}
}

func TestRollupCategoryEmptyItemsIsZero(t *testing.T) {
	rollup := RollupCategory(models.BudgetCategory{ID: "soft", Allocated: 1500000})
	if rollup.Spent != 0 {
		t.Fatalf("expected spent 0 for empty category, got %v", rollup.Spent)
	}
}

func TestRollupCategoryStatusNotDerived(t *testing.T) {
	// A category spent way past its allocation keeps its stored status;
	// health is the author's judgment, not arithmetic.
	category := models.BudgetCategory{
		ID:        "hard",
		Allocated: 1000,
		Status:    models.CategoryStatusOnTrack,
		Items: []models.BudgetLineItem{
			{ID: "h1", Actuals: 999999},
		},
	}

	rollup := RollupCategory(category)
	if rollup.Status != models.CategoryStatusOnTrack {
		t.Fatalf("expected stored status to pass through, got %q", rollup.Status)
	}
}

func TestRollupCategoryInvoiceMismatchWarns(t *testing.T) {
	category := models.BudgetCategory{
		ID: "land",
		Items: []models.BudgetLineItem{
			{ID: "l2", Actuals: 45000, Invoices: []models.Invoice{
				{ID: "inv1", Amount: 30000},
			}},
		},
	}

	rollup := RollupCategory(category)

	// actuals stays authoritative
	if rollup.Spent != 45000 {
		t.Fatalf("expected spent 45000, got %v", rollup.Spent)
	}
	if len(rollup.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(rollup.Warnings))
	}
	w := rollup.Warnings[0]
	if w.Code != WarnInvoiceMismatch || w.ItemID != "l2" || w.InvoiceTotal != 30000 {
		t.Fatalf("unexpected warning: %+v", w)
	}
}

func TestRollupCategoriesPreservesOrder(t *testing.T) {
	categories := []models.BudgetCategory{
		{ID: "land", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "hard"},
		{ID: "soft"},
		{ID: "finance"},
	}

	rollups := RollupCategories(categories)

	if len(rollups) != 4 {
		t.Fatalf("expected 4 rollups, got %d", len(rollups))
	}
	for i, want := range []string{"land", "hard", "soft", "finance"} {
		if rollups[i].ID != want {
			t.Fatalf("expected category %q at index %d, got %q", want, i, rollups[i].ID)
		}
	}
}

func TestPercentSpent(t *testing.T) {
	pct := PercentSpent(450000, 12500000)
	if pct == nil {
		t.Fatal("expected a value for nonzero budget")
	}
	if *pct != 3.6 {
		t.Fatalf("expected 3.6, got %v", *pct)
	}
}

func TestPercentSpentZeroBudgetNotApplicable(t *testing.T) {
	if pct := PercentSpent(450000, 0); pct != nil {
		t.Fatalf("expected nil for zero budget, got %v", *pct)
	}
}
