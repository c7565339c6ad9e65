package services

import "devtrack-api/models"

// Warning codes surfaced by the rollup. Non-fatal: callers may display or
// ignore them.
const (
	WarnInvoiceMismatch = "invoice-total-mismatch"
)

// RollupWarning flags a line item whose stored actuals disagree with the sum
// of its invoices. The stored actuals stay authoritative; no reconciliation
// is performed.
type RollupWarning struct {
	ItemID       string  `json:"item_id"`
	Code         string  `json:"code"`
	Actuals      float64 `json:"actuals"`
	InvoiceTotal float64 `json:"invoice_total"`
}

// CategoryRollup is one budget category with its derived spent total. Status
// is passed through from the stored record; health is author-assigned, not
// derived from spend.
type CategoryRollup struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Allocated float64                 `json:"allocated"`
	Spent     float64                 `json:"spent"`
	Status    string                  `json:"status"`
	Items     []models.BudgetLineItem `json:"items"`
	Warnings  []RollupWarning         `json:"warnings,omitempty"`
}

// RollupCategory derives a single category's spent total as the sum of its
// line items' actuals. Item order is preserved exactly as supplied; a
// category with no items rolls up to spent = 0.
func RollupCategory(category models.BudgetCategory) CategoryRollup {
	rollup := CategoryRollup{
		ID:        category.ID,
		Name:      category.Name,
		Allocated: category.Allocated,
		Status:    category.Status,
		Items:     category.Items,
	}

	for _, item := range category.Items {
		rollup.Spent += item.Actuals

		var invoiceTotal float64
		for _, invoice := range item.Invoices {
			invoiceTotal += invoice.Amount
		}
		if len(item.Invoices) > 0 && invoiceTotal != item.Actuals {
			rollup.Warnings = append(rollup.Warnings, RollupWarning{
				ItemID:       item.ID,
				Code:         WarnInvoiceMismatch,
				Actuals:      item.Actuals,
				InvoiceTotal: invoiceTotal,
			})
		}
	}

	return rollup
}

// RollupCategories rolls up each category in the order supplied. Insertion
// order is meaningful to users tracking when costs were added, so the input
// is never reordered.
func RollupCategories(categories []models.BudgetCategory) []CategoryRollup {
	rollups := make([]CategoryRollup, len(categories))
	for i, category := range categories {
		rollups[i] = RollupCategory(category)
	}
	return rollups
}

// PercentSpent computes 100 * spent / budget. It returns nil when budget is
// zero: the figure is not applicable, not an error.
func PercentSpent(spent, budget float64) *float64 {
	if budget == 0 {
		return nil
	}
	pct := 100 * spent / budget
	return &pct
}
