package models

import "time"

// Category health statuses. Assigned by the author of the category, never
// derived from spend arithmetic.
const (
	CategoryStatusOnTrack    = "on-track"
	CategoryStatusAtRisk     = "at-risk"
	CategoryStatusOverBudget = "over-budget"
)

// IsValidCategoryStatus reports whether status is a known category health value.
func IsValidCategoryStatus(status string) bool {
	switch status {
	case CategoryStatusOnTrack, CategoryStatusAtRisk, CategoryStatusOverBudget:
		return true
	}
	return false
}

// Invoice statuses
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
)

// IsValidInvoiceStatus reports whether status is a known invoice status.
func IsValidInvoiceStatus(status string) bool {
	return status == InvoiceStatusPaid || status == InvoiceStatusPending
}

// BudgetCategory represents the budget_categories table
type BudgetCategory struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	ProjectID string    `gorm:"column:project_id" json:"project_id"`
	Name      string    `gorm:"column:name" json:"name"`
	Allocated float64   `gorm:"column:allocated" json:"allocated"`
	Status    string    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Items []BudgetLineItem `gorm:"foreignKey:CategoryID;references:ID" json:"items,omitempty"`
}

// TableName overrides the table name for BudgetCategory
func (BudgetCategory) TableName() string {
	return "budget_categories"
}

// BudgetLineItem represents the budget_items table. Actuals is stored
// independently of the invoice list; the two are not reconciled.
type BudgetLineItem struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	CategoryID string    `gorm:"column:category_id" json:"category_id"`
	Name       string    `gorm:"column:name" json:"name"`
	Vendor     *string   `gorm:"column:vendor" json:"vendor,omitempty"`
	Estimated  float64   `gorm:"column:estimated" json:"estimated"`
	Actuals    float64   `gorm:"column:actuals" json:"actuals"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	Invoices []Invoice `gorm:"foreignKey:BudgetItemID;references:ID" json:"invoices"`
}

// TableName overrides the table name for BudgetLineItem
func (BudgetLineItem) TableName() string {
	return "budget_items"
}

// Invoice represents the invoices table
type Invoice struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	BudgetItemID string    `gorm:"column:budget_item_id" json:"budget_item_id"`
	Description  string    `gorm:"column:description" json:"description"`
	Amount       float64   `gorm:"column:amount" json:"amount"`
	Date         time.Time `gorm:"column:date" json:"date"`
	Status       string    `gorm:"column:status" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}
