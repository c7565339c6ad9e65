package models

import "time"

// Document file types
const (
	DocTypePDF   = "PDF"
	DocTypeDWG   = "DWG"
	DocTypeImage = "Image"
	DocTypeExcel = "Excel"
)

// Document categories
const (
	DocCategoryContracts  = "Contracts"
	DocCategoryPermits    = "Permits"
	DocCategoryDrawings   = "Drawings"
	DocCategoryFinancials = "Financials"
)

// IsValidDocumentType reports whether t is a known document file type.
func IsValidDocumentType(t string) bool {
	switch t {
	case DocTypePDF, DocTypeDWG, DocTypeImage, DocTypeExcel:
		return true
	}
	return false
}

// IsValidDocumentCategory reports whether c is a known document category.
func IsValidDocumentCategory(c string) bool {
	switch c {
	case DocCategoryContracts, DocCategoryPermits, DocCategoryDrawings, DocCategoryFinancials:
		return true
	}
	return false
}

// Document represents the documents table. StepID is a weak reference to a
// roadmap step: the referenced step may no longer exist, and deleting a step
// never requires deleting the document.
type Document struct {
	ID        string     `gorm:"primaryKey;column:id" json:"id"`
	ProjectID string     `gorm:"column:project_id" json:"project_id"`
	Name      string     `gorm:"column:name" json:"name"`
	Type      string     `gorm:"column:type" json:"type"`
	Category  string     `gorm:"column:category" json:"category"`
	Size      *string    `gorm:"column:size" json:"size"`
	Date      *time.Time `gorm:"column:date" json:"date"`
	StepID    *string    `gorm:"column:step_id" json:"step_id"`
	FilePath  string     `gorm:"column:file_path" json:"-"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
