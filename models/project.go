package models

import "time"

// Development phases, in lifecycle order.
const (
	PhaseAcquisition     = "Acquisition"
	PhaseEntitlement     = "Entitlement"
	PhasePreConstruction = "Pre-Construction"
	PhaseConstruction    = "Construction"
	PhaseLeaseUp         = "Lease-up"
)

// ProjectPhases lists all valid phases in lifecycle order.
var ProjectPhases = []string{
	PhaseAcquisition,
	PhaseEntitlement,
	PhasePreConstruction,
	PhaseConstruction,
	PhaseLeaseUp,
}

// IsValidPhase reports whether phase is one of the known development phases.
func IsValidPhase(phase string) bool {
	for _, p := range ProjectPhases {
		if p == phase {
			return true
		}
	}
	return false
}

// Project represents the projects table
type Project struct {
	ID             string     `gorm:"primaryKey;column:id" json:"id"`
	UserID         int        `gorm:"column:user_id" json:"user_id"`
	Name           string     `gorm:"column:name" json:"name"`
	Location       string     `gorm:"column:location" json:"location"`
	Budget         float64    `gorm:"column:budget" json:"budget"`
	Spent          float64    `gorm:"column:spent" json:"spent"`
	Phase          string     `gorm:"column:phase" json:"phase"`
	StartDate      *time.Time `gorm:"column:start_date" json:"start_date"`
	CompletionDate *time.Time `gorm:"column:completion_date" json:"completion_date"`
	ImageURL       *string    `gorm:"column:image_url" json:"image_url"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Categories []BudgetCategory `gorm:"foreignKey:ProjectID;references:ID" json:"categories,omitempty"`
	Documents  []Document       `gorm:"foreignKey:ProjectID;references:ID" json:"documents,omitempty"`
	Owner      User             `gorm:"foreignKey:UserID;references:UserID" json:"owner,omitempty"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}
