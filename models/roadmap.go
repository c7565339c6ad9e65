package models

import "time"

// Roadmap step statuses
const (
	StepStatusCompleted  = "completed"
	StepStatusInProgress = "in-progress"
	StepStatusPending    = "pending"
)

// IsValidStepStatus reports whether status is a known roadmap step status.
func IsValidStepStatus(status string) bool {
	switch status {
	case StepStatusCompleted, StepStatusInProgress, StepStatusPending:
		return true
	}
	return false
}

// ProjectStep represents the project_steps table: the per-project status of
// one roadmap template step. Rows are seeded from the template defaults and
// updated independently afterwards; the template itself stays immutable.
type ProjectStep struct {
	ProjectID string     `gorm:"primaryKey;column:project_id" json:"project_id"`
	StepID    string     `gorm:"primaryKey;column:step_id" json:"step_id"`
	Status    string     `gorm:"column:status" json:"status"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name for ProjectStep
func (ProjectStep) TableName() string {
	return "project_steps"
}
