package services

import (
	"time"

	"devtrack-api/models"
)

// DefaultProjectImage is the placeholder shown for projects created without
// a display image.
const DefaultProjectImage = "https://images.unsplash.com/photo-1503387762-592deb58ef4e?q=80&w=2662&auto=format&fit=crop"

// ProjectAggregate is the single composed view handed to the UI: project
// fields, the rolled-up budget tree, and the normalized document list.
// Optional dates are explicit nulls when absent, never empty strings.
type ProjectAggregate struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Location       string            `json:"location"`
	Budget         float64           `json:"budget"`
	Spent          float64           `json:"spent"`
	PercentSpent   *float64          `json:"percent_spent"`
	Phase          string            `json:"phase"`
	StartDate      *time.Time        `json:"start_date"`
	CompletionDate *time.Time        `json:"completion_date"`
	ImageURL       string            `json:"image_url"`
	CreatedAt      time.Time         `json:"created_at"`
	Budgets        []CategoryRollup  `json:"budget_breakdown"`
	Documents      []models.Document `json:"documents"`
}

// BuildProjectAggregate composes raw records into one consistent view.
// Categories arrive with items and invoices already associated by the
// persistence layer; their nesting order is preserved exactly as received.
// The function is pure: same input, same output, no side effects.
func BuildProjectAggregate(project models.Project, categories []models.BudgetCategory, documents []models.Document) ProjectAggregate {
	if documents == nil {
		documents = []models.Document{}
	}

	imageURL := DefaultProjectImage
	if project.ImageURL != nil && *project.ImageURL != "" {
		imageURL = *project.ImageURL
	}

	return ProjectAggregate{
		ID:             project.ID,
		Name:           project.Name,
		Location:       project.Location,
		Budget:         project.Budget,
		Spent:          project.Spent,
		PercentSpent:   PercentSpent(project.Spent, project.Budget),
		Phase:          project.Phase,
		StartDate:      project.StartDate,
		CompletionDate: project.CompletionDate,
		ImageURL:       imageURL,
		CreatedAt:      project.CreatedAt,
		Budgets:        RollupCategories(categories),
		Documents:      documents,
	}
}
