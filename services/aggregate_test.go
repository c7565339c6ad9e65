package services

import (
	"testing"
	"time"

	"devtrack-api/models"
)

func TestBuildProjectAggregate(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	project := models.Project{
		ID:        "p1",
		Name:      "Sunset Plaza Development",
		Location:  "Austin, TX",
		Budget:    12500000,
		Spent:     450000,
		Phase:     models.PhaseAcquisition,
		StartDate: &start,
	}

	categories := []models.BudgetCategory{
		{ID: "land", Name: "Land Acquisition", Allocated: 2500000, Status: models.CategoryStatusOnTrack,
			Items: []models.BudgetLineItem{
				{ID: "l1", Actuals: 0},
				{ID: "l2", Actuals: 45000},
			}},
		{ID: "hard", Name: "Hard Costs (Construction)", Allocated: 8000000, Status: models.CategoryStatusOnTrack},
	}

	documents := []models.Document{
		{ID: "d1", Name: "PSA.pdf"},
		{ID: "d2", Name: "Survey.dwg"},
	}

	aggregate := BuildProjectAggregate(project, categories, documents)

	if aggregate.PercentSpent == nil || *aggregate.PercentSpent != 3.6 {
		t.Fatalf("expected percent spent 3.6, got %v", aggregate.PercentSpent)
	}
	if len(aggregate.Budgets) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(aggregate.Budgets))
	}
	if aggregate.Budgets[0].ID != "land" || aggregate.Budgets[1].ID != "hard" {
		t.Fatal("category order not preserved")
	}
	if aggregate.Budgets[0].Spent != 45000 {
		t.Fatalf("expected land spent 45000, got %v", aggregate.Budgets[0].Spent)
	}
	if len(aggregate.Documents) != 2 || aggregate.Documents[0].ID != "d1" {
		t.Fatal("document list not passed through in order")
	}

	// Stored project spent is independent of the category rollup and is
	// reported as-is.
	if aggregate.Spent != 450000 {
		t.Fatalf("expected stored spent 450000, got %v", aggregate.Spent)
	}
}

func TestBuildProjectAggregateDefaultsImage(t *testing.T) {
	aggregate := BuildProjectAggregate(models.Project{ID: "p1"}, nil, nil)
	if aggregate.ImageURL != DefaultProjectImage {
		t.Fatalf("expected default image placeholder, got %q", aggregate.ImageURL)
	}

	empty := ""
	aggregate = BuildProjectAggregate(models.Project{ID: "p1", ImageURL: &empty}, nil, nil)
	if aggregate.ImageURL != DefaultProjectImage {
		t.Fatal("empty image reference must also map to the placeholder")
	}

	custom := "https://example.com/site.jpg"
	aggregate = BuildProjectAggregate(models.Project{ID: "p1", ImageURL: &custom}, nil, nil)
	if aggregate.ImageURL != custom {
		t.Fatalf("expected custom image to win, got %q", aggregate.ImageURL)
	}
}

func TestBuildProjectAggregateAbsentDatesStayNil(t *testing.T) {
	aggregate := BuildProjectAggregate(models.Project{ID: "p1"}, nil, nil)
	if aggregate.StartDate != nil || aggregate.CompletionDate != nil {
		t.Fatal("absent dates must stay explicit nils, not zero values")
	}
	if aggregate.Documents == nil {
		t.Fatal("nil document input must normalize to an empty list")
	}
}

func TestBuildProjectAggregateZeroBudget(t *testing.T) {
	aggregate := BuildProjectAggregate(models.Project{ID: "p1", Spent: 1000}, nil, nil)
	if aggregate.PercentSpent != nil {
		t.Fatalf("expected nil percent spent for zero budget, got %v", *aggregate.PercentSpent)
	}
}
