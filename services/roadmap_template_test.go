package services

import (
	"testing"

	"devtrack-api/models"
)

func TestRoadmapTemplateShape(t *testing.T) {
	phases := RoadmapTemplate()

	if len(phases) != 5 {
		t.Fatalf("expected 5 phases, got %d", len(phases))
	}

	wantSteps := map[string]int{
		"acquisition":  6,
		"entitlement":  4,
		"precon":       3,
		"construction": 4,
		"leaseup":      3,
	}
	for _, phase := range phases {
		if want := wantSteps[phase.ID]; len(phase.Steps) != want {
			t.Fatalf("phase %s: expected %d steps, got %d", phase.ID, want, len(phase.Steps))
		}
	}

	if got := len(TemplateStepIDs()); got != 20 {
		t.Fatalf("expected 20 step ids, got %d", got)
	}
}

func TestRoadmapTemplateCopyIsolation(t *testing.T) {
	first := RoadmapTemplate()
	first[0].Steps[0].Status = models.StepStatusCompleted
	first[0].Title = "mutated"

	second := RoadmapTemplate()
	if second[0].Steps[0].Status != models.StepStatusPending {
		t.Fatal("mutating a returned copy leaked into the shared template")
	}
	if second[0].Title == "mutated" {
		t.Fatal("phase fields are shared with the template")
	}
}

func TestApplyStepStatuses(t *testing.T) {
	phases := ApplyStepStatuses(RoadmapTemplate(), map[string]string{
		"site_id":      models.StepStatusCompleted,
		"loi":          models.StepStatusInProgress,
		"retired_step": models.StepStatusCompleted, // template no longer has it
	})

	if phases[0].Steps[0].Status != models.StepStatusCompleted {
		t.Fatalf("expected site_id completed, got %q", phases[0].Steps[0].Status)
	}
	if phases[0].Steps[1].Status != models.StepStatusInProgress {
		t.Fatalf("expected loi in-progress, got %q", phases[0].Steps[1].Status)
	}
	// Untouched steps keep their defaults
	if phases[0].Steps[2].Status != models.StepStatusPending {
		t.Fatalf("expected psa pending, got %q", phases[0].Steps[2].Status)
	}
}
