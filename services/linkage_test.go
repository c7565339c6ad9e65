package services

import (
	"testing"

	"devtrack-api/models"
)

func strPtr(s string) *string { return &s }

func testPhases() []RoadmapPhase {
	return []RoadmapPhase{
		{
			ID:    "acquisition",
			Title: "Phase 1: Acquisition & Due Diligence",
			Steps: []RoadmapStep{
				{ID: "loi", Title: "Letter of Intent (LOI)", Status: models.StepStatusCompleted},
				{ID: "psa", Title: "Purchase & Sale Agreement (PSA)", Status: models.StepStatusInProgress},
				{ID: "closing", Title: "Closing", Status: models.StepStatusPending},
			},
		},
		{
			ID:    "empty",
			Title: "Placeholder",
			Steps: nil,
		},
	}
}

func TestResolveRoadmapLinksDocumentsToSteps(t *testing.T) {
	documents := []models.Document{
		{ID: "d1", Name: "LOI.pdf", StepID: strPtr("loi")},
		{ID: "d2", Name: "Site Photos.zip"},
		{ID: "d3", Name: "LOI-signed.pdf", StepID: strPtr("loi")},
		{ID: "d4", Name: "PSA.pdf", StepID: strPtr("psa")},
	}

	phases, warnings := ResolveRoadmap(testPhases(), documents)

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}

	loi := phases[0].Steps[0]
	if len(loi.Documents) != 2 {
		t.Fatalf("expected 2 documents on loi, got %d", len(loi.Documents))
	}
	// Document order preserved as supplied
	if loi.Documents[0].ID != "d1" || loi.Documents[1].ID != "d3" {
		t.Fatalf("document order not preserved: %v, %v", loi.Documents[0].ID, loi.Documents[1].ID)
	}

	if len(phases[0].Steps[1].Documents) != 1 {
		t.Fatalf("expected 1 document on psa, got %d", len(phases[0].Steps[1].Documents))
	}
	if len(phases[0].Steps[2].Documents) != 0 {
		t.Fatal("closing step must have an empty (not nil-error) document list")
	}
}

func TestResolveRoadmapDocWithoutStepAppearsNowhere(t *testing.T) {
	documents := []models.Document{
		{ID: "d1", Name: "Untethered.pdf"},
		{ID: "d2", Name: "Empty step.pdf", StepID: strPtr("")},
	}

	phases, warnings := ResolveRoadmap(testPhases(), documents)

	if len(warnings) != 0 {
		t.Fatalf("absent step_id is not a warning, got %v", warnings)
	}
	for _, phase := range phases {
		for _, step := range phase.Steps {
			if len(step.Documents) != 0 {
				t.Fatalf("step %s unexpectedly has documents", step.ID)
			}
		}
	}
}

func TestResolveRoadmapUnknownStepWarns(t *testing.T) {
	documents := []models.Document{
		{ID: "d1", Name: "Old.pdf", StepID: strPtr("retired_step")},
	}

	phases, warnings := ResolveRoadmap(testPhases(), documents)

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	w := warnings[0]
	if w.Code != WarnUnknownStep || w.DocumentID != "d1" || w.StepID != "retired_step" {
		t.Fatalf("unexpected warning: %+v", w)
	}
	// The stale link must never surface in any step
	for _, phase := range phases {
		for _, step := range phase.Steps {
			if len(step.Documents) != 0 {
				t.Fatalf("stale-linked document leaked into step %s", step.ID)
			}
		}
	}
}

func TestResolveRoadmapIsIdempotent(t *testing.T) {
	documents := []models.Document{
		{ID: "d1", StepID: strPtr("loi")},
		{ID: "d2", StepID: strPtr("psa")},
	}

	first, _ := ResolveRoadmap(testPhases(), documents)
	second, _ := ResolveRoadmap(testPhases(), documents)

	if len(first) != len(second) {
		t.Fatal("phase counts differ between identical runs")
	}
	for i := range first {
		for j := range first[i].Steps {
			a, b := first[i].Steps[j], second[i].Steps[j]
			if len(a.Documents) != len(b.Documents) {
				t.Fatalf("step %s document counts differ", a.ID)
			}
			for k := range a.Documents {
				if a.Documents[k].ID != b.Documents[k].ID {
					t.Fatalf("step %s document order differs", a.ID)
				}
			}
		}
	}
}

func TestPhaseProgress(t *testing.T) {
	phases, _ := ResolveRoadmap(testPhases(), nil)

	progress := phases[0].Progress
	if progress == nil {
		t.Fatal("expected progress for a phase with steps")
	}
	// 1 of 3 completed
	want := 100.0 / 3.0
	if *progress != want {
		t.Fatalf("expected %v, got %v", want, *progress)
	}
	if *progress < 0 || *progress > 100 {
		t.Fatalf("progress out of bounds: %v", *progress)
	}
}

func TestPhaseProgressZeroStepsNotApplicable(t *testing.T) {
	phases, _ := ResolveRoadmap(testPhases(), nil)
	if phases[1].Progress != nil {
		t.Fatalf("expected nil progress for zero-step phase, got %v", *phases[1].Progress)
	}
}

func TestPhaseProgressBounds(t *testing.T) {
	all := []RoadmapStep{
		{ID: "a", Status: models.StepStatusCompleted},
		{ID: "b", Status: models.StepStatusCompleted},
	}
	if p := PhaseProgress(all); p == nil || *p != 100 {
		t.Fatalf("expected 100 for fully completed phase, got %v", p)
	}

	none := []RoadmapStep{
		{ID: "a", Status: models.StepStatusPending},
	}
	if p := PhaseProgress(none); p == nil || *p != 0 {
		t.Fatalf("expected 0 for untouched phase, got %v", p)
	}
}
