package services

import "devtrack-api/models"

// Warning codes surfaced by the linkage resolver.
const (
	WarnUnknownStep = "unknown-step-reference"
)

// LinkageWarning flags a document whose step_id matches no step in the
// roadmap. The reference is weak: a stale link is reportable, never fatal.
type LinkageWarning struct {
	DocumentID string `json:"document_id"`
	StepID     string `json:"step_id"`
	Code       string `json:"code"`
}

// StepView is a roadmap step with the documents linked to it.
type StepView struct {
	RoadmapStep
	Documents []models.Document `json:"documents"`
}

// PhaseView is a roadmap phase with per-step document lists and derived
// progress. Progress is nil for a phase with zero steps.
type PhaseView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Progress    *float64   `json:"progress"`
	Steps       []StepView `json:"steps"`
}

// ResolveRoadmap associates each document with the step its step_id names
// and derives per-phase progress. Both inputs are read-only; document order
// is preserved within each step, and resolving the same input twice yields
// identical results. Documents without a step_id appear in no step's list.
func ResolveRoadmap(phases []RoadmapPhase, documents []models.Document) ([]PhaseView, []LinkageWarning) {
	known := make(map[string]bool)
	for _, phase := range phases {
		for _, step := range phase.Steps {
			known[step.ID] = true
		}
	}

	var warnings []LinkageWarning
	byStep := make(map[string][]models.Document)
	for _, doc := range documents {
		if doc.StepID == nil || *doc.StepID == "" {
			continue
		}
		if !known[*doc.StepID] {
			warnings = append(warnings, LinkageWarning{
				DocumentID: doc.ID,
				StepID:     *doc.StepID,
				Code:       WarnUnknownStep,
			})
			continue
		}
		byStep[*doc.StepID] = append(byStep[*doc.StepID], doc)
	}

	views := make([]PhaseView, len(phases))
	for i, phase := range phases {
		view := PhaseView{
			ID:          phase.ID,
			Title:       phase.Title,
			Description: phase.Description,
			Progress:    PhaseProgress(phase.Steps),
			Steps:       make([]StepView, len(phase.Steps)),
		}
		for j, step := range phase.Steps {
			docs := byStep[step.ID]
			if docs == nil {
				docs = []models.Document{}
			}
			view.Steps[j] = StepView{RoadmapStep: step, Documents: docs}
		}
		views[i] = view
	}

	return views, warnings
}

// PhaseProgress computes 100 * completed / total for a phase's steps. It
// returns nil for a zero-step phase: not applicable, not a division fault.
func PhaseProgress(steps []RoadmapStep) *float64 {
	if len(steps) == 0 {
		return nil
	}
	completed := 0
	for _, step := range steps {
		if step.Status == models.StepStatusCompleted {
			completed++
		}
	}
	progress := 100 * float64(completed) / float64(len(steps))
	return &progress
}
