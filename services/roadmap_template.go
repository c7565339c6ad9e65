package services

import "devtrack-api/models"

// RoadmapStep is one milestone step of the development lifecycle template.
type RoadmapStep struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// RoadmapPhase is one phase of the development lifecycle template, holding
// an ordered list of steps.
type RoadmapPhase struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []RoadmapStep `json:"steps"`
}

// lifecycleTemplate is the static development-lifecycle catalog. Step
// statuses here are only the defaults seeded into project_steps for new
// projects; per-project progress lives in that table, not here.
var lifecycleTemplate = []RoadmapPhase{
	{
		ID:          "acquisition",
		Title:       "Phase 1: Acquisition & Due Diligence",
		Description: "Securing land and verifying feasibility.",
		Steps: []RoadmapStep{
			{ID: "site_id", Title: "Site Identification & Selection", Status: models.StepStatusPending},
			{ID: "loi", Title: "Letter of Intent (LOI)", Status: models.StepStatusPending},
			{ID: "psa", Title: "Purchase & Sale Agreement (PSA)", Status: models.StepStatusPending},
			{ID: "dd_env", Title: "Environmental (Phase I)", Status: models.StepStatusPending},
			{ID: "dd_geo", Title: "Geotechnical & Survey", Status: models.StepStatusPending},
			{ID: "closing", Title: "Closing", Status: models.StepStatusPending},
		},
	},
	{
		ID:          "entitlement",
		Title:       "Phase 2: Entitlements & Design",
		Description: "Legal permissions and design approvals.",
		Steps: []RoadmapStep{
			{ID: "concept", Title: "Concept Site Plan", Status: models.StepStatusPending},
			{ID: "muni_meet", Title: "Municipal Pre-App Meetings", Status: models.StepStatusPending},
			{ID: "civil_eng", Title: "Civil Engineering & Architecture", Status: models.StepStatusPending},
			{ID: "site_approval", Title: "Site Plan Approval", Status: models.StepStatusPending},
		},
	},
	{
		ID:          "precon",
		Title:       "Phase 3: Pre-Construction & Financing",
		Description: "Permitting, Bidding, and Capital.",
		Steps: []RoadmapStep{
			{ID: "permits", Title: "Building Permits", Status: models.StepStatusPending},
			{ID: "bidding", Title: "GC Bidding & Selection", Status: models.StepStatusPending},
			{ID: "cap_stack", Title: "Finalize Capital Stack (Equity/Debt)", Status: models.StepStatusPending},
		},
	},
	{
		ID:          "construction",
		Title:       "Phase 4: Construction",
		Description: "Vertical execution.",
		Steps: []RoadmapStep{
			{ID: "mobilization", Title: "Mobilization & Site Work", Status: models.StepStatusPending},
			{ID: "foundation", Title: "Foundation & Framing", Status: models.StepStatusPending},
			{ID: "systems", Title: "Systems & Rough-ins", Status: models.StepStatusPending},
			{ID: "finishes", Title: "Finishes", Status: models.StepStatusPending},
		},
	},
	{
		ID:          "leaseup",
		Title:       "Phase 5: Post-Construction & Lease-up",
		Description: "Occupancy and Turnover.",
		Steps: []RoadmapStep{
			{ID: "co", Title: "Certificate of Occupancy", Status: models.StepStatusPending},
			{ID: "turnover", Title: "Tenant Turnover", Status: models.StepStatusPending},
			{ID: "opening", Title: "Grand Opening", Status: models.StepStatusPending},
		},
	},
}

// RoadmapTemplate returns a fresh copy of the lifecycle template so callers
// can overlay per-project statuses without mutating the shared catalog.
func RoadmapTemplate() []RoadmapPhase {
	phases := make([]RoadmapPhase, len(lifecycleTemplate))
	for i, phase := range lifecycleTemplate {
		steps := make([]RoadmapStep, len(phase.Steps))
		copy(steps, phase.Steps)
		phase.Steps = steps
		phases[i] = phase
	}
	return phases
}

// ApplyStepStatuses overlays per-project step statuses onto a template copy.
// Steps without an entry keep their template default; unknown keys in
// statuses are ignored (the template may have changed since seeding).
func ApplyStepStatuses(phases []RoadmapPhase, statuses map[string]string) []RoadmapPhase {
	for i := range phases {
		for j := range phases[i].Steps {
			if status, ok := statuses[phases[i].Steps[j].ID]; ok {
				phases[i].Steps[j].Status = status
			}
		}
	}
	return phases
}

// TemplateStepIDs returns the IDs of every step in template order.
func TemplateStepIDs() []string {
	var ids []string
	for _, phase := range lifecycleTemplate {
		for _, step := range phase.Steps {
			ids = append(ids, step.ID)
		}
	}
	return ids
}
