package services

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAssumptions is returned when an assumption field is not a finite
// number. Degenerate arithmetic (zero denominators) is not an error; it
// yields not-applicable result fields instead.
var ErrInvalidAssumptions = errors.New("invalid pro-forma assumptions")

// StressDeltas are the cap-rate expansions (percentage points) reported in
// every result, in addition to the base case. Sensitivity is a first-class
// output, not a UI-side computation.
var StressDeltas = []float64{0.5, 1.0}

// ProFormaAssumptions is the transient, user-editable input set for an
// underwriting run. Percentage fields are whole numbers: 20 means 20%.
// Rates may be negative or exceed 100; the engine checks arithmetic safety
// only, never business plausibility.
type ProFormaAssumptions struct {
	LandCost        float64 `json:"land_cost"`
	GLA             float64 `json:"gla"` // gross leasable area, sqft
	HardCostPerSqft float64 `json:"hard_cost_per_sqft"`
	SoftCostPercent float64 `json:"soft_cost_percent"` // % of hard costs
	RentPerSqft     float64 `json:"rent_per_sqft"`     // annual, net lease
	VacancyRate     float64 `json:"vacancy_rate"`      // %
	CapRate         float64 `json:"cap_rate"`          // exit cap rate, %
}

// StressScenario is the projected outcome at one cap-rate delta. Delta 0 is
// the base case. ExitValue and Profit are nil when capRate+delta is zero.
type StressScenario struct {
	Delta     float64  `json:"delta"`
	CapRate   float64  `json:"cap_rate"`
	ExitValue *float64 `json:"exit_value"`
	Profit    *float64 `json:"profit"`
}

// ProFormaResult is fully derived from the assumptions and never stored.
// Pointer fields are nil when their computation divides by zero; callers
// must render that as not-applicable, distinct from a valid zero.
type ProFormaResult struct {
	HardCosts          float64          `json:"hard_costs"`
	SoftCosts          float64          `json:"soft_costs"`
	TotalProjectCost   float64          `json:"total_project_cost"`
	GrossPotentialRent float64          `json:"gross_potential_rent"`
	VacancyLoss        float64          `json:"vacancy_loss"`
	NetOperatingIncome float64          `json:"net_operating_income"`
	YieldOnCost        *float64         `json:"yield_on_cost"`
	ExitValue          *float64         `json:"exit_value"`
	ProjectedProfit    *float64         `json:"projected_profit"`
	ProfitMargin       *float64         `json:"profit_margin"`
	StressScenarios    []StressScenario `json:"stress_scenarios"`
}

// CalculateProForma runs the underwriting projection. It is a pure function
// with no hidden state, cheap enough to invoke on every keystroke, and total
// over finite inputs: zero denominators produce nil fields, never Inf or NaN.
func CalculateProForma(a ProFormaAssumptions) (ProFormaResult, error) {
	if err := validateAssumptions(a); err != nil {
		return ProFormaResult{}, err
	}

	var r ProFormaResult
	r.HardCosts = a.GLA * a.HardCostPerSqft
	r.SoftCosts = r.HardCosts * (a.SoftCostPercent / 100)
	r.TotalProjectCost = a.LandCost + r.HardCosts + r.SoftCosts

	r.GrossPotentialRent = a.GLA * a.RentPerSqft
	r.VacancyLoss = r.GrossPotentialRent * (a.VacancyRate / 100)
	// Net lease assumption: operating expenses pass through to the tenant,
	// so NOI equals effective gross income.
	r.NetOperatingIncome = r.GrossPotentialRent - r.VacancyLoss

	if r.TotalProjectCost != 0 {
		yield := 100 * r.NetOperatingIncome / r.TotalProjectCost
		r.YieldOnCost = &yield
	}

	base := stressScenario(r.NetOperatingIncome, r.TotalProjectCost, a.CapRate, 0)
	r.ExitValue = base.ExitValue
	r.ProjectedProfit = base.Profit
	if base.Profit != nil && r.TotalProjectCost != 0 {
		margin := 100 * *base.Profit / r.TotalProjectCost
		r.ProfitMargin = &margin
	}

	r.StressScenarios = make([]StressScenario, 0, len(StressDeltas)+1)
	r.StressScenarios = append(r.StressScenarios, base)
	for _, delta := range StressDeltas {
		r.StressScenarios = append(r.StressScenarios,
			stressScenario(r.NetOperatingIncome, r.TotalProjectCost, a.CapRate, delta))
	}

	return r, nil
}

func stressScenario(noi, totalCost, capRate, delta float64) StressScenario {
	s := StressScenario{Delta: delta, CapRate: capRate + delta}
	if s.CapRate == 0 {
		return s
	}
	exit := noi / (s.CapRate / 100)
	profit := exit - totalCost
	s.ExitValue = &exit
	s.Profit = &profit
	return s
}

func validateAssumptions(a ProFormaAssumptions) error {
	fields := map[string]float64{
		"land_cost":          a.LandCost,
		"gla":                a.GLA,
		"hard_cost_per_sqft": a.HardCostPerSqft,
		"soft_cost_percent":  a.SoftCostPercent,
		"rent_per_sqft":      a.RentPerSqft,
		"vacancy_rate":       a.VacancyRate,
		"cap_rate":           a.CapRate,
	}
	for name, value := range fields {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidAssumptions, name)
		}
	}
	return nil
}
