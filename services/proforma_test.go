package services

import (
	"errors"
	"math"
	"testing"
)

func baseAssumptions() ProFormaAssumptions {
	return ProFormaAssumptions{
		LandCost:        2500000,
		GLA:             25000,
		HardCostPerSqft: 250,
		SoftCostPercent: 20,
		RentPerSqft:     32,
		VacancyRate:     5,
		CapRate:         6.5,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestCalculateProFormaBaseCase(t *testing.T) {
	result, err := CalculateProForma(baseAssumptions())
	if err != nil {
		t.Fatalf("CalculateProForma returned error: %v", err)
	}

	if result.HardCosts != 6250000 {
		t.Fatalf("expected hard costs 6250000, got %v", result.HardCosts)
	}
	if result.SoftCosts != 1250000 {
		t.Fatalf("expected soft costs 1250000, got %v", result.SoftCosts)
	}
	if result.TotalProjectCost != 10000000 {
		t.Fatalf("expected total cost 10000000, got %v", result.TotalProjectCost)
	}
	if result.GrossPotentialRent != 800000 {
		t.Fatalf("expected gross rent 800000, got %v", result.GrossPotentialRent)
	}
	if result.VacancyLoss != 40000 {
		t.Fatalf("expected vacancy loss 40000, got %v", result.VacancyLoss)
	}
	if result.NetOperatingIncome != 760000 {
		t.Fatalf("expected NOI 760000, got %v", result.NetOperatingIncome)
	}

	if result.YieldOnCost == nil || !almostEqual(*result.YieldOnCost, 7.6) {
		t.Fatalf("expected yield on cost 7.6, got %v", result.YieldOnCost)
	}
	if result.ExitValue == nil || !almostEqual(*result.ExitValue, 11692307.69) {
		t.Fatalf("expected exit value ~11692307.69, got %v", result.ExitValue)
	}
	if result.ProjectedProfit == nil || !almostEqual(*result.ProjectedProfit, 1692307.69) {
		t.Fatalf("expected profit ~1692307.69, got %v", result.ProjectedProfit)
	}
	if result.ProfitMargin == nil || !almostEqual(*result.ProfitMargin, 16.92) {
		t.Fatalf("expected margin ~16.92, got %v", result.ProfitMargin)
	}
}

func TestCalculateProFormaStressScenarios(t *testing.T) {
	result, err := CalculateProForma(baseAssumptions())
	if err != nil {
		t.Fatalf("CalculateProForma returned error: %v", err)
	}

	if len(result.StressScenarios) != 3 {
		t.Fatalf("expected base + 2 stress scenarios, got %d", len(result.StressScenarios))
	}

	wantDeltas := []float64{0, 0.5, 1.0}
	for i, scenario := range result.StressScenarios {
		if scenario.Delta != wantDeltas[i] {
			t.Fatalf("expected delta %v at index %d, got %v", wantDeltas[i], i, scenario.Delta)
		}
		if scenario.Profit == nil {
			t.Fatalf("scenario %d: expected a profit value", i)
		}
	}

	// Base scenario matches the top-level figures
	if *result.StressScenarios[0].Profit != *result.ProjectedProfit {
		t.Fatalf("base scenario profit %v differs from projected profit %v",
			*result.StressScenarios[0].Profit, *result.ProjectedProfit)
	}
}

func TestStressedProfitStrictlyDecreasing(t *testing.T) {
	// Higher cap rate means lower exit value means lower profit, for any
	// nonzero NOI.
	a := baseAssumptions()
	result, err := CalculateProForma(a)
	if err != nil {
		t.Fatalf("CalculateProForma returned error: %v", err)
	}

	prev := math.Inf(1)
	for _, scenario := range result.StressScenarios {
		if *scenario.Profit >= prev {
			t.Fatalf("profit not strictly decreasing: %v then %v at delta %v",
				prev, *scenario.Profit, scenario.Delta)
		}
		prev = *scenario.Profit
	}
}

func TestCalculateProFormaZeroCapRate(t *testing.T) {
	a := baseAssumptions()
	a.CapRate = 0

	result, err := CalculateProForma(a)
	if err != nil {
		t.Fatalf("zero cap rate must not be an error, got %v", err)
	}

	if result.ExitValue != nil {
		t.Fatalf("expected nil exit value for zero cap rate, got %v", *result.ExitValue)
	}
	if result.ProjectedProfit != nil || result.ProfitMargin != nil {
		t.Fatal("figures derived from exit value must be not-applicable")
	}

	// The stress deltas still produce valid figures (0.5 and 1.0 are nonzero)
	if result.StressScenarios[1].Profit == nil || result.StressScenarios[2].Profit == nil {
		t.Fatal("nonzero stressed cap rates must still produce profits")
	}
	if result.StressScenarios[0].Profit != nil {
		t.Fatal("base scenario at zero cap rate must be not-applicable")
	}
}

func TestCalculateProFormaNegativeStressCancelsCapRate(t *testing.T) {
	// Chosen so capRate + delta == 0 for the first stress entry
	a := baseAssumptions()
	a.CapRate = -0.5

	result, err := CalculateProForma(a)
	if err != nil {
		t.Fatalf("CalculateProForma returned error: %v", err)
	}
	if result.StressScenarios[1].Profit != nil {
		t.Fatal("expected not-applicable profit when capRate+delta is zero")
	}
}

func TestCalculateProFormaZeroTotalCost(t *testing.T) {
	result, err := CalculateProForma(ProFormaAssumptions{CapRate: 6.5})
	if err != nil {
		t.Fatalf("zero inputs must not be an error, got %v", err)
	}
	if result.YieldOnCost != nil {
		t.Fatalf("expected nil yield for zero total cost, got %v", *result.YieldOnCost)
	}
	if result.ProfitMargin != nil {
		t.Fatal("expected nil margin for zero total cost")
	}
}

func TestCalculateProFormaRejectsNonFiniteInput(t *testing.T) {
	a := baseAssumptions()
	a.RentPerSqft = math.NaN()

	if _, err := CalculateProForma(a); !errors.Is(err, ErrInvalidAssumptions) {
		t.Fatalf("expected ErrInvalidAssumptions, got %v", err)
	}

	a = baseAssumptions()
	a.LandCost = math.Inf(1)
	if _, err := CalculateProForma(a); !errors.Is(err, ErrInvalidAssumptions) {
		t.Fatalf("expected ErrInvalidAssumptions for Inf, got %v", err)
	}
}

func TestCalculateProFormaAllowsNegativeRates(t *testing.T) {
	// Negative vacancy models above-market recoveries; the engine checks
	// arithmetic safety only.
	a := baseAssumptions()
	a.VacancyRate = -5

	result, err := CalculateProForma(a)
	if err != nil {
		t.Fatalf("negative rate must be accepted, got %v", err)
	}
	if result.NetOperatingIncome != 840000 {
		t.Fatalf("expected NOI 840000 with -5%% vacancy, got %v", result.NetOperatingIncome)
	}
}

func TestCalculateProFormaIsIdempotent(t *testing.T) {
	first, err := CalculateProForma(baseAssumptions())
	if err != nil {
		t.Fatalf("CalculateProForma returned error: %v", err)
	}
	second, err := CalculateProForma(baseAssumptions())
	if err != nil {
		t.Fatalf("CalculateProForma returned error: %v", err)
	}

	if *first.ExitValue != *second.ExitValue || first.TotalProjectCost != second.TotalProjectCost {
		t.Fatal("identical inputs must produce identical outputs")
	}
}
