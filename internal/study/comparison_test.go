package study

import (
	"math"
	"testing"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

func comparisonResults() []models.PolicyResult {
	return []models.PolicyResult{
		{
			Policy:           "reactive",
			MeanAvailability: 0.980,
			MeanDowntime:     200,
			MeanCost:         5000,
			MeanMTBF:         500,
			SLACompliant:     false,
		},
		{
			Policy:           "proactive",
			MeanAvailability: 0.998,
			MeanDowntime:     20,
			MeanCost:         8000,
			MeanMTBF:         1200,
			SLACompliant:     true,
		},
		{
			Policy:           "raid6",
			MeanAvailability: 0.995,
			MeanDowntime:     50,
			MeanCost:         3000,
			MeanMTBF:         900,
			SLACompliant:     true,
		},
	}
}

func TestCompareWinners(t *testing.T) {
	comparison := Compare(comparisonResults())
	if comparison == nil {
		t.Fatal("Compare returned nil for non-empty results")
	}

	if comparison.BestAvailability != "proactive" {
		t.Errorf("BestAvailability = %q, expected 'proactive'", comparison.BestAvailability)
	}
	if comparison.BestCost != "raid6" {
		t.Errorf("BestCost = %q, expected 'raid6'", comparison.BestCost)
	}
	if comparison.LowestDowntime != "proactive" {
		t.Errorf("LowestDowntime = %q, expected 'proactive'", comparison.LowestDowntime)
	}
}

func TestCompareCompliantList(t *testing.T) {
	comparison := Compare(comparisonResults())

	if len(comparison.Compliant) != 2 {
		t.Fatalf("Expected 2 compliant policies, got %d", len(comparison.Compliant))
	}
	if comparison.Compliant[0] != "proactive" || comparison.Compliant[1] != "raid6" {
		t.Errorf("Compliant = %v, expected [proactive raid6]", comparison.Compliant)
	}
}

func TestCompareDeltas(t *testing.T) {
	comparison := Compare(comparisonResults())

	// Two losers, each measured against the availability winner.
	if len(comparison.Deltas) != 2 {
		t.Fatalf("Expected 2 delta rows, got %d", len(comparison.Deltas))
	}

	reactive := comparison.Deltas[0]
	if reactive.Policy != "reactive" {
		t.Fatalf("Expected first delta for 'reactive', got %q", reactive.Policy)
	}
	if math.Abs(reactive.AvailabilityDiff-(-0.018)) > 1e-12 {
		t.Errorf("AvailabilityDiff = %v, expected -0.018", reactive.AvailabilityDiff)
	}
	if math.Abs(reactive.DowntimeDiff-180) > 1e-12 {
		t.Errorf("DowntimeDiff = %v, expected 180", reactive.DowntimeDiff)
	}
	if math.Abs(reactive.CostDiff-(-3000)) > 1e-12 {
		t.Errorf("CostDiff = %v, expected -3000", reactive.CostDiff)
	}
	if math.Abs(reactive.MTBFDiff-(-700)) > 1e-12 {
		t.Errorf("MTBFDiff = %v, expected -700", reactive.MTBFDiff)
	}

	for _, d := range comparison.Deltas {
		if d.Policy == "proactive" {
			t.Error("The availability winner should not get a delta row against itself")
		}
	}
}

func TestCompareAvailabilityTieGoesToCheaperPolicy(t *testing.T) {
	results := []models.PolicyResult{
		{Policy: "expensive", MeanAvailability: 1.0, MeanDowntime: 0, MeanCost: 9000},
		{Policy: "cheap", MeanAvailability: 1.0, MeanDowntime: 0, MeanCost: 2000},
	}

	comparison := Compare(results)
	if comparison.BestAvailability != "cheap" {
		t.Errorf("BestAvailability = %q, expected the cheaper of the tied policies", comparison.BestAvailability)
	}
	if len(comparison.Deltas) != 1 || comparison.Deltas[0].Policy != "expensive" {
		t.Errorf("Expected a single delta row for 'expensive', got %+v", comparison.Deltas)
	}
}

func TestCompareSinglePolicy(t *testing.T) {
	results := []models.PolicyResult{
		{Policy: "only", MeanAvailability: 0.99, MeanCost: 100, SLACompliant: true},
	}

	comparison := Compare(results)
	if comparison == nil {
		t.Fatal("Compare returned nil")
	}
	if comparison.BestAvailability != "only" || comparison.BestCost != "only" || comparison.LowestDowntime != "only" {
		t.Errorf("Single policy should win every category, got %+v", comparison)
	}
	if len(comparison.Deltas) != 0 {
		t.Errorf("Expected no delta rows for a single policy, got %d", len(comparison.Deltas))
	}
}

func TestCompareEmpty(t *testing.T) {
	if Compare(nil) != nil {
		t.Error("Compare(nil) should return nil")
	}
	if Compare([]models.PolicyResult{}) != nil {
		t.Error("Compare of empty slice should return nil")
	}
}
