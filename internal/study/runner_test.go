package study

import (
	"context"
	"errors"
	"testing"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
)

func testScenario() *config.Scenario {
	return &config.Scenario{
		Simulation: config.SimulationConfig{
			HorizonHours:   10000,
			NumSimulations: 40,
			Seed:           42,
			SLATargets:     config.SLATargets{Availability: 0.9, MaxDowntimeHours: 1000},
		},
		Policies: []config.Policy{
			{
				Name:            "reactive",
				Kind:            config.PolicyKindMaintenance,
				RepairTimeHours: 10,
				Maintenance:     &config.MaintenanceSpec{AvgUsageTime: 500},
				Costs:           config.CostSpec{MaintenanceCost: 150, ReplacementCost: 800, ServiceCost: 200, LostRevenuePerHour: 50},
			},
			{
				Name:            "mirrored",
				Kind:            config.PolicyKindArray,
				RepairTimeHours: 10,
				Array:           &config.ArraySpec{RAIDLevel: 1, NumberOfDisks: 2, DiskMTTF: 1000},
				Costs:           config.CostSpec{MaintenanceCost: 100, ReplacementCost: 400, ServiceCost: 80, LostRevenuePerHour: 50},
			},
		},
	}
}

func TestRunnerRun(t *testing.T) {
	runner := NewRunner(4)
	scenario := testScenario()

	result, err := runner.Run(context.Background(), scenario)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.ID == "" {
		t.Error("Study result should carry an ID")
	}
	if result.Horizon != 10000 {
		t.Errorf("Expected horizon 10000, got %v", result.Horizon)
	}
	if result.NumSimulations != 40 {
		t.Errorf("Expected 40 replications, got %d", result.NumSimulations)
	}
	if result.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", result.Seed)
	}
	if result.SLAAvailability != 0.9 {
		t.Errorf("Expected SLA availability echo 0.9, got %v", result.SLAAvailability)
	}

	if len(result.Results) != 2 {
		t.Fatalf("Expected 2 policy results, got %d", len(result.Results))
	}
	if result.Results[0].Policy != "reactive" || result.Results[1].Policy != "mirrored" {
		t.Errorf("Policy results out of order: %s, %s", result.Results[0].Policy, result.Results[1].Policy)
	}
	for _, pr := range result.Results {
		if pr.Replications != 40 {
			t.Errorf("Policy %s: expected 40 replications, got %d", pr.Policy, pr.Replications)
		}
		if pr.MeanAvailability <= 0 || pr.MeanAvailability > 1 {
			t.Errorf("Policy %s: mean availability %v out of range", pr.Policy, pr.MeanAvailability)
		}
	}

	if result.Comparison == nil {
		t.Fatal("Study result should carry a comparison")
	}
	if result.Comparison.BestAvailability == "" {
		t.Error("Comparison should name an availability winner")
	}

	// A mirrored pair outlives a bare unit with a comparable failure
	// profile.
	if result.Comparison.BestAvailability != "mirrored" {
		t.Errorf("Expected 'mirrored' to win availability, got %q", result.Comparison.BestAvailability)
	}
}

func TestRunnerRunReproducible(t *testing.T) {
	scenario := testScenario()

	first, err := NewRunner(4).Run(context.Background(), scenario)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := NewRunner(4).Run(context.Background(), scenario)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for i := range first.Results {
		a, b := first.Results[i], second.Results[i]
		if a.MeanAvailability != b.MeanAvailability || a.MeanCost != b.MeanCost || a.MeanDowntime != b.MeanDowntime {
			t.Errorf("Policy %s: seeded studies differ between runs", a.Policy)
		}
	}
}

func TestRunnerRunInvalidScenario(t *testing.T) {
	runner := NewRunner(4)
	scenario := &config.Scenario{
		Simulation: config.SimulationConfig{HorizonHours: -5},
	}

	_, err := runner.Run(context.Background(), scenario)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}

func TestRunnerRunCancelled(t *testing.T) {
	runner := NewRunner(2)
	scenario := testScenario()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, scenario)
	if err == nil {
		t.Fatal("Expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}
