package montecarlo

import (
	"context"
	"errors"
	"testing"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
)

func testScenarioConfig(n int, seed int64) *config.SimulationConfig {
	return &config.SimulationConfig{
		HorizonHours:   10000,
		NumSimulations: n,
		Seed:           seed,
		SLATargets:     config.SLATargets{Availability: 0.99, MaxDowntimeHours: 100},
	}
}

func testMaintenancePolicy() *config.Policy {
	return &config.Policy{
		Name:            "m1",
		Kind:            config.PolicyKindMaintenance,
		RepairTimeHours: 10,
		Maintenance:     &config.MaintenanceSpec{AvgUsageTime: 500},
		Costs: config.CostSpec{
			MaintenanceCost:    150,
			ReplacementCost:    800,
			ServiceCost:        200,
			LostRevenuePerHour: 50,
		},
	}
}

func TestReplicationSeed(t *testing.T) {
	tests := []struct {
		base     int64
		index    int
		expected int64
	}{
		{42, 0, 42 + 9973},
		{42, 1, 42 + 2*9973},
		{42, 99, 42 + 100*9973},
		{-9973, 0, 1}, // derived seed of zero is remapped
		{0, 0, 9973},
	}

	for _, test := range tests {
		result := ReplicationSeed(test.base, test.index)
		if result != test.expected {
			t.Errorf("ReplicationSeed(%d, %d) = %d, expected %d", test.base, test.index, result, test.expected)
		}
	}
}

func TestReplicationSeedDistinct(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		seed := ReplicationSeed(42, i)
		if seen[seed] {
			t.Fatalf("Duplicate replication seed %d at index %d", seed, i)
		}
		seen[seed] = true
	}
}

func TestDriverRun(t *testing.T) {
	driver := NewDriver(4)
	policy := testMaintenancePolicy()
	cfg := testScenarioConfig(50, 42)

	results, err := driver.Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 50 {
		t.Fatalf("Expected 50 results, got %d", len(results))
	}

	for i, r := range results {
		if r.Seed != ReplicationSeed(42, i) {
			t.Errorf("Replication %d recorded seed %d, expected %d", i, r.Seed, ReplicationSeed(42, i))
		}
		total := r.Uptime + r.Downtime
		if total < cfg.HorizonHours-1e-6 || total > cfg.HorizonHours+1e-6 {
			t.Errorf("Replication %d: uptime %v + downtime %v != horizon %v", i, r.Uptime, r.Downtime, cfg.HorizonHours)
		}
		if r.RepairEvents > r.FailureEvents {
			t.Errorf("Replication %d: %d repairs exceed %d failures", i, r.RepairEvents, r.FailureEvents)
		}
	}
}

func TestDriverRunReproducible(t *testing.T) {
	policy := testMaintenancePolicy()
	cfg := testScenarioConfig(30, 7)

	first, err := NewDriver(4).Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := NewDriver(4).Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Replication %d differs between identical seeded runs:\n%+v\n%+v", i, first[i], second[i])
		}
	}
}

func TestDriverRunParallelMatchesSequential(t *testing.T) {
	policy := testMaintenancePolicy()
	cfg := testScenarioConfig(30, 99)

	sequential, err := NewDriver(1).Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("Sequential run failed: %v", err)
	}
	parallel, err := NewDriver(8).Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("Parallel run failed: %v", err)
	}

	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Fatalf("Replication %d differs between sequential and parallel execution:\n%+v\n%+v",
				i, sequential[i], parallel[i])
		}
	}
}

func TestDriverRunArrayPolicy(t *testing.T) {
	driver := NewDriver(4)
	policy := &config.Policy{
		Name:            "a1",
		Kind:            config.PolicyKindArray,
		RepairTimeHours: 10,
		Array:           &config.ArraySpec{RAIDLevel: 1, NumberOfDisks: 2, DiskMTTF: 1000},
		Costs:           config.CostSpec{ReplacementCost: 400, ServiceCost: 80},
	}
	cfg := testScenarioConfig(40, 42)

	results, err := driver.Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 40 {
		t.Fatalf("Expected 40 results, got %d", len(results))
	}

	// Disks with a 1000h characteristic life fail many times over a
	// 10000h horizon, but a mirrored pair rarely loses both at once.
	sawFailure := false
	for _, r := range results {
		if r.FailureEvents > 0 {
			sawFailure = true
		}
		if r.Availability() < 0.5 {
			t.Errorf("Mirrored pair availability %v implausibly low", r.Availability())
		}
	}
	if !sawFailure {
		t.Error("Expected at least one disk failure across 40 replications")
	}
}

func TestDriverRunInvalidPolicy(t *testing.T) {
	driver := NewDriver(4)
	policy := &config.Policy{Name: "bad", Kind: config.PolicyKindMaintenance, RepairTimeHours: 0}
	cfg := testScenarioConfig(10, 42)

	_, err := driver.Run(context.Background(), policy, cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}

func TestDriverRunInvalidSimulation(t *testing.T) {
	driver := NewDriver(4)
	policy := testMaintenancePolicy()
	cfg := &config.SimulationConfig{HorizonHours: -1, NumSimulations: 10}

	_, err := driver.Run(context.Background(), policy, cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}

func TestDriverRunCancelledContext(t *testing.T) {
	driver := NewDriver(2)
	policy := testMaintenancePolicy()
	cfg := testScenarioConfig(100, 42)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.Run(ctx, policy, cfg)
	if err == nil {
		t.Fatal("Expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}

func TestDriverUnseededRunsProduceResults(t *testing.T) {
	driver := NewDriver(4)
	policy := testMaintenancePolicy()
	cfg := testScenarioConfig(10, 0)

	results, err := driver.Run(context.Background(), policy, cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("Expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Seed == 0 {
			t.Errorf("Replication %d recorded seed 0; unseeded studies must still record derived seeds", i)
		}
	}
}
