package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidConfig marks every validation failure raised by this
// package. Callers branch with errors.Is to distinguish bad input from
// I/O or runtime failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// LoadScenario loads, parses, and validates a scenario file. The format
// is selected by extension: .json parses as JSON, everything else as YAML.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var scenario *Scenario
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		scenario, err = ParseScenarioJSON(data)
	} else {
		scenario, err = ParseScenarioYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return scenario, nil
}

// ValidateScenario performs full validation on a scenario. Errors wrap
// ErrInvalidConfig and name the offending field.
func ValidateScenario(s *Scenario) error {
	if err := ValidateSimulation(&s.Simulation); err != nil {
		return err
	}

	if len(s.Policies) == 0 {
		return fmt.Errorf("%w: at least one policy must be defined", ErrInvalidConfig)
	}

	names := make(map[string]bool)
	for i := range s.Policies {
		p := &s.Policies[i]
		if err := ValidatePolicy(p); err != nil {
			return err
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate policy name: %s", ErrInvalidConfig, p.Name)
		}
		names[p.Name] = true
	}

	return nil
}

// ValidateSimulation validates the global simulation parameters.
func ValidateSimulation(c *SimulationConfig) error {
	if c.HorizonHours <= 0 {
		return fmt.Errorf("%w: horizon_hours must be positive, got %g", ErrInvalidConfig, c.HorizonHours)
	}
	if c.NumSimulations < 1 {
		return fmt.Errorf("%w: num_simulations must be at least 1, got %d", ErrInvalidConfig, c.NumSimulations)
	}
	if c.MaxParallel < 0 {
		return fmt.Errorf("%w: max_parallel cannot be negative, got %d", ErrInvalidConfig, c.MaxParallel)
	}

	sla := c.SLATargets
	if sla.Availability <= 0 || sla.Availability > 100 {
		return fmt.Errorf("%w: sla_targets.availability must be in (0,1] or a percentage in (1,100], got %g",
			ErrInvalidConfig, sla.Availability)
	}
	if sla.MaxDowntimeHours < 0 {
		return fmt.Errorf("%w: sla_targets.max_downtime_hours cannot be negative, got %g",
			ErrInvalidConfig, sla.MaxDowntimeHours)
	}

	return nil
}

// ValidatePolicy validates one policy variant. The Monte Carlo driver
// calls this again before simulating so that library callers bypassing
// the loader still fail fast.
func ValidatePolicy(p *Policy) error {
	if p.Name == "" {
		return fmt.Errorf("%w: policy name cannot be empty", ErrInvalidConfig)
	}

	if p.RepairTimeHours <= 0 {
		return fmt.Errorf("%w: policy %q: repair_time must be positive, got %g",
			ErrInvalidConfig, p.Name, p.RepairTimeHours)
	}
	if p.RepairTimeJitter < 0 || p.RepairTimeJitter > p.RepairTimeHours {
		return fmt.Errorf("%w: policy %q: repair_time_jitter must be between 0 and repair_time, got %g",
			ErrInvalidConfig, p.Name, p.RepairTimeJitter)
	}

	if err := validateCosts(p); err != nil {
		return err
	}

	switch p.Kind {
	case PolicyKindMaintenance:
		if p.Maintenance == nil {
			return fmt.Errorf("%w: policy %q: kind is maintenance but the maintenance block is missing",
				ErrInvalidConfig, p.Name)
		}
		if p.Array != nil {
			return fmt.Errorf("%w: policy %q: kind is maintenance but an array block is present",
				ErrInvalidConfig, p.Name)
		}
		return validateMaintenanceSpec(p.Name, p.Maintenance)
	case PolicyKindArray:
		if p.Array == nil {
			return fmt.Errorf("%w: policy %q: kind is array but the array block is missing",
				ErrInvalidConfig, p.Name)
		}
		if p.Maintenance != nil {
			return fmt.Errorf("%w: policy %q: kind is array but a maintenance block is present",
				ErrInvalidConfig, p.Name)
		}
		return validateArraySpec(p.Name, p.Array)
	default:
		return fmt.Errorf("%w: policy %q: unknown kind %q (must be maintenance or array)",
			ErrInvalidConfig, p.Name, p.Kind)
	}
}

func validateCosts(p *Policy) error {
	c := p.Costs
	if c.MaintenanceCost < 0 {
		return fmt.Errorf("%w: policy %q: costs.maintenance_cost cannot be negative, got %g",
			ErrInvalidConfig, p.Name, c.MaintenanceCost)
	}
	if c.ReplacementCost < 0 {
		return fmt.Errorf("%w: policy %q: costs.replacement_cost cannot be negative, got %g",
			ErrInvalidConfig, p.Name, c.ReplacementCost)
	}
	if c.ServiceCost < 0 {
		return fmt.Errorf("%w: policy %q: costs.service_cost cannot be negative, got %g",
			ErrInvalidConfig, p.Name, c.ServiceCost)
	}
	if c.LostRevenuePerHour < 0 {
		return fmt.Errorf("%w: policy %q: costs.lost_revenue_per_hour cannot be negative, got %g",
			ErrInvalidConfig, p.Name, c.LostRevenuePerHour)
	}
	return nil
}

func validateMaintenanceSpec(name string, m *MaintenanceSpec) error {
	if m.AvgUsageTime <= 0 {
		return fmt.Errorf("%w: policy %q: maintenance.avg_usage_time must be positive, got %g",
			ErrInvalidConfig, name, m.AvgUsageTime)
	}
	if m.WeibullShape < 0 {
		return fmt.Errorf("%w: policy %q: maintenance.weibull_shape cannot be negative, got %g",
			ErrInvalidConfig, name, m.WeibullShape)
	}
	return nil
}

func validateArraySpec(name string, a *ArraySpec) error {
	minDisks := 0
	switch a.RAIDLevel {
	case 0:
		minDisks = 1
	case 1:
		minDisks = 2
	case 5:
		// Stripe width 2 plus one parity disk.
		minDisks = 3
	case 6:
		// Stripe width 2 plus two parity disks.
		minDisks = 4
	default:
		return fmt.Errorf("%w: policy %q: array.raid_level must be 0, 1, 5, or 6, got %d",
			ErrInvalidConfig, name, a.RAIDLevel)
	}

	if a.NumberOfDisks < minDisks {
		return fmt.Errorf("%w: policy %q: array.number_of_disks must be at least %d for raid level %d, got %d",
			ErrInvalidConfig, name, minDisks, a.RAIDLevel, a.NumberOfDisks)
	}
	if a.DiskMTTF <= 0 {
		return fmt.Errorf("%w: policy %q: array.disk_mttf must be positive, got %g",
			ErrInvalidConfig, name, a.DiskMTTF)
	}
	if a.WeibullShape < 0 {
		return fmt.Errorf("%w: policy %q: array.weibull_shape cannot be negative, got %g",
			ErrInvalidConfig, name, a.WeibullShape)
	}
	if a.ControllerMTTF < 0 {
		return fmt.Errorf("%w: policy %q: array.controller_mttf cannot be negative, got %g",
			ErrInvalidConfig, name, a.ControllerMTTF)
	}
	return nil
}
