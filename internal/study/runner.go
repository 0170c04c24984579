package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/montecarlo"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/stats"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/logger"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/utils"
)

// Runner executes a full study: every policy of a scenario is
// simulated against the shared simulation parameters, aggregated into
// summary statistics, and finally ranked.
type Runner struct {
	driver *montecarlo.Driver
	logger *slog.Logger
}

// NewRunner creates a study runner. maxParallel is handed to the
// Monte Carlo driver; zero or less means one worker per CPU.
func NewRunner(maxParallel int) *Runner {
	return &Runner{
		driver: montecarlo.NewDriver(maxParallel),
		logger: logger.Default,
	}
}

// SetLogger sets the runner's logger
func (r *Runner) SetLogger(l *slog.Logger) {
	r.logger = l
	r.driver.SetLogger(l)
}

// Run validates the scenario and simulates every policy in it. The
// first policy whose batch fails aborts the whole study; a study never
// mixes complete and incomplete policy results.
func (r *Runner) Run(ctx context.Context, scenario *config.Scenario) (*models.StudyResult, error) {
	if err := config.ValidateScenario(scenario); err != nil {
		return nil, err
	}

	result := &models.StudyResult{
		ID:              utils.NewStudyID(),
		StartedAt:       time.Now().UTC(),
		Horizon:         scenario.Simulation.HorizonHours,
		NumSimulations:  scenario.Simulation.NumSimulations,
		Seed:            scenario.Simulation.Seed,
		SLAAvailability: scenario.Simulation.SLATargets.Normalize(),
	}

	r.logger.Info("Starting study",
		"study_id", result.ID,
		"policies", len(scenario.Policies),
		"replications", scenario.Simulation.NumSimulations,
		"horizon", utils.FormatHours(scenario.Simulation.HorizonHours))

	start := time.Now()
	for i := range scenario.Policies {
		policy := &scenario.Policies[i]

		policyStart := time.Now()
		runs, err := r.driver.Run(ctx, policy, &scenario.Simulation)
		if err != nil {
			return nil, fmt.Errorf("study %s: %w", result.ID, err)
		}

		aggregated, err := stats.Aggregate(policy, &scenario.Simulation, runs)
		if err != nil {
			return nil, fmt.Errorf("study %s: %w", result.ID, err)
		}

		r.logger.Info("Policy simulated",
			"study_id", result.ID,
			"policy", policy.Name,
			"mean_availability", aggregated.MeanAvailability,
			"mean_cost", aggregated.MeanCost,
			"sla_compliant", aggregated.SLACompliant,
			"elapsed", utils.FormatDuration(time.Since(policyStart)))

		result.Results = append(result.Results, *aggregated)
	}

	result.Comparison = Compare(result.Results)
	result.WallDuration = time.Since(start)

	r.logger.Info("Study completed",
		"study_id", result.ID,
		"policies", len(result.Results),
		"elapsed", utils.FormatDuration(result.WallDuration))

	return result, nil
}
