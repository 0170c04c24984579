package montecarlo

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/engine"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/redundancy"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/sampling"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/logger"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// seedStride spaces per-replication seeds apart so that neighbouring
// replications never start from trivially related streams.
const seedStride = 9973

// Driver executes the Monte Carlo replications for one policy. The
// replications are independent pure functions of (policy, config,
// derived seed), so the driver fans them out over a bounded pool of
// goroutines and collects results by replication index.
type Driver struct {
	maxParallel int
	logger      *slog.Logger
}

// NewDriver creates a driver. maxParallel bounds how many replications
// execute concurrently; zero or less means one worker per CPU.
func NewDriver(maxParallel int) *Driver {
	if maxParallel <= 0 {
		maxParallel = runtime.NumCPU()
	}
	return &Driver{
		maxParallel: maxParallel,
		logger:      logger.Default,
	}
}

// SetLogger sets the driver's logger
func (d *Driver) SetLogger(l *slog.Logger) {
	d.logger = l
}

// ReplicationSeed derives the RNG seed for one replication from the
// study's base seed. The derivation is a pure function of (base,
// index), which makes results identical no matter in which order or on
// how many workers the replications execute. Zero is remapped because
// the random source treats it as "seed from the clock".
func ReplicationSeed(base int64, index int) int64 {
	seed := base + int64(index+1)*seedStride
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Run executes num_simulations independent replications of the policy
// and returns one RunResult per replication, ordered by replication
// index. Configuration is re-validated up front so that library
// callers bypassing the loader still fail before any simulation work.
// If any replication fails the whole batch fails; partial result sets
// are never returned.
func (d *Driver) Run(ctx context.Context, policy *config.Policy, cfg *config.SimulationConfig) ([]models.RunResult, error) {
	if err := config.ValidatePolicy(policy); err != nil {
		return nil, err
	}
	if err := config.ValidateSimulation(cfg); err != nil {
		return nil, err
	}

	model, err := redundancy.ForPolicy(policy)
	if err != nil {
		return nil, err
	}

	base := cfg.Seed
	if base == 0 {
		// Unseeded studies draw a fresh base per invocation.
		base = time.Now().UnixNano()
	}

	n := cfg.NumSimulations
	results := make([]models.RunResult, n)
	errs := make([]error, n)

	// Limit parallelism
	semaphore := make(chan struct{}, d.maxParallel)
	var wg sync.WaitGroup

	d.logger.Debug("Starting replications",
		"policy", policy.Name,
		"replications", n,
		"max_parallel", d.maxParallel)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			// Acquire semaphore
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := ctx.Err(); err != nil {
				errs[idx] = fmt.Errorf("replication %d: %w", idx, err)
				return
			}

			result, err := replicate(policy, cfg, model, ReplicationSeed(base, idx))
			if err != nil {
				errs[idx] = fmt.Errorf("replication %d: %w", idx, err)
				return
			}
			results[idx] = *result
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", policy.Name, err)
		}
	}

	d.logger.Debug("Replications completed",
		"policy", policy.Name,
		"replications", n)

	return results, nil
}

// replicate executes a single replication with a fresh component table,
// event queue, and random stream.
func replicate(policy *config.Policy, cfg *config.SimulationConfig, model engine.RedundancyModel, seed int64) (*models.RunResult, error) {
	sampler := sampling.NewSampler(seed)
	components := engine.BuildComponents(policy)
	run := engine.NewRun(policy, cfg.HorizonHours, sampler, model, components)
	return run.Execute()
}
