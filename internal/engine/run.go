package engine

import (
	"errors"
	"fmt"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// ErrRunCompleted is returned when Execute is called on a run that has
// already produced its result.
var ErrRunCompleted = errors.New("run already completed")

// Sampler draws stochastic failure and repair durations. Every run
// holds its own sampler instance so parallel replications never share
// RNG state.
type Sampler interface {
	Seed() int64
	Weibull(shape, scale float64) (float64, error)
	RepairDuration(p *config.Policy) (float64, error)
}

// RedundancyModel maps the component states of one run to a
// system-level verdict.
type RedundancyModel interface {
	Name() string
	Evaluate(components []*Component) models.Status
}

// Run drives one full time-horizon trajectory for one policy. All
// mutable state (component table, event queue, clock) is allocated for
// this replication alone and discarded when it completes, so runs can
// execute in parallel without locking. A Run executes exactly once.
type Run struct {
	policy     *config.Policy
	horizon    float64
	sampler    Sampler
	model      RedundancyModel
	components []*Component
	queue      *EventQueue
	clock      float64
	completed  bool
}

// NewRun creates a run over the given horizon. The sampler and the
// component table must be freshly allocated for this replication.
func NewRun(policy *config.Policy, horizon float64, sampler Sampler, model RedundancyModel, components []*Component) *Run {
	return &Run{
		policy:     policy,
		horizon:    horizon,
		sampler:    sampler,
		model:      model,
		components: components,
		queue:      NewEventQueue(),
	}
}

// Clock returns the current simulated time in hours.
func (r *Run) Clock() float64 {
	return r.clock
}

// Components returns the run's component table.
func (r *Run) Components() []*Component {
	return r.components
}

// Execute advances simulated time from event to event until the
// horizon, then returns the accumulated metrics. The clock only ever
// jumps to the next scheduled failure or repair; there is no fixed time
// step. A sampling failure aborts this replication immediately.
func (r *Run) Execute() (*models.RunResult, error) {
	if r.completed {
		return nil, ErrRunCompleted
	}
	r.completed = true

	for i, c := range r.components {
		if err := r.scheduleFailure(i, c, 0); err != nil {
			return nil, err
		}
	}

	var uptime, downtime, totalCost float64
	var failures, repairs int
	status := r.model.Evaluate(r.components)

	for {
		event := r.queue.Peek()
		if event == nil || event.Time >= r.horizon {
			break
		}
		event = r.queue.Next()

		// Accrue the elapsed interval at the previous system status.
		interval := event.Time - r.clock
		if status == models.StatusUp {
			uptime += interval
		} else {
			downtime += interval
		}
		r.clock = event.Time

		c := r.components[event.Component]
		switch event.Kind {
		case EventKindFailure:
			c.MarkFailed(r.clock)
			failures++
			totalCost += r.policy.Costs.ReplacementCost + r.policy.Costs.ServiceCost
			if err := r.scheduleRepair(event.Component, c); err != nil {
				return nil, err
			}
		case EventKindRepair:
			c.MarkRepaired(r.clock)
			repairs++
			totalCost += r.policy.Costs.MaintenanceCost
			if err := r.scheduleFailure(event.Component, c, r.clock); err != nil {
				return nil, err
			}
		}
		status = r.model.Evaluate(r.components)
	}

	// Clip the final interval to the horizon boundary.
	tail := r.horizon - r.clock
	if status == models.StatusUp {
		uptime += tail
	} else {
		downtime += tail
	}
	r.clock = r.horizon

	for _, c := range r.components {
		if c.IsDown() {
			c.CumulativeDowntime += r.horizon - c.DownSince
		}
	}

	totalCost += downtime * r.policy.Costs.LostRevenuePerHour

	result := &models.RunResult{
		Seed:          r.sampler.Seed(),
		Uptime:        uptime,
		Downtime:      downtime,
		FailureEvents: failures,
		RepairEvents:  repairs,
		TotalCost:     totalCost,
	}
	if failures > 0 {
		result.MTBF = r.horizon / float64(failures)
		result.MTBFDefined = true
	}
	if repairs > 0 {
		result.MTTR = downtime / float64(repairs)
		result.MTTRDefined = true
	}
	return result, nil
}

func (r *Run) scheduleFailure(idx int, c *Component, now float64) error {
	d, err := r.sampler.Weibull(c.FailShape, c.FailScale)
	if err != nil {
		return fmt.Errorf("component %s: %w", c.Name, err)
	}
	c.NextFailureTime = now + d
	r.queue.Schedule(&Event{
		Time:      c.NextFailureTime,
		Kind:      EventKindFailure,
		Priority:  PriorityFailure,
		Component: idx,
	})
	return nil
}

func (r *Run) scheduleRepair(idx int, c *Component) error {
	d, err := r.sampler.RepairDuration(r.policy)
	if err != nil {
		return fmt.Errorf("component %s: %w", c.Name, err)
	}
	c.NextRepairTime = r.clock + d
	r.queue.Schedule(&Event{
		Time:      c.NextRepairTime,
		Kind:      EventKindRepair,
		Priority:  PriorityRepair,
		Component: idx,
	})
	return nil
}
