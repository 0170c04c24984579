package models

import "time"

// Status represents the operational state of a component or of the
// whole system as judged by a redundancy model.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// RunResult is the outcome of a single simulation replication. Once
// produced it is never mutated; the Monte Carlo driver owns the slice
// of results for a policy.
type RunResult struct {
	Seed          int64   `json:"seed"`
	Uptime        float64 `json:"uptime_hours"`
	Downtime      float64 `json:"downtime_hours"`
	FailureEvents int     `json:"failure_events"`
	RepairEvents  int     `json:"repair_events"`
	TotalCost     float64 `json:"total_cost"`

	// MTBF is horizon / failure_events and is undefined when the run
	// recorded no failures; MTTR is downtime / repair_events and is
	// undefined when no repair completed. Undefined estimates carry
	// Defined == false and are excluded from aggregation means.
	MTBF        float64 `json:"mtbf_hours"`
	MTBFDefined bool    `json:"mtbf_defined"`
	MTTR        float64 `json:"mttr_hours"`
	MTTRDefined bool    `json:"mttr_defined"`
}

// Availability returns the fraction of the horizon the system was up.
func (r *RunResult) Availability() float64 {
	total := r.Uptime + r.Downtime
	if total <= 0 {
		return 0
	}
	return r.Uptime / total
}

// ConfidenceInterval is a two-sided interval around a sample mean.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// PolicyResult aggregates all replications of one policy. It is the
// externally visible artifact of the simulation core and the contract
// with every reporter.
type PolicyResult struct {
	Policy       string `json:"policy"`
	Kind         string `json:"kind"`
	Replications int    `json:"replications"`

	MeanAvailability float64            `json:"mean_availability"`
	StdAvailability  float64            `json:"std_availability"`
	AvailabilityCI   ConfidenceInterval `json:"availability_ci_95"`

	MeanDowntime float64 `json:"mean_downtime_hours"`
	P95Downtime  float64 `json:"p95_downtime_hours"`

	MeanMTBF         float64 `json:"mean_mtbf_hours"`
	MTBFExcludedRuns int     `json:"mtbf_excluded_runs"`
	MeanMTTR         float64 `json:"mean_mttr_hours"`
	MTTRExcludedRuns int     `json:"mttr_excluded_runs"`

	MeanCost     float64 `json:"mean_cost"`
	StdCost      float64 `json:"std_cost"`
	MeanFailures float64 `json:"mean_failures"`

	SLACompliant bool `json:"sla_compliant"`
}

// PolicyDelta is the difference between one policy and the study's
// availability winner, computed as this policy's metric minus the
// winner's. A negative availability diff means the winner is more
// available; a negative cost diff means this policy is cheaper.
type PolicyDelta struct {
	Policy           string  `json:"policy"`
	AvailabilityDiff float64 `json:"availability_diff"`
	DowntimeDiff     float64 `json:"downtime_diff_hours"`
	CostDiff         float64 `json:"cost_diff"`
	MTBFDiff         float64 `json:"mtbf_diff_hours"`
}

// Comparison ranks the policies of a finished study.
type Comparison struct {
	BestAvailability string        `json:"best_availability"`
	BestCost         string        `json:"best_cost"`
	LowestDowntime   string        `json:"lowest_downtime"`
	Compliant        []string      `json:"sla_compliant"`
	Deltas           []PolicyDelta `json:"deltas,omitempty"`
}

// StudyResult is the outcome of one full scenario execution: every
// policy simulated, aggregated, and compared.
type StudyResult struct {
	ID             string        `json:"id"`
	StartedAt      time.Time     `json:"started_at"`
	WallDuration   time.Duration `json:"wall_duration"`
	Horizon        float64       `json:"horizon_hours"`
	NumSimulations int           `json:"num_simulations"`
	Seed           int64         `json:"seed"`

	// SLAAvailability echoes the scenario's availability target as a
	// fraction so reports can show results against it.
	SLAAvailability float64 `json:"sla_availability"`

	Results    []PolicyResult `json:"results"`
	Comparison *Comparison    `json:"comparison,omitempty"`
}
