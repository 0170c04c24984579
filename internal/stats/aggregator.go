package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/utils"
)

// ErrNoResults is returned when aggregation is asked to summarize an
// empty result set.
var ErrNoResults = errors.New("no results to aggregate")

// zCI95 is the two-sided 95% normal quantile used for the availability
// confidence interval.
const zCI95 = 1.96

// Aggregate reduces the per-run results of one policy into summary
// statistics and checks them against the SLA targets. Runs that
// recorded zero failures (or zero repairs) carry no MTBF (MTTR)
// estimate; they still count toward availability and cost but are
// excluded from the MTBF/MTTR means, with the exclusion counts
// reported alongside.
func Aggregate(policy *config.Policy, cfg *config.SimulationConfig, results []models.RunResult) (*models.PolicyResult, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: policy %s", ErrNoResults, policy.Name)
	}

	var availability, cost, downtime, failures Welford
	var mtbf, mttr Welford
	downtimes := make([]float64, 0, len(results))

	for _, r := range results {
		availability.Add(r.Availability())
		cost.Add(r.TotalCost)
		downtime.Add(r.Downtime)
		failures.Add(float64(r.FailureEvents))
		downtimes = append(downtimes, r.Downtime)

		if r.MTBFDefined {
			mtbf.Add(r.MTBF)
		}
		if r.MTTRDefined {
			mttr.Add(r.MTTR)
		}
	}

	n := len(results)
	meanAvail := availability.Mean()
	stdAvail := availability.SampleStdDev()
	halfWidth := zCI95 * stdAvail / math.Sqrt(float64(n))

	target := cfg.SLATargets.Normalize()
	meanDowntime := downtime.Mean()
	compliant := meanAvail >= target && meanDowntime <= cfg.SLATargets.MaxDowntimeHours

	return &models.PolicyResult{
		Policy:           policy.Name,
		Kind:             string(policy.Kind),
		Replications:     n,
		MeanAvailability: meanAvail,
		StdAvailability:  stdAvail,
		AvailabilityCI: models.ConfidenceInterval{
			Lower: meanAvail - halfWidth,
			Upper: meanAvail + halfWidth,
		},
		MeanDowntime:     meanDowntime,
		P95Downtime:      utils.P95(downtimes),
		MeanMTBF:         mtbf.Mean(),
		MTBFExcludedRuns: n - mtbf.Count(),
		MeanMTTR:         mttr.Mean(),
		MTTRExcludedRuns: n - mttr.Count(),
		MeanCost:         cost.Mean(),
		StdCost:          cost.SampleStdDev(),
		MeanFailures:     failures.Mean(),
		SLACompliant:     compliant,
	}, nil
}
