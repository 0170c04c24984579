package study

import (
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// Compare ranks the per-policy results of one study. Winners are
// picked by mean availability (highest, ties going to the cheaper
// policy), mean cost (lowest), and mean downtime (lowest). Every other
// policy gets a delta row against the availability winner, so the
// trade-off of choosing a cheaper but less available policy is visible
// at a glance.
func Compare(results []models.PolicyResult) *models.Comparison {
	if len(results) == 0 {
		return nil
	}

	bestAvail := 0
	bestCost := 0
	lowestDowntime := 0
	for i, r := range results {
		leader := results[bestAvail]
		if r.MeanAvailability > leader.MeanAvailability ||
			(r.MeanAvailability == leader.MeanAvailability && r.MeanCost < leader.MeanCost) {
			bestAvail = i
		}
		if r.MeanCost < results[bestCost].MeanCost {
			bestCost = i
		}
		if r.MeanDowntime < results[lowestDowntime].MeanDowntime {
			lowestDowntime = i
		}
	}

	reference := results[bestAvail]

	comparison := &models.Comparison{
		BestAvailability: reference.Policy,
		BestCost:         results[bestCost].Policy,
		LowestDowntime:   results[lowestDowntime].Policy,
	}

	for _, r := range results {
		if r.SLACompliant {
			comparison.Compliant = append(comparison.Compliant, r.Policy)
		}
		if r.Policy == reference.Policy {
			continue
		}
		comparison.Deltas = append(comparison.Deltas, models.PolicyDelta{
			Policy:           r.Policy,
			AvailabilityDiff: r.MeanAvailability - reference.MeanAvailability,
			DowntimeDiff:     r.MeanDowntime - reference.MeanDowntime,
			CostDiff:         r.MeanCost - reference.MeanCost,
			MTBFDiff:         r.MeanMTBF - reference.MeanMTBF,
		})
	}

	return comparison
}
