package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/utils"
)

// PrintSummary writes the study's per-policy table and ranking to w in
// a fixed-width layout.
func PrintSummary(w io.Writer, study *models.StudyResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Study %s\n", study.ID)
	fmt.Fprintf(tw, "Horizon: %s\tReplications: %d\tSeed: %d\tElapsed: %s\n\n",
		utils.FormatHours(study.Horizon),
		study.NumSimulations,
		study.Seed,
		utils.FormatDuration(study.WallDuration))

	fmt.Fprintln(tw, "POLICY\tKIND\tAVAILABILITY\tCI95\tDOWNTIME\tP95 DT\tMTBF\tMTTR\tCOST\tSLA")
	for _, r := range study.Results {
		fmt.Fprintf(tw, "%s\t%s\t%.4f%%\t[%.4f%%, %.4f%%]\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			r.Policy,
			r.Kind,
			r.MeanAvailability*100,
			r.AvailabilityCI.Lower*100,
			r.AvailabilityCI.Upper*100,
			utils.FormatHours(r.MeanDowntime),
			utils.FormatHours(r.P95Downtime),
			mtbfCell(r),
			mttrCell(r),
			r.MeanCost,
			complianceCell(r.SLACompliant))
	}

	if c := study.Comparison; c != nil {
		fmt.Fprintf(tw, "\nBest availability: %s\n", c.BestAvailability)
		fmt.Fprintf(tw, "Lowest cost: %s\n", c.BestCost)
		fmt.Fprintf(tw, "Lowest downtime: %s\n", c.LowestDowntime)
		if len(c.Compliant) > 0 {
			fmt.Fprintf(tw, "SLA compliant: %s\n", strings.Join(c.Compliant, ", "))
		} else {
			fmt.Fprintln(tw, "SLA compliant: none")
		}

		if len(c.Deltas) > 0 {
			fmt.Fprintf(tw, "\nCompared to %s:\n", c.BestAvailability)
			fmt.Fprintln(tw, "POLICY\tAVAIL DIFF\tDOWNTIME DIFF\tCOST DIFF")
			for _, d := range c.Deltas {
				fmt.Fprintf(tw, "%s\t%+.4f%%\t%+.2fh\t%+.2f\n",
					d.Policy,
					d.AvailabilityDiff*100,
					d.DowntimeDiff,
					d.CostDiff)
			}
		}
	}

	return tw.Flush()
}

// mtbfCell renders the MTBF column, or a dash when no run of the
// policy recorded a failure.
func mtbfCell(r models.PolicyResult) string {
	if r.MTBFExcludedRuns >= r.Replications {
		return "-"
	}
	return utils.FormatHours(r.MeanMTBF)
}

// mttrCell renders the MTTR column, or a dash when no run recorded a
// completed repair.
func mttrCell(r models.PolicyResult) string {
	if r.MTTRExcludedRuns >= r.Replications {
		return "-"
	}
	return utils.FormatHours(r.MeanMTTR)
}

func complianceCell(compliant bool) string {
	if compliant {
		return "yes"
	}
	return "no"
}
