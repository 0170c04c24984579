package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// csvHeader lists the per-policy columns in the order they are
// written. External tooling keys on these names, so treat them as a
// stable interface.
var csvHeader = []string{
	"policy",
	"kind",
	"replications",
	"mean_availability",
	"std_availability",
	"availability_ci_lower",
	"availability_ci_upper",
	"mean_downtime_hours",
	"p95_downtime_hours",
	"mean_mtbf_hours",
	"mtbf_excluded_runs",
	"mean_mttr_hours",
	"mttr_excluded_runs",
	"mean_cost",
	"std_cost",
	"mean_failures",
	"sla_compliant",
}

// WriteCSV writes the study's per-policy table to w, one row per
// policy in study order.
func WriteCSV(w io.Writer, study *models.StudyResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range study.Results {
		record := []string{
			r.Policy,
			r.Kind,
			strconv.Itoa(r.Replications),
			ff(r.MeanAvailability),
			ff(r.StdAvailability),
			ff(r.AvailabilityCI.Lower),
			ff(r.AvailabilityCI.Upper),
			ff(r.MeanDowntime),
			ff(r.P95Downtime),
			ff(r.MeanMTBF),
			strconv.Itoa(r.MTBFExcludedRuns),
			ff(r.MeanMTTR),
			strconv.Itoa(r.MTTRExcludedRuns),
			ff(r.MeanCost),
			ff(r.StdCost),
			ff(r.MeanFailures),
			strconv.FormatBool(r.SLACompliant),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for policy %s: %w", r.Policy, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the study table to the given path.
func WriteCSVFile(path string, study *models.StudyResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", path, err)
	}
	if err := WriteCSV(f, study); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ff renders a float with the shortest exact decimal representation.
func ff(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
