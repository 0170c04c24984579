package report

import (
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

const (
	chartHeight   = 512
	chartBarWidth = 60
)

// RenderCharts renders the study's comparison bar charts (availability,
// downtime, cost) as PNG files under dir and returns the paths written.
func RenderCharts(dir string, study *models.StudyResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}

	availabilityTitle := "Mean availability by policy (%)"
	if study.SLAAvailability > 0 {
		availabilityTitle = fmt.Sprintf("Mean availability by policy (%%, SLA target %.2f%%)", study.SLAAvailability*100)
	}

	specs := []struct {
		file  string
		title string
		value func(models.PolicyResult) float64
	}{
		{"availability.png", availabilityTitle, func(r models.PolicyResult) float64 { return r.MeanAvailability * 100 }},
		{"downtime.png", "Mean downtime by policy (hours)", func(r models.PolicyResult) float64 { return r.MeanDowntime }},
		{"cost.png", "Mean total cost by policy", func(r models.PolicyResult) float64 { return r.MeanCost }},
	}

	paths := make([]string, 0, len(specs))
	for _, spec := range specs {
		path := filepath.Join(dir, spec.file)
		if err := renderBarChart(path, spec.title, study, spec.value); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// renderBarChart renders one bar per policy with the bars anchored at
// zero.
func renderBarChart(path, title string, study *models.StudyResult, value func(models.PolicyResult) float64) error {
	bars := make([]chart.Value, 0, len(study.Results))
	for _, r := range study.Results {
		bars = append(bars, chart.Value{
			Label: r.Policy,
			Value: value(r),
		})
	}

	graph := chart.BarChart{
		Title:        title,
		Height:       chartHeight,
		BarWidth:     chartBarWidth,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file %s: %w", path, err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart %s: %w", path, err)
	}
	return f.Close()
}
