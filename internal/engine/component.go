package engine

import (
	"fmt"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// Component tracks one physical unit's operational status and
// failure/repair timeline within a single run. Components are created
// Up, mutated only by the run that owns them, and discarded when the
// run completes. They are never shared across replications.
type Component struct {
	ID     int
	Name   string
	Status models.Status

	// Weibull time-to-failure parameters for this unit.
	FailShape float64
	FailScale float64

	NextFailureTime    float64
	NextRepairTime     float64
	FailureCount       int
	RepairCount        int
	DownSince          float64
	CumulativeDowntime float64
}

// NewComponent creates a component in the Up state.
func NewComponent(id int, name string, failShape, failScale float64) *Component {
	return &Component{
		ID:        id,
		Name:      name,
		Status:    models.StatusUp,
		FailShape: failShape,
		FailScale: failScale,
	}
}

// MarkFailed transitions the component to Down at the given simulated
// time.
func (c *Component) MarkFailed(now float64) {
	c.Status = models.StatusDown
	c.FailureCount++
	c.DownSince = now
}

// MarkRepaired transitions the component back to Up at the given
// simulated time and accrues the elapsed Down interval.
func (c *Component) MarkRepaired(now float64) {
	c.Status = models.StatusUp
	c.RepairCount++
	c.CumulativeDowntime += now - c.DownSince
}

// IsDown reports whether the component is currently Down.
func (c *Component) IsDown() bool {
	return c.Status == models.StatusDown
}

// BuildComponents allocates the component table for one replication of
// the given policy. Maintenance policies get a single unit. Array
// policies get one component per disk; when a controller MTTF is
// configured the controller is appended as the last component, which is
// the layout the array redundancy model expects.
func BuildComponents(p *config.Policy) []*Component {
	shape := p.FailureShape()

	switch p.Kind {
	case config.PolicyKindArray:
		a := p.Array
		n := a.NumberOfDisks
		components := make([]*Component, 0, n+1)
		for i := 0; i < n; i++ {
			components = append(components, NewComponent(i, fmt.Sprintf("disk-%d", i), shape, a.DiskMTTF))
		}
		if a.ControllerMTTF > 0 {
			components = append(components, NewComponent(n, "controller", shape, a.ControllerMTTF))
		}
		return components
	default:
		return []*Component{NewComponent(0, "unit", shape, p.Maintenance.AvgUsageTime)}
	}
}
