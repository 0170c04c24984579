package redundancy

import (
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/engine"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// singleComponentModel implements engine.RedundancyModel for
// maintenance policies: there is no redundancy, so the system is Down
// whenever its unit is Down.
type singleComponentModel struct{}

// NewSingleComponentModel creates the pass-through model used by
// maintenance policies.
func NewSingleComponentModel() engine.RedundancyModel {
	return &singleComponentModel{}
}

func (m *singleComponentModel) Name() string {
	return "single"
}

func (m *singleComponentModel) Evaluate(components []*engine.Component) models.Status {
	for _, c := range components {
		if c.IsDown() {
			return models.StatusDown
		}
	}
	return models.StatusUp
}
