package redundancy

import (
	"fmt"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/engine"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
)

// ForPolicy selects the redundancy model for a policy variant.
// Maintenance policies map their single unit's status straight through;
// array policies apply the fault tolerance of their RAID level.
func ForPolicy(p *config.Policy) (engine.RedundancyModel, error) {
	switch p.Kind {
	case config.PolicyKindMaintenance:
		return NewSingleComponentModel(), nil
	case config.PolicyKindArray:
		return NewArrayModelFromConfig(p.Array)
	default:
		return nil, fmt.Errorf("%w: no redundancy model for policy kind %q", config.ErrInvalidConfig, p.Kind)
	}
}
