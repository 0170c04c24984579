package redundancy

import (
	"fmt"

	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/internal/engine"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/config"
	"github.com/alexrdnk/Data-Center-Maintenance-Simulator/pkg/models"
)

// arrayModel implements engine.RedundancyModel for RAID-style array
// policies. The verdict depends on how many disks are Down at the same
// time relative to the level's fault tolerance. When a controller is
// configured it sits in front of the array as a single point of
// failure and occupies the last slot of the component table.
type arrayModel struct {
	level      int
	disks      int
	tolerance  int
	controller bool
}

// NewArrayModelFromConfig creates an array model from the array block
// of a policy.
func NewArrayModelFromConfig(cfg *config.ArraySpec) (engine.RedundancyModel, error) {
	tolerance, err := FaultTolerance(cfg.RAIDLevel, cfg.NumberOfDisks)
	if err != nil {
		return nil, err
	}
	return &arrayModel{
		level:      cfg.RAIDLevel,
		disks:      cfg.NumberOfDisks,
		tolerance:  tolerance,
		controller: cfg.ControllerMTTF > 0,
	}, nil
}

// FaultTolerance returns how many concurrent disk failures an array at
// the given RAID level survives. RAID 0 tolerates none, RAID 1
// tolerates all but one mirror, RAID 5 exactly one, RAID 6 exactly
// two. The tolerance never exceeds disks-1, so a one-disk array
// collapses to the RAID 0 single-point-of-failure behavior whatever
// level it claims.
func FaultTolerance(level, disks int) (int, error) {
	var tolerance int
	switch level {
	case 0:
		tolerance = 0
	case 1:
		tolerance = disks - 1
	case 5:
		tolerance = 1
	case 6:
		tolerance = 2
	default:
		return 0, fmt.Errorf("%w: unsupported raid level %d", config.ErrInvalidConfig, level)
	}
	if tolerance > disks-1 {
		tolerance = disks - 1
	}
	if tolerance < 0 {
		tolerance = 0
	}
	return tolerance, nil
}

func (m *arrayModel) Name() string {
	return fmt.Sprintf("raid%d", m.level)
}

func (m *arrayModel) Evaluate(components []*engine.Component) models.Status {
	if m.controller && len(components) > m.disks {
		if components[len(components)-1].IsDown() {
			return models.StatusDown
		}
	}

	downDisks := 0
	for _, c := range components[:m.disks] {
		if c.IsDown() {
			downDisks++
		}
	}
	if downDisks > m.tolerance {
		return models.StatusDown
	}
	return models.StatusUp
}
