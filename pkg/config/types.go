package config

// DefaultWeibullShape is the time-to-failure shape used when a policy
// does not set one. Shape 2 models wear-out: the hazard rate grows as
// the component ages.
const DefaultWeibullShape = 2.0

// PolicyKind tags the two policy variants.
type PolicyKind string

const (
	// PolicyKindMaintenance is a single logical component whose failure
	// is failure of the system.
	PolicyKindMaintenance PolicyKind = "maintenance"

	// PolicyKindArray is a RAID-style disk array with a redundancy level.
	PolicyKindArray PolicyKind = "array"
)

// Scenario is a full simulation scenario: global parameters plus the
// competing policies to evaluate against each other.
type Scenario struct {
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
	Policies   []Policy         `yaml:"policies" json:"policies"`
}

// SimulationConfig holds the parameters shared read-only by every run.
type SimulationConfig struct {
	HorizonHours   float64    `yaml:"horizon_hours" json:"horizon_hours"`
	NumSimulations int        `yaml:"num_simulations" json:"num_simulations"`
	Seed           int64      `yaml:"seed,omitempty" json:"seed,omitempty"`
	MaxParallel    int        `yaml:"max_parallel,omitempty" json:"max_parallel,omitempty"`
	SLATargets     SLATargets `yaml:"sla_targets" json:"sla_targets"`
}

// SLATargets are the service-level thresholds aggregated results are
// checked against. Availability accepts either a fraction in (0,1] or
// a percentage in (1,100]; Normalize folds the latter into a fraction.
type SLATargets struct {
	Availability     float64 `yaml:"availability" json:"availability"`
	MaxDowntimeHours float64 `yaml:"max_downtime_hours" json:"max_downtime_hours"`
}

// Normalize returns the availability target as a fraction in (0,1].
func (s SLATargets) Normalize() float64 {
	if s.Availability > 1 {
		return s.Availability / 100.0
	}
	return s.Availability
}

// Policy is a tagged variant: Kind selects which of the two spec
// blocks must be populated. Repair and cost fields are common to both.
type Policy struct {
	Name string     `yaml:"name" json:"name"`
	Kind PolicyKind `yaml:"kind" json:"kind"`

	// RepairTimeHours is the nominal repair duration. When
	// RepairTimeJitter is positive, actual repairs draw uniformly from
	// [repair_time - jitter, repair_time + jitter].
	RepairTimeHours  float64 `yaml:"repair_time" json:"repair_time"`
	RepairTimeJitter float64 `yaml:"repair_time_jitter,omitempty" json:"repair_time_jitter,omitempty"`

	Maintenance *MaintenanceSpec `yaml:"maintenance,omitempty" json:"maintenance,omitempty"`
	Array       *ArraySpec       `yaml:"array,omitempty" json:"array,omitempty"`

	Costs CostSpec `yaml:"costs" json:"costs"`
}

// MaintenanceSpec parametrizes a single-component maintenance policy.
type MaintenanceSpec struct {
	// AvgUsageTime is the Weibull scale (characteristic life) of the
	// component's time to failure, in hours.
	AvgUsageTime float64 `yaml:"avg_usage_time" json:"avg_usage_time"`
	WeibullShape float64 `yaml:"weibull_shape,omitempty" json:"weibull_shape,omitempty"`
}

// ArraySpec parametrizes a RAID-style disk array policy.
type ArraySpec struct {
	RAIDLevel     int     `yaml:"raid_level" json:"raid_level"`
	NumberOfDisks int     `yaml:"number_of_disks" json:"number_of_disks"`
	DiskMTTF      float64 `yaml:"disk_mttf" json:"disk_mttf"`
	WeibullShape  float64 `yaml:"weibull_shape,omitempty" json:"weibull_shape,omitempty"`

	// ControllerMTTF, when positive, adds a shared controller component
	// whose failure takes the whole array down regardless of RAID level.
	ControllerMTTF float64 `yaml:"controller_mttf,omitempty" json:"controller_mttf,omitempty"`
}

// CostSpec carries the per-event and per-hour cost parameters of a
// policy. Maintenance cost accrues per completed repair, replacement
// and service cost per failure, lost revenue per hour of downtime.
type CostSpec struct {
	MaintenanceCost    float64 `yaml:"maintenance_cost" json:"maintenance_cost"`
	ReplacementCost    float64 `yaml:"replacement_cost" json:"replacement_cost"`
	ServiceCost        float64 `yaml:"service_cost" json:"service_cost"`
	LostRevenuePerHour float64 `yaml:"lost_revenue_per_hour,omitempty" json:"lost_revenue_per_hour,omitempty"`
}

// FailureShape returns the policy's Weibull shape, falling back to the
// wear-out default when unset.
func (p *Policy) FailureShape() float64 {
	switch p.Kind {
	case PolicyKindMaintenance:
		if p.Maintenance != nil && p.Maintenance.WeibullShape > 0 {
			return p.Maintenance.WeibullShape
		}
	case PolicyKindArray:
		if p.Array != nil && p.Array.WeibullShape > 0 {
			return p.Array.WeibullShape
		}
	}
	return DefaultWeibullShape
}
