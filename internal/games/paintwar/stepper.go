package paintwar

import (
	"fmt"

	"github.com/vovakirdan/tui-paintwar/internal/config"
)

// DefaultFixedSubSteps is the sub-step count used by the grid mode.
const DefaultFixedSubSteps = 50

// Simulation is what the driver advances. *physics.World implements it.
type Simulation interface {
	Step(dt float64)
	MaxSpeed() float64
}

// SubStepPolicy decides how many sub-steps a frame is split into.
type SubStepPolicy interface {
	SubSteps(sim Simulation) int
}

// FixedPolicy always uses Count sub-steps.
type FixedPolicy struct {
	Count int
}

// SubSteps returns Count.
func (p FixedPolicy) SubSteps(Simulation) int {
	return p.Count
}

// Tier maps speeds up to and including MaxSpeed to Steps sub-steps.
type Tier struct {
	MaxSpeed float64
	Steps    int
}

// AdaptivePolicy picks a sub-step count from the fastest body's speed.
// Tiers are checked in order; speeds above every tier use Above.
type AdaptivePolicy struct {
	Tiers []Tier
	Above int
}

// DefaultAdaptivePolicy returns the classic tiers: up to 5 -> 1, up to 10 -> 2, faster -> 4.
func DefaultAdaptivePolicy() AdaptivePolicy {
	return AdaptivePolicy{
		Tiers: []Tier{{MaxSpeed: 5, Steps: 1}, {MaxSpeed: 10, Steps: 2}},
		Above: 4,
	}
}

// SubSteps returns the count for the current maximum speed.
func (p AdaptivePolicy) SubSteps(sim Simulation) int {
	speed := sim.MaxSpeed()
	for _, t := range p.Tiers {
		if speed <= t.MaxSpeed {
			return t.Steps
		}
	}
	return p.Above
}

// NewPolicy builds a policy from config, validating it first.
func NewPolicy(cfg config.SubStepConfig) (SubStepPolicy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("paintwar: sub-steps: %w", err)
	}
	if cfg.Policy == config.PolicyFixed {
		return FixedPolicy{Count: cfg.Count}, nil
	}
	tiers := make([]Tier, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		tiers[i] = Tier{MaxSpeed: t.MaxSpeed, Steps: t.Steps}
	}
	return AdaptivePolicy{Tiers: tiers, Above: cfg.Above}, nil
}

// Driver splits one frame's elapsed time into sub-steps.
type Driver struct {
	Policy SubStepPolicy
	last   int
}

// Advance runs the policy's sub-step count against sim and returns it.
// The deltas passed to sim.Step add up to exactly dt: every step but the
// last gets dt/n and the last gets what remains. A non-positive dt runs
// nothing. A policy returning n <= 0 is a programming error and panics.
func (d *Driver) Advance(sim Simulation, dt float64) int {
	if dt <= 0 {
		d.last = 0
		return 0
	}

	n := d.Policy.SubSteps(sim)
	if n <= 0 {
		panic(fmt.Sprintf("paintwar: sub-step count must be positive, got %d", n))
	}

	step := dt / float64(n)
	done := 0.0
	for i := 0; i < n-1; i++ {
		sim.Step(step)
		done += step
	}
	sim.Step(dt - done)

	d.last = n
	return n
}

// Last returns the sub-step count of the most recent Advance.
func (d *Driver) Last() int {
	return d.last
}
