// Package metrics provides per-tick observers for conserved quantities
// and divergence of an n-body run.
package metrics

import (
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// EnergyDrift tracks the maximum relative deviation of total mechanical
// energy from its value at the first observation. A symplectic integrator
// keeps this bounded; explicit Euler does not.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(eng *engine.Engine, t float64) {
	energy := eng.Energy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++
	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the largest distance of total linear momentum from
// its first observation. Gravity is internal, so any growth here is
// integration error.
type MomentumDrift struct {
	initial vec.Vec3
	max     float64
	samples int
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(eng *engine.Engine, t float64) {
	p := eng.Momentum()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.max = math.Max(m.max, p.Sub(m.initial).Norm())
}

func (m *MomentumDrift) Value() float64 { return m.max }

func (m *MomentumDrift) Reset() {
	m.initial = vec.Vec3{}
	m.max = 0
	m.samples = 0
}

// Escape reports the fraction of ticks during which any body sat beyond a
// radius bound from the origin. 0 means every body stayed inside for the
// whole run.
type Escape struct {
	bound      float64
	violations int
	samples    int
}

func NewEscape(bound float64) *Escape {
	return &Escape{bound: bound}
}

func (s *Escape) Name() string { return "escape" }

func (s *Escape) Observe(eng *engine.Engine, t float64) {
	s.samples++
	for _, b := range eng.Bodies() {
		if b.Position.Norm() > s.bound {
			s.violations++
			break
		}
	}
}

func (s *Escape) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.violations) / float64(s.samples)
}

func (s *Escape) Reset() {
	s.violations = 0
	s.samples = 0
}
