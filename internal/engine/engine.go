package engine

import (
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// GravitationalConstant is Newton's constant in SI units (m³/(kg·s²)).
const GravitationalConstant = 6.67430e-11

// DefaultTimeStep is the dt used by Tick when none has been set.
const DefaultTimeStep = 0.01

// Engine owns an ordered set of bodies and advances it tick by tick. Body
// order is fixed at construction so pairwise summation is deterministic and
// runs are bit-reproducible.
//
// The engine performs no timing of its own: an external scheduler calls
// Step (or Tick) at whatever cadence it likes.
type Engine struct {
	// G is the gravitational constant. Defaults to the SI value; scaled
	// scenarios may overwrite it before stepping.
	G float64

	// Softening is an optional Plummer-style length added in quadrature to
	// pair separations. Zero (the default) gives exact Newtonian forces
	// with coincident pairs skipped.
	Softening float64

	dt      float64
	bodies  []Body
	initial []Body // immutable deep copy for Reset
}

// New validates the given bodies and returns an engine owning copies of
// them, with an initial-condition snapshot taken immediately.
func New(bodies ...Body) (*Engine, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	for _, b := range bodies {
		if err := b.validate(); err != nil {
			return nil, err
		}
	}
	e := &Engine{
		G:      GravitationalConstant,
		dt:     DefaultTimeStep,
		bodies: append([]Body(nil), bodies...),
	}
	// Body holds only value fields, so a slice copy is a deep copy.
	e.initial = append([]Body(nil), e.bodies...)
	return e, nil
}

// Len returns the number of bodies.
func (e *Engine) Len() int { return len(e.bodies) }

// Bodies returns a deep copy of the current body states for rendering or
// analysis. Mutating the returned slice never affects the simulation.
func (e *Engine) Bodies() []Body {
	return append([]Body(nil), e.bodies...)
}

// SetTimeStep updates the dt used by subsequent Tick calls. The engine
// accepts any positive finite value; range policy (the UI bounds it to
// [0.001, 0.1]) belongs to the caller.
func (e *Engine) SetTimeStep(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return ErrInvalidTimeStep
	}
	e.dt = dt
	return nil
}

// TimeStep returns the dt used by Tick.
func (e *Engine) TimeStep() float64 { return e.dt }

// Tick advances one step with the engine's current time step.
func (e *Engine) Tick() { e.Step(e.dt) }

// Step advances the simulation by one tick of the given dt: all pairwise
// forces are accumulated first, then every body is integrated. The two
// phases never overlap; integration depends on the complete net force.
func (e *Engine) Step(dt float64) {
	e.accumulateForces()
	e.integrate(dt)
}

// Reset restores every body to the initial-condition snapshot, discarding
// all evolution. Copy-out semantics: the snapshot itself is never touched,
// so Reset is idempotent.
func (e *Engine) Reset() {
	copy(e.bodies, e.initial)
}

// accumulateForces computes the net gravitational force on every body by
// summing over unordered pairs, each visited exactly once. Coincident
// bodies have no defined direction; their pair contributes zero force
// rather than an error.
func (e *Engine) accumulateForces() {
	bs := e.bodies
	for i := range bs {
		bs[i].Force = vec.Vec3{}
	}
	eps2 := e.Softening * e.Softening
	for i := 0; i < len(bs); i++ {
		for j := i + 1; j < len(bs); j++ {
			r := bs[j].Position.Sub(bs[i].Position)
			d2 := r.NormSq()
			if d2 == 0 {
				continue
			}
			f := e.G * bs[i].Mass * bs[j].Mass / (d2 + eps2)
			fv := r.Normalize().Scale(f)
			// Newton's third law: equal and opposite.
			bs[i].Force = bs[i].Force.Add(fv)
			bs[j].Force = bs[j].Force.Sub(fv)
		}
	}
}

// integrate applies the kick-drift leapfrog update to every body: the
// velocity kick uses the force at the current position, the position drift
// uses the already-updated velocity. dt is constant across all bodies
// within a tick.
func (e *Engine) integrate(dt float64) {
	for i := range e.bodies {
		b := &e.bodies[i]
		b.Acceleration = b.Force.Scale(1 / b.Mass)
		b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}
}
