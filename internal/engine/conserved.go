package engine

import (
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// Energy returns total mechanical energy: kinetic plus pairwise
// gravitational potential. Coincident pairs are skipped, matching the
// force pass.
func (e *Engine) Energy() float64 {
	bs := e.bodies
	total := 0.0
	eps2 := e.Softening * e.Softening
	for i := range bs {
		total += bs[i].KineticEnergy()
		for j := i + 1; j < len(bs); j++ {
			d2 := bs[j].Position.Sub(bs[i].Position).NormSq()
			if d2 == 0 {
				continue
			}
			total -= e.G * bs[i].Mass * bs[j].Mass / math.Sqrt(d2+eps2)
		}
	}
	return total
}

// Momentum returns total linear momentum Σ m·v. Gravity is internal, so
// this stays constant up to floating-point drift.
func (e *Engine) Momentum() vec.Vec3 {
	var p vec.Vec3
	for i := range e.bodies {
		p = p.Add(e.bodies[i].Velocity.Scale(e.bodies[i].Mass))
	}
	return p
}

// AngularMomentum returns Σ m·(r × v) about the origin.
func (e *Engine) AngularMomentum() vec.Vec3 {
	var l vec.Vec3
	for i := range e.bodies {
		b := e.bodies[i]
		l = l.Add(b.Position.Cross(b.Velocity).Scale(b.Mass))
	}
	return l
}
