// Package scenario constructs physically plausible initial conditions:
// bodies seeded on circular Keplerian orbits so the system starts near
// dynamical equilibrium instead of an arbitrary configuration.
package scenario

import (
	"fmt"
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// CircularOrbitSpeed returns the speed sqrt(G·M/r) of a circular orbit of
// radius r about a central mass M.
func CircularOrbitSpeed(g, centralMass, radius float64) float64 {
	return math.Sqrt(g * centralMass / radius)
}

// OrbitalPeriod returns 2π·sqrt(r³/(G·M)), the period of that orbit.
func OrbitalPeriod(g, centralMass, radius float64) float64 {
	return 2 * math.Pi * math.Sqrt(radius*radius*radius/(g*centralMass))
}

// Orbiting builds a body of the given mass on a circular orbit about
// central. The orbit lies in the plane normal to axis; phase is the angle
// along the orbit from an arbitrary in-plane reference. The tangential
// velocity is perpendicular to the radius vector and rides on top of the
// central body's own velocity, so moons of moving planets work too.
//
// Multi-body coupling perturbs the orbit once other masses join the set;
// the construction is exact only for the isolated two-body case.
func Orbiting(central engine.Body, g float64, name string, mass, radius, phase float64, axis vec.Vec3) (engine.Body, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return engine.Body{}, fmt.Errorf("scenario: orbit radius must be positive and finite, got %g", radius)
	}
	n := axis.Normalize()
	if n.NormSq() == 0 {
		n = vec.Vec3{Z: 1}
	}

	// In-plane orthonormal basis. The reference vector only needs to be
	// non-parallel to the orbit axis.
	ref := vec.Vec3{X: 1}
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = vec.Vec3{Y: 1}
	}
	u := n.Cross(ref).Normalize()
	w := n.Cross(u)

	offset := u.Scale(radius * math.Cos(phase)).Add(w.Scale(radius * math.Sin(phase)))
	speed := CircularOrbitSpeed(g, central.Mass, radius)
	tangent := n.Cross(offset.Normalize())

	return engine.NewBody(name, mass,
		central.Position.Add(offset),
		central.Velocity.Add(tangent.Scale(speed)),
	)
}
