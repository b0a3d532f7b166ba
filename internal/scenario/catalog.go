package scenario

import (
	"fmt"
	"sort"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// Solar-scale constants used by the built-in scenarios.
const (
	SunMass     = 1.989e30 // kg
	EarthMass   = 5.972e24 // kg
	EarthOrbit  = 1.496e11 // m
	MercuryMass = 3.301e23
	VenusMass   = 4.867e24
	MarsMass    = 6.417e23
)

var catalog = map[string]func() (*engine.Engine, error){
	"two-body": TwoBody,
	"planets":  Planets,
	"binary":   Binary,
	"demo":     Demo,
}

// Build constructs the named scenario from the catalog.
func Build(name string) (*engine.Engine, error) {
	fn, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario: %s", name)
	}
	return fn()
}

// Names lists the catalog in stable order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TwoBody is the SI sun-plus-satellite reference: a central solar mass at
// rest and an Earth-mass body on a circular orbit at 1 AU.
func TwoBody() (*engine.Engine, error) {
	sun, err := engine.NewBody("sun", SunMass, vec.Vec3{}, vec.Vec3{})
	if err != nil {
		return nil, err
	}
	sun.BaseRadius = 12
	sun.Color = "#ffcc33"

	earth, err := Orbiting(sun, engine.GravitationalConstant, "earth", EarthMass, EarthOrbit, 0, vec.Vec3{Z: 1})
	if err != nil {
		return nil, err
	}
	earth.BaseRadius = 4
	earth.Color = "#3388ff"

	return engine.New(sun, earth)
}

// Planets is a central star with four light bodies, each orbiting in a
// different coordinate plane so the full 3D force calculation is exercised
// rather than a degenerate planar case.
func Planets() (*engine.Engine, error) {
	sun, err := engine.NewBody("sun", SunMass, vec.Vec3{}, vec.Vec3{})
	if err != nil {
		return nil, err
	}
	sun.BaseRadius = 12
	sun.Color = "#ffcc33"

	planets := []struct {
		name   string
		mass   float64
		radius float64
		phase  float64
		axis   vec.Vec3
		size   float64
		color  string
	}{
		{"mercury", MercuryMass, 5.79e10, 0.0, vec.Vec3{Z: 1}, 2, "#aaaaaa"},
		{"venus", VenusMass, 1.082e11, 1.7, vec.Vec3{Y: 1}, 3, "#e8b458"},
		{"earth", EarthMass, EarthOrbit, 3.1, vec.Vec3{X: 1}, 4, "#3388ff"},
		{"mars", MarsMass, 2.279e11, 4.4, vec.Vec3{X: 0.5, Z: 1}, 3, "#cc4422"},
	}

	bodies := []engine.Body{sun}
	for _, p := range planets {
		b, err := Orbiting(sun, engine.GravitationalConstant, p.name, p.mass, p.radius, p.phase, p.axis)
		if err != nil {
			return nil, err
		}
		b.BaseRadius = p.size
		b.Color = p.color
		bodies = append(bodies, b)
	}
	return engine.New(bodies...)
}

// Demo is a dimensionless configuration (G = 1, unit central mass) sized
// for interactive viewing, where time steps in the 0.001..0.1 range are
// sensible. Three light bodies orbit a heavy center in three different
// planes.
func Demo() (*engine.Engine, error) {
	center, err := engine.NewBody("center", 1.0, vec.Vec3{}, vec.Vec3{})
	if err != nil {
		return nil, err
	}
	center.BaseRadius = 6
	center.Color = "#ffcc33"

	orbits := []struct {
		name   string
		radius float64
		phase  float64
		axis   vec.Vec3
		color  string
	}{
		{"a", 0.6, 0.0, vec.Vec3{Z: 1}, "#3388ff"},
		{"b", 1.0, 2.1, vec.Vec3{Y: 1}, "#cc4422"},
		{"c", 1.5, 4.2, vec.Vec3{X: 1}, "#44dd88"},
	}

	bodies := []engine.Body{center}
	for _, o := range orbits {
		b, err := Orbiting(center, 1.0, o.name, 1e-4, o.radius, o.phase, o.axis)
		if err != nil {
			return nil, err
		}
		b.BaseRadius = 2
		b.Color = o.color
		bodies = append(bodies, b)
	}

	eng, err := engine.New(bodies...)
	if err != nil {
		return nil, err
	}
	eng.G = 1.0
	return eng, nil
}

// Binary is an equal-mass pair orbiting their barycenter. Each body moves
// at sqrt(G·m/(2d)) where d is the separation, the circular solution of
// the symmetric two-body problem.
func Binary() (*engine.Engine, error) {
	const (
		mass = SunMass
		sep  = EarthOrbit
	)
	speed := CircularOrbitSpeed(engine.GravitationalConstant, mass, 2*sep)

	a, err := engine.NewBody("alpha", mass, vec.Vec3{X: -sep / 2}, vec.Vec3{Y: -speed})
	if err != nil {
		return nil, err
	}
	a.BaseRadius = 8
	a.Color = "#ff8844"

	b, err := engine.NewBody("beta", mass, vec.Vec3{X: sep / 2}, vec.Vec3{Y: speed})
	if err != nil {
		return nil, err
	}
	b.BaseRadius = 8
	b.Color = "#44aaff"

	return engine.New(a, b)
}
