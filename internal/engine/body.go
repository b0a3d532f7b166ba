package engine

import (
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

// Body is one simulated point mass. Mass is immutable after validation;
// Position and Velocity evolve each tick. Acceleration and Force are
// transient scratch state: Force is zeroed at the start of every force pass
// and Acceleration is rederived from it during integration.
//
// BaseRadius and Color carry display identity for external renderers and
// have no bearing on the physics.
type Body struct {
	Name       string
	Mass       float64
	BaseRadius float64
	Color      string

	Position     vec.Vec3
	Velocity     vec.Vec3
	Acceleration vec.Vec3
	Force        vec.Vec3
}

// NewBody validates and returns a body. Mass must be positive and finite;
// position and velocity must be finite. Force computation divides by mass,
// so a zero or negative mass is rejected here rather than propagating as a
// silent numerical artifact.
func NewBody(name string, mass float64, position, velocity vec.Vec3) (Body, error) {
	b := Body{Name: name, Mass: mass, Position: position, Velocity: velocity}
	if err := b.validate(); err != nil {
		return Body{}, err
	}
	return b, nil
}

func (b Body) validate() error {
	if b.Mass <= 0 || math.IsNaN(b.Mass) || math.IsInf(b.Mass, 0) {
		return &BodyError{Name: b.Name, Wrapped: ErrInvalidMass}
	}
	if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
		return &BodyError{Name: b.Name, Wrapped: ErrInvalidVector}
	}
	return nil
}

// KineticEnergy returns ½mv².
func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Velocity.NormSq()
}
