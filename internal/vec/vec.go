package vec

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector in world-space coordinates. All operations are
// value-semantic; nothing mutates the receiver.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func (v Vec3) NormSq() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }
func (v Vec3) Norm() float64   { return math.Sqrt(v.NormSq()) }

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has zero length.
func (v Vec3) Normalize() Vec3 {
	if l := v.Norm(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}

// MarshalYAML renders the vector as a [x, y, z] flow sequence.
func (v Vec3) MarshalYAML() (interface{}, error) {
	return []float64{v.X, v.Y, v.Z}, nil
}

// UnmarshalYAML accepts a [x, y, z] sequence.
func (v *Vec3) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var parts []float64
	if err := unmarshal(&parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("vec: expected 3 components, got %d", len(parts))
	}
	v.X, v.Y, v.Z = parts[0], parts[1], parts[2]
	return nil
}
