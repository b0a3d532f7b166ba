package vec

import (
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestArithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 0.5, 2}

	if got := a.Add(b); got != (Vec3{-3, 2.5, 5}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec3{5, 1.5, 1}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != -4+1+6 {
		t.Errorf("Dot: got %v", got)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	if got := x.Cross(y); got != (Vec3{Z: 1}) {
		t.Errorf("x × y: got %v, want z", got)
	}
	if got := y.Cross(x); got != (Vec3{Z: -1}) {
		t.Errorf("y × x: got %v, want -z", got)
	}
	if got := x.Cross(x); got != (Vec3{}) {
		t.Errorf("x × x: got %v, want zero", got)
	}
}

func TestNorm(t *testing.T) {
	v := Vec3{3, 4, 0}
	if v.Norm() != 5 {
		t.Errorf("Norm: got %v", v.Norm())
	}
	if v.NormSq() != 25 {
		t.Errorf("NormSq: got %v", v.NormSq())
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{0, 0, 2}.Normalize()
	if v != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize: got %v", v)
	}

	// Zero vector normalizes to zero, not NaN.
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize zero: got %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want bool
	}{
		{"zero", Vec3{}, true},
		{"ordinary", Vec3{1, -2, 3e100}, true},
		{"nan", Vec3{Y: math.NaN()}, false},
		{"pos inf", Vec3{X: math.Inf(1)}, false},
		{"neg inf", Vec3{Z: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsFinite(); got != tt.want {
				t.Errorf("IsFinite(%v) = %v", tt.v, got)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := Vec3{1.5, -2, 3e8}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out Vec3
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip: got %v, want %v", out, in)
	}
}

func TestYAMLUnmarshalRejectsWrongArity(t *testing.T) {
	var v Vec3
	if err := yaml.Unmarshal([]byte("[1, 2]"), &v); err == nil {
		t.Error("expected error for 2-component sequence")
	}
	if err := yaml.Unmarshal([]byte("[1, 2, 3, 4]"), &v); err == nil {
		t.Error("expected error for 4-component sequence")
	}
}
