package physics

import "github.com/san-kum/sketchphys/internal/vec"

// Body is anything that accumulates applied forces.
type Body interface {
	ApplyForce(f vec.Vector)
}

// ApplyGravity applies the force (0, g) to b. Screen coordinates grow
// downward, so a positive g pulls toward the bottom of the sketch.
func ApplyGravity(b Body, g float64) {
	b.ApplyForce(vec.New2(0, g))
}

// LorentzForce returns charge * (velocity x field). Planar inputs are taken
// as the z=0 plane, so the result is always 3D.
func LorentzForce(velocity, field vec.Vector, charge float64) vec.Vector {
	return velocity.Cross(field).Scale(charge)
}

// LorentzForceChecked is LorentzForce for untrusted input, such as vectors
// decoded from config files.
func LorentzForceChecked(velocity, field vec.Vector, charge float64) (vec.Vector, error) {
	for _, operand := range []struct {
		name string
		v    vec.Vector
	}{{"velocity", velocity}, {"field", field}} {
		if !operand.v.IsValid() {
			return vec.Vector{}, &ForceError{Op: "lorentz", Operand: operand.name, Wrapped: ErrInvalidVector}
		}
	}
	return LorentzForce(velocity, field, charge), nil
}

// LorentzFromSlices builds both operands from raw components, rejecting
// anything that is not 2D or 3D.
func LorentzFromSlices(velocity, field []float64, charge float64) (vec.Vector, error) {
	v, err := vec.FromSlice(velocity)
	if err != nil {
		return vec.Vector{}, &ForceError{Op: "lorentz", Operand: "velocity", Wrapped: ErrDimensionMismatch}
	}
	b, err := vec.FromSlice(field)
	if err != nil {
		return vec.Vector{}, &ForceError{Op: "lorentz", Operand: "field", Wrapped: ErrDimensionMismatch}
	}
	return LorentzForceChecked(v, b, charge)
}
