package physics

import "github.com/san-kum/sketchphys/internal/vec"

// Field produces the force acting on a particle for the current frame.
type Field interface {
	Force(p *Particle) vec.Vector
}

// GravityField is a uniform downward pull of magnitude G.
type GravityField struct {
	G float64
}

func (g GravityField) Force(*Particle) vec.Vector {
	return vec.New2(0, g.G)
}

// MagneticField is a uniform field B acting on a particle carrying Charge.
type MagneticField struct {
	B      vec.Vector
	Charge float64
}

func (m MagneticField) Force(p *Particle) vec.Vector {
	return LorentzForce(p.Velocity, m.B, m.Charge)
}

// UniformField applies the same force F to every particle, e.g. wind.
type UniformField struct {
	F vec.Vector
}

func (u UniformField) Force(*Particle) vec.Vector {
	return u.F
}

// FieldsFromParams returns the gravity field and, when b is non-zero, a
// magnetic field using the configured charge.
func FieldsFromParams(p Params, b vec.Vector) []Field {
	fields := []Field{GravityField{G: p.Gravity}}
	if !b.IsZero() {
		fields = append(fields, MagneticField{B: b, Charge: p.Charge})
	}
	return fields
}
