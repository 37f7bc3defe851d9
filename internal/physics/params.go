package physics

import (
	"fmt"

	"github.com/san-kum/sketchphys/internal/vec"
)

const (
	DefaultGravity = 9.8
	DefaultCharge  = 1.0
)

// Params is the configuration record for the force helpers.
type Params struct {
	Gravity float64 `yaml:"gravity"`
	Charge  float64 `yaml:"charge"`
}

func DefaultParams() Params {
	return Params{
		Gravity: DefaultGravity,
		Charge:  DefaultCharge,
	}
}

func (p Params) ApplyGravity(b Body) {
	ApplyGravity(b, p.Gravity)
}

func (p Params) Lorentz(velocity, field vec.Vector) vec.Vector {
	return LorentzForce(velocity, field, p.Charge)
}

func (p *Params) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity": p.Gravity,
		"charge":  p.Charge,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "gravity":
		p.Gravity = value
	case "charge":
		p.Charge = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}
