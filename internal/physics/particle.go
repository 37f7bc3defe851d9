package physics

import "github.com/san-kum/sketchphys/internal/vec"

const (
	DefaultRadius = 10.0
	DefaultColor  = "red"
)

// Surface is the drawing capability a particle renders onto.
type Surface interface {
	Fill(color string)
	NoStroke()
	Ellipse(x, y, diameter float64)
}

type Particle struct {
	Position     vec.Vector
	Velocity     vec.Vector
	Acceleration vec.Vector
	Radius       float64
}

func NewParticle(position, velocity vec.Vector, radius float64) *Particle {
	return &Particle{
		Position:     position,
		Velocity:     velocity,
		Acceleration: vec.Zero(position.Dim()),
		Radius:       radius,
	}
}

func (p *Particle) ApplyForce(f vec.Vector) {
	p.Acceleration = p.Acceleration.Add(f)
}

// Update advances one frame with semi-implicit Euler: velocity from the
// accumulated acceleration first, then position from the new velocity.
// Acceleration is zero afterwards.
func (p *Particle) Update() {
	p.Velocity = p.Velocity.Add(p.Acceleration)
	p.Position = p.Position.Add(p.Velocity)
	p.Acceleration = vec.Zero(p.Position.Dim())
}

// Display draws a filled, unstroked circle of diameter 2*Radius at Position.
func (p *Particle) Display(s Surface, color string) {
	if color == "" {
		color = DefaultColor
	}
	s.Fill(color)
	s.NoStroke()
	s.Ellipse(p.Position.X(), p.Position.Y(), p.Radius*2)
}

func (p *Particle) Speed() float64 {
	return p.Velocity.Len()
}

// KineticEnergy assumes unit mass.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Velocity.LenSqr()
}

func (p *Particle) Clone() *Particle {
	c := *p
	return &c
}

// State is a flat copy of a particle's kinematics, always 3D.
type State struct {
	Position vec.Vector
	Velocity vec.Vector
}

func (p *Particle) Snapshot() State {
	return State{
		Position: p.Position.Promote(3),
		Velocity: p.Velocity.Promote(3),
	}
}

func (p *Particle) IsValid() bool {
	return p.Position.IsValid() && p.Velocity.IsValid() && p.Acceleration.IsValid()
}
