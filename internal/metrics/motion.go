package metrics

import (
	"math"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

// PathLength is the total distance travelled by all particles.
type PathLength struct {
	name string
	last []vec.Vector
	sum  float64
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string {
	return p.name
}

func (p *PathLength) Observe(_ int, particles []*physics.Particle) {
	if len(p.last) != len(particles) {
		p.last = make([]vec.Vector, len(particles))
		for i, pt := range particles {
			p.last[i] = pt.Position
		}
		return
	}
	for i, pt := range particles {
		p.sum += pt.Position.Sub(p.last[i]).Len()
		p.last[i] = pt.Position
	}
}

func (p *PathLength) Value() float64 {
	return p.sum
}

func (p *PathLength) Reset() {
	p.last = nil
	p.sum = 0
}

type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(_ int, particles []*physics.Particle) {
	for _, p := range particles {
		m.max = math.Max(m.max, p.Speed())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
