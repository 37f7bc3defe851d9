package metrics

import "github.com/san-kum/sketchphys/internal/physics"

// InBounds is the fraction of frames in which every particle stayed inside
// the sketch rectangle [0, width] x [0, height].
type InBounds struct {
	name          string
	width, height float64
	violations    int
	samples       int
}

func NewInBounds(width, height float64) *InBounds {
	return &InBounds{
		name:   "in_bounds",
		width:  width,
		height: height,
	}
}

func (b *InBounds) Name() string {
	return b.name
}

func (b *InBounds) Observe(_ int, particles []*physics.Particle) {
	b.samples++
	for _, p := range particles {
		x, y := p.Position.X(), p.Position.Y()
		if x < 0 || y < 0 || x > b.width || y > b.height {
			b.violations++
			break
		}
	}
}

func (b *InBounds) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *InBounds) Reset() {
	b.violations = 0
	b.samples = 0
}
