package metrics

import (
	"math"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

// KineticEnergy is the mean total kinetic energy (unit masses) over all
// observed frames.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(_ int, particles []*physics.Particle) {
	e.total += totalKinetic(particles)
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *KineticEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the largest relative change in mechanical energy. Only
// constant forces are counted: a uniform force F per unit mass has potential
// -F.r, so gravity (0, g) contributes -g*y and wind contributes -F.r the same
// way. Magnetic forces do no work and contribute nothing.
type EnergyDrift struct {
	name          string
	force         vec.Vector
	initialEnergy float64
	maxDrift      float64
	samples       int
}

// NewEnergyDrift counts gravity only.
func NewEnergyDrift(gravity float64) *EnergyDrift {
	return NewUniformEnergyDrift(vec.New2(0, gravity))
}

// NewUniformEnergyDrift counts the potential of the total constant force,
// e.g. gravity plus wind.
func NewUniformEnergyDrift(force vec.Vector) *EnergyDrift {
	return &EnergyDrift{
		name:  "energy_drift",
		force: force,
	}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Energy(particles []*physics.Particle) float64 {
	energy := totalKinetic(particles)
	for _, p := range particles {
		energy -= e.force.Dot(p.Position)
	}
	return energy
}

func (e *EnergyDrift) Observe(_ int, particles []*physics.Particle) {
	energy := e.Energy(particles)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

func totalKinetic(particles []*physics.Particle) float64 {
	sum := 0.0
	for _, p := range particles {
		sum += p.KineticEnergy()
	}
	return sum
}
