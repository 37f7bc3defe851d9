package scene

import (
	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/metrics"
	"github.com/san-kum/sketchphys/internal/vec"
)

// DefaultMetrics returns the metrics recorded for every stored run.
func DefaultMetrics(cfg *config.Config) []Metric {
	force := vec.New2(0, cfg.Physics.Gravity)
	if wind, err := cfg.WindForce(); err == nil {
		force = force.Add(wind)
	}
	return []Metric{
		metrics.NewKineticEnergy(),
		metrics.NewUniformEnergyDrift(force),
		metrics.NewMaxSpeed(),
		metrics.NewPathLength(),
		metrics.NewInBounds(cfg.World.Width, cfg.World.Height),
	}
}
