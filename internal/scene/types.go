package scene

import "github.com/san-kum/sketchphys/internal/physics"

type Metric interface {
	Name() string
	Observe(frame int, particles []*physics.Particle)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(frame int, particles []*physics.Particle)
}

type Config struct {
	Frames        int
	ValidateState bool
}

// Result holds one trajectory per particle. Each trajectory starts with the
// initial state, so it has FramesRun+1 entries.
type Result struct {
	Trajectories [][]physics.State
	Metrics      map[string]float64
	FramesRun    int
	Errors       []error
}

// Column extracts one component of one particle's positions (axis 0..2) or
// velocities (axis 3..5).
func (r *Result) Column(particle, axis int) []float64 {
	if particle < 0 || particle >= len(r.Trajectories) {
		return nil
	}
	traj := r.Trajectories[particle]
	out := make([]float64, len(traj))
	for i, st := range traj {
		v := st.Position
		if axis >= 3 {
			v = st.Velocity
		}
		switch axis % 3 {
		case 0:
			out[i] = v.X()
		case 1:
			out[i] = v.Y()
		default:
			out[i] = v.Z()
		}
	}
	return out
}
