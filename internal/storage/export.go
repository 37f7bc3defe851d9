package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/sketchphys/internal/scene"
)

type ExportData struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Frames    int                `json:"frames"`
	Gravity   float64            `json:"gravity"`
	Charge    float64            `json:"charge"`
	Field     []float64          `json:"field,omitempty"`
	Particles []ExportParticle   `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

type ExportParticle struct {
	Positions  [][]float64 `json:"positions"`
	Velocities [][]float64 `json:"velocities"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, result *scene.Result) error {
	data := ExportData{
		ID:        meta.ID,
		Scene:     meta.Scene,
		Frames:    meta.Frames,
		Gravity:   meta.Gravity,
		Charge:    meta.Charge,
		Field:     meta.Field,
		Particles: make([]ExportParticle, len(result.Trajectories)),
		Metrics:   result.Metrics,
	}

	for i, traj := range result.Trajectories {
		ep := ExportParticle{
			Positions:  make([][]float64, len(traj)),
			Velocities: make([][]float64, len(traj)),
		}
		for j, st := range traj {
			ep.Positions[j] = st.Position.Slice()
			ep.Velocities[j] = st.Velocity.Slice()
		}
		data.Particles[i] = ep
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
