package config

import (
	"sort"

	"github.com/san-kum/sketchphys/internal/physics"
)

var Presets = map[string]*Config{
	"drop": {
		Name:    "drop",
		Physics: physics.Params{Gravity: 0.2, Charge: 1},
		Frames:  120, FPS: 30, Color: "red", ValidateState: true,
		World:     WorldConfig{Width: 400, Height: 400},
		Particles: []ParticleConfig{{X: 200, Y: 20, Radius: 10}},
	},
	"projectile": {
		Name:    "projectile",
		Physics: physics.Params{Gravity: 0.25, Charge: 1},
		Frames:  90, FPS: 30, Color: "orange", ValidateState: true,
		World:     WorldConfig{Width: 400, Height: 400},
		Particles: []ParticleConfig{{X: 20, Y: 380, VX: 4, VY: -12, Radius: 6}},
	},
	"cyclotron": {
		Name:    "cyclotron",
		Physics: physics.Params{Gravity: 0, Charge: 1},
		Frames:  630, FPS: 60, Color: "cyan", ValidateState: true,
		Field:     []float64{0, 0, 0.05},
		World:     WorldConfig{Width: 400, Height: 400},
		Particles: []ParticleConfig{{X: 200, Y: 240, VX: 2, Radius: 4}},
	},
	"drift": {
		Name:    "drift",
		Physics: physics.Params{Gravity: 0.01, Charge: 1},
		Frames:  900, FPS: 60, Color: "magenta", ValidateState: true,
		Field:     []float64{0, 0, 0.1},
		World:     WorldConfig{Width: 400, Height: 400},
		Particles: []ParticleConfig{{X: 40, Y: 200, Radius: 4}},
	},
	"swarm": {
		Name:    "swarm",
		Physics: physics.Params{Gravity: 0.15, Charge: 1},
		Frames:  300, FPS: 30, Color: "gold", ValidateState: true,
		Wind:  []float64{0.02, 0},
		World: WorldConfig{Width: 400, Height: 400},
		Particles: []ParticleConfig{
			{X: 100, Y: 300, VX: 1, VY: -6, Radius: 5, Color: "red"},
			{X: 150, Y: 300, VX: 0.5, VY: -7, Radius: 5, Color: "lime"},
			{X: 200, Y: 300, VX: 0, VY: -8, Radius: 5, Color: "cyan"},
			{X: 250, Y: 300, VX: -0.5, VY: -7, Radius: 5, Color: "magenta"},
			{X: 300, Y: 300, VX: -1, VY: -6, Radius: 5, Color: "yellow"},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
