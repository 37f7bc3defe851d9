package scene

import (
	"context"

	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/physics"
)

type Scene struct {
	Particles []*physics.Particle
	Colors    []string
	Fields    []physics.Field

	surface   physics.Surface
	initial   []*physics.Particle
	metrics   []Metric
	observers []Observer
}

func New(particles []*physics.Particle, colors []string, fields []physics.Field) *Scene {
	s := &Scene{
		Particles: particles,
		Colors:    colors,
		Fields:    fields,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	s.initial = cloneAll(particles)
	return s
}

func FromConfig(cfg *config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fields, err := cfg.Fields()
	if err != nil {
		return nil, err
	}
	particles, colors := cfg.BuildParticles()
	return New(particles, colors, fields), nil
}

func (s *Scene) SetSurface(surface physics.Surface) { s.surface = surface }
func (s *Scene) AddMetric(m Metric)                 { s.metrics = append(s.metrics, m) }
func (s *Scene) AddObserver(o Observer)             { s.observers = append(s.observers, o) }

// Reset restores every particle to its state when the scene was built.
func (s *Scene) Reset() {
	s.Particles = cloneAll(s.initial)
}

func (s *Scene) color(i int) string {
	if i < len(s.Colors) {
		return s.Colors[i]
	}
	return physics.DefaultColor
}

// Frame runs one host frame: apply fields, integrate, display.
func (s *Scene) Frame() {
	for i, p := range s.Particles {
		for _, f := range s.Fields {
			p.ApplyForce(f.Force(p))
		}
		p.Update()
		if s.surface != nil {
			p.Display(s.surface, s.color(i))
		}
	}
}

// Draw displays every particle without advancing the simulation.
func (s *Scene) Draw() { s.DrawOn(s.surface) }

// DrawOn displays every particle on the given surface. A nil surface is a no-op.
func (s *Scene) DrawOn(surface physics.Surface) {
	if surface == nil {
		return
	}
	for i, p := range s.Particles {
		p.Display(surface, s.color(i))
	}
}

func (s *Scene) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validate(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Trajectories: make([][]physics.State, len(s.Particles)),
		Metrics:      make(map[string]float64),
		Errors:       make([]error, 0),
	}
	for i, p := range s.Particles {
		result.Trajectories[i] = make([]physics.State, 0, cfg.Frames+1)
		result.Trajectories[i] = append(result.Trajectories[i], p.Snapshot())
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(0, s.Particles)
	}

frames:
	for frame := 1; frame <= cfg.Frames; frame++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		s.Frame()

		if cfg.ValidateState {
			for i, p := range s.Particles {
				if !p.IsValid() {
					result.Errors = append(result.Errors, &FrameError{Frame: frame, Particle: i, Wrapped: ErrInvalidState})
					break frames
				}
			}
		}

		for _, m := range s.metrics {
			m.Observe(frame, s.Particles)
		}
		for _, obs := range s.observers {
			obs.OnFrame(frame, s.Particles)
		}

		for i, p := range s.Particles {
			result.Trajectories[i] = append(result.Trajectories[i], p.Snapshot())
		}
		result.FramesRun++
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback runs frames until the callback returns false.
func (s *Scene) RunWithCallback(ctx context.Context, cfg Config, callback func(frame int, particles []*physics.Particle) bool) error {
	if err := s.validate(cfg); err != nil {
		return err
	}

	for frame := 1; frame <= cfg.Frames; frame++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Frame()

		if cfg.ValidateState {
			for i, p := range s.Particles {
				if !p.IsValid() {
					return &FrameError{Frame: frame, Particle: i, Wrapped: ErrInvalidState}
				}
			}
		}

		if !callback(frame, s.Particles) {
			return nil
		}
	}

	return nil
}

func (s *Scene) validate(cfg Config) error {
	if cfg.Frames <= 0 {
		return ErrNoFrames
	}
	if len(s.Particles) == 0 {
		return ErrEmpty
	}
	return nil
}

func cloneAll(ps []*physics.Particle) []*physics.Particle {
	out := make([]*physics.Particle, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}
