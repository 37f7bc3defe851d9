package config

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/vec"
)

const (
	DefaultFrames = 600
	DefaultFPS    = 30
	DefaultWidth  = 400.0
	DefaultHeight = 400.0
)

var (
	ErrNoParticles = errors.New("config: no particles")
	ErrFrames      = errors.New("config: frames must be positive")
	ErrNotFinite   = errors.New("config: value is NaN or Inf")
)

type Config struct {
	Name          string           `yaml:"name"`
	Frames        int              `yaml:"frames"`
	FPS           int              `yaml:"fps"`
	Seed          int64            `yaml:"seed"`
	Jitter        float64          `yaml:"jitter,omitempty"`
	Physics       physics.Params   `yaml:",inline"`
	Field         []float64        `yaml:"field,omitempty"`
	Wind          []float64        `yaml:"wind,omitempty"`
	Color         string           `yaml:"color"`
	World         WorldConfig      `yaml:"world"`
	ValidateState bool             `yaml:"validate_state"`
	Particles     []ParticleConfig `yaml:"particles"`
}

type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ParticleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z,omitempty"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	VZ     float64 `yaml:"vz,omitempty"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:    "default",
		Frames:  DefaultFrames,
		FPS:     DefaultFPS,
		Physics: physics.DefaultParams(),
		Color:   physics.DefaultColor,
		World: WorldConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		ValidateState: true,
		Particles: []ParticleConfig{
			{X: DefaultWidth / 2, Y: 20, Radius: physics.DefaultRadius},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return ErrFrames
	}
	if len(c.Particles) == 0 {
		return ErrNoParticles
	}
	for name, v := range c.Physics.GetParams() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s", ErrNotFinite, name)
		}
	}
	b, err := c.MagneticField()
	if err != nil {
		return err
	}
	wind, err := c.WindForce()
	if err != nil {
		return err
	}
	if !b.IsValid() {
		return fmt.Errorf("%w: field", ErrNotFinite)
	}
	if !wind.IsValid() {
		return fmt.Errorf("%w: wind", ErrNotFinite)
	}
	for i, pc := range c.Particles {
		if !pc.Build().IsValid() {
			return fmt.Errorf("%w: particle %d", ErrNotFinite, i)
		}
	}
	return nil
}

// MagneticField returns the configured B, or a 3D zero vector when unset.
func (c *Config) MagneticField() (vec.Vector, error) {
	return optionalVector("field", c.Field)
}

func (c *Config) WindForce() (vec.Vector, error) {
	return optionalVector("wind", c.Wind)
}

func optionalVector(name string, comps []float64) (vec.Vector, error) {
	if len(comps) == 0 {
		return vec.Zero(3), nil
	}
	v, err := vec.FromSlice(comps)
	if err != nil {
		return vec.Vector{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return v, nil
}

// Fields builds gravity, the magnetic field when set, and wind when set.
func (c *Config) Fields() ([]physics.Field, error) {
	b, err := c.MagneticField()
	if err != nil {
		return nil, err
	}
	fields := physics.FieldsFromParams(c.Physics, b)

	wind, err := c.WindForce()
	if err != nil {
		return nil, err
	}
	if !wind.IsZero() {
		fields = append(fields, physics.UniformField{F: wind})
	}
	return fields, nil
}

// BuildParticles creates one particle per entry along with its colour.
// Entries with any z component become 3D particles. A positive Jitter adds a
// uniform offset in [-Jitter, Jitter) to each initial velocity component,
// drawn from Seed so that builds are reproducible.
func (c *Config) BuildParticles() ([]*physics.Particle, []string) {
	particles := make([]*physics.Particle, 0, len(c.Particles))
	colors := make([]string, 0, len(c.Particles))
	rng := rand.New(rand.NewSource(c.Seed))
	for _, pc := range c.Particles {
		if c.Jitter > 0 {
			pc.VX += (rng.Float64()*2 - 1) * c.Jitter
			pc.VY += (rng.Float64()*2 - 1) * c.Jitter
			if pc.Z != 0 || pc.VZ != 0 {
				pc.VZ += (rng.Float64()*2 - 1) * c.Jitter
			}
		}
		particles = append(particles, pc.Build())
		color := pc.Color
		if color == "" {
			color = c.Color
		}
		colors = append(colors, color)
	}
	return particles, colors
}

func (pc ParticleConfig) Build() *physics.Particle {
	radius := pc.Radius
	if radius <= 0 {
		radius = physics.DefaultRadius
	}
	if pc.Z != 0 || pc.VZ != 0 {
		return physics.NewParticle(vec.New3(pc.X, pc.Y, pc.Z), vec.New3(pc.VX, pc.VY, pc.VZ), radius)
	}
	return physics.NewParticle(vec.New2(pc.X, pc.Y), vec.New2(pc.VX, pc.VY), radius)
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Field = append([]float64(nil), c.Field...)
	cp.Wind = append([]float64(nil), c.Wind...)
	cp.Particles = append([]ParticleConfig(nil), c.Particles...)
	return &cp
}
