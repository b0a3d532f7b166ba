package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/scenario"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

const (
	// DefaultDt is six simulated minutes, small against the fastest
	// built-in orbit (mercury, ~7.6e6 s).
	DefaultDt       = 360.0
	DefaultDuration = 3.156e7 // one earth year
	DefaultSample   = 200     // record every Nth tick
)

// Config describes a simulation run: either a named scenario from the
// catalog or an explicit body list, plus the numerical parameters.
type Config struct {
	Scenario  string       `yaml:"scenario"`
	G         float64      `yaml:"g"`
	Softening float64      `yaml:"softening"`
	Dt        float64      `yaml:"dt"`
	Duration  float64      `yaml:"duration"`
	Sample    int          `yaml:"sample"`
	Bodies    []BodyConfig `yaml:"bodies"`
}

// BodyConfig is one body as written in a yaml scenario file. Position and
// velocity are [x, y, z] sequences.
type BodyConfig struct {
	Name     string   `yaml:"name"`
	Mass     float64  `yaml:"mass"`
	Radius   float64  `yaml:"radius"`
	Color    string   `yaml:"color"`
	Position vec.Vec3 `yaml:"position"`
	Velocity vec.Vec3 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "planets",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Sample:   DefaultSample,
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
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.Sample < 1 {
		return fmt.Errorf("sample must be at least 1, got %d", c.Sample)
	}
	return nil
}

// BuildEngine constructs the engine this config describes: the explicit
// body list when present, the named catalog scenario otherwise. Body
// validation (positive finite mass) happens inside the engine package.
func (c *Config) BuildEngine() (*engine.Engine, error) {
	eng, err := c.buildBodies()
	if err != nil {
		return nil, err
	}
	if c.G > 0 {
		eng.G = c.G
	}
	if c.Softening > 0 {
		eng.Softening = c.Softening
	}
	return eng, nil
}

func (c *Config) buildBodies() (*engine.Engine, error) {
	if len(c.Bodies) == 0 {
		return scenario.Build(c.Scenario)
	}
	bodies := make([]engine.Body, 0, len(c.Bodies))
	for _, bc := range c.Bodies {
		b, err := engine.NewBody(bc.Name, bc.Mass, bc.Position, bc.Velocity)
		if err != nil {
			return nil, err
		}
		b.BaseRadius = bc.Radius
		b.Color = bc.Color
		bodies = append(bodies, b)
	}
	return engine.New(bodies...)
}
