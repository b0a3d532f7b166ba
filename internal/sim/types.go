package sim

import (
	"fmt"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
)

// Metric accumulates a scalar over a run by observing the engine once per
// tick.
type Metric interface {
	Name() string
	Observe(e *engine.Engine, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every completed tick.
type Observer interface {
	OnTick(e *engine.Engine, t float64)
}

// Config holds the numerical parameters of a run.
type Config struct {
	Dt       float64
	Duration float64
	// Sample records every Nth tick into the result; 0 means every tick.
	Sample int
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	return nil
}

// Result collects the sampled trajectory of a run.
type Result struct {
	Times       []float64
	Snapshots   [][]engine.Body
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
}
