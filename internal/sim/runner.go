// Package sim drives an engine through time: it is the external tick
// scheduler the core deliberately does not contain.
package sim

import (
	"context"
	"math"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
)

// Runner ticks an engine to completion, feeding metrics and observers
// along the way. Not thread-safe; Pause/Resume are meant to be called from
// the same loop that drives Run or Tick.
type Runner struct {
	eng       *engine.Engine
	metrics   []Metric
	observers []Observer
	paused    bool
}

func NewRunner(eng *engine.Engine) *Runner {
	return &Runner{eng: eng}
}

func (r *Runner) Engine() *engine.Engine { return r.eng }

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Pause freezes the simulation: ticks become no-ops until Resume. The
// driving loop keeps running, so rendering and input stay live.
func (r *Runner) Pause()       { r.paused = true }
func (r *Runner) Resume()      { r.paused = false }
func (r *Runner) Paused() bool { return r.paused }

// Tick advances one step unless paused. Returns whether the engine moved.
func (r *Runner) Tick(dt float64) bool {
	if r.paused {
		return false
	}
	r.eng.Step(dt)
	return true
}

// Run advances the engine for the configured duration, checking context
// cancellation between ticks. Paused ticks consume their slot with state
// frozen. The returned result holds every Sample'th snapshot plus the
// final metric values and relative energy drift.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	sample := cfg.Sample
	if sample < 1 {
		sample = 1
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:     make([]float64, 0, steps/sample+1),
		Snapshots: make([][]engine.Body, 0, steps/sample+1),
		Metrics:   make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.Times = append(result.Times, t)
	result.Snapshots = append(result.Snapshots, r.eng.Bodies())

	initialEnergy := r.eng.Energy()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range r.metrics {
			m.Observe(r.eng, t)
		}

		if !r.Tick(cfg.Dt) {
			continue
		}
		t += cfg.Dt
		result.StepsTaken++

		for _, obs := range r.observers {
			obs.OnTick(r.eng, t)
		}

		if (i+1)%sample == 0 {
			result.Times = append(result.Times, t)
			result.Snapshots = append(result.Snapshots, r.eng.Bodies())
		}
	}

	finalEnergy := r.eng.Energy()
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback drives the engine for the configured duration, invoking
// the callback before every tick with the current body states. Returning
// false from the callback stops the run early. Pacing is the callback's
// concern; the runner never sleeps.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(bodies []engine.Body, t float64) bool) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(r.eng.Bodies(), t) {
			return nil
		}

		if r.Tick(cfg.Dt) {
			t += cfg.Dt
		}
	}

	return nil
}
