package sim

import (
	"context"
	"testing"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	a, err := engine.NewBody("a", 1, vec.Vec3{X: -1}, vec.Vec3{Y: -0.1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := engine.NewBody("b", 1, vec.Vec3{X: 1}, vec.Vec3{Y: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	eng, err := engine.New(a, b)
	if err != nil {
		t.Fatal(err)
	}
	eng.G = 1
	return eng
}

func TestRunStepCountAndSampling(t *testing.T) {
	r := NewRunner(testEngine(t))

	cfg := Config{Dt: 0.01, Duration: 1, Sample: 10}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if result.StepsTaken != 100 {
		t.Errorf("StepsTaken = %d, want 100", result.StepsTaken)
	}
	// Initial snapshot plus every 10th of 100 ticks.
	if len(result.Snapshots) != 11 {
		t.Errorf("got %d snapshots, want 11", len(result.Snapshots))
	}
	if len(result.Times) != len(result.Snapshots) {
		t.Errorf("times/snapshots length mismatch: %d vs %d", len(result.Times), len(result.Snapshots))
	}
	if result.Times[0] != 0 {
		t.Errorf("first sample at t=%v, want 0", result.Times[0])
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := NewRunner(testEngine(t))

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1}},
		{"negative dt", Config{Dt: -1, Duration: 1}},
		{"zero duration", Config{Dt: 0.01, Duration: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPausedRunnerFreezesState(t *testing.T) {
	r := NewRunner(testEngine(t))
	before := r.Engine().Bodies()

	r.Pause()
	if !r.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	if r.Tick(0.01) {
		t.Error("Tick advanced while paused")
	}

	after := r.Engine().Bodies()
	for i := range before {
		if before[i].Position != after[i].Position {
			t.Errorf("body %d moved while paused", i)
		}
	}

	r.Resume()
	if !r.Tick(0.01) {
		t.Error("Tick did not advance after Resume")
	}
}

func TestPausedRunConsumesSlots(t *testing.T) {
	r := NewRunner(testEngine(t))
	r.Pause()

	result, err := r.Run(context.Background(), Config{Dt: 0.01, Duration: 1, Sample: 10})
	if err != nil {
		t.Fatal(err)
	}
	if result.StepsTaken != 0 {
		t.Errorf("StepsTaken = %d while paused, want 0", result.StepsTaken)
	}
}

func TestRunContextCancellation(t *testing.T) {
	r := NewRunner(testEngine(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Dt: 0.01, Duration: 1, Sample: 1})
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if result == nil {
		t.Fatal("expected partial result on cancellation")
	}
	if result.StepsTaken != 0 {
		t.Errorf("StepsTaken = %d after immediate cancel, want 0", result.StepsTaken)
	}
}

type countingMetric struct {
	observations int
}

func (m *countingMetric) Name() string                        { return "count" }
func (m *countingMetric) Observe(e *engine.Engine, t float64) { m.observations++ }
func (m *countingMetric) Value() float64                      { return float64(m.observations) }
func (m *countingMetric) Reset()                              { m.observations = 0 }

type countingObserver struct {
	ticks int
}

func (o *countingObserver) OnTick(e *engine.Engine, t float64) { o.ticks++ }

func TestMetricsAndObserversWired(t *testing.T) {
	r := NewRunner(testEngine(t))
	m := &countingMetric{observations: 99} // Reset must clear this
	o := &countingObserver{}
	r.AddMetric(m)
	r.AddObserver(o)

	result, err := r.Run(context.Background(), Config{Dt: 0.01, Duration: 1, Sample: 10})
	if err != nil {
		t.Fatal(err)
	}

	if m.observations != 100 {
		t.Errorf("metric observed %d ticks, want 100", m.observations)
	}
	if o.ticks != 100 {
		t.Errorf("observer saw %d ticks, want 100", o.ticks)
	}
	if got := result.Metrics["count"]; got != 100 {
		t.Errorf("result.Metrics[count] = %v, want 100", got)
	}
}

func TestRunEnergyDriftIsRelative(t *testing.T) {
	r := NewRunner(testEngine(t))
	result, err := r.Run(context.Background(), Config{Dt: 0.001, Duration: 1, Sample: 100})
	if err != nil {
		t.Fatal(err)
	}
	if result.EnergyDrift < 0 || result.EnergyDrift > 0.1 {
		t.Errorf("EnergyDrift = %v, want small nonnegative", result.EnergyDrift)
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	r := NewRunner(testEngine(t))

	calls := 0
	err := r.RunWithCallback(context.Background(), Config{Dt: 0.01, Duration: 10}, func(bodies []engine.Body, t float64) bool {
		calls++
		return calls < 5
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 5 {
		t.Errorf("callback invoked %d times, want 5", calls)
	}
}

func TestRunWithCallbackSeesTime(t *testing.T) {
	r := NewRunner(testEngine(t))

	var last float64
	err := r.RunWithCallback(context.Background(), Config{Dt: 0.5, Duration: 2}, func(bodies []engine.Body, simTime float64) bool {
		last = simTime
		if len(bodies) != 2 {
			t.Errorf("callback saw %d bodies, want 2", len(bodies))
		}
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if last != 1.5 {
		t.Errorf("last callback at t=%v, want 1.5", last)
	}
}
