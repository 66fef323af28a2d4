package engine

import (
	"context"

	"github.com/san-kum/collider/internal/particle"
)

// Metric accumulates a scalar over a run from per-frame snapshots.
type Metric interface {
	Name() string
	Observe(ps []*particle.Particle, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every frame of a headless run.
type Observer interface {
	OnFrame(ps []*particle.Particle, t float64)
}

// Result collects the outcome of a headless run.
type Result struct {
	Frames        int
	Duration      float64
	Collisions    int
	Metrics       map[string]float64
	EnergyHistory []float64
}

// Runner drives a world for a fixed number of frames without a front end.
type Runner struct {
	world     *World
	metrics   []Metric
	observers []Observer
}

// NewRunner wraps a world for headless execution.
func NewRunner(world *World) *Runner {
	return &Runner{world: world}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run steps the world for the given number of frames at the configured dt,
// checking for cancellation between frames. Metrics and observers see a
// snapshot after each frame.
func (r *Runner) Run(ctx context.Context, frames int) (*Result, error) {
	dt := r.world.Config().Dt

	result := &Result{
		Metrics:       make(map[string]float64),
		EnergyHistory: make([]float64, 0, frames),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	startCollisions := r.world.Collisions()
	t := 0.0

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.world.Step(dt)
		t += dt

		snapshot := r.world.Particles()
		for _, m := range r.metrics {
			m.Observe(snapshot, t)
		}
		for _, o := range r.observers {
			o.OnFrame(snapshot, t)
		}

		energy := 0.0
		for _, p := range snapshot {
			energy += p.KineticEnergy()
		}
		result.EnergyHistory = append(result.EnergyHistory, energy)

		result.Frames++
		result.Duration = t
	}

	result.Collisions = r.world.Collisions() - startCollisions
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
