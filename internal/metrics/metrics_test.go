package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/collider/internal/particle"
)

func TestKineticEnergy(t *testing.T) {
	m := NewKineticEnergy()

	// 0.5 * 2 * 10^2 = 100 per frame, averaged over two identical frames.
	ps := []*particle.Particle{{Vx: 10, Mass: 2, Elasticity: 0.9, Radius: 5}}
	m.Observe(ps, 0.1)
	m.Observe(ps, 0.2)

	if got := m.Value(); math.Abs(got-100) > 1e-9 {
		t.Errorf("value = %f, want 100", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("value nonzero after reset")
	}
}

func TestKineticEnergyNoSamples(t *testing.T) {
	m := NewKineticEnergy()
	if m.Value() != 0 {
		t.Error("value nonzero with no observations")
	}
}

func TestMomentum(t *testing.T) {
	m := NewMomentum()

	// Opposing momenta cancel: |sum| = 0.
	ps := []*particle.Particle{
		{Vx: 10, Mass: 1, Elasticity: 0.9, Radius: 5},
		{Vx: -10, Mass: 1, Elasticity: 0.9, Radius: 5},
	}
	m.Observe(ps, 0.1)
	if got := m.Value(); got != 0 {
		t.Errorf("value = %f for canceling momenta, want 0", got)
	}

	m.Reset()
	m.Observe([]*particle.Particle{{Vx: 3, Vy: 4, Mass: 2, Elasticity: 0.9, Radius: 5}}, 0.1)
	if got := m.Value(); math.Abs(got-10) > 1e-9 {
		t.Errorf("value = %f, want 10", got)
	}
}

func TestMaxPenetration(t *testing.T) {
	m := NewMaxPenetration()

	// Two r=10 circles 15 apart overlap by 5.
	overlapping := []*particle.Particle{
		{X: 100, Y: 100, Mass: 1, Elasticity: 0.9, Radius: 10},
		{X: 115, Y: 100, Mass: 1, Elasticity: 0.9, Radius: 10},
	}
	m.Observe(overlapping, 0.1)
	if got := m.Value(); math.Abs(got-5) > 1e-9 {
		t.Errorf("value = %f, want 5", got)
	}

	// A later frame with less overlap keeps the maximum.
	separated := []*particle.Particle{
		{X: 100, Y: 100, Mass: 1, Elasticity: 0.9, Radius: 10},
		{X: 400, Y: 400, Mass: 1, Elasticity: 0.9, Radius: 10},
	}
	m.Observe(separated, 0.2)
	if got := m.Value(); math.Abs(got-5) > 1e-9 {
		t.Errorf("value = %f after separated frame, want 5", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("value nonzero after reset")
	}
}

func TestMeanSpeed(t *testing.T) {
	m := NewMeanSpeed()

	ps := []*particle.Particle{
		{Vx: 3, Vy: 4, Mass: 1, Elasticity: 0.9, Radius: 5},
		{Vx: 0, Vy: 15, Mass: 1, Elasticity: 0.9, Radius: 5},
	}
	m.Observe(ps, 0.1)

	if got := m.Value(); math.Abs(got-10) > 1e-9 {
		t.Errorf("value = %f, want 10", got)
	}
}

func TestMeanSpeedEmptyFrame(t *testing.T) {
	m := NewMeanSpeed()
	m.Observe(nil, 0.1)
	if m.Value() != 0 {
		t.Error("empty frame should not contribute a sample")
	}
}
