// Package metrics provides run-level measurements over particle snapshots.
package metrics

import (
	"math"

	"github.com/san-kum/collider/internal/particle"
)

// KineticEnergy averages total kinetic energy across observed frames.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(ps []*particle.Particle, t float64) {
	frame := 0.0
	for _, p := range ps {
		frame += p.KineticEnergy()
	}
	k.total += frame
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// Momentum averages the magnitude of total linear momentum across frames.
// Wall bounces do not conserve it; the metric tracks how agitated the
// population is.
type Momentum struct {
	total   float64
	samples int
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(ps []*particle.Particle, t float64) {
	px, py := 0.0, 0.0
	for _, p := range ps {
		px += p.Mass * p.Vx
		py += p.Mass * p.Vy
	}
	m.total += math.Hypot(px, py)
	m.samples++
}

func (m *Momentum) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Momentum) Reset() {
	m.total = 0
	m.samples = 0
}

// MaxPenetration records the worst pairwise overlap seen in any observed
// frame. Positional correction keeps this small but rarely exactly zero.
type MaxPenetration struct {
	max float64
}

func NewMaxPenetration() *MaxPenetration { return &MaxPenetration{} }

func (m *MaxPenetration) Name() string { return "max_penetration" }

func (m *MaxPenetration) Observe(ps []*particle.Particle, t float64) {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[j].X - ps[i].X
			dy := ps[j].Y - ps[i].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			overlap := ps[i].Radius + ps[j].Radius - dist
			if overlap > m.max {
				m.max = overlap
			}
		}
	}
}

func (m *MaxPenetration) Value() float64 { return m.max }

func (m *MaxPenetration) Reset() { m.max = 0 }

// MeanSpeed averages per-particle speed across frames, a cheap proxy for
// how quickly friction is draining the system.
type MeanSpeed struct {
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(ps []*particle.Particle, t float64) {
	if len(ps) == 0 {
		return
	}
	sum := 0.0
	for _, p := range ps {
		sum += p.Speed()
	}
	m.total += sum / float64(len(ps))
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}
