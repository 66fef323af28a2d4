package particle

import (
	"fmt"
	"math"
)

// Particle is a circular body with linear motion state. The engine only
// requires Mass and Radius to be positive; Elasticity is kept in [0,1] by
// the spawn factory but not re-checked during resolution.
type Particle struct {
	X, Y       float64
	Vx, Vy     float64
	Mass       float64
	Elasticity float64
	Radius     float64

	// Hue is a display attribute carried for front ends. The engine never
	// reads it.
	Hue float64
}

// New validates the physical preconditions and returns a particle. Mass and
// radius must be strictly positive so the resolver's divisions stay defined.
func New(x, y, vx, vy, mass, elasticity, radius float64) (*Particle, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("particle: mass must be positive, got %f", mass)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("particle: radius must be positive, got %f", radius)
	}
	if math.IsNaN(mass) || math.IsNaN(radius) {
		return nil, fmt.Errorf("particle: mass and radius must be finite")
	}
	return &Particle{
		X: x, Y: y,
		Vx: vx, Vy: vy,
		Mass:       mass,
		Elasticity: elasticity,
		Radius:     radius,
	}, nil
}

// Bounding box extents used by the sweep-and-prune broad phase.
func (p *Particle) MinX() float64 { return p.X - p.Radius }
func (p *Particle) MaxX() float64 { return p.X + p.Radius }
func (p *Particle) MinY() float64 { return p.Y - p.Radius }
func (p *Particle) MaxY() float64 { return p.Y + p.Radius }

// Integrate advances velocity under the given gravity, then position, over
// one timestep. Pass gravity 0 when the world has gravity disabled.
func (p *Particle) Integrate(dt, gravity float64) {
	p.Vy += gravity * dt
	p.X += p.Vx * dt
	p.Y += p.Vy * dt
}

// ApplyFriction scales both velocity components by (1 - coeff).
func (p *Particle) ApplyFriction(coeff float64) {
	p.Vx *= 1 - coeff
	p.Vy *= 1 - coeff
}

// Speed returns the velocity magnitude.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.Vx, p.Vy)
}

// KineticEnergy returns 1/2 m v².
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * (p.Vx*p.Vx + p.Vy*p.Vy)
}

// Clone returns an independent copy, used for render snapshots.
func (p *Particle) Clone() *Particle {
	c := *p
	return &c
}

func (p *Particle) String() string {
	return fmt.Sprintf("particle(x=%.1f y=%.1f r=%.0f m=%.2f e=%.2f)",
		p.X, p.Y, p.Radius, p.Mass, p.Elasticity)
}
