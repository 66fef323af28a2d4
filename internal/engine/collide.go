package engine

import (
	"math"
	"math/rand"

	"github.com/san-kum/collider/internal/particle"
)

// Positional correction constants. Correction is deliberately partial so
// resting contacts converge over several frames instead of snapping.
const (
	correctionPercent = 0.75
	correctionSlop    = 0.01
)

// Colliding reports whether two particles overlap. Exact tangency does not
// count.
func Colliding(a, b *particle.Particle) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	return dist < a.Radius+b.Radius
}

// ResolveCollision applies an impulse along the contact normal and a partial
// positional correction to a colliding pair. It returns false without
// touching either particle when the pair is already separating. The rand
// source breaks the degenerate zero-distance case with a small perturbation.
func ResolveCollision(a, b *particle.Particle, rng *rand.Rand) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	// Coincident centers leave the normal undefined; perturb slightly so the
	// pair separates in a random direction.
	if dist == 0 {
		dist = 0.01
		dx += rng.Float64()*0.02 - 0.01
		dy += rng.Float64()*0.02 - 0.01
	}

	nx := dx / dist
	ny := dy / dist

	rvx := b.Vx - a.Vx
	rvy := b.Vy - a.Vy
	rvn := rvx*nx + rvy*ny

	// Separating pairs get no impulse; resolving them would inject energy.
	if rvn > 0 {
		return false
	}

	e := math.Min(a.Elasticity, b.Elasticity)

	j := -(1 + e) * rvn
	j /= 1/a.Mass + 1/b.Mass

	jx := j * nx
	jy := j * ny

	a.Vx -= jx / a.Mass
	a.Vy -= jy / a.Mass
	b.Vx += jx / b.Mass
	b.Vy += jy / b.Mass

	overlap := math.Max(dist-(a.Radius+b.Radius), 0)
	correction := (overlap - correctionSlop) / (1/a.Mass + 1/b.Mass) * correctionPercent
	cx := correction * nx
	cy := correction * ny

	a.X -= cx / a.Mass
	a.Y -= cy / a.Mass
	b.X += cx / b.Mass
	b.Y += cy / b.Mass

	return true
}
