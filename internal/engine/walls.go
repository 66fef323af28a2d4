package engine

import "github.com/san-kum/collider/internal/particle"

// ResolveWalls reflects and clamps a particle against the arena boundary.
// Axes are handled independently, so a particle can bounce off two walls in
// the same frame. The bottom boundary is the playable height, which excludes
// any chrome the front end reserves below the arena.
func ResolveWalls(p *particle.Particle, width, playableHeight float64) {
	if p.X-p.Radius < 0 {
		p.Vx = -p.Vx
		p.X = p.Radius
	} else if p.X+p.Radius > width {
		p.Vx = -p.Vx
		p.X = width - p.Radius
	}

	if p.Y-p.Radius < 0 {
		p.Vy = -p.Vy
		p.Y = p.Radius
	} else if p.Y+p.Radius > playableHeight {
		p.Vy = -p.Vy
		p.Y = playableHeight - p.Radius
	}
}
