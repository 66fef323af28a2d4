package engine

import (
	"sort"

	"github.com/san-kum/collider/internal/particle"
)

// sweepAndPrune generates candidate pairs and feeds them through the narrow
// phase. Particles are sorted by MinX (ties by MinY) each frame, then two
// active working sets are swept over the sorted order: one evicted on the X
// extent, one on the Y extent. The sets are intentionally not intersected;
// each pass issues its own candidates and the exact circle test gates actual
// resolution, so the extra candidates cost a distance check and nothing more.
func (w *World) sweepAndPrune() {
	ps := w.particles

	sort.Slice(ps, func(i, j int) bool {
		if ps[i].MinX() != ps[j].MinX() {
			return ps[i].MinX() < ps[j].MinX()
		}
		return ps[i].MinY() < ps[j].MinY()
	})

	activeX := w.activeX[:0]
	activeY := w.activeY[:0]

	for _, p := range ps {
		// Everything whose max X extent lies left of p can never overlap p
		// or any later particle in the sorted order.
		activeX = evict(activeX, func(q *particle.Particle) bool {
			return q.MaxX() < p.MinX()
		})
		for _, q := range activeX {
			w.testAndResolve(p, q)
		}
		activeX = append(activeX, p)

		activeY = evict(activeY, func(q *particle.Particle) bool {
			return q.MaxY() < p.MinY()
		})
		for _, q := range activeY {
			w.testAndResolve(p, q)
		}
		activeY = append(activeY, p)
	}

	// Keep the scratch buffers for the next frame.
	w.activeX = activeX[:0]
	w.activeY = activeY[:0]
}

// evict filters the active set in place, dropping members that satisfy gone.
func evict(active []*particle.Particle, gone func(*particle.Particle) bool) []*particle.Particle {
	kept := active[:0]
	for _, q := range active {
		if !gone(q) {
			kept = append(kept, q)
		}
	}
	return kept
}

func (w *World) testAndResolve(p, q *particle.Particle) {
	if p == q || !Colliding(p, q) {
		return
	}
	if ResolveCollision(p, q, w.rng) {
		w.collisions++
		for _, hook := range w.hooks {
			hook(p, q)
		}
	}
}
