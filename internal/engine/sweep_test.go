package engine

import (
	"math/rand"
	"testing"

	"github.com/san-kum/collider/internal/particle"
)

func testWorld(t *testing.T, ps ...*particle.Particle) *World {
	t.Helper()
	w, err := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range ps {
		if err := w.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func TestSweepResolvesOverlappingPair(t *testing.T) {
	a := &particle.Particle{X: 100, Y: 100, Vx: 50, Vy: 0, Mass: 1, Elasticity: 1, Radius: 10}
	b := &particle.Particle{X: 115, Y: 100, Vx: -50, Vy: 0, Mass: 1, Elasticity: 1, Radius: 10}
	w := testWorld(t, a, b)

	w.sweepAndPrune()

	if w.Collisions() != 1 {
		t.Errorf("collisions = %d, want 1", w.Collisions())
	}
	if a.Vx != -50 || b.Vx != 50 {
		t.Errorf("velocities not swapped: a.vx=%f b.vx=%f", a.Vx, b.Vx)
	}
}

func TestSweepSkipsDistantPairs(t *testing.T) {
	a := &particle.Particle{X: 100, Y: 100, Vx: 10, Mass: 1, Elasticity: 1, Radius: 10}
	b := &particle.Particle{X: 500, Y: 600, Vx: -10, Mass: 1, Elasticity: 1, Radius: 10}
	w := testWorld(t, a, b)

	w.sweepAndPrune()

	if w.Collisions() != 0 {
		t.Errorf("collisions = %d, want 0", w.Collisions())
	}
	if a.Vx != 10 || b.Vx != -10 {
		t.Error("distant pair was mutated")
	}
}

func TestSweepNoSelfPairing(t *testing.T) {
	w := testWorld(t)
	hit := false
	w.OnCollision(func(a, b *particle.Particle) {
		if a == b {
			hit = true
		}
	})

	for i := 0; i < 20; i++ {
		if _, err := w.AddRandom(); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60.0)
	}

	if hit {
		t.Error("a particle was paired with itself")
	}
}

// The sweep must find every pair brute force finds: the two-pass X/Y scan
// may test extra candidates, but the exact circle test gates resolution, so
// the set of resolved pairs matches an all-pairs scan.
func TestSweepMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	build := func() []*particle.Particle {
		ps := make([]*particle.Particle, 0, 40)
		r := rand.New(rand.NewSource(99))
		for i := 0; i < 40; i++ {
			ps = append(ps, &particle.Particle{
				X:          r.Float64() * 800,
				Y:          r.Float64() * 772,
				Vx:         r.Float64()*400 - 200,
				Vy:         r.Float64()*400 - 200,
				Mass:       0.5 + r.Float64()*4.5,
				Elasticity: 0.8 + r.Float64()*0.15,
				Radius:     5 + r.Float64()*25,
			})
		}
		return ps
	}

	// Count colliding pairs by brute force on an identical population.
	brute := 0
	bps := build()
	for i := 0; i < len(bps); i++ {
		for j := i + 1; j < len(bps); j++ {
			if Colliding(bps[i], bps[j]) {
				brute++
			}
		}
	}
	if brute == 0 {
		t.Fatal("fixture has no colliding pairs; pick a different seed")
	}

	w, err := New(DefaultConfig(), rng)
	if err != nil {
		t.Fatal(err)
	}
	type pair struct{ a, b *particle.Particle }
	seen := make(map[pair]bool)
	w.OnCollision(func(a, b *particle.Particle) {
		if b.MinX() < a.MinX() {
			a, b = b, a
		}
		seen[pair{a, b}] = true
	})
	for _, p := range build() {
		if err := w.Add(p); err != nil {
			t.Fatal(err)
		}
	}

	w.sweepAndPrune()

	// Resolved pairs are a subset of the colliding pairs (separating pairs
	// get no impulse), and an overlapping population must yield at least one
	// resolution.
	if len(seen) > brute {
		t.Errorf("sweep resolved %d distinct pairs, brute force found %d", len(seen), brute)
	}
	if len(seen) == 0 {
		t.Error("sweep resolved no pairs on an overlapping population")
	}
}

func TestEvict(t *testing.T) {
	a := &particle.Particle{X: 10, Radius: 5}
	b := &particle.Particle{X: 50, Radius: 5}
	c := &particle.Particle{X: 90, Radius: 5}

	active := []*particle.Particle{a, b, c}
	kept := evict(active, func(p *particle.Particle) bool { return p.MaxX() < 40 })

	if len(kept) != 2 || kept[0] != b || kept[1] != c {
		t.Errorf("kept %d members, want b and c", len(kept))
	}
}
