package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/san-kum/collider/internal/particle"
)

// Config carries every constant the world needs; nothing is hardcoded so
// independent worlds can coexist with different arenas.
type Config struct {
	Width        float64
	Height       float64
	ChromeHeight float64 // vertical space reserved by the front end below the arena
	Gravity      float64
	Friction     float64
	Dt           float64
	InitialCount int
	MaxAttempts  int // spawn rejection-sampling budget
	Spawn        particle.SpawnRanges
}

// DefaultConfig returns the classic 800x800 arena at 60 fps.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       800,
		ChromeHeight: 28,
		Gravity:      9.81,
		Friction:     0.0001,
		Dt:           1.0 / 60.0,
		InitialCount: 75,
		MaxAttempts:  1000,
		Spawn:        particle.DefaultSpawnRanges(),
	}
}

// PlayableHeight is the vertical extent particles may occupy.
func (c Config) PlayableHeight() float64 {
	return c.Height - c.ChromeHeight
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("engine: arena dimensions must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.PlayableHeight() <= 0 {
		return fmt.Errorf("engine: chrome height %g leaves no playable area", c.ChromeHeight)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("engine: dt must be positive, got %g", c.Dt)
	}
	return nil
}

// CollisionHook observes resolved collisions. The default front end uses it
// to recolor both particles; the engine itself attaches no visual meaning.
type CollisionHook func(a, b *particle.Particle)

// World owns the particle collection and steps it forward one fixed
// timestep at a time. A single mutex guards Step and every mutation, so
// commands may arrive from a goroutine other than the render loop.
type World struct {
	mu sync.Mutex

	cfg     Config
	rng     *rand.Rand
	factory *particle.Factory

	particles  []*particle.Particle
	gravityOn  bool
	frictionOn bool

	hooks      []CollisionHook
	collisions int // total resolved since creation or reset

	// sweep scratch buffers, reused across frames
	activeX []*particle.Particle
	activeY []*particle.Particle
}

// New builds an empty world. Populate it with Reset or Add.
func New(cfg Config, rng *rand.Rand) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &World{
		cfg:     cfg,
		rng:     rng,
		factory: particle.NewFactory(rng, cfg.Width, cfg.PlayableHeight(), cfg.Spawn),
	}, nil
}

// Step advances the simulation by dt: friction, integration, wall
// containment for every particle, then the broad-phase/narrow-phase
// collision pass.
func (w *World) Step(dt float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	gravity := 0.0
	if w.gravityOn {
		gravity = w.cfg.Gravity
	}

	for _, p := range w.particles {
		if w.frictionOn {
			p.ApplyFriction(w.cfg.Friction)
		}
		p.Integrate(dt, gravity)
		ResolveWalls(p, w.cfg.Width, w.cfg.PlayableHeight())
	}

	w.sweepAndPrune()
}

// Add inserts a particle. Invalid particles (non-positive mass or radius)
// are rejected so resolution never divides by zero.
func (w *World) Add(p *particle.Particle) error {
	if p.Mass <= 0 {
		return fmt.Errorf("engine: particle mass must be positive, got %f", p.Mass)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("engine: particle radius must be positive, got %f", p.Radius)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.particles = append(w.particles, p)
	return nil
}

// AddRandom draws random particles until one fits without overlapping the
// existing population, up to the configured attempt budget.
func (w *World) AddRandom() (*particle.Particle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addRandomLocked()
}

func (w *World) addRandomLocked() (*particle.Particle, error) {
	for attempt := 0; attempt < w.cfg.MaxAttempts; attempt++ {
		candidate := w.factory.Random()
		if !w.overlapsAnyLocked(candidate) {
			w.particles = append(w.particles, candidate)
			return candidate, nil
		}
	}
	return nil, ErrArenaFull
}

func (w *World) overlapsAnyLocked(candidate *particle.Particle) bool {
	for _, p := range w.particles {
		if Colliding(candidate, p) {
			return true
		}
	}
	return false
}

// Remove deletes the given particle. It reports false when the particle is
// not in the world.
func (w *World) Remove(target *particle.Particle) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, p := range w.particles {
		if p == target {
			w.particles = append(w.particles[:i], w.particles[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLast pops the most recently added particle. Removing from an empty
// world is a reported no-op, not a fault.
func (w *World) RemoveLast() (*particle.Particle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.particles) == 0 {
		return nil, ErrNoParticles
	}
	last := w.particles[len(w.particles)-1]
	w.particles = w.particles[:len(w.particles)-1]
	return last, nil
}

// Reset clears the collection and repopulates it to the configured initial
// count with non-overlapping random particles.
func (w *World) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.particles = w.particles[:0]
	w.collisions = 0

	for i := 0; i < w.cfg.InitialCount; i++ {
		if _, err := w.addRandomLocked(); err != nil {
			return fmt.Errorf("engine: reset placed %d of %d particles: %w",
				i, w.cfg.InitialCount, err)
		}
	}
	return nil
}

// SetGravityEnabled toggles gravity for all particles uniformly.
func (w *World) SetGravityEnabled(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gravityOn = on
}

// GravityEnabled reports the gravity toggle.
func (w *World) GravityEnabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gravityOn
}

// SetFrictionEnabled toggles per-frame velocity damping.
func (w *World) SetFrictionEnabled(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frictionOn = on
}

// FrictionEnabled reports the friction toggle.
func (w *World) FrictionEnabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frictionOn
}

// OnCollision registers a hook fired for every resolved pair. Hooks run
// inside Step under the world lock; they may touch the colliding particles
// and call Recolor, but must not call locking world methods.
func (w *World) OnCollision(hook CollisionHook) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hooks = append(w.hooks, hook)
}

// Recolor gives a particle a fresh random hue; front ends hook this up as
// collision feedback.
func (w *World) Recolor(p *particle.Particle) {
	w.factory.Recolor(p)
}

// Count returns the population size.
func (w *World) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.particles)
}

// Collisions returns the number of resolved collisions since the last reset.
func (w *World) Collisions() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.collisions
}

// Config returns the world configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Particles returns a deep snapshot safe to read while the world keeps
// stepping.
func (w *World) Particles() []*particle.Particle {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*particle.Particle, len(w.particles))
	for i, p := range w.particles {
		out[i] = p.Clone()
	}
	return out
}
