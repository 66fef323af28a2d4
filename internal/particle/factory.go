package particle

import "math/rand"

// SpawnRanges bounds the random attributes the factory draws. Defaults match
// the classic arena setup: radius 5-30, mass 0.5-5, speed components within
// ±200, elasticity 0.8-0.95, 20px inset from the arena edges.
type SpawnRanges struct {
	RadiusMin, RadiusMax         float64
	MassMin, MassMax             float64
	SpeedMax                     float64
	ElasticityMin, ElasticityMax float64
	Margin                       float64
}

// DefaultSpawnRanges returns the standard attribute ranges.
func DefaultSpawnRanges() SpawnRanges {
	return SpawnRanges{
		RadiusMin:     5,
		RadiusMax:     30,
		MassMin:       0.5,
		MassMax:       5,
		SpeedMax:      200,
		ElasticityMin: 0.8,
		ElasticityMax: 0.95,
		Margin:        20,
	}
}

// Factory draws particles with random attributes inside an arena. The rand
// source is injected so tests can pin the sequence.
type Factory struct {
	rng    *rand.Rand
	ranges SpawnRanges
	width  float64
	height float64
}

// NewFactory builds a factory for an arena of the given playable size.
func NewFactory(rng *rand.Rand, width, height float64, ranges SpawnRanges) *Factory {
	return &Factory{rng: rng, ranges: ranges, width: width, height: height}
}

// Random draws one particle. Overlap rejection against an existing
// population is the caller's job; the factory only honors position margins
// and attribute ranges.
func (f *Factory) Random() *Particle {
	r := f.ranges
	span := func(lo, hi float64) float64 { return lo + f.rng.Float64()*(hi-lo) }

	p := &Particle{
		X:          span(r.Margin, f.width-r.Margin),
		Y:          span(r.Margin, f.height-r.Margin),
		Vx:         span(-r.SpeedMax, r.SpeedMax),
		Vy:         span(-r.SpeedMax, r.SpeedMax),
		Mass:       span(r.MassMin, r.MassMax),
		Elasticity: span(r.ElasticityMin, r.ElasticityMax),
		Radius:     span(r.RadiusMin, r.RadiusMax),
		Hue:        f.rng.Float64() * 360,
	}
	return p
}

// Recolor assigns a fresh random hue, the default collision feedback.
func (f *Factory) Recolor(p *Particle) {
	p.Hue = f.rng.Float64() * 360
}
