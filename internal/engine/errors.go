package engine

import "errors"

var (
	// ErrArenaFull indicates random placement could not find a free spot
	// within the configured attempt budget.
	ErrArenaFull = errors.New("engine: arena full, no free spot for new particle")

	// ErrNoParticles indicates a removal was requested on an empty world.
	ErrNoParticles = errors.New("engine: no particles to remove")
)
