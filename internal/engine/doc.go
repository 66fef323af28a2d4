// Package engine advances a population of circular particles inside a
// bounded arena. Each Step integrates motion under optional gravity and
// friction, reflects particles off the arena walls, then detects and
// resolves pairwise collisions with a sweep-and-prune broad phase and
// impulse-based resolution with partial positional correction.
package engine
