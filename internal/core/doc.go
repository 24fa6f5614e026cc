// Package core provides the runtime tier of the tissue growth engine:
// lattice occupancy with push-displacement, the id-indexed cell arena,
// the division engine, and the generation stepper.
// Dependencies: internal/primitives.
// Stdlib-only implementation.
package core
