// Lattice maps between continuous space and the integer grid, tracks
// occupancy, and resolves collisions by push-displacement. It holds CellIDs
// only; the arena owns the cell records.

package core

import (
	"math"

	"github.com/comalice/tissuex/internal/primitives"
)

// GridPoint is an integer lattice coordinate.
type GridPoint struct {
	X, Y int
}

// Direction is one of the 8 lattice steps (components in {-1,0,1}).
type Direction struct {
	DX, DY int
}

// Degeneracy fallbacks. Placement falls back East, the split axis falls
// back North. The asymmetry is carried from the original simulator; do not
// unify them, edge-case angles would quantize differently.
var (
	East  = Direction{1, 0}
	North = Direction{0, 1}
)

// Step returns the point one step along d.
func (p GridPoint) Step(d Direction) GridPoint {
	return GridPoint{p.X + d.DX, p.Y + d.DY}
}

// Lattice is the occupancy map at a fixed spacing.
type Lattice struct {
	spacing  float64
	occupant map[GridPoint]primitives.CellID
}

// NewLattice creates an empty lattice. Spacing must be positive; genome
// validation guarantees that before a lattice is ever built.
func NewLattice(spacing float64) *Lattice {
	return &Lattice{
		spacing:  spacing,
		occupant: make(map[GridPoint]primitives.CellID),
	}
}

// ToGrid quantizes a continuous position to its nearest lattice point.
func (l *Lattice) ToGrid(x, y float64) GridPoint {
	return GridPoint{
		X: int(math.Round(x / l.spacing)),
		Y: int(math.Round(y / l.spacing)),
	}
}

// ToWorld converts a lattice point to its exact continuous position.
func (l *Lattice) ToWorld(p GridPoint) (x, y float64) {
	return float64(p.X) * l.spacing, float64(p.Y) * l.spacing
}

// OccupantAt returns the cell occupying p, if any.
func (l *Lattice) OccupantAt(p GridPoint) (primitives.CellID, bool) {
	id, ok := l.occupant[p]
	return id, ok
}

// Place records id at p. The caller is responsible for p being free.
func (l *Lattice) Place(p GridPoint, id primitives.CellID) {
	l.occupant[p] = id
}

// Remove clears p if id is its current occupant.
func (l *Lattice) Remove(p GridPoint, id primitives.CellID) {
	if l.occupant[p] == id {
		delete(l.occupant, p)
	}
}

// Len returns the number of occupied lattice points.
func (l *Lattice) Len() int {
	return len(l.occupant)
}

// QuantizeDirection maps a continuous vector to a lattice direction by
// thresholding each component at magnitude 0.5. A vector whose components
// both quantize to zero yields the fallback.
func QuantizeDirection(dx, dy float64, fallback Direction) Direction {
	d := Direction{DX: quantizeAxis(dx), DY: quantizeAxis(dy)}
	if d.DX == 0 && d.DY == 0 {
		return fallback
	}
	return d
}

// PlacementDirection quantizes a placement vector with the East fallback.
// The split-axis computation in the division engine uses North instead;
// the two defaults are deliberately different (see the Direction vars).
func PlacementDirection(dx, dy float64) Direction {
	return QuantizeDirection(dx, dy, East)
}

func quantizeAxis(v float64) int {
	switch {
	case v > 0.5:
		return 1
	case v < -0.5:
		return -1
	}
	return 0
}

// Push frees pos by displacing its occupant one step along dir, first
// displacing whatever occupies that next point, and so on down the chain.
// A chain never cycles (it only grows in one direction on an unbounded
// grid), so walking to the first free point terminates. Implemented as a
// walk plus a far-to-near shift rather than call recursion so stack depth
// is independent of chain length. Moved cells get their continuous
// positions rewritten through the arena.
func (l *Lattice) Push(pos GridPoint, dir Direction, arena *Arena) {
	if _, ok := l.occupant[pos]; !ok {
		return // already free
	}

	// Walk to the end of the occupied chain.
	chain := []GridPoint{pos}
	next := pos.Step(dir)
	for {
		if _, ok := l.occupant[next]; !ok {
			break
		}
		chain = append(chain, next)
		next = next.Step(dir)
	}

	// Shift occupants starting from the far end so each target is free.
	for i := len(chain) - 1; i >= 0; i-- {
		from := chain[i]
		to := from.Step(dir)
		id := l.occupant[from]
		delete(l.occupant, from)
		l.occupant[to] = id
		if c, ok := arena.Get(id); ok {
			c.X, c.Y = l.ToWorld(to)
		}
	}
}
