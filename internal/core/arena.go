// Arena is the id-indexed registry of every cell ever created in a run.
// It replaces the original tool's object-identity membership tests: the
// active set is an ordered id list, and "active" is derived from the cell
// record itself (no children yet).

package core

import "github.com/comalice/tissuex/internal/primitives"

// Arena owns all cell records and issues lineage ids.
type Arena struct {
	cells  map[primitives.CellID]*primitives.Cell
	active []primitives.CellID // insertion order, drives cohort iteration
	nextID primitives.CellID
}

// NewArena returns an empty arena. Id issuance starts at 2; 1 is reserved
// for the generation-0 seed.
func NewArena() *Arena {
	return &Arena{
		cells:  make(map[primitives.CellID]*primitives.Cell),
		nextID: primitives.SeedID + 1,
	}
}

// NextID issues the next unique id. Strictly increasing, never reused.
// Overflow is out of scope: realistic runs stay under ~2^21 cells.
func (a *Arena) NextID() primitives.CellID {
	id := a.nextID
	a.nextID++
	return id
}

// Add registers a cell record and appends it to the active set.
func (a *Arena) Add(c *primitives.Cell) {
	a.cells[c.ID] = c
	a.active = append(a.active, c.ID)
}

// Get returns the cell record for id.
func (a *Arena) Get(id primitives.CellID) (*primitives.Cell, bool) {
	c, ok := a.cells[id]
	return c, ok
}

// Deactivate removes id from the active set, preserving the order of the
// remaining entries. The cell record is retained as a lineage-tree node.
func (a *Arena) Deactivate(id primitives.CellID) {
	for i, v := range a.active {
		if v == id {
			a.active = append(a.active[:i], a.active[i+1:]...)
			return
		}
	}
}

// Active returns the active id list in insertion order. The slice is the
// arena's own; callers must not retain it across mutations.
func (a *Arena) Active() []primitives.CellID {
	return a.active
}

// ActiveCount returns the number of active cells.
func (a *Arena) ActiveCount() int {
	return len(a.active)
}
