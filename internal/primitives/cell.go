// Cell and Bond are the entity records of the simulation. Cells live in an
// id-indexed arena (internal/core) and are addressed by CellID everywhere;
// object identity is never used for membership.

package primitives

import "fmt"

// CellID identifies a cell for the lifetime of a run. Ids are issued
// monotonically and never recycled, even after the cell divides.
type CellID int

// SeedID is the id of the generation-0 seed cell.
const SeedID CellID = 1

// Cell is one node of the lineage tree. An active cell (no children yet)
// occupies exactly one lattice point; a divided cell is retained purely as
// an interior lineage node and owns exactly two children.
type Cell struct {
	X, Y        float64 // continuous position, exact lattice multiples
	Orientation float64 // degrees in [0,360)
	Generation  int

	ParentID    CellID // 0 for the root
	ID          CellID
	ChildNumber int // 1 or 2; 0 for the root

	Children [2]CellID // zero until division
}

// Divided reports whether the cell has split.
func (c *Cell) Divided() bool {
	return c.Children[0] != 0
}

// Lineage formats the lineage triple as "parent.own.childNumber".
func (c *Cell) Lineage() string {
	return fmt.Sprintf("%d.%d.%d", c.ParentID, c.ID, c.ChildNumber)
}

// Bond is an unordered adhesion pair. Inherited is false only for the
// sibling bond created at division time. SourceChild (0 none, 1 or 2)
// carries the deferred equatorial tag: which child slot of the bond's
// not-yet-divided neighbor this bond should reattach to when that neighbor
// eventually divides.
type Bond struct {
	A, B        CellID
	Inherited   bool
	SourceChild int
}

// Other returns the endpoint opposite id and true, or 0 and false when the
// bond does not name id.
func (b Bond) Other(id CellID) (CellID, bool) {
	switch id {
	case b.A:
		return b.B, true
	case b.B:
		return b.A, true
	}
	return 0, false
}
