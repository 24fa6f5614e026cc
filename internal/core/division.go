// Division engine: splits one active cell into two children, placing them
// on the lattice and rewriting the adhesion ledger.
//
// Bond inheritance classifies each of the parent's bonds by the angle
// between the bond vector and the split axis. Within 10 degrees of the
// 90-degree equator, children match the neighbor's same-numbered children;
// when the neighbor has not divided yet the decision is deferred through a
// source-child tag that the neighbor's own division later honors ahead of
// any angle computation.

package core

import (
	"math"

	"github.com/comalice/tissuex/internal/primitives"
)

// equatorialHalfWidth is the half-width in degrees of the band around 90
// where same-type child matching applies.
const equatorialHalfWidth = 10.0

// Divide splits parent into two children and returns them. The parent must
// be active. It is retained as an interior lineage node; its lattice point
// passes to child1 and child2 takes the adjacent point along the split
// axis, pushing any occupant chain out of the way first.
func (s *Simulation) Divide(parent *primitives.Cell) (child1, child2 *primitives.Cell) {
	g := s.genome

	child1Orientation := primitives.WrapDegrees(parent.Orientation + g.Child1Angle)
	child2Orientation := primitives.WrapDegrees(parent.Orientation + g.Child2Angle)

	parentGrid := s.lattice.ToGrid(parent.X, parent.Y)

	// Split axis, quantized to the grid. Degenerate vectors fall back North
	// (placement elsewhere falls back East; see lattice.go).
	splitRad := radians(parent.Orientation + g.SplitAngle)
	splitDir := QuantizeDirection(math.Cos(splitRad), math.Sin(splitRad), North)

	// Vacate the parent before placing children so the push chain never
	// moves the parent's own record.
	s.lattice.Remove(parentGrid, parent.ID)
	s.arena.Deactivate(parent.ID)

	child1Grid := parentGrid
	child2Grid := parentGrid.Step(splitDir)
	if _, occupied := s.lattice.OccupantAt(child2Grid); occupied {
		s.lattice.Push(child2Grid, splitDir, s.arena)
	}

	child1 = s.newChild(parent, 1, child1Grid, child1Orientation)
	child2 = s.newChild(parent, 2, child2Grid, child2Orientation)
	parent.Children = [2]primitives.CellID{child1.ID, child2.ID}

	s.lattice.Place(child1Grid, child1.ID)
	s.lattice.Place(child2Grid, child2.ID)

	s.inheritBonds(parent, child1, child2, splitRad)

	if g.MakeAdhesion {
		s.bonds = append(s.bonds, primitives.Bond{A: child1.ID, B: child2.ID})
	}

	s.arena.Add(child1)
	s.arena.Add(child2)
	return child1, child2
}

// newChild allocates a child record at a lattice point. Ids are issued in
// call order, so child1 always gets the smaller id.
func (s *Simulation) newChild(parent *primitives.Cell, number int, at GridPoint, orientation float64) *primitives.Cell {
	x, y := s.lattice.ToWorld(at)
	return &primitives.Cell{
		X:           x,
		Y:           y,
		Orientation: orientation,
		Generation:  parent.Generation + 1,
		ParentID:    parent.ID,
		ID:          s.arena.NextID(),
		ChildNumber: number,
	}
}

// inheritBonds removes every ledger bond naming parent and appends its
// replacements at the tail, preserving creation order so reruns are
// bit-identical.
func (s *Simulation) inheritBonds(parent, child1, child2 *primitives.Cell, splitRad float64) {
	g := s.genome
	kept := s.bonds[:0:0]
	var created []primitives.Bond

	splitX, splitY := math.Cos(splitRad), math.Sin(splitRad)

	for _, bond := range s.bonds {
		neighborID, names := bond.Other(parent.ID)
		if !names {
			kept = append(kept, bond)
			continue
		}
		neighbor, ok := s.arena.Get(neighborID)
		if !ok {
			continue // endpoint never registered; drop
		}

		// Bond vector from the parent. Zero length carries no direction,
		// the bond is dropped outright.
		dx := neighbor.X - parent.X
		dy := neighbor.Y - parent.Y
		if dx == 0 && dy == 0 {
			continue
		}
		length := math.Hypot(dx, dy)
		dot := (dx/length)*splitX + (dy/length)*splitY
		angle := degrees(math.Acos(clamp(dot, -1, 1)))

		switch {
		case bond.SourceChild != 0:
			// Deferred equatorial tag wins over the recomputed angle: the
			// tagged child slot takes the bond, untagged.
			if bond.SourceChild == 1 && g.KeepAdhesionChild1 {
				created = append(created, primitives.Bond{A: child1.ID, B: neighborID, Inherited: true})
			} else if bond.SourceChild == 2 && g.KeepAdhesionChild2 {
				created = append(created, primitives.Bond{A: child2.ID, B: neighborID, Inherited: true})
			}

		case math.Abs(angle-90) <= equatorialHalfWidth:
			// Equatorial: same-numbered children pair up. An undivided
			// neighbor gets tagged bonds to resolve at its own division.
			if neighbor.Divided() {
				if g.KeepAdhesionChild1 {
					created = append(created, primitives.Bond{A: child1.ID, B: neighbor.Children[0], Inherited: true})
				}
				if g.KeepAdhesionChild2 {
					created = append(created, primitives.Bond{A: child2.ID, B: neighbor.Children[1], Inherited: true})
				}
			} else {
				if g.KeepAdhesionChild1 {
					created = append(created, primitives.Bond{A: child1.ID, B: neighborID, Inherited: true, SourceChild: 1})
				}
				if g.KeepAdhesionChild2 {
					created = append(created, primitives.Bond{A: child2.ID, B: neighborID, Inherited: true, SourceChild: 2})
				}
			}

		case angle < 90:
			// Aligned with the split axis: child2 inherits.
			if g.KeepAdhesionChild2 {
				target := neighborID
				if neighbor.Divided() {
					target = neighbor.Children[1]
				}
				created = append(created, primitives.Bond{A: child2.ID, B: target, Inherited: true})
			}

		default:
			// Opposite the split axis: child1 inherits.
			if g.KeepAdhesionChild1 {
				target := neighborID
				if neighbor.Divided() {
					target = neighbor.Children[0]
				}
				created = append(created, primitives.Bond{A: child1.ID, B: target, Inherited: true})
			}
		}
	}

	s.bonds = append(kept, created...)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
