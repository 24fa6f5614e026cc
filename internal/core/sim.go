// Simulation is the single explicit state value of a run: genome, cell
// arena, lattice occupancy, bond ledger, current generation. The original
// tool held these as ambient object fields; here they thread explicitly
// through the division engine and stepper.

package core

import (
	"errors"
	"fmt"

	"github.com/comalice/tissuex/internal/primitives"
)

var (
	// ErrNegativeGeneration is returned by StepTo for a negative target.
	ErrNegativeGeneration = errors.New("target generation must be non-negative")
)

// Simulation carries the full state of one tissue run.
type Simulation struct {
	genome     primitives.Genome
	arena      *Arena
	lattice    *Lattice
	bonds      []primitives.Bond
	generation int
}

// NewSimulation creates a simulation seeded at generation 0. The genome
// must already be validated and normalized.
func NewSimulation(genome primitives.Genome) *Simulation {
	s := &Simulation{genome: genome}
	s.Reset()
	return s
}

// SetGenome replaces the configuration and discards all derived state.
// It does not resimulate; the caller re-runs StepTo.
func (s *Simulation) SetGenome(genome primitives.Genome) {
	s.genome = genome
	s.Reset()
}

// Genome returns the active configuration.
func (s *Simulation) Genome() primitives.Genome {
	return s.genome
}

// Reset discards all state and reseeds the generation-0 cell at the
// lattice origin: id 1, lineage triple 0.1.0, orientation 0.
func (s *Simulation) Reset() {
	s.arena = NewArena()
	s.lattice = NewLattice(s.genome.GridSpacing)
	s.bonds = nil
	s.generation = 0

	seed := &primitives.Cell{ID: primitives.SeedID}
	s.arena.Add(seed)
	s.lattice.Place(GridPoint{0, 0}, seed.ID)
}

// StepTo recomputes the full state for the target generation from the
// generation-0 seed. It is not incremental: every call re-derives history,
// so the result is a pure function of (genome, target). Within each pass
// only the cohort snapshotted at the start of the pass divides; cells
// created during the pass wait for the next one.
func (s *Simulation) StepTo(target int) error {
	if target < 0 {
		return fmt.Errorf("step to %d: %w", target, ErrNegativeGeneration)
	}
	s.Reset()

	for gen := 0; gen < target; gen++ {
		cohort := make([]primitives.CellID, 0, s.arena.ActiveCount())
		for _, id := range s.arena.Active() {
			if c, ok := s.arena.Get(id); ok && c.Generation == gen {
				cohort = append(cohort, id)
			}
		}
		for _, id := range cohort {
			if c, ok := s.arena.Get(id); ok {
				s.Divide(c)
			}
		}
	}

	s.generation = target
	return nil
}

// Generation returns the generation the simulation currently represents.
func (s *Simulation) Generation() int {
	return s.generation
}

// CellSnapshot is the read-only export of one active cell.
type CellSnapshot struct {
	ID          primitives.CellID `json:"id" yaml:"id"`
	ParentID    primitives.CellID `json:"parentID" yaml:"parentID"`
	ChildNumber int               `json:"childNumber" yaml:"childNumber"`
	X           float64           `json:"x" yaml:"x"`
	Y           float64           `json:"y" yaml:"y"`
	Orientation float64           `json:"orientation" yaml:"orientation"`
	Generation  int               `json:"generation" yaml:"generation"`
}

// Lineage formats the snapshot's lineage triple as "parent.own.childNumber".
func (c CellSnapshot) Lineage() string {
	return fmt.Sprintf("%d.%d.%d", c.ParentID, c.ID, c.ChildNumber)
}

// BondSnapshot is the read-only export of one adhesion bond. The deferred
// source-child tag is engine-internal and not exported.
type BondSnapshot struct {
	A         primitives.CellID `json:"a" yaml:"a"`
	B         primitives.CellID `json:"b" yaml:"b"`
	Inherited bool              `json:"inherited" yaml:"inherited"`
}

// ActiveCells returns an ordered snapshot of the active cells (insertion
// order of the active set). The slice is freshly allocated; callers may
// iterate it while the simulation advances.
func (s *Simulation) ActiveCells() []CellSnapshot {
	out := make([]CellSnapshot, 0, s.arena.ActiveCount())
	for _, id := range s.arena.Active() {
		c, ok := s.arena.Get(id)
		if !ok {
			continue
		}
		out = append(out, CellSnapshot{
			ID:          c.ID,
			ParentID:    c.ParentID,
			ChildNumber: c.ChildNumber,
			X:           c.X,
			Y:           c.Y,
			Orientation: c.Orientation,
			Generation:  c.Generation,
		})
	}
	return out
}

// Bonds returns an ordered snapshot of the adhesion ledger.
func (s *Simulation) Bonds() []BondSnapshot {
	out := make([]BondSnapshot, 0, len(s.bonds))
	for _, b := range s.bonds {
		out = append(out, BondSnapshot{A: b.A, B: b.B, Inherited: b.Inherited})
	}
	return out
}

// Cell returns the live record for id. Test and facade use only.
func (s *Simulation) Cell(id primitives.CellID) (*primitives.Cell, bool) {
	return s.arena.Get(id)
}

// Lattice exposes the occupancy map for invariant checks.
func (s *Simulation) Lattice() *Lattice {
	return s.lattice
}
