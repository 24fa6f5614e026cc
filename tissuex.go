// Package tissuex models tissue growth as recursive binary division of
// cells on a discrete 2D lattice, tracking lineage and inter-cell adhesion
// bonds as the population grows.
//
// Engine is the command/snapshot facade consumed by presentation layers:
// they drive it with Configure/StepTo and read it back through ActiveCells
// and Bonds. The engine is single-threaded and StepTo is atomic from a
// reader's perspective; no partial state is ever observable.
package tissuex

import (
	"errors"

	"github.com/comalice/tissuex/internal/core"
	"github.com/comalice/tissuex/internal/primitives"
)

// Genome is the global division configuration; see DefaultGenome for the
// startup values.
type Genome = primitives.Genome

// CellID identifies a cell for the lifetime of a run.
type CellID = primitives.CellID

// DefaultGenome returns the startup configuration: zero angles, all
// adhesion flags on, unit grid spacing.
func DefaultGenome() Genome { return primitives.DefaultGenome() }

// ErrUnknownCell is returned by SetCellPosition for an id that is not a
// currently active cell.
var ErrUnknownCell = errors.New("unknown or inactive cell id")

// ErrNegativeGeneration is returned by StepTo for a negative target.
var ErrNegativeGeneration = core.ErrNegativeGeneration

// CellView is one active cell as seen by a renderer. Positions reflect any
// cosmetic override applied via SetCellPosition.
type CellView struct {
	ID          CellID
	ParentID    CellID
	ChildNumber int
	X, Y        float64
	Orientation float64
	Generation  int
	Lineage     string
}

// BondView is one adhesion bond: the endpoint id pair and whether the bond
// was inherited across a division (false only for sibling bonds).
type BondView struct {
	A, B      CellID
	Inherited bool
}

// Engine wraps a simulation behind the read-only snapshot and command
// surface. Not safe for concurrent use; callers serialize access.
type Engine struct {
	sim *core.Simulation

	// Cosmetic position overrides from manual repositioning. Applied only
	// when building views; lattice occupancy, bond geometry, and future
	// divisions never see them.
	overrides map[CellID][2]float64
}

// New returns an engine with the default genome, reset to generation 0.
func New() *Engine {
	return &Engine{
		sim:       core.NewSimulation(primitives.DefaultGenome()),
		overrides: make(map[CellID][2]float64),
	}
}

// Reset discards all state and reseeds the generation-0 cell at the
// lattice origin with id 1 and lineage triple 0.1.0.
func (e *Engine) Reset() {
	e.sim.Reset()
	e.overrides = make(map[CellID][2]float64)
}

// Configure validates and replaces the genome. All derived state is
// invalidated; the engine drops back to generation 0 but does not itself
// resimulate — the caller re-runs StepTo. A validation failure leaves the
// previous configuration in place and returns a *primitives.ValidationError.
func (e *Engine) Configure(g Genome) error {
	if err := g.Validate(); err != nil {
		return err
	}
	e.sim.SetGenome(g.Normalized())
	e.overrides = make(map[CellID][2]float64)
	return nil
}

// StepTo recomputes the full state for the target generation from the
// generation-0 seed. Negative targets are rejected, never clamped.
func (e *Engine) StepTo(generation int) error {
	if err := e.sim.StepTo(generation); err != nil {
		return err
	}
	e.overrides = make(map[CellID][2]float64)
	return nil
}

// Generation returns the generation the engine currently represents.
func (e *Engine) Generation() int {
	return e.sim.Generation()
}

// ActiveCells returns an immutable ordered snapshot of the active cells,
// safe to iterate while the caller renders.
func (e *Engine) ActiveCells() []CellView {
	cells := e.sim.ActiveCells()
	out := make([]CellView, 0, len(cells))
	for _, c := range cells {
		v := CellView{
			ID:          c.ID,
			ParentID:    c.ParentID,
			ChildNumber: c.ChildNumber,
			X:           c.X,
			Y:           c.Y,
			Orientation: c.Orientation,
			Generation:  c.Generation,
			Lineage:     c.Lineage(),
		}
		if pos, ok := e.overrides[c.ID]; ok {
			v.X, v.Y = pos[0], pos[1]
		}
		out = append(out, v)
	}
	return out
}

// Bonds returns an immutable ordered snapshot of the adhesion ledger.
// Deferred inheritance metadata stays internal.
func (e *Engine) Bonds() []BondView {
	bonds := e.sim.Bonds()
	out := make([]BondView, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, BondView{A: b.A, B: b.B, Inherited: b.Inherited})
	}
	return out
}

// SetCellPosition records a cosmetic position override for an active cell,
// as driven by manual repositioning in an interactive layer. Overrides
// affect exported views only and are discarded whenever derived state is
// rebuilt (Reset, Configure, StepTo).
func (e *Engine) SetCellPosition(id CellID, x, y float64) error {
	c, ok := e.sim.Cell(id)
	if !ok || c.Divided() {
		return ErrUnknownCell
	}
	e.overrides[id] = [2]float64{x, y}
	return nil
}
