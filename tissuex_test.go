package tissuex_test

import (
	"errors"
	"reflect"
	"testing"

	. "github.com/comalice/tissuex"
	"github.com/comalice/tissuex/internal/primitives"
)

func TestStepToWorkedExample(t *testing.T) {
	// split_angle=0, child angles 0, spacing 1: the seed divides east.
	e := New()
	if err := e.StepTo(1); err != nil {
		t.Fatal(err)
	}

	cells := e.ActiveCells()
	if len(cells) != 2 {
		t.Fatalf("active cells = %d, want 2", len(cells))
	}
	c1, c2 := cells[0], cells[1]
	if c1.Lineage != "1.2.1" || c1.X != 0 || c1.Y != 0 {
		t.Errorf("child1 = %s at (%v, %v), want 1.2.1 at (0, 0)", c1.Lineage, c1.X, c1.Y)
	}
	if c2.Lineage != "1.3.2" || c2.X != 1 || c2.Y != 0 {
		t.Errorf("child2 = %s at (%v, %v), want 1.3.2 at (1, 0)", c2.Lineage, c2.X, c2.Y)
	}
}

func TestPopulationGrowth(t *testing.T) {
	e := New()
	for n := 0; n <= 5; n++ {
		if err := e.StepTo(n); err != nil {
			t.Fatalf("StepTo(%d): %v", n, err)
		}
		if got := len(e.ActiveCells()); got != 1<<n {
			t.Errorf("generation %d: %d active cells, want %d", n, got, 1<<n)
		}
	}
}

func TestStepToNegative(t *testing.T) {
	e := New()
	err := e.StepTo(-3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrNegativeGeneration) {
		t.Errorf("error = %v, want ErrNegativeGeneration", err)
	}
	if e.Generation() != 0 {
		t.Error("failed StepTo changed the generation")
	}
}

func TestNoDanglingBonds(t *testing.T) {
	g := DefaultGenome()
	e := New()
	if err := e.Configure(g); err != nil {
		t.Fatal(err)
	}
	if err := e.StepTo(2); err != nil {
		t.Fatal(err)
	}

	active := make(map[CellID]bool)
	for _, c := range e.ActiveCells() {
		active[c.ID] = true
	}
	for _, b := range e.Bonds() {
		if !active[b.A] || !active[b.B] {
			t.Errorf("bond %d-%d references a divided cell", b.A, b.B)
		}
	}
}

func TestSiblingManhattanDistance(t *testing.T) {
	e := New()
	if err := e.StepTo(1); err != nil {
		t.Fatal(err)
	}
	cells := e.ActiveCells()
	dx := cells[0].X - cells[1].X
	dy := cells[0].Y - cells[1].Y
	if abs(dx)+abs(dy) != 1 {
		t.Errorf("siblings at Manhattan distance %v, want 1", abs(dx)+abs(dy))
	}
}

func TestConfigureValidation(t *testing.T) {
	e := New()
	bad := DefaultGenome()
	bad.GridSpacing = 0

	err := e.Configure(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *primitives.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *primitives.ValidationError", err)
	}
	if verr.Field != "gridSpacing" {
		t.Errorf("field = %q, want gridSpacing", verr.Field)
	}

	// The previous configuration stays usable.
	if err := e.StepTo(2); err != nil {
		t.Fatal(err)
	}
	if len(e.ActiveCells()) != 4 {
		t.Error("engine unusable after rejected configuration")
	}
}

func TestConfigureDoesNotResimulate(t *testing.T) {
	e := New()
	if err := e.StepTo(3); err != nil {
		t.Fatal(err)
	}
	g := DefaultGenome()
	g.SplitAngle = 90
	if err := e.Configure(g); err != nil {
		t.Fatal(err)
	}
	if e.Generation() != 0 {
		t.Errorf("generation after Configure = %d, want 0 (caller resimulates)", e.Generation())
	}
	if len(e.ActiveCells()) != 1 {
		t.Error("Configure kept derived cells")
	}
}

func TestConfigureWrapsAngles(t *testing.T) {
	e := New()
	g := DefaultGenome()
	g.SplitAngle = -270 // same axis as 90
	if err := e.Configure(g); err != nil {
		t.Fatal(err)
	}
	if err := e.StepTo(1); err != nil {
		t.Fatal(err)
	}
	cells := e.ActiveCells()
	// Split axis north: child2 one step up.
	if cells[1].X != 0 || cells[1].Y != 1 {
		t.Errorf("child2 at (%v, %v), want (0, 1)", cells[1].X, cells[1].Y)
	}
}

func TestDeterministicReruns(t *testing.T) {
	g := DefaultGenome()
	g.SplitAngle = 45
	g.Child1Angle = 90
	g.Child2Angle = 180

	run := func() ([]CellView, []BondView) {
		e := New()
		e.Reset()
		if err := e.Configure(g); err != nil {
			t.Fatal(err)
		}
		if err := e.StepTo(4); err != nil {
			t.Fatal(err)
		}
		return e.ActiveCells(), e.Bonds()
	}

	cells1, bonds1 := run()
	cells2, bonds2 := run()
	if !reflect.DeepEqual(cells1, cells2) {
		t.Error("cell views differ between identical runs")
	}
	if !reflect.DeepEqual(bonds1, bonds2) {
		t.Error("bond views differ between identical runs")
	}
}

func TestSetCellPositionCosmeticOverride(t *testing.T) {
	e := New()
	if err := e.StepTo(1); err != nil {
		t.Fatal(err)
	}
	id := e.ActiveCells()[0].ID

	if err := e.SetCellPosition(id, 9.5, -3.25); err != nil {
		t.Fatal(err)
	}
	cells := e.ActiveCells()
	if cells[0].X != 9.5 || cells[0].Y != -3.25 {
		t.Errorf("override not visible: (%v, %v)", cells[0].X, cells[0].Y)
	}
	// Only the view moved; orientation, generation, lineage untouched.
	if cells[0].Orientation != 0 || cells[0].Generation != 1 || cells[0].Lineage != "1.2.1" {
		t.Errorf("override leaked beyond position: %+v", cells[0])
	}

	// A re-derivation discards the override.
	if err := e.StepTo(1); err != nil {
		t.Fatal(err)
	}
	cells = e.ActiveCells()
	if cells[0].X != 0 || cells[0].Y != 0 {
		t.Errorf("override survived StepTo: (%v, %v)", cells[0].X, cells[0].Y)
	}
}

func TestSetCellPositionDoesNotAffectSimulation(t *testing.T) {
	// Two runs, one with a dragged cell: identical downstream history.
	run := func(drag bool) ([]CellView, []BondView) {
		e := New()
		if err := e.StepTo(1); err != nil {
			t.Fatal(err)
		}
		if drag {
			if err := e.SetCellPosition(e.ActiveCells()[0].ID, 100, 100); err != nil {
				t.Fatal(err)
			}
		}
		if err := e.StepTo(3); err != nil {
			t.Fatal(err)
		}
		return e.ActiveCells(), e.Bonds()
	}

	cells1, bonds1 := run(false)
	cells2, bonds2 := run(true)
	if !reflect.DeepEqual(cells1, cells2) {
		t.Error("manual repositioning altered future divisions")
	}
	if !reflect.DeepEqual(bonds1, bonds2) {
		t.Error("manual repositioning altered the bond ledger")
	}
}

func TestSetCellPositionUnknownID(t *testing.T) {
	e := New()
	if err := e.StepTo(1); err != nil {
		t.Fatal(err)
	}

	if err := e.SetCellPosition(999, 0, 0); !errors.Is(err, ErrUnknownCell) {
		t.Errorf("unknown id error = %v, want ErrUnknownCell", err)
	}
	// The divided seed is addressable lineage but not repositionable.
	if err := e.SetCellPosition(1, 0, 0); !errors.Is(err, ErrUnknownCell) {
		t.Errorf("divided cell error = %v, want ErrUnknownCell", err)
	}
}

func TestBondsHideInternalMetadata(t *testing.T) {
	// The exported view carries only endpoints and the inherited flag;
	// deferred source-child tags never leave the engine.
	g := DefaultGenome()
	g.SplitAngle = 90
	e := New()
	if err := e.Configure(g); err != nil {
		t.Fatal(err)
	}
	if err := e.StepTo(2); err != nil {
		t.Fatal(err)
	}
	for _, b := range e.Bonds() {
		if b.A == 0 || b.B == 0 {
			t.Errorf("bond view with zero endpoint: %+v", b)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
