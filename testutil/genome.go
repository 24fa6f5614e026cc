// Package testutil provides genome fixtures shared by the test suites so
// the same configurations exercise the core tier and the public facade.
package testutil

import "github.com/comalice/tissuex/internal/primitives"

// AxialGenome is the startup configuration: zero angles, all adhesion
// flags on, unit spacing. Every division splits east and the tissue grows
// as a single row.
func AxialGenome() primitives.Genome {
	return primitives.DefaultGenome()
}

// PinwheelGenome rotates each child a quarter turn in opposite directions,
// so successive generations alternate split axes and the tissue grows in
// two dimensions.
func PinwheelGenome() primitives.Genome {
	g := primitives.DefaultGenome()
	g.Child1Angle = 90
	g.Child2Angle = 270
	return g
}

// SilentGenome disables every adhesion flag; runs produce an empty bond
// ledger regardless of geometry.
func SilentGenome() primitives.Genome {
	g := primitives.DefaultGenome()
	g.MakeAdhesion = false
	g.KeepAdhesionChild1 = false
	g.KeepAdhesionChild2 = false
	return g
}
