// Genome is the global division program applied uniformly to every cell in
// a run. Angles are degrees; wrapping to [0,360) happens at load time so the
// engine never sees out-of-range values.

package primitives

import (
	"fmt"
	"math"
)

// Genome defines the complete division configuration.
type Genome struct {
	SplitAngle         float64 `json:"splitAngle" yaml:"splitAngle"`
	Child1Angle        float64 `json:"child1Angle" yaml:"child1Angle"`
	Child2Angle        float64 `json:"child2Angle" yaml:"child2Angle"`
	MakeAdhesion       bool    `json:"makeAdhesion" yaml:"makeAdhesion"`
	KeepAdhesionChild1 bool    `json:"keepAdhesionChild1" yaml:"keepAdhesionChild1"`
	KeepAdhesionChild2 bool    `json:"keepAdhesionChild2" yaml:"keepAdhesionChild2"`
	GridSpacing        float64 `json:"gridSpacing" yaml:"gridSpacing"`
}

// ValidationError reports a genome field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("genome field %s: %s", e.Field, e.Reason)
}

// DefaultGenome returns the startup configuration: zero angles, all
// adhesion flags on, unit grid spacing.
func DefaultGenome() Genome {
	return Genome{
		MakeAdhesion:       true,
		KeepAdhesionChild1: true,
		KeepAdhesionChild2: true,
		GridSpacing:        1.0,
	}
}

// Validate checks the genome for usable numeric values:
// - all angles finite (NaN/Inf rejected)
// - GridSpacing finite and strictly positive
// Returns a *ValidationError naming the offending field.
func (g *Genome) Validate() error {
	angles := []struct {
		name  string
		value float64
	}{
		{"splitAngle", g.SplitAngle},
		{"child1Angle", g.Child1Angle},
		{"child2Angle", g.Child2Angle},
	}
	for _, a := range angles {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return &ValidationError{Field: a.name, Reason: "must be a finite number"}
		}
	}
	if math.IsNaN(g.GridSpacing) || math.IsInf(g.GridSpacing, 0) {
		return &ValidationError{Field: "gridSpacing", Reason: "must be a finite number"}
	}
	if g.GridSpacing <= 0 {
		return &ValidationError{Field: "gridSpacing", Reason: "must be positive"}
	}
	return nil
}

// Normalized returns a copy with all angles wrapped into [0,360).
func (g Genome) Normalized() Genome {
	g.SplitAngle = WrapDegrees(g.SplitAngle)
	g.Child1Angle = WrapDegrees(g.Child1Angle)
	g.Child2Angle = WrapDegrees(g.Child2Angle)
	return g
}

// WrapDegrees wraps an angle in degrees into [0,360).
func WrapDegrees(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
