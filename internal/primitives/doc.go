// Package primitives provides the foundational, zero-dependency data
// structures for the tissue growth engine.
//
// This package and the core tier use ONLY the Go standard library.
// External dependencies are confined to internal/production.
//
// Core invariants:
// - Cell ids are globally unique and monotonic, never reused
// - A divided cell keeps its record forever (lineage-tree node)
// - A Bond is a fixed-shape record; the variable-arity encodings of the
//   original tool collapse into the SourceChild field (0 = untagged)
package primitives
