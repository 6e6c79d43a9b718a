// Package core declares the mesh value types and sentinel errors.
//
// This file defines Node, Medium, Face, the None sentinel, and the
// package's sentinel errors. Tetrahedron and Mesh live in their own
// files.
package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction.
var (
	// ErrInvalidElement indicates a tetrahedron was given a negative or
	// duplicate node tag.
	ErrInvalidElement = errors.New("core: invalid element")

	// ErrInvalidMesh indicates a mesh-level invariant was violated:
	// non-contiguous node tags, an element referencing an unknown node
	// or medium, or an isolated element in the neighbour table.
	ErrInvalidMesh = errors.New("core: invalid mesh")
)

// None marks the absence of a neighbour across a face: the face lies
// on the mesh boundary.
const None = -1

// Node is a mesh vertex: a 1-based tag unique within its mesh, and a
// Cartesian coordinate. Immutable after construction.
type Node struct {
	// Tag is the unique, positive identifier of this node.
	Tag int

	// Coord is the node position.
	Coord r3.Vec
}

// Medium is a named material region (a physical group in the exchange
// format). One medium per volume entity; zero or more volumes per
// medium.
type Medium struct {
	// Tag is the unique physical-group tag.
	Tag int

	// Name is the non-empty display name, e.g. "Water".
	Name string
}

// Face is a canonical triple of node tags identifying one triangular
// boundary of a tetrahedron. Because element nodes are sorted, two
// elements share a face iff their Face values are equal.
type Face [3]int
