// Package core provides the fundamental mesh value types: Node,
// Tetrahedron, Medium, and the assembled Mesh.
//
// The Mesh M = (nodes, tetrahedra, media) is immutable after
// construction and owns its contents exclusively:
//
//   - Node        — tag + Cartesian coordinate (gonum spatial/r3)
//   - Tetrahedron — medium tag + four node tags, stored ascending
//   - Medium      — physical-group tag + display name
//   - Mesh        — the three sequences plus an optional face-neighbour
//     table of shape 4·|tets|
//
// Why sorted node tags?
//
//   - Face equality becomes ordered-triple equality — no permutation
//     handling anywhere downstream
//   - Faces(): dropping sorted position f yields a canonical triple,
//     so two elements share a face iff the derived triples are equal
//     component-wise
//
// Cross-references are indices and integer tags, never pointers: an
// element stores a medium tag, the neighbour table stores element
// indices, and None marks a boundary face. This keeps the whole mesh
// trivially copyable and comparable field-by-field.
//
// Errors:
//
//	ErrInvalidElement - negative or duplicate node tag in a tetrahedron.
//	ErrInvalidMesh    - mesh-level invariant violated at construction.
package core
