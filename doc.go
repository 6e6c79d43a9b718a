// Package tetmesh loads tetrahedral volume meshes for Monte-Carlo
// particle transport.
//
// 🚀 What is tetmesh?
//
//	A strict reader for the Gmsh 4.1 ASCII mesh exchange format plus a
//	near-linear face-adjacency builder, producing an immutable in-memory
//	mesh a transport engine can query during tracking:
//
//	  • core/     — Node, Tetrahedron, Medium and the assembled Mesh
//	  • topology/ — node→element incidence (CSR) and the neighbour table
//	  • msh/      — section-oriented parser for $MeshFormat 4.1 files
//
// ✨ Why choose tetmesh?
//
//   - Strict by default     — dangling references, duplicate tags and
//     non-tetrahedral volume elements are rejected, never papered over
//   - O(1) tracking queries — Mesh.Neighbour answers "which element is
//     across this face" from a dense precomputed table
//   - Near-linear build     — adjacency costs O(T) on well-shaped
//     meshes, not O(T²) pairwise face comparison
//   - Pure values           — the mesh owns its contents, holds no
//     pointers between records, and never mutates after construction
//
// Quick start:
//
//	m, err := msh.ParseFile("water.msh")
//	if err != nil {
//		return err
//	}
//	across := m.Neighbour(elem, face) // element across face, or core.None on the boundary
//
// See each subpackage's doc.go for the full contract.
package tetmesh
