// Package topology computes element-to-element face adjacency for a
// sequence of tetrahedra, in near-linear time.
//
// The obvious approach — compare every face against every other face —
// costs O(T²) and is hopeless at transport-mesh sizes. Instead the
// package builds a CSR-style "elements incident to node" index in two
// linear passes, then resolves each face by a bounded local search over
// the handful of elements touching one of its nodes:
//
//	tets ──► Incidence (node → incident elements) ──► NeighbourTable
//
// Contract with the element sequence:
//
//   - node tags are ≥ 1 and contiguous from 1 to M = max node tag
//     (the index is a dense array addressed by tag − 1);
//   - each matched face is assigned mutually, so every interior face is
//     visited exactly once in each direction;
//   - a third element claiming an already-matched face is a
//     non-manifold input and is rejected, never silently dropped.
//
// Complexity: O(T + Σ incidences) = O(T) for well-shaped meshes where
// node valence is bounded.
//
// Errors:
//
//	ErrBadNodeTag  - a node tag below 1 was encountered.
//	ErrNonManifold - more than two elements share one face.
package topology
