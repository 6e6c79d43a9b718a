package core

import "fmt"

// Tetrahedron is a four-node volume element. The four node tags are
// stored in ascending order; the input ordering is not preserved and is
// not needed for adjacency, since faces are unordered triples of tags.
// Immutable after construction.
type Tetrahedron struct {
	medium int
	nodes  [4]int
}

// NewTetrahedron builds a Tetrahedron with the given medium tag and
// four node tags, canonicalising the tags into ascending order.
// Returns ErrInvalidElement if any tag is negative or any two tags are
// equal.
//
// Complexity: O(1)
func NewTetrahedron(medium, a, b, c, d int) (Tetrahedron, error) {
	n := [4]int{a, b, c, d}
	// Sorting network for 4 values.
	if n[0] > n[1] {
		n[0], n[1] = n[1], n[0]
	}
	if n[2] > n[3] {
		n[2], n[3] = n[3], n[2]
	}
	if n[0] > n[2] {
		n[0], n[2] = n[2], n[0]
	}
	if n[1] > n[3] {
		n[1], n[3] = n[3], n[1]
	}
	if n[1] > n[2] {
		n[1], n[2] = n[2], n[1]
	}
	if n[0] < 0 {
		return Tetrahedron{}, fmt.Errorf("negative node tag %d: %w", n[0], ErrInvalidElement)
	}
	for i := 0; i < 3; i++ {
		if n[i] == n[i+1] {
			return Tetrahedron{}, fmt.Errorf("duplicate node tag %d: %w", n[i], ErrInvalidElement)
		}
	}

	return Tetrahedron{medium: medium, nodes: n}, nil
}

// MediumTag returns the tag of the medium this element belongs to.
func (t Tetrahedron) MediumTag() int { return t.medium }

// Nodes returns the four node tags in ascending order.
func (t Tetrahedron) Nodes() [4]int { return t.nodes }

// MaxNode returns the largest of the four node tags (the last after
// sorting). The adjacency builder uses it to size its index table.
func (t Tetrahedron) MaxNode() int { return t.nodes[3] }

// Faces returns the four faces of the element, produced by omitting
// each of the four sorted positions in turn (omit-0, omit-1, omit-2,
// omit-3). The order is deterministic so a face-slot index is
// meaningful when neighbour reciprocity is asserted.
//
// Complexity: O(1); faces live on the caller's stack.
func (t Tetrahedron) Faces() [4]Face {
	return [4]Face{
		{t.nodes[1], t.nodes[2], t.nodes[3]},
		{t.nodes[0], t.nodes[2], t.nodes[3]},
		{t.nodes[0], t.nodes[1], t.nodes[3]},
		{t.nodes[0], t.nodes[1], t.nodes[2]},
	}
}
