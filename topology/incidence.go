package topology

import (
	"fmt"

	"github.com/katalvlaran/tetmesh/core"
)

// Incidence answers "which elements contain node n" in O(valence(n)).
//
// It is a CSR pair: the elements incident to node n occupy
// elems[offsets[n-1]:offsets[n]], in unspecified order. For T
// tetrahedra the pair holds exactly 4·T element entries.
type Incidence struct {
	offsets []int32
	elems   []int32
	maxNode int
}

// NewIncidence builds the index over tets in two linear scans: the
// first counts incidences per node, a prefix sum converts counts to
// offsets, the second writes element indices while advancing a cursor
// per node, and a final shift restores the canonical offsets.
//
// Node tags must be ≥ 1; a smaller tag returns ErrBadNodeTag naming
// the element. Tags are assumed contiguous up to the maximum — a gap
// only costs an empty CSR row.
//
// Complexity: O(T + M) time, O(T + M) memory, M = max node tag.
func NewIncidence(tets []core.Tetrahedron) (*Incidence, error) {
	maxNode := 0
	for e, t := range tets {
		if t.Nodes()[0] < 1 {
			return nil, fmt.Errorf("element %d: node tag %d: %w", e, t.Nodes()[0], ErrBadNodeTag)
		}
		if t.MaxNode() > maxNode {
			maxNode = t.MaxNode()
		}
	}

	// First pass: off[n] accumulates the incidence count of node n.
	off := make([]int32, maxNode+1)
	for _, t := range tets {
		for _, n := range t.Nodes() {
			off[n]++
		}
	}
	// Prefix sum: off[n] becomes the end of node n's slot range.
	for n := 1; n <= maxNode; n++ {
		off[n] += off[n-1]
	}

	// Second pass: off[n-1] doubles as the write cursor for node n.
	elems := make([]int32, 4*len(tets))
	for e, t := range tets {
		for _, n := range t.Nodes() {
			elems[off[n-1]] = int32(e)
			off[n-1]++
		}
	}
	// Each cursor has advanced to the end of its range, leaving the
	// offsets shifted one node to the left; shift back.
	for n := maxNode; n >= 1; n-- {
		off[n] = off[n-1]
	}
	off[0] = 0

	return &Incidence{offsets: off, elems: elems, maxNode: maxNode}, nil
}

// MaxNode returns the largest node tag seen, i.e. the number of CSR
// rows.
func (ix *Incidence) MaxNode() int { return ix.maxNode }

// Elements returns the indices of all elements containing node n, in
// unspecified order. The slice aliases the index; treat it as
// read-only. Returns nil for tags outside [1, MaxNode].
//
// Complexity: O(1) to locate, O(valence(n)) to consume.
func (ix *Incidence) Elements(n int) []int32 {
	if n < 1 || n > ix.maxNode {
		return nil
	}

	return ix.elems[ix.offsets[n-1]:ix.offsets[n]]
}
