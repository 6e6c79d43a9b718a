package topology

import (
	"fmt"

	"github.com/katalvlaran/tetmesh/core"
)

// matcher carries the state of one neighbour-table construction.
type matcher struct {
	tets  []core.Tetrahedron
	index *Incidence
	table core.NeighbourTable
}

// Neighbours computes the dense face-neighbour table for tets: slot
// 4·e+f holds the element across face f of element e, or core.None
// when that face lies on the mesh boundary.
//
// For each unmatched face the builder scans only the elements incident
// to the face's first node (via Incidence) and assigns both directions
// on a match, so every interior face is resolved exactly once from
// each side. Returns ErrBadNodeTag for tags below 1 and ErrNonManifold
// when a third element claims an already-matched face.
//
// Complexity: O(Σ incidences) = O(T) for bounded node valence.
func Neighbours(tets []core.Tetrahedron) (core.NeighbourTable, error) {
	index, err := NewIncidence(tets)
	if err != nil {
		return nil, err
	}

	m := &matcher{
		tets:  tets,
		index: index,
		table: make(core.NeighbourTable, 4*len(tets)),
	}
	for i := range m.table {
		m.table[i] = core.None
	}

	for e := range tets {
		faces := tets[e].Faces()
		for f := 0; f < 4; f++ {
			if m.table[4*e+f] != core.None {
				continue // already matched from the other side
			}
			if err = m.match(e, f, faces[f]); err != nil {
				return nil, err
			}
		}
	}

	return m.table, nil
}

// match finds the element sharing face with element e and records the
// pairing in both directions. A face with no partner stays core.None.
func (m *matcher) match(e, f int, face core.Face) error {
	for _, j := range m.index.Elements(face[0]) {
		if int(j) == e {
			continue
		}
		fj, ok := faceSlot(m.tets[j], face)
		if !ok {
			continue
		}
		if m.table[4*int(j)+fj] != core.None {
			return fmt.Errorf("face %v of elements %d and %d already assigned to element %d: %w",
				face, e, j, m.table[4*int(j)+fj], ErrNonManifold)
		}
		m.table[4*e+f] = j
		m.table[4*int(j)+fj] = int32(e)

		return nil
	}

	return nil
}

// faceSlot reports which face slot of t equals face, comparing the
// canonical triples component-wise.
func faceSlot(t core.Tetrahedron, face core.Face) (int, bool) {
	for f, candidate := range t.Faces() {
		if candidate == face {
			return f, true
		}
	}

	return 0, false
}
