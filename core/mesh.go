package core

import "fmt"

// NeighbourTable is a dense table of element indices, one slot per
// (element, face-index) pair. Slot 4·e+f holds the index of the element
// across face f of element e, or None when that face lies on the mesh
// boundary.
type NeighbourTable []int32

// At returns the element across face f of element e, or None.
//
// Complexity: O(1)
func (nt NeighbourTable) At(elem, face int) int {
	return int(nt[4*elem+face])
}

// NumElements returns the number of elements the table covers.
func (nt NeighbourTable) NumElements() int { return len(nt) / 4 }

// Mesh is the assembled tetrahedral volume mesh. It owns three ordered
// sequences — nodes, tetrahedra, media — plus, when built, a neighbour
// table of shape 4·|tets|. No entity is shared with other meshes, and
// nothing mutates after construction.
type Mesh struct {
	nodes      []Node
	tets       []Tetrahedron
	media      []Medium
	neighbours NeighbourTable
	mediumIdx  map[int]int
}

// NewMesh assembles a Mesh from its parts, validating the mesh-level
// invariants:
//
//   - node tags form a contiguous range [1, len(nodes)] with no
//     duplicates;
//   - every medium tag is unique and every medium name non-empty;
//   - every element's medium tag appears in media, and its four node
//     tags appear in the node list;
//   - neighbours is nil, or has exactly 4·len(tets) slots holding None
//     or a valid element index, with no element fully isolated when the
//     mesh has more than one element.
//
// Violations return ErrInvalidMesh with context. The slices are owned
// by the returned Mesh and must not be mutated by the caller.
//
// Complexity: O(|nodes| + |tets| + |media|)
func NewMesh(nodes []Node, tets []Tetrahedron, media []Medium, neighbours NeighbourTable) (*Mesh, error) {
	maxTag := len(nodes)
	seen := make([]bool, maxTag+1)
	for _, n := range nodes {
		if n.Tag < 1 || n.Tag > maxTag {
			return nil, fmt.Errorf("node tag %d outside contiguous range [1,%d]: %w", n.Tag, maxTag, ErrInvalidMesh)
		}
		if seen[n.Tag] {
			return nil, fmt.Errorf("duplicate node tag %d: %w", n.Tag, ErrInvalidMesh)
		}
		seen[n.Tag] = true
	}

	mediumIdx := make(map[int]int, len(media))
	for i, m := range media {
		if m.Name == "" {
			return nil, fmt.Errorf("medium %d has empty name: %w", m.Tag, ErrInvalidMesh)
		}
		if _, dup := mediumIdx[m.Tag]; dup {
			return nil, fmt.Errorf("duplicate medium tag %d: %w", m.Tag, ErrInvalidMesh)
		}
		mediumIdx[m.Tag] = i
	}

	for i, t := range tets {
		if _, ok := mediumIdx[t.medium]; !ok {
			return nil, fmt.Errorf("element %d references unknown medium %d: %w", i, t.medium, ErrInvalidMesh)
		}
		for _, n := range t.nodes {
			if n < 1 || n > maxTag {
				return nil, fmt.Errorf("element %d references unknown node %d: %w", i, n, ErrInvalidMesh)
			}
		}
	}

	if neighbours != nil {
		if len(neighbours) != 4*len(tets) {
			return nil, fmt.Errorf("neighbour table has %d slots, want %d: %w", len(neighbours), 4*len(tets), ErrInvalidMesh)
		}
		for e := 0; e < len(tets); e++ {
			isolated := true
			for f := 0; f < 4; f++ {
				j := neighbours.At(e, f)
				if j != None {
					isolated = false
					if j < 0 || j >= len(tets) {
						return nil, fmt.Errorf("neighbour slot (%d,%d) holds invalid index %d: %w", e, f, j, ErrInvalidMesh)
					}
				}
			}
			if isolated && len(tets) > 1 {
				return nil, fmt.Errorf("element %d is isolated (all faces on boundary): %w", e, ErrInvalidMesh)
			}
		}
	}

	return &Mesh{
		nodes:      nodes,
		tets:       tets,
		media:      media,
		neighbours: neighbours,
		mediumIdx:  mediumIdx,
	}, nil
}

// Nodes returns the node sequence, ordered as parsed.
// The returned slice is shared; treat it as read-only.
func (m *Mesh) Nodes() []Node { return m.nodes }

// Tetrahedra returns the element sequence. Element identity is the
// position in this slice. Treat it as read-only.
func (m *Mesh) Tetrahedra() []Tetrahedron { return m.tets }

// Media returns the media sequence as given to NewMesh, which neither
// filters nor sorts it; msh.Parse passes only the media referenced by at
// least one element, ordered by ascending tag. Treat it as read-only.
func (m *Mesh) Media() []Medium { return m.media }

// NumNodes returns the number of nodes.
func (m *Mesh) NumNodes() int { return len(m.nodes) }

// NumElements returns the number of tetrahedra.
func (m *Mesh) NumElements() int { return len(m.tets) }

// Medium resolves a medium tag to its record.
// The second result is false when the tag is unknown.
//
// Complexity: O(1)
func (m *Mesh) Medium(tag int) (Medium, bool) {
	i, ok := m.mediumIdx[tag]
	if !ok {
		return Medium{}, false
	}

	return m.media[i], true
}

// Neighbour returns the index of the element across face f of element
// e, or None when the face lies on the mesh boundary, the mesh was
// built without adjacency, or (e, f) is out of range.
//
// Complexity: O(1)
func (m *Mesh) Neighbour(elem, face int) int {
	if m.neighbours == nil || elem < 0 || elem >= len(m.tets) || face < 0 || face > 3 {
		return None
	}

	return m.neighbours.At(elem, face)
}

// Neighbours returns the dense neighbour table, or nil when the mesh
// was built without adjacency. Treat it as read-only.
func (m *Mesh) Neighbours() NeighbourTable { return m.neighbours }
