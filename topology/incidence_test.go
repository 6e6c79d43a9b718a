// Package topology_test verifies the CSR incidence index and the
// neighbour builder against small hand meshes, the O(T²) reference,
// and generated conforming meshes.
package topology_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/tetmesh/core"
	"github.com/katalvlaran/tetmesh/topology"
	"github.com/stretchr/testify/require"
)

func TestNewIncidence_TwoTets(t *testing.T) {
	t.Parallel()

	tets := []core.Tetrahedron{
		mustTet(t, 1, 1, 2, 3, 4),
		mustTet(t, 1, 2, 3, 4, 5),
	}
	ix, err := topology.NewIncidence(tets)
	require.NoError(t, err)
	require.Equal(t, 5, ix.MaxNode())

	sorted := func(n int) []int32 {
		out := append([]int32{}, ix.Elements(n)...)
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out
	}

	require.Equal(t, []int32{0}, sorted(1))
	require.Equal(t, []int32{0, 1}, sorted(2))
	require.Equal(t, []int32{0, 1}, sorted(3))
	require.Equal(t, []int32{0, 1}, sorted(4))
	require.Equal(t, []int32{1}, sorted(5))

	// Out-of-range lookups answer nil, not a panic.
	require.Nil(t, ix.Elements(0))
	require.Nil(t, ix.Elements(6))
}

func TestNewIncidence_CountsMatchValence(t *testing.T) {
	t.Parallel()

	tets := boxTets(t, 3)
	ix, err := topology.NewIncidence(tets)
	require.NoError(t, err)

	// Sum of row lengths is exactly 4·T, and every row entry names an
	// element that really contains the node.
	total := 0
	for n := 1; n <= ix.MaxNode(); n++ {
		row := ix.Elements(n)
		total += len(row)
		for _, e := range row {
			nodes := tets[e].Nodes()
			require.Contains(t, nodes[:], n, "element %d listed for node %d", e, n)
		}
	}
	require.Equal(t, 4*len(tets), total)
}

func TestNewIncidence_RejectsBadTag(t *testing.T) {
	t.Parallel()

	// Tag 0 passes element construction (non-negative) but the dense
	// index is addressed by tag − 1 and must refuse it.
	tet := mustTet(t, 1, 0, 2, 3, 4)
	_, err := topology.NewIncidence([]core.Tetrahedron{tet})
	require.ErrorIs(t, err, topology.ErrBadNodeTag)
	require.ErrorContains(t, err, "element 0")
}

func TestNewIncidence_Empty(t *testing.T) {
	t.Parallel()

	ix, err := topology.NewIncidence(nil)
	require.NoError(t, err)
	require.Equal(t, 0, ix.MaxNode())
	require.Nil(t, ix.Elements(1))
}
