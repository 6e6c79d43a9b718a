package topology_test

import (
	"testing"

	"github.com/katalvlaran/tetmesh/core"
)

// mustTet builds a Tetrahedron or fails the test.
func mustTet(t testing.TB, medium, a, b, c, d int) core.Tetrahedron {
	t.Helper()

	tet, err := core.NewTetrahedron(medium, a, b, c, d)
	if err != nil {
		t.Fatalf("NewTetrahedron(%d,%d,%d,%d): %v", a, b, c, d, err)
	}

	return tet
}

// boxTets subdivides an n×n×n grid of cubes into 6·n³ tetrahedra using
// the six-tet (Freudenthal) split around the main diagonal. Adjacent
// cubes share diagonals, so the result is a conforming mesh with
// contiguous node tags 1..(n+1)³.
func boxTets(t testing.TB, n int) []core.Tetrahedron {
	t.Helper()

	idx := func(x, y, z int) int {
		return 1 + x + y*(n+1) + z*(n+1)*(n+1)
	}

	// The six paths from corner 000 to corner 111 along cube edges.
	paths := [6][2][3]int{
		{{1, 0, 0}, {1, 1, 0}},
		{{1, 0, 0}, {1, 0, 1}},
		{{0, 1, 0}, {1, 1, 0}},
		{{0, 1, 0}, {0, 1, 1}},
		{{0, 0, 1}, {1, 0, 1}},
		{{0, 0, 1}, {0, 1, 1}},
	}

	tets := make([]core.Tetrahedron, 0, 6*n*n*n)
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				v000 := idx(x, y, z)
				v111 := idx(x+1, y+1, z+1)
				for _, p := range paths {
					a := idx(x+p[0][0], y+p[0][1], z+p[0][2])
					b := idx(x+p[1][0], y+p[1][1], z+p[1][2])
					tets = append(tets, mustTet(t, 1, v000, a, b, v111))
				}
			}
		}
	}

	return tets
}

// naiveNeighbours is the O(T²) reference: compare every face pair.
func naiveNeighbours(tets []core.Tetrahedron) core.NeighbourTable {
	table := make(core.NeighbourTable, 4*len(tets))
	for i := range table {
		table[i] = core.None
	}
	for e := 0; e < len(tets); e++ {
		for f, face := range tets[e].Faces() {
			if table[4*e+f] != core.None {
				continue
			}
			for j := e + 1; j < len(tets); j++ {
				for fj, candidate := range tets[j].Faces() {
					if candidate == face {
						table[4*e+f] = int32(j)
						table[4*j+fj] = int32(e)
					}
				}
			}
		}
	}

	return table
}
