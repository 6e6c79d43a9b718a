package msh_test

import (
	"fmt"
	"strings"
	"testing"
)

// validMesh is the smallest conforming fixture: five nodes, two
// tetrahedra glued over the face {2,3,4}, one volume entity, one
// physical group "Water".
const validMesh = `$MeshFormat
4.1 0 8
$EndMeshFormat
$PhysicalNames
1
3 1 "Water"
$EndPhysicalNames
$Entities
0 0 0 1
1 0 0 0 1 1 1 1 1
$EndEntities
$Nodes
1 5 1 5
3 1 0 5
1
2
3
4
5
0 0 0
1 0 0
0 1 0
0 0 1
1 1 1
$EndNodes
$Elements
1 2 1 2
3 1 4 2
1 1 2 3 4
2 2 3 4 5
$EndElements
`

// corrupt replaces old with repl in the valid fixture, failing the test
// when old does not occur (a guard against fixture drift).
func corrupt(t *testing.T, old, repl string) string {
	t.Helper()

	if !strings.Contains(validMesh, old) {
		t.Fatalf("fixture does not contain %q", old)
	}

	return strings.Replace(validMesh, old, repl, 1)
}

// boxMeshText renders an n×n×n subdivided box as 4.1 ASCII: (n+1)³
// nodes in one block, 6·n³ tetrahedra in one block, one volume, one
// physical group. The six-tet split around the main diagonal makes
// adjacent cubes conforming.
func boxMeshText(n int) string {
	idx := func(x, y, z int) int {
		return 1 + x + y*(n+1) + z*(n+1)*(n+1)
	}
	numNodes := (n + 1) * (n + 1) * (n + 1)
	numTets := 6 * n * n * n

	var b strings.Builder
	b.WriteString("$MeshFormat\n4.1 0 8\n$EndMeshFormat\n")
	b.WriteString("$PhysicalNames\n1\n3 1 \"Water\"\n$EndPhysicalNames\n")
	fmt.Fprintf(&b, "$Entities\n0 0 0 1\n1 0 0 0 %d %d %d 1 1\n$EndEntities\n", n, n, n)

	fmt.Fprintf(&b, "$Nodes\n1 %d 1 %d\n3 1 0 %d\n", numNodes, numNodes, numNodes)
	for tag := 1; tag <= numNodes; tag++ {
		fmt.Fprintf(&b, "%d\n", tag)
	}
	for z := 0; z <= n; z++ {
		for y := 0; y <= n; y++ {
			for x := 0; x <= n; x++ {
				fmt.Fprintf(&b, "%d %d %d\n", x, y, z)
			}
		}
	}
	b.WriteString("$EndNodes\n")

	fmt.Fprintf(&b, "$Elements\n1 %d 1 %d\n3 1 4 %d\n", numTets, numTets, numTets)
	paths := [6][2][3]int{
		{{1, 0, 0}, {1, 1, 0}},
		{{1, 0, 0}, {1, 0, 1}},
		{{0, 1, 0}, {1, 1, 0}},
		{{0, 1, 0}, {0, 1, 1}},
		{{0, 0, 1}, {1, 0, 1}},
		{{0, 0, 1}, {0, 1, 1}},
	}
	tag := 1
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				for _, p := range paths {
					fmt.Fprintf(&b, "%d %d %d %d %d\n",
						tag,
						idx(x, y, z),
						idx(x+p[0][0], y+p[0][1], z+p[0][2]),
						idx(x+p[1][0], y+p[1][1], z+p[1][2]),
						idx(x+1, y+1, z+1))
					tag++
				}
			}
		}
	}
	b.WriteString("$EndElements\n")

	return b.String()
}
