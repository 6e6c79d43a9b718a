package msh_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tetmesh/core"
	"github.com/katalvlaran/tetmesh/msh"
)

// ExampleParse loads a minimal two-tetrahedron mesh and walks the
// neighbour topology the way a tracking loop would.
func ExampleParse() {
	m, err := msh.Parse(strings.NewReader(`$MeshFormat
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
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d nodes, %d elements\n", m.NumNodes(), m.NumElements())
	for _, medium := range m.Media() {
		fmt.Printf("medium %d: %s\n", medium.Tag, medium.Name)
	}
	for f := 0; f < 4; f++ {
		if j := m.Neighbour(0, f); j != core.None {
			fmt.Printf("element 0 crosses face %d into element %d\n", f, j)
		}
	}
	// Output:
	// 5 nodes, 2 elements
	// medium 1: Water
	// element 0 crosses face 0 into element 1
}
