package core_test

import (
	"fmt"

	"github.com/katalvlaran/tetmesh/core"
)

// ExampleTetrahedron_Faces shows the canonical face enumeration: node
// tags are sorted at construction, and face f drops sorted position f.
func ExampleTetrahedron_Faces() {
	tet, err := core.NewTetrahedron(1, 353, 130, 223, 142)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tet.Nodes())
	for f, face := range tet.Faces() {
		fmt.Println(f, face)
	}
	// Output:
	// [130 142 223 353]
	// 0 [142 223 353]
	// 1 [130 223 353]
	// 2 [130 142 353]
	// 3 [130 142 223]
}
