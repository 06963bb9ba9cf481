// SPDX-License-Identifier: MIT

package simplicial_test

import (
	"fmt"

	"github.com/katalvlaran/homology/simplicial"
)

// ExampleComplex_Betti computes the Betti numbers of a hollow square:
// one connected component and one independent loop.
func ExampleComplex_Betti() {
	c, err := simplicial.Build([][]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"},
	}, simplicial.WithClosure())
	if err != nil {
		fmt.Println(err)
		return
	}
	betti, err := c.Betti()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(betti)
	// Output: [1 1]
}

// ExampleComplex_Boundary prints the edge–vertex boundary map of a path.
func ExampleComplex_Boundary() {
	c, _ := simplicial.Build([][]string{{"u"}, {"v"}, {"w"}, {"u", "v"}, {"v", "w"}})
	d1, _ := c.Boundary(1)
	fmt.Print(d1)
	// Output:
	// [-1, 1, 0]
	// [0, -1, 1]
}
