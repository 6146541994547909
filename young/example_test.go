package young_test

import (
	"fmt"

	"github.com/katalvlaran/su3/irrep"
	"github.com/katalvlaran/su3/young"
)

// ExampleRender draws the adjoint octet's tableau.
func ExampleRender() {
	fmt.Println(young.Render(irrep.MustNew(2, 1)))

	// Output:
	// ┌─┬─┐
	// │ │ │
	// ├─┼─┘
	// │ │
	// └─┘
}

// ExampleRender_singlet shows the empty tableau.
func ExampleRender_singlet() {
	fmt.Println(young.Render(irrep.MustNew(0, 0)))

	// Output:
	// ∅
}
