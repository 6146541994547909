// Package fusion: result types for tensor-product decompositions.
package fusion

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/su3/irrep"
)

// Term is one summand of a decomposition: an irrep together with the
// number of times it appears in the direct sum.
type Term struct {
	// Mult is the multiplicity, always ≥ 1 in aggregated output.
	Mult int `yaml:"mult" json:"mult"`
	// Irr is the irrep appearing Mult times.
	Irr irrep.Irrep `yaml:"irrep" json:"irrep"`
}

// Decomposition is an ordered direct sum of terms. Within one
// decomposition the irreps are distinct and sorted ascending by
// (dimension, box count, Row2) — a fixed deterministic order, so two
// decompositions with the same content compare equal term by term.
type Decomposition []Term

// Dim returns the total dimension Σ mult·dim(irrep) of the direct sum.
// For any dec := Fuse(a, b), dec.Dim() == a.Dim()*b.Dim().
func (d Decomposition) Dim() int {
	total := 0
	for _, t := range d {
		total += t.Mult * t.Irr.Dim()
	}

	return total
}

// String renders the direct sum as "1·(0,0) ⊕ 2·(2,1) ⊕ …".
func (d Decomposition) String() string {
	var sb strings.Builder
	for i, t := range d {
		if i > 0 {
			sb.WriteString(" ⊕ ")
		}
		fmt.Fprintf(&sb, "%d·%s", t.Mult, t.Irr)
	}

	return sb.String()
}
