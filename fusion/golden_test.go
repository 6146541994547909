package fusion_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/katalvlaran/su3/fusion"
	"github.com/katalvlaran/su3/irrep"
)

// TestFuse_GoldenSmallProducts renders the decompositions of a fixed set
// of physically familiar products and compares them against the golden
// file. The canonical term ordering makes this byte-stable across runs.
//
// To regenerate, run:
//
//	go test ./fusion -run GoldenSmallProducts -update
func TestFuse_GoldenSmallProducts(t *testing.T) {
	pairs := [][2]irrep.Irrep{
		{irrep.MustNew(1, 0), irrep.MustNew(1, 0)}, // 3 ⊗ 3
		{irrep.MustNew(1, 0), irrep.MustNew(1, 1)}, // 3 ⊗ 3bar
		{irrep.MustNew(1, 0), irrep.MustNew(2, 1)}, // 3 ⊗ 8
		{irrep.MustNew(2, 0), irrep.MustNew(1, 0)}, // 6 ⊗ 3
		{irrep.MustNew(2, 0), irrep.MustNew(2, 0)}, // 6 ⊗ 6
		{irrep.MustNew(2, 1), irrep.MustNew(2, 1)}, // 8 ⊗ 8
	}

	var sb strings.Builder
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		d := fusion.Fuse(a, b)
		fmt.Fprintf(&sb, "%s ⊗ %s = %s  [dim %d]\n", a, b, d, d.Dim())
	}

	g := goldie.New(t)
	g.Assert(t, "small_products", []byte(sb.String()))
}
