// Package fusion decomposes tensor products of SU(3) irreducible
// representations into direct sums with multiplicities, via a
// Littlewood–Richardson box-counting enumeration specialized to
// two-row Young tableaux.
//
// 🚀 What is fusion?
//
//	The tensor product of two irreps is reducible; fusion expresses it
//	as a direct sum of irreps, each with an integer multiplicity:
//	  3 ⊗ 3bar = 1 ⊕ 8
//	  8 ⊗ 8    = 1 ⊕ 8 ⊕ 8 ⊕ 10 ⊕ 10bar ⊕ 27
//	These decompositions drive quark-model state counting, anomaly
//	checks, and branching computations.
//
// ✨ Key features:
//   - exact integer multiplicities from the Littlewood–Richardson rule
//   - canonical output order: ascending (dimension, box count, Row2),
//     deterministic and diff-friendly (golden-file safe)
//   - dimension conservation by construction:
//     Fuse(a, b).Dim() == a.Dim() * b.Dim()
//   - total over valid irreps: Fuse never fails
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/su3/fusion"
//	  "github.com/katalvlaran/su3/irrep"
//	)
//
//	adj := irrep.MustNew(2, 1)
//	dec := fusion.Fuse(adj, adj)
//	fmt.Println(dec) // 1·(0,0) ⊕ 2·(2,1) ⊕ 1·(3,0) ⊕ 1·(3,3) ⊕ 1·(4,2)
//
// Performance:
//
//   - Time: O(r1² · r2) over the smaller operand's rows — tiny for any
//     physically interesting input
//   - Memory: proportional to the number of raw candidates
//
// See examples in example_test.go and golden fusion tables under testdata/.
package fusion
