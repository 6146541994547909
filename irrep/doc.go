// Package irrep defines the Irrep value type labelling irreducible
// representations of SU(3) by two-row Young tableaux, together with
// the derived quantities every other package builds on.
//
// 🚀 What is an irrep label?
//
//	Every SU(3) irreducible representation is identified by a two-row
//	Young tableau (Row1, Row2) with Row1 ≥ Row2 ≥ 0:
//	  • (0,0) — the singlet (trivial representation)
//	  • (1,0) — the fundamental triplet ("quark")
//	  • (1,1) — the anti-triplet ("antiquark")
//	  • (2,1) — the adjoint octet ("gluon")
//
// ✨ Key guarantees:
//   - validation happens exactly once, in New; every method is total after
//   - Irrep is an immutable, comparable value — compare with ==
//   - Dim, Dual, HighestWeight, NBoxes are pure and allocation-free
//   - Dual is an involution: x.Dual().Dual() == x
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/su3/irrep"
//
//	quark, err := irrep.New(1, 0)
//	if err != nil {
//	  // handle ErrInvalidTableau
//	}
//	fmt.Println(quark.Dim())  // 3
//	fmt.Println(quark.Dual()) // (1,1)
//
// See examples in example_test.go and the fusion engine in
// github.com/katalvlaran/su3/fusion.
package irrep
