// Package young renders two-row Young tableaux as Unicode box-drawing
// text, plain or colored for terminals.
//
// 🚀 What does it draw?
//
//	The tableau behind an irrep label, one cell per box:
//
//	  (3,1) →  ┌─┬─┬─┐
//	           │ │ │ │
//	           ├─┼─┴─┘
//	           │ │
//	           └─┘
//
//	The singlet (0,0) has no boxes and renders as "∅".
//
// ✨ Key features:
//   - pure formatting over (Row1, Row2) — no algorithmic content
//   - deterministic output, safe for golden files and docs
//   - optional per-row terminal colors via termenv; degrades to plain
//     text automatically on terminals without color support
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/su3/irrep"
//	  "github.com/katalvlaran/su3/young"
//	)
//
//	fmt.Println(young.Render(irrep.MustNew(3, 1)))
//
//	opts := young.DefaultStyleOptions()
//	fmt.Println(young.RenderStyled(irrep.MustNew(3, 1), opts))
//
// See examples in example_test.go.
package young
