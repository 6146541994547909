package young

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/su3/irrep"
)

// Singlet is the rendering of the empty tableau (0,0).
const Singlet = "∅"

// Render draws the tableau of ir as Unicode box-drawing text, one line
// per border or cell row, without a trailing newline. The singlet
// renders as the Singlet constant.
// Complexity: O(Row1) per line.
func Render(ir irrep.Irrep) string {
	return strings.Join(renderLines(ir), "\n")
}

// RenderStyled is Render with per-row terminal colors applied according
// to opts. The color profile is taken from the environment, so output on
// a dumb terminal is identical to Render.
func RenderStyled(ir irrep.Irrep, opts StyleOptions) string {
	lines := renderLines(ir)
	p := termenv.ColorProfile()

	// First row of boxes spans the top border and first cell line;
	// everything below belongs to the second row.
	styled := make([]string, len(lines))
	for i, line := range lines {
		color := opts.Row1Color
		if i >= 2 {
			color = opts.Row2Color
		}
		styled[i] = termenv.String(line).Foreground(p.Color(color)).String()
	}

	return strings.Join(styled, "\n")
}

// renderLines builds the individual text lines of the tableau.
func renderLines(ir irrep.Irrep) []string {
	if ir.Row1 == 0 {
		return []string{Singlet}
	}
	if ir.Row2 == 0 {
		return []string{
			border("┌", "┬", "┐", ir.Row1),
			cells(ir.Row1),
			border("└", "┴", "┘", ir.Row1),
		}
	}

	return []string{
		border("┌", "┬", "┐", ir.Row1),
		cells(ir.Row1),
		middleBorder(ir.Row1, ir.Row2),
		cells(ir.Row2),
		border("└", "┴", "┘", ir.Row2),
	}
}

// cells renders a row of n empty boxes: "│ │ … │".
func cells(n int) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i := 0; i < n; i++ {
		sb.WriteString(" │")
	}

	return sb.String()
}

// border renders a horizontal border with n cells: left + n segments
// joined by mid, closed by right.
func border(left, mid, right string, n int) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i := 1; i <= n; i++ {
		sb.WriteString("─")
		if i < n {
			sb.WriteString(mid)
		} else {
			sb.WriteString(right)
		}
	}

	return sb.String()
}

// middleBorder renders the border between the rows of a two-row tableau.
// Junctions depend on whether a box sits below the boundary: "┼" while
// the second row continues, "┴" under the overhang, "┤"/"┘" at the end.
func middleBorder(row1, row2 int) string {
	var sb strings.Builder
	sb.WriteString("├")
	for i := 1; i <= row1; i++ {
		sb.WriteString("─")
		switch {
		case i == row1 && i <= row2:
			sb.WriteString("┤")
		case i == row1:
			sb.WriteString("┘")
		case i <= row2:
			sb.WriteString("┼")
		default:
			sb.WriteString("┴")
		}
	}

	return sb.String()
}
