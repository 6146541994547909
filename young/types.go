// Package young: styling options for tableau rendering.
package young

// StyleOptions selects terminal colors for the two tableau rows.
// Colors are hex strings ("#rrggbb") or ANSI color numbers understood
// by termenv; they are downgraded to the running terminal's profile.
type StyleOptions struct {
	// Row1Color styles the first row of boxes.
	Row1Color string
	// Row2Color styles the second row of boxes.
	Row2Color string
}

// DefaultStyleOptions returns the indigo/violet pair used by the demo CLI.
func DefaultStyleOptions() StyleOptions {
	return StyleOptions{
		Row1Color: "#818cf8",
		Row2Color: "#c084fc",
	}
}
