package render

import "github.com/gdamore/tcell/v2"

// Cell is a single compositor cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}
