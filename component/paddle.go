package component

import (
	"termpong/core"
	"termpong/vmath"
)

// PaddleComponent holds the state of one paddle
type PaddleComponent struct {
	// Side is the goal line this paddle defends
	Side core.Side

	// Auto selects the control source: true tracks the ball, false obeys input
	Auto bool

	// Y is the paddle center row in Q32.32 sub-cell coordinates
	Y int64

	// HalfHeight is the number of cells covered above and below the center
	HalfHeight int
}

// CenterRow returns the paddle center as a cell row
func (p *PaddleComponent) CenterRow() int {
	return vmath.ToInt(p.Y)
}

// Covers reports whether the paddle body includes the given row
func (p *PaddleComponent) Covers(row int) bool {
	center := p.CenterRow()
	return row >= center-p.HalfHeight && row <= center+p.HalfHeight
}
