package core

// Side identifies one of the two players
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
