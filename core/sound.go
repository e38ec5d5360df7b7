package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle SoundType = iota // Ball caught by a paddle
	SoundWall                    // Ball bounced off top/bottom wall
	SoundGoal                    // Ball crossed a goal line
	SoundToggle                  // Paddle control mode toggled
	SoundTypeCount
)
