package component

// BallComponent holds ball gameplay state beyond its kinetics
type BallComponent struct {
	// Rally counts consecutive paddle catches since the last goal
	Rally int32

	// SpeedFactor is the current velocity multiplier (Q32.32, Scale = 1x)
	// Recomputed each tick from total score and rally length
	SpeedFactor int64
}
