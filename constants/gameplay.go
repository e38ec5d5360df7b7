package constants

// Play Field Geometry
const (
	// PaddleHeightDivisor derives paddle half-height from field height:
	// halfHeight = max(1, fieldHeight / PaddleHeightDivisor)
	// A 24-row field gives a 5-cell paddle, proportional to the classic 1/6 bar
	PaddleHeightDivisor = 12

	// MinFieldWidth and MinFieldHeight are the smallest playable dimensions
	MinFieldWidth  = 20
	MinFieldHeight = 10
)

// Ball Kinematics (fractions of field dimension per second)
const (
	// BallSpeedXFraction is horizontal serve speed as field widths per second
	BallSpeedXFraction = 0.22

	// BallSpeedYFraction is vertical serve speed as field heights per second
	BallSpeedYFraction = 0.30
)

// Paddle Movement
const (
	// PaddleStep is the cell distance of one manual movement step
	// Terminal key auto-repeat turns held keys into a stream of steps
	PaddleStep = 1

	// AutoPaddleSpeedFraction is auto-mode tracking speed as field heights per second
	AutoPaddleSpeedFraction = 0.6
)

// Speed Ramp
const (
	// SpeedRampScoreCap caps the total score contribution to the speed factor
	SpeedRampScoreCap = 20

	// SpeedRampScoreDivisor: each point adds 1/5x up to the cap
	SpeedRampScoreDivisor = 5

	// SpeedRampRallyDivisor: each consecutive catch adds 1/3x
	SpeedRampRallyDivisor = 3
)
