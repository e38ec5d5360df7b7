package constants

// Glyphs
const (
	BallRune       = '●'
	PaddleRune     = '█'
	CenterLineRune = '┊'
	BorderHorRune  = '─'
)

// Status bar labels
const (
	AudioStr      = " ♪ "
	PausedStr     = " PAUSED "
	ModeManualStr = "MAN"
	ModeAutoStr   = "AUTO"
)

// Layout
const (
	// HeaderRows is the number of screen rows above the play field (score line)
	HeaderRows = 1

	// StatusRows is the number of screen rows below the play field (status bar)
	StatusRows = 1
)
