package render

import "github.com/gdamore/tcell/v2"

// Background color (Tokyo Night)
var RgbBackground = tcell.NewRGBColor(26, 27, 38)

// Gameplay colors
var (
	RgbBall        = tcell.NewRGBColor(255, 215, 0)
	RgbPaddleLeft  = tcell.NewRGBColor(125, 207, 255)
	RgbPaddleRight = tcell.NewRGBColor(158, 206, 106)
	RgbCenterLine  = tcell.NewRGBColor(65, 72, 104)
	RgbBorder      = tcell.NewRGBColor(65, 72, 104)
)

// UI colors
var (
	RgbScoreText    = tcell.NewRGBColor(192, 202, 245)
	RgbStatusText   = tcell.NewRGBColor(169, 177, 214)
	RgbModeManualBg = tcell.NewRGBColor(247, 118, 142)
	RgbModeAutoBg   = tcell.NewRGBColor(65, 72, 104)
	RgbAudioMuted   = tcell.NewRGBColor(247, 118, 142)
	RgbAudioUnmuted = tcell.NewRGBColor(158, 206, 106)
	RgbPausedBg     = tcell.NewRGBColor(224, 175, 104)
	RgbPausedText   = tcell.NewRGBColor(26, 27, 38)
)
