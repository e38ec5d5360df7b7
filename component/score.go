package component

import (
	"termpong/core"
)

// ScoreComponent holds one side's score counter
type ScoreComponent struct {
	Side   core.Side
	Points int64
}
