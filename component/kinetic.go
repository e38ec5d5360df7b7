package component

import (
	"termpong/core"
)

// KineticComponent attaches sub-cell position and velocity to an entity
type KineticComponent struct {
	core.Kinetic
}
