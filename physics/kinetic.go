package physics

import (
	"termpong/core"
	"termpong/vmath"
)

// Integrate performs kinematic integration: p = p + v*dt
// dt is Q32.32 seconds. Returns the resulting cell coordinates
func Integrate(k *core.Kinetic, dt int64) (x, y int) {
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// IntegrateScaled integrates with a velocity multiplier (Q32.32, Scale = 1x)
// The stored velocity is untouched; only displacement is scaled
func IntegrateScaled(k *core.Kinetic, dt, factor int64) (x, y int) {
	k.PreciseX += vmath.Mul(vmath.Mul(k.VelX, factor), dt)
	k.PreciseY += vmath.Mul(vmath.Mul(k.VelY, factor), dt)
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// SetImpulse overrides velocity (hard redirect)
func SetImpulse(k *core.Kinetic, vx, vy int64) {
	k.VelX = vx
	k.VelY = vy
}

// ReflectBoundsY handles horizontal wall collision, returns true if reflection occurred
// Clamps to centered position within valid cell range [minY, maxY)
func ReflectBoundsY(k *core.Kinetic, minY, maxY int) bool {
	y := vmath.ToInt(k.PreciseY)
	if y < minY {
		k.PreciseY = vmath.FromInt(minY) + vmath.CellCenter
		k.VelX, k.VelY = vmath.ReflectAxisY(k.VelX, k.VelY)
		return true
	}
	if y >= maxY {
		k.PreciseY = vmath.FromInt(maxY-1) + vmath.CellCenter
		k.VelX, k.VelY = vmath.ReflectAxisY(k.VelX, k.VelY)
		return true
	}
	return false
}

// PlaceAt centers the kinetic state on a cell and keeps velocity
func PlaceAt(k *core.Kinetic, x, y int) {
	k.PreciseX = vmath.FromInt(x) + vmath.CellCenter
	k.PreciseY = vmath.FromInt(y) + vmath.CellCenter
}
