package vmath

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
// Use for left/right goal line collision
func ReflectAxisX(velX, velY int64) (int64, int64) {
	return -velX, velY
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
// Use for top/bottom wall collision
func ReflectAxisY(velX, velY int64) (int64, int64) {
	return velX, -velY
}

// ScaleVector multiplies vector by scalar factor
func ScaleVector(x, y, factor int64) (sx, sy int64) {
	return Mul(x, factor), Mul(y, factor)
}
