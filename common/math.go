package common

// Vec2 is a 2D point or offset in board-local coordinates.
type Vec2 struct {
	X float64
	Y float64
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec2 interpolates componentwise.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
