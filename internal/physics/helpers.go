package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PosInf has every coordinate at +Inf. Pre-seed the output of the *Into
// intersection routines with it to detect a miss after the call.
var PosInf = rl.Vector3{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}

// axis returns the X, Y or Z component of v for i = 0, 1, 2
func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func lengthSq(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(v, v)
}

func distanceSq(a, b rl.Vector3) float32 {
	return lengthSq(rl.Vector3Subtract(a, b))
}

// transformDirection applies the rotation/scale part of m to v, ignoring translation
func transformDirection(v rl.Vector3, m rl.Matrix) rl.Vector3 {
	return rl.Vector3{
		X: m.M0*v.X + m.M4*v.Y + m.M8*v.Z,
		Y: m.M1*v.X + m.M5*v.Y + m.M9*v.Z,
		Z: m.M2*v.X + m.M6*v.Y + m.M10*v.Z,
	}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
