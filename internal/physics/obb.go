package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	// Rotation order X, then Y, then Z
	rotX := rl.MatrixRotateX(rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: rot.M0, Y: rot.M1, Z: rot.M2}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M4, Y: rot.M5, Z: rot.M6}),
			rl.Vector3Normalize(rl.Vector3{X: rot.M8, Y: rot.M9, Z: rot.M10}),
		},
	}
}

// NewAABBasOBB creates an axis-aligned OBB (no rotation)
func NewAABBasOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Axes: [3]rl.Vector3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
	}
}

// WorldToLocal returns the rigid transform taking world points into the box
// frame, where the box spans [-HalfSize, HalfSize]
func (o OBB) WorldToLocal() rl.Matrix {
	a0, a1, a2 := o.Axes[0], o.Axes[1], o.Axes[2]
	return rl.Matrix{
		M0: a0.X, M4: a0.Y, M8: a0.Z, M12: -rl.Vector3DotProduct(a0, o.Center),
		M1: a1.X, M5: a1.Y, M9: a1.Z, M13: -rl.Vector3DotProduct(a1, o.Center),
		M2: a2.X, M6: a2.Y, M10: a2.Z, M14: -rl.Vector3DotProduct(a2, o.Center),
		M15: 1,
	}
}

// local returns p's coordinates along the box axes, relative to the center
func (o OBB) local(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

func (o OBB) localBox() AABB {
	return AABB{Min: rl.Vector3Negate(o.HalfSize), Max: o.HalfSize}
}

func (o OBB) ContainsPoint(p rl.Vector3) bool {
	return o.localBox().ContainsPoint(o.local(p))
}

// ClosestPoint returns the closest point in the OBB to the given point
func (o OBB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	l := o.localBox().ClosestPoint(o.local(p))

	// Transform back to world space
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], l.X))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], l.Y))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], l.Z))
	return result
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(s Sphere) bool {
	return distanceSq(o.ClosestPoint(s.Center), s.Center) <= s.Radius*s.Radius
}

// DistanceToOBB moves the ray into the box frame and runs the slab test there.
// The frame change is rigid, so t is the same in both frames.
func (r Ray) DistanceToOBB(o OBB) (float32, bool) {
	local := r
	local.ApplyMatrix(o.WorldToLocal())
	return local.DistanceToBox(o.localBox())
}

func (r Ray) IntersectOBB(o OBB) (rl.Vector3, bool) {
	t, ok := r.DistanceToOBB(o)
	if !ok {
		return rl.Vector3{}, false
	}
	return r.At(t), true
}

func (r Ray) IntersectsOBB(o OBB) bool {
	_, ok := r.DistanceToOBB(o)
	return ok
}

// faceNormal picks the box face nearest to world point p and returns its
// outward normal
func (o OBB) faceNormal(p rl.Vector3) rl.Vector3 {
	l := o.local(p)
	best := 0
	bestGap := math32.Inf(1)
	for i := 0; i < 3; i++ {
		gap := math32.Abs(math32.Abs(axis(l, i)) - axis(o.HalfSize, i))
		if gap < bestGap {
			bestGap = gap
			best = i
		}
	}
	if axis(l, best) < 0 {
		return rl.Vector3Negate(o.Axes[best])
	}
	return o.Axes[best]
}
