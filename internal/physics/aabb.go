package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned box between two corners
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func NewAABB(min, max rl.Vector3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// AABBFromBoundingBox converts a raylib bounding box
func AABBFromBoundingBox(b rl.BoundingBox) AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

// BoundingBox converts back to raylib's type, e.g. for rl.DrawBoundingBox
func (a AABB) BoundingBox() rl.BoundingBox {
	return rl.BoundingBox{Min: a.Min, Max: a.Max}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) ContainsPoint(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// ClosestPoint clamps p into the box
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, a.Min.X, a.Max.X),
		Y: clamp(p.Y, a.Min.Y, a.Max.Y),
		Z: clamp(p.Z, a.Min.Z, a.Max.Z),
	}
}

// ExpandByPoint grows the box to include p
func (a AABB) ExpandByPoint(p rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3{X: math32.Min(a.Min.X, p.X), Y: math32.Min(a.Min.Y, p.Y), Z: math32.Min(a.Min.Z, p.Z)},
		Max: rl.Vector3{X: math32.Max(a.Max.X, p.X), Y: math32.Max(a.Max.Y, p.Y), Z: math32.Max(a.Max.Z, p.Z)},
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	min := dx1
	result := rl.Vector3{X: dx1}

	if dx2 < min {
		min = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dy1 < min {
		min = dy1
		result = rl.Vector3{Y: dy1}
	}
	if dy2 < min {
		min = dy2
		result = rl.Vector3{Y: -dy2}
	}
	if dz1 < min {
		min = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < min {
		result = rl.Vector3{Z: -dz2}
	}

	return result
}

// DistanceToBox runs the slab test and returns the ray parameter of the hit.
// From outside the box that is the entry point, from inside the exit point.
func (r Ray) DistanceToBox(b AABB) (float32, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	for i := 0; i < 3; i++ {
		o := axis(r.Origin, i)
		d := axis(r.Direction, i)
		lo := axis(b.Min, i)
		hi := axis(b.Max, i)

		if d == 0 {
			// Parallel to this slab: either always inside it or never
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmax < tmin {
			return 0, false
		}
	}

	if tmin >= 0 {
		return tmin, true
	}
	if tmax < 0 {
		// Box is behind the ray
		return 0, false
	}
	if math32.IsInf(tmax, 1) {
		// Zero direction with the origin inside the box
		return 0, true
	}
	return tmax, true
}

// IntersectBox returns the entry point, or the exit point when the origin is inside
func (r Ray) IntersectBox(b AABB) (rl.Vector3, bool) {
	t, ok := r.DistanceToBox(b)
	if !ok {
		return rl.Vector3{}, false
	}
	return r.At(t), true
}

// IntersectBoxInto writes the hit point to out. On a miss out is left untouched.
func (r Ray) IntersectBoxInto(b AABB, out *rl.Vector3) bool {
	t, ok := r.DistanceToBox(b)
	if ok {
		*out = r.At(t)
	}
	return ok
}

func (r Ray) IntersectsBox(b AABB) bool {
	_, ok := r.DistanceToBox(b)
	return ok
}
