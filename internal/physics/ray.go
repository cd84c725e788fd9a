package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a half-line starting at Origin and travelling along Direction.
// Direction is not normalized implicitly: parametric distances returned by the
// query methods are in units of Direction's length.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// NewRay creates a ray from an origin and a direction
func NewRay(origin, direction rl.Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewDefaultRay returns a ray at the world origin looking down -Z
func NewDefaultRay() Ray {
	return Ray{Direction: rl.Vector3{X: 0, Y: 0, Z: -1}}
}

// Set replaces both origin and direction. No validation is done.
func (r *Ray) Set(origin, direction rl.Vector3) *Ray {
	r.Origin = origin
	r.Direction = direction
	return r
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// Recast moves the origin to At(t), keeping the direction
func (r *Ray) Recast(t float32) *Ray {
	r.Origin = r.At(t)
	return r
}

// LookAt points the ray at target with a unit direction.
// If target equals the origin the direction becomes the zero vector.
func (r *Ray) LookAt(target rl.Vector3) *Ray {
	r.Direction = rl.Vector3Normalize(rl.Vector3Subtract(target, r.Origin))
	return r
}

// ApplyMatrix transforms the origin as a point and the direction as a vector.
// The direction keeps whatever scale the matrix gives it.
func (r *Ray) ApplyMatrix(m rl.Matrix) *Ray {
	r.Origin = rl.Vector3Transform(r.Origin, m)
	r.Direction = transformDirection(r.Direction, m)
	return r
}

// Equals reports exact equality of origin and direction
func (r Ray) Equals(o Ray) bool {
	return r.Origin == o.Origin && r.Direction == o.Direction
}

// ClosestPointToPoint projects p onto the ray. Projections behind the origin
// return the origin.
func (r Ray) ClosestPointToPoint(p rl.Vector3) rl.Vector3 {
	dd := lengthSq(r.Direction)
	if dd == 0 {
		return r.Origin
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, r.Origin), r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.At(t / dd)
}

// DistanceSqToPoint returns the squared distance from p to the ray
func (r Ray) DistanceSqToPoint(p rl.Vector3) float32 {
	return distanceSq(r.ClosestPointToPoint(p), p)
}

// DistanceToPoint returns the distance from p to the ray
func (r Ray) DistanceToPoint(p rl.Vector3) float32 {
	return math32.Sqrt(r.DistanceSqToPoint(p))
}

// DistanceSqToSegment returns the squared distance between the ray and the
// segment [v0, v1], along with the closest point on each. The returned
// distance is always the squared distance between the two returned points.
func (r Ray) DistanceSqToSegment(v0, v1 rl.Vector3) (distSq float32, onRay, onSegment rl.Vector3) {
	d1 := r.Direction
	d2 := rl.Vector3Subtract(v1, v0)
	w := rl.Vector3Subtract(r.Origin, v0)

	a := lengthSq(d1)
	e := lengthSq(d2)
	f := rl.Vector3DotProduct(d2, w)

	var t, s float32
	switch {
	case a == 0 && e == 0:
		// Both degenerate to points
	case a == 0:
		// Ray is a point, clamp onto the segment
		s = clamp(f/e, 0, 1)
	case e == 0:
		// Segment is a point
		t = math32.Max(0, -rl.Vector3DotProduct(d1, w)/a)
	default:
		c := rl.Vector3DotProduct(d1, w)
		b := rl.Vector3DotProduct(d1, d2)
		denom := a*e - b*b

		// Parallel lines: any t is a line-line minimum, start from the origin
		if denom != 0 {
			t = math32.Max(0, (b*f-c*e)/denom)
		}

		s = (b*t + f) / e
		if s < 0 {
			s = 0
			t = math32.Max(0, -c/a)
		} else if s > 1 {
			s = 1
			t = math32.Max(0, (b-c)/a)
		}
	}

	onRay = r.At(t)
	onSegment = rl.Vector3Add(v0, rl.Vector3Scale(d2, s))
	return distanceSq(onRay, onSegment), onRay, onSegment
}
