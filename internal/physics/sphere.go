package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sphere is a ball given by its center and radius
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// ContainsPoint reports whether p is inside or on the sphere
func (s Sphere) ContainsPoint(p rl.Vector3) bool {
	return distanceSq(p, s.Center) <= s.Radius*s.Radius
}

// DistanceToPoint returns the signed distance from the surface, negative inside
func (s Sphere) DistanceToPoint(p rl.Vector3) float32 {
	return math32.Sqrt(distanceSq(p, s.Center)) - s.Radius
}

// IntersectsAABB tests the sphere against a box using the closest box point
func (s Sphere) IntersectsAABB(b AABB) bool {
	return distanceSq(b.ClosestPoint(s.Center), s.Center) <= s.Radius*s.Radius
}

// DistanceToSphere returns the smallest t >= 0 where the ray meets the sphere.
// When the origin is inside the sphere that is the exit point.
func (r Ray) DistanceToSphere(s Sphere) (float32, bool) {
	oc := rl.Vector3Subtract(r.Origin, s.Center)
	a := lengthSq(r.Direction)
	if a == 0 {
		return 0, false
	}
	halfB := rl.Vector3DotProduct(oc, r.Direction)
	c := lengthSq(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sq := math32.Sqrt(discriminant)
	t0 := (-halfB - sq) / a
	t1 := (-halfB + sq) / a

	if t1 < 0 {
		// Sphere is entirely behind the ray
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectSphere returns the first point in front of the origin where the ray
// meets the sphere
func (r Ray) IntersectSphere(s Sphere) (rl.Vector3, bool) {
	t, ok := r.DistanceToSphere(s)
	if !ok {
		return rl.Vector3{}, false
	}
	return r.At(t), true
}

// IntersectSphereInto writes the hit point to out. On a miss out is left untouched.
func (r Ray) IntersectSphereInto(s Sphere, out *rl.Vector3) bool {
	t, ok := r.DistanceToSphere(s)
	if ok {
		*out = r.At(t)
	}
	return ok
}

// IntersectsSphere reports whether the ray passes within the sphere's radius.
// Cheaper than solving the quadratic.
func (r Ray) IntersectsSphere(s Sphere) bool {
	return r.DistanceSqToPoint(s.Center) <= s.Radius*s.Radius
}
