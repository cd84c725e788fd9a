package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a shape Raycast can test: Sphere, AABB, OBB, Plane or Triangle.
type Collider interface {
	raycast(r Ray) (t float32, normal rl.Vector3, ok bool)
}

type RaycastHit struct {
	Index    int // position of the collider in the slice passed to Raycast
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks the ray against every collider and returns the closest hit
// no further than maxDistance. The direction is normalized first so Distance
// is in world units.
func Raycast(r Ray, colliders []Collider, maxDistance float32) (RaycastHit, bool) {
	if maxDistance <= 0 || lengthSq(r.Direction) == 0 {
		return RaycastHit{}, false
	}
	r.Direction = rl.Vector3Normalize(r.Direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for i, c := range colliders {
		t, normal, ok := c.raycast(r)
		if !ok || t > closestHit.Distance {
			continue
		}
		// Ties keep the earlier collider
		if hit && t == closestHit.Distance {
			continue
		}
		closestHit = RaycastHit{Index: i, Point: r.At(t), Normal: normal, Distance: t}
		hit = true
	}

	return closestHit, hit
}

func (s Sphere) raycast(r Ray) (float32, rl.Vector3, bool) {
	t, ok := r.DistanceToSphere(s)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	return t, rl.Vector3Normalize(rl.Vector3Subtract(r.At(t), s.Center)), true
}

func (a AABB) raycast(r Ray) (float32, rl.Vector3, bool) {
	t, ok := r.DistanceToBox(a)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	point := r.At(t)

	// Calculate normal based on which face was hit
	best := 0
	bestGap := math32.Inf(1)
	var sign float32
	for i := 0; i < 3; i++ {
		p := axis(point, i)
		if gap := math32.Abs(p - axis(a.Min, i)); gap < bestGap {
			best, bestGap, sign = i, gap, -1
		}
		if gap := math32.Abs(p - axis(a.Max, i)); gap < bestGap {
			best, bestGap, sign = i, gap, 1
		}
	}
	var normal rl.Vector3
	switch best {
	case 0:
		normal.X = sign
	case 1:
		normal.Y = sign
	default:
		normal.Z = sign
	}
	return t, normal, true
}

func (o OBB) raycast(r Ray) (float32, rl.Vector3, bool) {
	t, ok := r.DistanceToOBB(o)
	if !ok {
		return 0, rl.Vector3{}, false
	}
	return t, o.faceNormal(r.At(t)), true
}

func (p Plane) raycast(r Ray) (float32, rl.Vector3, bool) {
	t, ok := r.DistanceToPlane(p)
	return t, p.Normal, ok
}

func (tri Triangle) raycast(r Ray) (float32, rl.Vector3, bool) {
	t, ok := r.DistanceToTriangle(tri.A, tri.B, tri.C, tri.BackfaceCulling)
	return t, tri.Normal(), ok
}
