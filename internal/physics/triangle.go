package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle is a single face. Counter-clockwise winding (A, B, C) seen from
// the front gives the front-facing normal.
type Triangle struct {
	A, B, C rl.Vector3
	// BackfaceCulling makes rays arriving from behind the face miss it
	BackfaceCulling bool
}

func NewTriangle(a, b, c rl.Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Normal returns the unit front-face normal, zero for a degenerate triangle
func (tri Triangle) Normal() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(
		rl.Vector3Subtract(tri.B, tri.A),
		rl.Vector3Subtract(tri.C, tri.A),
	))
}

func (tri Triangle) Area() float32 {
	n := rl.Vector3CrossProduct(
		rl.Vector3Subtract(tri.B, tri.A),
		rl.Vector3Subtract(tri.C, tri.A),
	)
	return rl.Vector3Length(n) / 2
}

// DistanceToTriangle returns the ray parameter where it crosses triangle
// (a, b, c). With backfaceCulling set, rays travelling along the face normal
// miss. Parallel rays and zero-area triangles always miss.
func (r Ray) DistanceToTriangle(a, b, c rl.Vector3, backfaceCulling bool) (float32, bool) {
	edge1 := rl.Vector3Subtract(c, a)
	edge2 := rl.Vector3Subtract(b, a)
	normal := rl.Vector3CrossProduct(edge1, edge2)

	// Solve Q + t*D = b1*E1 + b2*E2 (Q = origin - a, D = direction) by
	// Cramer's rule on signed volumes:
	//   |Dot(D,N)|*b1 = sign(Dot(D,N))*Dot(D,Cross(Q,E2))
	//   |Dot(D,N)|*b2 = sign(Dot(D,N))*Dot(D,Cross(E1,Q))
	//   |Dot(D,N)|*t = -sign(Dot(D,N))*Dot(Q,N)
	DdN := rl.Vector3DotProduct(r.Direction, normal)
	var sign float32
	switch {
	case DdN > 0:
		sign = 1
	case DdN < 0:
		if backfaceCulling {
			return 0, false
		}
		sign = -1
		DdN = -DdN
	default:
		return 0, false
	}

	diff := rl.Vector3Subtract(r.Origin, a)
	DdQxE2 := sign * rl.Vector3DotProduct(r.Direction, rl.Vector3CrossProduct(diff, edge2))
	if DdQxE2 < 0 {
		return 0, false
	}
	DdE1xQ := sign * rl.Vector3DotProduct(r.Direction, rl.Vector3CrossProduct(edge1, diff))
	if DdE1xQ < 0 {
		return 0, false
	}
	if DdQxE2+DdE1xQ > DdN {
		return 0, false
	}

	QdN := -sign * rl.Vector3DotProduct(diff, normal)
	if QdN < 0 {
		// Crossing is behind the origin
		return 0, false
	}
	return QdN / DdN, true
}

// IntersectTriangle returns where the ray crosses triangle (a, b, c)
func (r Ray) IntersectTriangle(a, b, c rl.Vector3, backfaceCulling bool) (rl.Vector3, bool) {
	t, ok := r.DistanceToTriangle(a, b, c, backfaceCulling)
	if !ok {
		return rl.Vector3{}, false
	}
	return r.At(t), true
}

// IntersectTriangleInto writes the hit point to out. On a miss out is left untouched.
func (r Ray) IntersectTriangleInto(a, b, c rl.Vector3, backfaceCulling bool, out *rl.Vector3) bool {
	t, ok := r.DistanceToTriangle(a, b, c, backfaceCulling)
	if ok {
		*out = r.At(t)
	}
	return ok
}
