package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane represents a plane in 3D space (normal·p + constant = 0)
type Plane struct {
	Normal   rl.Vector3
	Constant float32
}

func NewPlane(normal rl.Vector3, constant float32) Plane {
	return Plane{Normal: normal, Constant: constant}
}

// NewPlaneFromNormalAndCoplanarPoint builds the plane with the given unit
// normal passing through point
func NewPlaneFromNormalAndCoplanarPoint(normal, point rl.Vector3) Plane {
	return Plane{Normal: normal, Constant: -rl.Vector3DotProduct(point, normal)}
}

// NewPlaneFromCoplanarPoints builds the plane through a, b, c. Counter-clockwise
// winding seen from the front gives the normal pointing at the viewer.
func NewPlaneFromCoplanarPoints(a, b, c rl.Vector3) Plane {
	normal := rl.Vector3Normalize(rl.Vector3CrossProduct(
		rl.Vector3Subtract(c, b),
		rl.Vector3Subtract(a, b),
	))
	return NewPlaneFromNormalAndCoplanarPoint(normal, a)
}

// Normalize rescales the plane equation so the normal has unit length
func (p Plane) Normalize() Plane {
	length := rl.Vector3Length(p.Normal)
	if length == 0 {
		return p
	}
	return Plane{
		Normal:   rl.Vector3Scale(p.Normal, 1.0/length),
		Constant: p.Constant / length,
	}
}

// DistanceToPoint returns the signed distance, positive on the normal's side
func (p Plane) DistanceToPoint(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, point) + p.Constant
}

// ProjectPoint returns the orthogonal projection of point onto the plane
func (p Plane) ProjectPoint(point rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(point, rl.Vector3Scale(p.Normal, p.DistanceToPoint(point)))
}

// DistanceToPlane returns the ray parameter where it meets the plane. A ray
// lying in the plane meets it at t = 0.
func (r Ray) DistanceToPlane(p Plane) (float32, bool) {
	denom := rl.Vector3DotProduct(p.Normal, r.Direction)
	if denom == 0 {
		if p.DistanceToPoint(r.Origin) == 0 {
			return 0, true
		}
		return 0, false
	}

	t := -(rl.Vector3DotProduct(r.Origin, p.Normal) + p.Constant) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane returns where the ray meets the plane
func (r Ray) IntersectPlane(p Plane) (rl.Vector3, bool) {
	t, ok := r.DistanceToPlane(p)
	if !ok {
		return rl.Vector3{}, false
	}
	return r.At(t), true
}

// IntersectPlaneInto writes the hit point to out. On a miss out is left untouched.
func (r Ray) IntersectPlaneInto(p Plane, out *rl.Vector3) bool {
	t, ok := r.DistanceToPlane(p)
	if ok {
		*out = r.At(t)
	}
	return ok
}

// IntersectsPlane reports whether the ray touches the plane
func (r Ray) IntersectsPlane(p Plane) bool {
	dist := p.DistanceToPoint(r.Origin)
	if dist == 0 {
		return true
	}
	denom := rl.Vector3DotProduct(p.Normal, r.Direction)
	return denom*dist < 0
}
