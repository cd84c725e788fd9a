package physics

import (
	"testing"
)

func TestRayIntersectSphere(t *testing.T) {
	// ray a0 origin located at ( 0, 0, 0 ) and points outward in negative-z direction
	a0 := NewRay(zero3, vec(0, 0, -1))
	// ray a1 origin located at ( 1, 1, 1 ) and points left in negative-x direction
	a1 := NewRay(one3, vec(-1, 0, 0))

	misses := []struct {
		name   string
		ray    Ray
		sphere Sphere
	}{
		{"sphere behind the ray", a0, NewSphere(vec(0, 0, 3), 2)},
		{"sphere in front but too far right", a0, NewSphere(vec(3, 0, -1), 2)},
		{"sphere below the ray", a1, NewSphere(vec(1, -2, 1), 2)},
		{"sphere just missed", a0, NewSphere(vec(2.01, 0, -1), 2)},
	}
	for _, tt := range misses {
		if p, ok := tt.ray.IntersectSphere(tt.sphere); ok {
			t.Errorf("%s: expected no intersection, got %v", tt.name, p)
		}
	}

	hits := []struct {
		name   string
		ray    Ray
		sphere Sphere
		want   [3]float32
	}{
		{"sphere left of a1", a1, NewSphere(vec(-1, 1, 1), 1), [3]float32{0, 1, 1}},
		{"sphere in front of a0", a0, NewSphere(vec(0, 0, -2), 1), [3]float32{0, 0, -1}},
		{"sphere grazing a0", a0, NewSphere(vec(2, 0, -1), 2), [3]float32{0, 0, -1}},
		// origin inside: the entry point is behind the ray, so the exit is reported
		{"centered on origin", a0, NewSphere(zero3, 1), [3]float32{0, 0, -1}},
		{"center behind origin", a0, NewSphere(vec(0, 0, 1), 4), [3]float32{0, 0, -3}},
		{"center in front of origin", a0, NewSphere(vec(0, 0, -1), 4), [3]float32{0, 0, -5}},
	}
	for _, tt := range hits {
		p, ok := tt.ray.IntersectSphere(tt.sphere)
		if !ok {
			t.Errorf("%s: expected an intersection", tt.name)
			continue
		}
		assertNear(t, tt.name, p, vec(tt.want[0], tt.want[1], tt.want[2]))
	}
}

func TestRayIntersectSphereIntoKeepsSentinel(t *testing.T) {
	r := NewRay(zero3, vec(0, 0, -1))

	point := PosInf
	if r.IntersectSphereInto(NewSphere(vec(0, 0, 3), 2), &point) {
		t.Error("Expected no intersection")
	}
	if point != PosInf {
		t.Errorf("Output should be untouched on a miss, got %v", point)
	}

	if !r.IntersectSphereInto(NewSphere(vec(0, 0, -2), 1), &point) {
		t.Fatal("Expected an intersection")
	}
	assertNear(t, "hit point", point, vec(0, 0, -1))
}

func TestRayDistanceToSphere(t *testing.T) {
	r := NewRay(zero3, vec(0, 0, -2))

	// Direction length 2: the surface at z=-4 is reached at t=2
	dist, ok := r.DistanceToSphere(NewSphere(vec(0, 0, -5), 1))
	if !ok {
		t.Fatal("Expected an intersection")
	}
	assertClose(t, "t with non-unit direction", dist, 2)

	// Origin inside: t is the exit and never negative
	dist, ok = r.DistanceToSphere(NewSphere(vec(0, 0, 1), 4))
	if !ok {
		t.Fatal("Expected an intersection from inside")
	}
	if dist < 0 {
		t.Errorf("Reported t should be in front of the origin, got %f", dist)
	}
	assertClose(t, "exit t", dist, 1.5)

	if _, ok := NewRay(zero3, zero3).DistanceToSphere(NewSphere(zero3, 1)); ok {
		t.Error("A zero direction ray should not report a sphere hit")
	}
}

func TestRayIntersectsSphere(t *testing.T) {
	a := NewRay(one3, vec(0, 0, 1))

	tests := []struct {
		sphere Sphere
		want   bool
	}{
		{NewSphere(zero3, 0.5), false},
		{NewSphere(zero3, 1.5), false},
		{NewSphere(one3, 0.1), true},
		{NewSphere(two3, 0.1), false},
		{NewSphere(two3, 1), false},
		{NewSphere(vec(1, 2, 5), 1), true}, // touching
	}
	for _, tt := range tests {
		if got := a.IntersectsSphere(tt.sphere); got != tt.want {
			t.Errorf("IntersectsSphere(%+v): expected %v, got %v", tt.sphere, tt.want, got)
		}
	}
}

func TestSphereHelpers(t *testing.T) {
	s := NewSphere(one3, 2)

	if !s.ContainsPoint(vec(1, 1, 3)) {
		t.Error("Point on the surface should be contained")
	}
	if s.ContainsPoint(vec(1, 1, 3.5)) {
		t.Error("Point outside should not be contained")
	}
	assertClose(t, "distance outside", s.DistanceToPoint(vec(1, 1, 5)), 2)
	assertClose(t, "distance inside", s.DistanceToPoint(one3), -2)

	if !s.IntersectsAABB(NewAABB(vec(2.5, 0, 0), vec(4, 2, 2))) {
		t.Error("Sphere should overlap the box next to it")
	}
	if s.IntersectsAABB(NewAABB(vec(4, 4, 4), vec(5, 5, 5))) {
		t.Error("Sphere should not overlap a distant box")
	}
}
