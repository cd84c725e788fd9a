package main

import (
	"math/rand"
	"testing"

	"raycast/internal/physics"
)

func TestParseCounts(t *testing.T) {
	counts, err := parseCounts("100, 500,,2000")
	if err != nil {
		t.Fatalf("parseCounts failed: %v", err)
	}
	if len(counts) != 3 || counts[0] != 100 || counts[1] != 500 || counts[2] != 2000 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestParseCountsErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "10,-5", "0"} {
		if _, err := parseCounts(input); err == nil {
			t.Errorf("Expected an error for %q", input)
		}
	}
}

func TestRandomCollidersMix(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	colliders := randomColliders(rng, 8, 50)

	if len(colliders) != 8 {
		t.Fatalf("Expected 8 colliders, got %d", len(colliders))
	}

	var spheres, boxes, obbs, tris int
	for _, c := range colliders {
		switch c.(type) {
		case physics.Sphere:
			spheres++
		case physics.AABB:
			boxes++
		case physics.OBB:
			obbs++
		case physics.Triangle:
			tris++
		default:
			t.Errorf("Unexpected collider type %T", c)
		}
	}
	if spheres != 2 || boxes != 2 || obbs != 2 || tris != 2 {
		t.Errorf("Expected an even mix, got %d spheres, %d boxes, %d obbs, %d triangles", spheres, boxes, obbs, tris)
	}
}

func TestRandomCollidersAreReachable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	colliders := randomColliders(rng, 4, 10)

	// Aim straight at the first sphere
	s := colliders[0].(physics.Sphere)
	r := physics.NewRay(s.Center, s.Center)
	r.Origin.Y += 100
	r.LookAt(s.Center)

	hit, ok := physics.Raycast(r, colliders[:1], 1000)
	if !ok {
		t.Fatal("Ray aimed at the sphere should hit it")
	}
	if hit.Index != 0 {
		t.Errorf("Expected index 0, got %d", hit.Index)
	}
}
