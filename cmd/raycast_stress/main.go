// Stress test timing ray queries against growing collider sets
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"raycast/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	counts := flag.String("counts", "100,500,1000,2000,5000,10000", "comma separated collider counts")
	rays := flag.Int("rays", 1000, "rays cast per collider count")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	testCounts, err := parseCounts(*counts)
	if err != nil {
		panic(fmt.Sprintf("Invalid -counts: %v", err))
	}

	rng := rand.New(rand.NewSource(*seed)) // Consistent results
	for _, count := range testCounts {
		testRaycast(rng, count, *rays)
	}
}

func parseCounts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("count %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("count %d must be positive", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no counts given")
	}
	return out, nil
}

func randomPoint(rng *rand.Rand, size float32) rl.Vector3 {
	return rl.Vector3{
		X: rng.Float32()*size - size/2,
		Y: rng.Float32()*size - size/2,
		Z: rng.Float32()*size - size/2,
	}
}

// randomColliders mixes spheres, boxes, oriented boxes and triangles
func randomColliders(rng *rand.Rand, count int, spawnSize float32) []physics.Collider {
	colliders := make([]physics.Collider, count)
	for i := range colliders {
		center := randomPoint(rng, spawnSize)
		switch i % 4 {
		case 0:
			colliders[i] = physics.NewSphere(center, 0.5+rng.Float32()*0.5) // 0.5 to 1.0 radius
		case 1:
			colliders[i] = physics.NewAABBFromCenter(center, rl.Vector3{X: 1, Y: 1, Z: 1})
		case 2:
			colliders[i] = physics.NewOBB(center, rl.Vector3{X: 1, Y: 2, Z: 1}, rl.Vector3{Y: rng.Float32() * 360})
		default:
			colliders[i] = physics.NewTriangle(
				center,
				rl.Vector3Add(center, rl.Vector3{X: 1}),
				rl.Vector3Add(center, rl.Vector3{Y: 1}),
			)
		}
	}
	return colliders
}

func testRaycast(rng *rand.Rand, count, rayCount int) {
	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(50.0) + float32(count)/100.0
	colliders := randomColliders(rng, count, spawnSize)

	rays := make([]physics.Ray, rayCount)
	for i := range rays {
		origin := randomPoint(rng, spawnSize*2)
		rays[i] = physics.NewRay(origin, rl.Vector3{})
		rays[i].LookAt(randomPoint(rng, spawnSize/2))
	}

	start := time.Now()
	hits := 0
	var nearest float32
	for _, r := range rays {
		if hit, ok := physics.Raycast(r, colliders, spawnSize*4); ok {
			hits++
			nearest += hit.Distance
		}
	}
	elapsed := time.Since(start)

	perRay := elapsed / time.Duration(rayCount)
	avg := float32(0)
	if hits > 0 {
		avg = nearest / float32(hits)
	}
	fmt.Printf("%5d colliders: %10v total | %8v/ray | %4d/%d hits | avg distance %.2f\n",
		count, elapsed.Round(time.Microsecond), perRay, hits, rayCount, avg)
}
