package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// RayFromRaylib converts a ray from rl.GetScreenToWorldRay and friends
func RayFromRaylib(r rl.Ray) Ray {
	return Ray{Origin: r.Position, Direction: r.Direction}
}

func (r Ray) Raylib() rl.Ray {
	return rl.Ray{Position: r.Origin, Direction: r.Direction}
}

func vec3FromMgl(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// RayFromMgl builds a ray from mathgl vectors
func RayFromMgl(origin, direction mgl32.Vec3) Ray {
	return Ray{Origin: vec3FromMgl(origin), Direction: vec3FromMgl(direction)}
}

// MatrixFromMgl converts a mathgl matrix. Both libraries are column-major with
// the translation in elements 12..14, so the mapping is index for index.
func MatrixFromMgl(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
