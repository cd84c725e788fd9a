package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

func TestRaylibRayRoundTrip(t *testing.T) {
	r := NewRay(vec(1, 2, 3), vec(0, -1, 0))

	rr := r.Raylib()
	if rr.Position != r.Origin || rr.Direction != r.Direction {
		t.Errorf("Unexpected rl.Ray: %+v", rr)
	}
	if !RayFromRaylib(rr).Equals(r) {
		t.Error("Round trip through rl.Ray should be lossless")
	}
}

func TestRayFromMgl(t *testing.T) {
	r := RayFromMgl(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, -1})
	if !r.Equals(NewRay(vec(1, 2, 3), vec(0, 0, -1))) {
		t.Errorf("Unexpected ray: %+v", r)
	}
}

func TestMatrixFromMglTranslation(t *testing.T) {
	m := MatrixFromMgl(mgl32.Translate3D(1, 2, 3))
	if m != rl.MatrixTranslate(1, 2, 3) {
		t.Errorf("Translation layouts differ: %+v", m)
	}

	r := NewRay(one3, vec(0, 0, 1))
	r.ApplyMatrix(m)
	if r.Origin != vec(2, 3, 4) || r.Direction != vec(0, 0, 1) {
		t.Errorf("Unexpected transformed ray: %+v", r)
	}
}

func TestMatrixFromMglMatchesMgl(t *testing.T) {
	mm := mgl32.Translate3D(1, -2, 0.5).Mul4(mgl32.HomogRotate3DY(math32.Pi / 3)).Mul4(mgl32.Scale3D(2, 1, 1))
	m := MatrixFromMgl(mm)

	origin := mgl32.Vec3{0.5, 1, -2}
	dir := mgl32.Vec3{1, 0.25, -1}

	r := RayFromMgl(origin, dir)
	r.ApplyMatrix(m)

	wantOrigin := mgl32.TransformCoordinate(origin, mm)
	wantDir := mgl32.TransformNormal(dir, mm)
	assertNear(t, "origin", r.Origin, vec3FromMgl(wantOrigin))
	assertNear(t, "direction", r.Direction, vec3FromMgl(wantDir))
}
