package camera

import (
	"raycast/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a yaw/pitch look camera used to build picking rays
type Camera struct {
	Position rl.Vector3
	Yaw      float32 // degrees, 0 looks down +X
	Pitch    float32 // degrees, clamped to [-89, 89]
	Fovy     float32 // vertical field of view in degrees
}

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

func New(pos rl.Vector3) *Camera {
	return &Camera{
		Position: pos,
		Yaw:      -135.0,
		Pitch:    -30.0,
		Fovy:     45,
	}
}

// Rotate applies a look delta in degrees
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Forward returns the unit view direction
func (c *Camera) Forward() rl.Vector3 {
	yawRad := c.Yaw * rl.Deg2rad
	pitchRad := c.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Cos(yawRad) * math32.Cos(pitchRad),
		Y: math32.Sin(pitchRad),
		Z: math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
}

func (c *Camera) Target() rl.Vector3 {
	return rl.Vector3Add(c.Position, c.Forward())
}

// Ray returns the unit ray through the center of the view
func (c *Camera) Ray() physics.Ray {
	r := physics.NewRay(c.Position, rl.Vector3{})
	r.LookAt(c.Target())
	return r
}

// PickRay returns the unit ray through pixel (x, y) of a width x height
// viewport, (0, 0) being the top-left corner. An empty viewport gives Ray().
func (c *Camera) PickRay(x, y, width, height float32) physics.Ray {
	if width <= 0 || height <= 0 {
		return c.Ray()
	}

	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height
	tanHalf := math32.Tan(c.Fovy * rl.Deg2rad / 2)
	aspect := width / height

	forward := c.Forward()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, worldUp))
	up := rl.Vector3CrossProduct(right, forward)

	dir := forward
	dir = rl.Vector3Add(dir, rl.Vector3Scale(right, ndcX*tanHalf*aspect))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(up, ndcY*tanHalf))

	r := physics.NewRay(c.Position, rl.Vector3{})
	r.LookAt(rl.Vector3Add(c.Position, dir))
	return r
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target(),
		Up:         worldUp,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
