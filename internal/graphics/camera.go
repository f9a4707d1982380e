package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a free-fly camera: position plus yaw/pitch angles in degrees.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera places a camera above the origin looking toward -Z.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0, 20, 0},
		Yaw:         -90,
		Pitch:       -30,
		FOV:         60.0,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Front returns the unit view direction from yaw/pitch.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Right returns the unit right vector.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Rotate applies mouse deltas to yaw/pitch, clamping pitch so the view
// never flips over the poles.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx
	c.Pitch -= dy
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Move translates the camera: forward/right in the view plane, up along
// world Y.
func (c *Camera) Move(forward, right, up float32) {
	c.Position = c.Position.Add(c.Front().Mul(forward))
	c.Position = c.Position.Add(c.Right().Mul(right))
	c.Position = c.Position.Add(mgl32.Vec3{0, up, 0})
}
