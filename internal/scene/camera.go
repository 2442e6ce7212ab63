// Package scene holds the camera and plane geometry of the slider: plane
// sizing against the visible frustum, the scroll distortion of the plane's
// vertices, and the perspective projection onto the screen.
package scene

import "github.com/go-gl/mathgl/mgl64"

const (
	DefaultFOV    = 75.0 // vertical field of view, degrees
	DefaultCamera = 5.0  // camera distance from the plane
	DefaultNear   = 0.1
	DefaultFar    = 1000.0
)

// Camera is a perspective camera on the +z axis looking at the origin.
type Camera struct {
	FOV    float64 // degrees
	Z      float64
	Near   float64
	Far    float64
	Aspect float64
}

// NewCamera creates the slider camera for a viewport.
func NewCamera(width, height float64) Camera {
	c := Camera{
		FOV:  DefaultFOV,
		Z:    DefaultCamera,
		Near: DefaultNear,
		Far:  DefaultFar,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the aspect ratio. A degenerate viewport keeps the previous
// aspect so projection never divides by zero.
func (c *Camera) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		if c.Aspect == 0 {
			c.Aspect = 1
		}
		return
	}
	c.Aspect = width / height
}

// ViewProjection returns the combined view and perspective matrix.
func (c Camera) ViewProjection() mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	view := mgl64.LookAtV(mgl64.Vec3{0, 0, c.Z}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Visible returns the width and height of the frustum slice at z=0.
func (c Camera) Visible() (width, height float64) {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	return 2 * c.Z / proj.At(0, 0), 2 * c.Z / proj.At(1, 1)
}

// Project maps a world point to screen pixels for a screen of w×h. ok is
// false when the point is outside the near/far range.
func (c Camera) Project(x, y, z, w, h float64) (sx, sy float64, ok bool) {
	return project(c.ViewProjection(), x, y, z, w, h)
}

func project(vp mgl64.Mat4, x, y, z, w, h float64) (sx, sy float64, ok bool) {
	clip := vp.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	return (ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h, true
}
