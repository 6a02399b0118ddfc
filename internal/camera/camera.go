// Package camera provides the orbit camera used by the viewer.
package camera

import (
	"math"

	"github.com/Faultbox/vanir/pkg/vmath"
)

// Orbit orbits around a center point, described by spherical coordinates
// relative to that center.
type Orbit struct {
	Center vmath.Vec3

	Distance float64
	Pitch    float64 // vertical angle in radians
	Yaw      float64 // horizontal angle in radians

	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	DragSensitivity float64
	ZoomSensitivity float64
}

// NewOrbit creates an orbit camera with default settings.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        10,
		Pitch:           0.5,
		Yaw:             0,
		MinDistance:     2,
		MaxDistance:     100,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position writes the camera position in world space into out.
func (c *Orbit) Position(out *vmath.Vec3) *vmath.Vec3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)
	return out.Set(c.Center.X+x, c.Center.Y+y, c.Center.Z+z)
}

// ViewMatrix writes the view matrix for this camera into out.
func (c *Orbit) ViewMatrix(out *vmath.Mat4) *vmath.Mat4 {
	var pos vmath.Vec3
	c.Position(&pos)
	up := vmath.Vec3{Y: 1}
	return out.SetLookAt(&pos, &c.Center, &up)
}

// HandleDrag updates the orbit angles from a mouse drag delta in pixels.
func (c *Orbit) HandleDrag(deltaX, deltaY float64) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.Pitch = vmath.Clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates the distance from a scroll wheel delta. Zoom speed
// scales with distance so it feels uniform at any range.
func (c *Orbit) HandleZoom(delta float64) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = vmath.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the center point in the camera's horizontal frame.
func (c *Orbit) HandlePan(forward, right, up float64) {
	speed := c.Distance * 0.01

	dirX := math.Sin(c.Yaw)
	dirZ := math.Cos(c.Yaw)
	rightX := math.Cos(c.Yaw)
	rightZ := -math.Sin(c.Yaw)

	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
	c.Center.Y += up * speed
}

// FitToBounds points the camera at the box center and backs off far
// enough to see the whole box. Empty boxes are ignored.
func (c *Orbit) FitToBounds(box *vmath.AABB) {
	if box.IsEmpty() {
		return
	}

	box.Center(&c.Center)

	var size vmath.Vec3
	box.Size(&size)
	maxSize := math.Max(size.X, math.Max(size.Y, size.Z))

	c.Distance = vmath.Clamp(maxSize*1.5, c.MinDistance, c.MaxDistance)
	c.Pitch = 0.6
	c.Yaw = 0
}
