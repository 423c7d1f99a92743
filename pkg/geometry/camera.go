package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

const degreesToRadians = math.Pi / 180.0

// Camera generates primary rays through a view window placed in front of
// the eye. World up is +Z.
type Camera struct {
	eye    core.Vec3
	lookAt core.Vec3
	roll   float64 // degrees

	// View window, valid once CalculateWindow has run
	windowOrigin core.Vec3
	spanRight    core.Vec3
	spanUp       core.Vec3
	windowReady  bool
}

// NewCamera creates a camera at eye looking at lookAt, rolled by
// rollDegrees around the viewing direction
func NewCamera(eye, lookAt core.Vec3, rollDegrees float64) *Camera {
	return &Camera{
		eye:    eye,
		lookAt: lookAt,
		roll:   rollDegrees,
	}
}

// PerspectiveDistance returns the eye-to-window distance for a horizontal
// field of view in degrees: aspect / (2 tan(fov/2))
func PerspectiveDistance(width, height int, fovDegrees float64) float64 {
	aspectRatio := float64(width) / float64(height)
	return aspectRatio / (2.0 * math.Tan(degreesToRadians*fovDegrees/2.0))
}

// CalculateWindow builds the view window for an image of width x height.
// It must run again whenever the resolution or field of view changes.
func (c *Camera) CalculateWindow(width, height int, perspective float64) {
	// i: forward, j: right, k: up
	i := c.lookAt.Subtract(c.eye).Normalize()
	j := i.Cross(core.NewVec3(0, 0, 1)).Normalize()
	k := j.Cross(i).Normalize()

	roll := c.roll * degreesToRadians
	sina := math.Sin(roll)
	cosa := math.Cos(roll)

	jp := j.Multiply(cosa).Add(k.Multiply(sina))
	kp := j.Multiply(-sina).Add(k.Multiply(cosa))

	center := c.eye.Add(i.Multiply(perspective))

	// Top-left corner, then the top-right and bottom-left corners
	c.windowOrigin = center.Subtract(jp.Multiply(0.5)).Add(kp.Multiply(0.5))
	h := c.windowOrigin.Add(jp)
	v := c.windowOrigin.Subtract(kp)

	c.spanRight = h.Subtract(c.windowOrigin).Multiply(1.0 / float64(width))
	c.spanUp = v.Subtract(c.windowOrigin).Multiply(1.0 / float64(height))
	c.windowReady = true
}

// RayForPixel returns the primary ray through pixel (x, y), with y
// counting rows down from the top of the image
func (c *Camera) RayForPixel(x, y int) core.Ray {
	origin := c.windowOrigin.
		Add(c.spanRight.Multiply(float64(x))).
		Add(c.spanUp.Multiply(float64(y)))
	direction := origin.Subtract(c.eye).Normalize()
	return core.NewRay(origin, direction)
}

// WindowReady reports whether CalculateWindow has been called
func (c *Camera) WindowReady() bool {
	return c.windowReady
}

// Window returns the window origin corner and the per-pixel span vectors
func (c *Camera) Window() (origin, spanRight, spanUp core.Vec3) {
	return c.windowOrigin, c.spanRight, c.spanUp
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 { return c.eye }

// LookAt returns the point the camera looks at
func (c *Camera) LookAt() core.Vec3 { return c.lookAt }

// Roll returns the roll angle in degrees
func (c *Camera) Roll() float64 { return c.roll }

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.lookAt.Subtract(c.eye).Normalize()
}
