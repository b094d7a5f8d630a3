package viewer

import (
	"math"

	"github.com/philipparndt/segplot/pkg/geometry"
)

const (
	defaultElevation = math.Pi / 6  // 30 degrees above the XY plane
	defaultAzimuth   = -math.Pi / 3 // -60 degrees around Z
	minDistance      = 1e-6
)

// Camera is an orbit camera around a target with Z pointing up
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the XY plane
	RotationY float64 // Azimuth around the Z axis

	home geometry.BoundingBox
}

// NewCamera creates a camera that frames a bounding box.
// An empty or flat box is framed as a unit cube around its center.
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:  geometry.NewVector3(0, 0, 1),
		FOV: math.Pi / 4, // 45 degrees
	}
	c.Frame(bbox)
	return c
}

// Frame points the camera at a bounding box using the default view angles
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	c.home = bbox
	size := bbox.Size()
	extent := math.Max(size.X, math.Max(size.Y, size.Z))
	if extent == 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		extent = 1
	}

	c.Target = bbox.Center()
	c.Distance = extent * 2.0
	c.RotationX = defaultElevation
	c.RotationY = defaultAzimuth
	c.UpdatePosition()
}

// Reset restores the initial view
func (c *Camera) Reset() {
	c.Frame(c.home)
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	y := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	z := c.Distance * math.Sin(c.RotationX)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Keep away from the poles, the view basis degenerates there
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	c.UpdatePosition()
}

// Pan moves the target in the view plane; deltas are in screen pixels
func (c *Camera) Pan(deltaX, deltaY float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	speed := c.Distance * 0.001
	c.Target = c.Target.Add(right.Mul(-deltaX * speed)).Add(up.Mul(deltaY * speed))
	c.UpdatePosition()
}

// Project projects a 3D point to 2D screen coordinates and returns its depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := z
	near := c.Distance * 1e-3
	if z <= near {
		z = near
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, depth
}
