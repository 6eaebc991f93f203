package viz

import (
	"math"

	"github.com/san-kum/trailviz/internal/dynamo"
)

const (
	DefaultYaw   = 0.8
	DefaultPitch = 0.35
	DefaultZoom  = 130.0

	MinPitch = -1.5
	MaxPitch = 1.5
	MinZoom  = 5.0
	MaxZoom  = 3000.0

	// ViewDistance pushes the scene in front of the viewpoint.
	ViewDistance = 5.0
	// MinDepth floors the perspective denominator.
	MinDepth = 0.1

	OrbitSpeed    = 0.005
	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	W, H float64
}

// ScreenPoint is a projected position. Depth is the perspective denominator;
// larger means farther away.
type ScreenPoint struct {
	X, Y, Depth float64
}

// Camera is an orbiting perspective camera looking at the origin.
type Camera struct {
	Yaw, Pitch float64
	Zoom       float64 // pixels per world unit at depth 1
	PanX, PanY float64
	DepthSort  bool
}

func NewCamera() *Camera {
	return &Camera{Yaw: DefaultYaw, Pitch: DefaultPitch, Zoom: DefaultZoom}
}

// Reset rebuilds the whole camera state, depth sorting included.
func (c *Camera) Reset() { *c = *NewCamera() }

// Rotate applies yaw about the vertical axis, then pitch about the
// horizontal axis.
func (c *Camera) Rotate(p dynamo.Vec3) dynamo.Vec3 {
	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cp, sp := math.Cos(c.Pitch), math.Sin(c.Pitch)
	p.Y, p.Z = p.Y*cp-p.Z*sp, p.Y*sp+p.Z*cp
	return p
}

// Project converts a world point to screen coordinates. Screen Y grows
// downward.
func (c *Camera) Project(p dynamo.Vec3, vp Viewport) ScreenPoint {
	r := c.Rotate(p)
	denom := math.Max(MinDepth, r.Z+ViewDistance)
	s := c.Zoom / denom
	return ScreenPoint{
		X:     vp.W/2 + c.PanX + r.X*s,
		Y:     vp.H/2 + c.PanY - r.Y*s,
		Depth: denom,
	}
}

// Orbit turns a drag of (dx, dy) pixels into yaw and pitch.
func (c *Camera) Orbit(dx, dy float64) {
	c.Yaw += dx * OrbitSpeed
	c.Pitch = clamp(c.Pitch+dy*OrbitSpeed, MinPitch, MaxPitch)
}

// Wheel zooms by ZoomInFactor per positive notch and ZoomOutFactor per
// negative notch.
func (c *Camera) Wheel(notches float64) {
	switch {
	case notches > 0:
		c.Zoom *= math.Pow(ZoomInFactor, notches)
	case notches < 0:
		c.Zoom *= math.Pow(ZoomOutFactor, -notches)
	}
	c.Zoom = clamp(c.Zoom, MinZoom, MaxZoom)
}

func (c *Camera) Pan(dx, dy float64) {
	c.PanX += dx
	c.PanY += dy
}

func (c *Camera) ToggleDepthSort() { c.DepthSort = !c.DepthSort }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
