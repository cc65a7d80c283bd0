package hittest

import "github.com/lixenwraith/klondike/vmath"

// Viewport is the pixel size of the output surface
type Viewport struct {
	Width, Height float64
}

// Camera maps world space onto a viewport
// Position is the world point shown at the viewport center; Zoom is pixels per world unit per axis
type Camera struct {
	Position vmath.Vec2
	Zoom     vmath.Vec2
	Rotation float64
}

// NewCamera returns a camera at pos with uniform zoom
func NewCamera(pos vmath.Vec2, zoom float64) *Camera {
	return &Camera{Position: pos, Zoom: vmath.V2(zoom, zoom)}
}

// View returns the world -> pixel transform for vp
func (c *Camera) View(vp Viewport) vmath.Affine {
	return vmath.Translate(vp.Width/2, vp.Height/2).
		Mul(vmath.ScaleXY(c.Zoom.X, c.Zoom.Y)).
		Mul(vmath.Rotate(-c.Rotation)).
		Mul(vmath.Translate(-c.Position.X, -c.Position.Y))
}

// WorldToScreen maps a world point to pixel space
func (c *Camera) WorldToScreen(p vmath.Vec2, vp Viewport) vmath.Vec2 {
	return c.View(vp).Apply(p)
}

// ScreenToWorld converts a pointer pixel to world space
// Returns false when no camera is registered, no pointer sample exists, or the view is degenerate
func ScreenToWorld(pixel *vmath.Vec2, cam *Camera, vp Viewport) (vmath.Vec2, bool) {
	if pixel == nil || cam == nil {
		return vmath.Vec2{}, false
	}
	inv, ok := cam.View(vp).Invert()
	if !ok {
		return vmath.Vec2{}, false
	}
	return inv.Apply(*pixel), true
}
