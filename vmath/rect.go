package vmath

// RectContainsCentered checks if p lies in the rectangle of half-extents h centered at the origin
// Edges are inclusive
func RectContainsCentered(h Vec2, p Vec2) bool {
	return p.X >= -h.X && p.X <= h.X && p.Y >= -h.Y && p.Y <= h.Y
}

// TransformedRectContains checks if world point p lies in the centered local
// rectangle h after it is mapped through m
// The point is pulled back through the inverse so rotation and shear are exact
func TransformedRectContains(m Affine, h Vec2, p Vec2) bool {
	inv, ok := m.Invert()
	if !ok {
		return false
	}
	return RectContainsCentered(h, inv.Apply(p))
}
