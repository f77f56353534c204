// Package physics provides the axis-separated AABB collision and
// movement resolution used by the platformer prototypes. Rectangles are
// center-anchored floats in world units; the y axis points down, so a
// contact normal of -1 on y means "pushed up" (landed on something).
//
// The resolver is pure data-in/data-out: it never calls into the host
// platform and knows nothing about actors beyond an opaque owner id.
package physics

// Rect is a center-anchored axis-aligned rectangle: the left edge is at
// X - W/2 and the top edge at Y - H/2.
type Rect struct {
	X, Y float64 // center
	W, H float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X - r.W/2 }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W/2 }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y - r.H/2 }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H/2 }

// Empty reports whether the rectangle has no area. Empty rectangles
// never overlap anything.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether the interiors of r and o intersect. Edge
// contact does not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.Left() >= o.Right() || o.Left() >= r.Right() {
		return false
	}
	if r.Top() >= o.Bottom() || o.Top() >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}
