package linkharvest

import "math"

// Point is a position in viewport coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
// A zero-width or zero-height Rect is valid and describes a line or a point.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromPoints returns the rectangle spanned by two opposite corners.
// The corners may be given in any order, so a drag in any direction
// produces the same rectangle.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
	}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Intersects reports whether r and o overlap. Rectangles that only touch
// along an edge or at a corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return !(o.Left > r.Right ||
		o.Right < r.Left ||
		o.Top > r.Bottom ||
		o.Bottom < r.Top)
}
