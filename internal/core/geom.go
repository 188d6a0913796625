// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It has no external dependencies so the
// game logic stays pure and testable without a terminal.
package core

// Squared returns x*x.
func Squared(x float64) float64 {
	return x * x
}

// LengthSq returns the squared length of the vector (x, y).
func LengthSq(x, y float64) float64 {
	return x*x + y*y
}

// DistanceSq returns the squared Euclidean distance between two points.
// Compare against a squared radius to avoid the sqrt.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	return LengthSq(x1-x2, y1-y2)
}

// CirclesOverlap reports whether two circles overlap. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return DistanceSq(x1, y1, x2, y2) < Squared(r1+r2)
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
