package termgrid

import (
	"fmt"
	"image"
)

// Point is a pixel coordinate in the target drawing surface.
// (0,0) is the surface's top-left corner.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// PointFromImage converts an image.Point.
func PointFromImage(p image.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// ImagePoint converts p for use with the image and draw packages.
func (p Point) ImagePoint() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
