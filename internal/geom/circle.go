package geom

import "math"

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Size is the extent of the drawing surface.
type Size struct {
	W, H float64
}

// Circle is the collision extent of an entity.
type Circle struct {
	Center Point
	R      float64
}

// Distance returns the center-to-center distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlap reports whether two circles collide. Touching edges do not count.
func Overlap(a, b Circle) bool {
	return Distance(a.Center, b.Center) < a.R+b.R
}

// Hit is the overlap test for a precomputed distance.
func Hit(distance, ra, rb float64) bool {
	return distance < ra+rb
}
