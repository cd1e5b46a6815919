// Package physics provides vector math, collision tests and a broad-phase grid.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle reports whether p lies strictly inside the circle at c with the given radius.
func PointInCircle(p, c Vec2, radius float64) bool {
	return DistanceSquared(p.X, p.Y, c.X, c.Y) < radius*radius
}

// CirclesOverlap reports whether two circles overlap (touching does not count).
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(c1.X, c1.Y, c2.X, c2.Y) < minDist*minDist
}
