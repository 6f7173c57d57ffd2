package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Line is the implicit form a*x + b*y + c = 0.
type Line struct {
	A, B, C float64
}

// LineThrough returns the implicit line through p1 and p2.
func LineThrough(p1, p2 math2.Vec2) Line {
	return Line{
		A: p2.Y - p1.Y,
		B: p1.X - p2.X,
		C: p2.X*p1.Y - p2.Y*p1.X,
	}
}

// Degenerate reports whether the line came from a zero-length edge.
func (l Line) Degenerate() bool {
	return l.A == 0 && l.B == 0
}

// Distance returns the perpendicular distance from p to the line.
// The second value is false for a degenerate line.
func (l Line) Distance(p math2.Vec2) (float64, bool) {
	if l.Degenerate() {
		return 0, false
	}
	return math.Abs(l.A*p.X+l.B*p.Y+l.C) / math.Sqrt(l.A*l.A+l.B*l.B), true
}

// SectorTriangle approximates an arc of the given radius between the start
// and end angles by the triangle apex, apex+r*dir(start), apex+r*dir(end).
func SectorTriangle(apex math2.Vec2, start, end, radius float64) (a, b, c math2.Vec2) {
	a = apex
	b = math2.Vec2{X: apex.X + radius*math.Cos(start), Y: apex.Y + radius*math.Sin(start)}
	c = math2.Vec2{X: apex.X + radius*math.Cos(end), Y: apex.Y + radius*math.Sin(end)}
	return a, b, c
}

// TriangleHit reports whether a circle at center with radius r touches the
// triangle abc.
//
// This is the edge-line test attack balance was tuned against: the circle
// counts as hit when it is closer than r to the infinite line through any
// edge, even beyond the segment's extent. Zero-length edges are skipped.
func TriangleHit(a, b, c, center math2.Vec2, r float64) bool {
	for _, edge := range [3][2]math2.Vec2{{a, b}, {a, c}, {b, c}} {
		d, ok := LineThrough(edge[0], edge[1]).Distance(center)
		if !ok {
			continue
		}
		if d < r {
			return true
		}
	}
	return false
}
