package combat

import (
	"github.com/ibaryshnikov/game-design/shared/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// Half-widths in radians.
const (
	narrowHalfWidth  = 0.2
	wideHalfWidth    = 1.7
	defaultHalfWidth = 0.2
)

// Arc is an angular span in radians.
type Arc struct {
	Start, End float64
}

// HalfWidth returns the angular half-width for a kind, negated for the
// right-first orders so their sweep runs the other way.
func HalfWidth(kind Kind, order Order) float64 {
	half := defaultHalfWidth
	switch kind.ID {
	case KindNarrow:
		half = narrowHalfWidth
	case KindWide:
		half = wideHalfWidth
	case KindCustomAngle:
		half = kind.Angle
	}
	if order.reversed() {
		half = -half
	}
	return half
}

// AngleSpan returns the primary arc for an order at the given completion.
func AngleSpan(order Order, base, half, percent float64) Arc {
	switch order {
	case CloseToFar:
		return Arc{Start: base - half, End: base + half}
	case LeftToRight, RightToLeft:
		return Arc{Start: base - half, End: base - half + 2*half*percent}
	case CenterToSides:
		return Arc{Start: base - half*percent, End: base + half*percent}
	case SidesToCenter:
		return Arc{Start: base - half, End: base - half + half*percent}
	case LeftThenRight, RightThenLeft:
		if percent < 0.5 {
			return Arc{Start: base - half, End: base - half + 2*half*percent}
		}
		return Arc{Start: base - half, End: base}
	default:
		return Arc{Start: base - half, End: base + half}
	}
}

// SecondaryArc returns the second arc of the orders that draw two: the
// closing side of SidesToCenter, and the second swing of the two-part orders
// once they pass the halfway mark.
func SecondaryArc(order Order, base, half, percent float64) (Arc, bool) {
	switch order {
	case SidesToCenter:
		return Arc{Start: base + half - half*percent, End: base + half}, true
	case LeftThenRight, RightThenLeft:
		if percent < 0.5 {
			return Arc{}, false
		}
		return Arc{Start: base + half - 2*half*(percent-0.5), End: base + half}, true
	}
	return Arc{}, false
}

// Arcs returns every arc an order covers at the given completion.
func Arcs(order Order, base, half, percent float64) []Arc {
	arcs := []Arc{AngleSpan(order, base, half, percent)}
	if second, ok := SecondaryArc(order, base, half, percent); ok {
		arcs = append(arcs, second)
	}
	return arcs
}

// Radius returns the reach of an attack. Sweeping orders use the full
// distance; the rest grow with completion.
func Radius(order Order, distance, percent float64) float64 {
	if order.sweeps() {
		return distance
	}
	return distance * percent
}

// Geometry is an attack's resolved shape at its current completion.
type Geometry struct {
	Apex   math2.Vec2
	Base   float64
	Half   float64
	Radius float64
	Arcs   []Arc
}

// Resolve computes the geometry of spec at the given completion.
func Resolve(spec Spec, percent float64) Geometry {
	base := gamemath.BaseAngle(spec.Direction)
	half := HalfWidth(spec.Kind, spec.Order)
	return Geometry{
		Apex:   spec.Position,
		Base:   base,
		Half:   half,
		Radius: Radius(spec.Order, spec.Distance, percent),
		Arcs:   Arcs(spec.Order, base, half, percent),
	}
}

// Hits reports whether a target circle overlaps any arc of the geometry.
func (g Geometry) Hits(center math2.Vec2, targetRadius float64) bool {
	for _, arc := range g.Arcs {
		a, b, c := gamemath.SectorTriangle(g.Apex, arc.Start, arc.End, g.Radius)
		if gamemath.TriangleHit(a, b, c, center, targetRadius) {
			return true
		}
	}
	return false
}
