package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

func TestHalfWidth(t *testing.T) {
	tests := []struct {
		kind  Kind
		order Order
		want  float64
	}{
		{Narrow(), CloseToFar, 0.2},
		{Wide(), LeftToRight, 1.7},
		{Wide(), RightToLeft, -1.7},
		{CustomAngle(0.9), CenterToSides, 0.9},
		{CustomAngle(0.9), RightThenLeft, -0.9},
		{Circle(), ExpandingCircle, 0.2},
		{Missiles(3), ProjectileFromCaster, 0.2},
		{Narrow(), RightToLeft, -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.order.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, HalfWidth(tt.kind, tt.order))
		})
	}
}

func TestAngleSpan(t *testing.T) {
	const base, half = 1.0, 0.5
	tests := []struct {
		order   Order
		percent float64
		want    Arc
	}{
		{CloseToFar, 0.3, Arc{0.5, 1.5}},
		{LeftToRight, 0, Arc{0.5, 0.5}},
		{LeftToRight, 0.5, Arc{0.5, 1.0}},
		{LeftToRight, 1, Arc{0.5, 1.5}},
		{RightToLeft, 0.25, Arc{0.5, 0.75}},
		{CenterToSides, 0.5, Arc{0.75, 1.25}},
		{SidesToCenter, 0.5, Arc{0.5, 0.75}},
		{LeftThenRight, 0.25, Arc{0.5, 0.75}},
		{LeftThenRight, 0.75, Arc{0.5, 1.0}},
		{ExpandingCircle, 0.1, Arc{0.5, 1.5}},
		{ProjectileFromCaster, 0.9, Arc{0.5, 1.5}},
	}
	for _, tt := range tests {
		got := AngleSpan(tt.order, base, half, tt.percent)
		assert.InDelta(t, tt.want.Start, got.Start, 1e-12, "%s at %v", tt.order, tt.percent)
		assert.InDelta(t, tt.want.End, got.End, 1e-12, "%s at %v", tt.order, tt.percent)
	}
}

func TestSecondaryArc(t *testing.T) {
	const base, half = 1.0, 0.5

	arc, ok := SecondaryArc(SidesToCenter, base, half, 0.5)
	require.True(t, ok)
	assert.InDelta(t, 1.25, arc.Start, 1e-12)
	assert.InDelta(t, 1.5, arc.End, 1e-12)

	_, ok = SecondaryArc(RightThenLeft, base, half, 0.49)
	assert.False(t, ok, "second swing starts at the halfway mark")

	arc, ok = SecondaryArc(LeftThenRight, base, half, 0.75)
	require.True(t, ok)
	assert.InDelta(t, 1.25, arc.Start, 1e-12)
	assert.InDelta(t, 1.5, arc.End, 1e-12)

	_, ok = SecondaryArc(LeftToRight, base, half, 1)
	assert.False(t, ok)
}

func TestArcs(t *testing.T) {
	assert.Len(t, Arcs(SidesToCenter, 0, 1, 0.1), 2)
	assert.Len(t, Arcs(LeftThenRight, 0, 1, 0.2), 1)
	assert.Len(t, Arcs(LeftThenRight, 0, 1, 0.5), 2)
	assert.Len(t, Arcs(CloseToFar, 0, 1, 1), 1)
}

func TestRadius(t *testing.T) {
	for _, o := range []Order{LeftToRight, RightToLeft, LeftThenRight, RightThenLeft, CenterToSides, SidesToCenter} {
		assert.Equal(t, 300.0, Radius(o, 300, 0.25), "%s sweeps at full reach", o)
	}
	for _, o := range []Order{CloseToFar, ExpandingCircle, ProjectileFromCaster} {
		assert.Equal(t, 75.0, Radius(o, 300, 0.25), "%s grows with completion", o)
	}
}

func TestCenterToSidesGrowsSymmetrically(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.Float64Range(-math.Pi, 2*math.Pi).Draw(t, "base")
		half := rapid.Float64Range(-2, 2).Draw(t, "half")
		p1 := rapid.Float64Range(0, 1).Draw(t, "p1")
		p2 := rapid.Float64Range(p1, 1).Draw(t, "p2")

		a1 := AngleSpan(CenterToSides, base, half, p1)
		a2 := AngleSpan(CenterToSides, base, half, p2)

		if d := math.Abs((a1.Start+a1.End)/2 - base); d > 1e-9 {
			t.Fatalf("span %v is not centred on %v", a1, base)
		}
		if math.Abs(a2.End-a2.Start) < math.Abs(a1.End-a1.Start)-1e-12 {
			t.Fatalf("span shrank from %v to %v", a1, a2)
		}
	})
}

func TestSweepStartsAtLeftEdge(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		order := rapid.SampledFrom([]Order{LeftToRight, RightToLeft, LeftThenRight, RightThenLeft, SidesToCenter}).Draw(t, "order")
		base := rapid.Float64Range(-math.Pi, 2*math.Pi).Draw(t, "base")
		half := rapid.Float64Range(-2, 2).Draw(t, "half")
		p := rapid.Float64Range(0, 1).Draw(t, "percent")

		if got := AngleSpan(order, base, half, p).Start; got != base-half {
			t.Fatalf("%s start = %v, want %v", order, got, base-half)
		}
	})
}

func TestGeometryHitsAlongFacing(t *testing.T) {
	spec := Spec{
		Position:  math2.Vec2{X: 400, Y: 300},
		Direction: math2.Vec2{X: -1},
		Kind:      Narrow(),
		Order:     CloseToFar,
		Distance:  200,
	}
	g := Resolve(spec, 1)
	assert.InDelta(t, 0.0, g.Base, 1e-12)
	assert.Equal(t, 200.0, g.Radius)
	require.Len(t, g.Arcs, 1)

	assert.True(t, g.Hits(math2.Vec2{X: 500, Y: 300}, 20))
	assert.False(t, g.Hits(math2.Vec2{X: 300, Y: 520}, 20))
}

func TestGeometryUnionOfArcs(t *testing.T) {
	spec := Spec{
		Direction: math2.Vec2{X: -1},
		Kind:      CustomAngle(math.Pi / 2),
		Order:     SidesToCenter,
		Distance:  100,
	}
	g := Resolve(spec, 0.2)
	require.Len(t, g.Arcs, 2)

	// Only the second arc's leading edge passes near this point.
	onSecond := math2.Vec2{X: 61.8, Y: 190.2}
	first := Geometry{Apex: g.Apex, Radius: g.Radius, Arcs: g.Arcs[:1]}
	assert.False(t, first.Hits(onSecond, 10))
	assert.True(t, g.Hits(onSecond, 10))
}

func TestParseNames(t *testing.T) {
	for o := LeftToRight; o <= ProjectileFromCaster; o++ {
		got, err := ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	for id := KindNarrow; id <= KindMissiles; id++ {
		got, err := ParseKindID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
	_, err := ParseOrder("zigzag")
	assert.Error(t, err)
	_, err = ParseKindID("hammer")
	assert.Error(t, err)
}
