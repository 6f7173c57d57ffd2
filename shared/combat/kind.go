package combat

import "fmt"

// KindID identifies the shape family of an attack.
type KindID int

const (
	KindNarrow KindID = iota
	KindWide
	KindCustomAngle
	KindCircle
	KindMissiles
)

// Kind is a tagged variant: Angle is only meaningful for KindCustomAngle and
// Count only for KindMissiles.
type Kind struct {
	ID    KindID
	Angle float64
	Count int
}

func Narrow() Kind { return Kind{ID: KindNarrow} }
func Wide() Kind   { return Kind{ID: KindWide} }
func Circle() Kind { return Kind{ID: KindCircle} }

// CustomAngle is a kind whose half-width is the given angle in radians.
func CustomAngle(angle float64) Kind { return Kind{ID: KindCustomAngle, Angle: angle} }

// Missiles is a kind firing count projectiles.
func Missiles(count int) Kind { return Kind{ID: KindMissiles, Count: count} }

var kindNames = map[KindID]string{
	KindNarrow:      "narrow",
	KindWide:        "wide",
	KindCustomAngle: "custom_angle",
	KindCircle:      "circle",
	KindMissiles:    "missiles",
}

func (k Kind) String() string {
	switch k.ID {
	case KindCustomAngle:
		return fmt.Sprintf("custom_angle(%g)", k.Angle)
	case KindMissiles:
		return fmt.Sprintf("missiles(%d)", k.Count)
	}
	return k.ID.String()
}

// String returns the authored name of the kind family.
func (id KindID) String() string {
	if name, ok := kindNames[id]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(id))
}

// ParseKindID maps an authored kind name to its ID.
func ParseKindID(name string) (KindID, error) {
	for id, n := range kindNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown attack kind %q", name)
}

// Order is the policy governing how an attack's span and radius animate.
type Order int

const (
	LeftToRight Order = iota
	RightToLeft
	LeftThenRight
	RightThenLeft
	CloseToFar
	CenterToSides
	SidesToCenter
	ExpandingCircle
	ProjectileFromCaster
)

var orderNames = map[Order]string{
	LeftToRight:          "left_to_right",
	RightToLeft:          "right_to_left",
	LeftThenRight:        "left_then_right",
	RightThenLeft:        "right_then_left",
	CloseToFar:           "close_to_far",
	CenterToSides:        "center_to_sides",
	SidesToCenter:        "sides_to_center",
	ExpandingCircle:      "expanding_circle",
	ProjectileFromCaster: "projectile_from_caster",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder maps an authored order name to its Order.
func ParseOrder(name string) (Order, error) {
	for o, n := range orderNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown attack order %q", name)
}

// reversed reports whether the order mirrors the half-width.
func (o Order) reversed() bool {
	return o == RightToLeft || o == RightThenLeft
}

// sweeps reports whether the order animates its angle instead of its radius.
func (o Order) sweeps() bool {
	switch o {
	case LeftToRight, RightToLeft, SidesToCenter, CenterToSides, LeftThenRight, RightThenLeft:
		return true
	}
	return false
}
