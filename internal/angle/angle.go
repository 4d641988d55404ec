// Package angle provides unit-tagged angle values with conversion,
// normalization, trigonometry and sexagesimal (DMS/HMS) round-tripping.
package angle

import (
	"fmt"
	"math"
)

// Unit identifies the measurement unit an Angle is expressed in.
type Unit int

const (
	UnitDegrees Unit = iota
	UnitRadians
	UnitHours
)

func (u Unit) String() string {
	switch u {
	case UnitDegrees:
		return "degrees"
	case UnitRadians:
		return "radians"
	case UnitHours:
		return "hours"
	default:
		return "unknown"
	}
}

// full returns one complete turn expressed in the given unit.
func full(u Unit) float64 {
	switch u {
	case UnitRadians:
		return 2 * math.Pi
	case UnitHours:
		return 24
	default:
		return 360
	}
}

// Angle is a real-valued angle tagged with its unit. The value is
// unrestricted (negative or beyond a full turn) until a normalization or
// sexagesimal conversion is requested.
type Angle struct {
	val  float64
	unit Unit
}

// Degrees constructs an Angle from a value in degrees.
func Degrees(v float64) Angle { return Angle{v, UnitDegrees} }

// Radians constructs an Angle from a value in radians.
func Radians(v float64) Angle { return Angle{v, UnitRadians} }

// Hours constructs an Angle from a value in hours (24 hours = one turn).
func Hours(v float64) Angle { return Angle{v, UnitHours} }

// Unit reports the unit the angle is expressed in.
func (a Angle) Unit() Unit { return a.unit }

// Deg returns the angle's value in degrees.
func (a Angle) Deg() float64 {
	switch a.unit {
	case UnitRadians:
		return a.val * 180 / math.Pi
	case UnitHours:
		return a.val * 15
	default:
		return a.val
	}
}

// Rad returns the angle's value in radians.
func (a Angle) Rad() float64 {
	switch a.unit {
	case UnitDegrees:
		return a.val * math.Pi / 180
	case UnitHours:
		return a.val * 15 * math.Pi / 180
	default:
		return a.val
	}
}

// Hrs returns the angle's value in hours.
func (a Angle) Hrs() float64 {
	switch a.unit {
	case UnitDegrees:
		return a.val / 15
	case UnitRadians:
		return a.val * 180 / math.Pi / 15
	default:
		return a.val
	}
}

// To converts the angle to the given unit.
func (a Angle) To(u Unit) Angle {
	switch u {
	case UnitRadians:
		return Angle{a.Rad(), u}
	case UnitHours:
		return Angle{a.Hrs(), u}
	default:
		return Angle{a.Deg(), u}
	}
}

// Add returns a+b expressed in a's unit.
func (a Angle) Add(b Angle) Angle {
	return Angle{a.val + b.To(a.unit).val, a.unit}
}

// Sub returns a-b expressed in a's unit.
func (a Angle) Sub(b Angle) Angle {
	return Angle{a.val - b.To(a.unit).val, a.unit}
}

// Neg returns the angle with its sign flipped.
func (a Angle) Neg() Angle { return Angle{-a.val, a.unit} }

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.Rad()) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.Rad()) }

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 { return math.Tan(a.Rad()) }

// Asin returns the inverse sine as an Angle in radians.
func Asin(x float64) Angle { return Angle{math.Asin(x), UnitRadians} }

// Acos returns the inverse cosine as an Angle in radians.
func Acos(x float64) Angle { return Angle{math.Acos(x), UnitRadians} }

// Atan returns the inverse tangent as an Angle in radians.
func Atan(x float64) Angle { return Angle{math.Atan(x), UnitRadians} }

// Atan2 returns the quadrant-correct inverse tangent of y/x as an Angle
// in radians.
func Atan2(y, x float64) Angle { return Angle{math.Atan2(y, x), UnitRadians} }

// Norm reduces the angle into [0, turn) of its own unit. An exact full
// turn reduces to zero.
func (a Angle) Norm() Angle {
	t := full(a.unit)
	v := math.Mod(a.val, t)
	if v < 0 {
		v += t
	}
	if v >= t {
		v -= t
	}
	return Angle{v, a.unit}
}

// NormHalf reduces the angle into [-turn/2, +turn/2) of its own unit.
func (a Angle) NormHalf() Angle {
	t := full(a.unit)
	v := math.Mod(a.val, t)
	if v >= t/2 {
		v -= t
	}
	if v < -t/2 {
		v += t
	}
	return Angle{v, a.unit}
}

// String formats the angle as a fixed four-decimal value with a unit
// suffix: "45.0000°", "0.7854 rad", "3.0000ʰ".
func (a Angle) String() string {
	switch a.unit {
	case UnitRadians:
		return fmt.Sprintf("%.4f rad", a.val)
	case UnitHours:
		return fmt.Sprintf("%.4fʰ", a.val)
	default:
		return fmt.Sprintf("%.4f°", a.val)
	}
}
