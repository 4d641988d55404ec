package caltime

import (
	"errors"
	"fmt"
)

// Timezone is a fixed UTC offset quantized to quarter hours, plus a DST
// flag that adds one hour to the effective offset.
type Timezone struct {
	offsetMin int
	dst       bool
}

// UTC is the zero offset with no DST.
var UTC = Timezone{}

// Timezone construction errors.
var (
	ErrZoneRange      = errors.New("timezone offset out of range (-12:00 to +14:45)")
	ErrZoneQuarter    = errors.New("timezone minutes must be a multiple of 15")
	ErrZoneMixedSigns = errors.New("timezone hour and minute signs disagree")
)

const (
	minOffsetMin = -12 * 60
	maxOffsetMin = 14*60 + 45
)

// NewTimezone builds a timezone from signed hour and minute components.
// Hours and minutes must not disagree in sign, minutes must fall on a
// quarter hour below 60 in magnitude, and the combined offset must lie
// in -12:00 to +14:45. An invalid combination is rejected outright.
func NewTimezone(hours, minutes int, dst bool) (Timezone, error) {
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		return Timezone{}, ErrZoneMixedSigns
	}
	if minutes <= -60 || minutes >= 60 || minutes%15 != 0 {
		return Timezone{}, ErrZoneQuarter
	}
	offset := hours*60 + minutes
	if offset < minOffsetMin || offset > maxOffsetMin {
		return Timezone{}, ErrZoneRange
	}
	return Timezone{offsetMin: offset, dst: dst}, nil
}

// MustTimezone is NewTimezone for static tables; it panics on an invalid
// offset.
func MustTimezone(hours, minutes int, dst bool) Timezone {
	tz, err := NewTimezone(hours, minutes, dst)
	if err != nil {
		panic(fmt.Sprintf("caltime: bad timezone %+03d:%02d: %v", hours, minutes, err))
	}
	return tz
}

// OffsetMinutes returns the base offset in minutes, excluding DST.
func (tz Timezone) OffsetMinutes() int { return tz.offsetMin }

// DST reports whether the daylight-saving hour is in effect.
func (tz Timezone) DST() bool { return tz.dst }

// effectiveMinutes is the offset applied to civil times, including DST.
func (tz Timezone) effectiveMinutes() int {
	if tz.dst {
		return tz.offsetMin + 60
	}
	return tz.offsetMin
}

// String formats as "±HH:MM", suffixed " DST" when the flag is set.
func (tz Timezone) String() string {
	m := tz.offsetMin
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	s := fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
	if tz.dst {
		s += " DST"
	}
	return s
}
