package angle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// DMS is a degrees-minutes-seconds decomposition. The sign is carried
// separately from the non-negative magnitude fields so that values such
// as -0°00'01" remain representable.
type DMS struct {
	Neg bool
	Deg int
	Min int
	Sec float64
}

// HMS is an hours-minutes-seconds decomposition with an explicit sign,
// used for hour-based angles (right ascension, sidereal time).
type HMS struct {
	Neg  bool
	Hour int
	Min  int
	Sec  float64
}

// sexagesimal splits |v| into whole units, minutes and seconds, taking
// the sign first. Seconds are rounded at the microsecond level; a carry
// is propagated when the rounding pushes a field to 60.
func sexagesimal(v float64) (neg bool, whole, min int, sec float64) {
	neg = math.Signbit(v)
	v = math.Abs(v)

	whole = int(v)
	rem := (v - float64(whole)) * 60
	min = int(rem)
	sec = (rem - float64(min)) * 60

	sec = math.Round(sec*1e6) / 1e6
	if sec >= 60 {
		sec -= 60
		min++
	}
	if min >= 60 {
		min -= 60
		whole++
	}
	return neg, whole, min, sec
}

// DMS decomposes the angle's degree value into signed sexagesimal form.
func (a Angle) DMS() DMS {
	neg, d, m, s := sexagesimal(a.Deg())
	return DMS{Neg: neg, Deg: d, Min: m, Sec: s}
}

// HMS decomposes the angle's hour value into signed sexagesimal form.
func (a Angle) HMS() HMS {
	neg, h, m, s := sexagesimal(a.Hrs())
	return HMS{Neg: neg, Hour: h, Min: m, Sec: s}
}

// FromDMS constructs a degree Angle by summing the magnitude fields and
// negating when the sign flag is set.
func FromDMS(d DMS) Angle {
	v := float64(d.Deg) + float64(d.Min)/60 + d.Sec/3600
	if d.Neg {
		v = -v
	}
	return Degrees(v)
}

// FromHMS constructs an hour Angle by summing the magnitude fields and
// negating when the sign flag is set.
func FromHMS(h HMS) Angle {
	v := float64(h.Hour) + float64(h.Min)/60 + h.Sec/3600
	if h.Neg {
		v = -v
	}
	return Hours(v)
}

// roundCarry rounds seconds to the nearest whole second for display,
// carrying into minutes and the whole field as needed.
func roundCarry(whole, min int, sec float64) (int, int, int) {
	s := int(math.Round(sec))
	if s >= 60 {
		s -= 60
		min++
	}
	if min >= 60 {
		min -= 60
		whole++
	}
	return whole, min, s
}

// String formats as [sign]D°MM'SS" with whole seconds; the degree field
// is not zero-padded.
func (d DMS) String() string {
	deg, min, sec := roundCarry(d.Deg, d.Min, d.Sec)
	sign := ""
	if d.Neg {
		sign = "-"
	}
	return fmt.Sprintf(`%s%d°%02d'%02d"`, sign, deg, min, sec)
}

// String formats as [sign]HHʰMMᵐSSˢ, zero-padded, sign omitted when
// positive.
func (h HMS) String() string {
	hour, min, sec := roundCarry(h.Hour, h.Min, h.Sec)
	sign := ""
	if h.Neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%02dʰ%02dᵐ%02dˢ", sign, hour, min, sec)
}

var (
	dmsRe = regexp.MustCompile(`^\s*([+-]?)(\d+)°(\d{1,2})'(\d{1,2}(?:\.\d+)?)"\s*$`)
	hmsRe = regexp.MustCompile(`^\s*([+-]?)(\d+)ʰ(\d{1,2})ᵐ(\d{1,2}(?:\.\d+)?)ˢ\s*$`)
)

// ParseDMS parses a D°MM'SS" string into a degree Angle.
func ParseDMS(s string) (Angle, error) {
	d, err := parseSexagesimal(dmsRe, s)
	if err != nil {
		return Angle{}, fmt.Errorf("parse DMS %q: %w", s, err)
	}
	return FromDMS(DMS{Neg: d.neg, Deg: d.whole, Min: d.min, Sec: d.sec}), nil
}

// ParseHMS parses an HHʰMMᵐSSˢ string into an hour Angle.
func ParseHMS(s string) (Angle, error) {
	h, err := parseSexagesimal(hmsRe, s)
	if err != nil {
		return Angle{}, fmt.Errorf("parse HMS %q: %w", s, err)
	}
	return FromHMS(HMS{Neg: h.neg, Hour: h.whole, Min: h.min, Sec: h.sec}), nil
}

type sexaFields struct {
	neg   bool
	whole int
	min   int
	sec   float64
}

var errMalformed = fmt.Errorf("malformed sexagesimal value")

func parseSexagesimal(re *regexp.Regexp, s string) (sexaFields, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return sexaFields{}, errMalformed
	}

	whole, err := strconv.Atoi(m[2])
	if err != nil {
		return sexaFields{}, err
	}
	min, err := strconv.Atoi(m[3])
	if err != nil {
		return sexaFields{}, err
	}
	sec, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return sexaFields{}, err
	}
	if min >= 60 || sec >= 60 {
		return sexaFields{}, errMalformed
	}

	return sexaFields{neg: m[1] == "-", whole: whole, min: min, sec: sec}, nil
}
