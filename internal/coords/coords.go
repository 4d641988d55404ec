// Package coords provides celestial coordinate frames and the
// spherical-trigonometry conversions between them, plus precession and
// rise/set solving.
//
// Every frame is an immutable pair of orthogonal angles; conversions
// are pure functions. Epoch-dependent conversions take the epoch
// parameters as an explicit argument.
package coords

import (
	"fmt"

	"github.com/sigfpe8/astrolib/internal/angle"
)

// Geographic is an observer position: latitude north positive,
// longitude east positive.
type Geographic struct {
	Lat angle.Angle
	Lon angle.Angle
}

// Horizontal is an observer-relative position: azimuth measured from
// north through east, altitude above the horizon.
type Horizontal struct {
	Az  angle.Angle
	Alt angle.Angle
}

// HADec is an equatorial position keyed to the observer's meridian:
// hour angle west of the meridian (hours) and declination.
type HADec struct {
	HA  angle.Angle
	Dec angle.Angle
}

// RADec is a catalogued equatorial position: right ascension (hours)
// and declination.
type RADec struct {
	RA  angle.Angle
	Dec angle.Angle
}

// Ecliptic is a position relative to the plane of Earth's orbit.
type Ecliptic struct {
	Lat angle.Angle
	Lon angle.Angle
}

// Galactic is a position relative to the galactic plane.
type Galactic struct {
	Lat angle.Angle
	Lon angle.Angle
}

// String formats as `D°MM'SS" {N|S}, D°MM'SS" {E|W}`.
func (g Geographic) String() string {
	return hemisphere(g.Lat, "N", "S") + ", " + hemisphere(g.Lon, "E", "W")
}

func hemisphere(a angle.Angle, pos, neg string) string {
	d := a.DMS()
	side := pos
	if d.Neg {
		side = neg
		d.Neg = false
	}
	return fmt.Sprintf("%s %s", d, side)
}

// clamp pins a cosine or sine argument into [-1, 1] to absorb floating
// point error near the domain boundary.
func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
