package coords

import "github.com/sigfpe8/astrolib/internal/angle"

// Epoch carries the orientation constants an ecliptic or galactic
// conversion depends on. It is passed explicitly so conversions stay
// reentrant; callers needing a custom equinox build their own value.
type Epoch struct {
	Name string

	// Obliquity is the mean obliquity of the ecliptic.
	Obliquity angle.Angle

	// GalPoleRA and GalPoleDec locate the north galactic pole in
	// equatorial coordinates.
	GalPoleRA  angle.Angle
	GalPoleDec angle.Angle

	// GalNodeLon is the galactic longitude of the ascending node of
	// the galactic plane on the equator.
	GalNodeLon angle.Angle
}

// B1950 holds the classical FK4 constants.
var B1950 = Epoch{
	Name:       "B1950.0",
	Obliquity:  angle.Degrees(23.4457889),
	GalPoleRA:  angle.Degrees(192.25),
	GalPoleDec: angle.Degrees(27.4),
	GalNodeLon: angle.Degrees(33.0),
}

// J2000 holds the FK5/IAU constants; it is the default epoch throughout
// this module.
var J2000 = Epoch{
	Name:       "J2000.0",
	Obliquity:  angle.Degrees(23.4392911),
	GalPoleRA:  angle.Degrees(192.85948),
	GalPoleDec: angle.Degrees(27.12825),
	GalNodeLon: angle.Degrees(32.93192),
}
