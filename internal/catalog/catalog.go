// Package catalog holds a small static table of bright stars used as
// demo targets. Positions are J2000.
package catalog

import (
	"strings"

	"github.com/sigfpe8/astrolib/internal/angle"
	"github.com/sigfpe8/astrolib/internal/coords"
)

// Star is a named star with its catalogued equatorial position and
// apparent visual magnitude (lower = brighter).
type Star struct {
	Name string
	Pos  coords.RADec
	Mag  float64
}

// Stars lists the targets, brightest first.
var Stars = []Star{
	{"Sirius", star(6.752481, -16.716116), -1.46},
	{"Canopus", star(6.399197, -52.695661), -0.74},
	{"Arcturus", star(14.261020, 19.182410), -0.05},
	{"Vega", star(18.615640, 38.783690), 0.03},
	{"Capella", star(5.278156, 45.997991), 0.08},
	{"Rigel", star(5.242298, -8.201638), 0.13},
	{"Procyon", star(7.655033, 5.224993), 0.34},
	{"Betelgeuse", star(5.919529, 7.407064), 0.50},
	{"Altair", star(19.846388, 8.868322), 0.76},
	{"Aldebaran", star(4.598677, 16.509302), 0.85},
	{"Antares", star(16.490128, -26.432003), 0.96},
	{"Spica", star(13.419883, -11.161322), 0.97},
	{"Pollux", star(7.755264, 28.026199), 1.14},
	{"Fomalhaut", star(22.960838, -29.622237), 1.16},
	{"Deneb", star(20.690532, 45.280339), 1.25},
	{"Regulus", star(10.139532, 11.967209), 1.35},
	{"Castor", star(7.576634, 31.888276), 1.58},
	{"Polaris", star(2.530193, 89.264109), 2.02},
	{"Mizar", star(13.398747, 54.925362), 2.23},
	{"Kochab", star(14.845090, 74.155504), 2.08},
}

// Find returns the catalogue entry with the given name, ignoring case.
func Find(name string) (Star, bool) {
	for _, s := range Stars {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Star{}, false
}

func star(raHours, decDeg float64) coords.RADec {
	return coords.RADec{RA: angle.Hours(raHours), Dec: angle.Degrees(decDeg)}
}
