// Package locations holds a static table of named observing sites used
// as sample data by the demo surfaces.
package locations

import (
	"strings"

	"github.com/sigfpe8/astrolib/internal/angle"
	"github.com/sigfpe8/astrolib/internal/caltime"
	"github.com/sigfpe8/astrolib/internal/coords"
)

// Location is a named observing site with its standard timezone.
type Location struct {
	Name    string
	Country string
	Coord   coords.Geographic
	Zone    caltime.Timezone
}

// Table lists the sample sites, roughly west to east.
var Table = []Location{
	{"Honolulu", "USA", site(21.3069, -157.8583), caltime.MustTimezone(-10, 0, false)},
	{"San Francisco", "USA", site(37.7749, -122.4194), caltime.MustTimezone(-8, 0, false)},
	{"Mexico City", "Mexico", site(19.4326, -99.1332), caltime.MustTimezone(-6, 0, false)},
	{"New York", "USA", site(40.7128, -74.0060), caltime.MustTimezone(-5, 0, false)},
	{"Rio de Janeiro", "Brazil", site(-22.9068, -43.1729), caltime.MustTimezone(-3, 0, false)},
	{"Greenwich", "UK", site(51.4769, 0.0005), caltime.UTC},
	{"Madrid", "Spain", site(40.4168, -3.7038), caltime.MustTimezone(1, 0, false)},
	{"Cape Town", "South Africa", site(-33.9249, 18.4241), caltime.MustTimezone(2, 0, false)},
	{"Athens", "Greece", site(37.9838, 23.7275), caltime.MustTimezone(2, 0, false)},
	{"Mumbai", "India", site(19.0760, 72.8777), caltime.MustTimezone(5, 30, false)},
	{"Kathmandu", "Nepal", site(27.7172, 85.3240), caltime.MustTimezone(5, 45, false)},
	{"Singapore", "Singapore", site(1.3521, 103.8198), caltime.MustTimezone(8, 0, false)},
	{"Tokyo", "Japan", site(35.6762, 139.6503), caltime.MustTimezone(9, 0, false)},
	{"Sydney", "Australia", site(-33.8688, 151.2093), caltime.MustTimezone(10, 0, false)},
	{"Auckland", "New Zealand", site(-36.8509, 174.7645), caltime.MustTimezone(12, 0, false)},
}

// Find returns the table entry with the given name, ignoring case.
func Find(name string) (Location, bool) {
	for _, loc := range Table {
		if strings.EqualFold(loc.Name, name) {
			return loc, true
		}
	}
	return Location{}, false
}

func site(lat, lon float64) coords.Geographic {
	return coords.Geographic{Lat: angle.Degrees(lat), Lon: angle.Degrees(lon)}
}
