package ui

import (
	"fmt"
	"io"

	"github.com/sigfpe8/astrolib/internal/angle"
	"github.com/sigfpe8/astrolib/internal/caltime"
	"github.com/sigfpe8/astrolib/internal/catalog"
	"github.com/sigfpe8/astrolib/internal/coords"
	"github.com/sigfpe8/astrolib/internal/locations"
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Report is one fully computed almanac page: the clock chain for a site
// and the sky position of a target star at one instant.
type Report struct {
	Site locations.Location
	Star catalog.Star

	LCT     caltime.DateTime
	UT      caltime.DateTime
	JD      float64
	Unix    int64
	Weekday string
	GST     caltime.Time
	LST     caltime.Time

	Horiz    coords.Horizontal
	Ecliptic coords.Ecliptic
	Galactic coords.Galactic

	// Rise/set in the site's civil time; RiseSetErr is set instead
	// when the star never crosses the horizon there.
	RiseSet    coords.RiseSetTimes
	RiseSetErr error
}

// BuildReport computes the almanac page for a site and star at a given
// universal instant, under the given epoch constants.
func BuildReport(site locations.Location, star catalog.Star, ut caltime.DateTime, epoch coords.Epoch) Report {
	lct := ut.In(site.Zone)
	gst := caltime.UTToGST(ut.Date, ut.Time)
	lst := caltime.GSTToLST(gst, site.Coord.Lon)

	ha := coords.RightAscensionToHourAngle(star.Pos, lst)
	horiz := coords.EquatorialToHorizontal(ha, site.Coord.Lat)

	rs, rsErr := coords.RiseSet(star.Pos, site.Coord, lct.Date, site.Zone)

	return Report{
		Site:       site,
		Star:       star,
		LCT:        lct,
		UT:         ut,
		JD:         ut.JulianDay(),
		Unix:       ut.Unix(),
		Weekday:    weekdayNames[ut.Date.Weekday()],
		GST:        caltime.TimeOfDay(gst),
		LST:        caltime.TimeOfDay(lst),
		Horiz:      horiz,
		Ecliptic:   coords.EquatorialToEcliptic(star.Pos, epoch),
		Galactic:   coords.EquatorialToGalactic(star.Pos, epoch),
		RiseSet:    rs,
		RiseSetErr: rsErr,
	}
}

// WriteSummary writes the report as plain text, one field per line.
func WriteSummary(w io.Writer, r Report) {
	fmt.Fprintf(w, "Site      %s, %s  (%s, zone %s)\n", r.Site.Name, r.Site.Country, r.Site.Coord, r.Site.Zone)
	fmt.Fprintf(w, "Local     %s %s  (%s)\n", r.LCT.Date, r.LCT.Time, r.Weekday)
	fmt.Fprintf(w, "UT        %s %s\n", r.UT.Date, r.UT.Time)
	fmt.Fprintf(w, "JD        %.5f   Unix %d\n", r.JD, r.Unix)
	fmt.Fprintf(w, "GST       %s   LST %s\n", r.GST, r.LST)
	fmt.Fprintf(w, "Star      %s  (mag %.2f)\n", r.Star.Name, r.Star.Mag)
	fmt.Fprintf(w, "RA/Dec    %s  %s\n", r.Star.Pos.RA.HMS(), r.Star.Pos.Dec.DMS())
	fmt.Fprintf(w, "Az/Alt    %s  %s\n", r.Horiz.Az.DMS(), r.Horiz.Alt.DMS())
	fmt.Fprintf(w, "Ecliptic  lat %s  lon %s\n", r.Ecliptic.Lat, r.Ecliptic.Lon)
	fmt.Fprintf(w, "Galactic  b %s  l %s\n", r.Galactic.Lat, r.Galactic.Lon)

	switch {
	case r.RiseSetErr != nil:
		fmt.Fprintf(w, "Rise/Set  %v\n", r.RiseSetErr)
	default:
		fmt.Fprintf(w, "Rise      %s %s  az %s\n", r.RiseSet.Rise.Date, r.RiseSet.Rise.Time, r.RiseSet.RiseAz.DMS())
		fmt.Fprintf(w, "Set       %s %s  az %s\n", r.RiseSet.Set.Date, r.RiseSet.Set.Time, r.RiseSet.SetAz.DMS())
	}
}

// altitudeGlyph classifies an altitude for display.
func altitudeGlyph(alt angle.Angle) string {
	switch {
	case alt.Deg() >= 30:
		return "●" // high
	case alt.Deg() > 0:
		return "◐" // low
	default:
		return "○" // below horizon
	}
}
