package coords

import (
	"errors"

	"github.com/sigfpe8/astrolib/internal/angle"
	"github.com/sigfpe8/astrolib/internal/caltime"
)

// Rise/set solver errors. Both are recoverable: the geometry simply has
// no horizon crossing for the observer and declination given.
var (
	ErrNeverRises = errors.New("object never rises at this latitude")
	ErrNeverSets  = errors.New("object never sets at this latitude")
)

// RiseSetTimes holds the solved horizon crossings of one object for one
// observer and date, in the observer's civil time.
type RiseSetTimes struct {
	Rise caltime.DateTime
	Set  caltime.DateTime

	// Horizon azimuths of the two crossings.
	RiseAz angle.Angle
	SetAz  angle.Angle
}

// RiseSet computes the civil rise and set times of an equatorial target
// for an observer on a given local calendar date. The hour-angle
// magnitude at the horizon comes from cos(H) = -tan(lat)·tan(dec); the
// crossings at RA∓H are carried through the sidereal-to-civil chain
// (LST→GST→UT→LCT). A set that lands numerically before its rise has
// crossed midnight, and its date is advanced one civil day.
func RiseSet(eq RADec, obs Geographic, date caltime.Date, zone caltime.Timezone) (RiseSetTimes, error) {
	cosAz := eq.Dec.Sin() / obs.Lat.Cos()
	cosH := -obs.Lat.Tan() * eq.Dec.Tan()

	// cosH > 1 puts the target too close to the opposite celestial
	// pole to clear the horizon; cosH < -1 makes it circumpolar. Both
	// tests hold for either hemisphere.
	switch {
	case cosH > 1:
		return RiseSetTimes{}, ErrNeverRises
	case cosH < -1:
		return RiseSetTimes{}, ErrNeverSets
	}

	h := angle.Acos(cosH).Hrs()
	ra := eq.RA.Hrs()

	rise := civilFromLST(angle.Hours(ra-h).Norm(), obs.Lon, date, zone)
	set := civilFromLST(angle.Hours(ra+h).Norm(), obs.Lon, date, zone)

	if set.Unix() < rise.Unix() {
		set.Date = caltime.NextDay(set.Date)
	}

	// The set crossing mirrors the rise crossing about the meridian.
	riseAz := angle.Acos(clamp(cosAz)).To(angle.UnitDegrees)
	return RiseSetTimes{
		Rise:   rise,
		Set:    set,
		RiseAz: riseAz.Norm(),
		SetAz:  riseAz.Neg().Norm(),
	}, nil
}

// civilFromLST converts a local sidereal time on a date to the
// observer's civil time.
func civilFromLST(lst angle.Angle, lon angle.Angle, date caltime.Date, zone caltime.Timezone) caltime.DateTime {
	gst := caltime.LSTToGST(lst, lon)
	ut := caltime.GSTToUT(gst, date)
	dt := caltime.DateTime{Date: date, Time: caltime.TimeOfDay(ut), Zone: caltime.UTC}
	return dt.In(zone)
}
