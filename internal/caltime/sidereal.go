package caltime

import "github.com/sigfpe8/astrolib/internal/angle"

// Sidereal conversions use the classical 1900.0-referenced polynomial:
// a sidereal constant is evaluated for January 0.0 of the year, then
// advanced through the year at the mean sidereal rate.
const (
	siderealRefJD   = 2415020.0   // JD of epoch 1900 January 0.5
	julianCentury   = 36525.0     // days
	solarToSidereal = 1.002737909 // sidereal seconds per UT second
	siderealGain    = 0.0657098   // sidereal gain per day, hours
)

// siderealConst returns the B constant of the year: the accumulated
// sidereal offset at January 0.0.
func siderealConst(year int) float64 {
	jan0 := DateTime{Date: Date{Year: year - 1, Month: 12, Day: 31}}
	t := (jan0.JulianDay() - siderealRefJD) / julianCentury
	r := 6.6460656 + 2400.051262*t + 0.00002581*t*t
	return 24 - r + float64(24*(year-1900))
}

// UTToGST converts a universal date and time of day to Greenwich
// sidereal time in [0,24) hours.
func UTToGST(date Date, ut Time) angle.Angle {
	t0 := siderealGain*float64(dayOfYear(date)) - siderealConst(date.Year)
	gst := t0 + ut.DecimalHours().Hrs()*solarToSidereal
	return angle.Hours(gst).Norm()
}

// GSTToUT converts a Greenwich sidereal time on a given Greenwich date
// back to universal time in [0,24) hours. About four sidereal minutes
// of each day occur twice; this inverse returns the earlier solution.
func GSTToUT(gst angle.Angle, date Date) angle.Angle {
	t0 := siderealGain*float64(dayOfYear(date)) - siderealConst(date.Year)
	ut := angle.Hours(gst.Hrs() - t0).Norm().Hrs() / solarToSidereal
	return angle.Hours(ut)
}

// GSTToLST shifts Greenwich sidereal time to local sidereal time for an
// observer longitude (east positive).
func GSTToLST(gst, lon angle.Angle) angle.Angle {
	return angle.Hours(gst.Hrs() + lon.Deg()/15).Norm()
}

// LSTToGST shifts local sidereal time back to Greenwich.
func LSTToGST(lst, lon angle.Angle) angle.Angle {
	return angle.Hours(lst.Hrs() - lon.Deg()/15).Norm()
}
