package coords

import "github.com/sigfpe8/astrolib/internal/angle"

// Precess applies the first-order precession correction to an
// equatorial position, carrying it from one epoch to another (both as
// decimal years). The annual rates are evaluated at the starting
// epoch's century offset from 1900.0.
//
// The right-ascension rate carries a sin(RA)·tan(Dec) term, so the
// correction degrades near the celestial poles; results there are
// returned unclamped.
func Precess(eq RADec, fromYear, toYear float64) RADec {
	t := (fromYear - 1900) / 100
	m := 3.07234 + 0.00186*t // seconds of time per year
	n := 20.0468 - 0.0085*t  // arcseconds per year
	years := toYear - fromYear

	dRA := (m + n/15*eq.RA.Sin()*eq.Dec.Tan()) * years // seconds of time
	dDec := n * eq.RA.Cos() * years                    // arcseconds

	return RADec{
		RA:  angle.Hours(eq.RA.Hrs() + dRA/3600).Norm(),
		Dec: angle.Degrees(eq.Dec.Deg() + dDec/3600),
	}
}
