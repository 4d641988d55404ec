package coords

import (
	"math"

	"github.com/sigfpe8/astrolib/internal/angle"
)

// EquatorialToHorizontal converts hour-angle/declination coordinates to
// azimuth and altitude for an observer latitude.
func EquatorialToHorizontal(eq HADec, lat angle.Angle) Horizontal {
	sinAlt := eq.Dec.Sin()*lat.Sin() + eq.Dec.Cos()*lat.Cos()*eq.HA.Cos()
	alt := angle.Asin(clamp(sinAlt))

	cosAz := (eq.Dec.Sin() - lat.Sin()*sinAlt) / (lat.Cos() * alt.Cos())
	az := angle.Acos(clamp(cosAz)).Deg()

	// acos only reaches [0°,180°]; a westward hour angle places the
	// object west of north.
	if eq.HA.Sin() > 0 {
		az = 360 - az
	}

	return Horizontal{
		Az:  angle.Degrees(az).Norm(),
		Alt: angle.Degrees(alt.Deg()),
	}
}

// HorizontalToEquatorial converts azimuth and altitude back to
// hour-angle/declination coordinates for an observer latitude.
func HorizontalToEquatorial(h Horizontal, lat angle.Angle) HADec {
	sinDec := h.Alt.Sin()*lat.Sin() + h.Alt.Cos()*lat.Cos()*h.Az.Cos()
	dec := angle.Asin(clamp(sinDec))

	cosHA := (h.Alt.Sin() - lat.Sin()*sinDec) / (lat.Cos() * dec.Cos())
	ha := angle.Acos(clamp(cosHA)).Hrs()

	if h.Az.Sin() > 0 {
		ha = 24 - ha
	}

	return HADec{
		HA:  angle.Hours(ha).Norm(),
		Dec: angle.Degrees(dec.Deg()),
	}
}

// EquatorialToRightAscension converts an hour angle to right ascension
// for a local sidereal time: RA = LST - HA (mod 24h).
func EquatorialToRightAscension(eq HADec, lst angle.Angle) RADec {
	return RADec{
		RA:  angle.Hours(lst.Hrs() - eq.HA.Hrs()).Norm(),
		Dec: eq.Dec,
	}
}

// RightAscensionToHourAngle converts a right ascension to an hour angle
// for a local sidereal time: HA = LST - RA (mod 24h).
func RightAscensionToHourAngle(eq RADec, lst angle.Angle) HADec {
	return HADec{
		HA:  angle.Hours(lst.Hrs() - eq.RA.Hrs()).Norm(),
		Dec: eq.Dec,
	}
}

// EquatorialToEcliptic converts right-ascension/declination
// coordinates to ecliptic latitude and longitude using the epoch's
// mean obliquity.
func EquatorialToEcliptic(eq RADec, ep Epoch) Ecliptic {
	eps := ep.Obliquity
	ra := eq.RA.Rad()

	sinLat := eq.Dec.Sin()*eps.Cos() - eq.Dec.Cos()*eps.Sin()*math.Sin(ra)
	lat := angle.Asin(clamp(sinLat))

	y := math.Sin(ra)*eps.Cos() + eq.Dec.Tan()*eps.Sin()
	x := math.Cos(ra)
	lon := angle.Atan2(y, x).To(angle.UnitDegrees).Norm()

	return Ecliptic{
		Lat: angle.Degrees(lat.Deg()),
		Lon: lon,
	}
}

// EclipticToEquatorial converts ecliptic coordinates back to
// right-ascension/declination using the epoch's mean obliquity.
func EclipticToEquatorial(ec Ecliptic, ep Epoch) RADec {
	eps := ep.Obliquity
	lon := ec.Lon.Rad()

	sinDec := ec.Lat.Sin()*eps.Cos() + ec.Lat.Cos()*eps.Sin()*math.Sin(lon)
	dec := angle.Asin(clamp(sinDec))

	y := math.Sin(lon)*eps.Cos() - ec.Lat.Tan()*eps.Sin()
	x := math.Cos(lon)
	ra := angle.Atan2(y, x).To(angle.UnitHours).Norm()

	return RADec{
		RA:  ra,
		Dec: angle.Degrees(dec.Deg()),
	}
}

// EquatorialToGalactic converts right-ascension/declination
// coordinates to galactic latitude and longitude using the epoch's
// galactic pole and node constants.
func EquatorialToGalactic(eq RADec, ep Epoch) Galactic {
	dRA := eq.RA.Rad() - ep.GalPoleRA.Rad()

	sinB := eq.Dec.Cos()*ep.GalPoleDec.Cos()*math.Cos(dRA) +
		eq.Dec.Sin()*ep.GalPoleDec.Sin()
	b := angle.Asin(clamp(sinB))

	y := eq.Dec.Sin() - sinB*ep.GalPoleDec.Sin()
	x := eq.Dec.Cos() * math.Sin(dRA) * ep.GalPoleDec.Cos()
	l := angle.Atan2(y, x).Deg() + ep.GalNodeLon.Deg()

	return Galactic{
		Lat: angle.Degrees(b.Deg()),
		Lon: angle.Degrees(l).Norm(),
	}
}

// GalacticToEquatorial converts galactic coordinates back to
// right-ascension/declination.
func GalacticToEquatorial(g Galactic, ep Epoch) RADec {
	dLon := g.Lon.Rad() - ep.GalNodeLon.Rad()

	sinDec := g.Lat.Cos()*ep.GalPoleDec.Cos()*math.Sin(dLon) +
		g.Lat.Sin()*ep.GalPoleDec.Sin()
	dec := angle.Asin(clamp(sinDec))

	y := g.Lat.Cos() * math.Cos(dLon)
	x := g.Lat.Sin()*ep.GalPoleDec.Cos() -
		g.Lat.Cos()*ep.GalPoleDec.Sin()*math.Sin(dLon)
	ra := angle.Atan2(y, x).Deg() + ep.GalPoleRA.Deg()

	return RADec{
		RA:  angle.Degrees(ra).To(angle.UnitHours).Norm(),
		Dec: angle.Degrees(dec.Deg()),
	}
}
