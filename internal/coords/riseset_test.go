package coords

import (
	"errors"
	"math"
	"testing"

	"github.com/sigfpe8/astrolib/internal/angle"
	"github.com/sigfpe8/astrolib/internal/caltime"
)

func TestRiseSet(t *testing.T) {
	obs := Geographic{Lat: angle.Degrees(38.25), Lon: angle.Degrees(-78.3)}
	edt := caltime.MustTimezone(-5, 0, true)
	target := RADec{
		RA:  angle.FromHMS(angle.HMS{Hour: 16, Min: 14, Sec: 42}),
		Dec: angle.FromDMS(angle.DMS{Deg: 25, Min: 57, Sec: 41}),
	}

	got, err := RiseSet(target, obs, caltime.Date{Year: 2015, Month: 6, Day: 6}, edt)
	if err != nil {
		t.Fatalf("RiseSet: %v", err)
	}

	wantRise := caltime.DateTime{
		Date: caltime.Date{Year: 2015, Month: 6, Day: 6},
		Time: caltime.Time{Hour: 16, Min: 57, Sec: 49},
		Zone: edt,
	}
	if d := got.Rise.Unix() - wantRise.Unix(); d > 5 || d < -5 {
		t.Errorf("rise = %v, want %v (±5s)", got.Rise, wantRise)
	}

	// The set crosses midnight and lands on the next civil day.
	wantSet := caltime.DateTime{
		Date: caltime.Date{Year: 2015, Month: 6, Day: 7},
		Time: caltime.Time{Hour: 7, Min: 59, Sec: 51},
		Zone: edt,
	}
	if d := got.Set.Unix() - wantSet.Unix(); d > 5 || d < -5 {
		t.Errorf("set = %v, want %v (±5s)", got.Set, wantSet)
	}
	if got.Set.Date != wantSet.Date {
		t.Errorf("set date = %v, want %v", got.Set.Date, wantSet.Date)
	}

	// Horizon azimuths: rising in the northeast, setting mirrored in
	// the northwest.
	wantAz := angle.Acos(target.Dec.Sin() / obs.Lat.Cos()).Deg()
	if math.Abs(got.RiseAz.Deg()-wantAz) > 1e-6 {
		t.Errorf("rise azimuth = %v°, want %v°", got.RiseAz.Deg(), wantAz)
	}
	if math.Abs(got.SetAz.Deg()-(360-wantAz)) > 1e-6 {
		t.Errorf("set azimuth = %v°, want %v°", got.SetAz.Deg(), 360-wantAz)
	}
}

func TestRiseSetNeverRises(t *testing.T) {
	obs := Geographic{Lat: angle.Degrees(45), Lon: angle.Degrees(-100)}
	target := RADec{
		RA:  angle.FromHMS(angle.HMS{Hour: 6}),
		Dec: angle.FromDMS(angle.DMS{Neg: true, Deg: 60}),
	}

	_, err := RiseSet(target, obs, caltime.Date{Year: 2015, Month: 6, Day: 6}, caltime.UTC)
	if !errors.Is(err, ErrNeverRises) {
		t.Errorf("error = %v, want ErrNeverRises", err)
	}
}

func TestRiseSetSouthernCircumpolar(t *testing.T) {
	// A far-southern target is circumpolar from mid-southern
	// latitudes, not hidden.
	obs := Geographic{Lat: angle.Degrees(-45), Lon: angle.Degrees(170)}
	target := RADec{
		RA:  angle.FromHMS(angle.HMS{Hour: 6}),
		Dec: angle.FromDMS(angle.DMS{Neg: true, Deg: 60}),
	}

	_, err := RiseSet(target, obs, caltime.Date{Year: 2015, Month: 6, Day: 6}, caltime.UTC)
	if !errors.Is(err, ErrNeverSets) {
		t.Errorf("error = %v, want ErrNeverSets", err)
	}
}

func TestRiseSetSouthernNeverRises(t *testing.T) {
	// The mirror case: a far-northern target never clears a southern
	// observer's horizon.
	obs := Geographic{Lat: angle.Degrees(-45), Lon: angle.Degrees(170)}
	target := RADec{RA: angle.Hours(2.5), Dec: angle.Degrees(89.264)}

	_, err := RiseSet(target, obs, caltime.Date{Year: 2015, Month: 6, Day: 6}, caltime.UTC)
	if !errors.Is(err, ErrNeverRises) {
		t.Errorf("error = %v, want ErrNeverRises", err)
	}
}

func TestRiseSetNeverSets(t *testing.T) {
	// A far-northern target is circumpolar from mid-northern latitudes.
	obs := Geographic{Lat: angle.Degrees(52), Lon: angle.Degrees(0)}
	target := RADec{RA: angle.Hours(2.5), Dec: angle.Degrees(89.264)}

	_, err := RiseSet(target, obs, caltime.Date{Year: 2024, Month: 1, Day: 1}, caltime.UTC)
	if !errors.Is(err, ErrNeverSets) {
		t.Errorf("error = %v, want ErrNeverSets", err)
	}
}

func TestRiseSetEquatorialTarget(t *testing.T) {
	// An object on the celestial equator rises due east and sets due
	// west, up for half the sidereal day. Near the September equinox
	// both crossings fall within the same UT day, so the interval is
	// free of the midnight-crossing civil-day adjustment.
	obs := Geographic{Lat: angle.Degrees(40), Lon: angle.Degrees(0)}
	target := RADec{RA: angle.Hours(12), Dec: angle.Degrees(0)}

	got, err := RiseSet(target, obs, caltime.Date{Year: 2024, Month: 9, Day: 22}, caltime.UTC)
	if err != nil {
		t.Fatalf("RiseSet: %v", err)
	}

	if math.Abs(got.RiseAz.Deg()-90) > 1e-6 {
		t.Errorf("rise azimuth = %v°, want 90°", got.RiseAz.Deg())
	}
	if math.Abs(got.SetAz.Deg()-270) > 1e-6 {
		t.Errorf("set azimuth = %v°, want 270°", got.SetAz.Deg())
	}

	rate := 1.002737909
	up := got.Set.Unix() - got.Rise.Unix()
	half := int64(12 * 3600 / rate)
	if d := up - half; d > 5 || d < -5 {
		t.Errorf("above horizon for %ds, want ~%ds", up, half)
	}
}
