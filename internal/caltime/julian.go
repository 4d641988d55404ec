package caltime

import "math"

// gregorianJDN is the Julian Day Number threshold of the calendar
// reform: day numbers at or above it decode under the Gregorian rule.
const gregorianJDN = 2299161

// JulianDay converts the date and time fields to a Julian Day using the
// Meeus algorithm, applying the Gregorian century correction only from
// 1582-10-15 onward. The attached zone is not consulted; convert to UT
// first when an absolute instant is wanted.
func (dt DateTime) JulianDay() float64 {
	y := float64(dt.Date.Year)
	m := float64(dt.Date.Month)
	if m <= 2 {
		y--
		m += 12
	}

	var b float64
	if gregorian(dt.Date) {
		a := math.Floor(y / 100)
		b = 2 - a + math.Floor(a/4)
	}

	dayFrac := (float64(dt.Time.Hour) +
		float64(dt.Time.Min)/60 +
		float64(dt.Time.Sec)/3600) / 24

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(dt.Date.Day) + dayFrac + b - 1524.5
}

// FromJulianDay converts a Julian Day back to a civil date and time in
// UTC, branching on the reform threshold to pick the calendar rule.
// The time of day is recovered to the nearest whole second.
func FromJulianDay(jd float64) DateTime {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	// Civil times carry whole seconds, so the day fraction is recovered
	// to the nearest second before splitting the fields. A fraction
	// within half a second of midnight rounds into the next day.
	secs := int(math.Floor(f*secondsPerDay + 0.5))
	if secs == secondsPerDay {
		secs = 0
		z++
	}

	a := z
	if z >= gregorianJDN {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := int(b - d - math.Floor(30.6001*e))

	month := int(e - 1)
	if month > 12 {
		month -= 12
	}

	year := int(c) - 4715
	if month > 2 {
		year = int(c) - 4716
	}

	hour := secs / 3600
	min := secs % 3600 / 60
	sec := secs % 60

	return DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: Time{Hour: hour, Min: min, Sec: sec},
		Zone: UTC,
	}
}

// Weekday returns the day of the week with 0 = Sunday, from
// floor(JD + 1.5) mod 7 of the date at 0h.
func (d Date) Weekday() int {
	jd := DateTime{Date: d}.JulianDay()
	w := int(math.Floor(jd+1.5)) % 7
	if w < 0 {
		w += 7
	}
	return w
}

// Easter returns the date of Easter Sunday for a Gregorian-calendar
// year, by Butcher's sequence of modular residues.
func Easter(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return Date{Year: year, Month: month, Day: day}
}
