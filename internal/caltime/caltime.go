// Package caltime implements the proleptic Julian/Gregorian calendar,
// Julian Day and Unix-epoch conversions, and the civil/sidereal time
// conversion chain.
//
// Dates before 1582-10-15 follow the Julian calendar, dates from
// 1582-10-15 onward the Gregorian calendar. The reform gap
// 1582-10-05 through 1582-10-14 never occurs as a stored value.
// Years at or below zero are astronomical (year 0 = 1 BC).
package caltime

import (
	"fmt"

	"github.com/sigfpe8/astrolib/internal/angle"
)

// Date is a proleptic calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is a civil time of day with whole seconds.
type Time struct {
	Hour int
	Min  int
	Sec  int
}

// DateTime is a civil date and time in a fixed timezone.
type DateTime struct {
	Date Date
	Time Time
	Zone Timezone
}

// String formats as "YYYY-MM-DD", or "YYYY-MM-DD BC" for years at or
// below zero (stored year 0 prints as 1 BC).
func (d Date) String() string {
	if d.Year <= 0 {
		return fmt.Sprintf("%04d-%02d-%02d BC", 1-d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String formats as "HH:MM:SS".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Min, t.Sec)
}

func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Time.String() + " " + dt.Zone.String()
}

// DecimalHours returns the time of day as an hour-valued angle.
func (t Time) DecimalHours() angle.Angle {
	return angle.Hours(float64(t.Hour) + float64(t.Min)/60 + float64(t.Sec)/3600)
}

// TimeOfDay converts an hour angle to a clock time in [0,24), truncating
// each field in turn.
func TimeOfDay(a angle.Angle) Time {
	hms := a.Norm().HMS()
	return Time{Hour: hms.Hour, Min: hms.Min, Sec: int(hms.Sec)}
}

// gregorian reports whether the date falls under the Gregorian rule.
func gregorian(d Date) bool {
	if d.Year != 1582 {
		return d.Year > 1582
	}
	if d.Month != 10 {
		return d.Month > 10
	}
	return d.Day >= 15
}

// IsLeapYear reports whether a year has a February 29. Years before the
// 1582 reform follow the Julian rule (every fourth year), later years
// the Gregorian rule.
func IsLeapYear(year int) bool {
	if year <= 1582 {
		return year%4 == 0
	}
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the number of calendar days that legally occur in
// a month. October 1582 has 21 (days 5-14 were dropped by the reform).
func daysInMonth(year, month int) int {
	if year == 1582 && month == 10 {
		return 21
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// daysInYear returns the number of calendar days in a year; 1582 has 355.
func daysInYear(year int) int {
	if year == 1582 {
		return 355
	}
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// dayOfYear returns the 1-based count of calendar days elapsed at d
// within its year, skipping the reform gap.
func dayOfYear(d Date) int {
	n := monthOffset(d.Year, d.Month)
	if d.Year == 1582 && d.Month == 10 && d.Day >= 15 {
		return n + d.Day - 10
	}
	return n + d.Day
}

func monthOffset(year, month int) int {
	n := 0
	for m := 1; m < month; m++ {
		n += daysInMonth(year, m)
	}
	return n
}

// NextDay returns the calendar day after d, honoring month and year
// boundaries and the October 1582 reform gap.
func NextDay(d Date) Date {
	if d.Year == 1582 && d.Month == 10 && d.Day == 4 {
		return Date{1582, 10, 15}
	}
	last := monthDays[d.Month]
	if d.Month == 2 && IsLeapYear(d.Year) {
		last = 29
	}
	if d.Day < last {
		return Date{d.Year, d.Month, d.Day + 1}
	}
	if d.Month < 12 {
		return Date{d.Year, d.Month + 1, 1}
	}
	return Date{d.Year + 1, 1, 1}
}

// PrevDay returns the calendar day before d.
func PrevDay(d Date) Date {
	if d.Year == 1582 && d.Month == 10 && d.Day == 15 {
		return Date{1582, 10, 4}
	}
	if d.Day > 1 {
		return Date{d.Year, d.Month, d.Day - 1}
	}
	if d.Month > 1 {
		m := d.Month - 1
		last := monthDays[m]
		if m == 2 && IsLeapYear(d.Year) {
			last = 29
		}
		return Date{d.Year, m, last}
	}
	return Date{d.Year - 1, 12, 31}
}

// In returns the same instant expressed in another timezone, rolling the
// calendar day when the shifted time of day leaves [0,24).
func (dt DateTime) In(zone Timezone) DateTime {
	shift := zone.effectiveMinutes() - dt.Zone.effectiveMinutes()
	tod := dt.Time.Hour*60 + dt.Time.Min + shift

	date := dt.Date
	for tod < 0 {
		tod += 24 * 60
		date = PrevDay(date)
	}
	for tod >= 24*60 {
		tod -= 24 * 60
		date = NextDay(date)
	}

	return DateTime{
		Date: date,
		Time: Time{Hour: tod / 60, Min: tod % 60, Sec: dt.Time.Sec},
		Zone: zone,
	}
}

// UT returns the same instant expressed in universal time.
func (dt DateTime) UT() DateTime {
	return dt.In(UTC)
}
