package caltime

// Unix-epoch conversions count whole calendar days to or from
// 1970-01-01, then add the seconds within the day. All arithmetic is
// integral, so the conversions invert bit-exactly over the full
// supported year range, BC included.

const secondsPerDay = 86400

// daysFromEpoch counts calendar days from 1970-01-01 to d; negative for
// earlier dates.
func daysFromEpoch(d Date) int64 {
	var days int64
	if d.Year >= 1970 {
		for y := 1970; y < d.Year; y++ {
			days += int64(daysInYear(y))
		}
	} else {
		for y := d.Year; y < 1970; y++ {
			days -= int64(daysInYear(y))
		}
	}
	return days + int64(dayOfYear(d)) - 1
}

// epochPlusDays walks the calendar n days forward (or backward) from
// 1970-01-01.
func epochPlusDays(n int64) Date {
	year := 1970
	if n >= 0 {
		for n >= int64(daysInYear(year)) {
			n -= int64(daysInYear(year))
			year++
		}
	} else {
		for n < 0 {
			year--
			n += int64(daysInYear(year))
		}
	}

	month := 1
	for n >= int64(daysInMonth(year, month)) {
		n -= int64(daysInMonth(year, month))
		month++
	}

	day := int(n) + 1
	if year == 1582 && month == 10 && day > 4 {
		day += 10
	}

	return Date{Year: year, Month: month, Day: day}
}

// Unix returns the instant as signed seconds since
// 1970-01-01T00:00:00Z, applying the attached timezone first.
func (dt DateTime) Unix() int64 {
	ut := dt.UT()
	return daysFromEpoch(ut.Date)*secondsPerDay +
		int64(ut.Time.Hour)*3600 +
		int64(ut.Time.Min)*60 +
		int64(ut.Time.Sec)
}

// FromUnix converts seconds since the Unix epoch to a civil date and
// time in UTC.
func FromUnix(sec int64) DateTime {
	days := sec / secondsPerDay
	rem := sec % secondsPerDay
	if rem < 0 {
		rem += secondsPerDay
		days--
	}

	return DateTime{
		Date: epochPlusDays(days),
		Time: Time{
			Hour: int(rem / 3600),
			Min:  int(rem % 3600 / 60),
			Sec:  int(rem % 60),
		},
		Zone: UTC,
	}
}
