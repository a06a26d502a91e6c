package solar

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/nathan-osman/go-sunrise"
)

const (
	J2000               = 2451545.0 // Julian date of 2000-01-01 12:00:00 TT
	UnixEpochJulianDate = 2440587.5
	TTMinusTAI          = 32.184 // seconds, fixed
	SecondsPerDay       = 86400  // not including leap seconds
)

// JulianDateUTC returns the Julian date for t on the UTC scale,
// without any leap second correction.
func JulianDateUTC(t time.Time) float64 {
	// go-sunrise works in whole unix seconds
	fraction := float64(t.Nanosecond()) / float64(time.Second) / SecondsPerDay
	return sunrise.TimeToJulianDay(t) + fraction
}

// JulianDateTT returns the Julian date for t on the Terrestrial Time
// scale. TT runs ahead of UTC by TAI-UTC (the leap second count) plus
// the fixed 32.184s TT-TAI offset.
func JulianDateTT(t time.Time) float64 {
	return JulianDateUTC(t) + ttCorrection(t)/SecondsPerDay
}

// JulianOffset returns the number of TT days elapsed since the J2000
// epoch for the UTC instant t. This is the date argument taken by
// every Mars time calculation.
//
// The result steps by 1/86400 wherever the leap second count changes.
func JulianOffset(t time.Time) float64 {
	return JulianDateTT(t) - J2000
}

// TimeFromOffset is the inverse of JulianOffset, returning the UTC
// instant for a J2000 TT offset. The result is rounded to the
// microsecond.
func TimeFromOffset(offset float64) time.Time {
	// first guess ignores leap seconds, then settle on the count in
	// effect at the guessed instant
	guess := offsetToUTC(offset, TTMinusTAI)
	t := offsetToUTC(offset, ttCorrection(guess))
	if c := ttCorrection(t); c != ttCorrection(guess) {
		t = offsetToUTC(offset, c)
	}

	return t
}

// CalendarTT returns the TT calendar date for a J2000 offset, with the
// time of day as the fractional part of day.
func CalendarTT(offset float64) (year int, month time.Month, day float64) {
	y, m, d := julian.JDToCalendar(offset + J2000)
	return y, time.Month(m), d
}

func ttCorrection(t time.Time) float64 {
	return float64(LeapSeconds(t)) + TTMinusTAI
}

// offsetToUTC converts offset to a UTC instant given the TT-UTC
// correction in seconds.
func offsetToUTC(offset, correction float64) time.Time {
	seconds := (offset+J2000-UnixEpochJulianDate)*SecondsPerDay - correction

	t := sunrise.JulianDayToTime(UnixEpochJulianDate + seconds/SecondsPerDay)
	remainder := seconds - float64(t.Unix())
	return t.Add(time.Duration(remainder * float64(time.Second))).Round(time.Microsecond)
}
