package solar

import (
	"sort"
	"time"
)

// LeapSecond is a single entry in the leap second table: the UTC
// instant at which a new TAI-UTC offset took effect and the cumulative
// offset, in seconds, from that instant onward.
type LeapSecond struct {
	Effective time.Time
	Count     int
}

// leapSeconds is the list of instants at which TAI-UTC changed,
// ordered by time with strictly increasing counts.
//
// Values are taken from the IERS bulletin C record:
// https://www.ietf.org/timezones/data/leap-seconds.list
//
// This table is historical. No leap second has been announced since
// 2017 and none are predicted here; later dates use the final count.
var leapSeconds = []LeapSecond{
	leapSecond(1972, time.January, 10),
	leapSecond(1972, time.July, 11),
	leapSecond(1973, time.January, 12),
	leapSecond(1974, time.January, 13),
	leapSecond(1975, time.January, 14),
	leapSecond(1976, time.January, 15),
	leapSecond(1977, time.January, 16),
	leapSecond(1978, time.January, 17),
	leapSecond(1979, time.January, 18),
	leapSecond(1980, time.January, 19),
	leapSecond(1981, time.July, 20),
	leapSecond(1982, time.July, 21),
	leapSecond(1983, time.July, 22),
	leapSecond(1985, time.July, 23),
	leapSecond(1988, time.January, 24),
	leapSecond(1990, time.January, 25),
	leapSecond(1991, time.January, 26),
	leapSecond(1992, time.July, 27),
	leapSecond(1993, time.July, 28),
	leapSecond(1994, time.July, 29),
	leapSecond(1996, time.January, 30),
	leapSecond(1997, time.July, 31),
	leapSecond(1999, time.January, 32),
	leapSecond(2006, time.January, 33),
	leapSecond(2009, time.January, 34),
	leapSecond(2012, time.July, 35),
	leapSecond(2015, time.July, 36),
	leapSecond(2017, time.January, 37),
}

// leapSecond is shorthand for an entry taking effect at midnight UTC
// on the first of the given month.
func leapSecond(year int, month time.Month, count int) LeapSecond {
	return LeapSecond{
		Effective: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		Count:     count,
	}
}

// LeapSeconds returns TAI-UTC, in whole seconds, at t.
//
// The applicable entry is the latest one whose effective instant is
// strictly before t, so an instant exactly equal to an entry's
// effective time still reports the previous count. Times before
// 1972 report 0 and times after the final entry report its count.
//
// As of go1.14, leap seconds are not supported by the
// time package. This may change in go2
// https://github.com/golang/go/issues/15247
func LeapSeconds(t time.Time) int {
	idx := sort.Search(len(leapSeconds), func(i int) bool {
		return !t.After(leapSeconds[i].Effective)
	})
	if idx == 0 {
		return 0
	}

	return leapSeconds[idx-1].Count
}

// LeapSecondTable returns a copy of the leap second table
func LeapSecondTable() []LeapSecond {
	table := make([]LeapSecond, len(leapSeconds))
	copy(table, leapSeconds)
	return table
}

// LastLeapSecond returns the final known table entry. Any instant
// after it is reported with its count.
func LastLeapSecond() LeapSecond {
	return leapSeconds[len(leapSeconds)-1]
}
