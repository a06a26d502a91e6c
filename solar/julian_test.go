package solar

import (
	"errors"
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianOffsetAtJ2000(t *testing.T) {
	epoch := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

	// J2000 is defined in TT, so noon UTC lands slightly after it
	assert.InDelta(t, (32+TTMinusTAI)/SecondsPerDay, JulianOffset(epoch), 1e-9)
}

func TestJulianOffset(t *testing.T) {
	tests := []struct {
		date, clock string
		want        float64
	}{
		{"2019/08/29", "13:24:12", 7180.05927},
		{"2000/01/06", "00:00:00", 4.50074},
		{"1999/12/31", "12:00:00", -0.99926},
	}

	for _, tt := range tests {
		t.Run(tt.date+" "+tt.clock, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.date, tt.clock)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, JulianOffset(ts), 1e-5)
		})
	}
}

func TestJulianOffsetElapsedDays(t *testing.T) {
	// no leap second between these two instants
	t1 := time.Date(2018, time.March, 3, 4, 5, 6, 0, time.UTC)
	t2 := time.Date(2019, time.November, 20, 21, 22, 23, 500000000, time.UTC)

	elapsed := t2.Sub(t1).Seconds() / SecondsPerDay
	assert.InDelta(t, elapsed, JulianOffset(t2)-JulianOffset(t1), 1e-8)
}

func TestJulianOffsetLeapStep(t *testing.T) {
	before := time.Date(2016, time.December, 31, 23, 59, 59, 0, time.UTC)
	after := time.Date(2017, time.January, 1, 0, 0, 1, 0, time.UTC)

	// two seconds of UTC, three seconds of TT
	assert.InDelta(t, 3.0/SecondsPerDay, JulianOffset(after)-JulianOffset(before), 1e-8)
}

func TestJulianDateUTCMatchesMeeus(t *testing.T) {
	at := time.Date(2019, time.August, 29, 13, 24, 12, 0, time.UTC)
	day := 29 + (13*3600+24*60+12)/float64(SecondsPerDay)

	assert.InDelta(t, julian.CalendarGregorianToJD(2019, 8, day), JulianDateUTC(at), 1e-8)
	assert.InDelta(t, JulianDateUTC(at)+(37+TTMinusTAI)/SecondsPerDay, JulianDateTT(at), 1e-9)
}

func TestTimeFromOffset(t *testing.T) {
	instants := []time.Time{
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1985, time.February, 14, 6, 30, 0, 0, time.UTC),
		time.Date(2019, time.August, 29, 13, 24, 12, 250000000, time.UTC),
		time.Date(2026, time.October, 19, 23, 59, 30, 0, time.UTC),
	}

	for _, want := range instants {
		got := TimeFromOffset(JulianOffset(want))
		assert.WithinDuration(t, want, got, time.Millisecond, "round trip of %s", want)
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestCalendarTT(t *testing.T) {
	year, month, day := CalendarTT(0)
	assert.Equal(t, 2000, year)
	assert.Equal(t, time.January, month)
	assert.InDelta(t, 1.5, day, 1e-9)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2019/08/29", " 13:24:12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.August, 29, 13, 24, 12, 0, time.UTC), ts)

	for _, bad := range [][2]string{
		{"2019-08-29", "13:24:12"},
		{"2019/13/01", "00:00:00"},
		{"2019/08/29", "25:00:00"},
		{"", ""},
	} {
		_, err := ParseTimestamp(bad[0], bad[1])
		assert.True(t, errors.Is(err, ErrMalformedTimestamp), "%q %q: %v", bad[0], bad[1], err)
	}
}
