package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeapSeconds(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"before table", time.Date(1970, time.August, 29, 13, 24, 12, 0, time.UTC), 0},
		{"first entry is not yet in effect", time.Date(1972, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
		{"just after first entry", time.Date(1972, time.January, 1, 0, 0, 1, 0, time.UTC), 10},
		{"mid eighties", time.Date(1984, time.August, 29, 13, 24, 12, 0, time.UTC), 22},
		{"exactly 1999", time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC), 31},
		{"one nanosecond into 1999", time.Date(1999, time.January, 1, 0, 0, 0, 1, time.UTC), 32},
		{"j2000", time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC), 32},
		{"2019", time.Date(2019, time.August, 29, 13, 24, 12, 0, time.UTC), 37},
		{"beyond table saturates", time.Date(2040, time.March, 1, 0, 0, 0, 0, time.UTC), 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LeapSeconds(tt.at))
		})
	}
}

func TestLeapSecondsAtEntries(t *testing.T) {
	previous := 0
	for _, entry := range LeapSecondTable() {
		assert.Equal(t, previous, LeapSeconds(entry.Effective), "at %s", entry.Effective)
		assert.Equal(t, entry.Count, LeapSeconds(entry.Effective.Add(time.Second)), "after %s", entry.Effective)
		previous = entry.Count
	}
}

func TestLeapSecondsNonDecreasing(t *testing.T) {
	start := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	previous := LeapSeconds(start)
	for at := start; at.Before(end); at = at.Add(17 * 24 * time.Hour) {
		count := LeapSeconds(at)
		require.GreaterOrEqual(t, count, previous, "at %s", at)
		previous = count
	}
}

func TestLeapSecondTableIsCopy(t *testing.T) {
	table := LeapSecondTable()
	require.Len(t, table, 28)

	table[0].Count = 1000
	assert.Equal(t, 10, LeapSecondTable()[0].Count)

	last := LastLeapSecond()
	assert.Equal(t, 37, last.Count)
	assert.Equal(t, time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC), last.Effective)
}
