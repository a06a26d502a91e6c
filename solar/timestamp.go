package solar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006/01/02"
	ClockLayout     = "15:04:05"
	TimestampLayout = DateLayout + " " + ClockLayout
)

var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ParseTimestamp parses a calendar date (YYYY/MM/DD) and a time of day
// (HH:MM:SS). The result is always interpreted as UTC.
func ParseTimestamp(date, clock string) (time.Time, error) {
	value := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	t, err := time.ParseInLocation(TimestampLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %s", ErrMalformedTimestamp, value, err)
	}

	return t, nil
}
