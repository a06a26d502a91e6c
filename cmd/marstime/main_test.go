package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/marstime/solar"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })

	err := cmdSet.DispatchWithArgs(context.Background(), "marstime", args...)
	return strings.TrimSpace(buf.String()), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"julian", []string{"julian", "2000/01/01", "12:00:00"}, "2451545.000000,2451545.000743,0.000743"},
		{"leap at entry", []string{"leap", "1999/01/01", "00:00:00"}, "31"},
		{"leap after entry", []string{"leap", "1999/01/01", "00:00:01"}, "32"},
		{"calendar", []string{"calendar", "--precision=1", "2000/01/01", "12:00:00"}, "2000,1,1.5"},
		{"longitude", []string{"longitude", "137.44"}, "222.560000"},
		{"negative longitude", []string{"longitude", "--", "-90"}, "90.000000"},
		{"subsolar", []string{"subsolar", "--precision=0", "2000/01/01", "12:00:00"}, "39"},
		{"midnight", []string{"midnight", "--precision=3", "2000/01/01", "12:00:00", "0"}, "-0.607,0.393"},
		{"sunrise", []string{"sunrise", "--precision=3", "2000/01/01", "12:00:00", "0", "0"}, "-0.367,0.147"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolarTimeCommands(t *testing.T) {
	for _, cmd := range []string{"lmst", "ltst"} {
		got, err := run(t, cmd, "--precision=1", "2000/01/01", "12:00:00", "0")
		require.NoError(t, err)
		assert.Regexp(t, `^\d{1,2}\.\d$`, got)
	}
}

func TestSeasonCommand(t *testing.T) {
	got, err := run(t, "season", "--precision=1", "2000/01/01", "12:00:00")
	require.NoError(t, err)
	assert.Equal(t, "274.4,winter", got)
}

func TestSunriseUTC(t *testing.T) {
	got, err := run(t, "sunrise", "--utc", "2000/01/01", "12:00:00", "0", "0")
	require.NoError(t, err)

	sunrise, sunset, ok := strings.Cut(got, ",")
	require.True(t, ok, got)
	assert.True(t, strings.HasPrefix(sunrise, "2000-01-01T03:10:"), sunrise)
	assert.True(t, strings.HasPrefix(sunset, "2000-01-01T15:30:"), sunset)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "julian", "2000-01-01", "12:00:00")
	assert.True(t, errors.Is(err, solar.ErrMalformedTimestamp), "%v", err)

	_, err = run(t, "ltst", "2000/01/01", "12:00:00", "east")
	assert.ErrorContains(t, err, "parse longitude")

	_, err = run(t, "sunrise", "2000/01/01", "12:00:00", "0", "north")
	assert.ErrorContains(t, err, "parse latitude")

	_, err = run(t, "leap", "2000/01/01")
	assert.Error(t, err)
}
