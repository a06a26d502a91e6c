package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/marstime"
	"github.com/subtlepseudonym/marstime/config"
	"github.com/subtlepseudonym/marstime/device"
)

type fakeDevice struct {
	label string
	color *device.Color
	calls int
}

func (f *fakeDevice) Transition(c *device.Color, _ time.Duration) error {
	f.calls++
	f.color = c
	return nil
}

func (f *fakeDevice) Status(context.Context) (*device.Color, error) {
	if f.color == nil {
		return nil, errors.New("no state")
	}
	return f.color, nil
}

func (f *fakeDevice) Label() string  { return f.label }
func (f *fakeDevice) String() string { return "fake" }

func TestJobRun(t *testing.T) {
	dev := &fakeDevice{label: "porch"}
	color := device.NewColor(30, 20, 80, 2700)
	Job{Device: dev, Color: color, Transition: time.Minute}.Run()

	assert.Equal(t, 1, dev.calls)
	assert.Equal(t, color, dev.color)
}

func TestScheduleJobs(t *testing.T) {
	cfg := &config.Config{
		Location: marstime.Location{Latitude: -4.5895, Longitude: 137.4417},
		Jobs: []config.Job{
			{Schedule: "@sunset -30m", Device: "porch", Brightness: 80, Transition: "20m"},
			{Schedule: "@sunrise", Device: "porch", Transition: "5m"},
			{Schedule: "0 23 * * *", Device: "desk", Transition: "10s"},
			{Schedule: "@noon", Device: "garage"},
			{Schedule: "@sunset", Device: "desk", Transition: "later"},
		},
	}
	devices := map[string]device.Device{
		"porch": &fakeDevice{label: "porch"},
		"desk":  &fakeDevice{label: "desk"},
	}

	c := cron.New()
	err := scheduleJobs(c, cfg, devices, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorContains(t, err, `job 3: device "garage" is not connected`)
	assert.ErrorContains(t, err, "job 4: parse job transition")

	entries := c.Entries()
	require.Len(t, entries, 3)
	_, ok := entries[0].Schedule.(marstime.EventSchedule)
	assert.True(t, ok)
	_, ok = entries[2].Schedule.(marstime.EventSchedule)
	assert.False(t, ok)
}

func TestSolHandler(t *testing.T) {
	now := time.Date(2019, time.August, 29, 13, 24, 12, 0, time.UTC)
	h := solHandler{
		location: marstime.Location{Latitude: 0, Longitude: 137.44},
		now:      func() time.Time { return now },
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sol", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status solStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Empty(t, status.Error)
	assert.InDelta(t, 7180.05927, status.Offset, 1e-5)
	assert.InDelta(t, 23.004, status.LTST, 1e-3)
	assert.True(t, status.Distance > 1.38 && status.Distance < 1.67, "distance %v", status.Distance)
	assert.InDelta(t, 7179.33138, status.SunriseOffset, 1e-4)
	assert.InDelta(t, 7179.84505, status.SunsetOffset, 1e-4)
	require.NotNil(t, status.Sunrise)
	require.NotNil(t, status.Sunset)
	assert.True(t, status.Sunrise.Before(*status.Sunset))
	assert.True(t, status.Sunset.Before(now))
}

func TestSolHandlerPolar(t *testing.T) {
	h := solHandler{
		location: marstime.Location{Latitude: 85},
		now: func() time.Time {
			return time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
		},
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sol", nil))

	var status solStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Contains(t, status.Error, "below horizon")
	assert.Nil(t, status.Sunrise)
	assert.Greater(t, status.Midnights.Next, status.Midnights.Prior)
}
