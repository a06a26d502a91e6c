package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/subtlepseudonym/marstime"
	"github.com/subtlepseudonym/marstime/mars"
	"github.com/subtlepseudonym/marstime/solar"
)

// solHandler reports local solar time and the current sol's sunrise
// and sunset at the configured location
type solHandler struct {
	location marstime.Location
	options  []marstime.Option
	now      func() time.Time
}

type solStatus struct {
	Time      time.Time         `json:"time"`
	Offset    float64           `json:"offset"`
	Location  marstime.Location `json:"location"`
	LMST      float64           `json:"lmst"`
	LTST      float64           `json:"ltst"`
	Ls        float64           `json:"ls"`
	Season    string            `json:"season"`
	Distance  float64           `json:"distance_au"`
	Midnights marstime.Bracket  `json:"midnights"`

	Sunrise       *time.Time `json:"sunrise,omitempty"`
	Sunset        *time.Time `json:"sunset,omitempty"`
	SunriseOffset float64    `json:"sunrise_offset,omitempty"`
	SunsetOffset  float64    `json:"sunset_offset,omitempty"`
	Error         string     `json:"error,omitempty"`
}

func (h solHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m := marstime.DefaultModel
	now := h.now().UTC()
	offset := solar.JulianOffset(now)
	west := h.location.West(m)

	status := solStatus{
		Time:     now,
		Offset:   offset,
		Location: h.location,
		LMST:     m.LocalMeanSolarTime(west, offset),
		LTST:     m.LocalTrueSolarTime(west, offset),
		Ls:       mars.AreocentricSolarLongitude(offset),
		Season:   mars.SeasonOf(offset).String(),
		Distance: mars.HeliocentricDistance(offset),
	}

	day, err := marstime.SunriseSunset(m, offset, west, h.location.Latitude, h.options...)
	if err != nil {
		// polar sols still have a solar time worth reporting
		log.Printf("ERR: sol: %s", err)
		status.Error = err.Error()
		if mid, err := marstime.Midnight(m, offset, west, h.location.Latitude); err == nil {
			status.Midnights = mid
		}
	} else {
		sunrise := solar.TimeFromOffset(day.Sunrise)
		sunset := solar.TimeFromOffset(day.Sunset)
		status.Midnights = day.Midnights
		status.Sunrise, status.Sunset = &sunrise, &sunset
		status.SunriseOffset, status.SunsetOffset = day.Sunrise, day.Sunset
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Printf("ERR: encode sol status: %s", err)
	}
}
