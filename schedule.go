package marstime

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/subtlepseudonym/marstime/bisect"
	"github.com/subtlepseudonym/marstime/mars"
	"github.com/subtlepseudonym/marstime/solar"
)

// maxSearchSols bounds the search for the next event, roughly one Mars
// year. A location that has no sunrise for a whole year never will.
const maxSearchSols = 669

const (
	// eventTolerance is the precision, in days, of scheduled sunrises
	// and sunsets whatever the solver tolerance.
	eventTolerance = 1e-8

	// settleWindow covers the difference between two solves of the
	// same event. An event within it of now has already fired.
	settleWindow = 5 * time.Millisecond
)

var ErrUnknownEvent = errors.New("unknown sol event")

// Event is a daily solar event
type Event int

const (
	EventSunrise Event = iota
	EventSunset
	EventNoon
	EventMidnight
)

var eventNames = map[Event]string{
	EventSunrise:  "sunrise",
	EventSunset:   "sunset",
	EventNoon:     "noon",
	EventMidnight: "midnight",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// ParseEvent parses a schedule prefix such as "@sunset"
func ParseEvent(s string) (Event, error) {
	if name, ok := strings.CutPrefix(s, "@"); ok {
		for event, eventName := range eventNames {
			if strings.EqualFold(name, eventName) {
				return event, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
}

// EventSchedule fires at a sol event, shifted by Offset, at Location
//
// This implements robfig/cron.Schedule
type EventSchedule struct {
	Location Location      `json:"location"`
	Event    Event         `json:"event"`
	Offset   time.Duration `json:"offset"`

	// Model defaults to DefaultModel when nil
	Model   Model    `json:"-"`
	Options []Option `json:"-"`
}

// ParseSchedule parses specs of the form "@sunset" or "@sunrise -30m".
// The offset is any value accepted by time.ParseDuration.
func ParseSchedule(spec string, location Location, opts ...Option) (EventSchedule, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return EventSchedule{}, fmt.Errorf("%w: empty schedule", ErrUnknownEvent)
	}
	if len(fields) > 2 {
		return EventSchedule{}, fmt.Errorf("schedule %q: expected event and optional offset", spec)
	}

	event, err := ParseEvent(fields[0])
	if err != nil {
		return EventSchedule{}, err
	}

	var offset time.Duration
	if len(fields) > 1 {
		offset, err = time.ParseDuration(fields[1])
		if err != nil {
			return EventSchedule{}, fmt.Errorf("parse %s offset: %w", event, err)
		}
	}

	return EventSchedule{
		Location: location,
		Event:    event,
		Offset:   offset,
		Options:  opts,
	}, nil
}

// Next returns the first time strictly after now at which the event,
// plus the schedule's offset, occurs. Sols without a horizon crossing
// are skipped. If no event is found the zero time is returned, which
// cron treats as never.
func (s EventSchedule) Next(now time.Time) time.Time {
	m := s.Model
	if m == nil {
		m = DefaultModel
	}
	west := s.Location.West(m)
	start := solar.JulianOffset(now.Add(-s.Offset))

	skipped := 0
	for sol := 0; sol < maxSearchSols; sol++ {
		probe := start + float64(sol)*mars.SolLength

		at, err := s.occurrence(m, probe, west)
		if errors.Is(err, ErrNoHorizonCrossing) {
			skipped++
			continue
		}
		if err != nil {
			log.Printf("ERR: %s at %s: %s", s.Event, s.Location, err)
			return time.Time{}
		}

		next := solar.TimeFromOffset(at).Add(s.Offset)
		if !next.After(now.Add(settleWindow)) {
			continue
		}

		if skipped > 0 {
			log.Printf("skipped %d sols without %s at %s", skipped, s.Event, s.Location)
		}
		log.Printf("next %s %s: %s", s.Event, s.Offset, next.Local().Format(time.RFC3339))
		return next
	}

	log.Printf("ERR: no %s at %s within %d sols", s.Event, s.Location, maxSearchSols)
	return time.Time{}
}

// occurrence returns the event during the local day containing offset
func (s EventSchedule) occurrence(m Model, offset, west float64) (float64, error) {
	lat := s.Location.Latitude
	switch s.Event {
	case EventMidnight:
		mid, err := Midnight(m, offset, west, lat)
		if err != nil {
			return 0, err
		}
		return solarHour(m, west, mid.Next, 0), nil
	case EventNoon:
		mid, err := Midnight(m, offset, west, lat)
		if err != nil {
			return 0, err
		}
		return solarHour(m, west, mid.Noon(), 12), nil
	}

	day, err := SunriseSunset(m, offset, west, lat, s.Options...)
	if err != nil {
		return 0, err
	}

	o := newSolverOptions(s.Options)
	elevation := o.elevation(m, west, lat)
	switch s.Event {
	case EventSunrise:
		return refineCrossing(elevation, day.Sunrise, o.tolerance, day.Midnights.Prior, day.Noon()), nil
	case EventSunset:
		return refineCrossing(elevation, day.Sunset, o.tolerance, day.Noon(), day.Midnights.Next), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownEvent, s.Event)
	}
}

// refineCrossing narrows a horizon crossing found to within tol down to
// eventTolerance, without leaving [lo, hi].
func refineCrossing(elevation func(float64) float64, at, tol, lo, hi float64) float64 {
	if tol <= eventTolerance {
		return at
	}
	t, err := bisect.Root(elevation, math.Max(at-tol, lo), math.Min(at+tol, hi), bisect.WithTolerance(eventTolerance))
	if err != nil {
		return at
	}
	return t
}

// solarHour refines offset to the nearest instant at which local true
// solar time reads hour. The bracket midnights count hours as 1/24 of
// an Earth day, so they drift from the true ones by up to the
// difference between a day and a sol.
func solarHour(m Model, west, offset, hour float64) float64 {
	t := offset
	for i := 0; i < 8; i++ {
		delta := hour - m.LocalTrueSolarTime(west, t)
		if delta > 12 {
			delta -= 24
		} else if delta < -12 {
			delta += 24
		}
		t += delta / 24 * mars.SolLength
	}
	return t
}
