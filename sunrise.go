package marstime

import (
	"errors"
	"fmt"

	"github.com/subtlepseudonym/marstime/bisect"
)

var (
	// ErrNoHorizonCrossing is returned when the sun does not cross the
	// horizon between a midnight and noon, or noon and midnight.
	ErrNoHorizonCrossing = errors.New("no horizon crossing in interval")

	ErrPolarDay   = fmt.Errorf("%w: sun stays above horizon", ErrNoHorizonCrossing)
	ErrPolarNight = fmt.Errorf("%w: sun stays below horizon", ErrNoHorizonCrossing)
)

// Day is a single local solar day. All values are J2000 offsets.
type Day struct {
	Midnights Bracket `json:"midnights"`
	Sunrise   float64 `json:"sunrise"`
	Sunset    float64 `json:"sunset"`
}

// Noon returns the approximate local solar noon
func (d Day) Noon() float64 {
	return d.Midnights.Noon()
}

// DaylightHours returns the time between sunrise and sunset in Earth
// hours.
func (d Day) DaylightHours() float64 {
	return (d.Sunset - d.Sunrise) * 24
}

// Option configures SunriseSunset
type Option func(*solverOptions)

type solverOptions struct {
	radius        float64
	tolerance     float64
	maxIterations int
}

// WithSolarAngularRadius offsets the horizon test by the apparent
// radius of the sun, in degrees, so that sunrise is the first limb
// rather than the center of the disk clearing the horizon.
func WithSolarAngularRadius(deg float64) Option {
	return func(o *solverOptions) {
		o.radius = deg
	}
}

// WithTolerance sets the convergence tolerance in days. Non-positive
// values are ignored.
func WithTolerance(days float64) Option {
	return func(o *solverOptions) {
		if days > 0 {
			o.tolerance = days
		}
	}
}

func WithMaxIterations(n int) Option {
	return func(o *solverOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

func newSolverOptions(opts []Option) solverOptions {
	o := solverOptions{
		tolerance:     bisect.DefaultTolerance,
		maxIterations: bisect.DefaultMaxIterations,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// elevation returns the horizon test at a location: positive while the
// sun, widened by the configured radius, is above the horizon.
func (o solverOptions) elevation(m Model, west, lat float64) func(float64) float64 {
	return func(t float64) float64 {
		return m.SolarElevation(west, lat, t) + o.radius
	}
}

// SunriseSunset finds sunrise and sunset during the local solar day
// containing offset at the given west longitude and north latitude.
//
// Sunrise is searched for between the prior midnight and noon and
// sunset between noon and the next midnight, by bisecting the solar
// elevation. If the sun never crosses the horizon in either half, the
// returned error wraps ErrPolarDay or ErrPolarNight.
func SunriseSunset(m Model, offset, west, lat float64, opts ...Option) (Day, error) {
	o := newSolverOptions(opts)

	mid, err := Midnight(m, offset, west, lat)
	if err != nil {
		return Day{}, fmt.Errorf("midnight: %w", err)
	}
	noon := mid.Noon()

	elevation := o.elevation(m, west, lat)
	root := func(lo, hi float64) (float64, error) {
		t, err := bisect.Root(elevation, lo, hi, bisect.WithTolerance(o.tolerance), bisect.WithMaxIterations(o.maxIterations))
		if errors.Is(err, bisect.ErrNoSignChange) {
			if elevation(lo) > 0 {
				return 0, fmt.Errorf("%w: [%v, %v]", ErrPolarDay, lo, hi)
			}
			return 0, fmt.Errorf("%w: [%v, %v]", ErrPolarNight, lo, hi)
		}
		return t, err
	}

	sunrise, err := root(mid.Prior, noon)
	if err != nil {
		return Day{}, fmt.Errorf("sunrise: %w", err)
	}

	sunset, err := root(noon, mid.Next)
	if err != nil {
		return Day{}, fmt.Errorf("sunset: %w", err)
	}

	return Day{
		Midnights: mid,
		Sunrise:   sunrise,
		Sunset:    sunset,
	}, nil
}
