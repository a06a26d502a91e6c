// Package bisect finds a sign change of a one-argument function within
// a bracketing interval.
package bisect

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrNoSignChange    = errors.New("no sign change in interval")
	ErrNaN             = errors.New("function returned NaN")
	ErrMaxIterations   = errors.New("iteration limit reached")
)

// Option configures Root
type Option func(*options)

type options struct {
	tolerance     float64
	maxIterations int
}

// WithTolerance sets the absolute width below which the interval is
// considered converged. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithMaxIterations bounds the number of halvings. Non-positive values
// are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// Root returns x in [lo, hi] where f changes sign, to within the
// configured tolerance. f(lo) and f(hi) must have opposite signs, or
// one of them must be exactly zero, in which case that end is returned.
//
// If the iteration limit is reached first, the midpoint of the
// remaining interval is returned along with ErrMaxIterations.
func Root(f func(float64) float64, lo, hi float64, opts ...Option) (float64, error) {
	o := options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, fn := range opts {
		fn(&o)
	}

	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, lo, hi)
	}

	flo, fhi := f(lo), f(hi)
	if math.IsNaN(flo) || math.IsNaN(fhi) {
		return 0, fmt.Errorf("%w: at interval end", ErrNaN)
	}
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case math.Signbit(flo) == math.Signbit(fhi):
		return 0, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNoSignChange, lo, flo, hi, fhi)
	}

	for i := 0; i < o.maxIterations; i++ {
		mid := lo + (hi-lo)/2
		if hi-lo <= o.tolerance {
			return mid, nil
		}

		fmid := f(mid)
		switch {
		case math.IsNaN(fmid):
			return 0, fmt.Errorf("%w: at %v", ErrNaN, mid)
		case fmid == 0:
			return mid, nil
		case math.Signbit(fmid) == math.Signbit(flo):
			lo, flo = mid, fmid
		default:
			hi = mid
		}
	}

	mid := lo + (hi-lo)/2
	if hi-lo <= o.tolerance {
		return mid, nil
	}
	return mid, fmt.Errorf("%w: %d iterations, interval width %v", ErrMaxIterations, o.maxIterations, hi-lo)
}
