// Package marstime locates Martian local midnight, sunrise and sunset
// for a location, given a date as a J2000 Terrestrial Time offset (see
// solar.JulianOffset), and schedules work around them.
package marstime

import (
	"github.com/subtlepseudonym/marstime/mars"
)

// Model is a Mars solar position model. Longitudes passed to it are
// degrees west; latitudes are degrees north; dates are J2000 offsets.
type Model interface {
	// LocalTrueSolarTime returns hours in [0, 24)
	LocalTrueSolarTime(west, offset float64) float64
	// LocalMeanSolarTime returns hours in [0, 24)
	LocalMeanSolarTime(west, offset float64) float64
	// SolarElevation returns degrees above the horizon
	SolarElevation(west, lat, offset float64) float64
	SubsolarLongitude(offset float64) float64
	EastToWest(east float64) float64
}

// DefaultModel is the Allison & McEwen Mars24 model
var DefaultModel Model = mars.Mars24{}
