// Package mars implements the Mars24 solar time and position model
// described in Allison (1997) and Allison & McEwen (2000).
//
// All functions take a date as a J2000 offset: the number of days, on
// the Terrestrial Time scale, elapsed since 2000-01-01 12:00:00 TT.
// Longitudes are degrees west and latitudes degrees north, following
// areographic convention.
//
// https://www.giss.nasa.gov/tools/mars24/help/algorithm.html
package mars

import (
	"math"

	"github.com/soniakeys/unit"
)

// perturbation is a single periodic planetary perturbation term
type perturbation struct {
	amplitude float64 // degrees
	period    float64 // julian years
	phase     float64 // degrees
}

// semiMajorAxis of Mars' orbit, in astronomical units
const semiMajorAxis = 1.52367934

var perturbations = []perturbation{
	{0.0071, 2.2353, 49.409},
	{0.0057, 2.7543, 168.173},
	{0.0039, 1.1177, 191.837},
	{0.0037, 15.7866, 21.736},
	{0.0021, 2.1354, 15.704},
	{0.0020, 2.4694, 95.528},
	{0.0018, 32.8493, 49.095},
}

// MeanAnomaly calculates Mars' mean anomaly, in degrees: the fraction
// of the orbital period elapsed since perihelion, as an angle.
func MeanAnomaly(offset float64) float64 {
	return wrap(19.3870+0.52402075*offset, 360)
}

// AngleOfFictitiousMeanSun calculates the right ascension of the
// fictitious mean sun, in degrees.
func AngleOfFictitiousMeanSun(offset float64) float64 {
	return wrap(270.3863+0.52403840*offset, 360)
}

// AlphaPerturbs sums the perturbations to Mars' orbit caused by the
// other planets, in degrees.
func AlphaPerturbs(offset float64) float64 {
	var sum float64
	for _, p := range perturbations {
		sum += p.amplitude * cos(0.985626*offset/p.period+p.phase)
	}

	return sum
}

// Eccentricity returns the eccentricity of Mars' orbit
func Eccentricity(offset float64) float64 {
	return 0.09340 + 2.477e-9*offset
}

// EquationOfCenter calculates the angular difference, in degrees,
// between the true anomaly of Mars (with an elliptical orbit) and its
// mean anomaly (with a circular orbit), including perturbations.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfCenter(offset float64) float64 {
	m := MeanAnomaly(offset)
	firstOrder := (10.691 + 3.0e-7*offset) * sin(m)
	secondOrder := 0.6230 * sin(2*m)
	thirdOrder := 0.0500 * sin(3*m)
	fourthOrder := 0.0050 * sin(4*m)
	fifthOrder := 0.0005 * sin(5*m)

	return firstOrder + secondOrder + thirdOrder + fourthOrder + fifthOrder + AlphaPerturbs(offset)
}

// TrueAnomaly calculates Mars' true anomaly, in degrees: its angle
// from perihelion as seen from the sun.
func TrueAnomaly(offset float64) float64 {
	return wrap(MeanAnomaly(offset)+EquationOfCenter(offset), 360)
}

// HeliocentricDistance returns the distance between Mars and the sun,
// in astronomical units.
func HeliocentricDistance(offset float64) float64 {
	e := Eccentricity(offset)
	return semiMajorAxis * (1 - e*e) / (1 + e*cos(TrueAnomaly(offset)))
}

// AreocentricSolarLongitude calculates Ls, the position of Mars along
// its orbit measured from the northern spring equinox, in degrees.
func AreocentricSolarLongitude(offset float64) float64 {
	return wrap(AngleOfFictitiousMeanSun(offset)+EquationOfCenter(offset), 360)
}

// EquationOfTime calculates the difference, in degrees, between true
// and mean solar time. Multiply by 24/360 for hours.
func EquationOfTime(offset float64) float64 {
	ls := AreocentricSolarLongitude(offset)
	return 2.861*sin(2*ls) - 0.071*sin(4*ls) + 0.002*sin(6*ls) - EquationOfCenter(offset)
}

// SolarDeclination calculates the planetographic declination of the
// sun, in degrees, for a given areocentric solar longitude.
func SolarDeclination(ls float64) float64 {
	rad := math.Asin(0.42565*sin(ls)) + unit.AngleFromDeg(0.25).Rad()*sin(ls)
	return unit.Angle(rad).Deg()
}

func sin(deg float64) float64 {
	return math.Sin(unit.AngleFromDeg(deg).Rad())
}

func cos(deg float64) float64 {
	return math.Cos(unit.AngleFromDeg(deg).Rad())
}

// wrap returns x modulo base in [0, base)
func wrap(x, base float64) float64 {
	r := unit.PMod(x, base)
	if r >= base {
		return 0
	}
	return r
}
