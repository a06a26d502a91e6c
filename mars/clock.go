package mars

import (
	"math"

	"github.com/soniakeys/unit"
)

const (
	// SolLength is the length of a mean Martian solar day in Earth days
	SolLength = 1.027491252

	HoursPerSol = 24
)

// MarsSolDate returns the number of sols elapsed since 1873-12-29,
// the Mars Sol Date.
func MarsSolDate(offset float64) float64 {
	return (offset-4.5)/SolLength + 44796.0 - 0.00096
}

// CoordinatedMarsTime returns the mean solar time at Mars' prime
// meridian (Airy-0), in hours.
func CoordinatedMarsTime(offset float64) float64 {
	return wrap(HoursPerSol*MarsSolDate(offset), HoursPerSol)
}

// LocalMeanSolarTime returns the mean solar time, in hours, at the
// given west longitude.
func LocalMeanSolarTime(west, offset float64) float64 {
	return wrap(CoordinatedMarsTime(offset)-west*HoursPerSol/360, HoursPerSol)
}

// LocalTrueSolarTime returns the true solar time, in hours, at the
// given west longitude. This is local mean solar time corrected by
// the equation of time.
func LocalTrueSolarTime(west, offset float64) float64 {
	lmst := LocalMeanSolarTime(west, offset)
	return wrap(lmst+EquationOfTime(offset)*HoursPerSol/360, HoursPerSol)
}

// SubsolarLongitude returns the west longitude, in degrees, of the
// point directly beneath the sun.
func SubsolarLongitude(offset float64) float64 {
	eot := EquationOfTime(offset) * HoursPerSol / 360
	return wrap((CoordinatedMarsTime(offset)+eot)*(360.0/HoursPerSol)+180, 360)
}

// HourAngle returns the angle, in degrees, between the given west
// longitude and the subsolar longitude.
func HourAngle(west, offset float64) float64 {
	return west - SubsolarLongitude(offset)
}

// SolarZenith returns the angle, in degrees, between the local
// vertical and the direction of the sun.
func SolarZenith(west, lat, offset float64) float64 {
	ha := unit.AngleFromDeg(HourAngle(west, offset)).Rad()
	dec := unit.AngleFromDeg(SolarDeclination(AreocentricSolarLongitude(offset))).Rad()
	phi := unit.AngleFromDeg(lat).Rad()

	cosZ := math.Sin(dec)*math.Sin(phi) + math.Cos(dec)*math.Cos(phi)*math.Cos(ha)
	cosZ = math.Max(-1, math.Min(1, cosZ))

	return unit.Angle(math.Acos(cosZ)).Deg()
}

// SolarElevation returns the angle, in degrees, of the sun above the
// horizon. Negative values are below the horizon.
func SolarElevation(west, lat, offset float64) float64 {
	return 90 - SolarZenith(west, lat, offset)
}
