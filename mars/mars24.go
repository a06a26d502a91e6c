package mars

// Mars24 exposes the package functions as a solar position model for
// use with the marstime sunrise and midnight calculations.
type Mars24 struct{}

func (Mars24) LocalTrueSolarTime(west, offset float64) float64 {
	return LocalTrueSolarTime(west, offset)
}

func (Mars24) LocalMeanSolarTime(west, offset float64) float64 {
	return LocalMeanSolarTime(west, offset)
}

func (Mars24) SolarElevation(west, lat, offset float64) float64 {
	return SolarElevation(west, lat, offset)
}

func (Mars24) SubsolarLongitude(offset float64) float64 {
	return SubsolarLongitude(offset)
}

func (Mars24) EastToWest(east float64) float64 {
	return EastToWest(east)
}
