package mars

import "fmt"

// Season is a northern hemisphere season, delimited by areocentric
// solar longitude.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return fmt.Sprintf("Season(%d)", int(s))
	}
}

// SeasonOf returns the northern hemisphere season at the given date
func SeasonOf(offset float64) Season {
	// http://www-mars.lmd.jussieu.fr/mars/time/solar_longitude.html
	ls := AreocentricSolarLongitude(offset)
	switch {
	case ls > 270:
		return Winter
	case ls > 180:
		return Autumn
	case ls > 90:
		return Summer
	default:
		return Spring
	}
}
