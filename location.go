package marstime

import (
	"fmt"
)

// Location is a point on the Martian surface. Longitude is degrees
// east, as it is usually published; use West to get the convention
// expected by a Model.
type Location struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// West returns the location's longitude in degrees west
func (l Location) West(m Model) float64 {
	return m.EastToWest(l.Longitude)
}

func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v outside [-90, 90]", l.Latitude)
	}
	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("%.4fN %.4fE", l.Latitude, l.Longitude)
}
