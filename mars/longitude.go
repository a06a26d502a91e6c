package mars

// EastToWest converts an east-positive longitude to the west-positive
// convention used by areographic coordinates. The result is in
// [0, 360).
func EastToWest(east float64) float64 {
	return wrap(360-east, 360)
}

// WestToEast converts a west-positive longitude to east-positive.
// The conversion is its own inverse.
func WestToEast(west float64) float64 {
	return EastToWest(west)
}
