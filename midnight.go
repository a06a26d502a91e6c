package marstime

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrSolarTimeOutOfRange = errors.New("local solar time outside [0, 24)")
	ErrInvalidBracket      = errors.New("midnight bracket does not contain date")
)

// Bracket is a pair of local midnights, as J2000 offsets
type Bracket struct {
	Prior float64 `json:"prior"`
	Next  float64 `json:"next"`
}

// Noon approximates local solar noon as the midpoint of the bracket
func (b Bracket) Noon() float64 {
	return (b.Prior + b.Next) / 2
}

// Contains reports whether offset falls within [Prior, Next)
func (b Bracket) Contains(offset float64) bool {
	return b.Prior <= offset && offset < b.Next
}

// Midnight returns the local midnights either side of offset at the
// given west longitude. Local midnight occurred LTST hours before
// offset and recurs 24-LTST hours after it, where LTST is the local
// true solar time at offset. Hours are taken as 1/24 of a day.
//
// Latitude does not affect solar time and is ignored.
func Midnight(m Model, offset, west, lat float64) (Bracket, error) {
	ltst := m.LocalTrueSolarTime(west, offset)
	if math.IsNaN(ltst) || ltst < 0 || ltst >= 24 {
		return Bracket{}, fmt.Errorf("%w: %v hours at %v", ErrSolarTimeOutOfRange, ltst, offset)
	}

	b := Bracket{
		Prior: offset - ltst/24,
		Next:  offset + (24-ltst)/24,
	}
	if !b.Contains(offset) {
		return Bracket{}, fmt.Errorf("%w: %v not in [%v, %v)", ErrInvalidBracket, offset, b.Prior, b.Next)
	}

	return b, nil
}
