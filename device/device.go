package device

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/subtlepseudonym/marstime/config"
)

const (
	defaultLifxPort        = 56700
	defaultPowerTransition = 2 * time.Second
	defaultRetryBackoff    = 250 * time.Millisecond
	defaultRetryLimit      = 5
	defaultTimeout         = 10 * time.Second

	MinKelvin = 1500
	MaxKelvin = 9000
)

type Type string

const (
	TypeLifx Type = "lifx"
)

// Color is an HSBK color as the lifx LAN protocol represents it
type Color struct {
	Hue        uint16
	Saturation uint16
	Brightness uint16
	Kelvin     uint16
}

// NewColor converts hue in degrees and saturation and brightness in
// percent to their protocol representation. Out of range values are
// clamped.
//
// conversion formulas are defined by lifx LAN documentation
// https://lan.developer.lifx.com/docs/representing-color-with-hsbk
func NewColor(hue, saturation, brightness float64, kelvin int) *Color {
	hue = clamp(hue, 0, 360)
	saturation = clamp(saturation, 0, 100)
	brightness = clamp(brightness, 0, 100)
	if kelvin != 0 {
		kelvin = int(clamp(float64(kelvin), MinKelvin, MaxKelvin))
	}

	return &Color{
		Hue:        uint16(int(math.Round(hue*0x10000/360.0)) % 0x10000),
		Saturation: uint16(math.Round(saturation / 100.0 * math.MaxUint16)),
		Brightness: uint16(math.Round(brightness / 100.0 * math.MaxUint16)),
		Kelvin:     uint16(kelvin),
	}
}

// Scaled returns hue in degrees and saturation and brightness in percent
func (c *Color) Scaled() (hue, saturation, brightness float64) {
	return float64(c.Hue) * 360.0 / 0x10000,
		float64(c.Saturation) / math.MaxUint16 * 100,
		float64(c.Brightness) / math.MaxUint16 * 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

type Device interface {
	Transition(*Color, time.Duration) error
	Status(context.Context) (*Color, error)
	Label() string
	String() string
}

// Connect dials the device described by cfg. An empty type is taken
// to be a lifx bulb.
func Connect(label string, cfg config.Device) (Device, error) {
	switch Type(cfg.Type) {
	case TypeLifx, "":
		addr := fmt.Sprintf("%s:%d", cfg.Host, defaultLifxPort)
		return ConnectLifx(label, addr, cfg.MAC)
	default:
		return nil, fmt.Errorf("%s: unknown device type: %s", label, cfg.Type)
	}
}
