package device

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.yhsif.com/lifxlan"
	"go.yhsif.com/lifxlan/light"
)

type LifxBulb struct {
	light.Device
	label string // prevent need to contact device for logging
}

// ConnectLifx takes a label (for logging), a host in ip:port
// format and a mac address to locate a device on the network, connect
// to it, and retrieve the label and hardware version
func ConnectLifx(label, host, mac string) (Device, error) {
	target, err := lifxlan.ParseTarget(mac)
	if err != nil {
		return nil, fmt.Errorf("%s: parse mac address: %w", label, err)
	}

	dev := lifxlan.NewDevice(host, lifxlan.ServiceUDP, target)
	conn, err := dev.Dial()
	if err != nil {
		return nil, fmt.Errorf("%s: dial device: %w", label, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// The expectation is that ConnectLifx is called once at startup and
	// any failed connections will be caught by the user at that time.
	err = dev.Echo(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: echo device: %w", label, err)
	}

	bulb, err := light.Wrap(ctx, dev, false)
	if err != nil {
		return nil, fmt.Errorf("%s: device is not a light: %w", label, err)
	}

	device := &LifxBulb{
		Device: bulb,
		label:  strings.ToLower(label),
	}

	err = device.GetHardwareVersion(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: get hardware version: %w", label, err)
	}

	if device.Device.Label().String() != lifxlan.EmptyLabel {
		device.label = strings.ToLower(device.Device.Label().String())
	}

	return device, nil
}

// echo wraps the underlying method of the same name and adds retry logic
func (d *LifxBulb) echo(ctx context.Context, conn net.Conn, payload []byte) error {
	return retry(ctx, func() error {
		return d.Device.Echo(ctx, conn)
	})
}

// retry calls fn until it succeeds with anything but a deadline error,
// backing off linearly between attempts
func retry(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i < defaultRetryLimit; i++ {
		err = fn()
		if err == nil || !errors.Is(err, context.DeadlineExceeded) {
			break
		}

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(i+1) * defaultRetryBackoff):
		}
	}

	return err
}

func (d *LifxBulb) Transition(color *Color, transition time.Duration) error {
	conn, err := d.Dial()
	if err != nil {
		return fmt.Errorf("%s: dial: %w", d.label, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	err = d.echo(ctx, conn, nil)
	if err != nil {
		return fmt.Errorf("%s: echo device: %w", d.label, err)
	}

	if color.Brightness == 0 {
		err = d.SetLightPower(ctx, conn, lifxlan.PowerOff, transition, true)
		if err != nil {
			return fmt.Errorf("%s: set light power: %w", d.label, err)
		}
		return nil
	}

	power, err := d.GetPower(ctx, conn)
	if err != nil {
		return fmt.Errorf("%s: get power: %w", d.label, err)
	}

	lifxColor := &lifxlan.Color{
		Hue:        color.Hue,
		Saturation: color.Saturation,
		Brightness: color.Brightness,
		Kelvin:     color.Kelvin,
	}
	*lifxColor = d.Device.SanitizeColor(*lifxColor)

	// If power is off, reset bulb brightness to 0 and turn on
	if power == lifxlan.PowerOff {
		clr := *lifxColor
		clr.Brightness = 0

		err = d.SetColor(ctx, conn, &clr, time.Millisecond, true)
		if err != nil {
			return fmt.Errorf("%s: reset color: %w", d.label, err)
		}

		err = d.SetPower(ctx, conn, lifxlan.PowerOn, true)
		if err != nil {
			return fmt.Errorf("%s: set power: %w", d.label, err)
		}
	}

	err = d.SetColor(ctx, conn, lifxColor, transition, true)
	if err != nil {
		return fmt.Errorf("%s: set color: %w", d.label, err)
	}

	return nil
}

// Status returns the bulb's current color. A powered off bulb reports
// zero brightness.
func (d *LifxBulb) Status(ctx context.Context) (*Color, error) {
	conn, err := d.Dial()
	if err != nil {
		return nil, fmt.Errorf("%s: dial: %w", d.label, err)
	}
	defer conn.Close()

	power, err := d.GetPower(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: get power: %w", d.label, err)
	}

	color, err := d.GetColor(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: get color: %w", d.label, err)
	}

	status := &Color{
		Hue:        color.Hue,
		Saturation: color.Saturation,
		Brightness: color.Brightness,
		Kelvin:     color.Kelvin,
	}
	if power == lifxlan.PowerOff {
		status.Brightness = 0
	}
	return status, nil
}

func (d *LifxBulb) Label() string {
	return d.label
}

func (d *LifxBulb) String() string {
	return d.Device.HardwareVersion().String()
}
