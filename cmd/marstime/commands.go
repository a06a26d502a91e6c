package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/subtlepseudonym/marstime"
	"github.com/subtlepseudonym/marstime/mars"
	"github.com/subtlepseudonym/marstime/solar"
)

func parseDate(args []string) (time.Time, error) {
	return solar.ParseTimestamp(args[0], args[1])
}

func parseDegrees(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, arg, err)
	}
	return v, nil
}

// parseLocation reads date, time and east longitude arguments
func parseLocation(args []string) (offset, west float64, err error) {
	t, err := parseDate(args)
	if err != nil {
		return 0, 0, err
	}
	east, err := parseDegrees("longitude", args[2])
	if err != nil {
		return 0, 0, err
	}
	return solar.JulianOffset(t), marstime.DefaultModel.EastToWest(east), nil
}

func julian(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	t, err := parseDate(args)
	if err != nil {
		return err
	}

	p := fl.Precision
	_, err = fmt.Fprintf(stdout, "%.*f,%.*f,%.*f\n",
		p, solar.JulianDateUTC(t),
		p, solar.JulianDateTT(t),
		p, solar.JulianOffset(t))
	return err
}

func leap(_ context.Context, _ any, args []string) error {
	t, err := parseDate(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, solar.LeapSeconds(t))
	return err
}

func calendar(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	t, err := parseDate(args)
	if err != nil {
		return err
	}

	year, month, day := solar.CalendarTT(solar.JulianOffset(t))
	_, err = fmt.Fprintf(stdout, "%d,%d,%.*f\n", year, int(month), fl.Precision, day)
	return err
}

func longitude(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	east, err := parseDegrees("longitude", args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%.*f\n", fl.Precision, marstime.DefaultModel.EastToWest(east))
	return err
}

func lmst(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	offset, west, err := parseLocation(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%.*f\n", fl.Precision, marstime.DefaultModel.LocalMeanSolarTime(west, offset))
	return err
}

func ltst(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	offset, west, err := parseLocation(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%.*f\n", fl.Precision, marstime.DefaultModel.LocalTrueSolarTime(west, offset))
	return err
}

func subsolar(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	t, err := parseDate(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%.*f\n", fl.Precision, marstime.DefaultModel.SubsolarLongitude(solar.JulianOffset(t)))
	return err
}

func midnight(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	offset, west, err := parseLocation(args)
	if err != nil {
		return err
	}

	b, err := marstime.Midnight(marstime.DefaultModel, offset, west, 0)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%.*f,%.*f\n", fl.Precision, b.Prior, fl.Precision, b.Next)
	return err
}

func sunrise(_ context.Context, values any, args []string) error {
	fl := values.(*sunriseFlags)
	offset, west, err := parseLocation(args)
	if err != nil {
		return err
	}
	lat, err := parseDegrees("latitude", args[3])
	if err != nil {
		return err
	}

	day, err := marstime.SunriseSunset(marstime.DefaultModel, offset, west, lat,
		marstime.WithSolarAngularRadius(fl.Radius))
	if err != nil {
		return err
	}

	if fl.UTC {
		_, err = fmt.Fprintf(stdout, "%s,%s\n",
			solar.TimeFromOffset(day.Sunrise).Format(time.RFC3339),
			solar.TimeFromOffset(day.Sunset).Format(time.RFC3339))
		return err
	}
	_, err = fmt.Fprintf(stdout, "%.*f,%.*f\n", fl.Precision, day.Sunrise, fl.Precision, day.Sunset)
	return err
}

func season(_ context.Context, values any, args []string) error {
	fl := values.(*outputFlags)
	t, err := parseDate(args)
	if err != nil {
		return err
	}

	offset := solar.JulianOffset(t)
	_, err = fmt.Fprintf(stdout, "%.*f,%s\n", fl.Precision, mars.AreocentricSolarLongitude(offset), mars.SeasonOf(offset))
	return err
}
