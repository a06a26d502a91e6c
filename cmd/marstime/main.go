// Command marstime converts Earth timestamps to Mars solar times and
// locates local midnight, sunrise and sunset.
//
// Dates are given as YYYY/MM/DD HH:MM:SS in UTC and longitudes in
// degrees east. Negative arguments must follow "--", as in
//
//	marstime sunrise 2019/08/29 13:24:12 -- 137.44 -4.59
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var (
	cmdSet *subcmd.CommandSet
	stdout io.Writer = os.Stdout
)

type outputFlags struct {
	Precision int `subcmd:"precision,6,number of decimal places to print"`
}

type sunriseFlags struct {
	Precision int     `subcmd:"precision,6,number of decimal places to print"`
	Radius    float64 `subcmd:"radius,0,apparent solar radius in degrees added to the elevation test"`
	UTC       bool    `subcmd:"utc,false,print UTC timestamps rather than J2000 offsets"`
}

func init() {
	output := func() *subcmd.FlagSet {
		return subcmd.MustRegisterFlagStruct(&outputFlags{}, nil, nil)
	}

	julianCmd := subcmd.NewCommand("julian", output(), julian, subcmd.ExactlyNumArguments(2))
	julianCmd.Document("print the UTC and TT julian dates and the J2000 offset", "<date> <time>")

	leapCmd := subcmd.NewCommand("leap", output(), leap, subcmd.ExactlyNumArguments(2))
	leapCmd.Document("print the number of leap seconds in effect", "<date> <time>")

	calendarCmd := subcmd.NewCommand("calendar", output(), calendar, subcmd.ExactlyNumArguments(2))
	calendarCmd.Document("print the terrestrial time calendar date as year,month,day", "<date> <time>")

	longitudeCmd := subcmd.NewCommand("longitude", output(), longitude, subcmd.ExactlyNumArguments(1))
	longitudeCmd.Document("convert an east longitude to west", "<east>")

	lmstCmd := subcmd.NewCommand("lmst", output(), lmst, subcmd.ExactlyNumArguments(3))
	lmstCmd.Document("print local mean solar time in hours", "<date> <time> <east>")

	ltstCmd := subcmd.NewCommand("ltst", output(), ltst, subcmd.ExactlyNumArguments(3))
	ltstCmd.Document("print local true solar time in hours", "<date> <time> <east>")

	subsolarCmd := subcmd.NewCommand("subsolar", output(), subsolar, subcmd.ExactlyNumArguments(2))
	subsolarCmd.Document("print the west longitude of the subsolar point", "<date> <time>")

	midnightCmd := subcmd.NewCommand("midnight", output(), midnight, subcmd.ExactlyNumArguments(3))
	midnightCmd.Document("print the local midnights either side of a date as J2000 offsets", "<date> <time> <east>")

	sunriseFlagSet := subcmd.MustRegisterFlagStruct(&sunriseFlags{}, nil, nil)
	sunriseCmd := subcmd.NewCommand("sunrise", sunriseFlagSet, sunrise, subcmd.ExactlyNumArguments(4))
	sunriseCmd.Document("print sunrise and sunset during the local sol containing a date", "<date> <time> <east> <lat>")

	seasonCmd := subcmd.NewCommand("season", output(), season, subcmd.ExactlyNumArguments(2))
	seasonCmd.Document("print the areocentric solar longitude and northern season", "<date> <time>")

	cmdSet = subcmd.NewCommandSet(
		calendarCmd,
		julianCmd,
		leapCmd,
		lmstCmd,
		longitudeCmd,
		ltstCmd,
		midnightCmd,
		seasonCmd,
		subsolarCmd,
		sunriseCmd,
	)
	cmdSet.Document("marstime converts UTC dates, given as YYYY/MM/DD HH:MM:SS, to Mars solar times. Longitudes are degrees east and latitudes degrees north.")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
