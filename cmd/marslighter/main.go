// Command marslighter runs lighting jobs on Martian solar events and
// standard cron schedules.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/marstime/config"
	"github.com/subtlepseudonym/marstime/device"
)

type commandLine struct {
	Config string `subcmd:"config,secrets/mars.cfg,path to a json or yaml config file"`
	Listen string `subcmd:"listen,:9000,address to serve device and sol endpoints on"`
}

type Job struct {
	Device     device.Device
	Color      *device.Color
	Transition time.Duration
}

func (j Job) Run() {
	log.Printf("%s: transitioning over %s", j.Device.Label(), j.Transition)
	err := j.Device.Transition(j.Color, j.Transition)
	if err != nil {
		log.Printf("ERR: transition device: %s", err)
	}
}

func main() {
	var cl commandLine
	if err := flags.RegisterFlagsInStruct(flag.CommandLine, "subcmd", &cl, nil, nil); err != nil {
		log.Fatalf("ERR: register flags: %s", err)
	}
	flag.Parse()

	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("ERR: load tz location: %s", err)
		}
		time.Local = loc
	}

	cfg, err := config.Open(cl.Config)
	if err != nil {
		log.Fatalf("ERR: read config file failed: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ERR: invalid config: %s", err)
	}

	devices := make(map[string]device.Device)
	for label, dev := range cfg.Devices {
		d, err := device.Connect(label, dev)
		if err != nil {
			log.Printf("ERR: connect device: %s", err)
			continue
		}
		devices[label] = d
		log.Printf("registered device: %q %s", label, d)
	}

	lightCron := cron.New(cron.WithLogger(cron.PrintfLogger(log.Default())))
	if err := scheduleJobs(lightCron, cfg, devices, time.Now()); err != nil {
		log.Printf("ERR: %s", err)
	}

	mux := http.NewServeMux()
	for label, d := range devices {
		mux.HandleFunc(fmt.Sprintf("/%s", label), device.PowerHandler(d))
		mux.HandleFunc(fmt.Sprintf("/%s/status", label), device.StatusHandler(d))
	}
	mux.Handle("/sol", solHandler{
		location: cfg.Location,
		options:  cfg.Solar.Options(),
		now:      time.Now,
	})

	srv := http.Server{
		Addr:    cl.Listen,
		Handler: mux,
	}

	cmdutil.HandleSignals(func() {
		<-lightCron.Stop().Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("ERR: shutdown: %s", err)
		}
	}, os.Interrupt, syscall.SIGTERM)

	log.Printf("listening on %s", srv.Addr)
	lightCron.Start()
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// scheduleJobs adds a cron entry for each configured job whose device is
// connected. Jobs that cannot be scheduled are logged and skipped; the
// returned error joins them.
func scheduleJobs(c *cron.Cron, cfg *config.Config, devices map[string]device.Device, now time.Time) error {
	errs := &errors.M{}
	opts := cfg.Solar.Options()
	for i, job := range cfg.Jobs {
		dev, ok := devices[job.Device]
		if !ok {
			errs.Append(fmt.Errorf("job %d: device %q is not connected", i, job.Device))
			continue
		}

		schedule, err := job.ParseSchedule(cfg.Location, opts...)
		if err != nil {
			errs.Append(fmt.Errorf("job %d: %w", i, err))
			continue
		}

		transition, err := job.ParseTransition()
		if err != nil {
			errs.Append(fmt.Errorf("job %d: parse job transition: %w", i, err))
			continue
		}

		c.Schedule(schedule, Job{
			Device:     dev,
			Color:      device.NewColor(float64(job.Hue), float64(job.Saturation), float64(job.Brightness), job.Kelvin),
			Transition: transition,
		})
		log.Printf("job: %s: %s", schedule.Next(now).Local().Format(time.RFC3339), dev.Label())
	}

	return errs.Err()
}
