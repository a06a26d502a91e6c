package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/subtlepseudonym/marstime"
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

type Device struct {
	Type string `json:"type" yaml:"type"`
	Host string `json:"host" yaml:"host"`
	MAC  string `json:"mac" yaml:"mac"`
}

// Solar tunes the sunrise and sunset solver
type Solar struct {
	AngularRadius float64 `json:"angular_radius,omitempty" yaml:"angular_radius,omitempty"` // degrees
	Tolerance     float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`           // days
}

type Config struct {
	Devices  map[string]Device `json:"devices" yaml:"devices"`
	Jobs     []Job             `json:"jobs" yaml:"jobs"`
	Location marstime.Location `json:"location" yaml:"location"`
	Solar    Solar             `json:"solar" yaml:"solar"`
}

// Job defines when to run, on which device, what the desired final
// state is, and how long to take getting there.
//
// Schedule is either a sol event, such as "@sunset -30m", or a
// standard cron spec.
//
// Color state is defined using Hue, Saturation, and Brightness. This
// is referred to as HSB (or HSL) color.
// https://en.wikipedia.org/wiki/HSL_and_HSV
type Job struct {
	Schedule string `json:"schedule" yaml:"schedule"`
	Device   string `json:"device" yaml:"device"`

	Hue        int `json:"hue" yaml:"hue"`               // 0-360
	Saturation int `json:"saturation" yaml:"saturation"` // 0-100
	Brightness int `json:"brightness" yaml:"brightness"` // 0-100
	Kelvin     int `json:"kelvin" yaml:"kelvin"`         // 1500-9000

	Transition string `json:"transition" yaml:"transition"`
}

// Open reads a config file, decoding YAML for .yaml and .yml files and
// JSON otherwise
func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	format := FormatJSON
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}

	config, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return config, nil
}

func Decode(r io.Reader, format Format) (*Config, error) {
	var config Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&config)
	default:
		err = json.NewDecoder(r).Decode(&config)
	}
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Options returns the solver options described by s
func (s Solar) Options() []marstime.Option {
	var opts []marstime.Option
	if s.AngularRadius != 0 {
		opts = append(opts, marstime.WithSolarAngularRadius(s.AngularRadius))
	}
	if s.Tolerance > 0 {
		opts = append(opts, marstime.WithTolerance(s.Tolerance))
	}
	return opts
}

// ParseSchedule returns the job's schedule, sol events being located
// at location
func (j Job) ParseSchedule(location marstime.Location, opts ...marstime.Option) (cron.Schedule, error) {
	if strings.HasPrefix(j.Schedule, "@") {
		event, _, _ := strings.Cut(j.Schedule, " ")
		if _, err := marstime.ParseEvent(event); err == nil {
			schedule, err := marstime.ParseSchedule(j.Schedule, location, opts...)
			if err != nil {
				return nil, err
			}
			return schedule, nil
		}
	}

	schedule, err := cron.ParseStandard(j.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", j.Schedule, err)
	}
	return schedule, nil
}

func (j Job) ParseTransition() (time.Duration, error) {
	if j.Transition == "" {
		return 0, nil
	}
	return time.ParseDuration(j.Transition)
}

func (c *Config) Validate() error {
	errs := &errors.M{}
	if err := c.Location.Validate(); err != nil {
		errs.Append(fmt.Errorf("location: %w", err))
	}
	if c.Solar.Tolerance < 0 {
		errs.Append(fmt.Errorf("solar: negative tolerance %v", c.Solar.Tolerance))
	}

	for label, device := range c.Devices {
		if device.Host == "" {
			errs.Append(fmt.Errorf("device %q: missing host", label))
		}
	}

	for i, job := range c.Jobs {
		if _, ok := c.Devices[job.Device]; !ok {
			errs.Append(fmt.Errorf("job %d: schedule references missing device %q", i, job.Device))
		}
		if _, err := job.ParseSchedule(c.Location); err != nil {
			errs.Append(fmt.Errorf("job %d: %w", i, err))
		}
		if _, err := job.ParseTransition(); err != nil {
			errs.Append(fmt.Errorf("job %d: parse transition: %w", i, err))
		}
		if job.Hue < 0 || job.Hue > 360 {
			errs.Append(fmt.Errorf("job %d: hue %d outside [0, 360]", i, job.Hue))
		}
		if job.Saturation < 0 || job.Saturation > 100 {
			errs.Append(fmt.Errorf("job %d: saturation %d outside [0, 100]", i, job.Saturation))
		}
		if job.Brightness < 0 || job.Brightness > 100 {
			errs.Append(fmt.Errorf("job %d: brightness %d outside [0, 100]", i, job.Brightness))
		}
		if job.Kelvin != 0 && (job.Kelvin < 1500 || job.Kelvin > 9000) {
			errs.Append(fmt.Errorf("job %d: kelvin %d outside [1500, 9000]", i, job.Kelvin))
		}
	}

	return errs.Err()
}
