// Package config holds the runtime settings shared by the blockfall
// binaries. Values come from defaults, then .env files, then BLOCKFALL_*
// environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "BLOCKFALL_"

// Config is the merged runtime configuration.
type Config struct {
	FallInterval time.Duration
	FrameRate    int
	Seed         uint64
	Debug        bool
	LogFile      string

	// Soak test settings.
	Duration time.Duration
	Workers  int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FallInterval: 500 * time.Millisecond,
		FrameRate:    60,
		Duration:     10 * time.Second,
		Workers:      runtime.NumCPU(),
	}
}

// Load starts from Default, applies the given .env files in order and then
// the process environment. Files that do not exist are skipped. Environment
// variables win over file values.
func Load(files ...string) (Config, error) {
	values := make(map[string]string)
	for _, file := range files {
		read, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", file, err)
		}
		for k, v := range read {
			values[k] = v
		}
	}

	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v, true
		}
		v, ok := values[name]
		return v, ok && v != ""
	}

	cfg := Default()
	if err := cfg.apply(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	var err error
	duration := func(name string, dst *time.Duration) {
		v, ok := lookup(Prefix + name)
		if !ok || err != nil {
			return
		}
		d, perr := time.ParseDuration(v)
		if perr != nil {
			err = fmt.Errorf("%s%s: %w", Prefix, name, perr)
			return
		}
		*dst = d
	}
	integer := func(name string, dst *int) {
		v, ok := lookup(Prefix + name)
		if !ok || err != nil {
			return
		}
		n, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("%s%s: %w", Prefix, name, perr)
			return
		}
		*dst = n
	}

	duration("FALL_INTERVAL", &c.FallInterval)
	integer("FRAME_RATE", &c.FrameRate)
	duration("DURATION", &c.Duration)
	integer("WORKERS", &c.Workers)
	if err != nil {
		return err
	}

	if v, ok := lookup(Prefix + "SEED"); ok {
		seed, perr := strconv.ParseUint(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("%sSEED: %w", Prefix, perr)
		}
		c.Seed = seed
	}
	if v, ok := lookup(Prefix + "DEBUG"); ok {
		debug, perr := strconv.ParseBool(v)
		if perr != nil {
			return fmt.Errorf("%sDEBUG: %w", Prefix, perr)
		}
		c.Debug = debug
	}
	if v, ok := lookup(Prefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	return nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case c.FallInterval <= 0:
		return fmt.Errorf("fall interval must be positive, got %s", c.FallInterval)
	case c.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	case c.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %s", c.Duration)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}

// Bind registers a flag for every setting on fs, defaulting to the current
// values so that parsed flags override everything loaded before.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&c.FallInterval, "fall-interval", c.FallInterval, "Time between gravity steps.")
	fs.IntVar(&c.FrameRate, "fps", c.FrameRate, "Frames per second.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Piece randomizer seed; 0 picks one at random.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Show the debug inspector.")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Write logs to this file.")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "The total duration the soak test should run for.")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Number of games played in parallel by the soak test.")
}

// FrameInterval is the wall time of one frame at FrameRate.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}
