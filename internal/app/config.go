package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"gol-gpu/internal/core"
	"gol-gpu/internal/gol"
)

// Config represents the command-line parameters for the application. In a
// JSON file, interval is a duration string such as "50ms"; a bare number is
// read as milliseconds.
type Config struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	PixelSize int           `json:"pixel_size"`
	Interval  time.Duration `json:"interval"`
	TPS       int           `json:"tps"`
	Seed      int64         `json:"seed"`
	Density   float64       `json:"density"`
	Workers   int           `json:"workers"`
	HUD       bool          `json:"hud"`

	ConfigPath string `json:"-"`
	Verbose    bool   `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     gol.DefaultWidth,
		Height:    gol.DefaultHeight,
		PixelSize: gol.DefaultPixelSize,
		Interval:  100 * time.Millisecond,
		TPS:       60,
		Seed:      gol.DefaultSeed,
		Density:   gol.DefaultDensity,
		Workers:   1,
		HUD:       true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.PixelSize, "px", c.PixelSize, "edge length of one cell in pixels")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "minimum time between generations (0 = every frame)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial generation")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a cell starting alive")
	fs.IntVar(&c.Workers, "workers", c.Workers, "step bands computed in parallel (0 = all CPUs)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the stats overlay")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON file with defaults; explicit flags win")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Load overlays the JSON file at path onto c. Flags already set on fs are
// re-applied afterwards so the command line takes precedence.
func (c *Config) Load(path string, fs *flag.FlagSet) error {
	explicit := map[string]string{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[Config.Load] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[Config.Load] failed to unmarshal data from file: %+v", path)
	}

	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Config.Load] re-apply flag -%s", name)
		}
	}
	return nil
}

// UnmarshalJSON decodes c, accepting interval as a duration string or a
// number of milliseconds. Fields missing from data keep their current values.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Interval json.RawMessage `json:"interval"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Interval) == 0 || string(aux.Interval) == "null" {
		return nil
	}
	interval, err := parseInterval(aux.Interval)
	if err != nil {
		return errors.Wrapf(err, "[Config.UnmarshalJSON] interval %s", aux.Interval)
	}
	c.Interval = interval
	return nil
}

func parseInterval(raw json.RawMessage) (time.Duration, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return time.ParseDuration(s)
	}
	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return 0, errors.New("want a duration string or milliseconds")
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.PixelSize <= 0:
		return errors.Wrapf(core.ErrInvalidConfiguration, "pixel size must be positive, got %d", c.PixelSize)
	case c.Width < c.PixelSize || c.Height < c.PixelSize:
		return errors.Wrapf(core.ErrInvalidConfiguration, "surface %dx%d smaller than one %dpx cell", c.Width, c.Height, c.PixelSize)
	case c.Interval < 0:
		return errors.Wrapf(core.ErrInvalidConfiguration, "negative interval %s", c.Interval)
	case c.TPS <= 0:
		return errors.Wrapf(core.ErrInvalidConfiguration, "tps must be positive, got %d", c.TPS)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(core.ErrInvalidConfiguration, "density %v outside [0,1]", c.Density)
	}
	return nil
}

// SurfaceSize returns the window size rounded down to whole cells.
func (c *Config) SurfaceSize() (int, int) {
	if c.PixelSize <= 0 {
		return c.Width, c.Height
	}
	return c.Width / c.PixelSize * c.PixelSize, c.Height / c.PixelSize * c.PixelSize
}

// GOLConfig converts c into the simulation configuration.
func (c *Config) GOLConfig() gol.Config {
	cfg := gol.DefaultConfig()
	cfg.PixelSize = c.PixelSize
	cfg.Seed = c.Seed
	cfg.Density = c.Density
	cfg.Workers = c.Workers
	return cfg
}
