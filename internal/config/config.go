package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Default values
const (
	DefaultNewsCountry     = "us"
	DefaultTimeFormat      = 12
	DefaultDateFormat      = "%b %d, %Y"
	DefaultAssetsDir       = "assets"
	DefaultClockInterval   = 200 * time.Millisecond
	DefaultWeatherInterval = 30 * time.Minute
	DefaultNewsInterval    = 200 * time.Second

	DefaultXLargeText = 94
	DefaultLargeText  = 48
	DefaultMediumText = 28
	DefaultSmallText  = 18
)

// ErrMissingLocation is returned when no location was given by flag or file
var ErrMissingLocation = errors.New("location is required (--location/-l)")

// TextSizes are the four font sizes used across the dashboard
type TextSizes struct {
	XLarge float32 `yaml:"xlarge"`
	Large  float32 `yaml:"large"`
	Medium float32 `yaml:"medium"`
	Small  float32 `yaml:"small"`
}

// Intervals are the refresh periods of the three components
type Intervals struct {
	Clock   time.Duration
	Weather time.Duration
	News    time.Duration
}

// Config is the dashboard configuration. It is never mutated after Parse returns.
type Config struct {
	Location    string
	Fahrenheit  bool
	NewsCountry string
	Locale      string
	TimeFormat  int
	DateFormat  string
	AssetsDir   string
	FullScreen  bool
	TextSizes   TextSizes
	Intervals   Intervals
}

// fileConfig mirrors Config in the YAML file. Pointers tell "unset" from zero values.
type fileConfig struct {
	Location    *string    `yaml:"location"`
	Fahrenheit  *bool      `yaml:"fahrenheit"`
	NewsCountry *string    `yaml:"news_country"`
	Locale      *string    `yaml:"locale"`
	TimeFormat  *int       `yaml:"time_format"`
	DateFormat  *string    `yaml:"date_format"`
	AssetsDir   *string    `yaml:"assets_dir"`
	FullScreen  *bool      `yaml:"fullscreen"`
	TextSizes   *TextSizes `yaml:"text_sizes"`
	Intervals   *struct {
		Clock   string `yaml:"clock"`
		Weather string `yaml:"weather"`
		News    string `yaml:"news"`
	} `yaml:"intervals"`
}

// Default returns a configuration with every default applied and no location
func Default() *Config {
	return &Config{
		NewsCountry: DefaultNewsCountry,
		TimeFormat:  DefaultTimeFormat,
		DateFormat:  DefaultDateFormat,
		AssetsDir:   DefaultAssetsDir,
		TextSizes: TextSizes{
			XLarge: DefaultXLargeText,
			Large:  DefaultLargeText,
			Medium: DefaultMediumText,
			Small:  DefaultSmallText,
		},
		Intervals: Intervals{
			Clock:   DefaultClockInterval,
			Weather: DefaultWeatherInterval,
			News:    DefaultNewsInterval,
		},
	}
}

// Parse builds a Config from command line arguments (without the program name).
// A file given with --config is applied first; flags set explicitly win over it.
func Parse(args []string, output io.Writer) (*Config, error) {
	cfg := Default()

	fs := pflag.NewFlagSet("smart-mirror", pflag.ContinueOnError)
	fs.SetOutput(output)

	configPath := fs.StringP("config", "c", "", "Path to a YAML configuration file")
	location := fs.StringP("location", "l", "", "Location for weather data (required)")
	fahrenheit := fs.BoolP("fahrenheit", "f", false, "Show temperatures in Fahrenheit")
	country := fs.StringP("news", "n", DefaultNewsCountry, "Country code for news headlines")
	locale := fs.String("locale", "", "Display locale for weekday and month names, e.g. fr")
	timeFormat := fs.Int("time-format", DefaultTimeFormat, "Clock format: 12 or 24")
	assets := fs.String("assets", DefaultAssetsDir, "Directory holding icon images")
	fullScreen := fs.Bool("fullscreen", false, "Start in fullscreen mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if fs.Changed("location") {
		cfg.Location = *location
	}
	if fs.Changed("fahrenheit") {
		cfg.Fahrenheit = *fahrenheit
	}
	if fs.Changed("news") {
		cfg.NewsCountry = *country
	}
	if fs.Changed("locale") {
		cfg.Locale = *locale
	}
	if fs.Changed("time-format") {
		cfg.TimeFormat = *timeFormat
	}
	if fs.Changed("assets") {
		cfg.AssetsDir = *assets
	}
	if fs.Changed("fullscreen") {
		cfg.FullScreen = *fullScreen
	}

	cfg.Location = strings.TrimSpace(cfg.Location)
	cfg.NewsCountry = strings.ToLower(strings.TrimSpace(cfg.NewsCountry))
	if cfg.NewsCountry == "" {
		cfg.NewsCountry = DefaultNewsCountry
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile applies the values found in a YAML file on top of cfg
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	if fc.Location != nil {
		c.Location = *fc.Location
	}
	if fc.Fahrenheit != nil {
		c.Fahrenheit = *fc.Fahrenheit
	}
	if fc.NewsCountry != nil {
		c.NewsCountry = *fc.NewsCountry
	}
	if fc.Locale != nil {
		c.Locale = *fc.Locale
	}
	if fc.TimeFormat != nil {
		c.TimeFormat = *fc.TimeFormat
	}
	if fc.DateFormat != nil && *fc.DateFormat != "" {
		c.DateFormat = *fc.DateFormat
	}
	if fc.AssetsDir != nil && *fc.AssetsDir != "" {
		c.AssetsDir = *fc.AssetsDir
	}
	if fc.FullScreen != nil {
		c.FullScreen = *fc.FullScreen
	}
	if fc.TextSizes != nil {
		mergeSize(&c.TextSizes.XLarge, fc.TextSizes.XLarge)
		mergeSize(&c.TextSizes.Large, fc.TextSizes.Large)
		mergeSize(&c.TextSizes.Medium, fc.TextSizes.Medium)
		mergeSize(&c.TextSizes.Small, fc.TextSizes.Small)
	}
	if fc.Intervals != nil {
		if err := mergeInterval(&c.Intervals.Clock, fc.Intervals.Clock); err != nil {
			return errors.Wrap(err, "intervals.clock")
		}
		if err := mergeInterval(&c.Intervals.Weather, fc.Intervals.Weather); err != nil {
			return errors.Wrap(err, "intervals.weather")
		}
		if err := mergeInterval(&c.Intervals.News, fc.Intervals.News); err != nil {
			return errors.Wrap(err, "intervals.news")
		}
	}
	return nil
}

func mergeSize(dst *float32, v float32) {
	if v != 0 {
		*dst = v
	}
}

func mergeInterval(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// Validate checks the configuration for values the dashboard cannot run with
func (c *Config) Validate() error {
	if c.Location == "" {
		return ErrMissingLocation
	}
	if c.TimeFormat != 12 && c.TimeFormat != 24 {
		return errors.Errorf("time format must be 12 or 24, got %d", c.TimeFormat)
	}
	if c.Intervals.Clock <= 0 || c.Intervals.Weather <= 0 || c.Intervals.News <= 0 {
		return errors.New("refresh intervals must be positive")
	}
	sizes := c.TextSizes
	if sizes.XLarge <= 0 || sizes.Large <= 0 || sizes.Medium <= 0 || sizes.Small <= 0 {
		return errors.New("text sizes must be positive")
	}
	return nil
}

// Use24Hour reports whether the clock shows 24-hour time
func (c *Config) Use24Hour() bool {
	return c.TimeFormat == 24
}
