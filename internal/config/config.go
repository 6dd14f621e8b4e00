package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/datepicker-core/pkg/dateadapter"
	"github.com/username/datepicker-core/pkg/datehelpers"
	"github.com/username/datepicker-core/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Bounds   BoundsConfig   `mapstructure:"bounds"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents locale and time zone settings
type CalendarConfig struct {
	Locale       string `mapstructure:"locale"`   // BCP 47 tag, e.g. "en-US" or "es"
	Timezone     string `mapstructure:"timezone"` // IANA name, e.g. "America/Chicago"
	WeekStart    string `mapstructure:"week_start"`
	HolidaysFile string `mapstructure:"holidays_file"`
}

// BoundsConfig represents the selectable-date constraints
type BoundsConfig struct {
	MinDate      string   `mapstructure:"min_date"`
	MaxDate      string   `mapstructure:"max_date"`
	ExcludeDates []string `mapstructure:"exclude_dates"`
	IncludeDates []string `mapstructure:"include_dates"`
	WeekdaysOnly bool     `mapstructure:"weekdays_only"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// envKeys lists every config key that can be set from the environment.
// List values are comma separated.
var envKeys = []string{
	"calendar.locale",
	"calendar.timezone",
	"calendar.week_start",
	"calendar.holidays_file",
	"bounds.min_date",
	"bounds.max_date",
	"bounds.exclude_dates",
	"bounds.include_dates",
	"bounds.weekdays_only",
	"log.file",
	"log.level",
}

// Load loads configuration from file. A missing default config file is
// not an error; an explicitly given path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("calendar.locale", "en-US")
	v.SetDefault("calendar.timezone", "UTC")
	v.SetDefault("log.level", "info")

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datepicker")
		v.AddConfigPath("/etc/datepicker")
	}

	// Read environment variables, e.g. DATEPICKER_CALENDAR_LOCALE
	v.SetEnvPrefix("datepicker")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Calendar.GetLocale(); err != nil {
		return fmt.Errorf("calendar.locale: %w", err)
	}
	loc, err := c.Calendar.GetLocation()
	if err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}

	bounds, err := c.Bounds.ToBounds(loc)
	if err != nil {
		return err
	}
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("bounds: %w", err)
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetLocale returns the configured locale with the week start override
// applied
func (c *CalendarConfig) GetLocale() (*dateadapter.Locale, error) {
	tag := c.Locale
	if tag == "" {
		tag = "en-US"
	}
	l, err := dateadapter.ParseLocale(tag)
	if err != nil {
		return nil, err
	}
	if c.WeekStart == "" {
		return l, nil
	}
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(c.WeekStart))]
	if !ok {
		return nil, fmt.Errorf("unknown week_start '%s'", c.WeekStart)
	}
	return l.WithWeekStart(day), nil
}

// GetLocation returns the reference time zone
func (c *CalendarConfig) GetLocation() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ToBounds parses the configured dates in loc
func (b *BoundsConfig) ToBounds(loc *time.Location) (datehelpers.Bounds, error) {
	var bounds datehelpers.Bounds
	var err error

	if b.MinDate != "" {
		if bounds.MinDate, err = dateutil.ParseDate(b.MinDate, loc); err != nil {
			return bounds, fmt.Errorf("bounds.min_date: %w", err)
		}
	}
	if b.MaxDate != "" {
		if bounds.MaxDate, err = dateutil.ParseDate(b.MaxDate, loc); err != nil {
			return bounds, fmt.Errorf("bounds.max_date: %w", err)
		}
	}
	if bounds.ExcludeDates, err = dateutil.ParseDates(b.ExcludeDates, loc); err != nil {
		return bounds, fmt.Errorf("bounds.exclude_dates: %w", err)
	}
	if bounds.IncludeDates, err = dateutil.ParseDates(b.IncludeDates, loc); err != nil {
		return bounds, fmt.Errorf("bounds.include_dates: %w", err)
	}
	if b.WeekdaysOnly {
		bounds.FilterDate = func(t time.Time) bool {
			return !dateutil.IsWeekend(t)
		}
	}
	return bounds, nil
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
