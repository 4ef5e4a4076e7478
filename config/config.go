package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Quick add specifics
	DateParser     DateParserConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// DateParserConfig controls how titles are turned into due dates.
type DateParserConfig struct {
	Timezone     string
	DefaultHours []int // hour slots used when a date has no clock time
}

type GoogleCalendarConfig struct {
	CredentialsPath      string
	CalendarID           string
	EventDurationMinutes int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Date parser
	cfg.DateParser.Timezone = viper.GetString("date_parser.timezone")
	hours, err := parseHours(viper.Get("date_parser.default_hours"))
	if err != nil {
		return nil, fmt.Errorf("date_parser.default_hours: %w", err)
	}
	cfg.DateParser.DefaultHours = hours

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.EventDurationMinutes = viper.GetInt("google_calendar.event_duration_minutes")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("date_parser.timezone", "UTC")
	viper.SetDefault("date_parser.default_hours", []int{9, 12, 15, 18, 21})

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.event_duration_minutes", 30)
}

// validate checks values that would otherwise fail much later at runtime.
func validate(cfg *Config) error {
	if _, err := time.LoadLocation(cfg.DateParser.Timezone); err != nil {
		return fmt.Errorf("date_parser.timezone %q: %w", cfg.DateParser.Timezone, err)
	}

	prev := -1
	for _, h := range cfg.DateParser.DefaultHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("date_parser.default_hours: hour %d out of range 0-23", h)
		}
		if h <= prev {
			return fmt.Errorf("date_parser.default_hours: hours must be ascending, got %d after %d", h, prev)
		}
		prev = h
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive")
	}
	if cfg.GoogleCalendar.EventDurationMinutes <= 0 {
		return fmt.Errorf("google_calendar.event_duration_minutes must be positive")
	}

	return nil
}

// parseHours accepts a YAML list or a comma separated env value like "9,12,15".
func parseHours(raw any) ([]int, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []int:
		return v, nil
	case []any:
		hours := make([]int, 0, len(v))
		for _, item := range v {
			h, err := toInt(item)
			if err != nil {
				return nil, err
			}
			hours = append(hours, h)
		}
		return hours, nil
	case string:
		var hours []int
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			h, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid hour %q", part)
			}
			hours = append(hours, h)
		}
		return hours, nil
	}
	return nil, fmt.Errorf("unsupported value %v", raw)
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	// Handle float64 from JSON/YAML unmarshaling
	case float64:
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	}
	return 0, fmt.Errorf("invalid hour %v", v)
}
