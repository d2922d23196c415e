// Package config loads the rroute TOML configuration.
package config

import (
	_ "embed"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rohanthewiz/serr"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
	Limits  LimitsConfig  `toml:"limits"`
	Metrics MetricsConfig `toml:"metrics"`
	Tracing TracingConfig `toml:"tracing"`
	Routes  RoutesConfig  `toml:"routes"`
	Demo    DemoConfig    `toml:"demo"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Address         string   `toml:"address"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	HandlerTimeout  Duration `toml:"handler_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LimitsConfig configures the global request rate limiter.
type LimitsConfig struct {
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// TracingConfig configures OpenTelemetry spans.
type TracingConfig struct {
	TracerName string `toml:"tracer_name"`
}

// RoutesConfig configures the HTML route table page.
type RoutesConfig struct {
	PageEnabled bool   `toml:"page_enabled"`
	PagePath    string `toml:"page_path"`
}

// DemoConfig configures the demo endpoints.
type DemoConfig struct {
	Database string `toml:"database"`
}

// Duration is a time.Duration written as a string such as "5s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return serr.Wrap(err, "duration", string(text))
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, serr.Wrap(err, "path", path)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic("failed to parse embedded default config: " + err.Error())
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return serr.New("config file already exists", "path", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return serr.Wrap(err, "path", path)
	}

	return nil
}
