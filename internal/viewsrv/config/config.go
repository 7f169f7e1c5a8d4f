// Package config manages configuration for the collection view service.
// Configuration is loaded from a TOML file, with upstream service URLs
// optionally overridden from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Version is the supported configuration file format version.
const Version = "0.1.0"

// UpstreamConfig holds the connection settings for one upstream service.
// It satisfies the httpclient Configurator interface.
type UpstreamConfig struct {
	URL     string `toml:"url"`     // Base URL of the upstream service
	Timeout string `toml:"timeout"` // Per-request timeout, e.g. "10s"
}

// GetServerURL returns the upstream base URL.
func (u *UpstreamConfig) GetServerURL() string {
	return u.URL
}

// GetTimeout returns the upstream request timeout. Returns zero if no
// timeout is configured, leaving cancellation to the request context.
func (u *UpstreamConfig) GetTimeout() time.Duration {
	if u.Timeout == "" {
		return 0
	}
	d, err := ParseDuration(u.Timeout)
	if err != nil {
		panic(fmt.Sprintf("invalid upstream timeout: %v", err))
	}
	return d
}

// ConfigParam holds all configuration parameters for the view service.
type ConfigParam struct {
	// Configuration version
	FormatVersion string `toml:"format_version"` // Version of this configuration file format

	// Server configuration
	ServerHostName     string `toml:"server_hostname"`       // Hostname for the server
	ServerPort         string `toml:"server_port"`           // Port for the server
	HandleCORS         bool   `toml:"handle_cors"`           // Whether to handle CORS
	MaxRequestBodySize int64  `toml:"max_request_body_size"` // Maximum size of request body in bytes
	RequestTimeout     string `toml:"request_timeout"`       // Per-request handling deadline

	// Upstream services
	UserService   UpstreamConfig `toml:"user_service"`   // Collection-owning user service
	GameDiscovery UpstreamConfig `toml:"game_discovery"` // Game catalog service
}

var cfg *ConfigParam

// Config returns the current configuration.
func Config() *ConfigParam {
	return cfg
}

// GetRequestTimeoutOrDefault returns the request handling deadline,
// falling back to 30 seconds when unset.
func (c *ConfigParam) GetRequestTimeoutOrDefault() time.Duration {
	if c.RequestTimeout == "" {
		return 30 * time.Second
	}
	d, err := ParseDuration(c.RequestTimeout)
	if err != nil {
		panic(fmt.Sprintf("invalid request timeout: %v", err))
	}
	return d
}

// LoadConfig loads and validates configuration from the given TOML file.
// A .env file in the working directory is loaded first when present, and
// USER_SERVICE_URL / GAME_DISCOVERY_SERVICE_URL environment variables
// override the corresponding file values.
func LoadConfig(path string) error {
	_ = godotenv.Load()

	c := &ConfigParam{}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("unable to decode config file: %w", err)
	}

	applyEnvOverrides(c)

	if err := ValidateConfig(c); err != nil {
		return err
	}
	cfg = c
	return nil
}

func applyEnvOverrides(c *ConfigParam) {
	if v := os.Getenv("USER_SERVICE_URL"); v != "" {
		c.UserService.URL = v
	}
	if v := os.Getenv("GAME_DISCOVERY_SERVICE_URL"); v != "" {
		c.GameDiscovery.URL = v
	}
}

// ValidateConfig checks that all required configuration values are present
// and valid.
func ValidateConfig(c *ConfigParam) error {
	if c.FormatVersion != Version {
		return fmt.Errorf("unsupported config file format version: %s", c.FormatVersion)
	}
	if err := validateServerConfig(c); err != nil {
		return err
	}
	if err := validateUpstreamConfig("user_service", &c.UserService); err != nil {
		return err
	}
	if err := validateUpstreamConfig("game_discovery", &c.GameDiscovery); err != nil {
		return err
	}
	return nil
}

func validateServerConfig(c *ConfigParam) error {
	if c.ServerPort == "" {
		return fmt.Errorf("server_port is required")
	}
	if c.RequestTimeout != "" {
		if _, err := ParseDuration(c.RequestTimeout); err != nil {
			return fmt.Errorf("invalid request_timeout: %v", err)
		}
	}
	if c.MaxRequestBodySize < 0 {
		return fmt.Errorf("max_request_body_size must not be negative")
	}
	return nil
}

func validateUpstreamConfig(name string, u *UpstreamConfig) error {
	if u.URL == "" {
		return fmt.Errorf("%s.url is required", name)
	}
	if u.Timeout != "" {
		if _, err := ParseDuration(u.Timeout); err != nil {
			return fmt.Errorf("invalid %s.timeout: %v", name, err)
		}
	}
	return nil
}

// ParseDuration parses a duration string in the format "<number><unit>"
// where unit can be:
// - s: seconds
// - m: minutes
// - h: hours
// - d: days
func ParseDuration(input string) (time.Duration, error) {
	if len(input) < 2 {
		return 0, fmt.Errorf("invalid input format")
	}

	unit := input[len(input)-1:]
	valueStr := input[:len(input)-1]
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", err)
	}

	var duration time.Duration
	switch unit {
	case "s":
		duration = time.Duration(value) * time.Second
	case "m":
		duration = time.Duration(value) * time.Minute
	case "h":
		duration = time.Duration(value) * time.Hour
	case "d":
		duration = time.Duration(value) * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown time unit: %s", unit)
	}

	return duration, nil
}

var isTest = false

// IsTest reports whether the service runs in test mode.
func IsTest() bool {
	return isTest
}

// TestInit installs an in-memory configuration for tests.
func TestInit() {
	isTest = true
	cfg = &ConfigParam{
		FormatVersion:      Version,
		ServerHostName:     "127.0.0.1",
		ServerPort:         "0",
		MaxRequestBodySize: 1 << 20,
		RequestTimeout:     "30s",
		UserService:        UpstreamConfig{URL: "http://127.0.0.1:8081", Timeout: "10s"},
		GameDiscovery:      UpstreamConfig{URL: "http://127.0.0.1:8082", Timeout: "10s"},
	}
}
