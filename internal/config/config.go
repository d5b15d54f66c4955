package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/seawatch/happywhale/internal/db/sqlite"
	"github.com/seawatch/happywhale/internal/transport/critterspot"
)

// Config holds the happywhale CLI configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Remote   RemoteConfig   `yaml:"remote"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// DatabaseConfig holds the lookup database settings.
type DatabaseConfig struct {
	Path            string `yaml:"path"`
	SlowThresholdMs int    `yaml:"slow_threshold_ms"`
}

// RemoteConfig holds the critterspot search service settings.
type RemoteConfig struct {
	Endpoint   string `yaml:"endpoint"`
	TimeoutSec int    `yaml:"timeout_sec"` // 0 = no client-side timeout
}

// DefaultEndpoint is the public critterspot search endpoint.
const DefaultEndpoint = critterspot.DefaultEndpoint

// Timeout returns the remote timeout as a duration.
func (r RemoteConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSec) * time.Second
}

// SlowThreshold returns the slow query threshold as a duration.
func (d DatabaseConfig) SlowThreshold() time.Duration {
	return time.Duration(d.SlowThresholdMs) * time.Millisecond
}

// Load reads and validates configuration by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads and validates configuration from an explicit path.
func LoadFile(configPath string) (Config, error) {
	cfg, err := ReadFile(configPath)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Read is Load without validation, for callers that apply overrides first.
func Read(env string) (Config, error) {
	return ReadFile(findConfigPath(env))
}

// ReadFile parses the file and applies defaults but does not validate.
func ReadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Remote.Endpoint == "" {
		c.Remote.Endpoint = DefaultEndpoint
	}
	if c.Remote.TimeoutSec < 0 {
		c.Remote.TimeoutSec = 0
	}
	if c.Database.SlowThresholdMs <= 0 {
		c.Database.SlowThresholdMs = int(sqlite.DefaultSlowThreshold / time.Millisecond)
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	u, err := url.Parse(c.Remote.Endpoint)
	if err != nil {
		return fmt.Errorf("remote.endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("remote.endpoint must be an http(s) URL, got %q", c.Remote.Endpoint)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
