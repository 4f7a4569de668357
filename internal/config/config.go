package config

import (
	"fmt"
	"strings"

	"github.com/aretw0/offhook/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. OFFHOOK_LOG_LEVEL.
const EnvPrefix = "OFFHOOK"

// Config holds all application configuration
type Config struct {
	Rules   string        `mapstructure:"rules"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Input   InputConfig   `mapstructure:"input"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds console presentation settings
type UIConfig struct {
	Banner   bool `mapstructure:"banner"`
	Markdown bool `mapstructure:"markdown"`
	Color    bool `mapstructure:"color"`
}

// MetricsConfig holds the Prometheus textfile export settings
type MetricsConfig struct {
	Output string `mapstructure:"output"`
}

// InputConfig holds console input limits
type InputConfig struct {
	MaxSize int `mapstructure:"max_size"`
}

// Load reads configuration from an optional file plus OFFHOOK_* environment variables.
// An empty configPath skips the file and uses defaults.
func Load(configPath string) (*Config, error) {
	v := New()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Decode(v)
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Decode unmarshals and validates the configuration held by v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("rules", "")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("ui.banner", true)
	v.SetDefault("ui.markdown", false)
	v.SetDefault("ui.color", true)

	v.SetDefault("metrics.output", "")

	v.SetDefault("input.max_size", 4096)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Input.MaxSize <= 0 {
		return fmt.Errorf("input.max_size must be positive, got %d", c.Input.MaxSize)
	}

	if c.Metrics.Output != "" && !strings.HasSuffix(c.Metrics.Output, ".prom") {
		return fmt.Errorf("metrics.output must end in .prom, got %q", c.Metrics.Output)
	}

	return nil
}
