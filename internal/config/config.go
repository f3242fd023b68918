package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (TURING_ENGINE_MAX_TAPE, ...).
const EnvPrefix = "TURING"

// Config holds application configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Server ServerConfig `mapstructure:"server"`
}

// EngineConfig bounds a run.
type EngineConfig struct {
	MaxTape  int `mapstructure:"max_tape"`
	MaxSteps int `mapstructure:"max_steps"`
}

// LogConfig selects the log level and an optional JSON log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Color  bool `mapstructure:"color"`
	Pretty bool `mapstructure:"pretty"`
}

// ServerConfig holds settings for the HTTP and MCP adapters.
type ServerConfig struct {
	Addr     string `mapstructure:"addr"`
	MaxSteps int    `mapstructure:"max_steps"`
}

// Keys shared with the CLI flag bindings.
const (
	KeyMaxTape        = "engine.max_tape"
	KeyMaxSteps       = "engine.max_steps"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyColor          = "ui.color"
	KeyPretty         = "ui.pretty"
	KeyServerAddr     = "server.addr"
	KeyServerMaxSteps = "server.max_steps"
)

// New returns a viper instance with defaults and env overrides applied.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyMaxTape, domain.DefaultMaxTape)
	v.SetDefault(KeyMaxSteps, 0)
	v.SetDefault(KeyLogLevel, "off")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyColor, true)
	v.SetDefault(KeyPretty, false)
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerMaxSteps, 100000)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file into v and unmarshals the result.
// An explicit path must exist; the default location is optional.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(defaultDir())
		v.AddConfigPath(".")
		v.SetConfigName("turing")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects limits the engine cannot honour.
func (c Config) Validate() error {
	if c.Engine.MaxTape < 1 {
		return fmt.Errorf("engine.max_tape must be positive, got %d", c.Engine.MaxTape)
	}
	if c.Engine.MaxSteps < 0 {
		return fmt.Errorf("engine.max_steps must not be negative, got %d", c.Engine.MaxSteps)
	}
	if c.Server.MaxSteps < 0 {
		return fmt.Errorf("server.max_steps must not be negative, got %d", c.Server.MaxSteps)
	}
	return nil
}

func defaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "turing")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "turing")
}
