package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Router          string        `mapstructure:"router"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	StatsInterval   time.Duration `mapstructure:"stats_interval"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("router", "chi")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("stats_interval", time.Duration(0))
}

// Load reads the configuration from the environment (HOST, PORT, ROUTER, ...)
// and, when CONFIG_FILE is set, from that file. Environment wins over the file.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	return load(v, v.GetString("config_file"))
}

func load(v *viper.Viper, file string) (Config, error) {
	defaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error

	if p, perr := strconv.Atoi(c.Port); perr != nil || p < 0 || p > 65535 {
		err = multierr.Append(err, fmt.Errorf("%w: port %q", ErrInvalidConfig, c.Port))
	}
	if c.Router != "chi" && c.Router != "mux" {
		err = multierr.Append(err, fmt.Errorf("%w: router %q, want chi or mux", ErrInvalidConfig, c.Router))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		err = multierr.Append(err, fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig))
	}
	if c.StatsInterval < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: stats interval %s", ErrInvalidConfig, c.StatsInterval))
	}
	return err
}
