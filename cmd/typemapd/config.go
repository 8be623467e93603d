package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const envPrefix = "TYPEMAP_"

// Config is the daemon configuration, read from TYPEMAP_* variables.
type Config struct {
	Address        string `mapstructure:"ADDRESS"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	Token          string `mapstructure:"TOKEN"`
	MaxMessageSize int    `mapstructure:"MAX_MESSAGE_SIZE"`
}

func defaultConfig() Config {
	return Config{
		Address:        ":50051",
		LogLevel:       "info",
		MaxMessageSize: 16 << 20,
	}
}

// loadConfig overlays TYPEMAP_* entries of environ onto the defaults.
// Numeric values are parsed from their string form.
func loadConfig(environ []string) (Config, error) {
	values := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		values[strings.TrimPrefix(key, envPrefix)] = value
	}

	cfg := defaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(values); err != nil {
		return Config{}, fmt.Errorf("decode %s environment: %w", envPrefix, err)
	}

	if _, err := cfg.level(); err != nil {
		return Config{}, err
	}
	if cfg.MaxMessageSize < 0 {
		return Config{}, fmt.Errorf("%sMAX_MESSAGE_SIZE must not be negative", envPrefix)
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err)
	}
	return level, nil
}
