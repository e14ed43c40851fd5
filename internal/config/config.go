package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string         `koanf:"port"`
	QueryLatency time.Duration  `koanf:"query_latency"`
	DataSeed     uint64         `koanf:"data_seed"`
	Timezone     string         `koanf:"timezone"`
	CORSOrigins  []string       `koanf:"cors_origins"`
	AdminToken   string         `koanf:"admin_token"`
	Log          LogConfig      `koanf:"log"`
	Metrics      MetricsConfig  `koanf:"metrics"`
	Redis        RedisConfig    `koanf:"redis"`
	Snapshots    SnapshotConfig `koanf:"snapshots"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:         defaultPort,
		QueryLatency: defaultQueryLatency,
		Timezone:     defaultTimezone,
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
		Redis: RedisConfig{
			Stream: defaultScoreStream,
		},
		Snapshots: SnapshotConfig{
			Dir:           defaultSnapshotDir,
			RetentionDays: defaultRetentionDays,
		},
	}
}

// Load builds a Config by layering defaults, an optional YAML file named by SPORTS_CONFIG,
// and environment variables, in increasing precedence.
func Load() (Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		name, ok := envKeys[key]
		if !ok || strings.TrimSpace(value) == "" {
			return "", nil
		}
		if name == "cors_origins" {
			return name, splitList(value)
		}
		return name, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.QueryLatency < 0 {
		return fmt.Errorf("query latency must not be negative, got %s", c.QueryLatency)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Metrics.Enabled && c.Metrics.Port == "" {
		return errors.New("metrics port must not be empty when metrics are enabled")
	}
	if c.Redis.URL != "" && c.Redis.Stream == "" {
		return errors.New("score stream must not be empty when redis is configured")
	}
	if c.Snapshots.RetentionDays < 0 {
		return fmt.Errorf("snapshot retention must not be negative, got %d", c.Snapshots.RetentionDays)
	}
	if (c.Snapshots.Enabled || c.Snapshots.Load) && c.Snapshots.Dir == "" {
		return errors.New("snapshot dir must not be empty when snapshots are enabled")
	}
	return nil
}

// Location resolves the configured timezone used for calendar-day comparisons.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
