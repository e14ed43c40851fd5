package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Port         string `koanf:"port"`
	OtlpEndpoint string `koanf:"otlp_endpoint"`
	ServiceName  string `koanf:"service_name"`
	OtlpInsecure bool   `koanf:"otlp_insecure"`
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// RedisConfig points the score publisher at a Redis stream. An empty URL disables publishing.
type RedisConfig struct {
	URL    string `koanf:"url"`
	Stream string `koanf:"stream"`
}

// SnapshotConfig controls dataset snapshots on disk.
type SnapshotConfig struct {
	Enabled       bool   `koanf:"enabled"`
	Dir           string `koanf:"dir"`
	Load          bool   `koanf:"load"`
	RetentionDays int    `koanf:"retention_days"`
}
