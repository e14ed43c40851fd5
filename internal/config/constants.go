package config

import "time"

// envConfigFile names an optional YAML file layered between defaults and env vars.
const envConfigFile = "SPORTS_CONFIG"

// envKeys maps supported environment variables onto koanf keys.
var envKeys = map[string]string{
	"PORT":                        "port",
	"QUERY_LATENCY":               "query_latency",
	"DATA_SEED":                   "data_seed",
	"TIMEZONE":                    "timezone",
	"CORS_ORIGINS":                "cors_origins",
	"ADMIN_TOKEN":                 "admin_token",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"METRICS_ENABLED":             "metrics.enabled",
	"METRICS_PORT":                "metrics.port",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "metrics.otlp_endpoint",
	"OTEL_SERVICE_NAME":           "metrics.service_name",
	"OTEL_EXPORTER_OTLP_INSECURE": "metrics.otlp_insecure",
	"REDIS_URL":                   "redis.url",
	"SCORE_STREAM":                "redis.stream",
	"SNAPSHOT_ENABLED":            "snapshots.enabled",
	"SNAPSHOT_DIR":                "snapshots.dir",
	"SNAPSHOT_LOAD":               "snapshots.load",
	"SNAPSHOT_RETENTION_DAYS":     "snapshots.retention_days",
}

const (
	defaultPort          = "4000"
	defaultQueryLatency  = 500 * time.Millisecond
	defaultTimezone      = "Local"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "sports-data-service"
	defaultScoreStream   = "games.scores.updates"
	defaultSnapshotDir   = "data/snapshots"
	defaultRetentionDays = 14
)
