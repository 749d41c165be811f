package config

import "github.com/knadh/koanf/maps"

const (
	defaultServerPort = 8080

	defaultBcryptCost       = 10
	defaultRateLimitBurst   = 20
	defaultRateLimitRate    = 10.0
	defaultBulkCheckWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout":  "8s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "go-task-service",

		"cache.default_ttl": "5m",

		"auth.jwt_secret":  "",
		"auth.token_ttl":   "1h",
		"auth.bcrypt_cost": defaultBcryptCost,

		"storage.driver": "memory",
		"storage.dsn":    "",

		"rate_limit.requests_per_second": defaultRateLimitRate,
		"rate_limit.burst":               defaultRateLimitBurst,

		"tasks.bulk_check_workers": defaultBulkCheckWorkers,
	}
}

// defaultsProvider feeds the flat defaults map to koanf as a nested map.
type defaultsProvider map[string]any

func (p defaultsProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytesUnsupported
}

func (p defaultsProvider) Read() (map[string]any, error) {
	return maps.Unflatten(p, "."), nil
}
