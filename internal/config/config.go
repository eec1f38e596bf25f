package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	CacheRedis    = "redis"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	LogFormat          logging.Format
	CORSAllowedOrigins []string

	APITennisBaseURL               string
	APITennisAPIKey                string
	APITennisTimeout               time.Duration
	APITennisMaxRetries            int
	APITennisCircuitEnabled        bool
	APITennisCircuitFailureCount   int
	APITennisCircuitOpenTimeout    time.Duration
	APITennisCircuitHalfOpenMaxReq int
	APITennisTimezone              string

	FavoritesStore          string
	FavoritesWorkers        int
	DBURL                   string
	DBDisablePreparedBinary bool

	CacheEnabled bool
	CacheBackend string
	CacheTTL     time.Duration
	RedisURL     string

	WarmerEnabled  bool
	WarmerSchedule string
	WarmerWorkers  int

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(getEnv("APP_SERVICE_NAME", "tennis-tracker")),
		ServiceVersion:     strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		HTTPAddr:           strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogFormat:          logging.FormatJSON,

		APITennisBaseURL:  strings.TrimSpace(getEnv("APITENNIS_BASE_URL", "https://api.api-tennis.com/tennis/")),
		APITennisAPIKey:   strings.TrimSpace(os.Getenv("APITENNIS_API_KEY")),
		APITennisTimezone: strings.TrimSpace(getEnv("APITENNIS_TIMEZONE", "UTC")),

		FavoritesStore: strings.ToLower(strings.TrimSpace(getEnv("FAVORITES_STORE", StoreMemory))),
		DBURL:          strings.TrimSpace(os.Getenv("DB_URL")),

		CacheBackend: strings.ToLower(strings.TrimSpace(getEnv("CACHE_BACKEND", StoreMemory))),
		RedisURL:     strings.TrimSpace(os.Getenv("REDIS_URL")),

		WarmerSchedule: strings.TrimSpace(getEnv("WARMER_SCHEDULE", "@every 10m")),

		UptraceDSN:                 strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	if appEnv == EnvDev {
		cfg.LogFormat = logging.FormatConsole
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	if cfg.LogLevel, err = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	durations := []struct {
		key      string
		fallback string
		target   *time.Duration
	}{
		{"APP_READ_TIMEOUT", "10s", &cfg.ReadTimeout},
		{"APP_WRITE_TIMEOUT", "30s", &cfg.WriteTimeout},
		{"APITENNIS_TIMEOUT", "15s", &cfg.APITennisTimeout},
		{"APITENNIS_CIRCUIT_OPEN_TIMEOUT", "15s", &cfg.APITennisCircuitOpenTimeout},
		{"CACHE_TTL", "10m", &cfg.CacheTTL},
		{"PYROSCOPE_UPLOAD_RATE", "15s", &cfg.PyroscopeUploadRate},
	}
	for _, d := range durations {
		if *d.target, err = getEnvAsPositiveDuration(d.key, d.fallback); err != nil {
			return Config{}, err
		}
	}

	ints := []struct {
		key      string
		fallback int
		minimum  int
		target   *int
	}{
		{"APITENNIS_MAX_RETRIES", 2, 0, &cfg.APITennisMaxRetries},
		{"APITENNIS_CIRCUIT_FAILURE_COUNT", 5, 1, &cfg.APITennisCircuitFailureCount},
		{"APITENNIS_CIRCUIT_HALF_OPEN_MAX_REQ", 2, 1, &cfg.APITennisCircuitHalfOpenMaxReq},
		{"FAVORITES_WORKERS", 4, 1, &cfg.FavoritesWorkers},
		{"WARMER_WORKERS", 2, 1, &cfg.WarmerWorkers},
	}
	for _, i := range ints {
		value, err := getEnvAsInt(i.key, i.fallback)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", i.key, err)
		}
		if value < i.minimum {
			return Config{}, fmt.Errorf("%s must be >= %d", i.key, i.minimum)
		}
		*i.target = value
	}

	bools := []struct {
		key      string
		fallback bool
		target   *bool
	}{
		{"APITENNIS_CIRCUIT_ENABLED", true, &cfg.APITennisCircuitEnabled},
		{"DB_DISABLE_PREPARED_BINARY_RESULT", true, &cfg.DBDisablePreparedBinary},
		{"CACHE_ENABLED", true, &cfg.CacheEnabled},
		{"WARMER_ENABLED", false, &cfg.WarmerEnabled},
		{"UPTRACE_ENABLED", false, &cfg.UptraceEnabled},
		{"PYROSCOPE_ENABLED", false, &cfg.PyroscopeEnabled},
		{"PPROF_ENABLED", false, &cfg.PprofEnabled},
	}
	for _, b := range bools {
		if *b.target, err = getEnvAsBool(b.key, b.fallback); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.APITennisAPIKey == "" {
		return fmt.Errorf("APITENNIS_API_KEY is required")
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	switch c.FavoritesStore {
	case StoreMemory:
	case StorePostgres:
		if c.DBURL == "" {
			return fmt.Errorf("DB_URL is required when FAVORITES_STORE=postgres")
		}
	default:
		return fmt.Errorf("invalid FAVORITES_STORE %q: valid values are %s, %s", c.FavoritesStore, StoreMemory, StorePostgres)
	}

	switch c.CacheBackend {
	case StoreMemory:
	case CacheRedis:
		if c.CacheEnabled && c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("invalid CACHE_BACKEND %q: valid values are %s, %s", c.CacheBackend, StoreMemory, CacheRedis)
	}

	if c.WarmerEnabled {
		if !c.CacheEnabled {
			return fmt.Errorf("WARMER_ENABLED=true requires CACHE_ENABLED=true")
		}
		if c.WarmerSchedule == "" {
			return fmt.Errorf("WARMER_SCHEDULE cannot be empty when WARMER_ENABLED=true")
		}
	}

	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.PyroscopeEnabled {
		if c.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}
	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
