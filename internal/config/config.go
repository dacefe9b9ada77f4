package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	CORSAllowedOrigins           []string
	SwaggerEnabled               bool
	MetricsEnabled               bool
	LogLevel                     logging.Level
	JolpicaBaseURL               string
	JolpicaTimeout               time.Duration
	JolpicaRateLimit             float64
	JolpicaUserAgent             string
	JolpicaCircuitEnabled        bool
	JolpicaCircuitFailureCount   int
	JolpicaCircuitOpenTimeout    time.Duration
	JolpicaCircuitHalfOpenMaxReq int
	CacheTTL                     time.Duration
	LiveResultsEnabled           bool
	SeasonStartMonth             int
	CacheWarmSchedule            string
	CacheWarmWorkers             int
	PprofEnabled                 bool
	PprofAddr                    string
	UptraceEnabled               bool
	UptraceDSN                   string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeBasicAuthUser       string
	PyroscopeBasicAuthPassword   string
	PyroscopeUploadRate          time.Duration
}

// LoadDotEnv reads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	// set-but-empty is a misconfiguration, not a request for the default.
	jolpicaBaseURL := strings.TrimRight(strings.TrimSpace(getEnvAllowEmpty("JOLPICA_BASE_URL", DefaultJolpicaBaseURL)), "/")
	if err := validateBaseURL(jolpicaBaseURL); err != nil {
		return Config{}, err
	}
	jolpicaTimeout, err := time.ParseDuration(getEnv("JOLPICA_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JOLPICA_TIMEOUT: %w", err)
	}
	if jolpicaTimeout <= 0 {
		return Config{}, fmt.Errorf("JOLPICA_TIMEOUT must be > 0")
	}
	jolpicaRateLimit, err := strconv.ParseFloat(getEnv("JOLPICA_RATE_LIMIT", "4"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse JOLPICA_RATE_LIMIT: %w", err)
	}
	if jolpicaRateLimit < 0 {
		return Config{}, fmt.Errorf("JOLPICA_RATE_LIMIT must be >= 0")
	}
	jolpicaCircuitEnabled, err := strconv.ParseBool(getEnv("JOLPICA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JOLPICA_CIRCUIT_ENABLED: %w", err)
	}
	jolpicaCircuitFailureCount, err := getEnvAsInt("JOLPICA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse JOLPICA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if jolpicaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("JOLPICA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	jolpicaCircuitOpenTimeout, err := time.ParseDuration(getEnv("JOLPICA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JOLPICA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if jolpicaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("JOLPICA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	jolpicaCircuitHalfOpenMaxReq, err := getEnvAsInt("JOLPICA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse JOLPICA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if jolpicaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("JOLPICA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", defaultCacheTTL(appEnv)))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL < time.Second {
		return Config{}, fmt.Errorf("CACHE_TTL must be >= 1s")
	}

	liveResultsEnabled, err := strconv.ParseBool(getEnv("LIVE_RESULTS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_RESULTS_ENABLED: %w", err)
	}
	seasonStartMonth, err := getEnvAsInt("SEASON_START_MONTH", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON_START_MONTH: %w", err)
	}
	if seasonStartMonth < 1 || seasonStartMonth > 12 {
		return Config{}, fmt.Errorf("SEASON_START_MONTH must be between 1 and 12")
	}

	cacheWarmWorkers, err := getEnvAsInt("CACHE_WARM_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_WARM_WORKERS: %w", err)
	}
	if cacheWarmWorkers < 1 {
		return Config{}, fmt.Errorf("CACHE_WARM_WORKERS must be >= 1")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "driveahead-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:               swaggerEnabled,
		MetricsEnabled:               metricsEnabled,
		LogLevel:                     logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		JolpicaBaseURL:               jolpicaBaseURL,
		JolpicaTimeout:               jolpicaTimeout,
		JolpicaRateLimit:             jolpicaRateLimit,
		JolpicaUserAgent:             strings.TrimSpace(getEnv("JOLPICA_USER_AGENT", DefaultJolpicaUserAgent)),
		JolpicaCircuitEnabled:        jolpicaCircuitEnabled,
		JolpicaCircuitFailureCount:   jolpicaCircuitFailureCount,
		JolpicaCircuitOpenTimeout:    jolpicaCircuitOpenTimeout,
		JolpicaCircuitHalfOpenMaxReq: jolpicaCircuitHalfOpenMaxReq,
		CacheTTL:                     cacheTTL,
		LiveResultsEnabled:           liveResultsEnabled,
		SeasonStartMonth:             seasonStartMonth,
		CacheWarmSchedule:            strings.TrimSpace(getEnvAllowEmpty("CACHE_WARM_SCHEDULE", "@every 5m")),
		CacheWarmWorkers:             cacheWarmWorkers,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    pprofAddr,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAuthToken:           strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:       strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:   strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:          pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

const (
	DefaultJolpicaBaseURL   = "https://api.jolpi.ca/ergast/f1"
	DefaultJolpicaUserAgent = "DriveAhead F1 Analytics/1.0"
)

func defaultCacheTTL(appEnv string) string {
	switch appEnv {
	case EnvDev:
		return "60s"
	case EnvProd:
		return "600s"
	default:
		return "300s"
	}
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("JOLPICA_BASE_URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse JOLPICA_BASE_URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("JOLPICA_BASE_URL must be an absolute url, got %q", raw)
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

// getEnvAllowEmpty distinguishes an unset variable from one set to "".
func getEnvAllowEmpty(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
