package observability

import (
	"net/url"
	"strconv"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/driveahead/internal/config"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
)

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	tags := profileTags(cfg)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              tags,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
		"upstream", tags["upstream"],
	)

	return profiler.Stop, nil
}

// profileTags labels profiles with the build and the upstream host they ran against.
func profileTags(cfg config.Config) map[string]string {
	tags := map[string]string{
		"env":          cfg.AppEnv,
		"service":      cfg.ServiceName,
		"live_results": strconv.FormatBool(cfg.LiveResultsEnabled),
	}
	if cfg.ServiceVersion != "" {
		tags["version"] = cfg.ServiceVersion
	}
	if parsed, err := url.Parse(cfg.JolpicaBaseURL); err == nil && parsed.Host != "" {
		tags["upstream"] = parsed.Host
	}
	return tags
}
