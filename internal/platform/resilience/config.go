package resilience

import "time"

// CircuitBreakerConfig guards one upstream. Only transport failures (timeouts,
// refused connections, non-2xx) count towards FailureThreshold.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the run of consecutive transport failures that opens the circuit.
	FailureThreshold int
	// OpenTimeout is how long reads fast-fail before trial requests are let through.
	OpenTimeout time.Duration
	// HalfOpenMaxReq trial requests must all succeed to close the circuit again.
	HalfOpenMaxReq int
}

// DefaultCircuitBreakerConfig matches the JOLPICA_CIRCUIT_* defaults.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalized fills unset thresholds with defaults; Enabled is kept as given.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}

// LogFields renders the config as key/value pairs for a structured log line.
func (c CircuitBreakerConfig) LogFields() []any {
	return []any{
		"circuit_enabled", c.Enabled,
		"failure_threshold", c.FailureThreshold,
		"open_timeout", c.OpenTimeout.String(),
		"half_open_max_req", c.HalfOpenMaxReq,
	}
}
