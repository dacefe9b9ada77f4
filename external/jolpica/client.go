package jolpica

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/driveahead/internal/platform/cache"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/riskibarqy/driveahead/internal/platform/metrics"
	"github.com/riskibarqy/driveahead/internal/platform/resilience"
	"github.com/riskibarqy/driveahead/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://api.jolpi.ca/ergast/f1"
	DefaultUserAgent = "DriveAhead F1 Analytics/1.0"

	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 300 * time.Second
	maxBodyBytes    = 4 << 20
	// upstream pages race lists at 30 rows; one page must hold a full calendar.
	seasonRaceLimit = 100
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	// RateLimit is the outbound requests per second; zero disables limiting.
	RateLimit      float64
	UserAgent      string
	CacheTTL       time.Duration
	Now            func() time.Time
	Logger         *logging.Logger
	Metrics        *metrics.Registry
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the Ergast-compatible Jolpica API. Every successful payload is
// cached for the remainder of its time bucket; failures are never cached or retried.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	logger         *logging.Logger
	metrics        *metrics.Registry
	cache          *cache.Store
	limiter        *rate.Limiter
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	validate       *validator.Validate
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: jolpica base url is required", usecase.ErrInvalidInput)
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: jolpica base url %q is not absolute", usecase.ErrInvalidInput, baseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	storeOpts := []cache.Option{cache.WithObserver(cfg.Metrics.ObserveCacheLookup)}
	if cfg.Now != nil {
		storeOpts = append(storeOpts, cache.WithClock(cfg.Now))
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	breaker := resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker)
	breaker.Observe(func(from, to resilience.CircuitState) {
		cfg.Metrics.SetCircuitOpen(to != resilience.CircuitStateClosed)
		logger.Warn("jolpica circuit breaker state changed", "from", from, "to", to)
	})
	logger.Debug("jolpica client configured", append([]any{"base_url", baseURL, "cache_ttl", ttl.String()}, cfg.CircuitBreaker.Normalized().LogFields()...)...)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      userAgent,
		logger:         logger,
		metrics:        cfg.Metrics,
		cache:          cache.NewStore(ttl, storeOpts...),
		limiter:        limiter,
		breaker:        breaker,
		circuitEnabled: cfg.CircuitBreaker.Enabled,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Fetch returns the JSON payload of resource. A season ("2025") or "current"
// resolves to the season race list; anything else ("current/driverStandings")
// is appended to the base URL. At most one request per resource leaves the
// process within a cache bucket.
func (c *Client) Fetch(ctx context.Context, resource string) ([]byte, error) {
	resource = strings.Trim(strings.TrimSpace(resource), "/")
	if resource == "" {
		return nil, fmt.Errorf("%w: resource is required", usecase.ErrInvalidInput)
	}

	out, err := c.cache.GetOrLoad(ctx, resource, func(ctx context.Context) (any, error) {
		return c.fetchRemote(ctx, resource)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cached payload type %T", usecase.ErrUpstreamSchema, out)
	}
	return raw, nil
}

// ResourceURL builds the upstream URL for resource.
func (c *Client) ResourceURL(resource string) string {
	if IsSeasonToken(resource) {
		return fmt.Sprintf("%s/%s.json?limit=%d", c.baseURL, resource, seasonRaceLimit)
	}
	return c.baseURL + "/" + resource + ".json"
}

func (c *Client) CircuitState() string {
	if !c.circuitEnabled {
		return "disabled"
	}
	return string(c.breaker.State())
}

func (c *Client) CacheEntries() int {
	return c.cache.Len()
}

func (c *Client) fetchRemote(ctx context.Context, resource string) ([]byte, error) {
	kind := resourceKind(resource)

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.metrics.ObserveUpstream(kind, metrics.OutcomeRejected, 0)
			c.logger.WarnContext(ctx, "jolpica circuit breaker rejected request", "resource", resource, "state", c.breaker.State())
			return nil, fmt.Errorf("%w: motorsport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	start := time.Now()
	raw, err := c.executeRequest(ctx, resource)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOK
	switch {
	case err != nil && ctx.Err() != nil:
		// the caller gave up; says nothing about upstream health.
		outcome = metrics.OutcomeCanceled
	case errors.Is(err, usecase.ErrUpstreamTransport):
		outcome = metrics.OutcomeTransport
	case err != nil:
		outcome = metrics.OutcomeSchema
	}
	c.metrics.ObserveUpstream(kind, outcome, elapsed)

	if c.circuitEnabled {
		switch outcome {
		case metrics.OutcomeCanceled:
		case metrics.OutcomeTransport:
			c.breaker.RecordFailure()
		default:
			c.breaker.RecordSuccess()
		}
	}

	if err != nil {
		c.logger.WarnContext(ctx, "jolpica request failed", "resource", resource, "duration_ms", elapsed.Milliseconds(), "error", err)
		return nil, err
	}
	c.logger.DebugContext(ctx, "jolpica request succeeded", "resource", resource, "bytes", len(raw), "duration_ms", elapsed.Milliseconds())
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, resource string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: wait for rate limiter: %v", usecase.ErrUpstreamTransport, err)
		}
	}

	fullURL := c.ResourceURL(resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", usecase.ErrUpstreamTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", usecase.ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrUpstreamTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUpstreamTransport, resp.StatusCode, abbreviateBody(buf.B))
	}
	if !sonic.Valid(buf.B) {
		return nil, fmt.Errorf("%w: response body is not json: %s", usecase.ErrUpstreamSchema, abbreviateBody(buf.B))
	}

	raw := make([]byte, buf.Len())
	copy(raw, buf.B)
	return raw, nil
}

// fetchInto decodes and validates the payload of resource into target.
func (c *Client) fetchInto(ctx context.Context, resource string, target any) error {
	raw, err := c.Fetch(ctx, resource)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamSchema, "decode %s: %v", resource, err)
	}
	if err := c.validate.StructCtx(ctx, target); err != nil {
		return crerr.Wrapf(usecase.ErrUpstreamSchema, "validate %s: %v", resource, err)
	}
	return nil
}

// IsSeasonToken reports whether resource names a season race list.
func IsSeasonToken(resource string) bool {
	if resource == usecase.SeasonCurrent {
		return true
	}
	if resource == "" {
		return false
	}
	for _, r := range resource {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func resourceKind(resource string) string {
	if IsSeasonToken(resource) {
		return "races"
	}
	if idx := strings.LastIndex(resource, "/"); idx >= 0 {
		return resource[idx+1:]
	}
	return resource
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
