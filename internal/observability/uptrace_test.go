package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/driveahead/internal/config"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "driveahead-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, ServiceName: "driveahead-api"}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected nil server when pprof is disabled")
	}
	if err := StopPprofServer(srv, nil, 0); err != nil {
		t.Fatalf("stop pprof: %v", err)
	}
}

func TestProfileTags(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvProd,
		ServiceName:        "driveahead-api",
		ServiceVersion:     "1.4.0",
		JolpicaBaseURL:     "https://api.jolpi.ca/ergast/f1",
		LiveResultsEnabled: true,
	}

	tags := profileTags(cfg)
	want := map[string]string{
		"env":          config.EnvProd,
		"service":      "driveahead-api",
		"version":      "1.4.0",
		"upstream":     "api.jolpi.ca",
		"live_results": "true",
	}
	if len(tags) != len(want) {
		t.Fatalf("tags=%v want=%v", tags, want)
	}
	for k, v := range want {
		if tags[k] != v {
			t.Fatalf("tag %s=%q want=%q", k, tags[k], v)
		}
	}

	bare := profileTags(config.Config{AppEnv: config.EnvDev, ServiceName: "driveahead-api"})
	if _, ok := bare["upstream"]; ok {
		t.Fatalf("expected no upstream tag without a base url: %v", bare)
	}
	if _, ok := bare["version"]; ok {
		t.Fatalf("expected no version tag without a version: %v", bare)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("pprof index status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "goroutine") {
		t.Fatalf("pprof index does not list the goroutine profile")
	}

	rec = httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/overview", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("api routes must not be served on the pprof listener, got %d", rec.Code)
	}
}
