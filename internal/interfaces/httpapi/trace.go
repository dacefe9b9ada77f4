package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	attrSeason = attribute.Key("f1.season")
	attrTeam   = attribute.Key("f1.team")
)

var apiTracer = otel.Tracer("driveahead/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for public handlers only. Middleware and
// envelope helpers run under the otelhttp server span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// /healthz and /metrics are filtered out and carry no parent.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	op, ok := strings.CutPrefix(name, handlerSpanPrefix)
	if !ok || op == "" {
		return false
	}
	// lower-case names are unexported helpers such as validateRequest.
	return op[0] >= 'A' && op[0] <= 'Z'
}

// queryAttributes tags a span with the season and team a request asked for.
func queryAttributes(season, team string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 2)
	if season = strings.TrimSpace(season); season != "" {
		attrs = append(attrs, attrSeason.String(season))
	}
	if team = strings.TrimSpace(team); team != "" {
		attrs = append(attrs, attrTeam.String(team))
	}
	return attrs
}
