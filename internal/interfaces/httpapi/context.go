package httpapi

import (
	"context"
	"strings"

	idgen "github.com/riskibarqy/driveahead/internal/platform/id"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
)

const (
	requestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 128
	unknownRequestID   = "unknown"
)

// requestIDFrom keeps a caller supplied id when it is sane, otherwise mints a new one.
func requestIDFrom(header string, gen idgen.Generator) string {
	candidate := strings.TrimSpace(header)
	if candidate != "" && len(candidate) <= maxRequestIDLength {
		return candidate
	}
	v, err := gen.NewID()
	if err != nil {
		return unknownRequestID
	}
	return v
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return logging.WithRequestID(ctx, requestID)
}
