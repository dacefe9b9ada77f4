package httpapi

import (
	"net/http"

	idgen "github.com/riskibarqy/driveahead/internal/platform/id"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	metricsHandler http.Handler,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metricsHandler, swaggerEnabled)
	registerRaceRoutes(mux, handler)
	registerStandingsRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, RequestID(idgen.NewUUIDGenerator(), CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
