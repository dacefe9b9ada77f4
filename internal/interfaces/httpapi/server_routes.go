package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerRaceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/races/next", handler.GetNextRace)
	mux.HandleFunc("GET /v1/races/upcoming", handler.ListUpcomingRaces)
	mux.HandleFunc("GET /v1/seasons/{season}/races", handler.ListSeasonRaces)
	mux.HandleFunc("GET /v1/results/latest", handler.GetLatestResults)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings/drivers", handler.ListDriverStandings)
	mux.HandleFunc("GET /v1/standings/constructors", handler.ListConstructorStandings)
	mux.HandleFunc("GET /v1/drivers", handler.ListDrivers)
}
