package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/driveahead/internal/platform/logging"
	"github.com/riskibarqy/driveahead/internal/usecase"
)

// HealthReporter exposes upstream client state for /healthz.
type HealthReporter interface {
	CircuitState() string
	CacheEntries() int
}

type Handler struct {
	standingsService *usecase.StandingsService
	health           HealthReporter
	serviceVersion   string
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	health HealthReporter,
	serviceVersion string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService: standingsService,
		health:           health,
		serviceVersion:   strings.TrimSpace(serviceVersion),
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	out := healthDTO{Status: "ok", Version: h.serviceVersion}
	if h.health != nil {
		out.Upstream = &upstreamHealthDTO{
			Circuit:      h.health.CircuitState(),
			CacheEntries: h.health.CacheEntries(),
		}
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetNextRace(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNextRace")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, raceToDTO(h.standingsService.NextRace(ctx)))
}

func (h *Handler) ListUpcomingRaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingRaces")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, racesToDTO(h.standingsService.UpcomingSchedule(ctx)))
}

func (h *Handler) ListSeasonRaces(w http.ResponseWriter, r *http.Request) {
	season := r.PathValue("season")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonRaces", queryAttributes(season, "")...)
	defer span.End()

	req := seasonRequest{Season: season}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	races, err := h.standingsService.SeasonRaces(ctx, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "list season races failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, racesToDTO(races))
}

func (h *Handler) ListDriverStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDriverStandings")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, driverStandingsToDTO(h.standingsService.DriverStandings(ctx)))
}

func (h *Handler) ListConstructorStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConstructorStandings")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, constructorStandingsToDTO(h.standingsService.ConstructorStandings(ctx)))
}

func (h *Handler) GetLatestResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLatestResults")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, resultSetToDTO(h.standingsService.LatestRaceResults(ctx)))
}

func (h *Handler) ListDrivers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDrivers", queryAttributes("", query.Get("team"))...)
	defer span.End()

	if !query.Has("team") {
		writeSuccess(ctx, w, http.StatusOK, driversToDTO(h.standingsService.Drivers(ctx)))
		return
	}

	req := driversByTeamRequest{Team: strings.TrimSpace(query.Get("team"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	drivers, err := h.standingsService.DriversByTeam(ctx, req.Team)
	if err != nil {
		h.logger.WarnContext(ctx, "list drivers by team failed", "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, driversToDTO(drivers))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(h.standingsService.Overview(ctx)))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type seasonRequest struct {
	Season string `validate:"required,alphanum,max=16"`
}

type driversByTeamRequest struct {
	Team string `validate:"required,max=64"`
}
