// Package api exposes the read/admin HTTP surface over the module services.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	competitionservice "github.com/fairway-collective/tripcaddy/app/modules/competition/application"
	leagueservice "github.com/fairway-collective/tripcaddy/app/modules/league/application"
	leaguequeue "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/queue"
	scoringservice "github.com/fairway-collective/tripcaddy/app/modules/scoring/application"
	"github.com/fairway-collective/tripcaddy/config"
)

// Server holds the services the HTTP handlers delegate to.
type Server struct {
	logger      *slog.Logger
	scoring     scoringservice.Service
	competition competitionservice.Service
	league      leagueservice.Service
	queue       leaguequeue.QueueService
	limiter     *rate.Limiter
}

// NewServer creates the API server over the module services.
func NewServer(
	logger *slog.Logger,
	cfg config.HTTPConfig,
	scoring scoringservice.Service,
	competition competitionservice.Service,
	league leagueservice.Service,
	queue leaguequeue.QueueService,
) *Server {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return &Server{
		logger:      logger,
		scoring:     scoring,
		competition: competition,
		league:      league,
		queue:       queue,
		limiter:     limiter,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.throttle)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/rounds/{roundID}", func(r chi.Router) {
		r.Get("/leaderboard", s.getRoundLeaderboard)
		r.Get("/matchups", s.getRoundMatchups)

		r.Get("/skins", s.getRoundSkins)
		r.Post("/skins", s.computeRoundSkins)

		r.Get("/flights", s.getRoundFlights)
		r.Post("/flights", s.createRoundFlights)
		r.Get("/flights/{flightID}/leaderboard", s.getFlightLeaderboard)

		r.Get("/ctp", s.getRoundCTP)
		r.Post("/ctp/measurements", s.recordCTPMeasurement)
	})

	r.Route("/seasons", func(r chi.Router) {
		r.Post("/", s.createSeason)
		r.Get("/{seasonID}", s.getSeason)
		r.Get("/{seasonID}/standings", s.getSeasonStandings)
		r.Post("/{seasonID}/standings/recompute", s.recomputeStandings)
		r.Get("/{seasonID}/standings/chart.png", s.getStandingsChart)
		r.Get("/{seasonID}/standings.xlsx", s.exportStandings)
	})

	return r
}

// throttle applies the configured global rate limit to every request.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
