package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	competitionservice "github.com/fairway-collective/tripcaddy/app/modules/competition/application"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/ctp"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/flights"
	competitiondb "github.com/fairway-collective/tripcaddy/app/modules/competition/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/competition/skins"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

func roundIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "roundID"))
}

func (s *Server) getRoundLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	leaderboard, err := s.scoring.GetRoundLeaderboard(r.Context(), roundID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to fetch round leaderboard", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch leaderboard")
		return
	}
	if len(leaderboard) == 0 {
		respondError(w, http.StatusNotFound, "round has no scorecards")
		return
	}
	respondJSON(w, http.StatusOK, leaderboard)
}

func (s *Server) getRoundMatchups(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	matchups, err := s.scoring.GetRoundMatchups(r.Context(), roundID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to fetch round matchups", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch matchups")
		return
	}
	respondJSON(w, http.StatusOK, matchups)
}

func (s *Server) getRoundSkins(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	computed, err := s.competition.GetRoundSkins(r.Context(), roundID)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			respondError(w, http.StatusNotFound, "no skins computed for this round")
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to fetch round skins", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch skins")
		return
	}
	respondJSON(w, http.StatusOK, computed)
}

// computeRoundSkins recomputes a round's skins, optionally with a custom game
// config in the request body.
func (s *Server) computeRoundSkins(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	var cfg skins.Config
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			respondError(w, http.StatusBadRequest, "invalid skins config")
			return
		}
	}

	result, err := s.competition.ComputeRoundSkins(r.Context(), competitionservice.SkinsComputeRequest{
		RoundID: roundID,
		Config:  cfg,
	})
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to compute round skins", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to compute skins")
		return
	}
	if result.IsFailure() {
		respondError(w, http.StatusUnprocessableEntity, result.Failure.Reason)
		return
	}
	respondJSON(w, http.StatusOK, result.Success)
}

type createFlightsRequest struct {
	Members []flights.Member `json:"members,omitempty"`
	Config  flights.Config   `json:"config"`
}

func (s *Server) createRoundFlights(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	var req createFlightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid flights request")
		return
	}

	created, err := s.competition.CreateRoundFlights(r.Context(), roundID, req.Members, req.Config)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to create round flights", attr.Error(err))
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) getRoundFlights(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	created, err := s.competition.GetRoundFlights(r.Context(), roundID)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			respondError(w, http.StatusNotFound, "no flights created for this round")
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to fetch round flights", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch flights")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

func (s *Server) getFlightLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}
	flightID := chi.URLParam(r, "flightID")

	ranked, err := s.competition.FlightLeaderboard(r.Context(), roundID, flightID)
	if err != nil {
		if errors.Is(err, competitiondb.ErrNotFound) {
			respondError(w, http.StatusNotFound, "no flights created for this round")
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to build flight leaderboard", attr.Error(err))
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, ranked)
}

type recordCTPRequest struct {
	Measurement ctp.Measurement `json:"measurement"`
	Config      ctp.Config      `json:"config"`
}

func (s *Server) recordCTPMeasurement(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	var req recordCTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid measurement request")
		return
	}

	if err := s.competition.RecordCTPMeasurement(r.Context(), roundID, req.Measurement, req.Config); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, nil)
}

// getRoundCTP reports CTP standings. The competition config is taken from
// query params: holes (comma-separated), unit, and require_green.
func (s *Server) getRoundCTP(w http.ResponseWriter, r *http.Request) {
	roundID, err := roundIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid round ID")
		return
	}

	cfg, err := ctpConfigFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	standings, err := s.competition.GetRoundCTP(r.Context(), roundID, cfg)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to fetch CTP standings", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch closest-to-pin standings")
		return
	}
	respondJSON(w, http.StatusOK, standings)
}

func ctpConfigFromQuery(r *http.Request) (ctp.Config, error) {
	cfg := ctp.Config{Unit: ctp.UnitFeet}

	if raw := r.URL.Query().Get("holes"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			hole, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return ctp.Config{}, fmt.Errorf("invalid hole number %q", part)
			}
			cfg.Holes = append(cfg.Holes, hole)
		}
	}
	if len(cfg.Holes) == 0 {
		return ctp.Config{}, fmt.Errorf("holes query parameter is required")
	}

	if unit := r.URL.Query().Get("unit"); unit != "" {
		switch ctp.Unit(strings.ToUpper(unit)) {
		case ctp.UnitFeet, ctp.UnitInches, ctp.UnitMeters:
			cfg.Unit = ctp.Unit(strings.ToUpper(unit))
		default:
			return ctp.Config{}, fmt.Errorf("invalid unit %q", unit)
		}
	}

	cfg.RequireGreen = r.URL.Query().Get("require_green") == "true"
	return cfg, nil
}
