package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	leagueservice "github.com/fairway-collective/tripcaddy/app/modules/league/application"
	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/internal/observability/attr"
)

func seasonIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "seasonID"))
}

func (s *Server) createSeason(w http.ResponseWriter, r *http.Request) {
	var req leagueservice.CreateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid season request")
		return
	}

	season, err := s.league.CreateSeason(r.Context(), req)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, season)
}

func (s *Server) getSeason(w http.ResponseWriter, r *http.Request) {
	seasonID, err := seasonIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season ID")
		return
	}

	season, err := s.league.GetSeason(r.Context(), seasonID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrSeasonNotFound) {
			respondError(w, http.StatusNotFound, "season not found")
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to fetch season", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch season")
		return
	}
	respondJSON(w, http.StatusOK, season)
}

func (s *Server) getSeasonStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := seasonIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season ID")
		return
	}

	standings, err := s.league.GetSeasonStandings(r.Context(), seasonID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to fetch season standings", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to fetch standings")
		return
	}
	respondJSON(w, http.StatusOK, standings)
}

type recomputeRequest struct {
	// At defers the recompute to a later time via the job queue. Empty means
	// recompute now.
	At *time.Time `json:"at,omitempty"`
}

func (s *Server) recomputeStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := seasonIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season ID")
		return
	}

	var req recomputeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid recompute request")
			return
		}
	}

	if req.At != nil {
		if err := s.queue.ScheduleStandingsRecompute(r.Context(), seasonID, *req.At); err != nil {
			s.logger.ErrorContext(r.Context(), "Failed to schedule standings recompute", attr.Error(err))
			respondError(w, http.StatusInternalServerError, "failed to schedule recompute")
			return
		}
		respondJSON(w, http.StatusAccepted, nil)
		return
	}

	result, err := s.league.RecomputeStandings(r.Context(), seasonID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to recompute standings", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to recompute standings")
		return
	}
	if result.IsFailure() {
		respondError(w, http.StatusNotFound, result.Failure.Reason)
		return
	}
	respondJSON(w, http.StatusOK, result.Success)
}

func (s *Server) getStandingsChart(w http.ResponseWriter, r *http.Request) {
	seasonID, err := seasonIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season ID")
		return
	}

	png, err := s.league.RenderStandingsChart(r.Context(), seasonID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to render standings chart", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (s *Server) exportStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := seasonIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season ID")
		return
	}

	data, err := s.league.ExportStandingsXLSX(r.Context(), seasonID)
	if err != nil {
		if errors.Is(err, leaguedb.ErrSeasonNotFound) {
			respondError(w, http.StatusNotFound, "season not found")
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to export standings", attr.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to export standings")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="standings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
