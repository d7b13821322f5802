package leagueservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	leaguedb "github.com/fairway-collective/tripcaddy/app/modules/league/infrastructure/repositories"
	"github.com/fairway-collective/tripcaddy/app/modules/league/standings"
)

// ParseSeasonBound resolves a natural-language season boundary ("april 1",
// "first friday of june") relative to base. RFC 3339 dates are accepted as-is.
func ParseSeasonBound(text string, base time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty season boundary")
	}

	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", text); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(text, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse season boundary %q: %w", text, err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("could not understand season boundary %q", text)
	}
	return result.Time, nil
}

// CreateSeasonRequest describes a new league season. Start and End accept
// dates or natural language resolved against the current time.
type CreateSeasonRequest struct {
	Name     string             `json:"name"`
	Start    string             `json:"start"`
	End      string             `json:"end"`
	Settings standings.Settings `json:"settings"`
}

// CreateSeason parses the season window and stores the season.
func (s *LeagueService) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*leaguedb.Season, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("season name is required")
	}

	now := time.Now().UTC()
	startsAt, err := ParseSeasonBound(req.Start, now)
	if err != nil {
		return nil, err
	}
	endsAt, err := ParseSeasonBound(req.End, now)
	if err != nil {
		return nil, err
	}
	if !endsAt.After(startsAt) {
		return nil, fmt.Errorf("season end %s is not after start %s", endsAt.Format(time.RFC3339), startsAt.Format(time.RFC3339))
	}

	season := &leaguedb.Season{
		Name:     req.Name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Settings: req.Settings,
	}
	if err := s.repo.CreateSeason(ctx, nil, season); err != nil {
		return nil, err
	}
	return season, nil
}

// GetSeason returns a season by ID.
func (s *LeagueService) GetSeason(ctx context.Context, seasonID uuid.UUID) (*leaguedb.Season, error) {
	return s.repo.GetSeason(ctx, nil, seasonID)
}
