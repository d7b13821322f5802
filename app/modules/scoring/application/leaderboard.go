package scoringservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	scoringdomain "github.com/fairway-collective/tripcaddy/app/modules/scoring/domain"
	"github.com/fairway-collective/tripcaddy/app/modules/scoring/engine"
)

// LeaderboardEntry is one ranked row of a round leaderboard. Display is the
// format's own rendering of the score ("+2", "34 pts", "3&2").
type LeaderboardEntry struct {
	Position    int                     `json:"position"`
	MemberID    string                  `json:"memberId"`
	DisplayName string                  `json:"displayName"`
	Display     string                  `json:"display"`
	Complete    bool                    `json:"complete"`
	Scorecard   scoringdomain.Scorecard `json:"scorecard"`
}

// Matchup is one decided head-to-head pairing of a match play round.
type Matchup struct {
	PlayerA  string `json:"playerA"`
	PlayerB  string `json:"playerB"`
	Result   string `json:"result"`
	WinnerID string `json:"winnerId,omitempty"`
}

// GetRoundLeaderboard ranks a round's persisted cards with the format's own
// comparator. Incomplete cards sort below complete ones and are never ranked
// ahead of them. Tied complete cards share a position.
func (s *ScoringService) GetRoundLeaderboard(ctx context.Context, roundID uuid.UUID) ([]LeaderboardEntry, error) {
	cards, err := s.repo.GetRoundScorecards(ctx, nil, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load round %s: %w", roundID, err)
	}
	if len(cards) == 0 {
		return []LeaderboardEntry{}, nil
	}

	eng := engine.New(cards[0].Format, scoringdomain.ScoringConfig{}, s.logger)

	totals := make(map[string]scoringdomain.TotalScoreResult, len(cards))
	for _, card := range cards {
		if card.Complete() {
			totals[card.MemberID] = eng.CalculateTotalScore(card.Holes)
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		ci, oki := totals[cards[i].MemberID]
		cj, okj := totals[cards[j].MemberID]
		if oki != okj {
			return oki
		}
		if !oki {
			return cards[i].MemberID < cards[j].MemberID
		}
		if cmp := eng.CompareScores(ci, cj); cmp != 0 {
			return cmp < 0
		}
		return cards[i].MemberID < cards[j].MemberID
	})

	entries := make([]LeaderboardEntry, 0, len(cards))
	for i, card := range cards {
		total, complete := totals[card.MemberID]

		entry := LeaderboardEntry{
			MemberID:    card.MemberID,
			DisplayName: card.DisplayName,
			Complete:    complete,
			Scorecard:   card,
		}
		if complete {
			if i > 0 {
				if prev, ok := totals[cards[i-1].MemberID]; ok && eng.CompareScores(prev, total) == 0 {
					entry.Position = entries[i-1].Position
				}
			}
			if entry.Position == 0 {
				entry.Position = i + 1
			}
			entry.Display = eng.LeaderboardDisplay(total)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetRoundMatchups pairs a match play round's cards in leaderboard order
// (1v2, 3v4, ...) and decides each pairing. Rounds scored under any other
// format return no matchups.
func (s *ScoringService) GetRoundMatchups(ctx context.Context, roundID uuid.UUID) ([]Matchup, error) {
	cards, err := s.repo.GetRoundScorecards(ctx, nil, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load round %s: %w", roundID, err)
	}
	if len(cards) == 0 || cards[0].Format != scoringdomain.FormatMatchPlay {
		return []Matchup{}, nil
	}

	mp := engine.NewMatchPlay()

	matchups := make([]Matchup, 0, len(cards)/2)
	for i := 0; i+1 < len(cards); i += 2 {
		a, b := cards[i], cards[i+1]
		comparison := mp.CompareMatchPlay(a.Holes, b.Holes)

		matchup := Matchup{
			PlayerA: a.MemberID,
			PlayerB: b.MemberID,
			Result:  comparison.Result,
		}
		switch comparison.Winner {
		case engine.WinnerA:
			matchup.WinnerID = a.MemberID
		case engine.WinnerB:
			matchup.WinnerID = b.MemberID
		}
		matchups = append(matchups, matchup)
	}

	return matchups, nil
}
