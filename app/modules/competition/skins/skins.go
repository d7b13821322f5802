// Package skins implements the skins side-game: the sole lowest net score on
// a hole wins a skin; ties carry the value forward when carryover is enabled.
package skins

import "sort"

// Config controls carryover semantics and per-skin value.
type Config struct {
	// Carryover adds a tied hole's value to the next hole's pot.
	Carryover bool `json:"carryover"`
	// Value is the base value per skin, in cents (or points).
	Value int `json:"value"`
	// EligibleHoles lists the holes played for skins, in play order.
	EligibleHoles []int `json:"eligibleHoles"`
	// AutoCarryLastHole leaves an unresolved final-hole pot for a playoff
	// instead of splitting it.
	AutoCarryLastHole bool `json:"autoCarryLastHole"`
}

// DefaultConfig is carryover skins at $1.00 across all 18 holes.
func DefaultConfig() Config {
	holes := make([]int, 18)
	for i := range holes {
		holes[i] = i + 1
	}
	return Config{Carryover: true, Value: 100, EligibleHoles: holes}
}

// HoleScore is one participant's net result on one hole.
type HoleScore struct {
	MemberID   string `json:"memberId"`
	HoleNumber int    `json:"holeNumber"`
	NetStrokes int    `json:"netStrokes"`
}

// Participant is a scored player on a single hole result.
type Participant struct {
	MemberID   string `json:"memberId"`
	Name       string `json:"name"`
	NetStrokes int    `json:"netStrokes"`
}

// HoleResult is the outcome of one eligible hole.
type HoleResult struct {
	HoleNumber   int           `json:"holeNumber"`
	WinnerID     string        `json:"winnerId,omitempty"`
	WinnerName   string        `json:"winnerName,omitempty"`
	Value        int           `json:"value"`
	Tied         bool          `json:"tied"`
	CarriedOver  int           `json:"carriedOver"`
	Participants []Participant `json:"participants"`
}

// MemberTotal accumulates one participant's skins across the round.
type MemberTotal struct {
	SkinsWon   int   `json:"skinsWon"`
	TotalValue int   `json:"totalValue"`
	Holes      []int `json:"holes"`
}

// Totals maps member ID to accumulated results for everyone who recorded any
// score in the round.
type Totals map[string]*MemberTotal

// Calculate runs the skins game over a round's scores, hole by hole in
// eligible-hole order.
//
// If the final eligible hole ties with value still on the table and
// AutoCarryLastHole is off, the leftover pot is floor-split across all round
// participants, not just the players in the final tie. That split matches the
// product's established payout behavior; see the test pinning it.
func Calculate(allScores []HoleScore, names map[string]string, cfg Config) ([]HoleResult, Totals) {
	holeResults := make([]HoleResult, 0, len(cfg.EligibleHoles))
	totals := Totals{}

	for _, s := range allScores {
		if _, ok := totals[s.MemberID]; !ok {
			totals[s.MemberID] = &MemberTotal{Holes: []int{}}
		}
	}

	carryover := 0

	for _, holeNumber := range cfg.EligibleHoles {
		var holeScores []HoleScore
		for _, s := range allScores {
			if s.HoleNumber == holeNumber {
				holeScores = append(holeScores, s)
			}
		}
		if len(holeScores) == 0 {
			continue
		}

		lowest := holeScores[0].NetStrokes
		for _, s := range holeScores[1:] {
			if s.NetStrokes < lowest {
				lowest = s.NetStrokes
			}
		}

		var winners []HoleScore
		for _, s := range holeScores {
			if s.NetStrokes == lowest {
				winners = append(winners, s)
			}
		}

		currentValue := cfg.Value + carryover
		participants := make([]Participant, 0, len(holeScores))
		for _, s := range holeScores {
			participants = append(participants, Participant{
				MemberID:   s.MemberID,
				Name:       nameOrUnknown(names, s.MemberID),
				NetStrokes: s.NetStrokes,
			})
		}

		if len(winners) == 1 {
			winnerID := winners[0].MemberID
			holeResults = append(holeResults, HoleResult{
				HoleNumber:   holeNumber,
				WinnerID:     winnerID,
				WinnerName:   nameOrUnknown(names, winnerID),
				Value:        currentValue,
				Tied:         false,
				CarriedOver:  carryover,
				Participants: participants,
			})

			total := totals[winnerID]
			total.SkinsWon++
			total.TotalValue += currentValue
			total.Holes = append(total.Holes, holeNumber)

			carryover = 0
			continue
		}

		holeResults = append(holeResults, HoleResult{
			HoleNumber:   holeNumber,
			Value:        currentValue,
			Tied:         true,
			CarriedOver:  carryover,
			Participants: participants,
		})

		if cfg.Carryover {
			carryover += cfg.Value
		} else {
			carryover = 0
		}
	}

	if carryover > 0 && !cfg.AutoCarryLastHole && len(totals) > 0 {
		split := carryover / len(totals)
		for _, total := range totals {
			total.TotalValue += split
		}
	}

	return holeResults, totals
}

// LeaderboardEntry is a ranked row of the skins leaderboard.
type LeaderboardEntry struct {
	Position   int    `json:"position"`
	MemberID   string `json:"memberId"`
	Name       string `json:"name"`
	SkinsWon   int    `json:"skinsWon"`
	TotalValue int    `json:"totalValue"`
	Holes      []int  `json:"holes"`
}

// Leaderboard sorts totals by skins won then total value, both descending.
// Entries equal on both keys share a position number.
func Leaderboard(totals Totals, names map[string]string) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(totals))
	for memberID, total := range totals {
		entries = append(entries, LeaderboardEntry{
			MemberID:   memberID,
			Name:       nameOrUnknown(names, memberID),
			SkinsWon:   total.SkinsWon,
			TotalValue: total.TotalValue,
			Holes:      total.Holes,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SkinsWon != entries[j].SkinsWon {
			return entries[i].SkinsWon > entries[j].SkinsWon
		}
		if entries[i].TotalValue != entries[j].TotalValue {
			return entries[i].TotalValue > entries[j].TotalValue
		}
		// Stable order for tied entries; does not affect shared positions.
		return entries[i].MemberID < entries[j].MemberID
	})

	position := 1
	for i := range entries {
		if i > 0 {
			prev := entries[i-1]
			if entries[i].SkinsWon != prev.SkinsWon || entries[i].TotalValue != prev.TotalValue {
				position = i + 1
			}
		}
		entries[i].Position = position
	}

	return entries
}

func nameOrUnknown(names map[string]string, memberID string) string {
	if name, ok := names[memberID]; ok {
		return name
	}
	return "Unknown"
}
